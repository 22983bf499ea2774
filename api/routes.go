package api

import (
	"github.com/go-chi/chi/v5"
)

// setupRoutes wires the public read surface, the sign-in flow and the
// session-gated admin surface. GETs for site content are unauthenticated;
// every mutating route and the count/upload routes sit behind the session
// middleware.
func setupRoutes(r chi.Router, handlers *routeHandlers, authMiddleware authMiddleware) {
	r.Route("/api", func(r chi.Router) {
		r.Use(ColoredHTTPLoggingMiddleware)

		// Public content reads
		r.Get("/hero", handlers.heroHandler.getAllHeroes())
		r.Get("/hero/{heroID}", handlers.heroHandler.getHero())
		r.Get("/about", handlers.aboutHandler.getAllAbouts())
		r.Get("/about/{aboutID}", handlers.aboutHandler.getAbout())
		r.Get("/contact", handlers.contactHandler.getAllContacts())
		r.Get("/contact/{contactID}", handlers.contactHandler.getContact())
		r.Get("/experiences", handlers.experienceHandler.getAllExperiences())
		r.Get("/experiences/{experienceID}", handlers.experienceHandler.getExperience())
		r.Get("/projects", handlers.projectHandler.getAllProjects())
		r.Get("/projects/{projectID}", handlers.projectHandler.getProject())
		r.Get("/skills", handlers.skillHandler.getAllSkills())
		r.Get("/skills/{skillID}", handlers.skillHandler.getSkill())

		// Sign-in flow
		r.Get("/auth/login", handlers.authHandler.login())
		r.Get("/auth/callback", handlers.authHandler.callback())
		r.Post("/auth/logout", handlers.authHandler.logout())
		r.Get("/auth/session", handlers.authHandler.session())

		// Session-gated admin surface
		r.Group(func(r chi.Router) {
			r.Use(authMiddleware.authenticate)

			r.Post("/hero", handlers.heroHandler.createHero())
			r.Put("/hero/{heroID}", handlers.heroHandler.updateHero())
			r.Delete("/hero/{heroID}", handlers.heroHandler.deleteHero())

			r.Post("/about", handlers.aboutHandler.createAbout())
			r.Put("/about/{aboutID}", handlers.aboutHandler.updateAbout())
			r.Delete("/about/{aboutID}", handlers.aboutHandler.deleteAbout())

			r.Post("/contact", handlers.contactHandler.createContact())
			r.Put("/contact/{contactID}", handlers.contactHandler.updateContact())
			r.Delete("/contact/{contactID}", handlers.contactHandler.deleteContact())

			r.Get("/experiences/count", handlers.experienceHandler.countExperiences())
			r.Post("/experiences", handlers.experienceHandler.createExperience())
			r.Put("/experiences/{experienceID}", handlers.experienceHandler.updateExperience())
			r.Delete("/experiences/{experienceID}", handlers.experienceHandler.deleteExperience())

			r.Get("/projects/count", handlers.projectHandler.countProjects())
			r.Post("/projects", handlers.projectHandler.createProject())
			r.Put("/projects/{projectID}", handlers.projectHandler.updateProject())
			r.Delete("/projects/{projectID}", handlers.projectHandler.deleteProject())

			r.Post("/skills", handlers.skillHandler.createSkill())
			r.Put("/skills/{skillID}", handlers.skillHandler.updateSkill())
			r.Delete("/skills/{skillID}", handlers.skillHandler.deleteSkill())

			r.Post("/upload", handlers.uploadHandler.upload())
		})
	})
}
