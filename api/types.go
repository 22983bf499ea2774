package api

// routeHandlers contains all the handlers for different route types
type routeHandlers struct {
	heroHandler       heroHandler
	aboutHandler      aboutHandler
	contactHandler    contactHandler
	experienceHandler experienceHandler
	projectHandler    projectHandler
	skillHandler      skillHandler
	uploadHandler     uploadHandler
	authHandler       authHandler
}
