package api

import (
	"github.com/precious1994-dev/APP-PORT/auth"
	"github.com/precious1994-dev/APP-PORT/database"
	"github.com/precious1994-dev/APP-PORT/storage"
)

// initializeHandlers creates and returns all handlers organized in a routeHandlers struct
func initializeHandlers(database database.Database, sessions *auth.Service, uploadStore storage.Store, c map[string]string) *routeHandlers {
	return &routeHandlers{
		heroHandler:       newHeroHandler(database.HeroRepo()),
		aboutHandler:      newAboutHandler(database.AboutRepo()),
		contactHandler:    newContactHandler(database.ContactRepo()),
		experienceHandler: newExperienceHandler(database.ExperienceRepo()),
		projectHandler:    newProjectHandler(database.ProjectRepo()),
		skillHandler:      newSkillHandler(database.SkillRepo()),
		uploadHandler:     newUploadHandler(uploadStore),
		authHandler:       newAuthHandler(sessions, c),
	}
}
