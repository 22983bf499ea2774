package database

import (
	"gorm.io/gorm"
)

type Database struct {
	heroRepo       *HeroRepo
	aboutRepo      *AboutRepo
	contactRepo    *ContactRepo
	experienceRepo *ExperienceRepo
	projectRepo    *ProjectRepo
	skillRepo      *SkillRepo
}

// New initializes a new Database struct with each repository using a shared
// GORM database instance. The connection is opened once in main and injected
// here; repositories never open connections themselves.
func New(db *gorm.DB) Database {
	return Database{
		heroRepo:       NewHeroRepo(db),
		aboutRepo:      NewAboutRepo(db),
		contactRepo:    NewContactRepo(db),
		experienceRepo: NewExperienceRepo(db),
		projectRepo:    NewProjectRepo(db),
		skillRepo:      NewSkillRepo(db),
	}
}

// Accessor methods for each repository

func (d Database) HeroRepo() *HeroRepo {
	return d.heroRepo
}

func (d Database) AboutRepo() *AboutRepo {
	return d.aboutRepo
}

func (d Database) ContactRepo() *ContactRepo {
	return d.contactRepo
}

func (d Database) ExperienceRepo() *ExperienceRepo {
	return d.experienceRepo
}

func (d Database) ProjectRepo() *ProjectRepo {
	return d.projectRepo
}

func (d Database) SkillRepo() *SkillRepo {
	return d.skillRepo
}
