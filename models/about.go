package models

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// SkillGroup is a named group of skill items shown in the about section.
type SkillGroup struct {
	Category string   `json:"category"`
	Items    []string `json:"items"`
}

// About is the bio content. Singleton kind: creates replace the whole
// collection.
type About struct {
	ID          uuid.UUID    `json:"id" gorm:"type:uuid;primaryKey"`
	Bio         string       `json:"bio" gorm:"type:text;not null"`
	ShortBio    string       `json:"shortBio" gorm:"type:text;not null"`
	Skills      []SkillGroup `json:"skills" gorm:"serializer:json"`
	SocialLinks SocialLinks  `json:"socialLinks" gorm:"serializer:json"`
	ResumeURL   string       `json:"resumeUrl,omitempty" gorm:"type:text"`
	CreatedAt   time.Time    `json:"createdAt"`
	UpdatedAt   time.Time    `json:"updatedAt"`
}

func (a *About) BeforeCreate(*gorm.DB) error {
	if a.ID == uuid.Nil {
		a.ID = uuid.New()
	}
	return nil
}

func (a *About) Validate() error {
	if a.Bio == "" {
		return errors.New("bio is required")
	}
	if a.ShortBio == "" {
		return errors.New("shortBio is required")
	}
	return nil
}
