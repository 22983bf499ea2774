package models

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Contact is the contact-section content. Singleton kind: creates replace
// the whole collection. The Formspree endpoint is only stored here; the
// frontend posts the contact form to it directly.
type Contact struct {
	ID                uuid.UUID   `json:"id" gorm:"type:uuid;primaryKey"`
	Title             string      `json:"title" gorm:"type:text;not null"`
	Description       string      `json:"description" gorm:"type:text;not null"`
	Email             string      `json:"email" gorm:"type:text;not null"`
	SocialLinks       SocialLinks `json:"socialLinks" gorm:"serializer:json"`
	FormspreeEndpoint string      `json:"formspreeEndpoint" gorm:"type:text;not null"`
	CreatedAt         time.Time   `json:"createdAt"`
	UpdatedAt         time.Time   `json:"updatedAt"`
}

func (c *Contact) BeforeCreate(*gorm.DB) error {
	if c.ID == uuid.Nil {
		c.ID = uuid.New()
	}
	return nil
}

func (c *Contact) Validate() error {
	if c.Title == "" {
		return errors.New("title is required")
	}
	if c.Description == "" {
		return errors.New("description is required")
	}
	if c.Email == "" {
		return errors.New("email is required")
	}
	if c.FormspreeEndpoint == "" {
		return errors.New("formspreeEndpoint is required")
	}
	return nil
}
