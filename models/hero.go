package models

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// CTAButton is a call-to-action button rendered in the hero banner.
type CTAButton struct {
	Label string `json:"label"`
	Href  string `json:"href"`
}

// Hero is the landing banner content. At most one record is live at a time;
// creates replace the whole collection.
type Hero struct {
	ID          uuid.UUID                   `json:"id" gorm:"type:uuid;primaryKey"`
	Title       string                      `json:"title" gorm:"type:text;not null"`
	Subtitle    string                      `json:"subtitle" gorm:"type:text;not null"`
	Description string                      `json:"description" gorm:"type:text;not null"`
	Phrases     datatypes.JSONSlice[string] `json:"phrases"`
	CTAButtons  []CTAButton                 `json:"ctaButtons" gorm:"serializer:json"`
	SocialLinks SocialLinks                 `json:"socialLinks" gorm:"serializer:json"`
	CreatedAt   time.Time                   `json:"createdAt"`
	UpdatedAt   time.Time                   `json:"updatedAt"`
}

func (h *Hero) BeforeCreate(*gorm.DB) error {
	if h.ID == uuid.Nil {
		h.ID = uuid.New()
	}
	return nil
}

// Validate checks the required fields before the record reaches the store.
func (h *Hero) Validate() error {
	if h.Title == "" {
		return errors.New("title is required")
	}
	if h.Subtitle == "" {
		return errors.New("subtitle is required")
	}
	if h.Description == "" {
		return errors.New("description is required")
	}
	if len(h.Phrases) == 0 {
		return errors.New("phrases is required")
	}
	return nil
}
