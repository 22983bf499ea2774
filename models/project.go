package models

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// ProjectLinks holds the optional outbound links for a project.
type ProjectLinks struct {
	GitHub string `json:"github,omitempty"`
	Live   string `json:"live,omitempty"`
}

// Project is one portfolio project. List kind ordered by the caller-assigned
// Order field.
type Project struct {
	ID          uuid.UUID                   `json:"id" gorm:"type:uuid;primaryKey"`
	Title       string                      `json:"title" gorm:"type:text;not null"`
	Description string                      `json:"description" gorm:"type:text;not null"`
	Image       string                      `json:"image" gorm:"type:text;not null"`
	Category    string                      `json:"category" gorm:"type:text;not null"`
	Tags        datatypes.JSONSlice[string] `json:"tags"`
	Links       ProjectLinks                `json:"links" gorm:"serializer:json"`
	Order       int                         `json:"order" gorm:"column:order;not null"`
	CreatedAt   time.Time                   `json:"createdAt"`
	UpdatedAt   time.Time                   `json:"updatedAt"`
}

func (p *Project) BeforeCreate(*gorm.DB) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	return nil
}

func (p *Project) Validate() error {
	if p.Title == "" {
		return errors.New("title is required")
	}
	if p.Description == "" {
		return errors.New("description is required")
	}
	if p.Image == "" {
		return errors.New("image is required")
	}
	if p.Category == "" {
		return errors.New("category is required")
	}
	return nil
}
