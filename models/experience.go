package models

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// Experience is one work-experience entry. List kind: the caller-assigned
// Order field drives display sequence. An empty EndDate means the position
// is current.
type Experience struct {
	ID          uuid.UUID                   `json:"id" gorm:"type:uuid;primaryKey"`
	Company     string                      `json:"company" gorm:"type:text;not null"`
	Position    string                      `json:"position" gorm:"type:text;not null"`
	Location    string                      `json:"location" gorm:"type:text;not null"`
	Type        string                      `json:"type" gorm:"type:text;not null"`
	StartDate   string                      `json:"startDate" gorm:"type:text;not null"`
	EndDate     string                      `json:"endDate,omitempty" gorm:"type:text"`
	Description string                      `json:"description" gorm:"type:text;not null"`
	Tags        datatypes.JSONSlice[string] `json:"tags"`
	Highlights  datatypes.JSONSlice[string] `json:"highlights"`
	URL         string                      `json:"url,omitempty" gorm:"type:text"`
	Order       int                         `json:"order" gorm:"column:order;not null"`
	CreatedAt   time.Time                   `json:"createdAt"`
	UpdatedAt   time.Time                   `json:"updatedAt"`
}

func (e *Experience) BeforeCreate(*gorm.DB) error {
	if e.ID == uuid.Nil {
		e.ID = uuid.New()
	}
	return nil
}

func (e *Experience) Validate() error {
	if e.Company == "" {
		return errors.New("company is required")
	}
	if e.Position == "" {
		return errors.New("position is required")
	}
	if e.Location == "" {
		return errors.New("location is required")
	}
	if e.Type == "" {
		return errors.New("type is required")
	}
	if e.StartDate == "" {
		return errors.New("startDate is required")
	}
	if e.Description == "" {
		return errors.New("description is required")
	}
	return nil
}
