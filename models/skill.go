package models

import (
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Skill categories shown on the site. The admin form offers exactly these.
const (
	SkillCategoryFrontend = "Frontend Development"
	SkillCategoryDesign   = "UI/UX Design"
	SkillCategoryTools    = "Tools & Technologies"
)

var skillCategories = map[string]struct{}{
	SkillCategoryFrontend: {},
	SkillCategoryDesign:   {},
	SkillCategoryTools:    {},
}

// Skill is one skill entry. List kind ordered by the caller-assigned Order
// field; proficiency is a 0-100 percentage.
type Skill struct {
	ID                uuid.UUID `json:"id" gorm:"type:uuid;primaryKey"`
	Name              string    `json:"name" gorm:"type:text;not null"`
	Category          string    `json:"category" gorm:"type:text;not null"`
	Proficiency       int       `json:"proficiency" gorm:"not null"`
	YearsOfExperience float64   `json:"yearsOfExperience" gorm:"not null"`
	Description       string    `json:"description,omitempty" gorm:"type:text"`
	Icon              string    `json:"icon,omitempty" gorm:"type:text"`
	Order             int       `json:"order" gorm:"column:order;not null"`
	CreatedAt         time.Time `json:"createdAt"`
	UpdatedAt         time.Time `json:"updatedAt"`
}

func (s *Skill) BeforeCreate(*gorm.DB) error {
	if s.ID == uuid.Nil {
		s.ID = uuid.New()
	}
	return nil
}

// Validate rejects out-of-range and unknown values at the boundary instead
// of letting the store surface them as opaque errors.
func (s *Skill) Validate() error {
	if s.Name == "" {
		return errors.New("name is required")
	}
	if _, ok := skillCategories[s.Category]; !ok {
		return fmt.Errorf("category must be one of %q, %q or %q",
			SkillCategoryFrontend, SkillCategoryDesign, SkillCategoryTools)
	}
	if s.Proficiency < 0 || s.Proficiency > 100 {
		return errors.New("proficiency must be between 0 and 100")
	}
	if s.YearsOfExperience < 0 {
		return errors.New("yearsOfExperience must not be negative")
	}
	return nil
}
