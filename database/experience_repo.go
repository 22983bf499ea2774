package database

import (
	"github.com/google/uuid"
	"github.com/precious1994-dev/APP-PORT/models"
	"gorm.io/gorm"
)

type ExperienceRepo struct {
	db *gorm.DB
}

func NewExperienceRepo(db *gorm.DB) *ExperienceRepo {
	return &ExperienceRepo{db}
}

// FindAll returns all experiences sorted ascending by their display order.
// Ties in order fall back to store insertion order.
func (r *ExperienceRepo) FindAll() ([]*models.Experience, error) {
	var experiences []*models.Experience
	err := r.db.Order(`"order" ASC`).Find(&experiences).Error
	return experiences, err
}

// FindByID returns an experience by its ID
func (r *ExperienceRepo) FindByID(id uuid.UUID) (*models.Experience, error) {
	var experience models.Experience
	err := r.db.First(&experience, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &experience, nil
}

// Count returns the number of experience records
func (r *ExperienceRepo) Count() (int64, error) {
	var count int64
	err := r.db.Model(&models.Experience{}).Count(&count).Error
	return count, err
}

// Add inserts a new experience into the database
func (r *ExperienceRepo) Add(experience *models.Experience) error {
	return r.db.Create(experience).Error
}

// Update updates an existing experience in the database
func (r *ExperienceRepo) Update(experience *models.Experience) error {
	return r.db.Save(experience).Error
}

// Delete removes an experience from the database by id
func (r *ExperienceRepo) Delete(id uuid.UUID) error {
	return r.db.Delete(&models.Experience{}, "id = ?", id).Error
}
