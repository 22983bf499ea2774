package database

import (
	"github.com/google/uuid"
	"github.com/precious1994-dev/APP-PORT/models"
	"gorm.io/gorm"
)

type AboutRepo struct {
	db *gorm.DB
}

func NewAboutRepo(db *gorm.DB) *AboutRepo {
	return &AboutRepo{db}
}

// FindAll returns all about records, newest first
func (r *AboutRepo) FindAll() ([]*models.About, error) {
	var abouts []*models.About
	err := r.db.Order("created_at DESC").Find(&abouts).Error
	return abouts, err
}

// FindByID returns an about record by its ID
func (r *AboutRepo) FindByID(id uuid.UUID) (*models.About, error) {
	var about models.About
	err := r.db.First(&about, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &about, nil
}

// Replace removes every existing about record and inserts the given one in a
// single transaction.
func (r *AboutRepo) Replace(about *models.About) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("1 = 1").Delete(&models.About{}).Error; err != nil {
			return err
		}
		return tx.Create(about).Error
	})
}

// Update updates an existing about record in the database
func (r *AboutRepo) Update(about *models.About) error {
	return r.db.Save(about).Error
}

// Delete removes an about record from the database by id
func (r *AboutRepo) Delete(id uuid.UUID) error {
	return r.db.Delete(&models.About{}, "id = ?", id).Error
}
