package database

import (
	"github.com/google/uuid"
	"github.com/precious1994-dev/APP-PORT/models"
	"gorm.io/gorm"
)

type ContactRepo struct {
	db *gorm.DB
}

func NewContactRepo(db *gorm.DB) *ContactRepo {
	return &ContactRepo{db}
}

// FindAll returns all contact records, newest first
func (r *ContactRepo) FindAll() ([]*models.Contact, error) {
	var contacts []*models.Contact
	err := r.db.Order("created_at DESC").Find(&contacts).Error
	return contacts, err
}

// FindByID returns a contact record by its ID
func (r *ContactRepo) FindByID(id uuid.UUID) (*models.Contact, error) {
	var contact models.Contact
	err := r.db.First(&contact, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &contact, nil
}

// Replace removes every existing contact record and inserts the given one in
// a single transaction.
func (r *ContactRepo) Replace(contact *models.Contact) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("1 = 1").Delete(&models.Contact{}).Error; err != nil {
			return err
		}
		return tx.Create(contact).Error
	})
}

// Update updates an existing contact record in the database
func (r *ContactRepo) Update(contact *models.Contact) error {
	return r.db.Save(contact).Error
}

// Delete removes a contact record from the database by id
func (r *ContactRepo) Delete(id uuid.UUID) error {
	return r.db.Delete(&models.Contact{}, "id = ?", id).Error
}
