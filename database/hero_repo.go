package database

import (
	"github.com/google/uuid"
	"github.com/precious1994-dev/APP-PORT/models"
	"gorm.io/gorm"
)

type HeroRepo struct {
	db *gorm.DB
}

func NewHeroRepo(db *gorm.DB) *HeroRepo {
	return &HeroRepo{db}
}

// FindAll returns all hero records, newest first. Cardinality is 0 or 1 in
// practice; callers take the first element as "the" hero.
func (r *HeroRepo) FindAll() ([]*models.Hero, error) {
	var heroes []*models.Hero
	err := r.db.Order("created_at DESC").Find(&heroes).Error
	return heroes, err
}

// FindByID returns a hero by its ID
func (r *HeroRepo) FindByID(id uuid.UUID) (*models.Hero, error) {
	var hero models.Hero
	err := r.db.First(&hero, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &hero, nil
}

// Replace removes every existing hero record and inserts the given one in a
// single transaction, so readers never observe an empty collection and a
// failed insert rolls the delete back.
func (r *HeroRepo) Replace(hero *models.Hero) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("1 = 1").Delete(&models.Hero{}).Error; err != nil {
			return err
		}
		return tx.Create(hero).Error
	})
}

// Update updates an existing hero in the database
func (r *HeroRepo) Update(hero *models.Hero) error {
	return r.db.Save(hero).Error
}

// Delete removes a hero from the database by id
func (r *HeroRepo) Delete(id uuid.UUID) error {
	return r.db.Delete(&models.Hero{}, "id = ?", id).Error
}
