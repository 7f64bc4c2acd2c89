// Package authors provides database operations for author management.
package authors

import (
	"gorm.io/gorm"

	"librarium/internal/entities"
)

// Repository handles all author database operations.
type Repository struct {
	db *gorm.DB
}

// NewRepository creates a new authors repository.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// Create persists a new author.
func (r *Repository) Create(author *entities.Author) error {
	return r.db.Create(author).Error
}

// GetByID retrieves an author by its ID.
func (r *Repository) GetByID(id uint) (*entities.Author, error) {
	var author entities.Author
	err := r.db.First(&author, id).Error
	if err != nil {
		return nil, err
	}
	return &author, nil
}

// GetAll retrieves all authors ordered by name.
func (r *Repository) GetAll() ([]entities.Author, error) {
	var authors []entities.Author
	err := r.db.Order("name ASC").Find(&authors).Error
	return authors, err
}

// Delete removes an author by its ID.
func (r *Repository) Delete(id uint) error {
	return r.db.Delete(&entities.Author{}, id).Error
}
