// Package books provides database operations for book listing and management.
//
// The listing query implements the search/sort contract of the home page:
// case-insensitive substring matching against book title, ISBN, or author
// name, sorted by title or by author name with a title tie-break.
package books

import (
	"errors"

	sqlite3 "github.com/mattn/go-sqlite3"
	"gorm.io/gorm"

	"librarium/internal/entities"
)

// SortKey selects the ordering of a book listing.
type SortKey string

const (
	SortByTitle  SortKey = "title"
	SortByAuthor SortKey = "author"
)

// Repository handles all book database operations.
type Repository struct {
	db *gorm.DB
}

// NewRepository creates a new books repository.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// List retrieves books joined with their authors.
//
// An empty filter returns all books. A non-empty filter is matched as a
// case-insensitive wildcard-wrapped substring against the book title, the
// ISBN, or the author name. SortByAuthor orders by author name then title;
// any other sort key orders by title alone.
func (r *Repository) List(filter string, sort SortKey) ([]entities.Book, error) {
	query := r.db.Model(&entities.Book{}).
		Joins("JOIN authors ON authors.id = books.author_id").
		Preload("Author")

	if filter != "" {
		searchPattern := "%" + filter + "%"
		query = query.Where(
			"LOWER(books.title) LIKE LOWER(?) OR LOWER(books.isbn) LIKE LOWER(?) OR LOWER(authors.name) LIKE LOWER(?)",
			searchPattern, searchPattern, searchPattern,
		)
	}

	if sort == SortByAuthor {
		query = query.Order("authors.name ASC, books.title ASC")
	} else {
		query = query.Order("books.title ASC")
	}

	var books []entities.Book
	err := query.Find(&books).Error
	return books, err
}

// Create persists a new book. A duplicate ISBN surfaces as a
// unique-constraint violation; nothing is persisted in that case.
func (r *Repository) Create(book *entities.Book) error {
	return r.db.Create(book).Error
}

// GetByID retrieves a book by its ID with the author preloaded.
func (r *Repository) GetByID(id uint) (*entities.Book, error) {
	var book entities.Book
	err := r.db.Preload("Author").First(&book, id).Error
	if err != nil {
		return nil, err
	}
	return &book, nil
}

// Delete removes a book by its ID.
func (r *Repository) Delete(id uint) error {
	return r.db.Delete(&entities.Book{}, id).Error
}

// CountByAuthor returns how many books reference the given author.
func (r *Repository) CountByAuthor(authorID uint) (int64, error) {
	var count int64
	err := r.db.Model(&entities.Book{}).Where("author_id = ?", authorID).Count(&count).Error
	return count, err
}

// IsUniqueConstraintViolation reports whether err is a SQLite
// unique-constraint violation (a duplicate ISBN on insert).
func IsUniqueConstraintViolation(err error) bool {
	var sqliteErr sqlite3.Error
	if errors.As(err, &sqliteErr) {
		return sqliteErr.Code == sqlite3.ErrConstraint &&
			sqliteErr.ExtendedCode == sqlite3.ErrConstraintUnique
	}
	return errors.Is(err, gorm.ErrDuplicatedKey)
}
