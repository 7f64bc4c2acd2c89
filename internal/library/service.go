// Package library implements the query and mutation rules governing the
// author/book lifecycle: listing with search and sort, validated creation,
// and deletion with author cleanup.
package library

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"gorm.io/gorm"

	"librarium/internal/database/authors"
	"librarium/internal/database/books"
	"librarium/internal/entities"
)

// dateLayout is the accepted form for birth and death dates (ISO 8601).
const dateLayout = "2006-01-02"

// Service executes listing and lifecycle operations against the injected
// repositories. All operations run synchronously within a single request.
type Service struct {
	authors *authors.Repository
	books   *books.Repository
}

// NewService creates a new library service.
func NewService(authorsRepo *authors.Repository, booksRepo *books.Repository) *Service {
	return &Service{
		authors: authorsRepo,
		books:   booksRepo,
	}
}

// ListBooks returns the books matching filter, ordered by sort. Read-only.
func (s *Service) ListBooks(filter string, sort books.SortKey) ([]entities.Book, error) {
	return s.books.List(filter, sort)
}

// ListAuthors returns all authors ordered by name, for author selection.
func (s *Service) ListAuthors() ([]entities.Author, error) {
	return s.authors.GetAll()
}

// AddAuthor validates and persists a new author. Name is required after
// trimming; the dates must be ISO 8601 (YYYY-MM-DD) or empty, and empty
// values are stored as NULL rather than defaulted.
func (s *Service) AddAuthor(name, birthDate, dateOfDeath string) (*entities.Author, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, &ValidationError{Message: "Name is required."}
	}

	born, err := parseOptionalDate(birthDate)
	if err != nil {
		return nil, &ValidationError{Message: fmt.Sprintf("Invalid birth date '%s'. Use YYYY-MM-DD.", strings.TrimSpace(birthDate))}
	}
	died, err := parseOptionalDate(dateOfDeath)
	if err != nil {
		return nil, &ValidationError{Message: fmt.Sprintf("Invalid date of death '%s'. Use YYYY-MM-DD.", strings.TrimSpace(dateOfDeath))}
	}

	author := &entities.Author{
		Name:        name,
		BirthDate:   born,
		DateOfDeath: died,
	}
	if err := s.authors.Create(author); err != nil {
		return nil, fmt.Errorf("failed to create author: %w", err)
	}
	return author, nil
}

// AddBook validates and persists a new book. ISBN, title and author are
// required after trimming; the publication year must be an integer or empty
// (stored as NULL); the referenced author must exist. A duplicate ISBN is
// rejected with a ConflictError and leaves the store unchanged.
func (s *Service) AddBook(isbn, title, publicationYear, authorID string) (*entities.Book, error) {
	isbn = strings.TrimSpace(isbn)
	title = strings.TrimSpace(title)
	yearRaw := strings.TrimSpace(publicationYear)
	authorIDRaw := strings.TrimSpace(authorID)

	if isbn == "" || title == "" || authorIDRaw == "" {
		return nil, &ValidationError{Message: "ISBN, Title, and Author are required."}
	}

	var year *int
	if yearRaw != "" {
		parsed, err := strconv.Atoi(yearRaw)
		if err != nil {
			return nil, &ValidationError{Message: fmt.Sprintf("Invalid publication year '%s'.", yearRaw)}
		}
		year = &parsed
	}

	id, err := strconv.ParseUint(authorIDRaw, 10, 32)
	if err != nil {
		return nil, &ValidationError{Message: fmt.Sprintf("Invalid author '%s'.", authorIDRaw)}
	}

	author, err := s.authors.GetByID(uint(id))
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrAuthorNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load author: %w", err)
	}

	book := &entities.Book{
		ISBN:            isbn,
		Title:           title,
		PublicationYear: year,
		AuthorID:        author.ID,
	}
	if err := s.books.Create(book); err != nil {
		if books.IsUniqueConstraintViolation(err) {
			return nil, &ConflictError{
				Message: fmt.Sprintf("ISBN '%s' already exists. Please use a unique ISBN or edit the existing book.", isbn),
			}
		}
		return nil, fmt.Errorf("failed to create book: %w", err)
	}

	book.Author = *author
	return book, nil
}

// DeleteBook removes a book and, when it was the author's last remaining
// book, the author as well. The cleanup is a second commit after the book
// delete, not one transaction: a concurrent read between the two can observe
// a bookless author. Returns the deleted book for confirmation messages.
func (s *Service) DeleteBook(id uint) (*entities.Book, error) {
	book, err := s.books.GetByID(id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrBookNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load book: %w", err)
	}

	if err := s.books.Delete(id); err != nil {
		return nil, fmt.Errorf("failed to delete book: %w", err)
	}

	remaining, err := s.books.CountByAuthor(book.AuthorID)
	if err != nil {
		return nil, fmt.Errorf("failed to count remaining books: %w", err)
	}
	if remaining == 0 {
		if err := s.authors.Delete(book.AuthorID); err != nil {
			return nil, fmt.Errorf("failed to delete author: %w", err)
		}
	}

	return book, nil
}

func parseOptionalDate(raw string) (*time.Time, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil, nil
	}
	parsed, err := time.Parse(dateLayout, raw)
	if err != nil {
		return nil, err
	}
	return &parsed, nil
}
