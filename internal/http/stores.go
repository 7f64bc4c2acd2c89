package http

import (
	"librarium/internal/database/books"
	"librarium/internal/entities"
)

// LibraryStore defines the query and mutation operations the controllers
// need. library.Service is the production implementation.
type LibraryStore interface {
	ListBooks(filter string, sort books.SortKey) ([]entities.Book, error)
	ListAuthors() ([]entities.Author, error)
	AddAuthor(name, birthDate, dateOfDeath string) (*entities.Author, error)
	AddBook(isbn, title, publicationYear, authorID string) (*entities.Book, error)
	DeleteBook(id uint) (*entities.Book, error)
}
