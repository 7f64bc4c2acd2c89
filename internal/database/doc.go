// Package database provides the data access layer for the application.
//
// # Architecture
//
// The database layer is organized into domain-specific sub-packages:
//
//	database/
//	├── database.go      # Connection setup, migrations
//	├── authors/         # Author CRUD operations
//	└── books/           # Book listing, lookup and CRUD operations
//
// # Using Sub-packages
//
// Each sub-package provides a Repository type with domain-specific operations:
//
//	// Initialize database connection
//	db, err := database.NewDatabase("./library.sqlite")
//
//	// Create domain-specific repositories
//	authorsRepo := authors.NewRepository(db.DB)
//	booksRepo := books.NewRepository(db.DB)
//
//	// Use repositories
//	author, err := authorsRepo.GetByID(123)
//	results, err := booksRepo.List("tolkien", books.SortByAuthor)
//
// The repositories are composed by library.Service, which holds the
// lifecycle rules (validation, ISBN conflicts, author cleanup on delete).
package database
