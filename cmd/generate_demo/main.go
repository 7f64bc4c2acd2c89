// Command generate_demo creates a demo database with sample public domain
// authors and books.
// Usage: go run cmd/generate_demo/main.go [-db path/to/demo.db]
package main

import (
	"flag"
	"log"
	"os"
	"strconv"

	"librarium/internal/database"
	"librarium/internal/database/authors"
	"librarium/internal/database/books"
	"librarium/internal/library"
)

const defaultDemoDatabasePath = "./demo/demo.sqlite"

type demoBook struct {
	isbn  string
	title string
	year  string
}

type demoAuthor struct {
	name        string
	birthDate   string
	dateOfDeath string
	books       []demoBook
}

func main() {
	dbPath := flag.String("db", defaultDemoDatabasePath, "path to the demo database file")
	flag.Parse()

	log.Printf("Generating demo database at %s...", *dbPath)

	// Delete existing demo database to start fresh
	if err := os.Remove(*dbPath); err != nil && !os.IsNotExist(err) {
		log.Fatalf("Failed to remove existing demo database: %v", err)
	}

	db, err := database.NewDatabase(*dbPath)
	if err != nil {
		log.Fatalf("Failed to create database: %v", err)
	}
	defer db.Close()

	service := library.NewService(
		authors.NewRepository(db.DB),
		books.NewRepository(db.DB),
	)

	for _, cfg := range demoLibrary() {
		author, err := service.AddAuthor(cfg.name, cfg.birthDate, cfg.dateOfDeath)
		if err != nil {
			log.Printf("Failed to add author %s: %v", cfg.name, err)
			continue
		}
		log.Printf("Added author: %s", author.Name)

		for _, b := range cfg.books {
			book, err := service.AddBook(b.isbn, b.title, b.year, itoa(author.ID))
			if err != nil {
				log.Printf("Failed to add book %s: %v", b.title, err)
				continue
			}
			log.Printf("  Added book: %s (%s)", book.Title, book.ISBN)
		}
	}

	log.Println("Demo database generated successfully!")
}

func demoLibrary() []demoAuthor {
	return []demoAuthor{
		{
			name:        "J.R.R. Tolkien",
			birthDate:   "1892-01-03",
			dateOfDeath: "1973-09-02",
			books: []demoBook{
				{isbn: "9780547928227", title: "The Hobbit", year: "1937"},
				{isbn: "9780544003415", title: "The Lord of the Rings", year: "1954"},
			},
		},
		{
			name:        "Jane Austen",
			birthDate:   "1775-12-16",
			dateOfDeath: "1817-07-18",
			books: []demoBook{
				{isbn: "9780141439518", title: "Pride and Prejudice", year: "1813"},
				{isbn: "9780141439662", title: "Sense and Sensibility", year: "1811"},
			},
		},
		{
			name:        "George Orwell",
			birthDate:   "1903-06-25",
			dateOfDeath: "1950-01-21",
			books: []demoBook{
				{isbn: "9780451524935", title: "1984", year: "1949"},
				{isbn: "9780452284241", title: "Animal Farm", year: "1945"},
			},
		},
		{
			name:        "Mary Shelley",
			birthDate:   "1797-08-30",
			dateOfDeath: "1851-02-01",
			books: []demoBook{
				{isbn: "9780486282114", title: "Frankenstein", year: "1818"},
			},
		},
	}
}

func itoa(id uint) string {
	return strconv.FormatUint(uint64(id), 10)
}
