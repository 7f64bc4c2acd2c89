package entities

import "time"

// Author is a book author. Authors own their books: an author is created
// explicitly but removed automatically once its last book is deleted.
type Author struct {
	ID          uint       `gorm:"primaryKey" json:"id"`
	Name        string     `gorm:"index;size:256;not null" json:"name"`
	BirthDate   *time.Time `json:"birth_date,omitempty"`
	DateOfDeath *time.Time `json:"date_of_death,omitempty"`
	Books       []Book     `gorm:"foreignKey:AuthorID" json:"books,omitempty"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
}

// Book belongs to exactly one author. The ISBN acts as the business key and
// is unique across all books.
type Book struct {
	ID              uint      `gorm:"primaryKey" json:"id"`
	ISBN            string    `gorm:"uniqueIndex;size:20;not null" json:"isbn"`
	Title           string    `gorm:"index;size:512;not null" json:"title"`
	PublicationYear *int      `json:"publication_year,omitempty"`
	AuthorID        uint      `gorm:"index;not null" json:"author_id"`
	Author          Author    `gorm:"foreignKey:AuthorID" json:"author,omitempty"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}

func (Author) TableName() string {
	return "authors"
}

func (Book) TableName() string {
	return "books"
}
