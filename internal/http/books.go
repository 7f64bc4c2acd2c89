package http

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
)

type BooksController struct {
	library LibraryStore
}

func NewBooksController(library LibraryStore) *BooksController {
	return &BooksController{
		library: library,
	}
}

// AddBookPage renders the add-book form pre-populated with the author list.
// GET /add_book
func (controller *BooksController) AddBookPage(c *gin.Context) {
	authors, err := controller.library.ListAuthors()
	if err != nil {
		c.String(http.StatusInternalServerError, "Error loading authors: %s", err.Error())
		return
	}

	c.HTML(http.StatusOK, "add_book", gin.H{
		"Authors": authors,
	})
}

// AddBook creates a book from form input and re-renders the form with a
// status message.
// POST /add_book (fields: isbn, title, publication_year, author_id)
func (controller *BooksController) AddBook(c *gin.Context) {
	book, err := controller.library.AddBook(
		c.PostForm("isbn"),
		c.PostForm("title"),
		c.PostForm("publication_year"),
		c.PostForm("author_id"),
	)

	var message string
	if err != nil {
		msg, ok := userMessage(err)
		if !ok {
			c.String(http.StatusInternalServerError, "Error adding book: %s", err.Error())
			return
		}
		message = msg
	} else {
		message = fmt.Sprintf("Book '%s' added successfully.", book.Title)
	}

	authors, err := controller.library.ListAuthors()
	if err != nil {
		c.String(http.StatusInternalServerError, "Error loading authors: %s", err.Error())
		return
	}

	c.HTML(http.StatusOK, "add_book", gin.H{
		"Authors": authors,
		"Message": message,
	})
}
