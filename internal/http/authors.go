package http

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
)

type AuthorsController struct {
	library LibraryStore
}

func NewAuthorsController(library LibraryStore) *AuthorsController {
	return &AuthorsController{
		library: library,
	}
}

// AddAuthorPage renders the empty add-author form.
// GET /add_author
func (controller *AuthorsController) AddAuthorPage(c *gin.Context) {
	c.HTML(http.StatusOK, "add_author", gin.H{})
}

// AddAuthor creates an author from form input and re-renders the form with
// a status message.
// POST /add_author (fields: name, birth_date, date_of_death)
func (controller *AuthorsController) AddAuthor(c *gin.Context) {
	author, err := controller.library.AddAuthor(
		c.PostForm("name"),
		c.PostForm("birth_date"),
		c.PostForm("date_of_death"),
	)

	var message string
	if err != nil {
		msg, ok := userMessage(err)
		if !ok {
			c.String(http.StatusInternalServerError, "Error adding author: %s", err.Error())
			return
		}
		message = msg
	} else {
		message = fmt.Sprintf("Author '%s' added successfully.", author.Name)
	}

	c.HTML(http.StatusOK, "add_author", gin.H{
		"Message": message,
	})
}
