package http

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"librarium/internal/database/books"
)

type HomeController struct {
	library LibraryStore
}

func NewHomeController(library LibraryStore) *HomeController {
	return &HomeController{
		library: library,
	}
}

// Home renders the book listing with optional search and sorting.
// GET /?sort=title|author&q=<filter>&msg=<one-shot status message>
func (controller *HomeController) Home(c *gin.Context) {
	sort := c.DefaultQuery("sort", "title")
	q := strings.TrimSpace(c.Query("q"))
	msg := strings.TrimSpace(c.Query("msg"))

	results, err := controller.library.ListBooks(q, books.SortKey(sort))
	if err != nil {
		c.String(http.StatusInternalServerError, "Error loading books: %s", err.Error())
		return
	}

	message := ""
	if q != "" && len(results) == 0 {
		message = fmt.Sprintf("No books match: '%s'", q)
	}
	if msg != "" {
		message = msg
	}

	c.HTML(http.StatusOK, "home", gin.H{
		"Books":   results,
		"Sort":    sort,
		"Query":   q,
		"Message": message,
	})
}
