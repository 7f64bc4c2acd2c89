package http

import (
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strconv"

	"github.com/gin-gonic/gin"

	"librarium/internal/library"
)

type DeleteController struct {
	library LibraryStore
}

func NewDeleteController(library LibraryStore) *DeleteController {
	return &DeleteController{
		library: library,
	}
}

// DeleteBook deletes a book and redirects to the listing with a one-shot
// confirmation message. The author is removed as well when this was its
// last book.
// POST /book/:id/delete
func (controller *DeleteController) DeleteBook(c *gin.Context) {
	idStr := c.Param("id")
	id, err := strconv.ParseUint(idStr, 10, 32)
	if err != nil {
		c.String(http.StatusBadRequest, "Invalid book ID")
		return
	}

	book, err := controller.library.DeleteBook(uint(id))
	if errors.Is(err, library.ErrBookNotFound) {
		c.String(http.StatusNotFound, "Book not found")
		return
	}
	if err != nil {
		c.String(http.StatusInternalServerError, "Error deleting book: %s", err.Error())
		return
	}

	msg := fmt.Sprintf("Deleted book '%s'.", book.Title)
	c.Redirect(http.StatusFound, "/?msg="+url.QueryEscape(msg))
}
