package http

import (
	"net/http"
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBooksController_AddBookPage(t *testing.T) {
	service, _, cleanup := setupTestService(t)
	defer cleanup()

	_, err := service.AddAuthor("George Orwell", "", "")
	require.NoError(t, err)

	router := newTestRouter(service)

	w := doGet(router, "/add_book")

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "George Orwell")
}

func TestBooksController_AddBook(t *testing.T) {
	t.Run("creates book and confirms with title", func(t *testing.T) {
		service, _, cleanup := setupTestService(t)
		defer cleanup()
		author, err := service.AddAuthor("George Orwell", "", "")
		require.NoError(t, err)
		router := newTestRouter(service)

		w := doPostForm(router, "/add_book", url.Values{
			"isbn":             {"9780451524935"},
			"title":            {"1984"},
			"publication_year": {"1949"},
			"author_id":        {itoa(author.ID)},
		})

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), "Book '1984' added successfully.")
	})

	t.Run("missing fields re-render with validation message", func(t *testing.T) {
		service, _, cleanup := setupTestService(t)
		defer cleanup()
		router := newTestRouter(service)

		w := doPostForm(router, "/add_book", url.Values{
			"title": {"1984"},
		})

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), "ISBN, Title, and Author are required.")
	})

	t.Run("duplicate ISBN re-renders with conflict message", func(t *testing.T) {
		service, _, cleanup := setupTestService(t)
		defer cleanup()
		author, err := service.AddAuthor("George Orwell", "", "")
		require.NoError(t, err)
		_, err = service.AddBook("9780451524935", "1984", "1949", itoa(author.ID))
		require.NoError(t, err)
		router := newTestRouter(service)

		w := doPostForm(router, "/add_book", url.Values{
			"isbn":      {"9780451524935"},
			"title":     {"Another 1984"},
			"author_id": {itoa(author.ID)},
		})

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), "ISBN '9780451524935' already exists.")
	})

	t.Run("unknown author re-renders with message", func(t *testing.T) {
		service, _, cleanup := setupTestService(t)
		defer cleanup()
		router := newTestRouter(service)

		w := doPostForm(router, "/add_book", url.Values{
			"isbn":      {"9780451524935"},
			"title":     {"1984"},
			"author_id": {"424242"},
		})

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), "Author not found.")
	})
}
