package http

import (
	"net/http"
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAuthorsController_AddAuthorPage(t *testing.T) {
	service, _, cleanup := setupTestService(t)
	defer cleanup()

	router := newTestRouter(service)

	w := doGet(router, "/add_author")

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestAuthorsController_AddAuthor(t *testing.T) {
	t.Run("creates author and confirms with name", func(t *testing.T) {
		service, _, cleanup := setupTestService(t)
		defer cleanup()
		router := newTestRouter(service)

		w := doPostForm(router, "/add_author", url.Values{
			"name":       {"Jane Austen"},
			"birth_date": {"1775-12-16"},
		})

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), "Author 'Jane Austen' added successfully.")

		all, err := service.ListAuthors()
		require.NoError(t, err)
		require.Len(t, all, 1)
		assert.Equal(t, "Jane Austen", all[0].Name)
	})

	t.Run("empty name re-renders with validation message", func(t *testing.T) {
		service, _, cleanup := setupTestService(t)
		defer cleanup()
		router := newTestRouter(service)

		w := doPostForm(router, "/add_author", url.Values{
			"name": {"   "},
		})

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), "Name is required.")

		all, err := service.ListAuthors()
		require.NoError(t, err)
		assert.Empty(t, all)
	})

	t.Run("malformed birth date re-renders with validation message", func(t *testing.T) {
		service, _, cleanup := setupTestService(t)
		defer cleanup()
		router := newTestRouter(service)

		w := doPostForm(router, "/add_author", url.Values{
			"name":       {"Jane Austen"},
			"birth_date": {"not-a-date"},
		})

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), "Invalid birth date")
	})
}
