package http

import (
	"html/template"
	"net/http"
	"net/http/httptest"
	"net/url"
	"os"
	"strconv"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"

	"librarium/internal/database"
	"librarium/internal/database/authors"
	"librarium/internal/database/books"
	"librarium/internal/library"
)

func setupTestService(t *testing.T) (*library.Service, *database.Database, func()) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	dbPath := "./test_http_" + strings.ReplaceAll(t.Name(), "/", "_") + ".db"
	db, err := database.NewDatabase(dbPath)
	require.NoError(t, err)

	service := library.NewService(
		authors.NewRepository(db.DB),
		books.NewRepository(db.DB),
	)

	cleanup := func() {
		db.Close()
		os.Remove(dbPath)
	}
	return service, db, cleanup
}

// testTemplates renders just enough of each page for assertions: the status
// message plus the listed titles or author names.
func testTemplates() *template.Template {
	return template.Must(template.New("").Parse(`
{{define "home"}}{{.Message}}|{{range .Books}}{{.Title}};{{end}}{{end}}
{{define "add_author"}}{{.Message}}{{end}}
{{define "add_book"}}{{.Message}}|{{range .Authors}}{{.Name}};{{end}}{{end}}`))
}

func newTestRouter(service *library.Service) *gin.Engine {
	router := gin.New()
	router.SetHTMLTemplate(testTemplates())

	home := NewHomeController(service)
	authorsController := NewAuthorsController(service)
	booksController := NewBooksController(service)
	deleteController := NewDeleteController(service)

	router.GET("/", home.Home)
	router.GET("/add_author", authorsController.AddAuthorPage)
	router.POST("/add_author", authorsController.AddAuthor)
	router.GET("/add_book", booksController.AddBookPage)
	router.POST("/add_book", booksController.AddBook)
	router.POST("/book/:id/delete", deleteController.DeleteBook)

	return router
}

func itoa(id uint) string {
	return strconv.FormatUint(uint64(id), 10)
}

func doGet(router *gin.Engine, path string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", path, nil)
	router.ServeHTTP(w, req)
	return w
}

func doPostForm(router *gin.Engine, path string, form url.Values) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req, _ := http.NewRequest("POST", path, strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	router.ServeHTTP(w, req)
	return w
}
