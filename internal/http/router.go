package http

import (
	"html/template"
	"strconv"

	"github.com/gin-gonic/gin"
)

// NewRouter creates and configures the HTTP router with all endpoints.
// Uses RouterConfig to receive all dependencies, improving testability
// and reducing parameter count.
func NewRouter(cfg RouterConfig) *gin.Engine {
	router := gin.New()
	router.Use(gin.Logger())
	router.Use(gin.Recovery())

	// Define custom template functions
	funcMap := template.FuncMap{
		"formatYear": func(year *int) string {
			if year == nil {
				return ""
			}
			return strconv.Itoa(*year)
		},
	}

	// Load HTML templates with custom functions
	tmpl := template.Must(template.New("").Funcs(funcMap).ParseGlob(cfg.TemplatesPath + "/*.html"))
	router.SetHTMLTemplate(tmpl)

	// Serve static files
	router.Static("/static", cfg.StaticPath)

	// Create controllers
	health := NewHealthController(cfg.Database, cfg.Version)
	home := NewHomeController(cfg.Library)
	authorsController := NewAuthorsController(cfg.Library)
	booksController := NewBooksController(cfg.Library)
	deleteController := NewDeleteController(cfg.Library)

	// Health endpoints
	router.GET("/health", health.Status)
	router.GET("/ping", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"message": "pong",
		})
	})

	// Library endpoints
	router.GET("/", home.Home)
	router.GET("/add_author", authorsController.AddAuthorPage)
	router.POST("/add_author", authorsController.AddAuthor)
	router.GET("/add_book", booksController.AddBookPage)
	router.POST("/add_book", booksController.AddBook)
	router.POST("/book/:id/delete", deleteController.DeleteBook)

	return router
}
