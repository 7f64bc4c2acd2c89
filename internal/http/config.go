package http

import (
	"librarium/internal/database"
)

// RouterConfig contains all dependencies and configuration needed
// to create the HTTP router.
type RouterConfig struct {
	// Core dependencies
	Library  LibraryStore
	Database *database.Database

	// UI paths
	TemplatesPath string
	StaticPath    string

	// Application info
	Version string
}
