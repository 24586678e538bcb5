package handler

import (
	"fmt"
	"net/http"
	"os"
	"path/filepath"

	"github.com/deppfellow/persons-api/internal/server"
	"github.com/labstack/echo/v4"
)

// StaticDir holds openapi.json and openapi.html, relative to the working
// directory.
const StaticDir = "static"

// OpenAPIHandler serves the API docs UI, which loads openapi.json from
// /static.
type OpenAPIHandler struct {
	Handler
}

func NewOpenAPIHandler(s *server.Server) *OpenAPIHandler {
	return &OpenAPIHandler{
		Handler: NewHandler(s),
	}
}

// ServeOpenAPIUI serves static/openapi.html with caching disabled.
func (h *OpenAPIHandler) ServeOpenAPIUI(c echo.Context) error {
	page, err := os.ReadFile(filepath.Join(StaticDir, "openapi.html"))
	if err != nil {
		return fmt.Errorf("failed to read OpenAPI UI template: %w", err)
	}

	c.Response().Header().Set("Cache-Control", "no-cache")

	return c.HTMLBlob(http.StatusOK, page)
}
