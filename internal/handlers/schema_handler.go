package handlers

import (
	"log/slog"
	"net/http"

	"github.com/siamstore/backend/internal/models"
	"github.com/siamstore/backend/internal/schema"
)

// SchemaHandler serves model schemas for the viewer
type SchemaHandler struct {
	logger *slog.Logger
}

// NewSchemaHandler creates a new schema handler
func NewSchemaHandler(logger *slog.Logger) *SchemaHandler {
	return &SchemaHandler{logger: logger}
}

// ServeHTTP handles GET /schema
func (h *SchemaHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	response := map[string]schema.Schema{
		"user":    schema.Of(models.User{}),
		"product": schema.Of(models.Product{}),
		"order":   schema.Of(models.Order{}),
	}

	WriteJSON(w, http.StatusOK, response, h.logger)
}
