package handlers

import (
	"log/slog"
	"net/http"

	"github.com/siamstore/backend/internal/config"
	"github.com/siamstore/backend/internal/store"
)

const maxDiagnosticsCollections = 10

// DiagnosticsHandler reports backend and database status for the /test
// endpoint. It never fails; degraded states are described in the body.
type DiagnosticsHandler struct {
	store  store.Store
	dbCfg  config.DatabaseConfig
	logger *slog.Logger
}

// NewDiagnosticsHandler creates a new diagnostics handler
func NewDiagnosticsHandler(s store.Store, dbCfg config.DatabaseConfig, logger *slog.Logger) *DiagnosticsHandler {
	return &DiagnosticsHandler{
		store:  s,
		dbCfg:  dbCfg,
		logger: logger,
	}
}

// DiagnosticsResponse mirrors the shape expected by the status viewer
type DiagnosticsResponse struct {
	Backend          string   `json:"backend"`
	Database         string   `json:"database"`
	DatabaseURL      string   `json:"database_url"`
	DatabaseName     string   `json:"database_name"`
	ConnectionStatus string   `json:"connection_status"`
	Collections      []string `json:"collections"`
}

// ServeHTTP handles GET /test
func (h *DiagnosticsHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	response := DiagnosticsResponse{
		Backend:          "running",
		Database:         "not available",
		DatabaseURL:      setOrNot(h.dbCfg.URL),
		DatabaseName:     setOrNot(h.dbCfg.Name),
		ConnectionStatus: "not connected",
		Collections:      []string{},
	}

	ctx := r.Context()

	if err := h.store.Ping(ctx); err != nil {
		h.logger.Warn("diagnostics ping failed", "error", err)
		response.Database = "error: " + truncate(err.Error(), 50)
		WriteJSON(w, http.StatusOK, response, h.logger)
		return
	}

	response.Database = "connected"
	response.ConnectionStatus = "connected"

	collections, err := h.store.Collections(ctx)
	if err != nil {
		h.logger.Warn("diagnostics collection listing failed", "error", err)
		response.Database = "connected but error: " + truncate(err.Error(), 50)
	} else {
		if len(collections) > maxDiagnosticsCollections {
			collections = collections[:maxDiagnosticsCollections]
		}
		response.Collections = collections
	}

	WriteJSON(w, http.StatusOK, response, h.logger)
}

func setOrNot(value string) string {
	if value == "" {
		return "not set"
	}
	return "set"
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n]
}
