package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/siamstore/backend/internal/config"
	"github.com/siamstore/backend/internal/store"
	"github.com/siamstore/backend/pkg/logger"
)

func TestDiagnostics_HealthyStore(t *testing.T) {
	s := store.NewMemoryStore()
	if _, err := s.Insert(context.Background(), store.CollectionProduct, map[string]interface{}{"title": "Mug"}); err != nil {
		t.Fatalf("insert failed: %v", err)
	}

	dbCfg := config.DatabaseConfig{URL: "mongodb://localhost:27017", Name: "ecommerce"}
	handler := NewDiagnosticsHandler(s, dbCfg, logger.New("error"))

	req := httptest.NewRequest(http.MethodGet, "/test", nil)
	w := httptest.NewRecorder()
	handler.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}

	var resp DiagnosticsResponse
	if err := json.NewDecoder(w.Body).Decode(&resp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}

	if resp.Backend != "running" {
		t.Errorf("backend = %q, want running", resp.Backend)
	}
	if resp.ConnectionStatus != "connected" {
		t.Errorf("connection_status = %q, want connected", resp.ConnectionStatus)
	}
	if resp.DatabaseURL != "set" || resp.DatabaseName != "set" {
		t.Errorf("database_url=%q database_name=%q, want both set", resp.DatabaseURL, resp.DatabaseName)
	}
	if len(resp.Collections) != 1 || resp.Collections[0] != store.CollectionProduct {
		t.Errorf("collections = %v, want [%s]", resp.Collections, store.CollectionProduct)
	}
}

func TestDiagnostics_UnreachableStore(t *testing.T) {
	dbCfg := config.DatabaseConfig{Name: "ecommerce"}
	handler := NewDiagnosticsHandler(failingStore{}, dbCfg, logger.New("error"))

	req := httptest.NewRequest(http.MethodGet, "/test", nil)
	w := httptest.NewRecorder()
	handler.ServeHTTP(w, req)

	// Diagnostics never fail outright
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}

	var resp DiagnosticsResponse
	if err := json.NewDecoder(w.Body).Decode(&resp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}

	if resp.ConnectionStatus != "not connected" {
		t.Errorf("connection_status = %q, want not connected", resp.ConnectionStatus)
	}
	if resp.Database == "connected" {
		t.Errorf("database = %q, want an error description", resp.Database)
	}
	if resp.DatabaseURL != "not set" {
		t.Errorf("database_url = %q, want not set", resp.DatabaseURL)
	}
}
