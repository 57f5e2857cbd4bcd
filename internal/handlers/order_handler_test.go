package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/siamstore/backend/internal/models"
	"github.com/siamstore/backend/internal/repository"
	"github.com/siamstore/backend/internal/service"
	"github.com/siamstore/backend/internal/store"
	"github.com/siamstore/backend/pkg/logger"
)

// failingStore rejects every operation, standing in for an unreachable database
type failingStore struct{}

func (failingStore) Insert(ctx context.Context, collection string, doc interface{}) (string, error) {
	return "", errors.New("store unreachable")
}

func (failingStore) Query(ctx context.Context, collection string, filter store.Filter, limit int64) ([]store.Document, error) {
	return nil, errors.New("store unreachable")
}

func (failingStore) Collections(ctx context.Context) ([]string, error) {
	return nil, errors.New("store unreachable")
}

func (failingStore) Ping(ctx context.Context) error {
	return errors.New("store unreachable")
}

func newOrderHandler(s store.Store) *OrderHandler {
	orderRepo := repository.NewStoreOrderRepository(s)
	orderService := service.NewOrderService(orderRepo)
	return NewOrderHandler(orderService, logger.New("error"))
}

func TestOrderHandler_SubmitOrder(t *testing.T) {
	tests := []struct {
		name           string
		requestBody    interface{}
		expectedStatus int
		expectedDetail string
	}{
		{
			name: "matching subtotal",
			requestBody: models.Order{
				Items: []models.OrderItem{
					{ProductID: "1", Price: 100.0, Quantity: 2},
					{ProductID: "2", Price: 50.0, Quantity: 1},
				},
				Subtotal: 250.0,
			},
			expectedStatus: http.StatusOK,
		},
		{
			name: "subtotal mismatch",
			requestBody: models.Order{
				Items: []models.OrderItem{
					{ProductID: "1", Price: 100.0, Quantity: 2},
				},
				Subtotal: 150.0,
			},
			expectedStatus: http.StatusBadRequest,
			expectedDetail: "Subtotal mismatch",
		},
		{
			name: "empty items with zero subtotal",
			requestBody: models.Order{
				Items:    []models.OrderItem{},
				Subtotal: 0.0,
			},
			expectedStatus: http.StatusOK,
		},
		{
			name: "non-positive quantity",
			requestBody: models.Order{
				Items: []models.OrderItem{
					{ProductID: "1", Price: 100.0, Quantity: 0},
				},
				Subtotal: 0.0,
			},
			expectedStatus: http.StatusBadRequest,
			expectedDetail: "Quantity must be positive",
		},
		{
			name:           "invalid JSON",
			requestBody:    "not json",
			expectedStatus: http.StatusBadRequest,
			expectedDetail: "Invalid request body",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			handler := newOrderHandler(store.NewMemoryStore())

			var body []byte
			var err error
			if str, ok := tt.requestBody.(string); ok {
				body = []byte(str)
			} else {
				body, err = json.Marshal(tt.requestBody)
				if err != nil {
					t.Fatalf("failed to marshal request: %v", err)
				}
			}

			req := httptest.NewRequest(http.MethodPost, "/api/orders", bytes.NewReader(body))
			w := httptest.NewRecorder()

			handler.SubmitOrder(w, req)

			if w.Code != tt.expectedStatus {
				t.Errorf("status = %d, want %d", w.Code, tt.expectedStatus)
			}

			if tt.expectedStatus == http.StatusOK {
				var resp map[string]string
				if err := json.NewDecoder(w.Body).Decode(&resp); err != nil {
					t.Fatalf("failed to decode response: %v", err)
				}
				if resp["id"] == "" {
					t.Error("response id is empty")
				}
			} else if tt.expectedDetail != "" {
				var resp map[string]string
				if err := json.NewDecoder(w.Body).Decode(&resp); err != nil {
					t.Fatalf("failed to decode error response: %v", err)
				}
				if resp["detail"] != tt.expectedDetail {
					t.Errorf("detail = %q, want %q", resp["detail"], tt.expectedDetail)
				}
			}
		})
	}
}

func TestOrderHandler_SubmitOrder_StoreFailure(t *testing.T) {
	handler := newOrderHandler(failingStore{})

	body, _ := json.Marshal(models.Order{
		Items:    []models.OrderItem{{ProductID: "1", Price: 10.0, Quantity: 1}},
		Subtotal: 10.0,
	})

	req := httptest.NewRequest(http.MethodPost, "/api/orders", bytes.NewReader(body))
	w := httptest.NewRecorder()

	handler.SubmitOrder(w, req)

	if w.Code != http.StatusInternalServerError {
		t.Errorf("status = %d, want %d", w.Code, http.StatusInternalServerError)
	}

	var resp map[string]string
	if err := json.NewDecoder(w.Body).Decode(&resp); err != nil {
		t.Fatalf("failed to decode error response: %v", err)
	}
	if resp["detail"] == "" {
		t.Error("error detail is empty")
	}
}

func TestOrderHandler_RoundTrip(t *testing.T) {
	s := store.NewMemoryStore()
	handler := newOrderHandler(s)

	submitted := models.Order{
		Items: []models.OrderItem{
			{ProductID: "T-Shirt", Price: 299.0, Quantity: 2},
		},
		Subtotal: 598.0,
	}
	body, _ := json.Marshal(submitted)

	req := httptest.NewRequest(http.MethodPost, "/api/orders", bytes.NewReader(body))
	w := httptest.NewRecorder()
	handler.SubmitOrder(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("submit status = %d, want 200", w.Code)
	}
	var created map[string]string
	if err := json.NewDecoder(w.Body).Decode(&created); err != nil {
		t.Fatalf("failed to decode submit response: %v", err)
	}

	// The submitted order must appear in a subsequent listing
	req = httptest.NewRequest(http.MethodGet, "/api/orders", nil)
	w = httptest.NewRecorder()
	handler.ListOrders(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("list status = %d, want 200", w.Code)
	}

	var orders []models.StoredOrder
	if err := json.NewDecoder(w.Body).Decode(&orders); err != nil {
		t.Fatalf("failed to decode list response: %v", err)
	}
	if len(orders) != 1 {
		t.Fatalf("orders count = %d, want 1", len(orders))
	}

	got := orders[0]
	if got.ID != created["id"] {
		t.Errorf("listed id = %q, want %q", got.ID, created["id"])
	}
	if got.Subtotal != submitted.Subtotal {
		t.Errorf("listed subtotal = %v, want %v", got.Subtotal, submitted.Subtotal)
	}
	if len(got.Items) != 1 || got.Items[0].ProductID != "T-Shirt" {
		t.Errorf("listed items = %+v, want submitted items", got.Items)
	}
}

func TestOrderHandler_ListOrders_StoreFailure(t *testing.T) {
	handler := newOrderHandler(failingStore{})

	req := httptest.NewRequest(http.MethodGet, "/api/orders", nil)
	w := httptest.NewRecorder()
	handler.ListOrders(w, req)

	if w.Code != http.StatusInternalServerError {
		t.Errorf("status = %d, want %d", w.Code, http.StatusInternalServerError)
	}
}
