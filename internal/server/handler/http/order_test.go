package http

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/avoronin/bookstore/internal/models"
)

// fakeOrderService implements OrderService for testing.
type fakeOrderService struct {
	orders    []models.Order
	createErr error
	getErr    error
}

func (f *fakeOrderService) Create(ctx context.Context, order models.Order) (*models.Order, error) {
	if f.createErr != nil {
		return nil, f.createErr
	}
	order.ID = "o-new"
	return &order, nil
}
func (f *fakeOrderService) GetByEmail(ctx context.Context, email string) ([]models.Order, error) {
	return f.orders, f.getErr
}
func (f *fakeOrderService) GetAll(ctx context.Context) ([]models.Order, error) {
	return f.orders, f.getErr
}

func TestOrderHandler_Create(t *testing.T) {
	tests := []struct {
		name         string
		body         string
		service      *fakeOrderService
		expectedCode int
	}{
		{"invalid JSON", `x`, &fakeOrderService{}, http.StatusBadRequest},
		{"missing email", `{"name":"Alice","productIds":["b1"]}`, &fakeOrderService{}, http.StatusBadRequest},
		{"no products", `{"email":"a@example.com","productIds":[]}`, &fakeOrderService{}, http.StatusBadRequest},
		{"service failure", `{"email":"a@example.com","productIds":["b1"]}`,
			&fakeOrderService{createErr: errors.New("db down")}, http.StatusInternalServerError},
		{"success", `{"name":"Alice","email":"a@example.com","productIds":["b1","b2"],"totalPrice":19.98}`,
			&fakeOrderService{}, http.StatusCreated},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			req := httptest.NewRequest("POST", "/api/orders", bytes.NewBufferString(tt.body))
			h := &OrderHandler{OrderService: tt.service}
			h.Create(rec, req)

			if rec.Code != tt.expectedCode {
				t.Fatalf("expected status %d, got %d", tt.expectedCode, rec.Code)
			}
			if tt.expectedCode == http.StatusCreated {
				var order models.Order
				if err := json.NewDecoder(rec.Body).Decode(&order); err != nil {
					t.Fatalf("failed to decode JSON: %v", err)
				}
				if order.ID != "o-new" {
					t.Errorf("expected assigned ID, got %q", order.ID)
				}
			}
		})
	}
}

func TestOrderHandler_GetByEmail(t *testing.T) {
	t.Run("no orders yields empty array", func(t *testing.T) {
		h := &OrderHandler{OrderService: &fakeOrderService{}}
		rec := httptest.NewRecorder()
		req := withURLParam(httptest.NewRequest("GET", "/api/orders/email/a@example.com", nil),
			"email", "a@example.com")
		h.GetByEmail(rec, req)

		if rec.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", rec.Code)
		}
		if body := rec.Body.String(); body != "[]\n" {
			t.Errorf("expected empty JSON array, got %q", body)
		}
	})

	t.Run("service failure", func(t *testing.T) {
		h := &OrderHandler{OrderService: &fakeOrderService{getErr: errors.New("db down")}}
		rec := httptest.NewRecorder()
		req := withURLParam(httptest.NewRequest("GET", "/api/orders/email/a@example.com", nil),
			"email", "a@example.com")
		h.GetByEmail(rec, req)

		if rec.Code != http.StatusInternalServerError {
			t.Fatalf("expected 500, got %d", rec.Code)
		}
	})
}
