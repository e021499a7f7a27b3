package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/julienschmidt/httprouter"

	"tessera/pkg/model"
)

type mockStore struct {
	pingFunc func(ctx context.Context) error
}

func (m *mockStore) Snapshot(ctx context.Context) ([]model.BookingRecord, error) {
	return nil, nil
}

func (m *mockStore) Append(ctx context.Context, rec model.BookingRecord) error {
	return nil
}

func (m *mockStore) Ping(ctx context.Context) error {
	if m.pingFunc != nil {
		return m.pingFunc(ctx)
	}
	return nil
}

func newHealthRouter(st *mockStore) *httprouter.Router {
	router := httprouter.New()
	NewHealthHandler(st, testLogger()).RegisterRoutes(router)
	return router
}

func TestHealth(t *testing.T) {
	router := newHealthRouter(&mockStore{})

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var resp HealthResponse
	if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if resp.Status != "ok" {
		t.Errorf("expected status ok, got %s", resp.Status)
	}
}

func TestReady(t *testing.T) {
	router := newHealthRouter(&mockStore{})

	req := httptest.NewRequest(http.MethodGet, "/ready", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
}

func TestReadyStoreDown(t *testing.T) {
	router := newHealthRouter(&mockStore{
		pingFunc: func(ctx context.Context) error {
			return errors.New("store unreachable")
		},
	})

	req := httptest.NewRequest(http.MethodGet, "/ready", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusServiceUnavailable {
		t.Fatalf("expected 503, got %d", rec.Code)
	}

	var resp HealthResponse
	if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if resp.Status != "unavailable" {
		t.Errorf("expected status unavailable, got %s", resp.Status)
	}
}
