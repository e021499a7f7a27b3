package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/julienschmidt/httprouter"

	apperrors "tessera/pkg/errors"
	httputil "tessera/pkg/http"
	"tessera/pkg/logger"
	"tessera/pkg/model"
)

// Mock service
type mockService struct {
	reserveFunc      func(ctx context.Context, req *model.ReservationRequest) (*model.Confirmation, error)
	availabilityFunc func(ctx context.Context, museum, date string) (int, error)
	museumsFunc      func() []model.Museum
}

func (m *mockService) Reserve(ctx context.Context, req *model.ReservationRequest) (*model.Confirmation, error) {
	if m.reserveFunc != nil {
		return m.reserveFunc(ctx, req)
	}
	return nil, errors.New("not implemented")
}

func (m *mockService) Availability(ctx context.Context, museum, date string) (int, error) {
	if m.availabilityFunc != nil {
		return m.availabilityFunc(ctx, museum, date)
	}
	return 0, errors.New("not implemented")
}

func (m *mockService) Museums() []model.Museum {
	if m.museumsFunc != nil {
		return m.museumsFunc()
	}
	return nil
}

func testLogger() *logger.Logger {
	return logger.New(logger.Config{
		Level:   "error",
		Format:  logger.JSON,
		Service: "test",
	})
}

func newTestRouter(svc *mockService) *httprouter.Router {
	router := httprouter.New()
	NewReservationHandler(svc, testLogger()).RegisterRoutes(router)
	return router
}

func TestCreateReservation(t *testing.T) {
	svc := &mockService{
		reserveFunc: func(ctx context.Context, req *model.ReservationRequest) (*model.Confirmation, error) {
			return &model.Confirmation{
				BookingNumber:    "BK-1700000000000-0001",
				Museum:           req.Museum,
				Date:             req.Date,
				Tickets:          req.Tickets,
				RemainingTickets: 1,
			}, nil
		},
	}
	router := newTestRouter(svc)

	body := `{"name":"alice","museum":"National Gallery","date":"2024-06-01","tickets":1}`
	req := httptest.NewRequest(http.MethodPost, "/api/v1/reservations", strings.NewReader(body))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", rec.Code, rec.Body.String())
	}

	var resp struct {
		Data model.Confirmation `json:"data"`
	}
	if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if resp.Data.BookingNumber != "BK-1700000000000-0001" {
		t.Errorf("unexpected booking number %s", resp.Data.BookingNumber)
	}
	if resp.Data.RemainingTickets != 1 {
		t.Errorf("expected 1 remaining, got %d", resp.Data.RemainingTickets)
	}
}

func TestCreateReservationMalformedBody(t *testing.T) {
	router := newTestRouter(&mockService{})

	req := httptest.NewRequest(http.MethodPost, "/api/v1/reservations", strings.NewReader("{not json"))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Errorf("expected 400, got %d", rec.Code)
	}
}

func TestCreateReservationServiceErrors(t *testing.T) {
	cases := []struct {
		name       string
		err        error
		wantStatus int
		wantCode   string
	}{
		{
			name:       "validation",
			err:        apperrors.Validation("Reservation validation failed", nil),
			wantStatus: http.StatusUnprocessableEntity,
			wantCode:   apperrors.CodeValidation,
		},
		{
			name:       "duplicate",
			err:        apperrors.DuplicateBooking("Visitor already has a booking for this museum and date", nil),
			wantStatus: http.StatusConflict,
			wantCode:   apperrors.CodeDuplicateBooking,
		},
		{
			name:       "sold out",
			err:        apperrors.InsufficientCapacity("Not enough tickets left for this date", nil),
			wantStatus: http.StatusConflict,
			wantCode:   apperrors.CodeInsufficientCapacity,
		},
		{
			name:       "busy",
			err:        apperrors.ResourceBusy("This museum is being booked by another request. Please try again."),
			wantStatus: http.StatusServiceUnavailable,
			wantCode:   apperrors.CodeResourceBusy,
		},
		{
			name:       "unknown museum",
			err:        apperrors.InvalidInput("Unknown museum: Louvre"),
			wantStatus: http.StatusBadRequest,
			wantCode:   apperrors.CodeInvalidInput,
		},
		{
			name:       "not eligible",
			err:        apperrors.Forbidden("Booking is limited to registered staff"),
			wantStatus: http.StatusForbidden,
			wantCode:   apperrors.CodeForbidden,
		},
		{
			name:       "storage failure",
			err:        apperrors.Persistence("Failed to save booking", errors.New("disk full")),
			wantStatus: http.StatusInternalServerError,
			wantCode:   apperrors.CodePersistenceFailure,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			svc := &mockService{
				reserveFunc: func(ctx context.Context, req *model.ReservationRequest) (*model.Confirmation, error) {
					return nil, tc.err
				},
			}
			router := newTestRouter(svc)

			body := `{"name":"alice","museum":"National Gallery","date":"2024-06-01","tickets":1}`
			req := httptest.NewRequest(http.MethodPost, "/api/v1/reservations", strings.NewReader(body))
			rec := httptest.NewRecorder()
			router.ServeHTTP(rec, req)

			if rec.Code != tc.wantStatus {
				t.Errorf("expected %d, got %d: %s", tc.wantStatus, rec.Code, rec.Body.String())
			}

			var resp httputil.ErrorResponse
			if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
				t.Fatalf("failed to decode error response: %v", err)
			}
			if resp.Code != tc.wantCode {
				t.Errorf("expected code %s, got %s", tc.wantCode, resp.Code)
			}
		})
	}
}

func TestAvailability(t *testing.T) {
	svc := &mockService{
		availabilityFunc: func(ctx context.Context, museum, date string) (int, error) {
			if museum != "National Gallery" || date != "2024-06-01" {
				t.Errorf("unexpected query: %s / %s", museum, date)
			}
			return 3, nil
		},
	}
	router := newTestRouter(svc)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/availability?museum=National+Gallery&date=2024-06-01", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}

	var resp struct {
		Data availabilityResponse `json:"data"`
	}
	if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if resp.Data.RemainingTickets != 3 {
		t.Errorf("expected 3 remaining, got %d", resp.Data.RemainingTickets)
	}
}

func TestAvailabilityMissingParams(t *testing.T) {
	router := newTestRouter(&mockService{})

	for _, target := range []string{
		"/api/v1/availability",
		"/api/v1/availability?museum=National+Gallery",
		"/api/v1/availability?date=2024-06-01",
	} {
		req := httptest.NewRequest(http.MethodGet, target, nil)
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		if rec.Code != http.StatusBadRequest {
			t.Errorf("%s: expected 400, got %d", target, rec.Code)
		}
	}
}

func TestMuseums(t *testing.T) {
	svc := &mockService{
		museumsFunc: func() []model.Museum {
			return []model.Museum{
				{
					Name: "National Gallery",
					TicketDates: []model.TicketDate{
						{Date: "2024-06-01", Available: 2},
					},
				},
			}
		},
	}
	router := newTestRouter(svc)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/museums", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var resp struct {
		Data model.CatalogFile `json:"data"`
	}
	if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if len(resp.Data.Museums) != 1 || resp.Data.Museums[0].Name != "National Gallery" {
		t.Errorf("unexpected catalog: %+v", resp.Data)
	}
}
