package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	apperrors "studiobook/pkg/errors"
	"studiobook/pkg/logger"
	"studiobook/pkg/model"

	"github.com/julienschmidt/httprouter"
)

type mockBookingService struct {
	createHoldFunc func(ctx context.Context, req *model.HoldRequest) (*model.Booking, error)
	confirmFunc    func(ctx context.Context, id string, reference string) (*model.Booking, error)
	takenSlotsFunc func(ctx context.Context, date string) ([]*model.TakenSlot, error)
	getByIDFunc    func(ctx context.Context, id string) (*model.Booking, error)
	getAllFunc     func(ctx context.Context, limit int, offset int64) ([]*model.Booking, int64, error)
}

func (m *mockBookingService) CreateHold(ctx context.Context, req *model.HoldRequest) (*model.Booking, error) {
	if m.createHoldFunc != nil {
		return m.createHoldFunc(ctx, req)
	}
	return &model.Booking{ID: "65f000000000000000000001", Status: model.StatusHeld}, nil
}

func (m *mockBookingService) Confirm(ctx context.Context, id string, reference string) (*model.Booking, error) {
	if m.confirmFunc != nil {
		return m.confirmFunc(ctx, id, reference)
	}
	return &model.Booking{ID: id, Status: model.StatusConfirmed, Reference: reference}, nil
}

func (m *mockBookingService) TakenSlots(ctx context.Context, date string) ([]*model.TakenSlot, error) {
	if m.takenSlotsFunc != nil {
		return m.takenSlotsFunc(ctx, date)
	}
	return []*model.TakenSlot{}, nil
}

func (m *mockBookingService) GetByID(ctx context.Context, id string) (*model.Booking, error) {
	if m.getByIDFunc != nil {
		return m.getByIDFunc(ctx, id)
	}
	return &model.Booking{ID: id}, nil
}

func (m *mockBookingService) GetAll(ctx context.Context, limit int, offset int64) ([]*model.Booking, int64, error) {
	if m.getAllFunc != nil {
		return m.getAllFunc(ctx, limit, offset)
	}
	return []*model.Booking{}, 0, nil
}

func (m *mockBookingService) ReapExpired(ctx context.Context) (int64, error) {
	return 0, nil
}

func newTestRouter(svc *mockBookingService) *httprouter.Router {
	log := logger.New(logger.Config{
		Level:   "error",
		Format:  logger.JSON,
		Service: "test",
	})
	router := httprouter.New()
	NewBookingHandler(svc, log).RegisterRoutes(router)
	return router
}

func TestHold_Created(t *testing.T) {
	router := newTestRouter(&mockBookingService{})

	body := `{"date":"2026-10-01","time_slot":"Morning Session","customer":{"name":"Ada Obi","email":"ada@example.com"}}`
	req := httptest.NewRequest(http.MethodPost, "/api/v1/bookings/hold", strings.NewReader(body))
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusCreated {
		t.Fatalf("expected status %d, got %d: %s", http.StatusCreated, rec.Code, rec.Body.String())
	}

	var resp struct {
		Data model.Booking `json:"data"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if resp.Data.Status != model.StatusHeld {
		t.Errorf("expected status %q, got %q", model.StatusHeld, resp.Data.Status)
	}
}

func TestHold_BadBody(t *testing.T) {
	router := newTestRouter(&mockBookingService{})

	req := httptest.NewRequest(http.MethodPost, "/api/v1/bookings/hold", strings.NewReader("{not json"))
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected status %d, got %d", http.StatusBadRequest, rec.Code)
	}
}

func TestHold_SlotTaken(t *testing.T) {
	svc := &mockBookingService{
		createHoldFunc: func(ctx context.Context, req *model.HoldRequest) (*model.Booking, error) {
			return nil, apperrors.SlotTaken("This slot is already held or booked")
		},
	}
	router := newTestRouter(svc)

	body := `{"date":"2026-10-01","time_slot":"Morning Session","customer":{"name":"Ada Obi","email":"ada@example.com"}}`
	req := httptest.NewRequest(http.MethodPost, "/api/v1/bookings/hold", strings.NewReader(body))
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusConflict {
		t.Fatalf("expected status %d, got %d", http.StatusConflict, rec.Code)
	}

	var errResp struct {
		Code string `json:"code"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &errResp); err != nil {
		t.Fatalf("failed to decode error response: %v", err)
	}
	if errResp.Code != apperrors.CodeSlotTaken {
		t.Errorf("expected code %s, got %s", apperrors.CodeSlotTaken, errResp.Code)
	}
}

func TestConfirm_Success(t *testing.T) {
	var gotID, gotRef string
	svc := &mockBookingService{
		confirmFunc: func(ctx context.Context, id string, reference string) (*model.Booking, error) {
			gotID, gotRef = id, reference
			return &model.Booking{ID: id, Status: model.StatusConfirmed, Reference: reference}, nil
		},
	}
	router := newTestRouter(svc)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/bookings/confirm/65f000000000000000000001", strings.NewReader(`{"reference":"ref-123"}`))
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected status %d, got %d: %s", http.StatusOK, rec.Code, rec.Body.String())
	}
	if gotID != "65f000000000000000000001" {
		t.Errorf("expected path id to reach the service, got %q", gotID)
	}
	if gotRef != "ref-123" {
		t.Errorf("expected reference to reach the service, got %q", gotRef)
	}
}

func TestConfirm_PaymentRequired(t *testing.T) {
	svc := &mockBookingService{
		confirmFunc: func(ctx context.Context, id string, reference string) (*model.Booking, error) {
			return nil, apperrors.VerificationFailed("Paid amount does not match the booking amount")
		},
	}
	router := newTestRouter(svc)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/bookings/confirm/65f000000000000000000001", strings.NewReader(`{"reference":"ref-123"}`))
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusPaymentRequired {
		t.Fatalf("expected status %d, got %d", http.StatusPaymentRequired, rec.Code)
	}
}

func TestTaken_RequiresDate(t *testing.T) {
	router := newTestRouter(&mockBookingService{})

	req := httptest.NewRequest(http.MethodGet, "/api/v1/bookings/taken", nil)
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected status %d, got %d", http.StatusBadRequest, rec.Code)
	}
}

func TestTaken_ReturnsSlots(t *testing.T) {
	svc := &mockBookingService{
		takenSlotsFunc: func(ctx context.Context, date string) ([]*model.TakenSlot, error) {
			return []*model.TakenSlot{
				{TimeSlot: "Morning Session", Status: model.StatusConfirmed},
				{CustomTime: "2:00 PM - 4:00 PM", Status: model.StatusHeld},
			}, nil
		},
	}
	router := newTestRouter(svc)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/bookings/taken?date=2026-10-01", nil)
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected status %d, got %d", http.StatusOK, rec.Code)
	}

	var resp struct {
		Data []model.TakenSlot `json:"data"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if len(resp.Data) != 2 {
		t.Errorf("expected 2 slots, got %d", len(resp.Data))
	}
}

func TestGetByID_NotFound(t *testing.T) {
	svc := &mockBookingService{
		getByIDFunc: func(ctx context.Context, id string) (*model.Booking, error) {
			return nil, apperrors.NotFoundWithID("Booking", id)
		},
	}
	router := newTestRouter(svc)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/bookings/id/65f000000000000000000009", nil)
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected status %d, got %d", http.StatusNotFound, rec.Code)
	}
}
