package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/villastay/property-reservation/internal/booking"
	"github.com/villastay/property-reservation/internal/model"
)

// fixedClock pins the engine's current date.
type fixedClock struct{ t time.Time }

func (c fixedClock) Today() time.Time { return c.t }

// stubStore is a minimal in-memory booking.Store for handler tests.
type stubStore struct {
	mu       sync.Mutex
	nextID   uint64
	bookings []model.Booking
}

func (s *stubStore) Create(_ context.Context, b *model.Booking) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	var ranges []booking.DateRange
	for _, ex := range s.bookings {
		if ex.PropertyID == b.PropertyID {
			ranges = append(ranges, booking.DateRange{Start: ex.InTime, End: ex.OutTime})
		}
	}
	if booking.Overlaps(ranges, booking.DateRange{Start: b.InTime, End: b.OutTime}) {
		return booking.ErrOverlap
	}
	s.nextID++
	b.ID = s.nextID
	b.CreatedAt = time.Now()
	s.bookings = append(s.bookings, *b)
	return nil
}

func (s *stubStore) RangesByProperty(_ context.Context, propertyID uint64) ([]booking.DateRange, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	ranges := make([]booking.DateRange, 0)
	for _, b := range s.bookings {
		if b.PropertyID == propertyID {
			ranges = append(ranges, booking.DateRange{Start: b.InTime, End: b.OutTime})
		}
	}
	return ranges, nil
}

func (s *stubStore) ActiveByUser(_ context.Context, userID uint64, today time.Time) ([]model.ReservationDetail, error) {
	return s.list(userID, today, true), nil
}

func (s *stubStore) PastByUser(_ context.Context, userID uint64, today time.Time) ([]model.ReservationDetail, error) {
	return s.list(userID, today, false), nil
}

func (s *stubStore) list(userID uint64, today time.Time, active bool) []model.ReservationDetail {
	s.mu.Lock()
	defer s.mu.Unlock()
	details := make([]model.ReservationDetail, 0)
	for _, b := range s.bookings {
		if b.UserID != userID || !b.OutTime.Before(today) != active {
			continue
		}
		details = append(details, model.ReservationDetail{
			ID: b.ID, PropertyID: b.PropertyID, PropertyName: "Loft en Bogotá",
			InTime: booking.FormatDate(b.InTime), OutTime: booking.FormatDate(b.OutTime), Status: b.Status,
		})
	}
	return details
}

func (s *stubStore) TerminateExpired(_ context.Context, today time.Time) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var n int64
	for i := range s.bookings {
		if s.bookings[i].Status == model.StatusActive && s.bookings[i].OutTime.Before(today) {
			s.bookings[i].Status = model.StatusTerminated
			n++
		}
	}
	return n, nil
}

func newTestHandler(t *testing.T, today string) (*BookingHandler, *stubStore) {
	t.Helper()
	d, err := booking.ParseDate(today)
	if err != nil {
		t.Fatalf("parse today: %v", err)
	}
	store := &stubStore{}
	return NewBookingHandler(booking.NewEngine(store, fixedClock{t: d})), store
}

func doJSON(t *testing.T, h echo.HandlerFunc, method, target, body string, params ...string) (*httptest.ResponseRecorder, map[string]any) {
	t.Helper()
	e := echo.New()
	e.Validator = NewValidator()
	var reader *strings.Reader
	if body == "" {
		reader = strings.NewReader("")
	} else {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, target, reader)
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	for i := 0; i+1 < len(params); i += 2 {
		c.SetParamNames(params[i])
		c.SetParamValues(params[i+1])
	}
	if err := h(c); err != nil {
		e.HTTPErrorHandler(err, c)
	}
	var decoded map[string]any
	if rec.Body.Len() > 0 {
		if err := json.Unmarshal(rec.Body.Bytes(), &decoded); err != nil {
			t.Fatalf("decode response %q: %v", rec.Body.String(), err)
		}
	}
	return rec, decoded
}

func TestReserveSuccess(t *testing.T) {
	h, _ := newTestHandler(t, "2024-06-01")
	rec, body := doJSON(t, h.Reserve, http.MethodPost, "/v1/reserve",
		`{"property_id":1,"user_id":1,"in_time":"2024-06-10","out_time":"2024-06-12"}`)
	if rec.Code != http.StatusCreated {
		t.Fatalf("status = %d, want 201 (body %v)", rec.Code, body)
	}
	if body["booking_id"] != float64(1) {
		t.Errorf("booking_id = %v, want 1", body["booking_id"])
	}
	if body["status"] != model.StatusActive {
		t.Errorf("status = %v, want active", body["status"])
	}
}

func TestReserveConflict(t *testing.T) {
	h, _ := newTestHandler(t, "2024-06-01")
	if rec, _ := doJSON(t, h.Reserve, http.MethodPost, "/v1/reserve",
		`{"property_id":1,"user_id":1,"in_time":"2024-06-10","out_time":"2024-06-12"}`); rec.Code != http.StatusCreated {
		t.Fatalf("seed reserve status = %d", rec.Code)
	}
	rec, body := doJSON(t, h.Reserve, http.MethodPost, "/v1/reserve",
		`{"property_id":1,"user_id":2,"in_time":"2024-06-12","out_time":"2024-06-14"}`)
	if rec.Code != http.StatusConflict {
		t.Fatalf("status = %d, want 409 (body %v)", rec.Code, body)
	}
}

func TestReserveBadRequests(t *testing.T) {
	h, _ := newTestHandler(t, "2024-06-01")
	cases := []struct {
		name string
		body string
	}{
		{"past date", `{"property_id":1,"user_id":1,"in_time":"2024-05-01","out_time":"2024-06-12"}`},
		{"bad format", `{"property_id":1,"user_id":1,"in_time":"06/10/2024","out_time":"2024-06-12"}`},
		{"inverted range", `{"property_id":1,"user_id":1,"in_time":"2024-06-12","out_time":"2024-06-10"}`},
		{"missing fields", `{"property_id":1}`},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			rec, _ := doJSON(t, h.Reserve, http.MethodPost, "/v1/reserve", tc.body)
			if rec.Code != http.StatusBadRequest {
				t.Errorf("status = %d, want 400", rec.Code)
			}
		})
	}
}

func TestReservedDates(t *testing.T) {
	h, _ := newTestHandler(t, "2024-01-01")
	if rec, _ := doJSON(t, h.Reserve, http.MethodPost, "/v1/reserve",
		`{"property_id":1,"user_id":1,"in_time":"2024-01-30","out_time":"2024-02-01"}`); rec.Code != http.StatusCreated {
		t.Fatalf("seed reserve status = %d", rec.Code)
	}
	rec, body := doJSON(t, h.ReservedDates, http.MethodGet, "/v1/properties/1/reserved-dates", "", "id", "1")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	dates, ok := body["reserved_dates"].([]any)
	if !ok || len(dates) != 3 {
		t.Fatalf("reserved_dates = %v, want 3 entries", body["reserved_dates"])
	}
	if dates[0] != "2024-01-30" || dates[2] != "2024-02-01" {
		t.Errorf("unexpected expansion: %v", dates)
	}
}

func TestReservedDatesInvalidID(t *testing.T) {
	h, _ := newTestHandler(t, "2024-01-01")
	rec, _ := doJSON(t, h.ReservedDates, http.MethodGet, "/v1/properties/zero/reserved-dates", "", "id", "zero")
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", rec.Code)
	}
}

func TestReservationListings(t *testing.T) {
	h, store := newTestHandler(t, "2024-06-01")
	if rec, _ := doJSON(t, h.Reserve, http.MethodPost, "/v1/reserve",
		`{"property_id":1,"user_id":7,"in_time":"2024-06-02","out_time":"2024-06-04"}`); rec.Code != http.StatusCreated {
		t.Fatalf("seed reserve status = %d", rec.Code)
	}
	// Age the booking by moving it into the past relative to a later engine.
	d, _ := booking.ParseDate("2024-07-01")
	h = NewBookingHandler(booking.NewEngine(store, fixedClock{t: d}))

	rec, body := doJSON(t, h.ActiveReservations, http.MethodGet, "/v1/users/7/reservations/active", "", "id", "7")
	if rec.Code != http.StatusOK {
		t.Fatalf("active status = %d", rec.Code)
	}
	if items, ok := body["reservations"].([]any); !ok || len(items) != 0 {
		t.Errorf("active = %v, want empty", body["reservations"])
	}

	rec, body = doJSON(t, h.PastReservations, http.MethodGet, "/v1/users/7/reservations/past", "", "id", "7")
	if rec.Code != http.StatusOK {
		t.Fatalf("past status = %d", rec.Code)
	}
	items, ok := body["reservations"].([]any)
	if !ok || len(items) != 1 {
		t.Fatalf("past = %v, want one entry", body["reservations"])
	}
	entry := items[0].(map[string]any)
	if entry["property_name"] != "Loft en Bogotá" {
		t.Errorf("property_name = %v", entry["property_name"])
	}
}

func TestTriggerSweepAcknowledges(t *testing.T) {
	h, _ := newTestHandler(t, "2024-06-01")
	rec, body := doJSON(t, h.TriggerSweep, http.MethodPost, "/v1/reservations/sweep", "")
	if rec.Code != http.StatusAccepted {
		t.Fatalf("status = %d, want 202", rec.Code)
	}
	if body["status"] != "scheduled" {
		t.Errorf("status field = %v, want scheduled", body["status"])
	}
	if id, ok := body["job_id"].(string); !ok || id == "" {
		t.Errorf("job_id missing in %v", body)
	}
}
