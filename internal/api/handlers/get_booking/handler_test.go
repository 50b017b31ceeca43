package get_booking

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kalicatt/boat-booking-saas-sub003/internal/domain"
	"github.com/kalicatt/boat-booking-saas-sub003/internal/service/bookings"
)

type fakeService struct {
	byID  map[string]*domain.Booking
	byRef map[string]*domain.Booking
}

func (f *fakeService) GetByID(_ context.Context, id string) (*domain.Booking, error) {
	if b, ok := f.byID[id]; ok {
		return b, nil
	}
	return nil, bookings.ErrBookingNotFound
}

func (f *fakeService) GetByPublicReference(_ context.Context, ref string) (*domain.Booking, error) {
	if b, ok := f.byRef[ref]; ok {
		return b, nil
	}
	return nil, bookings.ErrBookingNotFound
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

const bookingID = "7a1f3c1e-9b3d-4c43-8f44-1f2f4f7f9a00"

func testBooking() *domain.Booking {
	day := time.Date(2026, 9, 15, 0, 0, 0, 0, time.UTC)
	start := domain.SlotInstant(day, 600)
	return &domain.Booking{
		ID:              bookingID,
		PublicReference: "BT2026-ABCD1234",
		Date:            day,
		StartTime:       start,
		EndTime:         start.Add(25 * time.Minute),
		Language:        "fr",
		Adults:          2,
		NumberOfPeople:  2,
		TotalPrice:      18,
		Status:          domain.StatusConfirmed,
		FirstName:       "Marie",
		Email:           "marie@example.com",
	}
}

func newTestRouter(svc BookingsService) *mux.Router {
	h := NewHandler(svc, nopLogger{})
	r := mux.NewRouter()
	r.HandleFunc("/api/v1/bookings/{reference}", h.Handle).Methods(http.MethodGet)
	return r
}

func doGet(t *testing.T, router *mux.Router, path string) (*httptest.ResponseRecorder, *BookingResponse) {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, path, nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		return rec, nil
	}
	var body BookingResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	return rec, &body
}

func TestHandle_ByPublicReference(t *testing.T) {
	b := testBooking()
	router := newTestRouter(&fakeService{byRef: map[string]*domain.Booking{b.PublicReference: b}})

	rec, body := doGet(t, router, "/api/v1/bookings/BT2026-ABCD1234")

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "BT2026-ABCD1234", body.PublicReference)
	assert.Equal(t, "10:00", body.Time)
}

func TestHandle_ByID(t *testing.T) {
	b := testBooking()
	router := newTestRouter(&fakeService{byID: map[string]*domain.Booking{bookingID: b}})

	rec, body := doGet(t, router, "/api/v1/bookings/"+bookingID)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "BT2026-ABCD1234", body.PublicReference)
}

func TestHandle_NotFound(t *testing.T) {
	router := newTestRouter(&fakeService{})

	rec, _ := doGet(t, router, "/api/v1/bookings/BT2026-ZZZZZZZZ")

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestHandle_HidesContactDetails(t *testing.T) {
	b := testBooking()
	router := newTestRouter(&fakeService{byRef: map[string]*domain.Booking{b.PublicReference: b}})

	rec, _ := doGet(t, router, "/api/v1/bookings/BT2026-ABCD1234")

	require.Equal(t, http.StatusOK, rec.Code)
	assert.NotContains(t, rec.Body.String(), "marie@example.com")
	assert.NotContains(t, rec.Body.String(), "Marie")
}
