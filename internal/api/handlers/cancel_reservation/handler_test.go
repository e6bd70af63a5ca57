package cancel_reservation

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/THETRIS2001/piedelpoggio/internal/service/reservations"
)

type fakeService struct {
	err      error
	gotID    string
	gotPhone string
}

func (f *fakeService) Cancel(_ context.Context, id string, suppliedPhone string) error {
	f.gotID = id
	f.gotPhone = suppliedPhone
	return f.err
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func doRequest(svc *fakeService, target string) *httptest.ResponseRecorder {
	h := NewHandler(svc, nopLogger{})
	req := httptest.NewRequest(http.MethodDelete, target, nil)
	rec := httptest.NewRecorder()
	h.Handle(rec, req)
	return rec
}

func TestHandle_Deleted(t *testing.T) {
	svc := &fakeService{}

	rec := doRequest(svc, "/api/bookings?id=res-1&phone=3331234567")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"message":"Booking deleted successfully"}`, rec.Body.String())
	assert.Equal(t, "res-1", svc.gotID)
	assert.Equal(t, "3331234567", svc.gotPhone)
}

func TestHandle_MissingID(t *testing.T) {
	svc := &fakeService{}

	rec := doRequest(svc, "/api/bookings?phone=3331234567")

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.JSONEq(t, `{"error":"Missing booking ID"}`, rec.Body.String())
	assert.Empty(t, svc.gotID, "the service is never reached")
}

func TestHandle_InvalidPhone(t *testing.T) {
	svc := &fakeService{err: reservations.ErrInvalidPhone}

	rec := doRequest(svc, "/api/bookings?id=res-1&phone=nope")

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.JSONEq(t, `{"error":"Invalid phone number format"}`, rec.Body.String())
}

func TestHandle_CannotCancel(t *testing.T) {
	svc := &fakeService{err: reservations.ErrCannotCancel}

	// wrong phone and unknown id share the same response
	rec := doRequest(svc, "/api/bookings?id=res-1&phone=3397654321")

	assert.Equal(t, http.StatusForbidden, rec.Code)
	assert.JSONEq(t, `{"error":"Cannot cancel booking"}`, rec.Body.String())
}

func TestHandle_InternalError(t *testing.T) {
	svc := &fakeService{err: errors.New("connection refused")}

	rec := doRequest(svc, "/api/bookings?id=res-1&phone=3331234567")

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.JSONEq(t, `{"error":"Failed to delete booking","details":"connection refused"}`, rec.Body.String())
}
