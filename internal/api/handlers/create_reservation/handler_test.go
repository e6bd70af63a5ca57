package create_reservation

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	createReservation "github.com/THETRIS2001/piedelpoggio/internal/usecase/create_reservation"
)

type fakeUseCase struct {
	resp *createReservation.Response
	err  error
	got  *createReservation.Request
}

func (f *fakeUseCase) Execute(_ context.Context, req *createReservation.Request) (*createReservation.Response, error) {
	f.got = req
	if f.err != nil {
		return nil, f.err
	}
	return f.resp, nil
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func doRequest(uc *fakeUseCase, body string) *httptest.ResponseRecorder {
	h := NewHandler(uc, nopLogger{})
	req := httptest.NewRequest(http.MethodPost, "/api/bookings", strings.NewReader(body))
	rec := httptest.NewRecorder()
	h.Handle(rec, req)
	return rec
}

func TestHandle_Created(t *testing.T) {
	uc := &fakeUseCase{
		resp: &createReservation.Response{
			ID:            "res-1",
			Date:          "2025-06-02",
			Start:         "10:00",
			End:           "12:00",
			Title:         "Prenotazione Mario Rossi",
			CustomerName:  "Mario Rossi",
			CustomerPhone: "3331234567",
			CreatedAt:     time.Date(2025, 6, 1, 9, 0, 0, 0, time.UTC),
		},
	}

	rec := doRequest(uc, `{"date":"2025-06-02","start":"10:00","end":"12:00","customerName":"Mario Rossi","customerPhone":"3331234567"}`)

	require.Equal(t, http.StatusCreated, rec.Code)

	var body CreateBookingResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "Booking created successfully", body.Message)
	assert.Equal(t, "res-1", body.Booking.ID)
	assert.Equal(t, "10:00", body.Booking.Start)
	assert.Equal(t, "2025-06-01T09:00:00Z", body.Booking.CreatedAt)

	require.NotNil(t, uc.got)
	assert.Equal(t, "Mario Rossi", uc.got.CustomerName)
}

func TestHandle_InvalidBody(t *testing.T) {
	uc := &fakeUseCase{}

	rec := doRequest(uc, `{not json`)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.JSONEq(t, `{"error":"Invalid request body"}`, rec.Body.String())
	assert.Nil(t, uc.got, "the usecase is never reached")
}

func TestHandle_ValidationError(t *testing.T) {
	uc := &fakeUseCase{
		err: fmt.Errorf("%w: Missing required field: date", createReservation.ErrValidation),
	}

	rec := doRequest(uc, `{"start":"10:00"}`)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.JSONEq(t, `{"error":"Missing required field: date"}`, rec.Body.String())
}

func TestHandle_Conflict(t *testing.T) {
	uc := &fakeUseCase{err: createReservation.ErrConflict}

	rec := doRequest(uc, `{"date":"2025-06-02","start":"10:00","end":"12:00","customerName":"Mario","customerPhone":"3331234567"}`)

	assert.Equal(t, http.StatusConflict, rec.Code)
	assert.JSONEq(t, `{"error":"Time slot conflict. This time is already booked."}`, rec.Body.String())
}

func TestHandle_InternalError(t *testing.T) {
	uc := &fakeUseCase{err: errors.New("connection refused")}

	rec := doRequest(uc, `{"date":"2025-06-02","start":"10:00","end":"12:00","customerName":"Mario","customerPhone":"3331234567"}`)

	require.Equal(t, http.StatusInternalServerError, rec.Code)

	var body map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "Failed to create booking", body["error"])
	assert.Equal(t, "connection refused", body["details"])
}
