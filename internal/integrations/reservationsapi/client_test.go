package reservationsapi

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func TestListBookings(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/api/bookings", r.URL.Path)
		assert.Equal(t, "2025-06-01", r.URL.Query().Get("date"))

		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(bookingsResponse{Bookings: []Booking{
			{ID: "res-1", Date: "2025-06-01", Start: "10:00", End: "12:00"},
		}})
	}))
	defer srv.Close()

	client := NewClient(srv.URL, time.Second, nopLogger{})

	bookings, err := client.ListBookings(context.Background(), "2025-06-01")
	require.NoError(t, err)
	require.Len(t, bookings, 1)
	assert.Equal(t, "res-1", bookings[0].ID)
}

func TestCreateBooking(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))

		var req CreateBookingRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "Mario Rossi", req.CustomerName)

		w.WriteHeader(http.StatusCreated)
		_ = json.NewEncoder(w).Encode(createResponse{
			Booking: Booking{ID: "new", Date: req.Date, Start: req.Start, End: req.End},
			Message: "Booking created successfully",
		})
	}))
	defer srv.Close()

	client := NewClient(srv.URL, time.Second, nopLogger{})

	booking, err := client.CreateBooking(context.Background(), &CreateBookingRequest{
		Date:          "2025-06-01",
		Start:         "10:00",
		End:           "12:00",
		CustomerName:  "Mario Rossi",
		CustomerPhone: "3331234567",
	})
	require.NoError(t, err)
	assert.Equal(t, "new", booking.ID)
}

func TestCreateBooking_ServerErrorVerbatim(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusConflict)
		_ = json.NewEncoder(w).Encode(errorResponse{Error: "Time slot conflict. This time is already booked."})
	}))
	defer srv.Close()

	client := NewClient(srv.URL, time.Second, nopLogger{})

	_, err := client.CreateBooking(context.Background(), &CreateBookingRequest{})

	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusConflict, apiErr.Status)
	assert.Equal(t, "Time slot conflict. This time is already booked.", apiErr.Message)
}

func TestDeleteBooking(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodDelete, r.Method)
		assert.Equal(t, "res-1", r.URL.Query().Get("id"))
		assert.Equal(t, "3331234567", r.URL.Query().Get("phone"))

		_ = json.NewEncoder(w).Encode(map[string]string{"message": "Booking deleted successfully"})
	}))
	defer srv.Close()

	client := NewClient(srv.URL, time.Second, nopLogger{})

	assert.NoError(t, client.DeleteBooking(context.Background(), "res-1", "3331234567"))
}

func TestDeleteBooking_Forbidden(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusForbidden)
		_ = json.NewEncoder(w).Encode(errorResponse{Error: "Cannot cancel booking"})
	}))
	defer srv.Close()

	client := NewClient(srv.URL, time.Second, nopLogger{})

	err := client.DeleteBooking(context.Background(), "res-1", "3397654321")

	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, "Cannot cancel booking", apiErr.Message)
}

func TestConnectionError(t *testing.T) {
	// a closed server yields a connection error, not an APIError
	srv := httptest.NewServer(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {}))
	srv.Close()

	client := NewClient(srv.URL, time.Second, nopLogger{})

	_, err := client.ListBookings(context.Background(), "")
	assert.ErrorIs(t, err, ErrConnection)
}

func TestInvalidResponseBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte("not json"))
	}))
	defer srv.Close()

	client := NewClient(srv.URL, time.Second, nopLogger{})

	_, err := client.ListBookings(context.Background(), "")
	assert.ErrorIs(t, err, ErrInvalidResponse)
}
