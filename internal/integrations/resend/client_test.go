package resend

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/THETRIS2001/piedelpoggio/internal/domain"
)

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func testReservation() *domain.Reservation {
	return &domain.Reservation{
		ID:            "res-1",
		Date:          "2025-06-01",
		Start:         "10:00",
		End:           "12:00",
		Title:         "Cena brace",
		CustomerName:  "Mario <Rossi>",
		CustomerPhone: "3331234567",
	}
}

func TestSendReservationCreated(t *testing.T) {
	var got emailPayload
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/emails", r.URL.Path)
		assert.Equal(t, "Bearer test-key", r.Header.Get("Authorization"))

		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	client := NewClient(srv.URL, "test-key", "campo@example.org", []string{"gestore@example.org"}, time.Second, nopLogger{})

	err := client.SendReservationCreated(context.Background(), testReservation())
	require.NoError(t, err)

	assert.Equal(t, "campo@example.org", got.From)
	assert.Equal(t, []string{"gestore@example.org"}, got.To)
	assert.Equal(t, "Nuova prenotazione campo: 2025-06-01 10:00–12:00", got.Subject)
	assert.Contains(t, got.HTML, "Mario &lt;Rossi&gt;", "customer fields are HTML-escaped")
	assert.Contains(t, got.HTML, "3331234567")
}

func TestSendReservationCancelled(t *testing.T) {
	var got emailPayload
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	client := NewClient(srv.URL, "test-key", "campo@example.org", []string{"gestore@example.org"}, time.Second, nopLogger{})

	err := client.SendReservationCancelled(context.Background(), testReservation())
	require.NoError(t, err)

	assert.Equal(t, "Cancellazione prenotazione campo: 2025-06-01 10:00–12:00", got.Subject)
	assert.Contains(t, got.HTML, "Prenotazione cancellata")
}

func TestSend_DisabledWithoutAPIKey(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {
		t.Fatal("no request expected when disabled")
	}))
	defer srv.Close()

	client := NewClient(srv.URL, "", "campo@example.org", nil, time.Second, nopLogger{})

	err := client.SendReservationCreated(context.Background(), testReservation())
	assert.ErrorIs(t, err, ErrDisabled)
}

func TestSend_UnexpectedStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusUnprocessableEntity)
	}))
	defer srv.Close()

	client := NewClient(srv.URL, "test-key", "campo@example.org", nil, time.Second, nopLogger{})

	err := client.SendReservationCreated(context.Background(), testReservation())
	assert.ErrorIs(t, err, ErrInvalidResponse)
}
