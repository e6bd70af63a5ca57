package resend

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"html"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/THETRIS2001/piedelpoggio/internal/domain"
)

const defaultBaseURL = "https://api.resend.com"

// Logger logging interface consumed by the client
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// Client transactional-email client for the Resend API
type Client struct {
	baseURL    string
	apiKey     string
	from       string
	to         []string
	httpClient *http.Client
	log        Logger
}

// NewClient creates a Resend client. An empty apiKey yields a client whose
// sends return ErrDisabled.
func NewClient(baseURL, apiKey, from string, to []string, timeout time.Duration, log Logger) *Client {
	if baseURL == "" {
		baseURL = defaultBaseURL
	}
	return &Client{
		baseURL: baseURL,
		apiKey:  apiKey,
		from:    from,
		to:      to,
		httpClient: &http.Client{
			Timeout: timeout,
		},
		log: log,
	}
}

// SendReservationCreated emails the field managers about a new reservation.
func (c *Client) SendReservationCreated(ctx context.Context, res *domain.Reservation) error {
	subject := fmt.Sprintf("Nuova prenotazione campo: %s %s–%s", res.Date, res.Start, res.End)
	return c.send(ctx, subject, reservationHTML("Nuova prenotazione campo sportivo", res))
}

// SendReservationCancelled emails the field managers about a cancellation.
func (c *Client) SendReservationCancelled(ctx context.Context, res *domain.Reservation) error {
	subject := fmt.Sprintf("Cancellazione prenotazione campo: %s %s–%s", res.Date, res.Start, res.End)
	return c.send(ctx, subject, reservationHTML("Prenotazione cancellata", res))
}

func (c *Client) send(ctx context.Context, subject, htmlBody string) error {
	if c.apiKey == "" {
		return ErrDisabled
	}

	payload := emailPayload{
		From:    c.from,
		To:      c.to,
		Subject: subject,
		HTML:    htmlBody,
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("%w: failed to marshal payload: %v", ErrInternal, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/emails", bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("%w: failed to create request: %v", ErrInternal, err)
	}
	req.Header.Set("Authorization", "Bearer "+c.apiKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("%w: failed to execute request: %v", ErrInternal, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		respBody, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("%w: unexpected status code %d: %s", ErrInvalidResponse, resp.StatusCode, string(respBody))
	}

	return nil
}

// reservationHTML renders the notification body. All customer-supplied
// fields are HTML-escaped.
func reservationHTML(heading string, res *domain.Reservation) string {
	var b strings.Builder

	b.WriteString(`<div style="font-family: Arial, sans-serif;">`)
	fmt.Fprintf(&b, "<h2>%s</h2>", html.EscapeString(heading))
	fmt.Fprintf(&b, "<p><strong>Nome:</strong> %s</p>", html.EscapeString(res.CustomerName))
	fmt.Fprintf(&b, "<p><strong>Telefono:</strong> %s</p>", html.EscapeString(res.CustomerPhone))
	if res.CustomerEmail != "" {
		fmt.Fprintf(&b, "<p><strong>Email:</strong> %s</p>", html.EscapeString(res.CustomerEmail))
	}
	fmt.Fprintf(&b, "<p><strong>Quando:</strong> %s %s–%s</p>",
		html.EscapeString(res.Date), html.EscapeString(res.Start.String()), html.EscapeString(res.End.String()))
	if res.Title != "" {
		fmt.Fprintf(&b, "<p><strong>Titolo:</strong> %s</p>", html.EscapeString(res.Title))
	}
	b.WriteString("</div>")

	return b.String()
}
