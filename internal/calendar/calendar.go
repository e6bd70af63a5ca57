package calendar

import (
	"context"
	"errors"
	"strings"
	"sync"
	"time"

	"github.com/THETRIS2001/piedelpoggio/internal/domain"
	"github.com/THETRIS2001/piedelpoggio/internal/integrations/reservationsapi"
	"github.com/THETRIS2001/piedelpoggio/pkg/types"
)

const (
	defaultPollInterval = 30 * time.Second
	messageTTL          = 5 * time.Second
)

// Calendar holds the visitor-facing selection state: the visible month, the
// selected date, the chosen duration and interval, the locally cached
// reservation set, the booking form and the cancellation dialog. All methods
// are safe for concurrent use; the reservation set is refreshed by Run on a
// fixed cadence and immediately after any successful create or cancel.
type Calendar struct {
	api          BookingsAPI
	clock        Clock
	log          Logger
	pollInterval time.Duration

	mu             sync.Mutex
	visibleYear    int
	visibleMonth   time.Month
	selectedDate   string
	duration       int
	start          string
	end            string
	bookingsByDate map[string][]reservationsapi.Booking
	message        *Message
	messageExpires time.Time
	showForm       bool
	form           FormData
	formErrors     FormErrors
	cancelDialog   *CancelDialog
	loading        bool
}

// New creates a calendar opened on the current month with today selected.
func New(api BookingsAPI, clock Clock, log Logger, pollInterval time.Duration) *Calendar {
	if clock == nil {
		clock = RealClock{}
	}
	if pollInterval <= 0 {
		pollInterval = defaultPollInterval
	}

	now := clock.Now()

	return &Calendar{
		api:            api,
		clock:          clock,
		log:            log,
		pollInterval:   pollInterval,
		visibleYear:    now.Year(),
		visibleMonth:   now.Month(),
		selectedDate:   now.Format(domain.DateFormat),
		bookingsByDate: make(map[string][]reservationsapi.Booking),
	}
}

// Run refreshes the reservation set immediately and then on every poll tick
// until the context is cancelled.
func (c *Calendar) Run(ctx context.Context) {
	c.Refresh(ctx)

	ticker := time.NewTicker(c.pollInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			c.Refresh(ctx)
		}
	}
}

// Refresh reloads all reservations from the server. A failed poll keeps the
// previous set; stale reads between polls are expected.
func (c *Calendar) Refresh(ctx context.Context) {
	bookings, err := c.api.ListBookings(ctx, "")
	if err != nil {
		c.log.Warn("calendar: failed to refresh bookings: %v", err)
		return
	}

	byDate := make(map[string][]reservationsapi.Booking, len(bookings))
	for _, b := range bookings {
		byDate[b.Date] = append(byDate[b.Date], b)
	}

	c.mu.Lock()
	c.bookingsByDate = byDate
	c.mu.Unlock()
}

// SelectDate selects a calendar day. Past and malformed dates are ignored.
// Changing the date clears the duration and the chosen interval.
func (c *Calendar) SelectDate(date string) {
	now := c.clock.Now()
	if !domain.DateRegex.MatchString(date) || domain.IsPastDate(date, now) {
		return
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	if date == c.selectedDate {
		return
	}
	c.selectedDate = date
	c.duration = 0
	c.start = ""
	c.end = ""
}

// SelectDuration chooses the booking length in hours. With a start already
// chosen the end is recomputed, otherwise it waits for a start.
func (c *Calendar) SelectDuration(hours int) {
	if hours < domain.MinDurationHours || hours > domain.MaxDurationHours {
		return
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	c.duration = hours
	if c.start == "" {
		c.end = ""
		return
	}
	c.end = endFor(c.start, hours)
}

// SelectStart chooses the start slot. "00:00" marks the end of the window
// and is never a valid start; without a duration the selection waits.
func (c *Calendar) SelectStart(slot string) {
	if slot == "00:00" {
		return
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	if c.duration == 0 {
		return
	}
	c.start = slot
	c.end = endFor(slot, c.duration)
}

// CanSubmit reports whether the current selection forms a bookable interval:
// duration, start and end set, end after start within the operating window,
// the date not in the past and no conflict with the locally held set.
func (c *Calendar) CanSubmit() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.canSubmitLocked()
}

func (c *Calendar) canSubmitLocked() bool {
	if c.start == "" || c.end == "" || c.duration == 0 {
		return false
	}
	if domain.IsPastDate(c.selectedDate, c.clock.Now()) {
		return false
	}

	startMin := types.TimeString(c.start).Minutes()
	endMin := types.TimeString(c.end).Minutes()
	if endMin <= startMin || endMin > domain.WorkEndMinutes {
		return false
	}

	return !domain.HasConflict(
		types.TimeString(c.start),
		types.TimeString(c.end),
		c.reservationsForLocked(c.selectedDate),
	)
}

// AvailableStarts enumerates the conflict-free slots of the chosen duration
// on the selected date. Without a duration, or on a past date, it is empty.
func (c *Calendar) AvailableStarts() []Slot {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.duration == 0 {
		return nil
	}

	candidates := domain.AvailableStarts(
		c.selectedDate,
		c.duration,
		c.reservationsForLocked(c.selectedDate),
		c.clock.Now(),
	)

	slots := make([]Slot, 0, len(candidates))
	for _, s := range candidates {
		slots = append(slots, Slot{Start: s.Start.String(), End: s.End.String()})
	}
	return slots
}

// OpenForm opens the booking form for the current selection.
func (c *Calendar) OpenForm() {
	c.mu.Lock()
	defer c.mu.Unlock()

	if !c.canSubmitLocked() {
		return
	}
	c.showForm = true
	c.formErrors = FormErrors{}
}

// CloseForm dismisses the booking form, keeping the typed fields.
func (c *Calendar) CloseForm() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.showForm = false
}

// SetFormName updates the name field and clears its inline error.
func (c *Calendar) SetFormName(name string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.form.CustomerName = name
	c.formErrors.Name = ""
}

// SetFormPhone updates the phone field and clears its inline error.
func (c *Calendar) SetFormPhone(phone string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.form.CustomerPhone = phone
	c.formErrors.Phone = ""
}

// SetFormTitle updates the optional description field.
func (c *Calendar) SetFormTitle(title string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.form.Title = title
}

// Submit validates the form and sends the create request. On success the
// form closes, its fields are cleared and the reservation set is refreshed;
// on failure the server's error is shown and the form stays open.
func (c *Calendar) Submit(ctx context.Context) {
	c.mu.Lock()

	if !c.canSubmitLocked() {
		c.showMessageLocked(MessageError, "Slot non disponibile per la prenotazione")
		c.mu.Unlock()
		return
	}

	c.formErrors = FormErrors{}
	name := strings.TrimSpace(c.form.CustomerName)
	phone := strings.TrimSpace(c.form.CustomerPhone)

	if name == "" || phone == "" {
		if name == "" {
			c.formErrors.Name = "Inserisci il nome"
		}
		if phone == "" {
			c.formErrors.Phone = "Inserisci il numero di telefono"
		}
		c.showMessageLocked(MessageError, "Controlla i campi evidenziati")
		c.mu.Unlock()
		return
	}

	if !domain.ValidPhone(phone) {
		c.formErrors.Phone = "Formato numero non valido (es: 3331234567 o 0612345678)"
		c.showMessageLocked(MessageError, "Controlla i campi evidenziati")
		c.mu.Unlock()
		return
	}

	req := &reservationsapi.CreateBookingRequest{
		Date:          c.selectedDate,
		Start:         c.start,
		End:           c.end,
		Title:         strings.TrimSpace(c.form.Title),
		CustomerName:  name,
		CustomerPhone: phone,
	}
	c.loading = true
	c.mu.Unlock()

	_, err := c.api.CreateBooking(ctx, req)

	c.mu.Lock()
	c.loading = false
	if err != nil {
		c.showMessageLocked(MessageError, createErrorText(err))
		c.mu.Unlock()
		return
	}

	c.showMessageLocked(MessageSuccess, "Prenotazione creata con successo!")
	c.showForm = false
	c.form = FormData{}
	c.mu.Unlock()

	c.Refresh(ctx)
}

// RequestCancel opens the phone-confirmation dialog for one booking on the
// selected date. Unknown ids are ignored.
func (c *Calendar) RequestCancel(bookingID string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	for _, list := range c.bookingsByDate {
		for _, b := range list {
			if b.ID == bookingID {
				c.cancelDialog = &CancelDialog{Booking: b}
				return
			}
		}
	}
}

// SetCancelPhone updates the dialog's phone input and clears its error.
func (c *Calendar) SetCancelPhone(phone string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.cancelDialog == nil {
		return
	}
	c.cancelDialog.Phone = phone
	c.cancelDialog.Error = ""
}

// CloseCancelDialog dismisses the dialog and its typed phone.
func (c *Calendar) CloseCancelDialog() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.cancelDialog = nil
}

// ConfirmCancel validates the typed phone locally, then asks the server to
// delete the booking. The local checks are a UX convenience only; the server
// re-verifies the phone authoritatively. On success the dialog closes and
// the reservation set is refreshed; on failure the error stays inline.
func (c *Calendar) ConfirmCancel(ctx context.Context) {
	c.mu.Lock()

	if c.cancelDialog == nil {
		c.mu.Unlock()
		return
	}
	c.cancelDialog.Error = ""

	phone := strings.TrimSpace(c.cancelDialog.Phone)
	if phone == "" {
		c.cancelDialog.Error = "Inserisci il numero di telefono"
		c.mu.Unlock()
		return
	}
	if !domain.ValidPhone(phone) {
		c.cancelDialog.Error = "Formato numero di telefono non valido (es: 3331234567 o 0612345678)"
		c.mu.Unlock()
		return
	}
	if !domain.PhonesMatch(phone, c.cancelDialog.Booking.CustomerPhone) {
		c.cancelDialog.Error = "NUMERO SBAGLIATO: Il telefono inserito non corrisponde a quello della prenotazione"
		c.mu.Unlock()
		return
	}

	bookingID := c.cancelDialog.Booking.ID
	c.loading = true
	c.mu.Unlock()

	err := c.api.DeleteBooking(ctx, bookingID, phone)

	c.mu.Lock()
	c.loading = false
	if err != nil {
		if c.cancelDialog != nil {
			c.cancelDialog.Error = cancelErrorText(err)
		}
		c.mu.Unlock()
		return
	}

	c.showMessageLocked(MessageSuccess, "Prenotazione cancellata con successo!")
	c.cancelDialog = nil
	c.mu.Unlock()

	c.Refresh(ctx)
}

// PrevMonth shows the previous month.
func (c *Calendar) PrevMonth() {
	c.mu.Lock()
	defer c.mu.Unlock()

	d := time.Date(c.visibleYear, c.visibleMonth, 1, 0, 0, 0, 0, time.Local).AddDate(0, -1, 0)
	c.visibleYear, c.visibleMonth = d.Year(), d.Month()
}

// NextMonth shows the next month.
func (c *Calendar) NextMonth() {
	c.mu.Lock()
	defer c.mu.Unlock()

	d := time.Date(c.visibleYear, c.visibleMonth, 1, 0, 0, 0, 0, time.Local).AddDate(0, 1, 0)
	c.visibleYear, c.visibleMonth = d.Year(), d.Month()
}

// Today returns to the current month and selects today.
func (c *Calendar) Today() {
	now := c.clock.Now()

	c.mu.Lock()
	defer c.mu.Unlock()

	c.visibleYear, c.visibleMonth = now.Year(), now.Month()
	today := now.Format(domain.DateFormat)
	if today != c.selectedDate {
		c.selectedDate = today
		c.duration = 0
		c.start = ""
		c.end = ""
	}
}

// DaysMatrix renders the visible month as Monday-first weeks.
func (c *Calendar) DaysMatrix() [][]Day {
	now := c.clock.Now()
	todayKey := now.Format(domain.DateFormat)

	c.mu.Lock()
	defer c.mu.Unlock()

	weeks := monthMatrix(c.visibleYear, c.visibleMonth)
	out := make([][]Day, 0, len(weeks))
	for _, week := range weeks {
		row := make([]Day, 0, 7)
		for _, day := range week {
			if day == nil {
				row = append(row, Day{})
				continue
			}
			key := day.Format(domain.DateFormat)
			row = append(row, Day{
				Date:         day,
				Key:          key,
				IsToday:      key == todayKey,
				IsPast:       domain.IsPastDate(key, now),
				IsSelected:   key == c.selectedDate,
				BookingCount: len(c.bookingsByDate[key]),
			})
		}
		out = append(out, row)
	}

	return out
}

// SelectedDateEntries lists the selected date's bookings for display, with
// customer names masked and titles sanitized.
func (c *Calendar) SelectedDateEntries() []DayEntry {
	c.mu.Lock()
	defer c.mu.Unlock()

	list := c.bookingsByDate[c.selectedDate]
	entries := make([]DayEntry, 0, len(list))
	for _, b := range list {
		entries = append(entries, DayEntry{
			ID:    b.ID,
			Start: b.Start,
			End:   b.End,
			Title: sanitizeTitle(b.Title, b.CustomerName),
			Name:  MaskCustomerName(b.CustomerName),
		})
	}
	return entries
}

// Message returns the transient status message, or nil once expired.
func (c *Calendar) Message() *Message {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.message == nil || c.clock.Now().After(c.messageExpires) {
		return nil
	}
	m := *c.message
	return &m
}

// VisibleMonth returns the displayed year and month.
func (c *Calendar) VisibleMonth() (int, time.Month) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.visibleYear, c.visibleMonth
}

// SelectedDate returns the selected date key.
func (c *Calendar) SelectedDate() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.selectedDate
}

// Selection returns the chosen duration, start and end.
func (c *Calendar) Selection() (duration int, start, end string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.duration, c.start, c.end
}

// FormState returns the booking form fields, inline errors and visibility.
func (c *Calendar) FormState() (FormData, FormErrors, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.form, c.formErrors, c.showForm
}

// CancelDialogState returns a copy of the cancellation dialog, or nil.
func (c *Calendar) CancelDialogState() *CancelDialog {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.cancelDialog == nil {
		return nil
	}
	d := *c.cancelDialog
	return &d
}

// IsLoading reports whether a create or cancel request is in flight.
func (c *Calendar) IsLoading() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.loading
}

func (c *Calendar) showMessageLocked(kind MessageKind, text string) {
	c.message = &Message{Kind: kind, Text: text}
	c.messageExpires = c.clock.Now().Add(messageTTL)
}

func (c *Calendar) reservationsForLocked(date string) []*domain.Reservation {
	list := c.bookingsByDate[date]
	reservations := make([]*domain.Reservation, 0, len(list))
	for _, b := range list {
		reservations = append(reservations, &domain.Reservation{
			ID:            b.ID,
			Date:          b.Date,
			Start:         types.TimeString(b.Start),
			End:           types.TimeString(b.End),
			Title:         b.Title,
			CustomerName:  b.CustomerName,
			CustomerPhone: b.CustomerPhone,
			CustomerEmail: b.CustomerEmail,
		})
	}
	return reservations
}

// endFor computes the slot end for a start and duration, rendering the end
// of the operating window as "00:00".
func endFor(start string, hours int) string {
	endMin := types.TimeString(start).Minutes() + hours*domain.StepMinutes
	return types.FromMinutes(endMin).String()
}

// createErrorText maps a create failure to the message shown to the visitor.
// Server-reported errors are surfaced verbatim.
func createErrorText(err error) string {
	var apiErr *reservationsapi.APIError
	if errors.As(err, &apiErr) && apiErr.Message != "" {
		return apiErr.Message
	}
	if errors.Is(err, reservationsapi.ErrConnection) {
		return "Errore di connessione"
	}
	return "Errore nella creazione della prenotazione"
}

func cancelErrorText(err error) string {
	var apiErr *reservationsapi.APIError
	if errors.As(err, &apiErr) && apiErr.Message != "" {
		return apiErr.Message
	}
	if errors.Is(err, reservationsapi.ErrConnection) {
		return "Errore di connessione"
	}
	return "Errore nella cancellazione della prenotazione"
}
