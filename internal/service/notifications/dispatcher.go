package notifications

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/THETRIS2001/piedelpoggio/internal/domain"
	"github.com/THETRIS2001/piedelpoggio/internal/integrations/resend"
)

type eventKind string

const (
	eventCreated   eventKind = "created"
	eventCancelled eventKind = "cancelled"
)

type event struct {
	kind        eventKind
	reservation *domain.Reservation
}

// Dispatcher delivers reservation notifications off the request path.
// Enqueueing never blocks and never fails the caller: when the queue is full
// the event is dropped with a warning, and delivery failures are only logged.
type Dispatcher struct {
	sender      EmailSender
	logger      Logger
	sendTimeout time.Duration

	queue chan event
	wg    sync.WaitGroup
	once  sync.Once
}

// NewDispatcher creates a dispatcher with the given queue size and per-send timeout.
func NewDispatcher(sender EmailSender, logger Logger, queueSize int, sendTimeout time.Duration) *Dispatcher {
	if queueSize <= 0 {
		queueSize = 64
	}
	return &Dispatcher{
		sender:      sender,
		logger:      logger,
		sendTimeout: sendTimeout,
		queue:       make(chan event, queueSize),
	}
}

// Start launches the delivery worker.
func (d *Dispatcher) Start() {
	d.wg.Add(1)
	go d.run()
}

// NotifyCreated enqueues a created-reservation notification.
func (d *Dispatcher) NotifyCreated(res *domain.Reservation) {
	d.enqueue(event{kind: eventCreated, reservation: res})
}

// NotifyCancelled enqueues a cancelled-reservation notification.
func (d *Dispatcher) NotifyCancelled(res *domain.Reservation) {
	d.enqueue(event{kind: eventCancelled, reservation: res})
}

// Close stops accepting events and waits for the worker to drain the queue,
// at most until ctx expires.
func (d *Dispatcher) Close(ctx context.Context) error {
	d.once.Do(func() { close(d.queue) })

	done := make(chan struct{})
	go func() {
		d.wg.Wait()
		close(done)
	}()

	select {
	case <-done:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

func (d *Dispatcher) enqueue(ev event) {
	defer func() {
		// Enqueue after Close would panic on the closed channel; a lost
		// notification during shutdown is acceptable and logged.
		if r := recover(); r != nil {
			d.logger.Warn("notifications: dropped %s event for reservation id=%s, dispatcher closed", ev.kind, ev.reservation.ID)
		}
	}()

	select {
	case d.queue <- ev:
	default:
		d.logger.Warn("notifications: queue full, dropped %s event for reservation id=%s", ev.kind, ev.reservation.ID)
	}
}

func (d *Dispatcher) run() {
	defer d.wg.Done()

	for ev := range d.queue {
		d.deliver(ev)
	}
}

func (d *Dispatcher) deliver(ev event) {
	ctx, cancel := context.WithTimeout(context.Background(), d.sendTimeout)
	defer cancel()

	var err error
	switch ev.kind {
	case eventCreated:
		err = d.sender.SendReservationCreated(ctx, ev.reservation)
	case eventCancelled:
		err = d.sender.SendReservationCancelled(ctx, ev.reservation)
	}

	if err != nil {
		if errors.Is(err, resend.ErrDisabled) {
			return
		}
		d.logger.Error("notifications: failed to deliver %s event for reservation id=%s: %v", ev.kind, ev.reservation.ID, err)
		return
	}

	d.logger.Info("notifications: delivered %s event for reservation id=%s", ev.kind, ev.reservation.ID)
}
