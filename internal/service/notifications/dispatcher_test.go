package notifications

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/THETRIS2001/piedelpoggio/internal/domain"
)

type fakeSender struct {
	mu        sync.Mutex
	created   []string
	cancelled []string
	err       error
	block     chan struct{} // when set, SendReservationCreated waits on it
}

func (f *fakeSender) SendReservationCreated(_ context.Context, res *domain.Reservation) error {
	if f.block != nil {
		<-f.block
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	f.created = append(f.created, res.ID)
	return f.err
}

func (f *fakeSender) SendReservationCancelled(_ context.Context, res *domain.Reservation) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.cancelled = append(f.cancelled, res.ID)
	return f.err
}

func (f *fakeSender) snapshot() (created, cancelled []string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]string(nil), f.created...), append([]string(nil), f.cancelled...)
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func TestDispatcher_Delivers(t *testing.T) {
	sender := &fakeSender{}
	d := NewDispatcher(sender, nopLogger{}, 8, time.Second)
	d.Start()

	d.NotifyCreated(&domain.Reservation{ID: "a"})
	d.NotifyCancelled(&domain.Reservation{ID: "b"})

	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	require.NoError(t, d.Close(ctx))

	created, cancelled := sender.snapshot()
	assert.Equal(t, []string{"a"}, created)
	assert.Equal(t, []string{"b"}, cancelled)
}

func TestDispatcher_EnqueueNeverBlocks(t *testing.T) {
	block := make(chan struct{})
	sender := &fakeSender{block: block}
	d := NewDispatcher(sender, nopLogger{}, 1, time.Second)
	d.Start()

	// The worker is stuck on the first event and the queue holds one more;
	// further events are dropped instead of blocking the caller.
	done := make(chan struct{})
	go func() {
		for i := 0; i < 10; i++ {
			d.NotifyCreated(&domain.Reservation{ID: "x"})
		}
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("enqueue blocked the caller")
	}

	close(block)
	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	require.NoError(t, d.Close(ctx))
}

func TestDispatcher_DeliveryFailureIsIsolated(t *testing.T) {
	sender := &fakeSender{err: errors.New("smtp down")}
	d := NewDispatcher(sender, nopLogger{}, 8, time.Second)
	d.Start()

	// the caller gets no error back; the failure is only logged
	d.NotifyCreated(&domain.Reservation{ID: "a"})

	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	require.NoError(t, d.Close(ctx))

	created, _ := sender.snapshot()
	assert.Equal(t, []string{"a"}, created, "delivery was attempted")
}

func TestDispatcher_NotifyAfterCloseIsDropped(t *testing.T) {
	sender := &fakeSender{}
	d := NewDispatcher(sender, nopLogger{}, 8, time.Second)
	d.Start()

	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	require.NoError(t, d.Close(ctx))

	// must not panic
	d.NotifyCreated(&domain.Reservation{ID: "late"})

	created, _ := sender.snapshot()
	assert.Empty(t, created)
}
