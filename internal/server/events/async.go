package events

import (
	"context"
	"sync"

	"github.com/dmitrijs2005/timevault/internal/logging"
	"github.com/dmitrijs2005/timevault/internal/server/models"
)

// Async hands events to a single background worker so a slow publisher
// never holds up a request. When the queue is full the event is dropped and
// a warning is logged; the database row remains the record of truth.
type Async struct {
	next   Publisher
	logger logging.Logger
	queue  chan *models.Event
	wg     sync.WaitGroup
	once   sync.Once
}

func NewAsync(next Publisher, logger logging.Logger, size int) *Async {
	a := &Async{
		next:   next,
		logger: logger,
		queue:  make(chan *models.Event, size),
	}
	a.wg.Add(1)
	go a.run()
	return a
}

func (a *Async) run() {
	defer a.wg.Done()
	for e := range a.queue {
		if err := a.next.Publish(context.Background(), e); err != nil {
			a.logger.Warn(context.Background(), "publish event failed", "id", e.ID, "kind", string(e.Kind), "error", err)
		}
	}
}

func (a *Async) Publish(ctx context.Context, e *models.Event) error {
	select {
	case a.queue <- e:
	default:
		a.logger.Warn(ctx, "event queue full, dropping", "id", e.ID, "kind", string(e.Kind))
	}
	return nil
}

// Close stops accepting events and waits for the queue to drain or ctx to
// end. Publish must not be called after Close.
func (a *Async) Close(ctx context.Context) error {
	a.once.Do(func() { close(a.queue) })

	done := make(chan struct{})
	go func() {
		a.wg.Wait()
		close(done)
	}()

	select {
	case <-done:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
