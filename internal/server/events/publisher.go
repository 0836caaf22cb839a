// Package events fans committed vault events out to observers: the
// structured log and, when configured, an S3 archive.
//
// The durable copy of every event is the row written in the operation's own
// transaction. Publishers only see events after commit and their failures
// never undo an operation.
package events

import (
	"context"
	"encoding/json"
	"errors"

	"github.com/dmitrijs2005/timevault/internal/logging"
	"github.com/dmitrijs2005/timevault/internal/server/models"
)

type Publisher interface {
	Publish(ctx context.Context, e *models.Event) error
}

// LogPublisher writes each event as one structured log line.
type LogPublisher struct {
	logger logging.Logger
}

func NewLogPublisher(logger logging.Logger) *LogPublisher {
	return &LogPublisher{logger: logger}
}

func (p *LogPublisher) Publish(ctx context.Context, e *models.Event) error {
	p.logger.Info(ctx, "vault event",
		"id", e.ID,
		"kind", string(e.Kind),
		"user", e.User,
		"payload", json.RawMessage(e.Payload),
	)
	return nil
}

// Multi publishes to every member and joins their errors.
type Multi []Publisher

func (m Multi) Publish(ctx context.Context, e *models.Event) error {
	var errs []error
	for _, p := range m {
		if err := p.Publish(ctx, e); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}
