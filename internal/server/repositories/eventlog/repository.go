package eventlog

import (
	"context"

	"github.com/dmitrijs2005/timevault/internal/server/models"
)

// Repository is the durable event log. Rows are written in the same
// transaction as the state change they describe.
type Repository interface {
	Insert(ctx context.Context, e *models.Event) error
	ListByUser(ctx context.Context, user string, limit int) ([]*models.Event, error)
}
