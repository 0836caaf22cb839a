// Package eventlog stores vault events in PostgreSQL.
package eventlog

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/timevault/internal/dbx"
	"github.com/dmitrijs2005/timevault/internal/server/models"
)

type PostgresRepository struct {
	db dbx.DBTX
}

func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) Insert(ctx context.Context, e *models.Event) error {
	query :=
		`INSERT INTO vault_events (id, kind, user_id, payload, created_at)
		 VALUES ($1, $2, $3, $4, $5)
		 `

	_, err := r.db.ExecContext(ctx, query, e.ID, string(e.Kind), e.User, e.Payload, e.CreatedAt)
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}

	return nil
}

// ListByUser returns the newest events first. Events stored within the same
// second come back in reverse insertion order.
func (r *PostgresRepository) ListByUser(ctx context.Context, user string, limit int) ([]*models.Event, error) {
	query :=
		`SELECT id, kind, user_id, payload, created_at FROM vault_events
		 WHERE user_id = $1
		 ORDER BY created_at DESC, seq DESC
		 LIMIT $2
		 `

	rows, err := r.db.QueryContext(ctx, query, user, limit)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	defer rows.Close()

	var result []*models.Event
	for rows.Next() {
		var (
			e    models.Event
			kind string
		)
		if err := rows.Scan(&e.ID, &kind, &e.User, &e.Payload, &e.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan error: %w", err)
		}
		e.Kind = models.EventKind(kind)
		result = append(result, &e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}

	return result, nil
}
