package repository

import (
	"context"
	"database/sql"

	"todolist-api/internal/models"
	"todolist-api/pkg/logger"
)

// Activity is the Postgres-backed activity log. Inserts are idempotent
// on the event id so Kafka redeliveries do not duplicate rows.
type Activity struct {
	db *sql.DB
}

func (r *Activity) Insert(ctx context.Context, event *models.Event) error {
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO activity_log (event_id, action, entity, entity_id, actor_id, occurred_at)
		 VALUES ($1, $2, $3, $4, $5, $6) ON CONFLICT (event_id) DO NOTHING`,
		event.ID, event.Action, event.Entity, event.EntityID, event.ActorID, event.OccurredAt)
	if err != nil {
		logger.Error(ctx, "Repository insert activity failed", "error", err, "event_id", event.ID)
	}
	return err
}

func (r *Activity) Recent(ctx context.Context, limit int) ([]models.Event, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT event_id, action, entity, entity_id, actor_id, occurred_at
		 FROM activity_log ORDER BY occurred_at DESC, id DESC LIMIT $1`, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var events []models.Event
	for rows.Next() {
		var e models.Event
		if err := rows.Scan(&e.ID, &e.Action, &e.Entity, &e.EntityID, &e.ActorID, &e.OccurredAt); err != nil {
			return nil, err
		}
		events = append(events, e)
	}
	return events, rows.Err()
}
