package repository

import (
	"context"

	"github.com/beaconhq/beacon-backend/internal/model"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// EventRepository handles event data access.
type EventRepository struct {
	pool *pgxpool.Pool
}

// NewEventRepository creates a new EventRepository.
func NewEventRepository(pool *pgxpool.Pool) *EventRepository {
	return &EventRepository{pool: pool}
}

const eventColumns = `id, title, description, location, starts_at, ends_at,
        is_published, created_at, updated_at`

// GetByID retrieves an event by its UUID.
func (r *EventRepository) GetByID(ctx context.Context, id uuid.UUID) (*model.Event, error) {
	e := &model.Event{}
	err := r.pool.QueryRow(ctx,
		`SELECT `+eventColumns+` FROM events WHERE id = $1`, id,
	).Scan(&e.ID, &e.Title, &e.Description, &e.Location, &e.StartsAt, &e.EndsAt,
		&e.IsPublished, &e.CreatedAt, &e.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return e, nil
}

// ListPaginated retrieves events ordered by start time, soonest first.
func (r *EventRepository) ListPaginated(ctx context.Context, limit, offset int) ([]model.Event, int, error) {
	var total int
	if err := r.pool.QueryRow(ctx, `SELECT COUNT(*) FROM events`).Scan(&total); err != nil {
		return nil, 0, err
	}

	rows, err := r.pool.Query(ctx,
		`SELECT `+eventColumns+` FROM events
		 ORDER BY starts_at LIMIT $1 OFFSET $2`, limit, offset)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	var events []model.Event
	for rows.Next() {
		var e model.Event
		if err := rows.Scan(&e.ID, &e.Title, &e.Description, &e.Location, &e.StartsAt, &e.EndsAt,
			&e.IsPublished, &e.CreatedAt, &e.UpdatedAt); err != nil {
			return nil, 0, err
		}
		events = append(events, e)
	}
	return events, total, rows.Err()
}

// Create inserts a new event.
func (r *EventRepository) Create(ctx context.Context, e *model.Event) error {
	return r.pool.QueryRow(ctx,
		`INSERT INTO events (title, description, location, starts_at, ends_at)
		 VALUES ($1, $2, $3, $4, $5)
		 RETURNING id, is_published, created_at, updated_at`,
		e.Title, e.Description, e.Location, e.StartsAt, e.EndsAt,
	).Scan(&e.ID, &e.IsPublished, &e.CreatedAt, &e.UpdatedAt)
}

// Update persists the mutable fields of an event.
func (r *EventRepository) Update(ctx context.Context, e *model.Event) error {
	tag, err := r.pool.Exec(ctx,
		`UPDATE events
		 SET title = $1, description = $2, location = $3, starts_at = $4,
		     ends_at = $5, is_published = $6, updated_at = NOW()
		 WHERE id = $7`,
		e.Title, e.Description, e.Location, e.StartsAt, e.EndsAt, e.IsPublished, e.ID)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

// Delete removes an event.
func (r *EventRepository) Delete(ctx context.Context, id uuid.UUID) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM events WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}
