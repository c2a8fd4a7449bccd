package repository

import (
	"context"

	"github.com/beaconhq/beacon-backend/internal/model"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// SermonRepository handles sermon data access.
type SermonRepository struct {
	pool *pgxpool.Pool
}

// NewSermonRepository creates a new SermonRepository.
func NewSermonRepository(pool *pgxpool.Pool) *SermonRepository {
	return &SermonRepository{pool: pool}
}

const sermonColumns = `id, title, speaker, passage, recorded_on, media_key,
        is_published, created_at, updated_at`

// GetByID retrieves a sermon by its UUID.
func (r *SermonRepository) GetByID(ctx context.Context, id uuid.UUID) (*model.Sermon, error) {
	s := &model.Sermon{}
	err := r.pool.QueryRow(ctx,
		`SELECT `+sermonColumns+` FROM sermons WHERE id = $1`, id,
	).Scan(&s.ID, &s.Title, &s.Speaker, &s.Passage, &s.RecordedOn, &s.MediaKey,
		&s.IsPublished, &s.CreatedAt, &s.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return s, nil
}

// ListPaginated retrieves sermons ordered by recording date, newest first.
func (r *SermonRepository) ListPaginated(ctx context.Context, limit, offset int) ([]model.Sermon, int, error) {
	var total int
	if err := r.pool.QueryRow(ctx, `SELECT COUNT(*) FROM sermons`).Scan(&total); err != nil {
		return nil, 0, err
	}

	rows, err := r.pool.Query(ctx,
		`SELECT `+sermonColumns+` FROM sermons
		 ORDER BY recorded_on DESC LIMIT $1 OFFSET $2`, limit, offset)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	var sermons []model.Sermon
	for rows.Next() {
		var s model.Sermon
		if err := rows.Scan(&s.ID, &s.Title, &s.Speaker, &s.Passage, &s.RecordedOn, &s.MediaKey,
			&s.IsPublished, &s.CreatedAt, &s.UpdatedAt); err != nil {
			return nil, 0, err
		}
		sermons = append(sermons, s)
	}
	return sermons, total, rows.Err()
}

// Create inserts a new sermon.
func (r *SermonRepository) Create(ctx context.Context, s *model.Sermon) error {
	return r.pool.QueryRow(ctx,
		`INSERT INTO sermons (title, speaker, passage, recorded_on, media_key)
		 VALUES ($1, $2, $3, $4, $5)
		 RETURNING id, is_published, created_at, updated_at`,
		s.Title, s.Speaker, s.Passage, s.RecordedOn, s.MediaKey,
	).Scan(&s.ID, &s.IsPublished, &s.CreatedAt, &s.UpdatedAt)
}

// Update persists the mutable fields of a sermon.
func (r *SermonRepository) Update(ctx context.Context, s *model.Sermon) error {
	tag, err := r.pool.Exec(ctx,
		`UPDATE sermons
		 SET title = $1, speaker = $2, passage = $3, recorded_on = $4,
		     media_key = $5, is_published = $6, updated_at = NOW()
		 WHERE id = $7`,
		s.Title, s.Speaker, s.Passage, s.RecordedOn, s.MediaKey, s.IsPublished, s.ID)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

// Delete removes a sermon.
func (r *SermonRepository) Delete(ctx context.Context, id uuid.UUID) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM sermons WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}
