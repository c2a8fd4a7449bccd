package repository

import (
	"context"

	"github.com/beaconhq/beacon-backend/internal/model"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// QuizRepository handles quiz data access. The quizzes table carries a
// UNIQUE constraint on module_id; the one-quiz-per-module rule is
// checked in the service before insert so it surfaces as a domain
// error instead of a constraint violation.
type QuizRepository struct {
	pool *pgxpool.Pool
}

// NewQuizRepository creates a new QuizRepository.
func NewQuizRepository(pool *pgxpool.Pool) *QuizRepository {
	return &QuizRepository{pool: pool}
}

// GetByID retrieves a quiz by its UUID.
func (r *QuizRepository) GetByID(ctx context.Context, id uuid.UUID) (*model.Quiz, error) {
	q := &model.Quiz{}
	err := r.pool.QueryRow(ctx,
		`SELECT id, module_id, passing_score, created_at, updated_at
		 FROM quizzes WHERE id = $1`, id,
	).Scan(&q.ID, &q.ModuleID, &q.PassingScore, &q.CreatedAt, &q.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return q, nil
}

// GetByModule retrieves the quiz attached to a module, or pgx.ErrNoRows.
func (r *QuizRepository) GetByModule(ctx context.Context, moduleID uuid.UUID) (*model.Quiz, error) {
	q := &model.Quiz{}
	err := r.pool.QueryRow(ctx,
		`SELECT id, module_id, passing_score, created_at, updated_at
		 FROM quizzes WHERE module_id = $1`, moduleID,
	).Scan(&q.ID, &q.ModuleID, &q.PassingScore, &q.CreatedAt, &q.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return q, nil
}

// Create inserts a new quiz for a module.
func (r *QuizRepository) Create(ctx context.Context, q *model.Quiz) error {
	return r.pool.QueryRow(ctx,
		`INSERT INTO quizzes (module_id, passing_score)
		 VALUES ($1, $2)
		 RETURNING id, created_at, updated_at`,
		q.ModuleID, q.PassingScore,
	).Scan(&q.ID, &q.CreatedAt, &q.UpdatedAt)
}

// Update persists the quiz passing score.
func (r *QuizRepository) Update(ctx context.Context, q *model.Quiz) error {
	tag, err := r.pool.Exec(ctx,
		`UPDATE quizzes SET passing_score = $1, updated_at = NOW() WHERE id = $2`,
		q.PassingScore, q.ID)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

// Delete removes a quiz. The schema cascades to its questions.
func (r *QuizRepository) Delete(ctx context.Context, id uuid.UUID) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM quizzes WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}
