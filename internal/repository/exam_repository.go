package repository

import (
	"context"

	"github.com/beaconhq/beacon-backend/internal/model"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// ExamRepository handles exam data access. submission_count is written
// by the grading pipeline; this repository only ever reads it.
type ExamRepository struct {
	pool *pgxpool.Pool
}

// NewExamRepository creates a new ExamRepository.
func NewExamRepository(pool *pgxpool.Pool) *ExamRepository {
	return &ExamRepository{pool: pool}
}

const examColumns = `id, course_id, title, duration_minutes, passing_score,
        is_published, submission_count, created_at, updated_at`

// GetByID retrieves an exam by its UUID.
func (r *ExamRepository) GetByID(ctx context.Context, id uuid.UUID) (*model.Exam, error) {
	e := &model.Exam{}
	err := r.pool.QueryRow(ctx,
		`SELECT `+examColumns+` FROM exams WHERE id = $1`, id,
	).Scan(&e.ID, &e.CourseID, &e.Title, &e.DurationMinutes, &e.PassingScore,
		&e.IsPublished, &e.SubmissionCount, &e.CreatedAt, &e.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return e, nil
}

// ListByCourse retrieves a course's exams, newest first.
func (r *ExamRepository) ListByCourse(ctx context.Context, courseID uuid.UUID) ([]model.Exam, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT `+examColumns+` FROM exams
		 WHERE course_id = $1 ORDER BY created_at DESC`, courseID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var exams []model.Exam
	for rows.Next() {
		var e model.Exam
		if err := rows.Scan(&e.ID, &e.CourseID, &e.Title, &e.DurationMinutes, &e.PassingScore,
			&e.IsPublished, &e.SubmissionCount, &e.CreatedAt, &e.UpdatedAt); err != nil {
			return nil, err
		}
		exams = append(exams, e)
	}
	return exams, rows.Err()
}

// Create inserts a new exam under a course.
func (r *ExamRepository) Create(ctx context.Context, e *model.Exam) error {
	return r.pool.QueryRow(ctx,
		`INSERT INTO exams (course_id, title, duration_minutes, passing_score, is_published)
		 VALUES ($1, $2, $3, $4, $5)
		 RETURNING id, submission_count, created_at, updated_at`,
		e.CourseID, e.Title, e.DurationMinutes, e.PassingScore, e.IsPublished,
	).Scan(&e.ID, &e.SubmissionCount, &e.CreatedAt, &e.UpdatedAt)
}

// Update persists the mutable fields of an exam.
func (r *ExamRepository) Update(ctx context.Context, e *model.Exam) error {
	tag, err := r.pool.Exec(ctx,
		`UPDATE exams
		 SET title = $1, duration_minutes = $2, passing_score = $3,
		     is_published = $4, updated_at = NOW()
		 WHERE id = $5`,
		e.Title, e.DurationMinutes, e.PassingScore, e.IsPublished, e.ID)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

// Delete removes an exam. The schema cascades to its questions.
func (r *ExamRepository) Delete(ctx context.Context, id uuid.UUID) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM exams WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}
