package repository

import (
	"context"
	"fmt"

	"github.com/beaconhq/beacon-backend/internal/model"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// CourseRepository handles course data access.
type CourseRepository struct {
	pool *pgxpool.Pool
}

// NewCourseRepository creates a new CourseRepository.
func NewCourseRepository(pool *pgxpool.Pool) *CourseRepository {
	return &CourseRepository{pool: pool}
}

const courseColumns = `id, title, description, instructor_id, duration,
        is_published, thumbnail_key, created_at, updated_at`

func scanCourse(row pgx.Row) (*model.Course, error) {
	c := &model.Course{}
	err := row.Scan(&c.ID, &c.Title, &c.Description, &c.InstructorID, &c.Duration,
		&c.IsPublished, &c.ThumbnailKey, &c.CreatedAt, &c.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return c, nil
}

// GetByID retrieves a course by its UUID.
func (r *CourseRepository) GetByID(ctx context.Context, id uuid.UUID) (*model.Course, error) {
	return scanCourse(r.pool.QueryRow(ctx,
		`SELECT `+courseColumns+` FROM courses WHERE id = $1`, id))
}

// ListPaginated retrieves courses ordered by creation time, newest first.
func (r *CourseRepository) ListPaginated(ctx context.Context, limit, offset int) ([]model.Course, int, error) {
	var total int
	if err := r.pool.QueryRow(ctx, `SELECT COUNT(*) FROM courses`).Scan(&total); err != nil {
		return nil, 0, err
	}

	rows, err := r.pool.Query(ctx,
		`SELECT `+courseColumns+` FROM courses
		 ORDER BY created_at DESC LIMIT $1 OFFSET $2`, limit, offset)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	var courses []model.Course
	for rows.Next() {
		var c model.Course
		if err := rows.Scan(&c.ID, &c.Title, &c.Description, &c.InstructorID, &c.Duration,
			&c.IsPublished, &c.ThumbnailKey, &c.CreatedAt, &c.UpdatedAt); err != nil {
			return nil, 0, err
		}
		courses = append(courses, c)
	}
	return courses, total, rows.Err()
}

// ListPublished returns all published courses. Used for cache and search
// index prewarming on application startup.
func (r *CourseRepository) ListPublished(ctx context.Context) ([]model.Course, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT `+courseColumns+` FROM courses WHERE is_published = TRUE
		 ORDER BY created_at DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var courses []model.Course
	for rows.Next() {
		var c model.Course
		if err := rows.Scan(&c.ID, &c.Title, &c.Description, &c.InstructorID, &c.Duration,
			&c.IsPublished, &c.ThumbnailKey, &c.CreatedAt, &c.UpdatedAt); err != nil {
			return nil, err
		}
		courses = append(courses, c)
	}
	return courses, rows.Err()
}

// Create inserts a new course.
func (r *CourseRepository) Create(ctx context.Context, c *model.Course) error {
	return r.pool.QueryRow(ctx,
		`INSERT INTO courses (title, description, instructor_id, duration, thumbnail_key)
		 VALUES ($1, $2, $3, $4, $5)
		 RETURNING id, is_published, created_at, updated_at`,
		c.Title, c.Description, c.InstructorID, c.Duration, c.ThumbnailKey,
	).Scan(&c.ID, &c.IsPublished, &c.CreatedAt, &c.UpdatedAt)
}

// Update persists the mutable fields of a course.
func (r *CourseRepository) Update(ctx context.Context, c *model.Course) error {
	_, err := r.pool.Exec(ctx,
		`UPDATE courses
		 SET title = $1, description = $2, instructor_id = $3, duration = $4,
		     thumbnail_key = $5, updated_at = NOW()
		 WHERE id = $6`,
		c.Title, c.Description, c.InstructorID, c.Duration, c.ThumbnailKey, c.ID)
	return err
}

// SetPublished flips the course publish flag.
func (r *CourseRepository) SetPublished(ctx context.Context, id uuid.UUID, published bool) error {
	tag, err := r.pool.Exec(ctx,
		`UPDATE courses SET is_published = $1, updated_at = NOW() WHERE id = $2`,
		published, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("course %s: %w", id, pgx.ErrNoRows)
	}
	return nil
}

// Delete removes a course. The schema cascades to modules, lessons,
// quizzes, exams, and questions.
func (r *CourseRepository) Delete(ctx context.Context, id uuid.UUID) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM courses WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}
