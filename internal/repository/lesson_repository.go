package repository

import (
	"context"

	"github.com/beaconhq/beacon-backend/internal/model"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// LessonRepository handles lesson data access. A lesson belongs to a
// module, or directly to a course in the legacy flat shape; exactly one
// of module_id and course_id is non-null.
type LessonRepository struct {
	pool *pgxpool.Pool
}

// NewLessonRepository creates a new LessonRepository.
func NewLessonRepository(pool *pgxpool.Pool) *LessonRepository {
	return &LessonRepository{pool: pool}
}

const lessonColumns = `id, module_id, course_id, title, content,
        duration_minutes, order_num, video_key, created_at, updated_at`

// GetByID retrieves a lesson by its UUID.
func (r *LessonRepository) GetByID(ctx context.Context, id uuid.UUID) (*model.Lesson, error) {
	l := &model.Lesson{}
	err := r.pool.QueryRow(ctx,
		`SELECT `+lessonColumns+` FROM lessons WHERE id = $1`, id,
	).Scan(&l.ID, &l.ModuleID, &l.CourseID, &l.Title, &l.Content,
		&l.DurationMinutes, &l.OrderNum, &l.VideoKey, &l.CreatedAt, &l.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return l, nil
}

// ListByModule retrieves a module's lessons in position order.
func (r *LessonRepository) ListByModule(ctx context.Context, moduleID uuid.UUID) ([]model.Lesson, error) {
	return r.list(ctx,
		`SELECT `+lessonColumns+` FROM lessons
		 WHERE module_id = $1 ORDER BY order_num, id`, moduleID)
}

// ListFlatByCourse retrieves the legacy module-less lessons attached
// directly to a course.
func (r *LessonRepository) ListFlatByCourse(ctx context.Context, courseID uuid.UUID) ([]model.Lesson, error) {
	return r.list(ctx,
		`SELECT `+lessonColumns+` FROM lessons
		 WHERE course_id = $1 AND module_id IS NULL ORDER BY order_num, id`, courseID)
}

func (r *LessonRepository) list(ctx context.Context, query string, arg interface{}) ([]model.Lesson, error) {
	rows, err := r.pool.Query(ctx, query, arg)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var lessons []model.Lesson
	for rows.Next() {
		var l model.Lesson
		if err := rows.Scan(&l.ID, &l.ModuleID, &l.CourseID, &l.Title, &l.Content,
			&l.DurationMinutes, &l.OrderNum, &l.VideoKey, &l.CreatedAt, &l.UpdatedAt); err != nil {
			return nil, err
		}
		lessons = append(lessons, l)
	}
	return lessons, rows.Err()
}

// Create inserts a new lesson.
func (r *LessonRepository) Create(ctx context.Context, l *model.Lesson) error {
	return r.pool.QueryRow(ctx,
		`INSERT INTO lessons (module_id, course_id, title, content, duration_minutes, order_num, video_key)
		 VALUES ($1, $2, $3, $4, $5, $6, $7)
		 RETURNING id, created_at, updated_at`,
		l.ModuleID, l.CourseID, l.Title, l.Content, l.DurationMinutes, l.OrderNum, l.VideoKey,
	).Scan(&l.ID, &l.CreatedAt, &l.UpdatedAt)
}

// Update persists the mutable fields of a lesson.
func (r *LessonRepository) Update(ctx context.Context, l *model.Lesson) error {
	_, err := r.pool.Exec(ctx,
		`UPDATE lessons
		 SET title = $1, content = $2, duration_minutes = $3, order_num = $4,
		     video_key = $5, updated_at = NOW()
		 WHERE id = $6`,
		l.Title, l.Content, l.DurationMinutes, l.OrderNum, l.VideoKey, l.ID)
	return err
}

// UpdatePositions writes a full renumbered sibling set in one transaction.
func (r *LessonRepository) UpdatePositions(ctx context.Context, positions map[uuid.UUID]int) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	for id, order := range positions {
		if _, err := tx.Exec(ctx,
			`UPDATE lessons SET order_num = $1, updated_at = NOW() WHERE id = $2`,
			order, id); err != nil {
			return err
		}
	}
	return tx.Commit(ctx)
}

// Delete removes a lesson.
func (r *LessonRepository) Delete(ctx context.Context, id uuid.UUID) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM lessons WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}
