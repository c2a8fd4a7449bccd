package repository

import (
	"context"

	"github.com/beaconhq/beacon-backend/internal/model"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// ModuleRepository handles module data access. The quiz_id column is
// derived from the quizzes table on read; modules never store it.
type ModuleRepository struct {
	pool *pgxpool.Pool
}

// NewModuleRepository creates a new ModuleRepository.
func NewModuleRepository(pool *pgxpool.Pool) *ModuleRepository {
	return &ModuleRepository{pool: pool}
}

const moduleSelect = `SELECT m.id, m.course_id, m.title, m.order_num, q.id,
        m.created_at, m.updated_at
 FROM modules m
 LEFT JOIN quizzes q ON q.module_id = m.id`

// GetByID retrieves a module by its UUID.
func (r *ModuleRepository) GetByID(ctx context.Context, id uuid.UUID) (*model.Module, error) {
	m := &model.Module{}
	err := r.pool.QueryRow(ctx, moduleSelect+` WHERE m.id = $1`, id).
		Scan(&m.ID, &m.CourseID, &m.Title, &m.OrderNum, &m.QuizID, &m.CreatedAt, &m.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return m, nil
}

// ListByCourse retrieves a course's modules in position order.
func (r *ModuleRepository) ListByCourse(ctx context.Context, courseID uuid.UUID) ([]model.Module, error) {
	rows, err := r.pool.Query(ctx,
		moduleSelect+` WHERE m.course_id = $1 ORDER BY m.order_num, m.id`, courseID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var modules []model.Module
	for rows.Next() {
		var m model.Module
		if err := rows.Scan(&m.ID, &m.CourseID, &m.Title, &m.OrderNum, &m.QuizID,
			&m.CreatedAt, &m.UpdatedAt); err != nil {
			return nil, err
		}
		modules = append(modules, m)
	}
	return modules, rows.Err()
}

// Create inserts a new module at the given position.
func (r *ModuleRepository) Create(ctx context.Context, m *model.Module) error {
	return r.pool.QueryRow(ctx,
		`INSERT INTO modules (course_id, title, order_num)
		 VALUES ($1, $2, $3)
		 RETURNING id, created_at, updated_at`,
		m.CourseID, m.Title, m.OrderNum,
	).Scan(&m.ID, &m.CreatedAt, &m.UpdatedAt)
}

// UpdateTitle renames a module. Position changes go through
// UpdatePositions only.
func (r *ModuleRepository) UpdateTitle(ctx context.Context, id uuid.UUID, title string) error {
	tag, err := r.pool.Exec(ctx,
		`UPDATE modules SET title = $1, updated_at = NOW() WHERE id = $2`, title, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

// UpdatePositions writes a full renumbered sibling set in one
// transaction so readers never observe a half-applied ordering.
func (r *ModuleRepository) UpdatePositions(ctx context.Context, positions map[uuid.UUID]int) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	for id, order := range positions {
		if _, err := tx.Exec(ctx,
			`UPDATE modules SET order_num = $1, updated_at = NOW() WHERE id = $2`,
			order, id); err != nil {
			return err
		}
	}
	return tx.Commit(ctx)
}

// Delete removes a module. The schema cascades to its lessons, quiz,
// and quiz questions.
func (r *ModuleRepository) Delete(ctx context.Context, id uuid.UUID) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM modules WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}
