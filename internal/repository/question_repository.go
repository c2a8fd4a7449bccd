package repository

import (
	"context"

	"github.com/beaconhq/beacon-backend/internal/model"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// QuestionRepository handles question data access for both quiz and
// exam scopes. options and keywords are Postgres text[] columns.
type QuestionRepository struct {
	pool *pgxpool.Pool
}

// NewQuestionRepository creates a new QuestionRepository.
func NewQuestionRepository(pool *pgxpool.Pool) *QuestionRepository {
	return &QuestionRepository{pool: pool}
}

const questionColumns = `id, quiz_id, exam_id, question_text, question_type,
        points, order_num, options, correct_answer, correct_index,
        keywords, needs_manual_grading`

func scanQuestion(row pgx.Row) (*model.Question, error) {
	q := &model.Question{}
	err := row.Scan(&q.ID, &q.QuizID, &q.ExamID, &q.QuestionText, &q.QuestionType,
		&q.Points, &q.OrderNum, &q.Options, &q.CorrectAnswer, &q.CorrectIndex,
		&q.Keywords, &q.NeedsManualGrading)
	if err != nil {
		return nil, err
	}
	return q, nil
}

// GetByID retrieves a question by its UUID.
func (r *QuestionRepository) GetByID(ctx context.Context, id uuid.UUID) (*model.Question, error) {
	return scanQuestion(r.pool.QueryRow(ctx,
		`SELECT `+questionColumns+` FROM questions WHERE id = $1`, id))
}

// ListByQuiz retrieves a quiz's questions in position order.
func (r *QuestionRepository) ListByQuiz(ctx context.Context, quizID uuid.UUID) ([]model.Question, error) {
	return r.list(ctx,
		`SELECT `+questionColumns+` FROM questions
		 WHERE quiz_id = $1 ORDER BY order_num, id`, quizID)
}

// ListByExam retrieves an exam's questions in position order.
func (r *QuestionRepository) ListByExam(ctx context.Context, examID uuid.UUID) ([]model.Question, error) {
	return r.list(ctx,
		`SELECT `+questionColumns+` FROM questions
		 WHERE exam_id = $1 ORDER BY order_num, id`, examID)
}

func (r *QuestionRepository) list(ctx context.Context, query string, arg interface{}) ([]model.Question, error) {
	rows, err := r.pool.Query(ctx, query, arg)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var questions []model.Question
	for rows.Next() {
		var q model.Question
		if err := rows.Scan(&q.ID, &q.QuizID, &q.ExamID, &q.QuestionText, &q.QuestionType,
			&q.Points, &q.OrderNum, &q.Options, &q.CorrectAnswer, &q.CorrectIndex,
			&q.Keywords, &q.NeedsManualGrading); err != nil {
			return nil, err
		}
		questions = append(questions, q)
	}
	return questions, rows.Err()
}

// Create inserts a validated question.
func (r *QuestionRepository) Create(ctx context.Context, q *model.Question) error {
	return r.pool.QueryRow(ctx,
		`INSERT INTO questions (quiz_id, exam_id, question_text, question_type,
		        points, order_num, options, correct_answer, correct_index,
		        keywords, needs_manual_grading)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
		 RETURNING id`,
		q.QuizID, q.ExamID, q.QuestionText, q.QuestionType,
		q.Points, q.OrderNum, q.Options, q.CorrectAnswer, q.CorrectIndex,
		q.Keywords, q.NeedsManualGrading,
	).Scan(&q.ID)
}

// Update replaces the content of an existing question in place. Scope
// columns (quiz_id, exam_id) never change.
func (r *QuestionRepository) Update(ctx context.Context, q *model.Question) error {
	tag, err := r.pool.Exec(ctx,
		`UPDATE questions
		 SET question_text = $1, question_type = $2, points = $3, order_num = $4,
		     options = $5, correct_answer = $6, correct_index = $7,
		     keywords = $8, needs_manual_grading = $9
		 WHERE id = $10`,
		q.QuestionText, q.QuestionType, q.Points, q.OrderNum,
		q.Options, q.CorrectAnswer, q.CorrectIndex,
		q.Keywords, q.NeedsManualGrading, q.ID)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

// UpdatePositions writes a full renumbered sibling set in one transaction.
func (r *QuestionRepository) UpdatePositions(ctx context.Context, positions map[uuid.UUID]int) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	for id, order := range positions {
		if _, err := tx.Exec(ctx,
			`UPDATE questions SET order_num = $1 WHERE id = $2`, order, id); err != nil {
			return err
		}
	}
	return tx.Commit(ctx)
}

// Delete removes a question.
func (r *QuestionRepository) Delete(ctx context.Context, id uuid.UUID) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM questions WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}
