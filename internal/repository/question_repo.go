package repository

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"naijapath/internal/catalog"
	"naijapath/internal/domain"
)

// QuestionRepository supplies the quiz question list. Implementations are
// read-only: the list is loaded once at startup and shared across requests.
type QuestionRepository interface {
	ListQuestions(ctx context.Context) ([]domain.Question, error)
}

// StaticQuestionRepository serves the bundled question list.
type StaticQuestionRepository struct{}

func NewStaticQuestionRepository() *StaticQuestionRepository {
	return &StaticQuestionRepository{}
}

func (r *StaticQuestionRepository) ListQuestions(_ context.Context) ([]domain.Question, error) {
	qs := catalog.Questions()
	if err := catalog.ValidateQuestions(qs); err != nil {
		return nil, err
	}
	return qs, nil
}

// PgQuestionRepository loads the question list from Postgres, for deployments
// that manage quiz content outside the binary.
type PgQuestionRepository struct {
	pool *pgxpool.Pool
}

func NewPgQuestionRepository(pool *pgxpool.Pool) *PgQuestionRepository {
	return &PgQuestionRepository{pool: pool}
}

func (r *PgQuestionRepository) ListQuestions(ctx context.Context) ([]domain.Question, error) {
	const query = `
		SELECT id, text, COALESCE(description, ''), category, weight, answer_type, options, COALESCE(max_selections, 0)
		FROM quiz_questions
		ORDER BY position
	`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var qs []domain.Question
	for rows.Next() {
		var q domain.Question
		if err := rows.Scan(
			&q.ID,
			&q.Text,
			&q.Description,
			&q.Category,
			&q.Weight,
			&q.AnswerType,
			&q.Options,
			&q.MaxSelections,
		); err != nil {
			return nil, err
		}
		qs = append(qs, q)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	if err := catalog.ValidateQuestions(qs); err != nil {
		return nil, err
	}
	return qs, nil
}
