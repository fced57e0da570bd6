package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/kaan/uniforum/internal/app/models"
	"github.com/kaan/uniforum/internal/db"
	"github.com/kaan/uniforum/internal/pkg/apperrors"
)

// AnswerRepository handles database operations for answers
type AnswerRepository struct {
	db *pgxpool.Pool
}

// NewAnswerRepository creates a new answer repository
func NewAnswerRepository(db *pgxpool.Pool) *AnswerRepository {
	return &AnswerRepository{
		db: db,
	}
}

// Create inserts an answer and marks the question answered in one
// transaction. The flag transition is one-way: an already answered
// question stays answered and still accepts further answers.
func (r *AnswerRepository) Create(ctx context.Context, answer *models.Answer) error {
	return db.WithTransaction(ctx, r.db, func(ctx context.Context, tx pgx.Tx) error {
		insertSQL := `
			INSERT INTO answers (question_id, faculty_id, content)
			VALUES ($1, $2, $3)
			RETURNING id, created_at
		`

		err := tx.QueryRow(ctx, insertSQL,
			answer.QuestionID, answer.FacultyID, answer.Content,
		).Scan(&answer.ID, &answer.CreatedAt)
		if err != nil {
			return fmt.Errorf("error creating answer: %w", err)
		}

		updateSQL := `
			UPDATE questions
			SET is_answered = TRUE
			WHERE id = $1
		`

		cmdTag, err := tx.Exec(ctx, updateSQL, answer.QuestionID)
		if err != nil {
			return fmt.Errorf("error marking question answered: %w", err)
		}
		if cmdTag.RowsAffected() == 0 {
			return apperrors.ErrQuestionNotFound
		}

		return nil
	})
}

// GetByID retrieves an answer by ID
func (r *AnswerRepository) GetByID(ctx context.Context, id int64) (*models.Answer, error) {
	query := `
		SELECT id, question_id, faculty_id, content, created_at
		FROM answers
		WHERE id = $1
	`

	var answer models.Answer
	err := r.db.QueryRow(ctx, query, id).Scan(
		&answer.ID,
		&answer.QuestionID,
		&answer.FacultyID,
		&answer.Content,
		&answer.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrAnswerNotFound
		}
		return nil, fmt.Errorf("error retrieving answer: %w", err)
	}

	return &answer, nil
}

// GetByQuestion retrieves all answers for a question with their current
// upvote tallies, oldest first. Tallies are recomputed from the
// upvotes table on every call.
func (r *AnswerRepository) GetByQuestion(ctx context.Context, questionID int64) ([]models.Answer, error) {
	query := `
		SELECT a.id, a.question_id, a.faculty_id, a.content, a.created_at,
		       COUNT(u.id) AS upvote_count
		FROM answers a
		LEFT JOIN upvotes u ON u.answer_id = a.id
		WHERE a.question_id = $1
		GROUP BY a.id
		ORDER BY a.created_at ASC
	`

	rows, err := r.db.Query(ctx, query, questionID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var answers []models.Answer
	for rows.Next() {
		var answer models.Answer
		if err := rows.Scan(
			&answer.ID,
			&answer.QuestionID,
			&answer.FacultyID,
			&answer.Content,
			&answer.CreatedAt,
			&answer.UpvoteCount,
		); err != nil {
			return nil, err
		}
		answers = append(answers, answer)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return answers, nil
}
