package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/kaan/uniforum/internal/app/models"
	"github.com/kaan/uniforum/internal/pkg/apperrors"
)

// QuestionRepository handles database operations for questions
type QuestionRepository struct {
	db *pgxpool.Pool
}

// NewQuestionRepository creates a new question repository
func NewQuestionRepository(db *pgxpool.Pool) *QuestionRepository {
	return &QuestionRepository{
		db: db,
	}
}

const questionColumns = `q.id, q.title, q.description, q.student_id, q.subject_id, q.is_answered, q.created_at, s.name`

func scanQuestion(rows pgx.Rows) (*models.Question, error) {
	var question models.Question
	var subjectName string
	if err := rows.Scan(
		&question.ID,
		&question.Title,
		&question.Description,
		&question.StudentID,
		&question.SubjectID,
		&question.IsAnswered,
		&question.CreatedAt,
		&subjectName,
	); err != nil {
		return nil, err
	}
	question.Subject = &models.Subject{ID: question.SubjectID, Name: subjectName}
	return &question, nil
}

// Create creates a new question in the open state
func (r *QuestionRepository) Create(ctx context.Context, question *models.Question) error {
	query := `
		INSERT INTO questions (title, description, student_id, subject_id)
		VALUES ($1, $2, $3, $4)
		RETURNING id, is_answered, created_at
	`

	err := r.db.QueryRow(ctx, query,
		question.Title, question.Description, question.StudentID, question.SubjectID,
	).Scan(&question.ID, &question.IsAnswered, &question.CreatedAt)
	if err != nil {
		return fmt.Errorf("error creating question: %w", err)
	}

	return nil
}

// GetByID retrieves a question by ID
func (r *QuestionRepository) GetByID(ctx context.Context, id int64) (*models.Question, error) {
	query := `
		SELECT id, title, description, student_id, subject_id, is_answered, created_at
		FROM questions
		WHERE id = $1
	`

	var question models.Question
	err := r.db.QueryRow(ctx, query, id).Scan(
		&question.ID,
		&question.Title,
		&question.Description,
		&question.StudentID,
		&question.SubjectID,
		&question.IsAnswered,
		&question.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrQuestionNotFound
		}
		return nil, fmt.Errorf("error retrieving question: %w", err)
	}

	return &question, nil
}

// GetAll retrieves every question across all subjects, newest first
func (r *QuestionRepository) GetAll(ctx context.Context) ([]*models.Question, error) {
	query := `
		SELECT ` + questionColumns + `
		FROM questions q
		JOIN subjects s ON s.id = q.subject_id
		ORDER BY q.created_at DESC
	`

	return r.query(ctx, query)
}

// GetByStudent retrieves the student's own questions, newest first
func (r *QuestionRepository) GetByStudent(ctx context.Context, studentID int64) ([]*models.Question, error) {
	query := `
		SELECT ` + questionColumns + `
		FROM questions q
		JOIN subjects s ON s.id = q.subject_id
		WHERE q.student_id = $1
		ORDER BY q.created_at DESC
	`

	return r.query(ctx, query, studentID)
}

// GetAssignedToFaculty retrieves the questions whose subject is in the
// faculty user's assignment set, newest first. A faculty member with no
// assignments gets an empty result.
func (r *QuestionRepository) GetAssignedToFaculty(ctx context.Context, facultyID int64) ([]*models.Question, error) {
	query := `
		SELECT ` + questionColumns + `
		FROM questions q
		JOIN subjects s ON s.id = q.subject_id
		JOIN faculty_subjects fs ON fs.subject_id = q.subject_id
		WHERE fs.faculty_id = $1
		ORDER BY q.created_at DESC
	`

	return r.query(ctx, query, facultyID)
}

func (r *QuestionRepository) query(ctx context.Context, query string, args ...interface{}) ([]*models.Question, error) {
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var questions []*models.Question
	for rows.Next() {
		question, err := scanQuestion(rows)
		if err != nil {
			return nil, err
		}
		questions = append(questions, question)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return questions, nil
}
