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

// SubjectRepository handles database operations for subjects and the
// faculty-subject assignments that define faculty visibility.
type SubjectRepository struct {
	db *pgxpool.Pool
}

// NewSubjectRepository creates a new subject repository
func NewSubjectRepository(db *pgxpool.Pool) *SubjectRepository {
	return &SubjectRepository{
		db: db,
	}
}

// Create creates a new subject
func (r *SubjectRepository) Create(ctx context.Context, subject *models.Subject) error {
	query := `
		INSERT INTO subjects (name, department_id)
		VALUES ($1, $2)
		RETURNING id
	`

	err := r.db.QueryRow(ctx, query, subject.Name, subject.DepartmentID).Scan(&subject.ID)
	if err != nil {
		return fmt.Errorf("error creating subject: %w", err)
	}

	return nil
}

// GetByID retrieves a subject by ID
func (r *SubjectRepository) GetByID(ctx context.Context, id int64) (*models.Subject, error) {
	query := `
		SELECT id, name, department_id
		FROM subjects
		WHERE id = $1
	`

	var subject models.Subject
	err := r.db.QueryRow(ctx, query, id).Scan(&subject.ID, &subject.Name, &subject.DepartmentID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrSubjectNotFound
		}
		return nil, fmt.Errorf("error retrieving subject: %w", err)
	}

	return &subject, nil
}

// GetAll retrieves subjects ordered by name, optionally filtered by department
func (r *SubjectRepository) GetAll(ctx context.Context, departmentID *int64) ([]*models.Subject, error) {
	query := `
		SELECT id, name, department_id
		FROM subjects
		WHERE ($1::bigint IS NULL OR department_id = $1)
		ORDER BY name
	`

	rows, err := r.db.Query(ctx, query, departmentID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var subjects []*models.Subject
	for rows.Next() {
		var subject models.Subject
		if err := rows.Scan(&subject.ID, &subject.Name, &subject.DepartmentID); err != nil {
			return nil, err
		}
		subjects = append(subjects, &subject)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return subjects, nil
}

// IsFacultyAssigned reports whether a faculty user is assigned to a subject
func (r *SubjectRepository) IsFacultyAssigned(ctx context.Context, facultyID, subjectID int64) (bool, error) {
	var assigned bool
	err := r.db.QueryRow(ctx, `
		SELECT EXISTS(SELECT 1 FROM faculty_subjects WHERE faculty_id = $1 AND subject_id = $2)`,
		facultyID, subjectID).Scan(&assigned)
	if err != nil {
		return false, fmt.Errorf("error checking faculty assignment: %w", err)
	}

	return assigned, nil
}
