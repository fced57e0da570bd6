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
	"github.com/kaan/uniforum/internal/pkg/dberrors"
)

// UserRepository handles database operations for users
type UserRepository struct {
	db *pgxpool.Pool
}

// NewUserRepository creates a new user repository
func NewUserRepository(db *pgxpool.Pool) *UserRepository {
	return &UserRepository{
		db: db,
	}
}

// Create inserts a new user. A duplicate username maps to
// apperrors.ErrUsernameAlreadyExists.
func (r *UserRepository) Create(ctx context.Context, user *models.User) error {
	query := `
		INSERT INTO users (username, password, role, department_id, reputation_points)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, created_at
	`

	err := r.db.QueryRow(ctx, query,
		user.Username, user.Password, user.Role, user.DepartmentID, user.ReputationPoints,
	).Scan(&user.ID, &user.CreatedAt)
	if err != nil {
		if dberrors.IsDuplicateConstraintError(err, "users_username_key") {
			return apperrors.ErrUsernameAlreadyExists
		}
		return fmt.Errorf("error creating user: %w", err)
	}

	return nil
}

// CreateWithAssignments inserts a user and their subject assignments in
// a single transaction. Either the user row and every assignment commit
// or nothing does, so a rejected registration leaves no partial rows.
// A duplicate username maps to apperrors.ErrUsernameAlreadyExists.
func (r *UserRepository) CreateWithAssignments(ctx context.Context, user *models.User, subjectIDs []int64) error {
	err := db.WithTransaction(ctx, r.db, func(ctx context.Context, tx pgx.Tx) error {
		insertSQL := `
			INSERT INTO users (username, password, role, department_id, reputation_points)
			VALUES ($1, $2, $3, $4, $5)
			RETURNING id, created_at
		`

		if err := tx.QueryRow(ctx, insertSQL,
			user.Username, user.Password, user.Role, user.DepartmentID, user.ReputationPoints,
		).Scan(&user.ID, &user.CreatedAt); err != nil {
			return err
		}

		assignSQL := `
			INSERT INTO faculty_subjects (faculty_id, subject_id)
			VALUES ($1, $2)
			ON CONFLICT ON CONSTRAINT faculty_subjects_faculty_subject_key DO NOTHING
		`

		for _, subjectID := range subjectIDs {
			if _, err := tx.Exec(ctx, assignSQL, user.ID, subjectID); err != nil {
				return err
			}
		}

		return nil
	})
	if err != nil {
		if dberrors.IsDuplicateConstraintError(err, "users_username_key") {
			return apperrors.ErrUsernameAlreadyExists
		}
		return fmt.Errorf("error creating user: %w", err)
	}

	return nil
}

// GetByID retrieves a user by ID
func (r *UserRepository) GetByID(ctx context.Context, id int64) (*models.User, error) {
	query := `
		SELECT id, username, password, role, department_id, reputation_points, created_at
		FROM users
		WHERE id = $1
	`

	var user models.User
	err := r.db.QueryRow(ctx, query, id).Scan(
		&user.ID,
		&user.Username,
		&user.Password,
		&user.Role,
		&user.DepartmentID,
		&user.ReputationPoints,
		&user.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrUserNotFound
		}
		return nil, fmt.Errorf("error retrieving user: %w", err)
	}

	return &user, nil
}

// GetByUsername retrieves a user by username
func (r *UserRepository) GetByUsername(ctx context.Context, username string) (*models.User, error) {
	query := `
		SELECT id, username, password, role, department_id, reputation_points, created_at
		FROM users
		WHERE username = $1
	`

	var user models.User
	err := r.db.QueryRow(ctx, query, username).Scan(
		&user.ID,
		&user.Username,
		&user.Password,
		&user.Role,
		&user.DepartmentID,
		&user.ReputationPoints,
		&user.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrUserNotFound
		}
		return nil, fmt.Errorf("error retrieving user: %w", err)
	}

	return &user, nil
}

// FacultyLeaderboard returns faculty users ordered by reputation
// descending, id ascending as the stable tie-break.
func (r *UserRepository) FacultyLeaderboard(ctx context.Context) ([]*models.User, error) {
	query := `
		SELECT u.id, u.username, u.role, u.department_id, u.reputation_points, u.created_at, d.name
		FROM users u
		LEFT JOIN departments d ON d.id = u.department_id
		WHERE u.role = 'faculty'
		ORDER BY u.reputation_points DESC, u.id ASC
	`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var users []*models.User
	for rows.Next() {
		var user models.User
		var deptName *string
		if err := rows.Scan(
			&user.ID,
			&user.Username,
			&user.Role,
			&user.DepartmentID,
			&user.ReputationPoints,
			&user.CreatedAt,
			&deptName,
		); err != nil {
			return nil, err
		}
		if deptName != nil && user.DepartmentID != nil {
			user.Department = &models.Department{ID: *user.DepartmentID, Name: *deptName}
		}
		users = append(users, &user)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return users, nil
}
