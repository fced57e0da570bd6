package repositories

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/kaan/uniforum/internal/app/models"
)

// AnnouncementRepository handles database operations for announcements
type AnnouncementRepository struct {
	db *pgxpool.Pool
}

// NewAnnouncementRepository creates a new announcement repository
func NewAnnouncementRepository(db *pgxpool.Pool) *AnnouncementRepository {
	return &AnnouncementRepository{
		db: db,
	}
}

// Create creates a new announcement
func (r *AnnouncementRepository) Create(ctx context.Context, announcement *models.Announcement) error {
	query := `
		INSERT INTO announcements (faculty_id, department_id, title, content)
		VALUES ($1, $2, $3, $4)
		RETURNING id, created_at
	`

	err := r.db.QueryRow(ctx, query,
		announcement.FacultyID, announcement.DepartmentID, announcement.Title, announcement.Content,
	).Scan(&announcement.ID, &announcement.CreatedAt)
	if err != nil {
		return fmt.Errorf("error creating announcement: %w", err)
	}

	return nil
}

// GetByDepartment retrieves announcements for a department, newest first
func (r *AnnouncementRepository) GetByDepartment(ctx context.Context, departmentID int64) ([]*models.Announcement, error) {
	query := `
		SELECT a.id, a.faculty_id, a.department_id, a.title, a.content, a.created_at, u.username
		FROM announcements a
		JOIN users u ON u.id = a.faculty_id
		WHERE a.department_id = $1
		ORDER BY a.created_at DESC
	`

	rows, err := r.db.Query(ctx, query, departmentID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var announcements []*models.Announcement
	for rows.Next() {
		var announcement models.Announcement
		if err := rows.Scan(
			&announcement.ID,
			&announcement.FacultyID,
			&announcement.DepartmentID,
			&announcement.Title,
			&announcement.Content,
			&announcement.CreatedAt,
			&announcement.FacultyName,
		); err != nil {
			return nil, err
		}
		announcements = append(announcements, &announcement)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return announcements, nil
}
