package models

import (
	"time"
)

// Announcement defines the announcement model based on the
// 'announcements' table. The department always equals the posting
// faculty's department at creation time.
type Announcement struct {
	ID           int64     `json:"id" db:"id"`
	FacultyID    int64     `json:"facultyId" db:"faculty_id"`
	DepartmentID int64     `json:"departmentId" db:"department_id"`
	Title        string    `json:"title" db:"title"`
	Content      string    `json:"content" db:"content"`
	CreatedAt    time.Time `json:"createdAt" db:"created_at"`

	FacultyName string `json:"facultyName,omitempty"` // Joined for display, no db tag
}
