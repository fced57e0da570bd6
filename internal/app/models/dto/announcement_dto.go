package dto

import (
	"time"
)

// CreateAnnouncementRequest represents a faculty department announcement
type CreateAnnouncementRequest struct {
	Title   string `json:"title" binding:"required,max=255"`
	Content string `json:"content" binding:"required"`
}

// AnnouncementResponse represents an announcement for display
type AnnouncementResponse struct {
	ID           int64     `json:"id"`
	Title        string    `json:"title"`
	Content      string    `json:"content"`
	FacultyID    int64     `json:"facultyId"`
	FacultyName  string    `json:"facultyName,omitempty"`
	DepartmentID int64     `json:"departmentId"`
	CreatedAt    time.Time `json:"createdAt"`
}
