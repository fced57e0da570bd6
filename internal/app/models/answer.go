package models

import (
	"time"
)

// Answer defines the answer model based on the 'answers' table
type Answer struct {
	ID         int64     `json:"id" db:"id"`
	QuestionID int64     `json:"questionId" db:"question_id"`
	FacultyID  int64     `json:"facultyId" db:"faculty_id"`
	Content    string    `json:"content" db:"content"`
	CreatedAt  time.Time `json:"createdAt" db:"created_at"`

	UpvoteCount int `json:"upvoteCount"` // Derived, recomputed from the upvotes table
}
