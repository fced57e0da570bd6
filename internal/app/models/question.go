package models

import (
	"time"
)

// Question defines the question model based on the 'questions' table.
// IsAnswered is a one-way flag: it is set on the first answer and never
// reset, regardless of how many answers follow.
type Question struct {
	ID          int64     `json:"id" db:"id"`
	Title       string    `json:"title" db:"title"`
	Description string    `json:"description" db:"description"`
	StudentID   int64     `json:"studentId" db:"student_id"`
	SubjectID   int64     `json:"subjectId" db:"subject_id"`
	IsAnswered  bool      `json:"isAnswered" db:"is_answered"`
	CreatedAt   time.Time `json:"createdAt" db:"created_at"`

	Subject *Subject `json:"subject,omitempty"` // Relation, no db tag
	Answers []Answer `json:"answers,omitempty"` // Relation, no db tag
}
