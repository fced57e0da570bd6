package dto

import (
	"time"
)

// CreateQuestionRequest represents a student asking a question
type CreateQuestionRequest struct {
	Title       string `json:"title" binding:"required,max=255"`
	Description string `json:"description" binding:"required"`
	SubjectID   int64  `json:"subjectId" binding:"required,min=1"`
}

// QuestionResponse represents a question with its answers and tallies
type QuestionResponse struct {
	ID          int64            `json:"id"`
	Title       string           `json:"title"`
	Description string           `json:"description"`
	SubjectID   int64            `json:"subjectId"`
	SubjectName string           `json:"subjectName,omitempty"`
	StudentID   int64            `json:"studentId"`
	IsAnswered  bool             `json:"isAnswered"`
	CreatedAt   time.Time        `json:"createdAt"`
	Answers     []AnswerResponse `json:"answers,omitempty"`
}
