package dto

import (
	"time"
)

// CreateAnswerRequest represents a faculty member answering a question
type CreateAnswerRequest struct {
	Content string `json:"content" binding:"required"`
}

// AnswerResponse represents an answer with its current upvote tally
type AnswerResponse struct {
	ID          int64     `json:"id"`
	QuestionID  int64     `json:"questionId"`
	FacultyID   int64     `json:"facultyId"`
	Content     string    `json:"content"`
	UpvoteCount int       `json:"upvoteCount"`
	CreatedAt   time.Time `json:"createdAt"`
}
