package models

// Upvote records a single user's upvote on a single answer. The pair
// (answer_id, user_id) is unique; there is no retraction and no
// downvote variant.
type Upvote struct {
	ID       int64 `json:"id" db:"id"`
	AnswerID int64 `json:"answerId" db:"answer_id"`
	UserID   int64 `json:"userId" db:"user_id"`
}
