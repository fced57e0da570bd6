package dto

// UpvoteResponse is the JSON-style vote result: count carries the new
// tally on success, message the reason when success is false (the
// benign already-voted case).
type UpvoteResponse struct {
	Success bool   `json:"success"`
	Count   int    `json:"count,omitempty"`
	Message string `json:"message,omitempty"`
}
