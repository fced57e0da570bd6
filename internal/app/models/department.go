package models

// Department represents a university department
type Department struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}
