package models

import (
	"time"
)

// User defines the user model based on the 'users' table
type User struct {
	ID               int64     `json:"id" db:"id" example:"1"`                                   // Unique identifier for the user
	Username         string    `json:"username" db:"username" example:"s.kaya"`                  // Unique login name
	Password         string    `json:"-" db:"password"`                                          // Hashed password (excluded from JSON)
	Role             RoleType  `json:"role" db:"role" example:"student"`                         // student, faculty or admin
	DepartmentID     *int64    `json:"departmentId,omitempty" db:"department_id"`                // Owning department (nullable)
	ReputationPoints int       `json:"reputationPoints" db:"reputation_points" example:"30"`     // Faculty reputation, mutated only by the vote engine
	CreatedAt        time.Time `json:"createdAt" db:"created_at" example:"2024-01-01T10:00:00Z"` // Timestamp when the user was created

	Department *Department `json:"department,omitempty"` // Relation, no db tag
}
