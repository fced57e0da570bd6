package dto

import "github.com/kaan/uniforum/internal/app/models"

// LoginRequest represents login credentials
type LoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// TokenResponse represents JWT token information
type TokenResponse struct {
	AccessToken  string `json:"accessToken"`
	TokenType    string `json:"tokenType" example:"Bearer"`
	ExpiresIn    int    `json:"expiresIn"`
	RefreshToken string `json:"refreshToken,omitempty"`
}

// RegisterRequest represents a user registration request. DepartmentID
// is required for students and faculty; SubjectIDs assigns a newly
// registered faculty member to the subjects they will answer for.
type RegisterRequest struct {
	Username     string          `json:"username" binding:"required,min=3,max=50"`
	Password     string          `json:"password" binding:"required,min=8"`
	Role         models.RoleType `json:"role" binding:"required"`
	DepartmentID *int64          `json:"departmentId,omitempty"`
	SubjectIDs   []int64         `json:"subjectIds,omitempty"`
}

// UserResponse represents basic user information
type UserResponse struct {
	ID               int64  `json:"id"`
	Username         string `json:"username"`
	Role             string `json:"role"`
	DepartmentID     *int64 `json:"departmentId,omitempty"`
	DepartmentName   string `json:"departmentName,omitempty"`
	ReputationPoints int    `json:"reputationPoints"`
}
