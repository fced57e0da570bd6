package models

// RoleType defines the user role type
type RoleType string

const (
	RoleStudent RoleType = "student"
	RoleFaculty RoleType = "faculty"
	RoleAdmin   RoleType = "admin"
)

// Valid reports whether the role is one of the known roles.
func (r RoleType) Valid() bool {
	switch r {
	case RoleStudent, RoleFaculty, RoleAdmin:
		return true
	}
	return false
}

// Actor is the resolved identity performing an operation. It is built
// from the verified token claims by the auth middleware and threaded
// explicitly into every service call.
type Actor struct {
	ID           int64
	Username     string
	Role         RoleType
	DepartmentID *int64
}
