package models

// Subject represents a subject taught within a department
type Subject struct {
	ID           int64       `json:"id"`
	Name         string      `json:"name"`
	DepartmentID int64       `json:"departmentId"`
	Department   *Department `json:"department,omitempty"` // Relation, no db tag
}

// FacultySubject is the assignment of a faculty user to a subject. The
// set of these rows for a faculty member is their visibility set.
type FacultySubject struct {
	ID        int64 `json:"id"`
	FacultyID int64 `json:"facultyId"`
	SubjectID int64 `json:"subjectId"`
}
