package services

import (
	"context"

	"github.com/kaan/uniforum/internal/app/models"
)

// The store interfaces below describe what each service needs from the
// persistence layer. The pgx repositories in the repositories package
// satisfy them; tests substitute in-memory fakes.

// UserStore is the persistence surface for users. CreateWithAssignments
// must write the user row and the subject assignments atomically: a
// failure on either leaves no partial rows.
type UserStore interface {
	CreateWithAssignments(ctx context.Context, user *models.User, subjectIDs []int64) error
	GetByID(ctx context.Context, id int64) (*models.User, error)
	GetByUsername(ctx context.Context, username string) (*models.User, error)
	FacultyLeaderboard(ctx context.Context) ([]*models.User, error)
}

// DepartmentStore is the persistence surface for departments
type DepartmentStore interface {
	GetByID(ctx context.Context, id int64) (*models.Department, error)
	GetAll(ctx context.Context) ([]*models.Department, error)
}

// SubjectStore is the persistence surface for subjects and
// faculty-subject assignments
type SubjectStore interface {
	GetByID(ctx context.Context, id int64) (*models.Subject, error)
	GetAll(ctx context.Context, departmentID *int64) ([]*models.Subject, error)
	IsFacultyAssigned(ctx context.Context, facultyID, subjectID int64) (bool, error)
}

// QuestionStore is the persistence surface for questions
type QuestionStore interface {
	Create(ctx context.Context, question *models.Question) error
	GetByID(ctx context.Context, id int64) (*models.Question, error)
	GetAll(ctx context.Context) ([]*models.Question, error)
	GetByStudent(ctx context.Context, studentID int64) ([]*models.Question, error)
	GetAssignedToFaculty(ctx context.Context, facultyID int64) ([]*models.Question, error)
}

// AnswerStore is the persistence surface for answers
type AnswerStore interface {
	Create(ctx context.Context, answer *models.Answer) error
	GetByID(ctx context.Context, id int64) (*models.Answer, error)
	GetByQuestion(ctx context.Context, questionID int64) ([]models.Answer, error)
}

// UpvoteStore is the persistence surface for upvotes. Cast must insert
// the vote, apply the reputation delta and read the new tally in one
// atomic unit, and report a duplicate (answer, user) pair as
// apperrors.ErrAlreadyVoted.
type UpvoteStore interface {
	Cast(ctx context.Context, answerID, userID int64, reputationDelta int) (int, error)
	Exists(ctx context.Context, answerID, userID int64) (bool, error)
}

// AnnouncementStore is the persistence surface for announcements
type AnnouncementStore interface {
	Create(ctx context.Context, announcement *models.Announcement) error
	GetByDepartment(ctx context.Context, departmentID int64) ([]*models.Announcement, error)
}
