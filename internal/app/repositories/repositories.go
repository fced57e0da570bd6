package repositories

import (
	"github.com/jackc/pgx/v5/pgxpool"
)

// Repositories holds all the repository instances
type Repositories struct {
	UserRepository         *UserRepository
	DepartmentRepository   *DepartmentRepository
	SubjectRepository      *SubjectRepository
	QuestionRepository     *QuestionRepository
	AnswerRepository       *AnswerRepository
	UpvoteRepository       *UpvoteRepository
	AnnouncementRepository *AnnouncementRepository
}

// NewRepositories initializes all repositories
func NewRepositories(db *pgxpool.Pool) *Repositories {
	return &Repositories{
		UserRepository:         NewUserRepository(db),
		DepartmentRepository:   NewDepartmentRepository(db),
		SubjectRepository:      NewSubjectRepository(db),
		QuestionRepository:     NewQuestionRepository(db),
		AnswerRepository:       NewAnswerRepository(db),
		UpvoteRepository:       NewUpvoteRepository(db),
		AnnouncementRepository: NewAnnouncementRepository(db),
	}
}
