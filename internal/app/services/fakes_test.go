package services

import (
	"context"
	"sort"
	"time"

	"github.com/kaan/uniforum/internal/app/models"
	"github.com/kaan/uniforum/internal/pkg/apperrors"
)

// In-memory stores backing the service tests. They mirror the pgx
// repositories' error contracts, including the atomic vote insert.

type fakeUserStore struct {
	users    map[int64]*models.User
	subjects *fakeSubjectStore
	nextID   int64
}

func newFakeUserStore() *fakeUserStore {
	return &fakeUserStore{users: make(map[int64]*models.User)}
}

func (s *fakeUserStore) Create(_ context.Context, user *models.User) error {
	for _, existing := range s.users {
		if existing.Username == user.Username {
			return apperrors.ErrUsernameAlreadyExists
		}
	}
	s.nextID++
	user.ID = s.nextID
	user.CreatedAt = time.Now()
	s.users[user.ID] = user
	return nil
}

// CreateWithAssignments mirrors the repository transaction: the user
// row and the assignments commit together or not at all.
func (s *fakeUserStore) CreateWithAssignments(ctx context.Context, user *models.User, subjectIDs []int64) error {
	for _, subjectID := range subjectIDs {
		if _, ok := s.subjects.subjects[subjectID]; !ok {
			return apperrors.ErrSubjectNotFound
		}
	}
	if err := s.Create(ctx, user); err != nil {
		return err
	}
	for _, subjectID := range subjectIDs {
		s.subjects.assignments[assignmentKey{user.ID, subjectID}] = true
	}
	return nil
}

func (s *fakeUserStore) GetByID(_ context.Context, id int64) (*models.User, error) {
	user, ok := s.users[id]
	if !ok {
		return nil, apperrors.ErrUserNotFound
	}
	return user, nil
}

func (s *fakeUserStore) GetByUsername(_ context.Context, username string) (*models.User, error) {
	for _, user := range s.users {
		if user.Username == username {
			return user, nil
		}
	}
	return nil, apperrors.ErrUserNotFound
}

func (s *fakeUserStore) FacultyLeaderboard(_ context.Context) ([]*models.User, error) {
	var faculty []*models.User
	for _, user := range s.users {
		if user.Role == models.RoleFaculty {
			faculty = append(faculty, user)
		}
	}
	sort.Slice(faculty, func(i, j int) bool {
		if faculty[i].ReputationPoints != faculty[j].ReputationPoints {
			return faculty[i].ReputationPoints > faculty[j].ReputationPoints
		}
		return faculty[i].ID < faculty[j].ID
	})
	return faculty, nil
}

type fakeDepartmentStore struct {
	departments map[int64]*models.Department
}

func newFakeDepartmentStore() *fakeDepartmentStore {
	return &fakeDepartmentStore{departments: make(map[int64]*models.Department)}
}

func (s *fakeDepartmentStore) GetByID(_ context.Context, id int64) (*models.Department, error) {
	dept, ok := s.departments[id]
	if !ok {
		return nil, apperrors.ErrDepartmentNotFound
	}
	return dept, nil
}

func (s *fakeDepartmentStore) GetAll(_ context.Context) ([]*models.Department, error) {
	all := make([]*models.Department, 0, len(s.departments))
	for _, dept := range s.departments {
		all = append(all, dept)
	}
	sort.Slice(all, func(i, j int) bool { return all[i].Name < all[j].Name })
	return all, nil
}

type assignmentKey struct {
	facultyID int64
	subjectID int64
}

type fakeSubjectStore struct {
	subjects    map[int64]*models.Subject
	assignments map[assignmentKey]bool
}

func newFakeSubjectStore() *fakeSubjectStore {
	return &fakeSubjectStore{
		subjects:    make(map[int64]*models.Subject),
		assignments: make(map[assignmentKey]bool),
	}
}

func (s *fakeSubjectStore) GetByID(_ context.Context, id int64) (*models.Subject, error) {
	subject, ok := s.subjects[id]
	if !ok {
		return nil, apperrors.ErrSubjectNotFound
	}
	return subject, nil
}

func (s *fakeSubjectStore) GetAll(_ context.Context, departmentID *int64) ([]*models.Subject, error) {
	var all []*models.Subject
	for _, subject := range s.subjects {
		if departmentID == nil || subject.DepartmentID == *departmentID {
			all = append(all, subject)
		}
	}
	sort.Slice(all, func(i, j int) bool { return all[i].ID < all[j].ID })
	return all, nil
}

func (s *fakeSubjectStore) IsFacultyAssigned(_ context.Context, facultyID, subjectID int64) (bool, error) {
	return s.assignments[assignmentKey{facultyID, subjectID}], nil
}

type fakeQuestionStore struct {
	questions map[int64]*models.Question
	order     []int64
	subjects  *fakeSubjectStore
	nextID    int64
}

func newFakeQuestionStore(subjects *fakeSubjectStore) *fakeQuestionStore {
	return &fakeQuestionStore{
		questions: make(map[int64]*models.Question),
		subjects:  subjects,
	}
}

func (s *fakeQuestionStore) Create(_ context.Context, question *models.Question) error {
	s.nextID++
	question.ID = s.nextID
	question.CreatedAt = time.Now()
	s.questions[question.ID] = question
	s.order = append(s.order, question.ID)
	return nil
}

func (s *fakeQuestionStore) GetByID(_ context.Context, id int64) (*models.Question, error) {
	question, ok := s.questions[id]
	if !ok {
		return nil, apperrors.ErrQuestionNotFound
	}
	return question, nil
}

func (s *fakeQuestionStore) GetAll(_ context.Context) ([]*models.Question, error) {
	all := make([]*models.Question, 0, len(s.order))
	for i := len(s.order) - 1; i >= 0; i-- {
		all = append(all, s.questions[s.order[i]])
	}
	return all, nil
}

func (s *fakeQuestionStore) GetByStudent(_ context.Context, studentID int64) ([]*models.Question, error) {
	var mine []*models.Question
	for i := len(s.order) - 1; i >= 0; i-- {
		if q := s.questions[s.order[i]]; q.StudentID == studentID {
			mine = append(mine, q)
		}
	}
	return mine, nil
}

func (s *fakeQuestionStore) GetAssignedToFaculty(_ context.Context, facultyID int64) ([]*models.Question, error) {
	var visible []*models.Question
	for i := len(s.order) - 1; i >= 0; i-- {
		q := s.questions[s.order[i]]
		if s.subjects.assignments[assignmentKey{facultyID, q.SubjectID}] {
			visible = append(visible, q)
		}
	}
	return visible, nil
}

type fakeAnswerStore struct {
	answers   map[int64]*models.Answer
	order     []int64
	questions *fakeQuestionStore
	upvotes   *fakeUpvoteStore
	nextID    int64
}

func newFakeAnswerStore(questions *fakeQuestionStore) *fakeAnswerStore {
	return &fakeAnswerStore{
		answers:   make(map[int64]*models.Answer),
		questions: questions,
	}
}

// Create mirrors the repository transaction: the answer row and the
// is_answered flip commit together.
func (s *fakeAnswerStore) Create(_ context.Context, answer *models.Answer) error {
	question, ok := s.questions.questions[answer.QuestionID]
	if !ok {
		return apperrors.ErrQuestionNotFound
	}
	s.nextID++
	answer.ID = s.nextID
	answer.CreatedAt = time.Now()
	s.answers[answer.ID] = answer
	s.order = append(s.order, answer.ID)
	question.IsAnswered = true
	return nil
}

func (s *fakeAnswerStore) GetByID(_ context.Context, id int64) (*models.Answer, error) {
	answer, ok := s.answers[id]
	if !ok {
		return nil, apperrors.ErrAnswerNotFound
	}
	return answer, nil
}

func (s *fakeAnswerStore) GetByQuestion(_ context.Context, questionID int64) ([]models.Answer, error) {
	var result []models.Answer
	for _, id := range s.order {
		answer := s.answers[id]
		if answer.QuestionID != questionID {
			continue
		}
		copied := *answer
		if s.upvotes != nil {
			copied.UpvoteCount = s.upvotes.countFor(answer.ID)
		}
		result = append(result, copied)
	}
	return result, nil
}

type voteKey struct {
	answerID int64
	userID   int64
}

type fakeUpvoteStore struct {
	votes   map[voteKey]bool
	answers *fakeAnswerStore
	users   *fakeUserStore
}

func newFakeUpvoteStore(answers *fakeAnswerStore, users *fakeUserStore) *fakeUpvoteStore {
	return &fakeUpvoteStore{
		votes:   make(map[voteKey]bool),
		answers: answers,
		users:   users,
	}
}

// Cast mirrors the repository transaction: the vote row, the
// reputation credit and the tally read happen as one unit, and a
// duplicate pair changes nothing.
func (s *fakeUpvoteStore) Cast(_ context.Context, answerID, userID int64, reputationDelta int) (int, error) {
	answer, ok := s.answers.answers[answerID]
	if !ok {
		return 0, apperrors.ErrAnswerNotFound
	}
	key := voteKey{answerID, userID}
	if s.votes[key] {
		return 0, apperrors.ErrAlreadyVoted
	}
	s.votes[key] = true
	if faculty, ok := s.users.users[answer.FacultyID]; ok {
		faculty.ReputationPoints += reputationDelta
	}
	return s.countFor(answerID), nil
}

func (s *fakeUpvoteStore) Exists(_ context.Context, answerID, userID int64) (bool, error) {
	return s.votes[voteKey{answerID, userID}], nil
}

func (s *fakeUpvoteStore) countFor(answerID int64) int {
	count := 0
	for key := range s.votes {
		if key.answerID == answerID {
			count++
		}
	}
	return count
}

// forumFixture wires all the fake stores together with a seeded
// department, subject, student and faculty member.
type forumFixture struct {
	users       *fakeUserStore
	departments *fakeDepartmentStore
	subjects    *fakeSubjectStore
	questions   *fakeQuestionStore
	answers     *fakeAnswerStore
	upvotes     *fakeUpvoteStore

	department *models.Department
	subject    *models.Subject
	student    *models.User
	faculty    *models.User
}

func newForumFixture() *forumFixture {
	f := &forumFixture{
		users:       newFakeUserStore(),
		departments: newFakeDepartmentStore(),
		subjects:    newFakeSubjectStore(),
	}
	f.users.subjects = f.subjects
	f.questions = newFakeQuestionStore(f.subjects)
	f.answers = newFakeAnswerStore(f.questions)
	f.upvotes = newFakeUpvoteStore(f.answers, f.users)
	f.answers.upvotes = f.upvotes

	f.department = &models.Department{ID: 1, Name: "Computer Science"}
	f.departments.departments[1] = f.department

	f.subject = &models.Subject{ID: 1, Name: "Algorithms", DepartmentID: 1}
	f.subjects.subjects[1] = f.subject

	deptID := f.department.ID
	f.student = &models.User{Username: "s.kaya", Role: models.RoleStudent, DepartmentID: &deptID}
	_ = f.users.Create(context.Background(), f.student)

	f.faculty = &models.User{Username: "dr.demir", Role: models.RoleFaculty, DepartmentID: &deptID}
	_ = f.users.Create(context.Background(), f.faculty)

	return f
}

func (f *forumFixture) actorFor(user *models.User) models.Actor {
	return models.Actor{
		ID:           user.ID,
		Username:     user.Username,
		Role:         user.Role,
		DepartmentID: user.DepartmentID,
	}
}

func (f *forumFixture) assign(facultyID, subjectID int64) {
	f.subjects.assignments[assignmentKey{facultyID, subjectID}] = true
}
