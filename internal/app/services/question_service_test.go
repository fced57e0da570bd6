package services

import (
	"context"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kaan/uniforum/internal/app/models"
	"github.com/kaan/uniforum/internal/app/models/dto"
	"github.com/kaan/uniforum/internal/pkg/apperrors"
)

func newQuestionService(f *forumFixture) QuestionService {
	return NewQuestionService(f.questions, f.subjects, f.answers, zerolog.Nop())
}

func TestAskQuestion_Success(t *testing.T) {
	f := newForumFixture()
	svc := newQuestionService(f)

	resp, err := svc.Ask(context.Background(), f.actorFor(f.student), &dto.CreateQuestionRequest{
		Title:       "Hash join memory",
		Description: "How much memory does the build side need?",
		SubjectID:   f.subject.ID,
	})

	require.NoError(t, err)
	assert.Equal(t, f.student.ID, resp.StudentID)
	assert.Equal(t, f.subject.ID, resp.SubjectID)
	assert.Equal(t, f.subject.Name, resp.SubjectName)
	assert.False(t, resp.IsAnswered)
	assert.Empty(t, resp.Answers)
}

func TestAskQuestion_SubjectOutsideDepartment(t *testing.T) {
	f := newForumFixture()
	f.departments.departments[2] = &models.Department{ID: 2, Name: "Mathematics"}
	f.subjects.subjects[2] = &models.Subject{ID: 2, Name: "Calculus", DepartmentID: 2}
	svc := newQuestionService(f)

	_, err := svc.Ask(context.Background(), f.actorFor(f.student), &dto.CreateQuestionRequest{
		Title:       "Limits",
		Description: "Epsilon-delta question.",
		SubjectID:   2,
	})

	assert.ErrorIs(t, err, apperrors.ErrSubjectNotInDepartment)
}

func TestAskQuestion_ActorWithoutDepartment(t *testing.T) {
	f := newForumFixture()
	svc := newQuestionService(f)

	actor := f.actorFor(f.student)
	actor.DepartmentID = nil

	_, err := svc.Ask(context.Background(), actor, &dto.CreateQuestionRequest{
		Title:       "Orphan",
		Description: "No department on the account.",
		SubjectID:   f.subject.ID,
	})

	assert.ErrorIs(t, err, apperrors.ErrSubjectNotInDepartment)
}

func TestAskQuestion_SubjectNotFound(t *testing.T) {
	f := newForumFixture()
	svc := newQuestionService(f)

	_, err := svc.Ask(context.Background(), f.actorFor(f.student), &dto.CreateQuestionRequest{
		Title:       "Ghost subject",
		Description: "Points at nothing.",
		SubjectID:   9999,
	})

	assert.ErrorIs(t, err, apperrors.ErrSubjectNotFound)
}

func TestAskQuestion_FacultyForbidden(t *testing.T) {
	f := newForumFixture()
	svc := newQuestionService(f)

	_, err := svc.Ask(context.Background(), f.actorFor(f.faculty), &dto.CreateQuestionRequest{
		Title:       "Role check",
		Description: "Faculty cannot ask.",
		SubjectID:   f.subject.ID,
	})

	assert.ErrorIs(t, err, apperrors.ErrPermissionDenied)
}

func TestAskQuestion_BlankTitle(t *testing.T) {
	f := newForumFixture()
	svc := newQuestionService(f)

	_, err := svc.Ask(context.Background(), f.actorFor(f.student), &dto.CreateQuestionRequest{
		Title:       "   ",
		Description: "Body present.",
		SubjectID:   f.subject.ID,
	})

	assert.ErrorIs(t, err, apperrors.ErrValidationFailed)
}

func TestListAssigned_VisibilityFollowsAssignments(t *testing.T) {
	f := newForumFixture()
	f.subjects.subjects[2] = &models.Subject{ID: 2, Name: "Operating Systems", DepartmentID: f.department.ID}
	svc := newQuestionService(f)

	ctx := context.Background()
	require.NoError(t, f.questions.Create(ctx, &models.Question{Title: "Q1", Description: "d", StudentID: f.student.ID, SubjectID: 1}))
	require.NoError(t, f.questions.Create(ctx, &models.Question{Title: "Q2", Description: "d", StudentID: f.student.ID, SubjectID: 2}))
	require.NoError(t, f.questions.Create(ctx, &models.Question{Title: "Q3", Description: "d", StudentID: f.student.ID, SubjectID: 1}))

	f.assign(f.faculty.ID, 1)

	visible, err := svc.ListAssigned(ctx, f.actorFor(f.faculty))
	require.NoError(t, err)
	require.Len(t, visible, 2)
	// Newest first
	assert.Equal(t, "Q3", visible[0].Title)
	assert.Equal(t, "Q1", visible[1].Title)
}

func TestListAssigned_NoAssignmentsMeansEmpty(t *testing.T) {
	f := newForumFixture()
	svc := newQuestionService(f)

	ctx := context.Background()
	require.NoError(t, f.questions.Create(ctx, &models.Question{Title: "Q1", Description: "d", StudentID: f.student.ID, SubjectID: 1}))

	visible, err := svc.ListAssigned(ctx, f.actorFor(f.faculty))
	require.NoError(t, err)
	assert.Empty(t, visible)
}

func TestListAssigned_StudentForbidden(t *testing.T) {
	f := newForumFixture()
	svc := newQuestionService(f)

	_, err := svc.ListAssigned(context.Background(), f.actorFor(f.student))
	assert.ErrorIs(t, err, apperrors.ErrPermissionDenied)
}

func TestListMine_OnlyOwnQuestions(t *testing.T) {
	f := newForumFixture()
	svc := newQuestionService(f)

	ctx := context.Background()
	deptID := f.department.ID
	other := &models.User{Username: "b.celik", Role: models.RoleStudent, DepartmentID: &deptID}
	require.NoError(t, f.users.Create(ctx, other))

	require.NoError(t, f.questions.Create(ctx, &models.Question{Title: "Mine", Description: "d", StudentID: f.student.ID, SubjectID: 1}))
	require.NoError(t, f.questions.Create(ctx, &models.Question{Title: "Theirs", Description: "d", StudentID: other.ID, SubjectID: 1}))

	mine, err := svc.ListMine(ctx, f.actorFor(f.student))
	require.NoError(t, err)
	require.Len(t, mine, 1)
	assert.Equal(t, "Mine", mine[0].Title)
}

func TestListAll_FacultyForbidden(t *testing.T) {
	f := newForumFixture()
	svc := newQuestionService(f)

	_, err := svc.ListAll(context.Background(), f.actorFor(f.faculty))
	assert.ErrorIs(t, err, apperrors.ErrPermissionDenied)
}
