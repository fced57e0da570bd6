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

func newAnswerFixture(t *testing.T) (*forumFixture, AnswerService, *models.Question) {
	t.Helper()
	f := newForumFixture()

	question := &models.Question{Title: "Deadlock detection", Description: "When does the scheduler check?", StudentID: f.student.ID, SubjectID: f.subject.ID}
	require.NoError(t, f.questions.Create(context.Background(), question))

	svc := NewAnswerService(f.answers, f.questions, f.subjects, zerolog.Nop())
	return f, svc, question
}

func TestSubmitAnswer_MarksQuestionAnswered(t *testing.T) {
	f, svc, question := newAnswerFixture(t)
	f.assign(f.faculty.ID, f.subject.ID)

	require.False(t, question.IsAnswered)

	resp, err := svc.Submit(context.Background(), f.actorFor(f.faculty), question.ID,
		&dto.CreateAnswerRequest{Content: "On every lock wait."})

	require.NoError(t, err)
	assert.Equal(t, question.ID, resp.QuestionID)
	assert.Equal(t, f.faculty.ID, resp.FacultyID)
	assert.True(t, question.IsAnswered)
}

func TestSubmitAnswer_SecondAnswerAppends(t *testing.T) {
	f, svc, question := newAnswerFixture(t)
	f.assign(f.faculty.ID, f.subject.ID)

	_, err := svc.Submit(context.Background(), f.actorFor(f.faculty), question.ID,
		&dto.CreateAnswerRequest{Content: "First take."})
	require.NoError(t, err)
	require.True(t, question.IsAnswered)

	_, err = svc.Submit(context.Background(), f.actorFor(f.faculty), question.ID,
		&dto.CreateAnswerRequest{Content: "A refinement."})
	require.NoError(t, err)

	answers, err := f.answers.GetByQuestion(context.Background(), question.ID)
	require.NoError(t, err)
	assert.Len(t, answers, 2)
	assert.True(t, question.IsAnswered)
}

func TestSubmitAnswer_NotAssigned(t *testing.T) {
	f, svc, question := newAnswerFixture(t)

	_, err := svc.Submit(context.Background(), f.actorFor(f.faculty), question.ID,
		&dto.CreateAnswerRequest{Content: "Should not land."})

	assert.ErrorIs(t, err, apperrors.ErrFacultyNotAssigned)
	assert.False(t, question.IsAnswered)
}

func TestSubmitAnswer_StudentForbidden(t *testing.T) {
	f, svc, question := newAnswerFixture(t)
	f.assign(f.faculty.ID, f.subject.ID)

	_, err := svc.Submit(context.Background(), f.actorFor(f.student), question.ID,
		&dto.CreateAnswerRequest{Content: "Students cannot answer."})

	assert.ErrorIs(t, err, apperrors.ErrPermissionDenied)
}

func TestSubmitAnswer_QuestionNotFound(t *testing.T) {
	f, svc, _ := newAnswerFixture(t)
	f.assign(f.faculty.ID, f.subject.ID)

	_, err := svc.Submit(context.Background(), f.actorFor(f.faculty), 9999,
		&dto.CreateAnswerRequest{Content: "No such question."})

	assert.ErrorIs(t, err, apperrors.ErrQuestionNotFound)
}

func TestSubmitAnswer_EmptyContent(t *testing.T) {
	f, svc, question := newAnswerFixture(t)
	f.assign(f.faculty.ID, f.subject.ID)

	_, err := svc.Submit(context.Background(), f.actorFor(f.faculty), question.ID,
		&dto.CreateAnswerRequest{Content: "   "})

	assert.ErrorIs(t, err, apperrors.ErrValidationFailed)
}
