package services

import (
	"context"
	"strings"

	"github.com/rs/zerolog"
	"github.com/kaan/uniforum/internal/app/models"
	"github.com/kaan/uniforum/internal/app/models/dto"
	"github.com/kaan/uniforum/internal/pkg/apperrors"
)

// AnswerService defines the interface for answering questions
type AnswerService interface {
	Submit(ctx context.Context, actor models.Actor, questionID int64, req *dto.CreateAnswerRequest) (*dto.AnswerResponse, error)
}

// answerServiceImpl implements AnswerService
type answerServiceImpl struct {
	answerStore   AnswerStore
	questionStore QuestionStore
	subjectStore  SubjectStore
	logger        zerolog.Logger
}

// NewAnswerService creates a new AnswerService
func NewAnswerService(
	answerStore AnswerStore,
	questionStore QuestionStore,
	subjectStore SubjectStore,
	logger zerolog.Logger,
) AnswerService {
	return &answerServiceImpl{
		answerStore:   answerStore,
		questionStore: questionStore,
		subjectStore:  subjectStore,
		logger:        logger,
	}
}

// Submit records a faculty answer to a question. The caller must be
// assigned to the question's subject. The first answer moves the
// question from open to answered; later answers are appended without
// touching the flag.
func (s *answerServiceImpl) Submit(ctx context.Context, actor models.Actor, questionID int64, req *dto.CreateAnswerRequest) (*dto.AnswerResponse, error) {
	if actor.Role != models.RoleFaculty {
		return nil, apperrors.NewForbiddenError("only faculty can answer questions")
	}

	content := strings.TrimSpace(req.Content)
	if content == "" {
		return nil, apperrors.NewValidationError("answer content must not be empty")
	}

	question, err := s.questionStore.GetByID(ctx, questionID)
	if err != nil {
		return nil, err
	}

	assigned, err := s.subjectStore.IsFacultyAssigned(ctx, actor.ID, question.SubjectID)
	if err != nil {
		return nil, err
	}
	if !assigned {
		return nil, apperrors.ErrFacultyNotAssigned
	}

	answer := &models.Answer{
		QuestionID: question.ID,
		FacultyID:  actor.ID,
		Content:    content,
	}

	if err := s.answerStore.Create(ctx, answer); err != nil {
		return nil, err
	}

	s.logger.Info().
		Int64("answerId", answer.ID).
		Int64("questionId", question.ID).
		Int64("facultyId", actor.ID).
		Msg("Answer submitted")

	return &dto.AnswerResponse{
		ID:         answer.ID,
		QuestionID: answer.QuestionID,
		FacultyID:  answer.FacultyID,
		Content:    answer.Content,
		CreatedAt:  answer.CreatedAt,
	}, nil
}
