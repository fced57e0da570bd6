package services

import (
	"context"
	"strings"

	"github.com/rs/zerolog"
	"github.com/kaan/uniforum/internal/app/models"
	"github.com/kaan/uniforum/internal/app/models/dto"
	"github.com/kaan/uniforum/internal/pkg/apperrors"
)

// QuestionService defines the interface for question operations
type QuestionService interface {
	Ask(ctx context.Context, actor models.Actor, req *dto.CreateQuestionRequest) (*dto.QuestionResponse, error)
	ListAll(ctx context.Context, actor models.Actor) ([]dto.QuestionResponse, error)
	ListMine(ctx context.Context, actor models.Actor) ([]dto.QuestionResponse, error)
	ListAssigned(ctx context.Context, actor models.Actor) ([]dto.QuestionResponse, error)
}

// questionServiceImpl implements QuestionService
type questionServiceImpl struct {
	questionStore QuestionStore
	subjectStore  SubjectStore
	answerStore   AnswerStore
	logger        zerolog.Logger
}

// NewQuestionService creates a new QuestionService
func NewQuestionService(
	questionStore QuestionStore,
	subjectStore SubjectStore,
	answerStore AnswerStore,
	logger zerolog.Logger,
) QuestionService {
	return &questionServiceImpl{
		questionStore: questionStore,
		subjectStore:  subjectStore,
		answerStore:   answerStore,
		logger:        logger,
	}
}

// Ask creates a new open question for the acting student. The subject
// must belong to the student's department.
func (s *questionServiceImpl) Ask(ctx context.Context, actor models.Actor, req *dto.CreateQuestionRequest) (*dto.QuestionResponse, error) {
	if actor.Role != models.RoleStudent {
		return nil, apperrors.NewForbiddenError("only students can ask questions")
	}

	title := strings.TrimSpace(req.Title)
	description := strings.TrimSpace(req.Description)
	if title == "" {
		return nil, apperrors.NewValidationError("title must not be empty")
	}
	if description == "" {
		return nil, apperrors.NewValidationError("description must not be empty")
	}

	subject, err := s.subjectStore.GetByID(ctx, req.SubjectID)
	if err != nil {
		return nil, err
	}

	if actor.DepartmentID == nil || subject.DepartmentID != *actor.DepartmentID {
		return nil, apperrors.ErrSubjectNotInDepartment
	}

	question := &models.Question{
		Title:       title,
		Description: description,
		StudentID:   actor.ID,
		SubjectID:   subject.ID,
	}

	if err := s.questionStore.Create(ctx, question); err != nil {
		return nil, err
	}

	s.logger.Info().
		Int64("questionId", question.ID).
		Int64("studentId", actor.ID).
		Int64("subjectId", subject.ID).
		Msg("Question created")

	question.Subject = subject
	resp := s.toResponse(ctx, question)
	return &resp, nil
}

// ListAll returns every question across all subjects and departments,
// newest first. Students browse cross-department on purpose.
func (s *questionServiceImpl) ListAll(ctx context.Context, actor models.Actor) ([]dto.QuestionResponse, error) {
	if actor.Role != models.RoleStudent {
		return nil, apperrors.NewForbiddenError("only students can browse all questions")
	}

	questions, err := s.questionStore.GetAll(ctx)
	if err != nil {
		return nil, err
	}

	return s.toResponses(ctx, questions), nil
}

// ListMine returns the acting student's own questions, newest first
func (s *questionServiceImpl) ListMine(ctx context.Context, actor models.Actor) ([]dto.QuestionResponse, error) {
	if actor.Role != models.RoleStudent {
		return nil, apperrors.NewForbiddenError("only students have their own questions")
	}

	questions, err := s.questionStore.GetByStudent(ctx, actor.ID)
	if err != nil {
		return nil, err
	}

	return s.toResponses(ctx, questions), nil
}

// ListAssigned returns the questions visible to the acting faculty
// member: exactly those whose subject is in their assignment set.
func (s *questionServiceImpl) ListAssigned(ctx context.Context, actor models.Actor) ([]dto.QuestionResponse, error) {
	if actor.Role != models.RoleFaculty {
		return nil, apperrors.NewForbiddenError("only faculty have assigned questions")
	}

	questions, err := s.questionStore.GetAssignedToFaculty(ctx, actor.ID)
	if err != nil {
		return nil, err
	}

	return s.toResponses(ctx, questions), nil
}

func (s *questionServiceImpl) toResponses(ctx context.Context, questions []*models.Question) []dto.QuestionResponse {
	responses := make([]dto.QuestionResponse, 0, len(questions))
	for _, question := range questions {
		responses = append(responses, s.toResponse(ctx, question))
	}
	return responses
}

func (s *questionServiceImpl) toResponse(ctx context.Context, question *models.Question) dto.QuestionResponse {
	resp := dto.QuestionResponse{
		ID:          question.ID,
		Title:       question.Title,
		Description: question.Description,
		SubjectID:   question.SubjectID,
		StudentID:   question.StudentID,
		IsAnswered:  question.IsAnswered,
		CreatedAt:   question.CreatedAt,
	}
	if question.Subject != nil {
		resp.SubjectName = question.Subject.Name
	}

	answers, err := s.answerStore.GetByQuestion(ctx, question.ID)
	if err != nil {
		s.logger.Error().Err(err).
			Int64("questionId", question.ID).
			Msg("Failed to load answers for question")
		return resp
	}

	for _, answer := range answers {
		resp.Answers = append(resp.Answers, dto.AnswerResponse{
			ID:          answer.ID,
			QuestionID:  answer.QuestionID,
			FacultyID:   answer.FacultyID,
			Content:     answer.Content,
			UpvoteCount: answer.UpvoteCount,
			CreatedAt:   answer.CreatedAt,
		})
	}

	return resp
}
