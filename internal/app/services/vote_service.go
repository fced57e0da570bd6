package services

import (
	"context"

	"github.com/rs/zerolog"
	"github.com/kaan/uniforum/internal/app/models"
	"github.com/kaan/uniforum/internal/pkg/apperrors"
)

// ReputationPerUpvote is the fixed amount credited to the answering
// faculty for each distinct upvote.
const ReputationPerUpvote = 10

// VoteService defines the interface for the upvote operation
type VoteService interface {
	// CastUpvote records the acting student's upvote on an answer and
	// returns the answer's new tally. A duplicate vote returns
	// apperrors.ErrAlreadyVoted and changes nothing.
	CastUpvote(ctx context.Context, actor models.Actor, answerID int64) (int, error)
}

// voteServiceImpl implements VoteService
type voteServiceImpl struct {
	upvoteStore UpvoteStore
	answerStore AnswerStore
	logger      zerolog.Logger
}

// NewVoteService creates a new VoteService
func NewVoteService(
	upvoteStore UpvoteStore,
	answerStore AnswerStore,
	logger zerolog.Logger,
) VoteService {
	return &voteServiceImpl{
		upvoteStore: upvoteStore,
		answerStore: answerStore,
		logger:      logger,
	}
}

func (s *voteServiceImpl) CastUpvote(ctx context.Context, actor models.Actor, answerID int64) (int, error) {
	if actor.Role != models.RoleStudent {
		return 0, apperrors.NewForbiddenError("only students can upvote answers")
	}

	answer, err := s.answerStore.GetByID(ctx, answerID)
	if err != nil {
		return 0, err
	}

	// Fast path for the common duplicate; the unique constraint inside
	// Cast still decides under racing identical requests.
	voted, err := s.upvoteStore.Exists(ctx, answer.ID, actor.ID)
	if err != nil {
		return 0, err
	}
	if voted {
		return 0, apperrors.ErrAlreadyVoted
	}

	// Cast reads the tally in the same transaction as the insert, so
	// the returned count always reflects this vote.
	count, err := s.upvoteStore.Cast(ctx, answer.ID, actor.ID, ReputationPerUpvote)
	if err != nil {
		return 0, err
	}

	s.logger.Info().
		Int64("answerId", answer.ID).
		Int64("userId", actor.ID).
		Int64("facultyId", answer.FacultyID).
		Msg("Upvote cast")

	return count, nil
}
