package services

import (
	"context"

	"github.com/rs/zerolog"
	"github.com/kaan/uniforum/internal/app/models/dto"
)

// LeaderboardService defines the interface for the faculty reputation
// leaderboard
type LeaderboardService interface {
	Leaderboard(ctx context.Context) ([]dto.LeaderboardEntry, error)
}

// leaderboardServiceImpl implements LeaderboardService
type leaderboardServiceImpl struct {
	userStore UserStore
	logger    zerolog.Logger
}

// NewLeaderboardService creates a new LeaderboardService
func NewLeaderboardService(userStore UserStore, logger zerolog.Logger) LeaderboardService {
	return &leaderboardServiceImpl{
		userStore: userStore,
		logger:    logger,
	}
}

// Leaderboard returns faculty ranked by reputation descending; ties
// keep the store's stable id order.
func (s *leaderboardServiceImpl) Leaderboard(ctx context.Context) ([]dto.LeaderboardEntry, error) {
	faculty, err := s.userStore.FacultyLeaderboard(ctx)
	if err != nil {
		return nil, err
	}

	entries := make([]dto.LeaderboardEntry, 0, len(faculty))
	for i, user := range faculty {
		entry := dto.LeaderboardEntry{
			Rank:             i + 1,
			UserID:           user.ID,
			Username:         user.Username,
			ReputationPoints: user.ReputationPoints,
		}
		if user.Department != nil {
			entry.DepartmentName = user.Department.Name
		}
		entries = append(entries, entry)
	}

	return entries, nil
}
