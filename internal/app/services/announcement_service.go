package services

import (
	"context"
	"strings"

	"github.com/rs/zerolog"
	"github.com/kaan/uniforum/internal/app/models"
	"github.com/kaan/uniforum/internal/app/models/dto"
	"github.com/kaan/uniforum/internal/pkg/apperrors"
)

// AnnouncementService defines the interface for department announcements
type AnnouncementService interface {
	Post(ctx context.Context, actor models.Actor, req *dto.CreateAnnouncementRequest) (*dto.AnnouncementResponse, error)
	ListForDepartment(ctx context.Context, actor models.Actor) ([]dto.AnnouncementResponse, error)
}

// announcementServiceImpl implements AnnouncementService
type announcementServiceImpl struct {
	announcementStore AnnouncementStore
	logger            zerolog.Logger
}

// NewAnnouncementService creates a new AnnouncementService
func NewAnnouncementService(announcementStore AnnouncementStore, logger zerolog.Logger) AnnouncementService {
	return &announcementServiceImpl{
		announcementStore: announcementStore,
		logger:            logger,
	}
}

// Post creates an announcement stamped with the acting faculty member's
// department. Faculty without a department cannot announce.
func (s *announcementServiceImpl) Post(ctx context.Context, actor models.Actor, req *dto.CreateAnnouncementRequest) (*dto.AnnouncementResponse, error) {
	if actor.Role != models.RoleFaculty {
		return nil, apperrors.NewForbiddenError("only faculty can post announcements")
	}

	title := strings.TrimSpace(req.Title)
	content := strings.TrimSpace(req.Content)
	if title == "" {
		return nil, apperrors.NewValidationError("title must not be empty")
	}
	if content == "" {
		return nil, apperrors.NewValidationError("content must not be empty")
	}

	if actor.DepartmentID == nil {
		return nil, apperrors.ErrNoDepartment
	}

	announcement := &models.Announcement{
		FacultyID:    actor.ID,
		DepartmentID: *actor.DepartmentID,
		Title:        title,
		Content:      content,
	}

	if err := s.announcementStore.Create(ctx, announcement); err != nil {
		return nil, err
	}

	s.logger.Info().
		Int64("announcementId", announcement.ID).
		Int64("facultyId", actor.ID).
		Int64("departmentId", announcement.DepartmentID).
		Msg("Announcement posted")

	return toAnnouncementResponse(announcement), nil
}

// ListForDepartment returns the announcements of the acting user's own
// department, newest first. Users never see another department's feed.
func (s *announcementServiceImpl) ListForDepartment(ctx context.Context, actor models.Actor) ([]dto.AnnouncementResponse, error) {
	if actor.DepartmentID == nil {
		return nil, apperrors.ErrNoDepartment
	}

	announcements, err := s.announcementStore.GetByDepartment(ctx, *actor.DepartmentID)
	if err != nil {
		return nil, err
	}

	responses := make([]dto.AnnouncementResponse, 0, len(announcements))
	for _, announcement := range announcements {
		responses = append(responses, *toAnnouncementResponse(announcement))
	}

	return responses, nil
}

func toAnnouncementResponse(announcement *models.Announcement) *dto.AnnouncementResponse {
	return &dto.AnnouncementResponse{
		ID:           announcement.ID,
		Title:        announcement.Title,
		Content:      announcement.Content,
		FacultyID:    announcement.FacultyID,
		FacultyName:  announcement.FacultyName,
		DepartmentID: announcement.DepartmentID,
		CreatedAt:    announcement.CreatedAt,
	}
}
