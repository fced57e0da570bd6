package services

import (
	"context"
	"strings"

	"github.com/rs/zerolog"
	"github.com/kaan/uniforum/internal/app/models"
	"github.com/kaan/uniforum/internal/app/models/dto"
	"github.com/kaan/uniforum/internal/pkg/apperrors"
	"github.com/kaan/uniforum/internal/pkg/auth"
)

// AuthService defines the interface for registration and login
type AuthService interface {
	Register(ctx context.Context, req *dto.RegisterRequest) (*dto.UserResponse, error)
	Login(ctx context.Context, req *dto.LoginRequest) (*dto.TokenResponse, error)
	GetProfile(ctx context.Context, userID int64) (*dto.UserResponse, error)
}

// authServiceImpl implements AuthService
type authServiceImpl struct {
	userStore       UserStore
	subjectStore    SubjectStore
	departmentStore DepartmentStore
	jwtService      *auth.JWTService
	logger          zerolog.Logger
}

// NewAuthService creates a new AuthService
func NewAuthService(
	userStore UserStore,
	subjectStore SubjectStore,
	departmentStore DepartmentStore,
	jwtService *auth.JWTService,
	logger zerolog.Logger,
) AuthService {
	return &authServiceImpl{
		userStore:       userStore,
		subjectStore:    subjectStore,
		departmentStore: departmentStore,
		jwtService:      jwtService,
		logger:          logger,
	}
}

// Register creates a new student or faculty account. Faculty may be
// assigned to subjects at registration time.
func (s *authServiceImpl) Register(ctx context.Context, req *dto.RegisterRequest) (*dto.UserResponse, error) {
	username := strings.TrimSpace(req.Username)
	if username == "" {
		return nil, apperrors.NewValidationError("username must not be empty")
	}

	// Admin accounts come from the seed, not self-registration
	if !req.Role.Valid() || req.Role == models.RoleAdmin {
		return nil, apperrors.NewValidationError("role must be student or faculty")
	}

	if req.DepartmentID != nil {
		if _, err := s.departmentStore.GetByID(ctx, *req.DepartmentID); err != nil {
			return nil, err
		}
	}

	// Subject IDs are checked before any write; the user row and the
	// assignments then commit together, so a rejected registration
	// leaves no rows behind.
	var subjectIDs []int64
	if req.Role == models.RoleFaculty {
		for _, subjectID := range req.SubjectIDs {
			if _, err := s.subjectStore.GetByID(ctx, subjectID); err != nil {
				return nil, err
			}
		}
		subjectIDs = req.SubjectIDs
	}

	hashed, err := auth.HashPassword(req.Password)
	if err != nil {
		return nil, err
	}

	user := &models.User{
		Username:     username,
		Password:     hashed,
		Role:         req.Role,
		DepartmentID: req.DepartmentID,
	}

	if err := s.userStore.CreateWithAssignments(ctx, user, subjectIDs); err != nil {
		return nil, err
	}

	s.logger.Info().
		Int64("userId", user.ID).
		Str("role", string(user.Role)).
		Msg("User registered")

	return s.toResponse(ctx, user), nil
}

// Login verifies credentials and issues a token pair
func (s *authServiceImpl) Login(ctx context.Context, req *dto.LoginRequest) (*dto.TokenResponse, error) {
	user, err := s.userStore.GetByUsername(ctx, strings.TrimSpace(req.Username))
	if err != nil {
		// Do not reveal whether the username exists
		return nil, apperrors.ErrInvalidCredentials
	}

	if !auth.CheckPassword(user.Password, req.Password) {
		return nil, apperrors.ErrInvalidCredentials
	}

	accessToken, refreshToken, expiresIn, err := s.jwtService.GenerateTokenPair(user)
	if err != nil {
		return nil, err
	}

	s.logger.Info().Int64("userId", user.ID).Msg("User logged in")

	return &dto.TokenResponse{
		AccessToken:  accessToken,
		TokenType:    "Bearer",
		ExpiresIn:    expiresIn,
		RefreshToken: refreshToken,
	}, nil
}

// GetProfile returns the user's profile
func (s *authServiceImpl) GetProfile(ctx context.Context, userID int64) (*dto.UserResponse, error) {
	user, err := s.userStore.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	return s.toResponse(ctx, user), nil
}

func (s *authServiceImpl) toResponse(ctx context.Context, user *models.User) *dto.UserResponse {
	resp := &dto.UserResponse{
		ID:               user.ID,
		Username:         user.Username,
		Role:             string(user.Role),
		DepartmentID:     user.DepartmentID,
		ReputationPoints: user.ReputationPoints,
	}

	if user.DepartmentID != nil {
		if dept, err := s.departmentStore.GetByID(ctx, *user.DepartmentID); err == nil {
			resp.DepartmentName = dept.Name
		}
	}

	return resp
}
