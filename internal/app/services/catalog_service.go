package services

import (
	"context"

	"github.com/rs/zerolog"
	"github.com/kaan/uniforum/internal/app/models"
)

// CatalogService exposes the reference data (departments, subjects)
// needed by registration and question forms
type CatalogService interface {
	ListDepartments(ctx context.Context) ([]*models.Department, error)
	ListSubjects(ctx context.Context, departmentID *int64) ([]*models.Subject, error)
}

// catalogServiceImpl implements CatalogService
type catalogServiceImpl struct {
	departmentStore DepartmentStore
	subjectStore    SubjectStore
	logger          zerolog.Logger
}

// NewCatalogService creates a new CatalogService
func NewCatalogService(departmentStore DepartmentStore, subjectStore SubjectStore, logger zerolog.Logger) CatalogService {
	return &catalogServiceImpl{
		departmentStore: departmentStore,
		subjectStore:    subjectStore,
		logger:          logger,
	}
}

func (s *catalogServiceImpl) ListDepartments(ctx context.Context) ([]*models.Department, error) {
	return s.departmentStore.GetAll(ctx)
}

func (s *catalogServiceImpl) ListSubjects(ctx context.Context, departmentID *int64) ([]*models.Subject, error) {
	return s.subjectStore.GetAll(ctx, departmentID)
}
