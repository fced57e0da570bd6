package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/kaan/uniforum/internal/app/models/dto"
	"github.com/kaan/uniforum/internal/app/services"
	"github.com/kaan/uniforum/internal/middleware"
)

// CatalogController serves the public reference data used by
// registration and question forms
type CatalogController struct {
	catalogService services.CatalogService
}

// NewCatalogController creates a new CatalogController
func NewCatalogController(catalogService services.CatalogService) *CatalogController {
	return &CatalogController{
		catalogService: catalogService,
	}
}

// ListDepartments returns all departments ordered by name
// @Summary List departments
// @Tags catalog
// @Produce json
// @Success 200 {object} dto.APIResponse{data=[]models.Department}
// @Router /departments [get]
func (c *CatalogController) ListDepartments(ctx *gin.Context) {
	departments, err := c.catalogService.ListDepartments(ctx)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(departments))
}

// ListSubjects returns subjects, optionally filtered by department
// @Summary List subjects
// @Tags catalog
// @Produce json
// @Param departmentId query int false "Filter by department ID"
// @Success 200 {object} dto.APIResponse{data=[]models.Subject}
// @Router /subjects [get]
func (c *CatalogController) ListSubjects(ctx *gin.Context) {
	var departmentID *int64
	if raw := ctx.Query("departmentId"); raw != "" {
		id, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid department ID")
			errorDetail = errorDetail.WithDetails("Department ID must be a valid number")
			ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
			return
		}
		departmentID = &id
	}

	subjects, err := c.catalogService.ListSubjects(ctx, departmentID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(subjects))
}
