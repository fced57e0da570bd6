package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/kaan/uniforum/internal/app/models/dto"
	"github.com/kaan/uniforum/internal/app/services"
	"github.com/kaan/uniforum/internal/middleware"
)

// AnnouncementController handles department announcement requests
type AnnouncementController struct {
	announcementService services.AnnouncementService
}

// NewAnnouncementController creates a new AnnouncementController
func NewAnnouncementController(announcementService services.AnnouncementService) *AnnouncementController {
	return &AnnouncementController{
		announcementService: announcementService,
	}
}

// Post creates a department announcement
// @Summary Post an announcement
// @Description Publishes an announcement to the faculty member's own department
// @Tags announcements
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.CreateAnnouncementRequest true "Announcement"
// @Success 201 {object} dto.APIResponse{data=dto.AnnouncementResponse}
// @Failure 403 {object} dto.ErrorResponse "Not faculty"
// @Failure 422 {object} dto.ErrorResponse "Faculty has no department"
// @Router /announcements [post]
func (c *AnnouncementController) Post(ctx *gin.Context) {
	actor, ok := middleware.CurrentActor(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.NewErrorResponse(
			dto.NewErrorDetail(dto.ErrorCodeUnauthorized, "Authentication required")))
		return
	}

	var req dto.CreateAnnouncementRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid announcement data")
		errorDetail = errorDetail.WithDetails(err.Error())
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	announcement, err := c.announcementService.Post(ctx, actor, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.NewAPIResponse(announcement))
}

// List returns the caller's department announcements, newest first
// @Summary Department announcements
// @Tags announcements
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.APIResponse{data=[]dto.AnnouncementResponse}
// @Failure 422 {object} dto.ErrorResponse "Caller has no department"
// @Router /announcements [get]
func (c *AnnouncementController) List(ctx *gin.Context) {
	actor, ok := middleware.CurrentActor(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.NewErrorResponse(
			dto.NewErrorDetail(dto.ErrorCodeUnauthorized, "Authentication required")))
		return
	}

	announcements, err := c.announcementService.ListForDepartment(ctx, actor)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(announcements))
}
