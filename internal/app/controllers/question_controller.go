package controllers

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/kaan/uniforum/internal/app/models"
	"github.com/kaan/uniforum/internal/app/models/dto"
	"github.com/kaan/uniforum/internal/app/services"
	"github.com/kaan/uniforum/internal/middleware"
)

// QuestionController handles question-related requests
type QuestionController struct {
	questionService services.QuestionService
}

// NewQuestionController creates a new QuestionController
func NewQuestionController(questionService services.QuestionService) *QuestionController {
	return &QuestionController{
		questionService: questionService,
	}
}

// Ask handles question creation by students
// @Summary Ask a question
// @Description Creates an open question under a subject of the student's department
// @Tags questions
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.CreateQuestionRequest true "Question"
// @Success 201 {object} dto.APIResponse{data=dto.QuestionResponse}
// @Failure 400 {object} dto.ErrorResponse "Invalid or out-of-department subject"
// @Failure 403 {object} dto.ErrorResponse "Not a student"
// @Router /questions [post]
func (c *QuestionController) Ask(ctx *gin.Context) {
	actor, ok := middleware.CurrentActor(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.NewErrorResponse(
			dto.NewErrorDetail(dto.ErrorCodeUnauthorized, "Authentication required")))
		return
	}

	var req dto.CreateQuestionRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid question data")
		errorDetail = errorDetail.WithDetails(err.Error())
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	question, err := c.questionService.Ask(ctx, actor, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.NewAPIResponse(question))
}

// ListAll returns every question, newest first
// @Summary Browse all questions
// @Tags questions
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.APIResponse{data=[]dto.QuestionResponse}
// @Router /questions [get]
func (c *QuestionController) ListAll(ctx *gin.Context) {
	c.list(ctx, c.questionService.ListAll)
}

// ListMine returns the student's own questions, newest first
// @Summary My questions
// @Tags questions
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.APIResponse{data=[]dto.QuestionResponse}
// @Router /questions/my [get]
func (c *QuestionController) ListMine(ctx *gin.Context) {
	c.list(ctx, c.questionService.ListMine)
}

// ListAssigned returns the questions the faculty member may answer
// @Summary Assigned questions
// @Tags questions
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.APIResponse{data=[]dto.QuestionResponse}
// @Router /questions/assigned [get]
func (c *QuestionController) ListAssigned(ctx *gin.Context) {
	c.list(ctx, c.questionService.ListAssigned)
}

func (c *QuestionController) list(ctx *gin.Context, fn func(context.Context, models.Actor) ([]dto.QuestionResponse, error)) {
	actor, ok := middleware.CurrentActor(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.NewErrorResponse(
			dto.NewErrorDetail(dto.ErrorCodeUnauthorized, "Authentication required")))
		return
	}

	questions, err := fn(ctx, actor)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(questions))
}
