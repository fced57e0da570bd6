package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/kaan/uniforum/internal/app/models/dto"
	"github.com/kaan/uniforum/internal/app/services"
	"github.com/kaan/uniforum/internal/middleware"
)

// AnswerController handles answer submission
type AnswerController struct {
	answerService services.AnswerService
}

// NewAnswerController creates a new AnswerController
func NewAnswerController(answerService services.AnswerService) *AnswerController {
	return &AnswerController{
		answerService: answerService,
	}
}

// Submit handles a faculty member answering a question
// @Summary Answer a question
// @Description Appends an answer; the first answer marks the question answered
// @Tags answers
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Question ID"
// @Param request body dto.CreateAnswerRequest true "Answer content"
// @Success 201 {object} dto.APIResponse{data=dto.AnswerResponse}
// @Failure 400 {object} dto.ErrorResponse "Empty content"
// @Failure 403 {object} dto.ErrorResponse "Not faculty, or not assigned to the subject"
// @Failure 404 {object} dto.ErrorResponse "Question not found"
// @Router /questions/{id}/answers [post]
func (c *AnswerController) Submit(ctx *gin.Context) {
	actor, ok := middleware.CurrentActor(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.NewErrorResponse(
			dto.NewErrorDetail(dto.ErrorCodeUnauthorized, "Authentication required")))
		return
	}

	questionID, err := strconv.ParseInt(ctx.Param("id"), 10, 64)
	if err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid question ID")
		errorDetail = errorDetail.WithDetails("Question ID must be a valid number")
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	var req dto.CreateAnswerRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid answer data")
		errorDetail = errorDetail.WithDetails(err.Error())
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	answer, err := c.answerService.Submit(ctx, actor, questionID, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.NewAPIResponse(answer))
}
