package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/kaan/uniforum/internal/app/models/dto"
	"github.com/kaan/uniforum/internal/app/services"
	"github.com/kaan/uniforum/internal/middleware"
)

// VoteController handles upvote requests
type VoteController struct {
	voteService services.VoteService
}

// NewVoteController creates a new VoteController
func NewVoteController(voteService services.VoteService) *VoteController {
	return &VoteController{
		voteService: voteService,
	}
}

// Upvote casts the student's upvote on an answer
// @Summary Upvote an answer
// @Description Records one upvote per student per answer and credits the answering faculty's reputation
// @Tags votes
// @Produce json
// @Security BearerAuth
// @Param id path int true "Answer ID"
// @Success 200 {object} dto.UpvoteResponse "New tally"
// @Failure 403 {object} dto.ErrorResponse "Not a student"
// @Failure 404 {object} dto.ErrorResponse "Answer not found"
// @Failure 409 {object} dto.UpvoteResponse "Already voted"
// @Router /answers/{id}/upvote [post]
func (c *VoteController) Upvote(ctx *gin.Context) {
	actor, ok := middleware.CurrentActor(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.NewErrorResponse(
			dto.NewErrorDetail(dto.ErrorCodeUnauthorized, "Authentication required")))
		return
	}

	answerID, err := strconv.ParseInt(ctx.Param("id"), 10, 64)
	if err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid answer ID")
		errorDetail = errorDetail.WithDetails("Answer ID must be a valid number")
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	count, err := c.voteService.CastUpvote(ctx, actor, answerID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.UpvoteResponse{
		Success: true,
		Count:   count,
	})
}
