package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/kaan/uniforum/internal/app/models/dto"
	"github.com/kaan/uniforum/internal/app/services"
	"github.com/kaan/uniforum/internal/middleware"
)

// LeaderboardController serves the faculty reputation leaderboard
type LeaderboardController struct {
	leaderboardService services.LeaderboardService
}

// NewLeaderboardController creates a new LeaderboardController
func NewLeaderboardController(leaderboardService services.LeaderboardService) *LeaderboardController {
	return &LeaderboardController{
		leaderboardService: leaderboardService,
	}
}

// Leaderboard returns faculty ranked by reputation
// @Summary Faculty leaderboard
// @Tags leaderboard
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.APIResponse{data=[]dto.LeaderboardEntry}
// @Router /leaderboard [get]
func (c *LeaderboardController) Leaderboard(ctx *gin.Context) {
	entries, err := c.leaderboardService.Leaderboard(ctx)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(entries))
}
