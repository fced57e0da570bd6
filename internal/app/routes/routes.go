package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/kaan/uniforum/internal/app/controllers"
	"github.com/kaan/uniforum/internal/app/models"
	"github.com/kaan/uniforum/internal/middleware"
)

// SetupRouter configures all application routes
func SetupRouter(
	router *gin.Engine,
	authController *controllers.AuthController,
	catalogController *controllers.CatalogController,
	questionController *controllers.QuestionController,
	answerController *controllers.AnswerController,
	voteController *controllers.VoteController,
	announcementController *controllers.AnnouncementController,
	leaderboardController *controllers.LeaderboardController,
	authMiddleware *middleware.AuthMiddleware,
) {
	v1 := router.Group("/api/v1")

	// --- Public routes ---
	auth := v1.Group("/auth")
	{
		auth.POST("/register", authController.Register)
		auth.POST("/login", authController.Login)
	}

	// Reference data needed before login (registration forms)
	v1.GET("/departments", catalogController.ListDepartments)
	v1.GET("/subjects", catalogController.ListSubjects)

	// --- Authenticated routes ---
	authenticated := v1.Group("")
	authenticated.Use(authMiddleware.JWTAuth())
	{
		authenticated.GET("/users/me", authController.GetProfile)
		authenticated.GET("/leaderboard", leaderboardController.Leaderboard)
		authenticated.GET("/announcements", announcementController.List)

		// Student-only routes
		studentProtected := authenticated.Group("")
		studentProtected.Use(authMiddleware.RoleRequired(models.RoleStudent))
		{
			studentProtected.POST("/questions", questionController.Ask)
			studentProtected.GET("/questions", questionController.ListAll)
			studentProtected.GET("/questions/my", questionController.ListMine)
			studentProtected.POST("/answers/:id/upvote", voteController.Upvote)
		}

		// Faculty-only routes
		facultyProtected := authenticated.Group("")
		facultyProtected.Use(authMiddleware.RoleRequired(models.RoleFaculty))
		{
			facultyProtected.GET("/questions/assigned", questionController.ListAssigned)
			facultyProtected.POST("/questions/:id/answers", answerController.Submit)
			facultyProtected.POST("/announcements", announcementController.Post)
		}
	}
}
