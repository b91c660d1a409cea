package api

import (
	"github.com/gin-gonic/gin"
)

// SetupRoutes sets up the API routes
func SetupRoutes(handler *Handler) *gin.Engine {
	router := gin.New()

	// Middleware
	router.Use(Recovery())
	router.Use(CORS())
	router.Use(gin.Logger())

	// Health check
	router.GET("/health", handler.HealthCheck)

	// API v1
	v1 := router.Group("/api/v1")
	{
		weeks := v1.Group("/weeks")
		{
			weeks.GET("/current", handler.GetCurrentWeek)
			weeks.GET("/:weekId", handler.GetWeek)
		}

		reviews := v1.Group("/weekly-reviews")
		{
			reviews.GET("", handler.GetWeeklyReviews)
			reviews.PATCH("/:weekId", handler.PatchWeeklyReview)
			reviews.POST("/:weekId", handler.PostWeeklyReviewAction)
		}

		goals := v1.Group("/goals")
		{
			goals.POST("", handler.CreateGoal)
			goals.PATCH("/:goalId", handler.UpdateGoal)
			goals.DELETE("/:goalId", handler.DeleteGoal)
			goals.POST("/:goalId", handler.PostGoalAction)
		}

		habits := v1.Group("/habits")
		{
			habits.POST("", handler.CreateHabit)
			habits.PATCH("/:habitId", handler.UpdateHabit)
			habits.DELETE("/:habitId", handler.DeleteHabit)
			habits.POST("/:habitId/toggle", handler.ToggleHabitWeek)
		}

		v1.GET("/goals-habits", handler.GetGoalsHabits)

		repos := v1.Group("/repositories")
		{
			repos.GET("", handler.GetRepositories)
			repos.POST("/:repoId/toggle", handler.ToggleRepository)
		}

		githubGroup := v1.Group("/github")
		{
			githubGroup.GET("/connection", handler.GetConnection)
			githubGroup.POST("/sync", handler.SyncEvents)
		}
	}

	return router
}
