package routes

import (
	"vitalsync/config"
	"vitalsync/controllers"
	"vitalsync/middlewares"
	"vitalsync/services"

	"github.com/gin-gonic/gin"
)

func SetupRouter() *gin.Engine {
	r := gin.Default()

	db := config.DB

	logSvc := services.NewHealthLogService(db)
	gamSvc := services.NewGamificationService(db)
	anaSvc := services.NewAnalyticsService(db)
	aiSvc := services.NewAIService(db)
	stravaSvc := services.NewStravaService(db)
	visionSvc := services.NewFoodVisionService()

	healthCtl := controllers.NewHealthController(logSvc)
	gamCtl := controllers.NewGamificationController(gamSvc)
	anaCtl := controllers.NewAnalyticsController(anaSvc)
	aiCtl := controllers.NewAIController(aiSvc)
	stravaCtl := controllers.NewStravaController(stravaSvc)
	foodCtl := controllers.NewFoodController(visionSvc, logSvc)

	// Public auth routes
	auth := r.Group("/api/auth")
	{
		auth.POST("/register", controllers.Register)
		auth.POST("/login", controllers.Login)
		auth.POST("/logout", controllers.Logout)
		auth.POST("/forgot-password", controllers.ForgotPassword)
		auth.POST("/reset-password", controllers.ResetPassword)
	}

	// Strava redirects back here without our bearer token
	r.GET("/api/strava/callback", stravaCtl.Callback)

	api := r.Group("/api")
	api.Use(middlewares.AuthMiddleware())
	{
		api.GET("/user/profile", controllers.GetProfile)
		api.PUT("/user/profile", controllers.UpdateProfile)

		api.POST("/health/sync", healthCtl.SyncDailyHealth)
		api.GET("/health/day/:date", healthCtl.GetHealthByDate)
		api.GET("/health/range", healthCtl.GetHealthByRange)
		api.GET("/health/history", healthCtl.GetHealthHistory)

		api.GET("/gamification/profile", gamCtl.GetGamificationProfile)
		api.POST("/gamification/sync", gamCtl.SyncGamification)
		api.GET("/gamification/leaderboard/today", gamCtl.GetTodayLeaderboard)
		api.POST("/gamification/reset", gamCtl.ResetGamification)

		api.POST("/goals", controllers.CreateGoal)
		api.GET("/goals", controllers.GetGoals)
		api.PUT("/goals/:id", controllers.UpdateGoal)
		api.DELETE("/goals/:id", controllers.DeleteGoal)

		api.POST("/workouts", controllers.AddWorkout)
		api.GET("/workouts", controllers.GetWorkouts)
		api.DELETE("/workouts/:id", controllers.DeleteWorkout)

		api.GET("/medical", controllers.GetMedicalProfile)
		api.POST("/medical", controllers.UpsertMedicalProfile)
		api.POST("/medical/reports", controllers.UploadMedicalReport)

		api.GET("/notifications", controllers.GetNotifications)
		api.PUT("/notifications/:id/read", controllers.MarkNotificationRead)

		api.GET("/analytics/weekly", anaCtl.GetWeeklyAnalytics)
		api.GET("/analytics/monthly", anaCtl.GetMonthlyAnalytics)

		api.GET("/ai/summary", aiCtl.GetAISummary)

		api.POST("/food/analyze", foodCtl.AnalyzeFoodImage)
		api.POST("/food/log", foodCtl.LogFoodEntry)

		api.GET("/strava/connect", stravaCtl.Connect)
		api.POST("/strava/sync", stravaCtl.Sync)
	}

	return r
}
