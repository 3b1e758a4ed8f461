package api

import (
	"alcyxob/nutrition-app/internal/domain"
	"alcyxob/nutrition-app/internal/service"
	"net/http"

	"github.com/gin-gonic/gin"
)

// Services bundles what the HTTP layer depends on.
type Services struct {
	Auth    service.AuthService
	MealLog service.MealLogService
	Goal    service.NutritionGoalService
	Stats   service.StatsService
	Barcode service.BarcodeService
	Export  service.ExportService
	Message service.MessageService
}

func SetupRoutes(router *gin.Engine, jwtSecret string, services Services) {
	authHandler := NewAuthHandler(services.Auth)
	mealLogHandler := NewMealLogHandler(services.MealLog)
	goalHandler := NewGoalHandler(services.Goal)
	statsHandler := NewStatsHandler(services.Stats)
	productHandler := NewProductHandler(services.Barcode)
	exportHandler := NewExportHandler(services.Export)
	messageHandler := NewMessageHandler(services.Message)

	authMiddleware := AuthMiddleware(jwtSecret)

	pong := func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "pong"})
	}
	router.GET("/ping", pong)

	apiV1 := router.Group("/api/v1")
	apiV1.GET("/ping", pong)
	{
		authGroup := apiV1.Group("/auth")
		{
			authGroup.POST("/register", authHandler.Register)
			authGroup.POST("/login", authHandler.Login)
		}
	}

	protected := apiV1.Group("")
	protected.Use(authMiddleware)
	{
		protected.GET("/me", authHandler.Me)

		mealLogs := protected.Group("/meallogs")
		{
			mealLogs.POST("", mealLogHandler.CreateMealLog)
			mealLogs.GET("", mealLogHandler.GetMealLogs)
			mealLogs.GET("/daily", mealLogHandler.GetDailySummary)
			mealLogs.GET("/:id", mealLogHandler.GetMealLog)
			mealLogs.PUT("/:id", mealLogHandler.UpdateMealLog)
			mealLogs.DELETE("/:id", mealLogHandler.DeleteMealLog)
		}

		goals := protected.Group("/goals")
		{
			goals.GET("/active", goalHandler.GetActiveGoal)
			goals.POST("", goalHandler.CreateGoal)
			goals.POST("/progress", goalHandler.CheckProgress)
			goals.PUT("/:id", goalHandler.UpdateGoal)
		}

		stats := protected.Group("/stats")
		{
			stats.GET("", statsHandler.GetStats)
			stats.GET("/streak", statsHandler.GetStreak)
		}

		products := protected.Group("/products")
		{
			products.GET("/:barcode", productHandler.LookupProduct)
			// Catalog maintenance is limited to admins.
			products.POST("", RoleMiddleware(domain.RoleAdmin), productHandler.SaveProduct)
		}

		exports := protected.Group("/exports")
		{
			exports.POST("", exportHandler.CreateExport)
			exports.GET("", exportHandler.GetExports)
		}

		messages := protected.Group("/messages")
		{
			messages.POST("", messageHandler.CreateMessage)
			messages.GET("", messageHandler.GetMessages)
			messages.GET("/timed", messageHandler.GetTimedMessages)
			messages.GET("/feed", messageHandler.GetFeed)
			messages.POST("/defaults", messageHandler.SeedDefaults)
			messages.PUT("/:id/read", messageHandler.MarkAsRead)
			messages.DELETE("/:id", messageHandler.DeleteMessage)
		}
	}
}
