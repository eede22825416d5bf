package routes

import (
	"moodlog/internal/controllers"

	"github.com/gin-gonic/gin"
)

func RegisterActivityRoutes(router *gin.Engine, activityController *controllers.ActivityController) {
	activityRoutes := router.Group("/activity")
	{
		activityRoutes.POST("/", activityController.CreateActivity)
		activityRoutes.GET("/", activityController.GetActivities)
		activityRoutes.GET("/recent", activityController.GetRecentActivities)
		activityRoutes.GET("/mood", activityController.GetDailyMoodData)
		activityRoutes.GET("/stats", activityController.GetActivityStats)
		activityRoutes.GET("/achievements", activityController.GetAchievements)
		activityRoutes.GET("/:id", activityController.GetActivityByID)
		activityRoutes.PUT("/:id", activityController.UpdateActivity)
		activityRoutes.DELETE("/:id", activityController.DeleteActivity)
	}
}
