package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/kaushalkrsna1602/Samay-Sahayak/controllers"
	"github.com/kaushalkrsna1602/Samay-Sahayak/services"
)

// SetupRoutes registers every API endpoint on the given group.
func SetupRoutes(api *gin.RouterGroup, ai services.Completer) {
	api.GET("/health", controllers.HealthCheck())

	api.POST("/generate-timetable", controllers.GenerateTimetable(ai))
	api.POST("/generate-ceo-timetable", controllers.GenerateCEOTimetable(ai))

	api.POST("/timetables", controllers.SaveTimetable())
	api.GET("/timetables", controllers.GetTimetables())
	api.DELETE("/timetables/:id", controllers.DeleteTimetable())

	api.POST("/analytics", controllers.SaveAnalytics())
	api.GET("/analytics", controllers.GetAnalytics())
	api.PUT("/analytics/task", controllers.UpdateTaskCompletion())
	api.DELETE("/analytics", controllers.ResetAnalytics())
}
