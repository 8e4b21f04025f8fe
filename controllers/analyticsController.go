package controllers

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/kaushalkrsna1602/Samay-Sahayak/models"
	"github.com/kaushalkrsna1602/Samay-Sahayak/services"
)

type saveAnalyticsRequest struct {
	UserID          string                  `json:"userId"`
	Date            string                  `json:"date"`
	TimetableID     string                  `json:"timetableId"`
	Technique       string                  `json:"technique"`
	EnergyLevel     string                  `json:"energyLevel"`
	Goal            string                  `json:"goal"`
	TotalTasks      int                     `json:"totalTasks"`
	TotalWorkTime   int                     `json:"totalWorkTime"`
	TotalBreakTime  int                     `json:"totalBreakTime"`
	TaskCompletions []models.TaskCompletion `json:"taskCompletions"`
	Notes           string                  `json:"notes"`
}

// SaveAnalytics creates or updates the day's analytics record for a user.
// completedTasks and productivityScore are always recomputed server-side.
func SaveAnalytics() gin.HandlerFunc {
	return func(c *gin.Context) {
		var req saveAnalyticsRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body", "details": err.Error()})
			return
		}
		if req.UserID == "" || req.Date == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "userId and date are required"})
			return
		}

		var timetableID *primitive.ObjectID
		if req.TimetableID != "" {
			oid, err := primitive.ObjectIDFromHex(req.TimetableID)
			if err != nil {
				c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid timetableId", "details": err.Error()})
				return
			}
			timetableID = &oid
		}

		analytics, err := services.UpsertDailyAnalytics(models.DailyAnalytics{
			UserID:          req.UserID,
			Date:            req.Date,
			TimetableID:     timetableID,
			Technique:       req.Technique,
			EnergyLevel:     req.EnergyLevel,
			Goal:            req.Goal,
			TotalTasks:      req.TotalTasks,
			TotalWorkTime:   req.TotalWorkTime,
			TotalBreakTime:  req.TotalBreakTime,
			TaskCompletions: req.TaskCompletions,
			Notes:           req.Notes,
		})
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save analytics", "details": err.Error()})
			return
		}
		c.JSON(http.StatusOK, gin.H{"success": true, "analytics": analytics})
	}
}

// GetAnalytics returns a user's analytics history plus aggregated metrics,
// optionally restricted to an inclusive date range.
func GetAnalytics() gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := c.Query("userId")
		if userID == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "userId is required"})
			return
		}

		records, err := services.GetAnalyticsByUser(userID, c.Query("startDate"), c.Query("endDate"))
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch analytics", "details": err.Error()})
			return
		}
		c.JSON(http.StatusOK, gin.H{
			"success":   true,
			"analytics": records,
			"metrics":   services.ComputeMetrics(records),
		})
	}
}

type updateTaskCompletionRequest struct {
	UserID    string `json:"userId"`
	Date      string `json:"date"`
	TaskID    string `json:"taskId"`
	Completed bool   `json:"completed"`
}

// UpdateTaskCompletion toggles one task's completion flag on the analytics
// record for a date and returns the recomputed record.
func UpdateTaskCompletion() gin.HandlerFunc {
	return func(c *gin.Context) {
		var req updateTaskCompletionRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body", "details": err.Error()})
			return
		}
		if req.UserID == "" || req.Date == "" || req.TaskID == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "userId, date, and taskId are required"})
			return
		}

		analytics, err := services.UpdateTaskCompletion(req.UserID, req.Date, req.TaskID, req.Completed)
		if err != nil {
			if errors.Is(err, services.ErrAnalyticsNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"error": "Analytics not found for this date"})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update task completion", "details": err.Error()})
			return
		}
		c.JSON(http.StatusOK, gin.H{"success": true, "analytics": analytics})
	}
}

// ResetAnalytics deletes all analytics records for a user.
func ResetAnalytics() gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := c.Query("userId")
		if userID == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "userId is required"})
			return
		}

		deleted, err := services.ResetAnalytics(userID)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to reset analytics", "details": err.Error()})
			return
		}
		c.JSON(http.StatusOK, gin.H{
			"success":      true,
			"message":      fmt.Sprintf("Deleted %d analytics records", deleted),
			"deletedCount": deleted,
		})
	}
}
