package controllers

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"

	"github.com/kaushalkrsna1602/Samay-Sahayak/models"
	"github.com/kaushalkrsna1602/Samay-Sahayak/services"
)

var validate = validator.New()

type saveTimetableRequest struct {
	UserID    string                `json:"userId"`
	Timetable *models.TimetableData `json:"timetable"`
}

// SaveTimetable persists a generated timetable blob for a user. The payload
// is validated against the canonical schema before anything is written.
func SaveTimetable() gin.HandlerFunc {
	return func(c *gin.Context) {
		var req saveTimetableRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body", "details": err.Error()})
			return
		}
		if req.UserID == "" || req.Timetable == nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "userId and timetable are required"})
			return
		}
		// Executive-assistant plans carry no date; stamp today before
		// validating so they stay saveable.
		if req.Timetable.Date == "" {
			req.Timetable.Date = time.Now().Format("2006-01-02")
		}
		if err := validate.Struct(req.Timetable); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid timetable data", "details": err.Error()})
			return
		}

		saved, err := services.SaveTimetable(req.UserID, *req.Timetable)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save timetable", "details": err.Error()})
			return
		}
		c.JSON(http.StatusOK, gin.H{"success": true, "timetable": saved})
	}
}

// GetTimetables lists a user's saved timetables, most recent first.
func GetTimetables() gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := c.Query("userId")
		if userID == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "userId is required"})
			return
		}

		timetables, err := services.GetTimetablesByUser(userID)
		if err != nil {
			if errors.Is(err, services.ErrNotConnected) {
				c.JSON(http.StatusInternalServerError, gin.H{
					"error":   "Database connection failed",
					"details": "Unable to connect to MongoDB",
				})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch timetables", "details": err.Error()})
			return
		}
		c.JSON(http.StatusOK, gin.H{"success": true, "timetables": timetables})
	}
}

// DeleteTimetable removes a timetable by id. There is no existence check;
// deleting a missing id still succeeds.
func DeleteTimetable() gin.HandlerFunc {
	return func(c *gin.Context) {
		if err := services.DeleteTimetable(c.Param("id")); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete timetable", "details": err.Error()})
			return
		}
		c.JSON(http.StatusOK, gin.H{"success": true})
	}
}
