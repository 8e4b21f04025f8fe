package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/kaushalkrsna1602/Samay-Sahayak/models"
	"github.com/kaushalkrsna1602/Samay-Sahayak/services"
)

type generateTimetableRequest struct {
	Tasks           []models.Task          `json:"tasks"`
	Technique       *models.Technique      `json:"technique"`
	SessionConfig   *models.SessionConfig  `json:"sessionConfig"`
	UserPreferences models.UserPreferences `json:"userPreferences"`
}

// GenerateTimetable builds a prompt from the submitted tasks and
// preferences, calls the completion service, and returns the parsed
// timetable along with the raw model output.
func GenerateTimetable(ai services.Completer) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req generateTimetableRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body", "details": err.Error()})
			return
		}
		if len(req.Tasks) == 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "No tasks provided"})
			return
		}
		if req.Technique == nil || req.SessionConfig == nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Technique and session configuration required"})
			return
		}

		prompt := services.BuildTimetablePrompt(req.Tasks, *req.Technique, *req.SessionConfig, req.UserPreferences)
		text, err := ai.Complete(c.Request.Context(), prompt)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to generate timetable", "details": err.Error()})
			return
		}

		timetable := services.ParseTimetableResponse(text)
		c.JSON(http.StatusOK, gin.H{
			"success":     true,
			"timetable":   timetable,
			"rawResponse": text,
		})
	}
}

type generateCEORequest struct {
	RandomPlan      string                 `json:"randomPlan"`
	UserPreferences models.UserPreferences `json:"userPreferences"`
}

// GenerateCEOTimetable turns a free-text brain-dump into a structured day
// plan via the executive-assistant prompt.
func GenerateCEOTimetable(ai services.Completer) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req generateCEORequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body", "details": err.Error()})
			return
		}
		if req.RandomPlan == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "No plan provided"})
			return
		}

		prompt := services.BuildCEOPrompt(req.RandomPlan, req.UserPreferences)
		text, err := ai.Complete(c.Request.Context(), prompt)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to generate CEO timetable", "details": err.Error()})
			return
		}

		timetable := services.ParseTimetableResponse(text)
		c.JSON(http.StatusOK, gin.H{
			"success":   true,
			"timetable": timetable,
		})
	}
}
