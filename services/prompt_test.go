package services

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/kaushalkrsna1602/Samay-Sahayak/models"
)

func TestBuildTimetablePrompt_EmbedsAllInputs(t *testing.T) {
	tasks := []models.Task{
		{Title: "Write report", EstimatedDuration: 60, Priority: "high", Category: "Work"},
		{Title: "Gym", EstimatedDuration: 45, Priority: "medium", Category: "Health"},
	}
	technique := models.Technique{
		Name:        "Pomodoro Technique",
		Description: "Work in short focused bursts.",
	}
	cfg := models.SessionConfig{
		SessionLength: 25,
		BreakLength:   5,
		WorkDays:      []string{"Monday", "Tuesday"},
		StartTime:     "09:00",
		EndTime:       "17:00",
	}
	prefs := models.UserPreferences{
		DailyGoal:             "Ship the release",
		EnergyLevel:           "high",
		PreferredWorkoutTime:  "evening",
		PreferredLearningTime: "afternoon",
	}

	prompt := BuildTimetablePrompt(tasks, technique, cfg, prefs)

	assert.Contains(t, prompt, "- Write report (60 min, high priority, Work)")
	assert.Contains(t, prompt, "- Gym (45 min, medium priority, Health)")
	assert.Contains(t, prompt, "Main Goal: Ship the release")
	assert.Contains(t, prompt, "high")
	assert.Contains(t, prompt, "evening")
	assert.Contains(t, prompt, "afternoon")
	assert.Contains(t, prompt, "Pomodoro Technique")
	assert.Contains(t, prompt, "Work in short focused bursts.")
	assert.Contains(t, prompt, "Monday, Tuesday")
	assert.Contains(t, prompt, "09:00")
	assert.Contains(t, prompt, "17:00")
}

func TestBuildTimetablePrompt_Defaults(t *testing.T) {
	tasks := []models.Task{{Title: "A", EstimatedDuration: 30, Priority: "low", Category: "Work"}}

	prompt := BuildTimetablePrompt(tasks, models.Technique{Name: "Custom"}, models.SessionConfig{}, models.UserPreferences{})

	assert.Contains(t, prompt, "No specific goal mentioned")
	assert.Contains(t, prompt, "medium")
	assert.Contains(t, prompt, "morning")
	assert.NotContains(t, prompt, "Main Goal:")
}

func TestBuildTimetablePrompt_BreakAndMealFlags(t *testing.T) {
	tasks := []models.Task{{Title: "A", EstimatedDuration: 30, Priority: "low", Category: "Work"}}
	off := false
	prefs := models.UserPreferences{IncludeBreaks: &off, IncludeMeals: &off}

	enabled := BuildTimetablePrompt(tasks, models.Technique{}, models.SessionConfig{}, models.UserPreferences{})
	disabled := BuildTimetablePrompt(tasks, models.Technique{}, models.SessionConfig{}, prefs)

	assert.Contains(t, enabled, "Yes")
	assert.Contains(t, disabled, "No")
}

func TestBuildCEOPrompt(t *testing.T) {
	prefs := models.UserPreferences{EnergyLevel: "low", PreferredWorkoutTime: "morning"}

	prompt := BuildCEOPrompt("finish deck, call investors, gym at some point", prefs)

	assert.Contains(t, prompt, "finish deck, call investors, gym at some point")
	assert.Contains(t, prompt, "low")
	assert.Contains(t, prompt, "morning")
}

func TestBuildCEOPrompt_Defaults(t *testing.T) {
	prompt := BuildCEOPrompt("plan my day", models.UserPreferences{})

	assert.Contains(t, prompt, "not specified")
}
