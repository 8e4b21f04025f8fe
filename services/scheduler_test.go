package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kaushalkrsna1602/Samay-Sahayak/models"
)

func boolPtr(b bool) *bool { return &b }

var pomodoro = models.Technique{
	ID:                   "pomodoro",
	Name:                 "Pomodoro Technique",
	DefaultSessionLength: 25,
	DefaultBreakLength:   5,
}

func sessionConfig(sessionLen, breakLen int) models.SessionConfig {
	return models.SessionConfig{
		TechniqueID:   "pomodoro",
		SessionLength: sessionLen,
		BreakLength:   breakLen,
		StartTime:     "09:00",
		EndTime:       "17:00",
	}
}

func TestGenerateLocalTimetable_PriorityOrder(t *testing.T) {
	tasks := []models.Task{
		{Title: "Low", EstimatedDuration: 30, Priority: "low"},
		{Title: "High", EstimatedDuration: 30, Priority: "high"},
		{Title: "Medium", EstimatedDuration: 30, Priority: "medium"},
	}
	prefs := models.UserPreferences{IncludeBreaks: boolPtr(false)}

	data := GenerateLocalTimetable("2026-08-31", tasks, pomodoro, sessionConfig(60, 10), prefs)

	require.Len(t, data.DailySchedule, 3)
	assert.Equal(t, "High", data.DailySchedule[0].Activity)
	assert.Equal(t, "Medium", data.DailySchedule[1].Activity)
	assert.Equal(t, "Low", data.DailySchedule[2].Activity)
}

func TestGenerateLocalTimetable_StableOrderForEqualPriority(t *testing.T) {
	tasks := []models.Task{
		{Title: "First", EstimatedDuration: 30, Priority: "high"},
		{Title: "Second", EstimatedDuration: 30, Priority: "high"},
		{Title: "Third", EstimatedDuration: 30, Priority: "high"},
	}
	prefs := models.UserPreferences{IncludeBreaks: boolPtr(false)}

	data := GenerateLocalTimetable("2026-08-31", tasks, pomodoro, sessionConfig(60, 10), prefs)

	require.Len(t, data.DailySchedule, 3)
	assert.Equal(t, "First", data.DailySchedule[0].Activity)
	assert.Equal(t, "Second", data.DailySchedule[1].Activity)
	assert.Equal(t, "Third", data.DailySchedule[2].Activity)
}

func TestGenerateLocalTimetable_CapsDurationAtSessionLength(t *testing.T) {
	tasks := []models.Task{
		{Title: "Deep work", EstimatedDuration: 120, Priority: "high"},
		{Title: "Email", EstimatedDuration: 15, Priority: "low"},
	}
	prefs := models.UserPreferences{IncludeBreaks: boolPtr(false)}

	data := GenerateLocalTimetable("2026-08-31", tasks, pomodoro, sessionConfig(25, 5), prefs)

	require.Len(t, data.DailySchedule, 2)
	assert.Equal(t, 25, data.DailySchedule[0].Duration)
	assert.Equal(t, 15, data.DailySchedule[1].Duration)
	assert.Equal(t, 40, data.TotalWorkTime)
}

func TestGenerateLocalTimetable_BreaksBetweenTasksOnly(t *testing.T) {
	tasks := []models.Task{
		{Title: "A", EstimatedDuration: 25, Priority: "high"},
		{Title: "B", EstimatedDuration: 25, Priority: "high"},
		{Title: "C", EstimatedDuration: 25, Priority: "high"},
	}

	data := GenerateLocalTimetable("2026-08-31", tasks, pomodoro, sessionConfig(25, 5), models.UserPreferences{})

	// Three tasks, two interleaved breaks, no break after the last task.
	require.Len(t, data.DailySchedule, 5)
	assert.Equal(t, models.ItemWork, data.DailySchedule[0].Type)
	assert.Equal(t, models.ItemBreak, data.DailySchedule[1].Type)
	assert.Equal(t, models.ItemWork, data.DailySchedule[2].Type)
	assert.Equal(t, models.ItemBreak, data.DailySchedule[3].Type)
	assert.Equal(t, models.ItemWork, data.DailySchedule[4].Type)
	assert.Equal(t, 10, data.TotalBreakTime)
}

func TestGenerateLocalTimetable_BreaksDisabled(t *testing.T) {
	tasks := []models.Task{
		{Title: "A", EstimatedDuration: 25, Priority: "high"},
		{Title: "B", EstimatedDuration: 25, Priority: "high"},
	}
	prefs := models.UserPreferences{IncludeBreaks: boolPtr(false)}

	data := GenerateLocalTimetable("2026-08-31", tasks, pomodoro, sessionConfig(25, 5), prefs)

	require.Len(t, data.DailySchedule, 2)
	assert.Equal(t, 0, data.TotalBreakTime)
}

func TestGenerateLocalTimetable_ClockAdvances(t *testing.T) {
	tasks := []models.Task{
		{Title: "A", EstimatedDuration: 25, Priority: "high"},
		{Title: "B", EstimatedDuration: 25, Priority: "high"},
	}

	data := GenerateLocalTimetable("2026-08-31", tasks, pomodoro, sessionConfig(25, 5), models.UserPreferences{})

	require.Len(t, data.DailySchedule, 3)
	assert.Equal(t, "09:00", data.DailySchedule[0].Time)
	assert.Equal(t, "09:25", data.DailySchedule[1].Time)
	assert.Equal(t, "09:30", data.DailySchedule[2].Time)
}

func TestGenerateLocalTimetable_LunchForLongDays(t *testing.T) {
	tasks := []models.Task{
		{Title: "A", EstimatedDuration: 90, Priority: "high"},
		{Title: "B", EstimatedDuration: 90, Priority: "medium"},
		{Title: "C", EstimatedDuration: 90, Priority: "low"},
	}
	prefs := models.UserPreferences{IncludeBreaks: boolPtr(false)}

	data := GenerateLocalTimetable("2026-08-31", tasks, pomodoro, sessionConfig(0, 5), prefs)

	require.Len(t, data.DailySchedule, 4)
	lunch := data.DailySchedule[1]
	assert.Equal(t, models.ItemLunch, lunch.Type)
	assert.Equal(t, "12:00", lunch.Time)
	assert.Equal(t, 30, lunch.Duration)
	assert.Equal(t, 270, data.TotalWorkTime)
	assert.Equal(t, 30, data.TotalBreakTime)
}

func TestGenerateLocalTimetable_NoLunchAtExactlyFourHours(t *testing.T) {
	tasks := []models.Task{
		{Title: "A", EstimatedDuration: 120, Priority: "high"},
		{Title: "B", EstimatedDuration: 120, Priority: "high"},
	}
	prefs := models.UserPreferences{IncludeBreaks: boolPtr(false)}

	data := GenerateLocalTimetable("2026-08-31", tasks, pomodoro, sessionConfig(0, 5), prefs)

	for _, item := range data.DailySchedule {
		assert.NotEqual(t, models.ItemLunch, item.Type)
	}
}

func TestGenerateLocalTimetable_NoLunchWhenMealsDisabled(t *testing.T) {
	tasks := []models.Task{
		{Title: "A", EstimatedDuration: 150, Priority: "high"},
		{Title: "B", EstimatedDuration: 150, Priority: "high"},
	}
	prefs := models.UserPreferences{IncludeBreaks: boolPtr(false), IncludeMeals: boolPtr(false)}

	data := GenerateLocalTimetable("2026-08-31", tasks, pomodoro, sessionConfig(0, 5), prefs)

	for _, item := range data.DailySchedule {
		assert.NotEqual(t, models.ItemLunch, item.Type)
	}
}

func TestGenerateLocalTimetable_DescriptionDefault(t *testing.T) {
	tasks := []models.Task{
		{Title: "Review PRs", EstimatedDuration: 30, Priority: "high"},
		{Title: "Plan sprint", Description: "Groom the backlog", EstimatedDuration: 30, Priority: "high"},
	}
	prefs := models.UserPreferences{IncludeBreaks: boolPtr(false)}

	data := GenerateLocalTimetable("2026-08-31", tasks, pomodoro, sessionConfig(60, 5), prefs)

	require.Len(t, data.DailySchedule, 2)
	assert.Equal(t, "Focus on Review PRs", data.DailySchedule[0].Description)
	assert.Equal(t, "Groom the backlog", data.DailySchedule[1].Description)
}

func TestGenerateLocalTimetable_Recommendations(t *testing.T) {
	tasks := []models.Task{{Title: "A", EstimatedDuration: 30, Priority: "high"}}
	prefs := models.UserPreferences{DailyGoal: "Ship the release", EnergyLevel: "low"}

	data := GenerateLocalTimetable("2026-08-31", tasks, pomodoro, sessionConfig(60, 5), prefs)

	require.NotEmpty(t, data.Recommendations)
	assert.Equal(t, "Focus on your goal: Ship the release", data.Recommendations[0])
	assert.Contains(t, data.Recommendations, "Follow the Pomodoro Technique principles for best results")
	assert.Contains(t, data.Recommendations, "Consider shorter work sessions due to lower energy")
}

func TestParseClock(t *testing.T) {
	assert.Equal(t, 9*60, parseClock("09:00"))
	assert.Equal(t, 13*60+45, parseClock("13:45"))
	assert.Equal(t, 0, parseClock("24:00"))
	assert.Equal(t, 0, parseClock("garbage"))
	assert.Equal(t, 0, parseClock(""))
}

func TestFormatClock(t *testing.T) {
	assert.Equal(t, "09:05", formatClock(9*60+5))
	assert.Equal(t, "00:00", formatClock(24*60))
	assert.Equal(t, "23:30", formatClock(-30))
}
