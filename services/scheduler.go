package services

import (
	"fmt"
	"sort"
	"strings"

	"github.com/google/uuid"

	"github.com/kaushalkrsna1602/Samay-Sahayak/models"
)

// GenerateLocalTimetable builds a timetable without calling the completion
// service. Tasks are packed greedily in priority order from the configured
// start time, with a break between consecutive tasks when breaks are
// enabled and a fixed lunch slot when the day is long enough. The result is
// deterministic for deterministic input ordering.
func GenerateLocalTimetable(date string, tasks []models.Task, technique models.Technique, cfg models.SessionConfig, prefs models.UserPreferences) models.TimetableData {
	sorted := make([]models.Task, len(tasks))
	copy(sorted, tasks)
	sort.SliceStable(sorted, func(i, j int) bool {
		return models.PriorityRank(sorted[i].Priority) > models.PriorityRank(sorted[j].Priority)
	})

	schedule := make([]models.TimetableItem, 0, 2*len(sorted))
	clock := parseClock(cfg.StartTime)
	totalWork := 0
	totalBreak := 0

	for i, task := range sorted {
		duration := task.EstimatedDuration
		if cfg.SessionLength > 0 && duration > cfg.SessionLength {
			duration = cfg.SessionLength
		}
		description := task.Description
		if description == "" {
			description = "Focus on " + task.Title
		}

		schedule = append(schedule, models.TimetableItem{
			ID:          uuid.NewString(),
			Time:        formatClock(clock),
			Duration:    duration,
			Activity:    task.Title,
			Type:        models.ItemWork,
			Description: description,
			Priority:    task.Priority,
			Category:    task.Category,
		})
		totalWork += duration
		clock += duration

		if i < len(sorted)-1 && prefs.BreaksEnabled() {
			schedule = append(schedule, models.TimetableItem{
				ID:          uuid.NewString(),
				Time:        formatClock(clock),
				Duration:    cfg.BreakLength,
				Activity:    "Break",
				Type:        models.ItemBreak,
				Description: "Take a short break to refresh",
			})
			totalBreak += cfg.BreakLength
			clock += cfg.BreakLength
		}
	}

	// A lunch slot only makes sense for a 4+ hour working day.
	if totalWork > 240 && prefs.MealsEnabled() {
		lunch := models.TimetableItem{
			ID:          uuid.NewString(),
			Time:        "12:00",
			Duration:    30,
			Activity:    "Lunch Break",
			Type:        models.ItemLunch,
			Description: "Healthy meal and rest",
		}
		mid := len(schedule) / 2
		schedule = append(schedule[:mid], append([]models.TimetableItem{lunch}, schedule[mid:]...)...)
		totalBreak += 30
	}

	return models.TimetableData{
		Date:            date,
		DailySchedule:   schedule,
		Technique:       technique.Name,
		TotalWorkTime:   totalWork,
		TotalBreakTime:  totalBreak,
		Recommendations: buildRecommendations(technique, prefs),
	}
}

func buildRecommendations(technique models.Technique, prefs models.UserPreferences) []string {
	recs := make([]string, 0, 8)
	if prefs.DailyGoal != "" {
		recs = append(recs, "Focus on your goal: "+prefs.DailyGoal)
	}
	recs = append(recs,
		"Take regular breaks to maintain focus",
		"Start with your most challenging task",
		"Avoid multitasking during work sessions",
		"Use breaks for light physical activity",
		fmt.Sprintf("Follow the %s principles for best results", technique.Name),
	)
	switch prefs.EnergyLevel {
	case "low":
		recs = append(recs, "Consider shorter work sessions due to lower energy")
	case "high":
		recs = append(recs, "Use your high energy for complex tasks")
	}
	return recs
}

// parseClock converts an "HH:MM" wall-clock string to minutes since
// midnight; malformed input reads as midnight.
func parseClock(hhmm string) int {
	parts := strings.SplitN(hhmm, ":", 2)
	if len(parts) != 2 {
		return 0
	}
	var h, m int
	if _, err := fmt.Sscanf(hhmm, "%d:%d", &h, &m); err != nil {
		return 0
	}
	if h < 0 || h > 23 || m < 0 || m > 59 {
		return 0
	}
	return h*60 + m
}

func formatClock(minutes int) string {
	minutes %= 24 * 60
	if minutes < 0 {
		minutes += 24 * 60
	}
	return fmt.Sprintf("%02d:%02d", minutes/60, minutes%60)
}
