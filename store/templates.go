package store

import (
	"time"

	"github.com/google/uuid"

	"github.com/kaushalkrsna1602/Samay-Sahayak/models"
)

// TimetableTemplate bundles a technique, session config, preferences and
// starter tasks into a reusable preset.
type TimetableTemplate struct {
	ID              string                 `json:"id"`
	Name            string                 `json:"name"`
	Description     string                 `json:"description"`
	Technique       string                 `json:"technique"`
	SessionConfig   models.SessionConfig   `json:"sessionConfig"`
	UserPreferences models.UserPreferences `json:"userPreferences"`
	TaskTemplates   []models.Task          `json:"taskTemplates"`
	CreatedAt       time.Time              `json:"createdAt"`
	IsDefault       bool                   `json:"isDefault,omitempty"`
}

func boolPtr(b bool) *bool { return &b }

var weekdays = []string{"Monday", "Tuesday", "Wednesday", "Thursday", "Friday"}

// DefaultTemplates is the built-in preset catalog.
func DefaultTemplates() []TimetableTemplate {
	now := time.Now()
	return []TimetableTemplate{
		{
			ID:          "morning-person",
			Name:        "Morning Person",
			Description: "Optimized for early risers who are most productive in the morning",
			Technique:   "Pomodoro",
			SessionConfig: models.SessionConfig{
				SessionLength: 25,
				BreakLength:   5,
				StartTime:     "06:00",
				EndTime:       "18:00",
				WorkDays:      weekdays,
			},
			UserPreferences: models.UserPreferences{
				DailyGoal:             "Maximize morning productivity",
				EnergyLevel:           "high",
				PreferredWorkoutTime:  "morning",
				PreferredLearningTime: "morning",
				IncludeBreaks:         boolPtr(true),
				IncludeMeals:          boolPtr(true),
			},
			TaskTemplates: []models.Task{
				{Title: "Morning Exercise", Description: "Start the day with physical activity", Priority: "high", EstimatedDuration: 30, Category: "Health"},
				{Title: "Deep Work Session", Description: "Focus on most important tasks", Priority: "high", EstimatedDuration: 90, Category: "Work"},
			},
			CreatedAt: now,
			IsDefault: true,
		},
		{
			ID:          "night-owl",
			Name:        "Night Owl",
			Description: "Perfect for those who work best in the evening hours",
			Technique:   "Time Blocking",
			SessionConfig: models.SessionConfig{
				SessionLength: 45,
				BreakLength:   15,
				StartTime:     "10:00",
				EndTime:       "22:00",
				WorkDays:      weekdays,
			},
			UserPreferences: models.UserPreferences{
				DailyGoal:             "Optimize evening productivity",
				EnergyLevel:           "medium",
				PreferredWorkoutTime:  "evening",
				PreferredLearningTime: "evening",
				IncludeBreaks:         boolPtr(true),
				IncludeMeals:          boolPtr(true),
			},
			TaskTemplates: []models.Task{
				{Title: "Creative Work", Description: "Evening creative sessions", Priority: "high", EstimatedDuration: 60, Category: "Creative"},
				{Title: "Evening Exercise", Description: "Workout session", Priority: "medium", EstimatedDuration: 45, Category: "Health"},
			},
			CreatedAt: now,
			IsDefault: true,
		},
		{
			ID:          "balanced-day",
			Name:        "Balanced Day",
			Description: "Well-rounded schedule for consistent productivity",
			Technique:   "52/17 Rule",
			SessionConfig: models.SessionConfig{
				SessionLength: 52,
				BreakLength:   17,
				StartTime:     "08:00",
				EndTime:       "17:00",
				WorkDays:      weekdays,
			},
			UserPreferences: models.UserPreferences{
				DailyGoal:             "Maintain steady productivity throughout the day",
				EnergyLevel:           "medium",
				PreferredWorkoutTime:  "afternoon",
				PreferredLearningTime: "morning",
				IncludeBreaks:         boolPtr(true),
				IncludeMeals:          boolPtr(true),
			},
			TaskTemplates: []models.Task{
				{Title: "Morning Planning", Description: "Plan and organize the day", Priority: "high", EstimatedDuration: 30, Category: "Planning"},
				{Title: "Core Work", Description: "Main work tasks", Priority: "high", EstimatedDuration: 120, Category: "Work"},
			},
			CreatedAt: now,
			IsDefault: true,
		},
	}
}

// TemplateStore holds the preset catalog plus any user-added templates.
type TemplateStore struct {
	Templates []TimetableTemplate
	Selected  *TimetableTemplate
}

func NewTemplateStore() *TemplateStore {
	return &TemplateStore{Templates: DefaultTemplates()}
}

// Select loads the template with the given id and reports whether it was
// found; an unknown id clears the selection.
func (s *TemplateStore) Select(id string) bool {
	for _, t := range s.Templates {
		if t.ID == id {
			selected := t
			s.Selected = &selected
			return true
		}
	}
	s.Selected = nil
	return false
}

// Add registers a user template, assigning an id and creation time when
// absent.
func (s *TemplateStore) Add(t TimetableTemplate) TimetableTemplate {
	if t.ID == "" {
		t.ID = uuid.NewString()
	}
	if t.CreatedAt.IsZero() {
		t.CreatedAt = time.Now()
	}
	s.Templates = append(s.Templates, t)
	return t
}

// Remove deletes the template with the given id, clearing the selection if
// it pointed at the removed entry.
func (s *TemplateStore) Remove(id string) {
	kept := s.Templates[:0]
	for _, t := range s.Templates {
		if t.ID != id {
			kept = append(kept, t)
		}
	}
	s.Templates = kept
	if s.Selected != nil && s.Selected.ID == id {
		s.Selected = nil
	}
}
