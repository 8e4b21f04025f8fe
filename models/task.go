package models

// Task is a client-held work item to be scheduled. Tasks are never persisted
// on their own; they only survive as schedule entries inside a generated
// timetable.
type Task struct {
	ID                string `json:"id,omitempty"`
	Title             string `json:"title"`
	Description       string `json:"description"`
	Priority          string `json:"priority"` // low | medium | high
	EstimatedDuration int    `json:"estimatedDuration"` // minutes
	Category          string `json:"category"`
}

// PriorityRank maps a priority label onto its scheduling weight. Unknown
// labels rank below low so malformed input sorts last.
func PriorityRank(priority string) int {
	switch priority {
	case "high":
		return 3
	case "medium":
		return 2
	case "low":
		return 1
	default:
		return 0
	}
}

// UserPreferences carries the optional scheduling preferences submitted with
// a generation request. Break and meal inclusion default to enabled when the
// fields are absent from the payload.
type UserPreferences struct {
	DailyGoal             string `json:"dailyGoal,omitempty"`
	EnergyLevel           string `json:"energyLevel,omitempty"` // low | medium | high
	PreferredWorkoutTime  string `json:"preferredWorkoutTime,omitempty"`
	PreferredLearningTime string `json:"preferredLearningTime,omitempty"`
	IncludeBreaks         *bool  `json:"includeBreaks,omitempty"`
	IncludeMeals          *bool  `json:"includeMeals,omitempty"`
}

func (p UserPreferences) BreaksEnabled() bool {
	return p.IncludeBreaks == nil || *p.IncludeBreaks
}

func (p UserPreferences) MealsEnabled() bool {
	return p.IncludeMeals == nil || *p.IncludeMeals
}
