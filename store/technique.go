package store

import "github.com/kaushalkrsna1602/Samay-Sahayak/models"

// DefaultTechniques is the fixed technique catalog.
func DefaultTechniques() []models.Technique {
	return []models.Technique{
		{
			ID:                   "pomodoro",
			Name:                 "Pomodoro Technique",
			Description:          "Work for 25 minutes, then take a 5-minute break. After 4 sessions, take a longer 15-30 minute break.",
			DefaultSessionLength: 25,
			DefaultBreakLength:   5,
			Color:                "#ef4444",
		},
		{
			ID:                   "time-blocking",
			Name:                 "Time Blocking",
			Description:          "Allocate specific time blocks for different tasks and activities throughout your day.",
			DefaultSessionLength: 60,
			DefaultBreakLength:   15,
			Color:                "#3b82f6",
		},
		{
			ID:                   "timeboxing",
			Name:                 "Timeboxing",
			Description:          "Set strict time limits for tasks to increase focus and prevent over-engineering.",
			DefaultSessionLength: 45,
			DefaultBreakLength:   10,
			Color:                "#10b981",
		},
		{
			ID:                   "eat-that-frog",
			Name:                 "Eat That Frog",
			Description:          "Tackle your most challenging task first thing in the morning.",
			DefaultSessionLength: 90,
			DefaultBreakLength:   20,
			Color:                "#f59e0b",
		},
		{
			ID:                   "52-17",
			Name:                 "52/17 Rule",
			Description:          "Work for 52 minutes, then take a 17-minute break to maintain peak productivity.",
			DefaultSessionLength: 52,
			DefaultBreakLength:   17,
			Color:                "#8b5cf6",
		},
	}
}

// TechniqueStore tracks the selected technique and the session config
// seeded from its defaults.
type TechniqueStore struct {
	Techniques        []models.Technique
	SelectedTechnique string
	SessionConfig     *models.SessionConfig
}

func NewTechniqueStore() *TechniqueStore {
	return &TechniqueStore{Techniques: DefaultTechniques()}
}

// Find returns the catalog entry with the given id.
func (s *TechniqueStore) Find(id string) (models.Technique, bool) {
	for _, t := range s.Techniques {
		if t.ID == id {
			return t, true
		}
	}
	return models.Technique{}, false
}

// Select marks a technique as active and seeds the session config from its
// defaults: weekday working days, 09:00-17:00. Unknown ids are ignored.
func (s *TechniqueStore) Select(id string) bool {
	technique, ok := s.Find(id)
	if !ok {
		return false
	}
	s.SelectedTechnique = id
	s.SessionConfig = &models.SessionConfig{
		TechniqueID:   technique.ID,
		SessionLength: technique.DefaultSessionLength,
		BreakLength:   technique.DefaultBreakLength,
		WorkDays:      []string{"Monday", "Tuesday", "Wednesday", "Thursday", "Friday"},
		StartTime:     "09:00",
		EndTime:       "17:00",
	}
	return true
}

// SessionConfigPatch is a partial session-config update; nil fields are
// left unchanged.
type SessionConfigPatch struct {
	SessionLength *int
	BreakLength   *int
	WorkDays      []string
	StartTime     *string
	EndTime       *string
}

// UpdateSessionConfig applies a partial patch. It is a no-op until a
// technique has been selected.
func (s *TechniqueStore) UpdateSessionConfig(patch SessionConfigPatch) {
	if s.SessionConfig == nil {
		return
	}
	if patch.SessionLength != nil {
		s.SessionConfig.SessionLength = *patch.SessionLength
	}
	if patch.BreakLength != nil {
		s.SessionConfig.BreakLength = *patch.BreakLength
	}
	if patch.WorkDays != nil {
		s.SessionConfig.WorkDays = patch.WorkDays
	}
	if patch.StartTime != nil {
		s.SessionConfig.StartTime = *patch.StartTime
	}
	if patch.EndTime != nil {
		s.SessionConfig.EndTime = *patch.EndTime
	}
}

// Reset clears the selection and session config.
func (s *TechniqueStore) Reset() {
	s.SelectedTechnique = ""
	s.SessionConfig = nil
}
