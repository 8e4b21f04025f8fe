package models

// Technique is a read-only catalog entry describing a time-management
// method and its default session timings.
type Technique struct {
	ID                   string `json:"id"`
	Name                 string `json:"name"`
	Description          string `json:"description"`
	DefaultSessionLength int    `json:"defaultSessionLength"` // minutes
	DefaultBreakLength   int    `json:"defaultBreakLength"`   // minutes
	Color                string `json:"color"`
}

// SessionConfig holds the work/break timing parameters for a planning
// session. Start and end times are "HH:MM" local wall-clock strings.
type SessionConfig struct {
	TechniqueID   string   `json:"techniqueId"`
	SessionLength int      `json:"sessionLength"` // minutes
	BreakLength   int      `json:"breakLength"`   // minutes
	WorkDays      []string `json:"workDays"`
	StartTime     string   `json:"startTime"`
	EndTime       string   `json:"endTime"`
}
