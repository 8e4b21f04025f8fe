package services

import (
	"encoding/json"
	"regexp"
	"strings"

	"github.com/google/uuid"

	"github.com/kaushalkrsna1602/Samay-Sahayak/models"
)

var fencedJSON = regexp.MustCompile("(?s)```(?:json)?\\s*(\\{.*?\\})\\s*```")

// ParseTimetableResponse extracts the timetable JSON from a free-text
// completion response. A fenced code block is preferred since the prompt
// asks for one; failing that, the text between the first '{' and the last
// '}' is tried. Any failure degrades to a default empty-schedule structure
// carrying the raw text for inspection. This never panics.
func ParseTimetableResponse(text string) models.TimetableData {
	if m := fencedJSON.FindStringSubmatch(text); m != nil {
		if data, err := decodeTimetable(m[1]); err == nil {
			return data
		}
	}

	start := strings.Index(text, "{")
	end := strings.LastIndex(text, "}")
	if start < 0 || end <= start {
		return defaultTimetable(text, "Please review the AI response manually")
	}

	data, err := decodeTimetable(text[start : end+1])
	if err != nil {
		return defaultTimetable(text, "Error parsing AI response")
	}
	return data
}

func decodeTimetable(raw string) (models.TimetableData, error) {
	var data models.TimetableData
	if err := json.Unmarshal([]byte(raw), &data); err != nil {
		return models.TimetableData{}, err
	}
	for i := range data.DailySchedule {
		item := &data.DailySchedule[i]
		item.Type = models.ParseItemType(string(item.Type))
		if item.ID == "" {
			item.ID = uuid.NewString()
		}
	}
	if data.DailySchedule == nil {
		data.DailySchedule = []models.TimetableItem{}
	}
	if data.Recommendations == nil {
		data.Recommendations = []string{}
	}
	return data, nil
}

func defaultTimetable(raw, note string) models.TimetableData {
	return models.TimetableData{
		DailySchedule:   []models.TimetableItem{},
		Technique:       "Custom",
		Recommendations: []string{note},
		RawResponse:     raw,
	}
}
