package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kaushalkrsna1602/Samay-Sahayak/models"
)

const sampleTimetableJSON = `{
	"date": "2026-08-31",
	"dailyBriefing": "A focused day.",
	"dailySchedule": [
		{"time": "09:00", "duration": 50, "activity": "Write report", "type": "work", "description": "Draft the quarterly report", "priority": "high", "category": "Work"},
		{"time": "09:50", "duration": 10, "activity": "Break", "type": "break", "description": "Stretch"}
	],
	"technique": "Pomodoro Technique",
	"totalWorkTime": 50,
	"totalBreakTime": 10,
	"recommendations": ["Start with your most challenging task"]
}`

func TestParseTimetableResponse_FencedBlock(t *testing.T) {
	text := "Here is your optimized schedule:\n```json\n" + sampleTimetableJSON + "\n```\nEnjoy your day!"

	data := ParseTimetableResponse(text)

	require.Len(t, data.DailySchedule, 2)
	assert.Equal(t, "2026-08-31", data.Date)
	assert.Equal(t, "Write report", data.DailySchedule[0].Activity)
	assert.Equal(t, models.ItemWork, data.DailySchedule[0].Type)
	assert.Equal(t, models.ItemBreak, data.DailySchedule[1].Type)
	assert.Equal(t, 50, data.TotalWorkTime)
	assert.Empty(t, data.RawResponse)
}

func TestParseTimetableResponse_BareJSON(t *testing.T) {
	text := "Sure! " + sampleTimetableJSON + " Let me know if you need changes."

	data := ParseTimetableResponse(text)

	require.Len(t, data.DailySchedule, 2)
	assert.Equal(t, "Pomodoro Technique", data.Technique)
}

func TestParseTimetableResponse_FencedPreferredOverSurroundingBraces(t *testing.T) {
	// Stray braces around the fence must not widen the extraction window.
	text := "{ preamble\n```json\n" + sampleTimetableJSON + "\n```\ntrailing }"

	data := ParseTimetableResponse(text)

	require.Len(t, data.DailySchedule, 2)
	assert.Equal(t, "2026-08-31", data.Date)
}

func TestParseTimetableResponse_NoBraces(t *testing.T) {
	text := "I could not produce a schedule today."

	data := ParseTimetableResponse(text)

	assert.Empty(t, data.DailySchedule)
	assert.Equal(t, "Custom", data.Technique)
	assert.Equal(t, []string{"Please review the AI response manually"}, data.Recommendations)
	assert.Equal(t, text, data.RawResponse)
}

func TestParseTimetableResponse_MalformedJSON(t *testing.T) {
	text := `{"date": "2026-08-31", "dailySchedule": "not an array"}`

	data := ParseTimetableResponse(text)

	assert.Empty(t, data.DailySchedule)
	assert.Equal(t, []string{"Error parsing AI response"}, data.Recommendations)
	assert.Equal(t, text, data.RawResponse)
}

func TestParseTimetableResponse_UnknownTypeFallsBackToWork(t *testing.T) {
	text := `{"date": "2026-08-31", "dailySchedule": [{"time": "09:00", "duration": 30, "activity": "Yoga", "type": "mindfulness"}]}`

	data := ParseTimetableResponse(text)

	require.Len(t, data.DailySchedule, 1)
	assert.Equal(t, models.ItemWork, data.DailySchedule[0].Type)
}

func TestParseTimetableResponse_AssignsItemIDs(t *testing.T) {
	text := "```json\n" + sampleTimetableJSON + "\n```"

	data := ParseTimetableResponse(text)

	require.Len(t, data.DailySchedule, 2)
	assert.NotEmpty(t, data.DailySchedule[0].ID)
	assert.NotEmpty(t, data.DailySchedule[1].ID)
	assert.NotEqual(t, data.DailySchedule[0].ID, data.DailySchedule[1].ID)
}

func TestParseTimetableResponse_NilSlicesBecomeEmpty(t *testing.T) {
	text := `{"date": "2026-08-31"}`

	data := ParseTimetableResponse(text)

	assert.NotNil(t, data.DailySchedule)
	assert.NotNil(t, data.Recommendations)
}
