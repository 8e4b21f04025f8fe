package models

import (
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// ItemType classifies a schedule entry. The set is closed; anything the
// completion service invents outside it collapses onto ItemWork.
type ItemType string

const (
	ItemWork     ItemType = "work"
	ItemBreak    ItemType = "break"
	ItemLunch    ItemType = "lunch"
	ItemHealth   ItemType = "health"
	ItemLearning ItemType = "learning"
	ItemPersonal ItemType = "personal"
)

// ParseItemType normalizes a free-form type label onto the closed set.
func ParseItemType(s string) ItemType {
	switch ItemType(strings.ToLower(strings.TrimSpace(s))) {
	case ItemBreak:
		return ItemBreak
	case ItemLunch:
		return ItemLunch
	case ItemHealth:
		return ItemHealth
	case ItemLearning:
		return ItemLearning
	case ItemPersonal:
		return ItemPersonal
	default:
		return ItemWork
	}
}

// TimetableItem is one scheduled activity. Duration plus the declared start
// time implies occupancy; there is no explicit end time. Items carry a
// stable id so task-completion tracking survives reordering.
type TimetableItem struct {
	ID          string   `bson:"id,omitempty" json:"id,omitempty"`
	Time        string   `bson:"time" json:"time" validate:"required"`
	Duration    int      `bson:"duration" json:"duration" validate:"gte=0"`
	Activity    string   `bson:"activity" json:"activity" validate:"required"`
	Type        ItemType `bson:"type" json:"type"`
	Description string   `bson:"description" json:"description"`
	Priority    string   `bson:"priority,omitempty" json:"priority,omitempty"`
	Category    string   `bson:"category,omitempty" json:"category,omitempty"`
}

// ScheduleInsights is the advisory block the completion service returns
// alongside a generated schedule.
type ScheduleInsights struct {
	PeakProductivityTime string `bson:"peakProductivityTime,omitempty" json:"peakProductivityTime,omitempty"`
	RecommendedBreaks    string `bson:"recommendedBreaks,omitempty" json:"recommendedBreaks,omitempty"`
	EnergyOptimization   string `bson:"energyOptimization,omitempty" json:"energyOptimization,omitempty"`
}

// TimetableData is a full generated day plan, the unit persisted inside a
// SavedTimetable.
type TimetableData struct {
	Date             string            `bson:"date" json:"date" validate:"required"`
	DailyBriefing    string            `bson:"dailyBriefing,omitempty" json:"dailyBriefing,omitempty"`
	DailySchedule    []TimetableItem   `bson:"dailySchedule" json:"dailySchedule" validate:"dive"`
	Technique        string            `bson:"technique" json:"technique"`
	TotalWorkTime    int               `bson:"totalWorkTime" json:"totalWorkTime"`
	TotalBreakTime   int               `bson:"totalBreakTime" json:"totalBreakTime"`
	Recommendations  []string          `bson:"recommendations" json:"recommendations"`
	ScheduleInsights *ScheduleInsights `bson:"scheduleInsights,omitempty" json:"scheduleInsights,omitempty"`

	// RawResponse holds the unparsed completion text when extraction failed.
	// Kept for inspection only, never persisted.
	RawResponse string `bson:"-" json:"rawResponse,omitempty"`
}

// SavedTimetable is the persisted entity wrapping a TimetableData blob.
// The blob is immutable after creation; completion tracking lives in the
// separate analytics collection.
type SavedTimetable struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	UserID    string             `bson:"userId" json:"userId"`
	Data      TimetableData      `bson:"data" json:"data"`
	CreatedAt time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt time.Time          `bson:"updatedAt" json:"updatedAt"`
}
