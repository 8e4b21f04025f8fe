package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// TaskCompletion tracks one scheduled task's completion state within a
// day's analytics record.
type TaskCompletion struct {
	TaskID      string     `bson:"taskId" json:"taskId"`
	TaskTitle   string     `bson:"taskTitle" json:"taskTitle"`
	Completed   bool       `bson:"completed" json:"completed"`
	CompletedAt *time.Time `bson:"completedAt,omitempty" json:"completedAt,omitempty"`
}

// DailyAnalytics is the per-user, per-day tracking record. (userId, date) is
// unique; writes upsert rather than duplicate.
type DailyAnalytics struct {
	ID                primitive.ObjectID  `bson:"_id,omitempty" json:"id"`
	UserID            string              `bson:"userId" json:"userId"`
	Date              string              `bson:"date" json:"date"` // YYYY-MM-DD
	TimetableID       *primitive.ObjectID `bson:"timetableId,omitempty" json:"timetableId,omitempty"`
	Technique         string              `bson:"technique,omitempty" json:"technique,omitempty"`
	EnergyLevel       string              `bson:"energyLevel,omitempty" json:"energyLevel,omitempty"`
	Goal              string              `bson:"goal,omitempty" json:"goal,omitempty"`
	TotalTasks        int                 `bson:"totalTasks" json:"totalTasks"`
	CompletedTasks    int                 `bson:"completedTasks" json:"completedTasks"`
	TotalWorkTime     int                 `bson:"totalWorkTime" json:"totalWorkTime"` // minutes
	TotalBreakTime    int                 `bson:"totalBreakTime" json:"totalBreakTime"`
	TaskCompletions   []TaskCompletion    `bson:"taskCompletions" json:"taskCompletions"`
	ProductivityScore int                 `bson:"productivityScore" json:"productivityScore"` // percent
	Notes             string              `bson:"notes,omitempty" json:"notes,omitempty"`
	CreatedAt         time.Time           `bson:"createdAt" json:"createdAt"`
	UpdatedAt         time.Time           `bson:"updatedAt" json:"updatedAt"`
}

// AnalyticsMetrics aggregates a user's analytics history over a query range.
type AnalyticsMetrics struct {
	TotalDays                int    `json:"totalDays"`
	TotalTasksCompleted      int    `json:"totalTasksCompleted"`
	TotalWorkTime            int    `json:"totalWorkTime"`
	AverageProductivityScore int    `json:"averageProductivityScore"`
	MostUsedTechnique        string `json:"mostUsedTechnique"`
	AverageTasksPerDay       int    `json:"averageTasksPerDay"`
	AverageWorkTimePerDay    int    `json:"averageWorkTimePerDay"`
	CurrentStreak            int    `json:"currentStreak"` // consecutive days with a completed task
}
