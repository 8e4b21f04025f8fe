package services

import (
	"context"
	"errors"
	"math"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/kaushalkrsna1602/Samay-Sahayak/config"
	"github.com/kaushalkrsna1602/Samay-Sahayak/models"
)

// ErrAnalyticsNotFound is returned when a task-completion update targets a
// date with no analytics record.
var ErrAnalyticsNotFound = errors.New("analytics not found for this date")

func analyticsCollection() (*mongo.Collection, error) {
	if !config.Connected() {
		return nil, ErrNotConnected
	}
	return config.OpenCollection("analytics"), nil
}

// ProductivityScore is the percentage of planned tasks completed, rounded
// to the nearest integer. Zero planned tasks scores zero.
func ProductivityScore(completed, total int) int {
	if total <= 0 {
		return 0
	}
	return int(math.Round(float64(completed) / float64(total) * 100))
}

// CompletedCount counts the completed entries in a completion list.
func CompletedCount(completions []models.TaskCompletion) int {
	n := 0
	for _, t := range completions {
		if t.Completed {
			n++
		}
	}
	return n
}

// ApplyTaskCompletion toggles the entry matching taskID and recomputes the
// derived fields. A taskID with no matching entry leaves the completions
// untouched; the derived fields are recomputed either way.
func ApplyTaskCompletion(doc *models.DailyAnalytics, taskID string, completed bool, now time.Time) {
	for i := range doc.TaskCompletions {
		if doc.TaskCompletions[i].TaskID != taskID {
			continue
		}
		doc.TaskCompletions[i].Completed = completed
		if completed {
			at := now
			doc.TaskCompletions[i].CompletedAt = &at
		} else {
			doc.TaskCompletions[i].CompletedAt = nil
		}
		break
	}
	doc.CompletedTasks = CompletedCount(doc.TaskCompletions)
	doc.ProductivityScore = ProductivityScore(doc.CompletedTasks, doc.TotalTasks)
	doc.UpdatedAt = now
}

// UpsertDailyAnalytics creates or replaces the analytics record for
// (userID, date), recomputing completedTasks and productivityScore from the
// submitted completion list.
func UpsertDailyAnalytics(doc models.DailyAnalytics) (*models.DailyAnalytics, error) {
	coll, err := analyticsCollection()
	if err != nil {
		return nil, err
	}
	ctx, cancel := context.WithTimeout(context.Background(), dbTimeout)
	defer cancel()

	if doc.TaskCompletions == nil {
		doc.TaskCompletions = []models.TaskCompletion{}
	}
	doc.CompletedTasks = CompletedCount(doc.TaskCompletions)
	doc.ProductivityScore = ProductivityScore(doc.CompletedTasks, doc.TotalTasks)

	now := time.Now()
	filter := bson.M{"userId": doc.UserID, "date": doc.Date}
	update := bson.M{
		"$set": bson.M{
			"timetableId":       doc.TimetableID,
			"technique":         doc.Technique,
			"energyLevel":       doc.EnergyLevel,
			"goal":              doc.Goal,
			"totalTasks":        doc.TotalTasks,
			"completedTasks":    doc.CompletedTasks,
			"totalWorkTime":     doc.TotalWorkTime,
			"totalBreakTime":    doc.TotalBreakTime,
			"taskCompletions":   doc.TaskCompletions,
			"productivityScore": doc.ProductivityScore,
			"notes":             doc.Notes,
			"updatedAt":         now,
		},
		"$setOnInsert": bson.M{
			"userId":    doc.UserID,
			"date":      doc.Date,
			"createdAt": now,
		},
	}
	opts := options.FindOneAndUpdate().SetUpsert(true).SetReturnDocument(options.After)

	var out models.DailyAnalytics
	if err := coll.FindOneAndUpdate(ctx, filter, update, opts).Decode(&out); err != nil {
		return nil, err
	}
	return &out, nil
}

// GetAnalyticsByUser returns the user's analytics records, newest date
// first, restricted to the inclusive date range when both bounds are given.
func GetAnalyticsByUser(userID, startDate, endDate string) ([]models.DailyAnalytics, error) {
	coll, err := analyticsCollection()
	if err != nil {
		return nil, err
	}
	ctx, cancel := context.WithTimeout(context.Background(), dbTimeout)
	defer cancel()

	filter := bson.M{"userId": userID}
	if startDate != "" && endDate != "" {
		filter["date"] = bson.M{"$gte": startDate, "$lte": endDate}
	}
	opts := options.Find().SetSort(bson.D{{Key: "date", Value: -1}})
	cursor, err := coll.Find(ctx, filter, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	out := []models.DailyAnalytics{}
	if err := cursor.All(ctx, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// ComputeMetrics aggregates a set of analytics records. Averages round to
// the nearest integer; the technique mode is "None" when no record names
// one.
func ComputeMetrics(records []models.DailyAnalytics) models.AnalyticsMetrics {
	m := models.AnalyticsMetrics{
		TotalDays:         len(records),
		MostUsedTechnique: "None",
	}
	if len(records) == 0 {
		return m
	}

	scoreSum := 0
	counts := make(map[string]int)
	best := ""
	bestN := 0
	for _, r := range records {
		m.TotalTasksCompleted += r.CompletedTasks
		m.TotalWorkTime += r.TotalWorkTime
		scoreSum += r.ProductivityScore
		if r.Technique != "" {
			counts[r.Technique]++
			if counts[r.Technique] > bestN {
				bestN = counts[r.Technique]
				best = r.Technique
			}
		}
	}
	if best != "" {
		m.MostUsedTechnique = best
	}

	days := float64(len(records))
	m.AverageProductivityScore = int(math.Round(float64(scoreSum) / days))
	m.AverageTasksPerDay = int(math.Round(float64(m.TotalTasksCompleted) / days))
	m.AverageWorkTimePerDay = int(math.Round(float64(m.TotalWorkTime) / days))
	m.CurrentStreak = currentStreak(records)
	return m
}

// currentStreak counts the consecutive calendar days ending at the most
// recent record that each have at least one completed task.
func currentStreak(records []models.DailyAnalytics) int {
	const layout = "2006-01-02"
	productive := make(map[string]bool, len(records))
	var latest time.Time
	found := false
	for _, r := range records {
		day, err := time.Parse(layout, r.Date)
		if err != nil {
			continue
		}
		if r.CompletedTasks > 0 {
			productive[r.Date] = true
		}
		if !found || day.After(latest) {
			latest = day
			found = true
		}
	}
	if !found {
		return 0
	}

	streak := 0
	for day := latest; productive[day.Format(layout)]; day = day.AddDate(0, 0, -1) {
		streak++
	}
	return streak
}

// UpdateTaskCompletion toggles a single task's completion state on the
// user's analytics record for a date and persists the recomputed totals.
func UpdateTaskCompletion(userID, date, taskID string, completed bool) (*models.DailyAnalytics, error) {
	coll, err := analyticsCollection()
	if err != nil {
		return nil, err
	}
	ctx, cancel := context.WithTimeout(context.Background(), dbTimeout)
	defer cancel()

	var doc models.DailyAnalytics
	err = coll.FindOne(ctx, bson.M{"userId": userID, "date": date}).Decode(&doc)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, ErrAnalyticsNotFound
	}
	if err != nil {
		return nil, err
	}

	ApplyTaskCompletion(&doc, taskID, completed, time.Now())

	update := bson.M{"$set": bson.M{
		"taskCompletions":   doc.TaskCompletions,
		"completedTasks":    doc.CompletedTasks,
		"productivityScore": doc.ProductivityScore,
		"updatedAt":         doc.UpdatedAt,
	}}
	if _, err := coll.UpdateOne(ctx, bson.M{"_id": doc.ID}, update); err != nil {
		return nil, err
	}
	return &doc, nil
}

// ResetAnalytics deletes every analytics record belonging to the user and
// reports how many were removed.
func ResetAnalytics(userID string) (int64, error) {
	coll, err := analyticsCollection()
	if err != nil {
		return 0, err
	}
	ctx, cancel := context.WithTimeout(context.Background(), dbTimeout)
	defer cancel()

	res, err := coll.DeleteMany(ctx, bson.M{"userId": userID})
	if err != nil {
		return 0, err
	}
	return res.DeletedCount, nil
}
