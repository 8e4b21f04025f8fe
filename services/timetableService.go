package services

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/kaushalkrsna1602/Samay-Sahayak/config"
	"github.com/kaushalkrsna1602/Samay-Sahayak/models"
)

// ErrNotConnected is returned when a store operation is attempted while the
// database connection is down.
var ErrNotConnected = errors.New("database is not connected")

const dbTimeout = 10 * time.Second

func timetableCollection() (*mongo.Collection, error) {
	if !config.Connected() {
		return nil, ErrNotConnected
	}
	return config.OpenCollection("timetables"), nil
}

// SaveTimetable persists a generated timetable as an immutable blob owned
// by the user.
func SaveTimetable(userID string, data models.TimetableData) (*models.SavedTimetable, error) {
	coll, err := timetableCollection()
	if err != nil {
		return nil, err
	}
	ctx, cancel := context.WithTimeout(context.Background(), dbTimeout)
	defer cancel()

	now := time.Now()
	saved := &models.SavedTimetable{
		ID:        primitive.NewObjectID(),
		UserID:    userID,
		Data:      data,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if _, err := coll.InsertOne(ctx, saved); err != nil {
		return nil, err
	}
	return saved, nil
}

// GetTimetablesByUser returns the user's saved timetables, most recent
// first.
func GetTimetablesByUser(userID string) ([]models.SavedTimetable, error) {
	coll, err := timetableCollection()
	if err != nil {
		return nil, err
	}
	ctx, cancel := context.WithTimeout(context.Background(), dbTimeout)
	defer cancel()

	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})
	cursor, err := coll.Find(ctx, bson.M{"userId": userID}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	out := []models.SavedTimetable{}
	if err := cursor.All(ctx, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// DeleteTimetable removes a timetable by id. Deleting an id that does not
// exist is not an error.
func DeleteTimetable(id string) error {
	coll, err := timetableCollection()
	if err != nil {
		return err
	}
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return err
	}
	ctx, cancel := context.WithTimeout(context.Background(), dbTimeout)
	defer cancel()

	_, err = coll.DeleteOne(ctx, bson.M{"_id": oid})
	return err
}
