package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo/integration/mtest"

	"github.com/kaushalkrsna1602/Samay-Sahayak/config"
	"github.com/kaushalkrsna1602/Samay-Sahayak/models"
)

func TestTimetableService_SaveThenList(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))

	mt.Run("save then list newest first", func(mt *mtest.T) {
		config.UseClient(mt.Client)
		defer config.UseClient(nil)

		newer := bson.D{
			{Key: "_id", Value: primitive.NewObjectID()},
			{Key: "userId", Value: "u1"},
			{Key: "data", Value: bson.D{{Key: "date", Value: "2026-08-31"}}},
		}
		older := bson.D{
			{Key: "_id", Value: primitive.NewObjectID()},
			{Key: "userId", Value: "u1"},
			{Key: "data", Value: bson.D{{Key: "date", Value: "2026-08-30"}}},
		}
		mt.AddMockResponses(
			mtest.CreateSuccessResponse(),
			mtest.CreateCursorResponse(0, "samay-sahayak.timetables", mtest.FirstBatch, newer, older),
		)

		saved, err := SaveTimetable("u1", models.TimetableData{Date: "2026-08-31"})
		require.NoError(mt, err)
		assert.False(mt, saved.ID.IsZero())
		assert.Equal(mt, "u1", saved.UserID)
		assert.False(mt, saved.CreatedAt.IsZero())

		out, err := GetTimetablesByUser("u1")
		require.NoError(mt, err)
		require.Len(mt, out, 2)
		assert.Equal(mt, "2026-08-31", out[0].Data.Date)
		assert.Equal(mt, "2026-08-30", out[1].Data.Date)

		insertEvt := mt.GetStartedEvent()
		require.NotNil(mt, insertEvt)
		assert.Equal(mt, "insert", insertEvt.CommandName)
		docs, err := insertEvt.Command.Lookup("documents").Array().Values()
		require.NoError(mt, err)
		require.Len(mt, docs, 1)
		assert.Equal(mt, "u1", docs[0].Document().Lookup("userId").StringValue())

		findEvt := mt.GetStartedEvent()
		require.NotNil(mt, findEvt)
		assert.Equal(mt, "find", findEvt.CommandName)
		assert.Equal(mt, "u1", findEvt.Command.Lookup("filter", "userId").StringValue())
		sort, ok := findEvt.Command.Lookup("sort", "createdAt").AsInt64OK()
		require.True(mt, ok)
		assert.Equal(mt, int64(-1), sort)
	})
}

func TestTimetableService_DeleteByID(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))

	mt.Run("delete targets the id only", func(mt *mtest.T) {
		config.UseClient(mt.Client)
		defer config.UseClient(nil)

		oid := primitive.NewObjectID()
		mt.AddMockResponses(mtest.CreateSuccessResponse(bson.E{Key: "n", Value: 1}))

		require.NoError(mt, DeleteTimetable(oid.Hex()))

		evt := mt.GetStartedEvent()
		require.NotNil(mt, evt)
		assert.Equal(mt, "delete", evt.CommandName)
		deletes, err := evt.Command.Lookup("deletes").Array().Values()
		require.NoError(mt, err)
		require.Len(mt, deletes, 1)
		assert.Equal(mt, oid, deletes[0].Document().Lookup("q", "_id").ObjectID())
	})
}
