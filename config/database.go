package config

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.uber.org/zap"
)

// ConnState is the database connection lifecycle state.
type ConnState string

const (
	StateDisconnected ConnState = "disconnected"
	StateConnecting   ConnState = "connecting"
	StateConnected    ConnState = "connected"
	StateReconnecting ConnState = "reconnecting"
)

const (
	databaseName    = "samay-sahayak"
	connectAttempts = 5
	connectDelay    = 5 * time.Second
	dialTimeout     = 10 * time.Second
)

var (
	mu     sync.RWMutex
	client *mongo.Client
	state  = StateDisconnected
)

// State reports the current connection lifecycle state.
func State() ConnState {
	mu.RLock()
	defer mu.RUnlock()
	return state
}

// Connected reports whether a usable client is available.
func Connected() bool {
	return State() == StateConnected
}

func setState(s ConnState) {
	mu.Lock()
	state = s
	mu.Unlock()
}

// ConnectDB dials MongoDB with a bounded retry policy: up to five attempts
// separated by a fixed five-second delay. The server keeps running when all
// attempts fail; store-backed endpoints report the outage instead.
func ConnectDB(ctx context.Context, uri string, logger *zap.Logger) error {
	setState(StateConnecting)

	var lastErr error
	for attempt := 1; attempt <= connectAttempts; attempt++ {
		if attempt > 1 {
			setState(StateReconnecting)
			select {
			case <-time.After(connectDelay):
			case <-ctx.Done():
				setState(StateDisconnected)
				return ctx.Err()
			}
		}

		c, err := dial(ctx, uri)
		if err == nil {
			mu.Lock()
			client = c
			state = StateConnected
			mu.Unlock()
			logger.Info("mongodb connected", zap.Int("attempt", attempt))
			return nil
		}
		lastErr = err
		logger.Warn("mongodb connection failed",
			zap.Int("attempt", attempt),
			zap.Error(err))
	}

	setState(StateDisconnected)
	return fmt.Errorf("connecting to mongodb: %w", lastErr)
}

// UseClient installs an externally constructed, already-connected client,
// bypassing the dial and retry path. A nil client detaches the current one
// without closing it.
func UseClient(c *mongo.Client) {
	mu.Lock()
	defer mu.Unlock()
	client = c
	if c == nil {
		state = StateDisconnected
	} else {
		state = StateConnected
	}
}

func dial(ctx context.Context, uri string) (*mongo.Client, error) {
	dialCtx, cancel := context.WithTimeout(ctx, dialTimeout)
	defer cancel()

	opts := options.Client().
		ApplyURI(uri).
		SetMaxPoolSize(10).
		SetServerSelectionTimeout(5 * time.Second)

	c, err := mongo.Connect(dialCtx, opts)
	if err != nil {
		return nil, err
	}
	if err := c.Ping(dialCtx, nil); err != nil {
		return nil, err
	}
	return c, nil
}

// OpenCollection returns a handle on the named collection. Callers must
// check Connected first; the handle is nil when no client is available.
func OpenCollection(name string) *mongo.Collection {
	mu.RLock()
	defer mu.RUnlock()
	if client == nil {
		return nil
	}
	return client.Database(databaseName).Collection(name)
}

// EnsureIndexes creates the userId index on timetables and the userId and
// unique (userId, date) indexes on analytics.
func EnsureIndexes(ctx context.Context) error {
	if !Connected() {
		return errors.New("mongodb is not connected")
	}

	timetables := OpenCollection("timetables")
	if _, err := timetables.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{{Key: "userId", Value: 1}},
	}); err != nil {
		return fmt.Errorf("indexing timetables: %w", err)
	}

	analytics := OpenCollection("analytics")
	if _, err := analytics.Indexes().CreateMany(ctx, []mongo.IndexModel{
		{Keys: bson.D{{Key: "userId", Value: 1}}},
		{
			Keys:    bson.D{{Key: "userId", Value: 1}, {Key: "date", Value: 1}},
			Options: options.Index().SetUnique(true),
		},
	}); err != nil {
		return fmt.Errorf("indexing analytics: %w", err)
	}
	return nil
}

// DisconnectDB closes the client during graceful shutdown.
func DisconnectDB(ctx context.Context) error {
	mu.Lock()
	c := client
	client = nil
	state = StateDisconnected
	mu.Unlock()

	if c == nil {
		return nil
	}
	return c.Disconnect(ctx)
}
