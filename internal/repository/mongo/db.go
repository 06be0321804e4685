package mongo

import (
	"context"
	"fmt"
	"time"

	log "github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

// Default connection timeout
const defaultTimeout = 10 * time.Second

// ConnectDB establishes a connection to MongoDB using the provided URI and pings the primary.
func ConnectDB(uri string) (*mongo.Client, error) {
	ctx, cancel := context.WithTimeout(context.Background(), defaultTimeout)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		return nil, fmt.Errorf("connect: %w", err)
	}

	pingCtx, pingCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer pingCancel()

	if err := client.Ping(pingCtx, readpref.Primary()); err != nil {
		disconnectCtx, disconnectCancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer disconnectCancel()
		_ = client.Disconnect(disconnectCtx)
		return nil, fmt.Errorf("ping: %w", err)
	}

	return client, nil
}

// DisconnectDB gracefully disconnects the MongoDB client.
func DisconnectDB(client *mongo.Client) error {
	ctx, cancel := context.WithTimeout(context.Background(), defaultTimeout)
	defer cancel()
	return client.Disconnect(ctx)
}

// EnsureIndexes creates the indexes of every collection. The unique day index is
// what makes daily log creation race free, so a failure there is returned.
func EnsureIndexes(ctx context.Context, db *mongo.Database) error {
	if err := EnsureDailyLogIndexes(ctx, db.Collection(dailyLogCollectionName)); err != nil {
		return fmt.Errorf("daily log indexes: %w", err)
	}

	optional := map[string]func(context.Context, *mongo.Collection) error{
		workoutCollectionName:    EnsureWorkoutIndexes,
		foodLogCollectionName:    EnsureFoodLogIndexes,
		foodPresetCollectionName: EnsureFoodPresetIndexes,
		userCollectionName:       EnsureUserIndexes,
	}
	for name, ensure := range optional {
		if err := ensure(ctx, db.Collection(name)); err != nil {
			log.Warnf("failed to create indexes for collection %s: %v", name, err)
		}
	}
	return nil
}
