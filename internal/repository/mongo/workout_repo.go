// internal/repository/mongo/workout_repo.go
package mongo

import (
	"context"
	"errors"
	"time"

	"fitcoach/fitness-coach/internal/domain"
	"fitcoach/fitness-coach/internal/repository"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const workoutCollectionName = "workout_logs"

// mongoWorkoutRepository implements repository.WorkoutRepository
type mongoWorkoutRepository struct {
	collection *mongo.Collection
}

// NewMongoWorkoutRepository creates a new Workout repository.
func NewMongoWorkoutRepository(db *mongo.Database) repository.WorkoutRepository {
	return &mongoWorkoutRepository{
		collection: db.Collection(workoutCollectionName),
	}
}

// Create inserts the workout and its exercises as a single document.
func (r *mongoWorkoutRepository) Create(ctx context.Context, workout *domain.WorkoutLog) (primitive.ObjectID, error) {
	if workout.DailyLogID == primitive.NilObjectID || workout.Type == "" || workout.Day == "" {
		return primitive.NilObjectID, errors.New("workout requires dailyLogId, day and type")
	}
	workout.ID = primitive.NewObjectID()
	workout.CreatedAt = time.Now().UTC()

	result, err := r.collection.InsertOne(ctx, workout)
	if err != nil {
		return primitive.NilObjectID, err
	}
	insertedID, ok := result.InsertedID.(primitive.ObjectID)
	if !ok {
		return primitive.NilObjectID, errors.New("failed to convert inserted workout ID")
	}
	return insertedID, nil
}

func (r *mongoWorkoutRepository) GetByDailyLogID(ctx context.Context, dailyLogID primitive.ObjectID) ([]domain.WorkoutLog, error) {
	return r.find(ctx, bson.M{"dailyLogId": dailyLogID})
}

func (r *mongoWorkoutRepository) GetByDailyLogIDs(ctx context.Context, dailyLogIDs []primitive.ObjectID) ([]domain.WorkoutLog, error) {
	if len(dailyLogIDs) == 0 {
		return []domain.WorkoutLog{}, nil
	}
	return r.find(ctx, bson.M{"dailyLogId": bson.M{"$in": dailyLogIDs}})
}

// ListSince returns the workouts of days dated at or after since. Only the fields
// needed for history are projected.
func (r *mongoWorkoutRepository) ListSince(ctx context.Context, since time.Time) ([]domain.WorkoutLog, error) {
	opts := options.Find().
		SetSort(bson.D{{Key: "date", Value: 1}}).
		SetProjection(bson.M{"day": 1, "date": 1, "dailyLogId": 1, "type": 1})
	return r.find(ctx, bson.M{"date": bson.M{"$gte": since}}, opts)
}

func (r *mongoWorkoutRepository) find(ctx context.Context, filter bson.M, opts ...*options.FindOptions) ([]domain.WorkoutLog, error) {
	if len(opts) == 0 {
		opts = append(opts, options.Find().SetSort(bson.D{{Key: "createdAt", Value: 1}}))
	}
	cursor, err := r.collection.Find(ctx, filter, opts...)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	workouts := []domain.WorkoutLog{}
	if err = cursor.All(ctx, &workouts); err != nil {
		return nil, err
	}
	return workouts, nil
}

// Delete removes the workout; its exercises go with it.
func (r *mongoWorkoutRepository) Delete(ctx context.Context, id primitive.ObjectID) error {
	result, err := r.collection.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return err
	}
	if result.DeletedCount == 0 {
		return repository.ErrNotFound
	}
	return nil
}

// EnsureWorkoutIndexes creates necessary indexes. Call during startup.
func EnsureWorkoutIndexes(ctx context.Context, collection *mongo.Collection) error {
	indexes := []mongo.IndexModel{
		{Keys: bson.D{{Key: "dailyLogId", Value: 1}, {Key: "createdAt", Value: 1}}},
		{Keys: bson.D{{Key: "date", Value: 1}}},
	}
	_, err := collection.Indexes().CreateMany(ctx, indexes)
	return err
}
