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

const dailyLogCollectionName = "daily_logs"

// mongoDailyLogRepository implements repository.DailyLogRepository
type mongoDailyLogRepository struct {
	collection *mongo.Collection
}

// NewMongoDailyLogRepository creates a new DailyLog repository.
func NewMongoDailyLogRepository(db *mongo.Database) repository.DailyLogRepository {
	return &mongoDailyLogRepository{
		collection: db.Collection(dailyLogCollectionName),
	}
}

// GetOrCreate upserts on the unique day key. Two concurrent upserts for the same
// day can still collide on the unique index; the loser re-reads the winner's row.
func (r *mongoDailyLogRepository) GetOrCreate(ctx context.Context, day string, date time.Time) (*domain.DailyLog, error) {
	now := time.Now().UTC()
	filter := bson.M{"day": day}
	update := bson.M{
		// day comes from the equality filter on insert
		"$setOnInsert": bson.M{
			"date":      date,
			"createdAt": now,
			"updatedAt": now,
		},
	}
	opts := options.FindOneAndUpdate().SetUpsert(true).SetReturnDocument(options.After)

	var log domain.DailyLog
	err := r.collection.FindOneAndUpdate(ctx, filter, update, opts).Decode(&log)
	if err != nil {
		// Upserts racing on a missing day both try to insert; the unique day index
		// rejects the second one, which then reads the row the first created.
		if mongo.IsDuplicateKeyError(err) {
			return r.GetByDay(ctx, day)
		}
		return nil, err
	}
	return &log, nil
}

func (r *mongoDailyLogRepository) GetByDay(ctx context.Context, day string) (*domain.DailyLog, error) {
	return r.findOne(ctx, bson.M{"day": day})
}

func (r *mongoDailyLogRepository) GetByID(ctx context.Context, id primitive.ObjectID) (*domain.DailyLog, error) {
	return r.findOne(ctx, bson.M{"_id": id})
}

func (r *mongoDailyLogRepository) findOne(ctx context.Context, filter bson.M) (*domain.DailyLog, error) {
	var log domain.DailyLog
	err := r.collection.FindOne(ctx, filter).Decode(&log)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, repository.ErrNotFound
		}
		return nil, err
	}
	return &log, nil
}

func (r *mongoDailyLogRepository) ListAll(ctx context.Context) ([]domain.DailyLog, error) {
	opts := options.Find().SetSort(bson.D{{Key: "date", Value: -1}})
	return r.find(ctx, bson.M{}, opts)
}

func (r *mongoDailyLogRepository) ListWithReadingsSince(ctx context.Context, since time.Time) ([]domain.DailyLog, error) {
	// weight/bodyFat are omitted when unset, so $ne nil also excludes missing fields
	filter := bson.M{
		"date": bson.M{"$gte": since},
		"$or": bson.A{
			bson.M{"weight": bson.M{"$ne": nil}},
			bson.M{"bodyFat": bson.M{"$ne": nil}},
		},
	}
	opts := options.Find().SetSort(bson.D{{Key: "date", Value: 1}})
	return r.find(ctx, filter, opts)
}

func (r *mongoDailyLogRepository) find(ctx context.Context, filter bson.M, opts *options.FindOptions) ([]domain.DailyLog, error) {
	cursor, err := r.collection.Find(ctx, filter, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	logs := []domain.DailyLog{}
	if err = cursor.All(ctx, &logs); err != nil {
		return nil, err
	}
	return logs, nil
}

func (r *mongoDailyLogRepository) LatestWeight(ctx context.Context) (*float64, error) {
	log, err := r.latestWith(ctx, "weight")
	if err != nil || log == nil {
		return nil, err
	}
	return log.Weight, nil
}

func (r *mongoDailyLogRepository) LatestBodyFat(ctx context.Context) (*float64, error) {
	log, err := r.latestWith(ctx, "bodyFat")
	if err != nil || log == nil {
		return nil, err
	}
	return log.BodyFat, nil
}

// latestWith returns the most recent log where field is set, or nil.
func (r *mongoDailyLogRepository) latestWith(ctx context.Context, field string) (*domain.DailyLog, error) {
	opts := options.FindOne().
		SetSort(bson.D{{Key: "date", Value: -1}}).
		SetProjection(bson.M{field: 1, "date": 1})

	var log domain.DailyLog
	err := r.collection.FindOne(ctx, bson.M{field: bson.M{"$ne": nil}}, opts).Decode(&log)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, err
	}
	return &log, nil
}

func (r *mongoDailyLogRepository) SetWeight(ctx context.Context, id primitive.ObjectID, weight float64) error {
	return r.set(ctx, id, bson.M{"weight": weight})
}

func (r *mongoDailyLogRepository) SetBodyFat(ctx context.Context, id primitive.ObjectID, bodyFat float64) error {
	return r.set(ctx, id, bson.M{"bodyFat": bodyFat})
}

func (r *mongoDailyLogRepository) SetNotes(ctx context.Context, id primitive.ObjectID, notes *string) error {
	if notes == nil {
		return r.update(ctx, id, bson.M{
			"$unset": bson.M{"notes": ""},
			"$set":   bson.M{"updatedAt": time.Now().UTC()},
		})
	}
	return r.set(ctx, id, bson.M{"notes": *notes})
}

func (r *mongoDailyLogRepository) set(ctx context.Context, id primitive.ObjectID, fields bson.M) error {
	fields["updatedAt"] = time.Now().UTC()
	return r.update(ctx, id, bson.M{"$set": fields})
}

func (r *mongoDailyLogRepository) update(ctx context.Context, id primitive.ObjectID, update bson.M) error {
	result, err := r.collection.UpdateOne(ctx, bson.M{"_id": id}, update)
	if err != nil {
		return err
	}
	// MatchedCount, not ModifiedCount: writing the same value again is still a hit
	if result.MatchedCount == 0 {
		return repository.ErrNotFound
	}
	return nil
}

// EnsureDailyLogIndexes creates the unique calendar-day index and a date index for history scans.
func EnsureDailyLogIndexes(ctx context.Context, collection *mongo.Collection) error {
	indexes := []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "day", Value: 1}},
			Options: options.Index().SetUnique(true),
		},
		{
			Keys: bson.D{{Key: "date", Value: -1}},
		},
	}
	_, err := collection.Indexes().CreateMany(ctx, indexes)
	return err
}
