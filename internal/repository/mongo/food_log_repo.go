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

const foodLogCollectionName = "food_logs"

// mongoFoodLogRepository implements repository.FoodLogRepository
type mongoFoodLogRepository struct {
	collection *mongo.Collection
}

// NewMongoFoodLogRepository creates a new FoodLog repository.
func NewMongoFoodLogRepository(db *mongo.Database) repository.FoodLogRepository {
	return &mongoFoodLogRepository{
		collection: db.Collection(foodLogCollectionName),
	}
}

func (r *mongoFoodLogRepository) Create(ctx context.Context, food *domain.FoodLog) (primitive.ObjectID, error) {
	if food.DailyLogID == primitive.NilObjectID || food.Name == "" {
		return primitive.NilObjectID, errors.New("food log requires dailyLogId and name")
	}
	food.ID = primitive.NewObjectID()
	now := time.Now().UTC()
	food.CreatedAt = now
	food.UpdatedAt = now

	result, err := r.collection.InsertOne(ctx, food)
	if err != nil {
		return primitive.NilObjectID, err
	}
	insertedID, ok := result.InsertedID.(primitive.ObjectID)
	if !ok {
		return primitive.NilObjectID, errors.New("failed to convert inserted food log ID")
	}
	return insertedID, nil
}

func (r *mongoFoodLogRepository) GetByID(ctx context.Context, id primitive.ObjectID) (*domain.FoodLog, error) {
	var food domain.FoodLog
	err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&food)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, repository.ErrNotFound
		}
		return nil, err
	}
	return &food, nil
}

func (r *mongoFoodLogRepository) GetByDailyLogID(ctx context.Context, dailyLogID primitive.ObjectID) ([]domain.FoodLog, error) {
	return r.find(ctx, bson.M{"dailyLogId": dailyLogID})
}

func (r *mongoFoodLogRepository) GetByDailyLogIDs(ctx context.Context, dailyLogIDs []primitive.ObjectID) ([]domain.FoodLog, error) {
	if len(dailyLogIDs) == 0 {
		return []domain.FoodLog{}, nil
	}
	return r.find(ctx, bson.M{"dailyLogId": bson.M{"$in": dailyLogIDs}})
}

func (r *mongoFoodLogRepository) find(ctx context.Context, filter bson.M) ([]domain.FoodLog, error) {
	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: 1}})
	cursor, err := r.collection.Find(ctx, filter, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	meals := []domain.FoodLog{}
	if err = cursor.All(ctx, &meals); err != nil {
		return nil, err
	}
	return meals, nil
}

// Update rewrites name and all four macros in one statement.
func (r *mongoFoodLogRepository) Update(ctx context.Context, food *domain.FoodLog) error {
	if food.ID == primitive.NilObjectID {
		return errors.New("food log ID is required for update")
	}
	update := bson.M{
		"$set": bson.M{
			"name":      food.Name,
			"calories":  food.Calories,
			"protein":   food.Protein,
			"carbs":     food.Carbs,
			"fats":      food.Fats,
			"updatedAt": time.Now().UTC(),
		},
	}
	result, err := r.collection.UpdateOne(ctx, bson.M{"_id": food.ID}, update)
	if err != nil {
		return err
	}
	if result.MatchedCount == 0 {
		return repository.ErrNotFound
	}
	return nil
}

func (r *mongoFoodLogRepository) Delete(ctx context.Context, id primitive.ObjectID) error {
	result, err := r.collection.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return err
	}
	if result.DeletedCount == 0 {
		return repository.ErrNotFound
	}
	return nil
}

func EnsureFoodLogIndexes(ctx context.Context, collection *mongo.Collection) error {
	_, err := collection.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{{Key: "dailyLogId", Value: 1}, {Key: "createdAt", Value: 1}},
	})
	return err
}
