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

const foodPresetCollectionName = "food_presets"

type mongoFoodPresetRepository struct {
	collection *mongo.Collection
}

func NewMongoFoodPresetRepository(db *mongo.Database) repository.FoodPresetRepository {
	return &mongoFoodPresetRepository{
		collection: db.Collection(foodPresetCollectionName),
	}
}

func (r *mongoFoodPresetRepository) Create(ctx context.Context, preset *domain.FoodPreset) (primitive.ObjectID, error) {
	if preset.Name == "" {
		return primitive.NilObjectID, errors.New("preset requires a name")
	}
	preset.ID = primitive.NewObjectID()
	preset.CreatedAt = time.Now().UTC()

	result, err := r.collection.InsertOne(ctx, preset)
	if err != nil {
		return primitive.NilObjectID, err
	}
	insertedID, ok := result.InsertedID.(primitive.ObjectID)
	if !ok {
		return primitive.NilObjectID, errors.New("failed to convert inserted preset ID")
	}
	return insertedID, nil
}

func (r *mongoFoodPresetRepository) List(ctx context.Context) ([]domain.FoodPreset, error) {
	opts := options.Find().SetSort(bson.D{{Key: "name", Value: 1}})
	cursor, err := r.collection.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	presets := []domain.FoodPreset{}
	if err = cursor.All(ctx, &presets); err != nil {
		return nil, err
	}
	return presets, nil
}

func (r *mongoFoodPresetRepository) Delete(ctx context.Context, id primitive.ObjectID) error {
	result, err := r.collection.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return err
	}
	if result.DeletedCount == 0 {
		return repository.ErrNotFound
	}
	return nil
}

func EnsureFoodPresetIndexes(ctx context.Context, collection *mongo.Collection) error {
	_, err := collection.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{{Key: "name", Value: 1}},
	})
	return err
}
