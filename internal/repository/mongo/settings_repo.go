package mongo

import (
	"context"
	"time"

	"fitcoach/fitness-coach/internal/domain"
	"fitcoach/fitness-coach/internal/repository"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const settingsCollectionName = "settings"

// mongoSettingsRepository keeps the settings in a single document keyed by domain.SettingsID.
type mongoSettingsRepository struct {
	collection *mongo.Collection
}

func NewMongoSettingsRepository(db *mongo.Database) repository.SettingsRepository {
	return &mongoSettingsRepository{
		collection: db.Collection(settingsCollectionName),
	}
}

// GetOrCreate upserts on the well-known _id, so there is never more than one row.
func (r *mongoSettingsRepository) GetOrCreate(ctx context.Context) (*domain.Settings, error) {
	update := bson.M{
		"$setOnInsert": bson.M{
			"targetWeight": 0.0,
			"bodyFatGoal":  0.0,
			"calorieGoal":  0.0,
			"proteinGoal":  0.0,
			"carbGoal":     0.0,
			"fatGoal":      0.0,
			"aiModel":      "",
			"updatedAt":    time.Now().UTC(),
		},
	}
	opts := options.FindOneAndUpdate().SetUpsert(true).SetReturnDocument(options.After)

	var settings domain.Settings
	err := r.collection.FindOneAndUpdate(ctx, bson.M{"_id": domain.SettingsID}, update, opts).Decode(&settings)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			// lost an insert race on _id; the document exists now
			err = r.collection.FindOne(ctx, bson.M{"_id": domain.SettingsID}).Decode(&settings)
		}
		if err != nil {
			return nil, err
		}
	}
	return &settings, nil
}

func (r *mongoSettingsRepository) Update(ctx context.Context, settings *domain.Settings) error {
	set := bson.M{
		"targetWeight": settings.TargetWeight,
		"bodyFatGoal":  settings.BodyFatGoal,
		"calorieGoal":  settings.CalorieGoal,
		"proteinGoal":  settings.ProteinGoal,
		"carbGoal":     settings.CarbGoal,
		"fatGoal":      settings.FatGoal,
		"aiModel":      settings.AIModel,
		"updatedAt":    time.Now().UTC(),
	}
	update := bson.M{"$set": set}
	if settings.CustomPrompt != nil {
		set["customPrompt"] = *settings.CustomPrompt
	} else {
		update["$unset"] = bson.M{"customPrompt": ""}
	}

	_, err := r.collection.UpdateOne(ctx, bson.M{"_id": domain.SettingsID}, update, options.Update().SetUpsert(true))
	return err
}
