package mongo

import (
	"context"
	"testing"

	"fitcoach/fitness-coach/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/integration/mtest"
)

func settingsDoc(calorieGoal float64) bson.D {
	return bson.D{
		{Key: "_id", Value: domain.SettingsID},
		{Key: "calorieGoal", Value: calorieGoal},
		{Key: "aiModel", Value: "openai/gpt-4o-mini"},
	}
}

func TestSettingsRepository_GetOrCreate(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))

	mt.Run("upserts the well-known document", func(mt *mtest.T) {
		repo := NewMongoSettingsRepository(mt.DB)
		mt.AddMockResponses(mtest.CreateSuccessResponse(bson.E{Key: "value", Value: settingsDoc(2000)}))

		settings, err := repo.GetOrCreate(context.Background())
		require.NoError(mt, err)
		assert.Equal(mt, domain.SettingsID, settings.ID)
		assert.Equal(mt, 2000.0, settings.CalorieGoal)
		assert.Equal(mt, "openai/gpt-4o-mini", settings.AIModel)

		evt := mt.GetStartedEvent()
		require.NotNil(mt, evt)
		assert.Equal(mt, "findAndModify", evt.CommandName)
		assert.Equal(mt, domain.SettingsID, evt.Command.Lookup("query", "_id").StringValue())
		assert.True(mt, evt.Command.Lookup("upsert").Boolean())
		_, err = evt.Command.LookupErr("update", "$setOnInsert", "calorieGoal")
		assert.NoError(mt, err)
	})

	mt.Run("duplicate key re-reads the document", func(mt *mtest.T) {
		repo := NewMongoSettingsRepository(mt.DB)
		mt.AddMockResponses(
			duplicateKeyResponse(),
			mtest.CreateCursorResponse(0, "test.settings", mtest.FirstBatch, settingsDoc(2500)),
		)

		settings, err := repo.GetOrCreate(context.Background())
		require.NoError(mt, err)
		assert.Equal(mt, 2500.0, settings.CalorieGoal)

		assert.Equal(mt, "findAndModify", mt.GetStartedEvent().CommandName)
		evt := mt.GetStartedEvent()
		require.NotNil(mt, evt)
		assert.Equal(mt, "find", evt.CommandName)
		assert.Equal(mt, domain.SettingsID, evt.Command.Lookup("filter", "_id").StringValue())
	})
}

func TestSettingsRepository_Update(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))
	updated := bson.E{Key: "n", Value: 1}

	mt.Run("custom prompt is set", func(mt *mtest.T) {
		repo := NewMongoSettingsRepository(mt.DB)
		mt.AddMockResponses(mtest.CreateSuccessResponse(updated))

		prompt := "be strict"
		require.NoError(mt, repo.Update(context.Background(), &domain.Settings{CalorieGoal: 2100, CustomPrompt: &prompt}))

		evt := mt.GetStartedEvent()
		require.NotNil(mt, evt)
		assert.Equal(mt, domain.SettingsID, evt.Command.Lookup("updates", "0", "q", "_id").StringValue())
		assert.True(mt, evt.Command.Lookup("updates", "0", "upsert").Boolean())
		assert.Equal(mt, 2100.0, evt.Command.Lookup("updates", "0", "u", "$set", "calorieGoal").Double())
		assert.Equal(mt, "be strict", evt.Command.Lookup("updates", "0", "u", "$set", "customPrompt").StringValue())
	})

	mt.Run("nil custom prompt is unset", func(mt *mtest.T) {
		repo := NewMongoSettingsRepository(mt.DB)
		mt.AddMockResponses(mtest.CreateSuccessResponse(updated))

		require.NoError(mt, repo.Update(context.Background(), &domain.Settings{}))

		evt := mt.GetStartedEvent()
		require.NotNil(mt, evt)
		_, err := evt.Command.LookupErr("updates", "0", "u", "$unset", "customPrompt")
		assert.NoError(mt, err)
	})
}
