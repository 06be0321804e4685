package mongo

import (
	"context"
	"testing"

	"fitcoach/fitness-coach/internal/domain"
	"fitcoach/fitness-coach/internal/repository"

	"github.com/stretchr/testify/assert"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo/integration/mtest"
)

func TestFoodLogRepository_NotFound(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))
	id := primitive.NewObjectID()

	mt.Run("update of unknown id", func(mt *mtest.T) {
		repo := NewMongoFoodLogRepository(mt.DB)
		mt.AddMockResponses(mtest.CreateSuccessResponse(
			bson.E{Key: "n", Value: 0},
			bson.E{Key: "nModified", Value: 0},
		))

		err := repo.Update(context.Background(), &domain.FoodLog{ID: id, Name: "Oats"})
		assert.ErrorIs(mt, err, repository.ErrNotFound)
	})

	mt.Run("delete of unknown id", func(mt *mtest.T) {
		repo := NewMongoFoodLogRepository(mt.DB)
		mt.AddMockResponses(mtest.CreateSuccessResponse(bson.E{Key: "n", Value: 0}))

		assert.ErrorIs(mt, repo.Delete(context.Background(), id), repository.ErrNotFound)
	})
}
