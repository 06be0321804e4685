package api

import (
	"errors"
	"net/http"

	"fitcoach/fitness-coach/internal/service"

	"github.com/gin-gonic/gin"
	log "github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// parseObjectIDParam reads a hex ObjectID path parameter, aborting with 400 on failure.
func parseObjectIDParam(c *gin.Context, name string) (primitive.ObjectID, bool) {
	id, err := primitive.ObjectIDFromHex(c.Param(name))
	if err != nil {
		abortWithError(c, http.StatusBadRequest, "Invalid "+name+" format")
		return primitive.NilObjectID, false
	}
	return id, true
}

// abortWithServiceError maps service sentinels to status codes.
// Anything unrecognised is logged and reported as internalMsg.
func abortWithServiceError(c *gin.Context, err error, internalMsg string) {
	switch {
	case errors.Is(err, service.ErrValidation):
		abortWithError(c, http.StatusBadRequest, err.Error())
	case errors.Is(err, service.ErrDailyLogNotFound),
		errors.Is(err, service.ErrWorkoutNotFound),
		errors.Is(err, service.ErrFoodLogNotFound),
		errors.Is(err, service.ErrPresetNotFound):
		abortWithError(c, http.StatusNotFound, err.Error())
	default:
		log.WithError(err).WithField("path", c.FullPath()).Error(internalMsg)
		_ = c.Error(err)
		abortWithError(c, http.StatusInternalServerError, internalMsg)
	}
}
