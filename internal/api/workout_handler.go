package api

import (
	"net/http"

	"fitcoach/fitness-coach/internal/domain"
	"fitcoach/fitness-coach/internal/service"

	"github.com/gin-gonic/gin"
)

type WorkoutHandler struct {
	workoutService service.WorkoutService
}

func NewWorkoutHandler(workoutService service.WorkoutService) *WorkoutHandler {
	return &WorkoutHandler{workoutService: workoutService}
}

type ExerciseRequest struct {
	Name   string   `json:"name" binding:"required"`
	Sets   *int     `json:"sets" binding:"required,gte=0"`
	Reps   string   `json:"reps"`
	Weight *float64 `json:"weight" binding:"omitempty,gte=0"`
}

type LogWorkoutRequest struct {
	Type      string            `json:"type" binding:"required"`
	Exercises []ExerciseRequest `json:"exercises" binding:"required,min=1,dive"`
}

func (r LogWorkoutRequest) exercises() []domain.ExerciseLog {
	out := make([]domain.ExerciseLog, 0, len(r.Exercises))
	for _, ex := range r.Exercises {
		e := domain.ExerciseLog{Name: ex.Name, Sets: *ex.Sets, Reps: ex.Reps}
		if ex.Weight != nil {
			e.Weight = *ex.Weight
		}
		out = append(out, e)
	}
	return out
}

// LogWorkout godoc
// @Summary Log a workout session
// @Description Creates a workout and its exercises on the given daily log in one write.
// @Tags Workouts
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "DailyLog ObjectID Hex"
// @Param workout body LogWorkoutRequest true "Workout details"
// @Success 201 {object} domain.WorkoutLog
// @Failure 400 {object} gin.H "Invalid input"
// @Failure 404 {object} gin.H "Daily log not found"
// @Router /logs/{id}/workouts [post]
func (h *WorkoutHandler) LogWorkout(c *gin.Context) {
	dailyLogID, ok := parseObjectIDParam(c, "id")
	if !ok {
		return
	}
	var req LogWorkoutRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, "Validation error: "+err.Error())
		return
	}

	workout, err := h.workoutService.LogWorkout(c.Request.Context(), dailyLogID, req.Type, req.exercises())
	if err != nil {
		abortWithServiceError(c, err, "Failed to log workout")
		return
	}
	c.JSON(http.StatusCreated, workout)
}

func (h *WorkoutHandler) DeleteWorkout(c *gin.Context) {
	id, ok := parseObjectIDParam(c, "id")
	if !ok {
		return
	}
	if err := h.workoutService.DeleteWorkout(c.Request.Context(), id); err != nil {
		abortWithServiceError(c, err, "Failed to delete workout")
		return
	}
	c.Status(http.StatusNoContent)
}
