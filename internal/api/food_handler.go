package api

import (
	"net/http"

	"fitcoach/fitness-coach/internal/domain"
	"fitcoach/fitness-coach/internal/service"

	"github.com/gin-gonic/gin"
)

type FoodHandler struct {
	foodService service.FoodService
}

func NewFoodHandler(foodService service.FoodService) *FoodHandler {
	return &FoodHandler{foodService: foodService}
}

// MacrosRequest rejects missing or negative values instead of coercing them.
type MacrosRequest struct {
	Calories *float64 `json:"calories" binding:"required,gte=0"`
	Protein  *float64 `json:"protein" binding:"required,gte=0"`
	Carbs    *float64 `json:"carbs" binding:"required,gte=0"`
	Fats     *float64 `json:"fats" binding:"required,gte=0"`
}

func (m MacrosRequest) macros() domain.Macros {
	return domain.Macros{Calories: *m.Calories, Protein: *m.Protein, Carbs: *m.Carbs, Fats: *m.Fats}
}

type FoodRequest struct {
	Name string `json:"name" binding:"required,max=200"`
	MacrosRequest
	MealType string `json:"mealType" binding:"max=50"`
}

func (r FoodRequest) input() service.FoodInput {
	return service.FoodInput{Name: r.Name, Macros: r.macros(), MealType: r.MealType}
}

// LogFood godoc
// @Summary Log a meal
// @Tags Food
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "DailyLog ObjectID Hex"
// @Param food body FoodRequest true "Meal"
// @Success 201 {object} domain.FoodLog
// @Failure 400 {object} gin.H "Invalid input"
// @Failure 404 {object} gin.H "Daily log not found"
// @Router /logs/{id}/meals [post]
func (h *FoodHandler) LogFood(c *gin.Context) {
	dailyLogID, ok := parseObjectIDParam(c, "id")
	if !ok {
		return
	}
	var req FoodRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, "Validation error: "+err.Error())
		return
	}
	food, err := h.foodService.LogFood(c.Request.Context(), dailyLogID, req.input())
	if err != nil {
		abortWithServiceError(c, err, "Failed to log food")
		return
	}
	c.JSON(http.StatusCreated, food)
}

func (h *FoodHandler) UpdateFood(c *gin.Context) {
	id, ok := parseObjectIDParam(c, "id")
	if !ok {
		return
	}
	var req FoodRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, "Validation error: "+err.Error())
		return
	}
	food, err := h.foodService.UpdateFood(c.Request.Context(), id, req.input())
	if err != nil {
		abortWithServiceError(c, err, "Failed to update food")
		return
	}
	c.JSON(http.StatusOK, food)
}

func (h *FoodHandler) DeleteFood(c *gin.Context) {
	id, ok := parseObjectIDParam(c, "id")
	if !ok {
		return
	}
	if err := h.foodService.DeleteFood(c.Request.Context(), id); err != nil {
		abortWithServiceError(c, err, "Failed to delete food")
		return
	}
	c.Status(http.StatusNoContent)
}

// ListPresets returns the saved food templates by name.
func (h *FoodHandler) ListPresets(c *gin.Context) {
	presets, err := h.foodService.ListPresets(c.Request.Context())
	if err != nil {
		abortWithServiceError(c, err, "Failed to list presets")
		return
	}
	c.JSON(http.StatusOK, presets)
}

func (h *FoodHandler) AddPreset(c *gin.Context) {
	var req FoodRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, "Validation error: "+err.Error())
		return
	}
	preset, err := h.foodService.AddPreset(c.Request.Context(), req.input())
	if err != nil {
		abortWithServiceError(c, err, "Failed to add preset")
		return
	}
	c.JSON(http.StatusCreated, preset)
}

func (h *FoodHandler) DeletePreset(c *gin.Context) {
	id, ok := parseObjectIDParam(c, "id")
	if !ok {
		return
	}
	if err := h.foodService.DeletePreset(c.Request.Context(), id); err != nil {
		abortWithServiceError(c, err, "Failed to delete preset")
		return
	}
	c.Status(http.StatusNoContent)
}
