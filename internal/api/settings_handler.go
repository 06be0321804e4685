package api

import (
	"net/http"

	"fitcoach/fitness-coach/internal/service"

	"github.com/gin-gonic/gin"
)

type SettingsHandler struct {
	settingsService service.SettingsService
}

func NewSettingsHandler(settingsService service.SettingsService) *SettingsHandler {
	return &SettingsHandler{settingsService: settingsService}
}

type UpdateSettingsRequest struct {
	TargetWeight *float64 `json:"targetWeight" binding:"required,gte=0"`
	BodyFatGoal  *float64 `json:"bodyFatGoal" binding:"required,gte=0,lte=100"`
	CalorieGoal  *float64 `json:"calorieGoal" binding:"required,gte=0"`
	ProteinGoal  *float64 `json:"proteinGoal" binding:"required,gte=0"`
	CarbGoal     *float64 `json:"carbGoal" binding:"required,gte=0"`
	FatGoal      *float64 `json:"fatGoal" binding:"required,gte=0"`
	AIModel      string   `json:"aiModel" binding:"max=200"`
	CustomPrompt *string  `json:"customPrompt" binding:"omitempty,max=20000"`
}

func (h *SettingsHandler) GetSettings(c *gin.Context) {
	settings, err := h.settingsService.Get(c.Request.Context())
	if err != nil {
		abortWithServiceError(c, err, "Failed to load settings")
		return
	}
	c.JSON(http.StatusOK, settings)
}

// UpdateSettings godoc
// @Summary Replace goals and AI preferences
// @Description Every goal is required; an empty customPrompt removes the template.
// @Tags Settings
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param settings body UpdateSettingsRequest true "Settings"
// @Success 200 {object} domain.Settings
// @Failure 400 {object} gin.H "Invalid input"
// @Router /settings [put]
func (h *SettingsHandler) UpdateSettings(c *gin.Context) {
	var req UpdateSettingsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, "Validation error: "+err.Error())
		return
	}
	settings, err := h.settingsService.Update(c.Request.Context(), service.SettingsInput{
		TargetWeight: *req.TargetWeight,
		BodyFatGoal:  *req.BodyFatGoal,
		CalorieGoal:  *req.CalorieGoal,
		ProteinGoal:  *req.ProteinGoal,
		CarbGoal:     *req.CarbGoal,
		FatGoal:      *req.FatGoal,
		AIModel:      req.AIModel,
		CustomPrompt: req.CustomPrompt,
	})
	if err != nil {
		abortWithServiceError(c, err, "Failed to update settings")
		return
	}
	c.JSON(http.StatusOK, settings)
}
