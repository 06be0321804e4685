package api

import (
	"errors"
	"net/http"

	"fitcoach/fitness-coach/internal/ai"
	"fitcoach/fitness-coach/internal/service"

	"github.com/gin-gonic/gin"
	log "github.com/sirupsen/logrus"
)

// Error bodies returned by the AI routes.
const (
	msgCoachFailed     = "Failed to fetch AI response"
	msgNutritionFailed = "All AI models failed to respond."
)

type AIHandler struct {
	coachService     service.CoachService
	nutritionService service.NutritionService
}

func NewAIHandler(coachService service.CoachService, nutritionService service.NutritionService) *AIHandler {
	return &AIHandler{
		coachService:     coachService,
		nutritionService: nutritionService,
	}
}

type ChatMessage struct {
	Role    string `json:"role" binding:"required,oneof=user assistant"`
	Content string `json:"content" binding:"required"`
}

type ChatRequest struct {
	Messages []ChatMessage `json:"messages" binding:"required,min=1,dive"`
}

func (r ChatRequest) messages() []ai.Message {
	out := make([]ai.Message, 0, len(r.Messages))
	for _, m := range r.Messages {
		out = append(out, ai.Message{Role: m.Role, Content: m.Content})
	}
	return out
}

// Chat godoc
// @Summary Talk to the coach
// @Description Prepends today's context to the conversation and returns the raw completion response.
// @Tags AI
// @Accept json
// @Produce json
// @Param chat body ChatRequest true "Conversation so far"
// @Success 200 {object} object "Completion API response"
// @Failure 400 {object} gin.H "Invalid input"
// @Failure 500 {object} gin.H "Failed to fetch AI response"
// @Router /chat [post]
func (h *AIHandler) Chat(c *gin.Context) {
	var req ChatRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, "Validation error: "+err.Error())
		return
	}

	resp, err := h.coachService.Chat(c.Request.Context(), req.messages())
	if err != nil {
		if errors.Is(err, service.ErrValidation) {
			abortWithError(c, http.StatusBadRequest, err.Error())
			return
		}
		log.WithError(err).Error("coach chat failed")
		abortWithError(c, http.StatusInternalServerError, msgCoachFailed)
		return
	}
	c.Data(http.StatusOK, "application/json; charset=utf-8", resp)
}

// NutritionChat answers with the first model in the fallback list that responds.
func (h *AIHandler) NutritionChat(c *gin.Context) {
	var req ChatRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, "Validation error: "+err.Error())
		return
	}

	resp, err := h.nutritionService.Estimate(c.Request.Context(), req.messages())
	if err != nil {
		if errors.Is(err, service.ErrValidation) {
			abortWithError(c, http.StatusBadRequest, err.Error())
			return
		}
		abortWithError(c, http.StatusInternalServerError, msgNutritionFailed)
		return
	}
	c.Data(http.StatusOK, "application/json; charset=utf-8", resp)
}
