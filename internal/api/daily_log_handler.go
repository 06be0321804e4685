package api

import (
	"net/http"
	"time"

	"fitcoach/fitness-coach/internal/domain"
	"fitcoach/fitness-coach/internal/service"

	"github.com/gin-gonic/gin"
)

type DailyLogHandler struct {
	dailyLogService service.DailyLogService
	loc             *time.Location
}

func NewDailyLogHandler(dailyLogService service.DailyLogService, loc *time.Location) *DailyLogHandler {
	if loc == nil {
		loc = time.Local
	}
	return &DailyLogHandler{dailyLogService: dailyLogService, loc: loc}
}

// --- Request Structs ---

type UpdateWeightRequest struct {
	Weight *float64 `json:"weight" binding:"required,gt=0,lt=1000"`
}

type UpdateBodyFatRequest struct {
	BodyFat *float64 `json:"bodyFat" binding:"required,gt=0,lte=100"`
}

type UpdateNotesRequest struct {
	Notes *string `json:"notes" binding:"omitempty,max=5000"`
}

// --- Handler Methods ---

// GetDashboard godoc
// @Summary Home page data
// @Description Today's log with totals, effective goals, 30-day progress and the workout heatmap.
// @Tags Logs
// @Produce json
// @Security BearerAuth
// @Success 200 {object} service.Dashboard
// @Failure 500 {object} gin.H "Internal Server Error"
// @Router /dashboard [get]
func (h *DailyLogHandler) GetDashboard(c *gin.Context) {
	dash, err := h.dailyLogService.Dashboard(c.Request.Context())
	if err != nil {
		abortWithServiceError(c, err, "Failed to load dashboard")
		return
	}
	c.JSON(http.StatusOK, dash)
}

// GetToday returns today's log, creating it on first access.
func (h *DailyLogHandler) GetToday(c *gin.Context) {
	view, err := h.dailyLogService.Today(c.Request.Context())
	if err != nil {
		abortWithServiceError(c, err, "Failed to load today's log")
		return
	}
	c.JSON(http.StatusOK, view)
}

// GetByDay godoc
// @Summary Get (or create) the log of a calendar day
// @Tags Logs
// @Produce json
// @Security BearerAuth
// @Param date path string true "Day as YYYY-MM-DD"
// @Success 200 {object} domain.DailyLogView
// @Failure 400 {object} gin.H "Invalid date"
// @Router /logs/day/{date} [get]
func (h *DailyLogHandler) GetByDay(c *gin.Context) {
	day, err := time.ParseInLocation(domain.DayLayout, c.Param("date"), h.loc)
	if err != nil {
		abortWithError(c, http.StatusBadRequest, "Invalid date, expected YYYY-MM-DD")
		return
	}
	view, err := h.dailyLogService.GetOrCreate(c.Request.Context(), day)
	if err != nil {
		abortWithServiceError(c, err, "Failed to load daily log")
		return
	}
	c.JSON(http.StatusOK, view)
}

// ListLogs returns every day with its workouts and meals, newest first.
func (h *DailyLogHandler) ListLogs(c *gin.Context) {
	views, err := h.dailyLogService.ListAll(c.Request.Context())
	if err != nil {
		abortWithServiceError(c, err, "Failed to list daily logs")
		return
	}
	c.JSON(http.StatusOK, views)
}

func (h *DailyLogHandler) UpdateWeight(c *gin.Context) {
	id, ok := parseObjectIDParam(c, "id")
	if !ok {
		return
	}
	var req UpdateWeightRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, "Validation error: "+err.Error())
		return
	}
	if err := h.dailyLogService.UpdateWeight(c.Request.Context(), id, *req.Weight); err != nil {
		abortWithServiceError(c, err, "Failed to update weight")
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *DailyLogHandler) UpdateBodyFat(c *gin.Context) {
	id, ok := parseObjectIDParam(c, "id")
	if !ok {
		return
	}
	var req UpdateBodyFatRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, "Validation error: "+err.Error())
		return
	}
	if err := h.dailyLogService.UpdateBodyFat(c.Request.Context(), id, *req.BodyFat); err != nil {
		abortWithServiceError(c, err, "Failed to update body fat")
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *DailyLogHandler) UpdateNotes(c *gin.Context) {
	id, ok := parseObjectIDParam(c, "id")
	if !ok {
		return
	}
	var req UpdateNotesRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, "Validation error: "+err.Error())
		return
	}
	if err := h.dailyLogService.UpdateNotes(c.Request.Context(), id, req.Notes); err != nil {
		abortWithServiceError(c, err, "Failed to update notes")
		return
	}
	c.Status(http.StatusNoContent)
}

// WorkoutHistory feeds the habit heatmap. Days without workouts are left out.
func (h *DailyLogHandler) WorkoutHistory(c *gin.Context) {
	history, err := h.dailyLogService.WorkoutHistory(c.Request.Context())
	if err != nil {
		abortWithServiceError(c, err, "Failed to load workout history")
		return
	}
	c.JSON(http.StatusOK, history)
}

func (h *DailyLogHandler) ProgressHistory(c *gin.Context) {
	progress, err := h.dailyLogService.ProgressHistory(c.Request.Context())
	if err != nil {
		abortWithServiceError(c, err, "Failed to load progress history")
		return
	}
	c.JSON(http.StatusOK, progress)
}
