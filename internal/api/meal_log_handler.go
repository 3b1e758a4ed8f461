package api

import (
	"alcyxob/nutrition-app/internal/domain"
	"alcyxob/nutrition-app/internal/nutrition"
	"alcyxob/nutrition-app/internal/service"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

// MealLogHandler serves the food diary.
type MealLogHandler struct {
	mealLogService service.MealLogService
}

func NewMealLogHandler(mealLogService service.MealLogService) *MealLogHandler {
	return &MealLogHandler{mealLogService: mealLogService}
}

// --- DTOs ---

type MealLogRequest struct {
	MealType      string `json:"mealType" binding:"required"`
	MealDate      string `json:"mealDate" binding:"required"` // YYYY-MM-DD
	MealTime      string `json:"mealTime"`
	Calories      int    `json:"calories" binding:"min=0"`
	Proteins      int    `json:"proteins" binding:"min=0"`
	Fats          int    `json:"fats" binding:"min=0"`
	Carbohydrates int    `json:"carbohydrates" binding:"min=0"`
	Description   string `json:"description"`
}

func (r MealLogRequest) toInput() service.MealLogInput {
	return service.MealLogInput{
		MealType:      r.MealType,
		MealDate:      r.MealDate,
		MealTime:      r.MealTime,
		Calories:      r.Calories,
		Proteins:      r.Proteins,
		Fats:          r.Fats,
		Carbohydrates: r.Carbohydrates,
		Description:   r.Description,
	}
}

type MealLogResponse struct {
	ID            string          `json:"id"`
	MealType      domain.MealType `json:"mealType"`
	MealLabel     string          `json:"mealLabel"`
	MealIcon      string          `json:"mealIcon"`
	MealDate      string          `json:"mealDate"`
	MealTime      string          `json:"mealTime"`
	Calories      int             `json:"calories"`
	Proteins      int             `json:"proteins"`
	Fats          int             `json:"fats"`
	Carbohydrates int             `json:"carbohydrates"`
	Description   string          `json:"description,omitempty"`
	CreatedAt     time.Time       `json:"createdAt"`
	UpdatedAt     time.Time       `json:"updatedAt"`
}

type DailySummaryResponse struct {
	Date     string                       `json:"date"`
	Entries  []MealLogResponse            `json:"entries"`
	Totals   domain.DailyTotals           `json:"totals"`
	Progress []nutrition.NutrientProgress `json:"progress"`
	Goal     GoalResponse                 `json:"goal"`
}

// --- Handlers ---

// CreateMealLog godoc
// @Summary Log a meal
// @Tags MealLogs
// @Accept json
// @Produce json
// @Param mealLog body MealLogRequest true "Meal details"
// @Success 201 {object} MealLogResponse
// @Router /meallogs [post]
func (h *MealLogHandler) CreateMealLog(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	var req MealLogRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, fmt.Sprintf("Validation error: %v", err))
		return
	}

	entry, err := h.mealLogService.CreateMealLog(c.Request.Context(), userID, req.toInput())
	if err != nil {
		writeMealLogError(c, err)
		return
	}
	c.JSON(http.StatusCreated, MapMealLogToResponse(entry))
}

// GetMealLogs lists the diary, optionally for one ?date=YYYY-MM-DD.
func (h *MealLogHandler) GetMealLogs(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	entries, err := h.mealLogService.ListMealLogs(c.Request.Context(), userID, c.Query("date"))
	if err != nil {
		writeMealLogError(c, err)
		return
	}
	c.JSON(http.StatusOK, MapMealLogsToResponse(entries))
}

func (h *MealLogHandler) GetMealLog(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	id, ok := pathObjectID(c, "id")
	if !ok {
		return
	}

	entry, err := h.mealLogService.GetMealLog(c.Request.Context(), userID, id)
	if err != nil {
		writeMealLogError(c, err)
		return
	}
	c.JSON(http.StatusOK, MapMealLogToResponse(entry))
}

func (h *MealLogHandler) UpdateMealLog(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	id, ok := pathObjectID(c, "id")
	if !ok {
		return
	}
	var req MealLogRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, fmt.Sprintf("Validation error: %v", err))
		return
	}

	entry, err := h.mealLogService.UpdateMealLog(c.Request.Context(), userID, id, req.toInput())
	if err != nil {
		writeMealLogError(c, err)
		return
	}
	c.JSON(http.StatusOK, MapMealLogToResponse(entry))
}

func (h *MealLogHandler) DeleteMealLog(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	id, ok := pathObjectID(c, "id")
	if !ok {
		return
	}

	if err := h.mealLogService.DeleteMealLog(c.Request.Context(), userID, id); err != nil {
		writeMealLogError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// GetDailySummary godoc
// @Summary Totals and goal progress for one day
// @Tags MealLogs
// @Produce json
// @Param date query string false "YYYY-MM-DD, defaults to today"
// @Success 200 {object} DailySummaryResponse
// @Router /meallogs/daily [get]
func (h *MealLogHandler) GetDailySummary(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	summary, err := h.mealLogService.GetDailySummary(c.Request.Context(), userID, c.Query("date"))
	if err != nil {
		writeMealLogError(c, err)
		return
	}
	c.JSON(http.StatusOK, DailySummaryResponse{
		Date:     summary.Date,
		Entries:  MapMealLogsToResponse(summary.Entries),
		Totals:   summary.Totals,
		Progress: summary.Progress,
		Goal:     MapGoalToResponse(&summary.Goal),
	})
}

func writeMealLogError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrMealLogNotFound):
		abortWithError(c, http.StatusNotFound, err.Error())
	case errors.Is(err, service.ErrInvalidMealLog), errors.Is(err, service.ErrInvalidDate):
		abortWithError(c, http.StatusBadRequest, err.Error())
	default:
		abortWithInternal(c, err, "Failed to process meal log")
	}
}

// MapMealLogToResponse converts a domain entry, adding its display label and icon.
func MapMealLogToResponse(entry *domain.MealLogEntry) MealLogResponse {
	display := entry.MealType.Display()
	return MealLogResponse{
		ID:            entry.ID.Hex(),
		MealType:      entry.MealType,
		MealLabel:     display.Label,
		MealIcon:      display.Icon,
		MealDate:      entry.MealDate,
		MealTime:      entry.MealTime,
		Calories:      entry.Calories,
		Proteins:      entry.Proteins,
		Fats:          entry.Fats,
		Carbohydrates: entry.Carbohydrates,
		Description:   entry.Description,
		CreatedAt:     entry.CreatedAt,
		UpdatedAt:     entry.UpdatedAt,
	}
}

func MapMealLogsToResponse(entries []domain.MealLogEntry) []MealLogResponse {
	resp := make([]MealLogResponse, 0, len(entries))
	for i := range entries {
		resp = append(resp, MapMealLogToResponse(&entries[i]))
	}
	return resp
}
