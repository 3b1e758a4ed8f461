package api

import (
	"alcyxob/nutrition-app/internal/domain"
	"alcyxob/nutrition-app/internal/service"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

const goalsIncreasedMessage = "Congratulations! You met your goals consistently, so they have been increased."

type GoalHandler struct {
	goalService service.NutritionGoalService
}

func NewGoalHandler(goalService service.NutritionGoalService) *GoalHandler {
	return &GoalHandler{goalService: goalService}
}

type GoalRequest struct {
	CaloriesGoal int `json:"caloriesGoal" binding:"min=0"`
	ProteinsGoal int `json:"proteinsGoal" binding:"min=0"`
	FatsGoal     int `json:"fatsGoal" binding:"min=0"`
	CarbsGoal    int `json:"carbsGoal" binding:"min=0"`
}

func (r GoalRequest) toTargets() service.GoalTargets {
	return service.GoalTargets{
		CaloriesGoal: r.CaloriesGoal,
		ProteinsGoal: r.ProteinsGoal,
		FatsGoal:     r.FatsGoal,
		CarbsGoal:    r.CarbsGoal,
	}
}

type GoalResponse struct {
	ID               string     `json:"id,omitempty"`
	CaloriesGoal     int        `json:"caloriesGoal"`
	ProteinsGoal     int        `json:"proteinsGoal"`
	FatsGoal         int        `json:"fatsGoal"`
	CarbsGoal        int        `json:"carbsGoal"`
	IsActive         bool       `json:"isActive"`
	StartDate        time.Time  `json:"startDate"`
	GoalAchievedDays int        `json:"goalAchievedDays"`
	LastAchievedDate *time.Time `json:"lastAchievedDate,omitempty"`
}

type GoalProgressResponse struct {
	GoalAchieved    bool               `json:"goal_achieved"`
	ConsecutiveDays int                `json:"consecutive_days"`
	GoalsIncreased  bool               `json:"goals_increased"`
	CurrentTotals   domain.DailyTotals `json:"current_totals"`
	NutritionGoal   GoalResponse       `json:"nutrition_goal"`
	Message         string             `json:"message,omitempty"`
}

// GetActiveGoal returns the active goal, creating the default one if needed.
func (h *GoalHandler) GetActiveGoal(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	goal, err := h.goalService.GetActiveGoal(c.Request.Context(), userID)
	if err != nil {
		writeGoalError(c, err)
		return
	}
	c.JSON(http.StatusOK, MapGoalToResponse(goal))
}

// CreateGoal godoc
// @Summary Set new nutrition goals
// @Description Creates an active goal; previous goals are deactivated.
// @Tags Goals
// @Accept json
// @Produce json
// @Param goal body GoalRequest true "Daily targets"
// @Success 201 {object} GoalResponse
// @Router /goals [post]
func (h *GoalHandler) CreateGoal(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	var req GoalRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, fmt.Sprintf("Validation error: %v", err))
		return
	}

	goal, err := h.goalService.CreateGoal(c.Request.Context(), userID, req.toTargets())
	if err != nil {
		writeGoalError(c, err)
		return
	}
	c.JSON(http.StatusCreated, MapGoalToResponse(goal))
}

func (h *GoalHandler) UpdateGoal(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	goalID, ok := pathObjectID(c, "id")
	if !ok {
		return
	}
	var req GoalRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, fmt.Sprintf("Validation error: %v", err))
		return
	}

	goal, err := h.goalService.UpdateGoal(c.Request.Context(), userID, goalID, req.toTargets())
	if err != nil {
		writeGoalError(c, err)
		return
	}
	c.JSON(http.StatusOK, MapGoalToResponse(goal))
}

// CheckProgress godoc
// @Summary Evaluate today's meals against the active goal
// @Tags Goals
// @Produce json
// @Success 200 {object} GoalProgressResponse
// @Failure 400 {object} gin.H "No active goal"
// @Router /goals/progress [post]
func (h *GoalHandler) CheckProgress(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	result, err := h.goalService.CheckGoalProgress(c.Request.Context(), userID)
	if err != nil {
		writeGoalError(c, err)
		return
	}

	resp := GoalProgressResponse{
		GoalAchieved:    result.GoalAchieved,
		ConsecutiveDays: result.ConsecutiveDays,
		GoalsIncreased:  result.GoalsIncreased,
		CurrentTotals:   result.CurrentTotals,
		NutritionGoal:   MapGoalToResponse(&result.NutritionGoal),
	}
	if result.GoalsIncreased {
		resp.Message = goalsIncreasedMessage
	}
	c.JSON(http.StatusOK, resp)
}

func writeGoalError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrGoalNotFound):
		abortWithError(c, http.StatusNotFound, err.Error())
	case errors.Is(err, service.ErrGoalAccessDenied):
		abortWithError(c, http.StatusForbidden, err.Error())
	case errors.Is(err, service.ErrNoActiveGoal), errors.Is(err, service.ErrInvalidGoal):
		abortWithError(c, http.StatusBadRequest, err.Error())
	default:
		abortWithInternal(c, err, "Failed to process nutrition goal")
	}
}

func MapGoalToResponse(goal *domain.NutritionGoal) GoalResponse {
	resp := GoalResponse{
		CaloriesGoal:     goal.CaloriesGoal,
		ProteinsGoal:     goal.ProteinsGoal,
		FatsGoal:         goal.FatsGoal,
		CarbsGoal:        goal.CarbsGoal,
		IsActive:         goal.IsActive,
		StartDate:        goal.StartDate,
		GoalAchievedDays: goal.GoalAchievedDays,
		LastAchievedDate: goal.LastAchievedDate,
	}
	if !goal.ID.IsZero() {
		resp.ID = goal.ID.Hex()
	}
	return resp
}
