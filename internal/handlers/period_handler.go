package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	apperrors "cofrinho/internal/errors"
	"cofrinho/internal/services"
)

// PeriodHandler handles period-related requests.
type PeriodHandler struct {
	periodService services.PeriodServicer
}

// NewPeriodHandler creates a new PeriodHandler.
func NewPeriodHandler(periodService services.PeriodServicer) *PeriodHandler {
	return &PeriodHandler{periodService: periodService}
}

// CreatePeriodRequest represents the request payload for creating a period.
// Goal is a decimal string ("1000" or "999.99"). Omitting both dates
// defaults the period to the current calendar month.
type CreatePeriodRequest struct {
	Name      string `json:"name" binding:"required,min=1,max=100"`
	StartDate string `json:"start_date" binding:"omitempty,iso_date"`
	EndDate   string `json:"end_date" binding:"omitempty,iso_date"`
	Goal      string `json:"budget_goal" binding:"required,money"`
}

// CreatePeriod handles the creation of a new budget period.
// @Summary     Create a period
// @Description Create a new budget period; dates default to the current month
// @Tags        periods
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       request body CreatePeriodRequest true "Period details"
// @Success     201 {object} models.Period "Period created"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     409 {object} ErrorResponse "Overlapping period"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /periods [post]
func (h *PeriodHandler) CreatePeriod(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	var req CreatePeriodRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	period, err := h.periodService.CreatePeriod(c.Request.Context(), userID, services.CreatePeriodInput{
		Name:      req.Name,
		StartDate: req.StartDate,
		EndDate:   req.EndDate,
		Goal:      req.Goal,
	})
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"period": period})
}

// GetPeriods handles listing the user's periods.
// @Summary     Get periods
// @Description Get all budget periods for the authenticated user, newest first
// @Tags        periods
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Success     200 {array} models.Period "Periods"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /periods [get]
func (h *PeriodHandler) GetPeriods(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	periods, err := h.periodService.ListPeriods(userID)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"periods": periods})
}

// GetCurrentPeriod handles resolving the active period for today.
// A missing active period is a normal empty result: the response carries
// a null period and the client shows its "create a period" prompt.
// @Summary     Get current period
// @Description Get the period whose date range contains today, or null
// @Tags        periods
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Success     200 {object} models.Period "Current period or null"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /periods/current [get]
func (h *PeriodHandler) GetCurrentPeriod(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	period, err := h.periodService.FindActivePeriod(userID, today())
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"period": period})
}
