package services

import (
	"context"
	"errors"
	"strings"
	"time"

	"gorm.io/gorm"

	apperrors "cofrinho/internal/errors"
	"cofrinho/internal/events"
	"cofrinho/internal/logger"
	"cofrinho/internal/models"
	"cofrinho/internal/money"
)

const isoDate = "2006-01-02"

// periodService handles period resolution and creation.
type periodService struct {
	db     *gorm.DB
	events events.Publisher
}

// NewPeriodService creates a new PeriodServicer.
func NewPeriodService(db *gorm.DB, publisher events.Publisher) PeriodServicer {
	return &periodService{db: db, events: publisher}
}

// CreatePeriod validates the input and persists a new period.
// All validation happens before any write. A period that overlaps an
// existing one for the same user is rejected so that at most one period
// can ever contain a given day.
func (s *periodService) CreatePeriod(ctx context.Context, userID string, in CreatePeriodInput) (*models.Period, error) {
	name := strings.TrimSpace(in.Name)
	if name == "" {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "name is required")
	}

	goalCents, err := money.ParseCents(in.Goal)
	if err != nil {
		return nil, apperrors.ErrInvalidGoal
	}

	startDate, endDate := in.StartDate, in.EndDate
	if startDate == "" && endDate == "" {
		startDate, endDate = currentMonthBounds(time.Now())
	}
	if _, err := time.Parse(isoDate, startDate); err != nil {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "start_date must be an ISO date (YYYY-MM-DD)")
	}
	if _, err := time.Parse(isoDate, endDate); err != nil {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "end_date must be an ISO date (YYYY-MM-DD)")
	}
	if startDate > endDate {
		return nil, apperrors.ErrInvalidDateRange
	}

	// Reject any range intersection with an existing period.
	var count int64
	err = s.db.Model(&models.Period{}).
		Where("user_id = ? AND start_date <= ? AND end_date >= ?", userID, endDate, startDate).
		Count(&count).Error
	if err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	if count > 0 {
		return nil, apperrors.ErrPeriodOverlap
	}

	period := &models.Period{
		UserID:    userID,
		Name:      name,
		StartDate: startDate,
		EndDate:   endDate,
		GoalCents: goalCents,
	}

	if err := s.db.Create(period).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	if err := s.events.PeriodCreated(ctx, period.ID, userID); err != nil {
		logger.Get().Warnw("failed to publish period invalidation",
			"period_id", period.ID, "error", err)
	}

	return period, nil
}

// FindActivePeriod returns the period whose range contains today, or nil
// when none does. Should overlapping periods exist anyway, the most
// recently started one wins, with creation time as the tiebreak.
func (s *periodService) FindActivePeriod(userID, today string) (*models.Period, error) {
	var period models.Period
	err := s.db.
		Where("user_id = ? AND start_date <= ? AND end_date >= ?", userID, today, today).
		Order("start_date DESC, created_at DESC").
		First(&period).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return &period, nil
}

// ListPeriods returns all of a user's periods, newest first.
func (s *periodService) ListPeriods(userID string) ([]models.Period, error) {
	var periods []models.Period
	err := s.db.
		Where("user_id = ?", userID).
		Order("start_date DESC").
		Find(&periods).Error
	if err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return periods, nil
}

// currentMonthBounds returns the first and last calendar day of now's
// month in its location.
func currentMonthBounds(now time.Time) (string, string) {
	first := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
	last := first.AddDate(0, 1, -1)
	return first.Format(isoDate), last.Format(isoDate)
}
