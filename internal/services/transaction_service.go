package services

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"

	apperrors "cofrinho/internal/errors"
	"cofrinho/internal/events"
	"cofrinho/internal/logger"
	"cofrinho/internal/models"
	"cofrinho/internal/money"
)

// transactionService handles expense recording and aggregation.
type transactionService struct {
	db      *gorm.DB
	periods PeriodServicer
	events  events.Publisher
}

// NewTransactionService creates a new TransactionServicer.
func NewTransactionService(db *gorm.DB, periods PeriodServicer, publisher events.Publisher) TransactionServicer {
	return &transactionService{db: db, periods: periods, events: publisher}
}

// CreateTransaction validates the input and records an expense against
// the target period. Validation is complete before any persistence call:
// a malformed amount or unknown category never reaches the store.
func (s *transactionService) CreateTransaction(ctx context.Context, userID string, in CreateTransactionInput) (*models.Transaction, error) {
	category := models.TransactionCategory(in.Category)
	if !category.Valid() {
		return nil, apperrors.ErrInvalidCategory
	}

	amountCents, err := money.ParseCents(in.Amount)
	if err != nil || amountCents <= 0 {
		return nil, apperrors.ErrInvalidAmount
	}

	period, err := s.resolvePeriod(userID, in.PeriodID)
	if err != nil {
		return nil, err
	}

	date := time.Now()
	if in.Date != nil {
		date = *in.Date
	}

	txn := &models.Transaction{
		UserID:          userID,
		PeriodID:        period.ID,
		Description:     in.Description,
		AmountCents:     amountCents,
		Category:        category,
		TransactionDate: date,
	}

	if err := s.db.Create(txn).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	if err := s.events.TransactionCreated(ctx, txn.ID, userID); err != nil {
		logger.Get().Warnw("failed to publish transaction invalidation",
			"transaction_id", txn.ID, "error", err)
	}

	return txn, nil
}

// resolvePeriod returns the explicitly requested period after an
// ownership check, or the currently active one when none was given.
func (s *transactionService) resolvePeriod(userID, periodID string) (*models.Period, error) {
	if periodID != "" {
		var period models.Period
		err := s.db.Where("id = ? AND user_id = ?", periodID, userID).First(&period).Error
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, apperrors.ErrPeriodNotFound
			}
			return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
		}
		return &period, nil
	}

	today := time.Now().Format(isoDate)
	period, err := s.periods.FindActivePeriod(userID, today)
	if err != nil {
		return nil, err
	}
	if period == nil {
		return nil, apperrors.ErrNoActivePeriod
	}
	return period, nil
}

// ListPeriodTransactions returns a period's transactions, most recent
// first. The secondary sort on ID keeps equal-date rows in insertion
// order, since IDs are time-ordered UUIDv7.
func (s *transactionService) ListPeriodTransactions(userID, periodID string) ([]models.Transaction, error) {
	var period models.Period
	err := s.db.Where("id = ? AND user_id = ?", periodID, userID).First(&period).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrPeriodNotFound
		}
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	var txns []models.Transaction
	err = s.db.
		Where("period_id = ?", periodID).
		Order("transaction_date DESC, id DESC").
		Find(&txns).Error
	if err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return txns, nil
}

// ListUserTransactions returns all of a user's transactions across
// periods, most recent first.
func (s *transactionService) ListUserTransactions(userID string) ([]models.Transaction, error) {
	var txns []models.Transaction
	err := s.db.
		Where("user_id = ?", userID).
		Order("transaction_date DESC, id DESC").
		Find(&txns).Error
	if err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return txns, nil
}

// TotalSpent sums transaction amounts in cents. Pure and order-invariant.
func TotalSpent(txns []models.Transaction) int64 {
	var total int64
	for _, t := range txns {
		total += t.AmountCents
	}
	return total
}

// IsOverBudget reports whether spending strictly exceeds the goal.
// Spending exactly the goal is not over budget.
func IsOverBudget(totalCents, goalCents int64) bool {
	return totalCents > goalCents
}
