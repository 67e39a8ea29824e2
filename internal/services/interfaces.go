package services

import (
	"context"
	"time"

	"cofrinho/internal/models"
)

// UserServicer defines the contract for identity-related business logic.
type UserServicer interface {
	Register(email, password, displayName string) (*models.User, error)
	AttemptLogin(email, password string) (*models.User, error)
	SignInWithGoogle(ctx context.Context, idToken string) (*models.User, error)
	GetUserByID(id string) (*models.User, error)
	StoreRefreshTokenHash(userID, tokenHash string) error
	GetRefreshTokenHash(userID string) (string, error)
	ClearRefreshToken(userID string) error
}

// CreatePeriodInput is the caller-supplied data for a new period. Goal is
// a decimal string; empty StartDate and EndDate default to the first and
// last day of the current month.
type CreatePeriodInput struct {
	Name      string
	StartDate string
	EndDate   string
	Goal      string
}

// PeriodServicer defines the contract for period resolution.
type PeriodServicer interface {
	CreatePeriod(ctx context.Context, userID string, in CreatePeriodInput) (*models.Period, error)
	FindActivePeriod(userID, today string) (*models.Period, error)
	ListPeriods(userID string) ([]models.Period, error)
}

// CreateTransactionInput is the caller-supplied data for a new expense.
// Amount is a decimal string. An empty PeriodID attaches the transaction
// to the caller's currently active period; a nil Date defaults to now.
type CreateTransactionInput struct {
	PeriodID    string
	Description string
	Amount      string
	Category    string
	Date        *time.Time
}

// TransactionServicer defines the contract for transaction recording and retrieval.
type TransactionServicer interface {
	CreateTransaction(ctx context.Context, userID string, in CreateTransactionInput) (*models.Transaction, error)
	ListPeriodTransactions(userID, periodID string) ([]models.Transaction, error)
	ListUserTransactions(userID string) ([]models.Transaction, error)
}

// Summary contains the derived budget figures for one period.
type Summary struct {
	TotalSpentCents int64 `json:"total_spent_cents"`
	GoalCents       int64 `json:"goal_cents"`
	RemainingCents  int64 `json:"remaining_cents"`
	OverBudget      bool  `json:"over_budget"`
}

// DashboardData is the combined read path result. Period and Summary are
// nil when no period is active for the requested date; that is a normal
// empty result, not an error.
type DashboardData struct {
	Period       *models.Period       `json:"period"`
	Transactions []models.Transaction `json:"transactions"`
	Summary      *Summary             `json:"summary,omitempty"`
}

// DashboardServicer composes period resolution and transaction aggregation.
type DashboardServicer interface {
	FetchDashboardData(userID, today string) (*DashboardData, error)
}
