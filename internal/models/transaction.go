package models

import "time"

// TransactionCategory is the closed set of expense categories.
type TransactionCategory string

const (
	CategoryGroceries     TransactionCategory = "groceries"
	CategoryTransport     TransactionCategory = "transport"
	CategoryEntertainment TransactionCategory = "entertainment"
	CategoryUtilities     TransactionCategory = "utilities"
	CategoryHealth        TransactionCategory = "health"
	CategoryEducation     TransactionCategory = "education"
	CategoryOther         TransactionCategory = "other"
)

// Categories lists every valid transaction category.
func Categories() []TransactionCategory {
	return []TransactionCategory{
		CategoryGroceries,
		CategoryTransport,
		CategoryEntertainment,
		CategoryUtilities,
		CategoryHealth,
		CategoryEducation,
		CategoryOther,
	}
}

// Valid reports whether c is a member of the closed category set.
func (c TransactionCategory) Valid() bool {
	switch c {
	case CategoryGroceries, CategoryTransport, CategoryEntertainment,
		CategoryUtilities, CategoryHealth, CategoryEducation, CategoryOther:
		return true
	}
	return false
}

// Transaction represents one recorded expense. Every transaction belongs
// to exactly one period, assigned at creation time.
type Transaction struct {
	Base
	UserID          string              `gorm:"type:uuid;not null;index" json:"user_id"`
	PeriodID        string              `gorm:"type:uuid;not null;index:idx_transactions_period_date" json:"period_id"`
	Description     string              `json:"description,omitempty"`
	AmountCents     int64               `gorm:"not null" json:"amount_cents"`
	Category        TransactionCategory `gorm:"not null" json:"category"`
	TransactionDate time.Time           `gorm:"not null;index:idx_transactions_period_date" json:"transaction_date"`

	Period Period `gorm:"foreignKey:PeriodID" json:"-"`
}
