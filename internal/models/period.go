package models

// Period represents one budgeting interval for one user.
//
// Start and end dates are inclusive ISO calendar dates ("2006-01-02").
// ISO date strings order correctly both lexicographically and under SQL
// string comparison, so the active-period window query works unchanged
// on either backend.
type Period struct {
	Base
	UserID    string `gorm:"type:uuid;not null;index:idx_periods_window" json:"user_id"`
	Name      string `gorm:"not null" json:"name"`
	StartDate string `gorm:"size:10;not null;index:idx_periods_window" json:"start_date"`
	EndDate   string `gorm:"size:10;not null;index:idx_periods_window" json:"end_date"`
	GoalCents int64  `gorm:"not null" json:"goal_cents"`

	Transactions []Transaction `gorm:"foreignKey:PeriodID" json:"transactions,omitempty"`
}
