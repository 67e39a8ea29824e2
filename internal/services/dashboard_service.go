package services

import "cofrinho/internal/models"

// dashboardService composes the period resolver and transaction
// aggregator into the combined read path.
type dashboardService struct {
	periods      PeriodServicer
	transactions TransactionServicer
}

// NewDashboardService creates a new DashboardServicer.
func NewDashboardService(periods PeriodServicer, transactions TransactionServicer) DashboardServicer {
	return &dashboardService{periods: periods, transactions: transactions}
}

// FetchDashboardData resolves the active period for today and, when one
// exists, its transactions and summary figures. An absent active period
// short-circuits to an empty result.
func (s *dashboardService) FetchDashboardData(userID, today string) (*DashboardData, error) {
	period, err := s.periods.FindActivePeriod(userID, today)
	if err != nil {
		return nil, err
	}
	if period == nil {
		return &DashboardData{Period: nil, Transactions: []models.Transaction{}}, nil
	}

	txns, err := s.transactions.ListPeriodTransactions(userID, period.ID)
	if err != nil {
		return nil, err
	}

	total := TotalSpent(txns)
	return &DashboardData{
		Period:       period,
		Transactions: txns,
		Summary: &Summary{
			TotalSpentCents: total,
			GoalCents:       period.GoalCents,
			RemainingCents:  period.GoalCents - total,
			OverBudget:      IsOverBudget(total, period.GoalCents),
		},
	}, nil
}
