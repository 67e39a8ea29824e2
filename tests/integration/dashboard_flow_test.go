package integration

import (
	"fmt"
	"net/http"
	"testing"
	"time"
)

// monthWindow returns the first and last day of the current month.
func monthWindow() (string, string) {
	now := time.Now()
	first := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
	last := first.AddDate(0, 1, -1)
	return first.Format("2006-01-02"), last.Format("2006-01-02")
}

func TestDashboardEmptyState(t *testing.T) {
	app := setupApp(t)
	accessToken, _, _ := app.registerUser(t, "ana@example.com", "password123")

	rec := app.request("GET", "/api/v1/dashboard", "", accessToken)
	if rec.Code != http.StatusOK {
		t.Fatalf("dashboard failed: %d %s", rec.Code, rec.Body.String())
	}

	result := parseJSON(t, rec)
	if result["period"] != nil {
		t.Errorf("expected null period, got %v", result["period"])
	}
	txns, ok := result["transactions"].([]interface{})
	if !ok {
		t.Fatalf("expected transactions array, got %v", result["transactions"])
	}
	if len(txns) != 0 {
		t.Errorf("expected no transactions, got %d", len(txns))
	}
}

func TestDashboardFullFlow(t *testing.T) {
	app := setupApp(t)
	accessToken, _, _ := app.registerUser(t, "ana@example.com", "password123")

	start, end := monthWindow()
	periodID := app.createPeriod(t, accessToken, "Este Mês", start, end, "300.00")

	// The period covering today is resolved as current.
	rec := app.request("GET", "/api/v1/periods/current", "", accessToken)
	if rec.Code != http.StatusOK {
		t.Fatalf("current period failed: %d %s", rec.Code, rec.Body.String())
	}
	current := parseJSON(t, rec)["period"].(map[string]interface{})
	if current["id"] != periodID {
		t.Fatalf("expected current period %s, got %v", periodID, current["id"])
	}

	// Record expenses without naming the period; they attach to the
	// active one.
	for _, txn := range []struct {
		amount   string
		category string
	}{
		{"150.75", "groceries"},
		{"85.40", "transport"},
		{"120.00", "utilities"},
	} {
		body := fmt.Sprintf(`{"amount":%q,"category":%q,"description":"gasto"}`, txn.amount, txn.category)
		rec := app.request("POST", "/api/v1/transactions", body, accessToken)
		if rec.Code != http.StatusCreated {
			t.Fatalf("create transaction failed: %d %s", rec.Code, rec.Body.String())
		}
	}

	// The dashboard composes the period, its transactions, and the sums.
	rec = app.request("GET", "/api/v1/dashboard", "", accessToken)
	if rec.Code != http.StatusOK {
		t.Fatalf("dashboard failed: %d %s", rec.Code, rec.Body.String())
	}
	result := parseJSON(t, rec)

	period := result["period"].(map[string]interface{})
	if period["id"] != periodID {
		t.Errorf("expected period %s, got %v", periodID, period["id"])
	}

	txns := result["transactions"].([]interface{})
	if len(txns) != 3 {
		t.Fatalf("expected 3 transactions, got %d", len(txns))
	}

	summary := result["summary"].(map[string]interface{})
	if summary["total_spent_cents"] != float64(35615) {
		t.Errorf("expected total 35615 cents, got %v", summary["total_spent_cents"])
	}
	if summary["goal_cents"] != float64(30000) {
		t.Errorf("expected goal 30000 cents, got %v", summary["goal_cents"])
	}
	if summary["over_budget"] != true {
		t.Error("expected over budget")
	}
}

func TestPeriodOverlapRejected(t *testing.T) {
	app := setupApp(t)
	accessToken, _, _ := app.registerUser(t, "ana@example.com", "password123")

	app.createPeriod(t, accessToken, "Março", "2025-03-01", "2025-03-31", "1000")

	rec := app.request("POST", "/api/v1/periods",
		`{"name":"Sobreposto","start_date":"2025-03-15","end_date":"2025-04-15","budget_goal":"500"}`,
		accessToken)
	if rec.Code != http.StatusConflict {
		t.Fatalf("expected 409 for overlapping period, got %d %s", rec.Code, rec.Body.String())
	}
}

func TestTransactionWithoutActivePeriod(t *testing.T) {
	app := setupApp(t)
	accessToken, _, _ := app.registerUser(t, "ana@example.com", "password123")

	// A period in the distant past does not cover today.
	app.createPeriod(t, accessToken, "Antigo", "2000-01-01", "2000-01-31", "1000")

	rec := app.request("POST", "/api/v1/transactions",
		`{"amount":"10.00","category":"other"}`, accessToken)
	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404 without an active period, got %d %s", rec.Code, rec.Body.String())
	}
}

func TestPeriodTransactionsAreUserScoped(t *testing.T) {
	app := setupApp(t)
	anaToken, _, _ := app.registerUser(t, "ana@example.com", "password123")
	leoToken, _, _ := app.registerUser(t, "leo@example.com", "password123")

	periodID := app.createPeriod(t, anaToken, "Março", "2025-03-01", "2025-03-31", "1000")

	// Leo cannot read Ana's period.
	rec := app.request("GET", "/api/v1/periods/"+periodID+"/transactions", "", leoToken)
	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404 for a foreign period, got %d", rec.Code)
	}

	// Nor record expenses into it.
	body := fmt.Sprintf(`{"period_id":%q,"amount":"10.00","category":"other"}`, periodID)
	rec = app.request("POST", "/api/v1/transactions", body, leoToken)
	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404 when writing to a foreign period, got %d", rec.Code)
	}
}

func TestMalformedAmountPersistsNothing(t *testing.T) {
	app := setupApp(t)
	accessToken, _, _ := app.registerUser(t, "ana@example.com", "password123")

	start, end := monthWindow()
	app.createPeriod(t, accessToken, "Este Mês", start, end, "300.00")

	rec := app.request("POST", "/api/v1/transactions",
		`{"amount":"abc","category":"groceries"}`, accessToken)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for malformed amount, got %d", rec.Code)
	}

	rec = app.request("GET", "/api/v1/transactions", "", accessToken)
	if rec.Code != http.StatusOK {
		t.Fatalf("list transactions failed: %d", rec.Code)
	}
	txns := parseJSON(t, rec)["transactions"].([]interface{})
	if len(txns) != 0 {
		t.Errorf("expected no persisted transactions, got %d", len(txns))
	}
}
