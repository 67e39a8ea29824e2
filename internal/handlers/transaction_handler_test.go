package handlers

import (
	"context"
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"

	apperrors "cofrinho/internal/errors"
	"cofrinho/internal/models"
	"cofrinho/internal/services"
)

type mockTransactionService struct {
	createTransactionFn      func(ctx context.Context, userID string, in services.CreateTransactionInput) (*models.Transaction, error)
	listPeriodTransactionsFn func(userID, periodID string) ([]models.Transaction, error)
	listUserTransactionsFn   func(userID string) ([]models.Transaction, error)
}

func (m *mockTransactionService) CreateTransaction(ctx context.Context, userID string, in services.CreateTransactionInput) (*models.Transaction, error) {
	if m.createTransactionFn != nil {
		return m.createTransactionFn(ctx, userID, in)
	}
	return &models.Transaction{}, nil
}

func (m *mockTransactionService) ListPeriodTransactions(userID, periodID string) ([]models.Transaction, error) {
	if m.listPeriodTransactionsFn != nil {
		return m.listPeriodTransactionsFn(userID, periodID)
	}
	return nil, nil
}

func (m *mockTransactionService) ListUserTransactions(userID string) ([]models.Transaction, error) {
	if m.listUserTransactionsFn != nil {
		return m.listUserTransactionsFn(userID)
	}
	return nil, nil
}

func setupTransactionRouter(handler *TransactionHandler) *gin.Engine {
	r := gin.New()
	r.POST("/transactions", injectUserID(testUserID), handler.CreateTransaction)
	r.GET("/transactions", injectUserID(testUserID), handler.GetUserTransactions)
	r.GET("/periods/:id/transactions", injectUserID(testUserID), handler.GetPeriodTransactions)
	return r
}

func TestTransactionHandler_CreateTransaction(t *testing.T) {
	t.Run("returns 201 on success", func(t *testing.T) {
		svc := &mockTransactionService{
			createTransactionFn: func(_ context.Context, userID string, in services.CreateTransactionInput) (*models.Transaction, error) {
				return &models.Transaction{
					UserID:      userID,
					Description: in.Description,
					AmountCents: 15075,
					Category:    models.TransactionCategory(in.Category),
				}, nil
			},
		}
		handler := NewTransactionHandler(svc)
		r := setupTransactionRouter(handler)

		rec := doRequest(r, "POST", "/transactions",
			`{"description":"Feira","amount":"150.75","category":"groceries"}`)

		if rec.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d: %s", rec.Code, rec.Body.String())
		}
		result := parseJSON(t, rec)
		txn := result["transaction"].(map[string]interface{})
		if txn["amount_cents"] != float64(15075) {
			t.Errorf("expected 15075 cents, got %v", txn["amount_cents"])
		}
	})

	t.Run("returns 400 on unknown category", func(t *testing.T) {
		handler := NewTransactionHandler(&mockTransactionService{})
		r := setupTransactionRouter(handler)

		rec := doRequest(r, "POST", "/transactions",
			`{"amount":"10","category":"crypto"}`)

		if rec.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", rec.Code)
		}
	})

	t.Run("returns 400 on missing amount", func(t *testing.T) {
		handler := NewTransactionHandler(&mockTransactionService{})
		r := setupTransactionRouter(handler)

		rec := doRequest(r, "POST", "/transactions", `{"category":"groceries"}`)

		if rec.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", rec.Code)
		}
	})

	t.Run("returns 400 on invalid amount from service", func(t *testing.T) {
		svc := &mockTransactionService{
			createTransactionFn: func(_ context.Context, _ string, _ services.CreateTransactionInput) (*models.Transaction, error) {
				return nil, apperrors.ErrInvalidAmount
			},
		}
		handler := NewTransactionHandler(svc)
		r := setupTransactionRouter(handler)

		rec := doRequest(r, "POST", "/transactions",
			`{"amount":"abc","category":"groceries"}`)

		if rec.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", rec.Code)
		}
		assertErrorCode(t, parseJSON(t, rec), "INVALID_AMOUNT")
	})

	t.Run("returns 404 when no period is active", func(t *testing.T) {
		svc := &mockTransactionService{
			createTransactionFn: func(_ context.Context, _ string, _ services.CreateTransactionInput) (*models.Transaction, error) {
				return nil, apperrors.ErrNoActivePeriod
			},
		}
		handler := NewTransactionHandler(svc)
		r := setupTransactionRouter(handler)

		rec := doRequest(r, "POST", "/transactions",
			`{"amount":"10","category":"groceries"}`)

		if rec.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", rec.Code)
		}
		assertErrorCode(t, parseJSON(t, rec), "NO_ACTIVE_PERIOD")
	})
}

func TestTransactionHandler_GetUserTransactions(t *testing.T) {
	t.Run("returns the user's transactions", func(t *testing.T) {
		svc := &mockTransactionService{
			listUserTransactionsFn: func(userID string) ([]models.Transaction, error) {
				return []models.Transaction{
					{UserID: userID, AmountCents: 1000},
					{UserID: userID, AmountCents: 2000},
				}, nil
			},
		}
		handler := NewTransactionHandler(svc)
		r := setupTransactionRouter(handler)

		rec := doRequest(r, "GET", "/transactions", "")

		if rec.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", rec.Code)
		}
		result := parseJSON(t, rec)
		txns := result["transactions"].([]interface{})
		if len(txns) != 2 {
			t.Errorf("expected 2 transactions, got %d", len(txns))
		}
	})
}

func TestTransactionHandler_GetPeriodTransactions(t *testing.T) {
	t.Run("passes the period ID through", func(t *testing.T) {
		var gotPeriodID string
		svc := &mockTransactionService{
			listPeriodTransactionsFn: func(_, periodID string) ([]models.Transaction, error) {
				gotPeriodID = periodID
				return []models.Transaction{}, nil
			},
		}
		handler := NewTransactionHandler(svc)
		r := setupTransactionRouter(handler)

		rec := doRequest(r, "GET", "/periods/abc-123/transactions", "")

		if rec.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", rec.Code)
		}
		if gotPeriodID != "abc-123" {
			t.Errorf("expected period ID abc-123, got %s", gotPeriodID)
		}
	})

	t.Run("returns 404 for a foreign period", func(t *testing.T) {
		svc := &mockTransactionService{
			listPeriodTransactionsFn: func(_, _ string) ([]models.Transaction, error) {
				return nil, apperrors.ErrPeriodNotFound
			},
		}
		handler := NewTransactionHandler(svc)
		r := setupTransactionRouter(handler)

		rec := doRequest(r, "GET", "/periods/abc-123/transactions", "")

		if rec.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", rec.Code)
		}
	})
}
