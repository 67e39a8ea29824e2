package testutil

import (
	"fmt"
	"sync/atomic"
	"testing"
	"time"

	"cofrinho/internal/models"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// counter provides unique values across fixtures within a test run.
var counter atomic.Int64

func nextID() int64 {
	return counter.Add(1)
}

// CreateTestUser creates a password user with a hashed password and unique email.
func CreateTestUser(t *testing.T, db *gorm.DB) *models.User {
	t.Helper()
	email := fmt.Sprintf("user%d@test.com", nextID())
	return CreateTestUserWithEmail(t, db, email)
}

// CreateTestUserWithEmail creates a password user with the given email.
func CreateTestUserWithEmail(t *testing.T, db *gorm.DB, email string) *models.User {
	t.Helper()

	hash, err := bcrypt.GenerateFromPassword([]byte("password123"), bcrypt.MinCost)
	if err != nil {
		t.Fatalf("failed to hash password: %v", err)
	}

	user := &models.User{
		Email:    email,
		Password: string(hash),
		Provider: models.AuthProviderPassword,
	}
	if err := db.Create(user).Error; err != nil {
		t.Fatalf("failed to create test user: %v", err)
	}
	return user
}

// CreateTestPeriod creates a period with the given inclusive date window
// and goal in cents.
func CreateTestPeriod(t *testing.T, db *gorm.DB, userID, startDate, endDate string, goalCents int64) *models.Period {
	t.Helper()

	period := &models.Period{
		UserID:    userID,
		Name:      fmt.Sprintf("Period %d", nextID()),
		StartDate: startDate,
		EndDate:   endDate,
		GoalCents: goalCents,
	}
	if err := db.Create(period).Error; err != nil {
		t.Fatalf("failed to create test period: %v", err)
	}
	return period
}

// CreateTestTransaction records an expense in the given period.
func CreateTestTransaction(t *testing.T, db *gorm.DB, userID, periodID string, amountCents int64, category models.TransactionCategory) *models.Transaction {
	t.Helper()

	txn := &models.Transaction{
		UserID:          userID,
		PeriodID:        periodID,
		Description:     fmt.Sprintf("expense %d", nextID()),
		AmountCents:     amountCents,
		Category:        category,
		TransactionDate: time.Now(),
	}
	if err := db.Create(txn).Error; err != nil {
		t.Fatalf("failed to create test transaction: %v", err)
	}
	return txn
}
