package testutil

import (
	"testing"
	"time"

	"fincoach/internal/models"
	"fincoach/internal/uuid"

	"gorm.io/gorm"
)

// NewUserID returns a fresh user identifier. Users themselves live in the
// excluded application; the advisory core only needs their id.
func NewUserID() string {
	return uuid.New()
}

// Paise converts a rupee amount into minor units for fixture amounts.
func Paise(rupees int64) int64 {
	return rupees * 100
}

// CreateTestCategory inserts a category.
func CreateTestCategory(t *testing.T, db *gorm.DB, name string) *models.Category {
	t.Helper()

	category := &models.Category{Name: name}
	if err := db.Create(category).Error; err != nil {
		t.Fatalf("failed to create test category: %v", err)
	}
	return category
}

// CreateTestTransaction inserts a transaction dated today.
func CreateTestTransaction(t *testing.T, db *gorm.DB, userID string, transactionType models.TransactionType, amount int64, categoryID *string) *models.Transaction {
	t.Helper()

	transaction := &models.Transaction{
		UserID:     userID,
		CategoryID: categoryID,
		Type:       transactionType,
		Amount:     amount,
		Date:       time.Now(),
	}
	if err := db.Create(transaction).Error; err != nil {
		t.Fatalf("failed to create test transaction: %v", err)
	}
	return transaction
}

// CreateTestProfile inserts a user profile with the given risk tolerance.
func CreateTestProfile(t *testing.T, db *gorm.DB, userID string, tolerance models.RiskTolerance) *models.UserProfile {
	t.Helper()

	profile := &models.UserProfile{UserID: userID, RiskTolerance: tolerance}
	if err := db.Create(profile).Error; err != nil {
		t.Fatalf("failed to create test profile: %v", err)
	}
	return profile
}

// CreateTestGoal inserts a savings goal.
func CreateTestGoal(t *testing.T, db *gorm.DB, userID, name string, target, current int64) *models.Goal {
	t.Helper()

	goal := &models.Goal{
		UserID:        userID,
		Name:          name,
		TargetAmount:  target,
		CurrentAmount: current,
	}
	if err := db.Create(goal).Error; err != nil {
		t.Fatalf("failed to create test goal: %v", err)
	}
	return goal
}
