// Package ledger provides read-only aggregation over the transaction ledger.
// The advisory core consumes sums, never rows; writes belong to the
// surrounding finance application.
package ledger

import (
	"time"

	apperrors "fincoach/internal/errors"
	"fincoach/internal/models"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// CategoryTotal is a per-category expense sum in rupees. Aggregation order is
// not semantically significant.
type CategoryTotal struct {
	Category string          `json:"category"`
	Total    decimal.Decimal `json:"total"`
}

// Totals holds a user's transaction sums by type, in rupees. Missing types
// aggregate to zero, not absent. Net follows income - (expenses + savings).
type Totals struct {
	Income     decimal.Decimal `json:"income"`
	Expenses   decimal.Decimal `json:"expenses"`
	Savings    decimal.Decimal `json:"savings"`
	Investment decimal.Decimal `json:"investment"`
	Net        decimal.Decimal `json:"net"`
}

// DailyTotal is one day's expense sum in rupees.
type DailyTotal struct {
	Date  string          `json:"date"`
	Total decimal.Decimal `json:"total"`
}

// Store aggregates a user's transactions.
type Store struct {
	db *gorm.DB
}

// NewStore creates a ledger store over db.
func NewStore(db *gorm.DB) *Store {
	return &Store{db: db}
}

// rupees converts a minor-unit sum into a decimal rupee amount.
func rupees(paise int64) decimal.Decimal {
	return decimal.New(paise, -2)
}

// TotalByType sums a user's transactions of the given type. Zero when no
// rows match.
func (s *Store) TotalByType(userID string, t models.TransactionType) (decimal.Decimal, error) {
	var total int64
	err := s.db.Model(&models.Transaction{}).
		Select("COALESCE(SUM(amount), 0)").
		Where("user_id = ? AND type = ?", userID, t).
		Scan(&total).Error
	if err != nil {
		return decimal.Zero, apperrors.Wrap(apperrors.ErrInternal, err)
	}
	return rupees(total), nil
}

// Totals sums a user's transactions grouped by type in a single query.
func (s *Store) Totals(userID string) (Totals, error) {
	type row struct {
		Type  models.TransactionType
		Total int64
	}
	var rows []row
	err := s.db.Model(&models.Transaction{}).
		Select("type, COALESCE(SUM(amount), 0) AS total").
		Where("user_id = ?", userID).
		Group("type").
		Scan(&rows).Error
	if err != nil {
		return Totals{}, apperrors.Wrap(apperrors.ErrInternal, err)
	}

	totals := Totals{
		Income:     decimal.Zero,
		Expenses:   decimal.Zero,
		Savings:    decimal.Zero,
		Investment: decimal.Zero,
	}
	for _, r := range rows {
		switch r.Type {
		case models.TransactionTypeIncome:
			totals.Income = rupees(r.Total)
		case models.TransactionTypeExpense:
			totals.Expenses = rupees(r.Total)
		case models.TransactionTypeSavings:
			totals.Savings = rupees(r.Total)
		case models.TransactionTypeInvestment:
			totals.Investment = rupees(r.Total)
		}
	}
	totals.Net = totals.Income.Sub(totals.Expenses.Add(totals.Savings))
	return totals, nil
}

// ExpenseTotalsByCategory sums a user's expenses grouped by category name.
// Expenses without a category land under "Uncategorized".
func (s *Store) ExpenseTotalsByCategory(userID string) ([]CategoryTotal, error) {
	type row struct {
		Name  string
		Total int64
	}
	var rows []row
	err := s.db.Model(&models.Transaction{}).
		Select("COALESCE(categories.name, 'Uncategorized') AS name, COALESCE(SUM(transactions.amount), 0) AS total").
		Joins("LEFT JOIN categories ON categories.id = transactions.category_id").
		Where("transactions.user_id = ? AND transactions.type = ?", userID, models.TransactionTypeExpense).
		Group("categories.name").
		Scan(&rows).Error
	if err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternal, err)
	}

	totals := make([]CategoryTotal, 0, len(rows))
	for _, r := range rows {
		totals = append(totals, CategoryTotal{Category: r.Name, Total: rupees(r.Total)})
	}
	return totals, nil
}

// DailyExpenses returns one entry per day for the trailing window ending
// today, oldest first, with zero totals for days without expenses. Bucketing
// happens in Go so the query stays portable across sqlite and postgres.
func (s *Store) DailyExpenses(userID string, days int) ([]DailyTotal, error) {
	now := time.Now()
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	start := today.AddDate(0, 0, -(days - 1))

	type row struct {
		Date   time.Time
		Amount int64
	}
	var rows []row
	err := s.db.Model(&models.Transaction{}).
		Select("date, amount").
		Where("user_id = ? AND type = ? AND date >= ?", userID, models.TransactionTypeExpense, start).
		Scan(&rows).Error
	if err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternal, err)
	}

	byDay := make(map[string]int64, len(rows))
	for _, r := range rows {
		byDay[r.Date.Format("2006-01-02")] += r.Amount
	}

	result := make([]DailyTotal, 0, days)
	for i := days - 1; i >= 0; i-- {
		day := today.AddDate(0, 0, -i)
		key := day.Format("2006-01-02")
		result = append(result, DailyTotal{
			Date:  key,
			Total: rupees(byDay[key]),
		})
	}
	return result, nil
}

// Goals returns the user's savings goals.
func (s *Store) Goals(userID string) ([]models.Goal, error) {
	var goals []models.Goal
	if err := s.db.Where("user_id = ?", userID).Find(&goals).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternal, err)
	}
	return goals, nil
}
