package advisor

import (
	"context"

	"fincoach/internal/ledger"
	"fincoach/internal/market"
	"fincoach/internal/models"

	"github.com/shopspring/decimal"
)

// LedgerReader is the read contract the advisors need from the transaction
// ledger. Sums are zero, not absent, when no rows match.
type LedgerReader interface {
	TotalByType(userID string, t models.TransactionType) (decimal.Decimal, error)
	Totals(userID string) (ledger.Totals, error)
	ExpenseTotalsByCategory(userID string) ([]ledger.CategoryTotal, error)
	DailyExpenses(userID string, days int) ([]ledger.DailyTotal, error)
	Goals(userID string) ([]models.Goal, error)
}

// ProfileReader resolves a user's declared risk tolerance.
type ProfileReader interface {
	RiskTolerance(userID string) (models.RiskTolerance, error)
}

// RecommendationServicer derives rule-based textual advice from a user's
// transaction aggregates.
type RecommendationServicer interface {
	SavingsRecommendation(userID string) (string, error)
	ExpenseRecommendation(userID string) (string, error)
	TaxEstimate(userID string) (string, error)
	CategoryExpenseRecommendations(userID string) ([]string, error)
}

// OpportunityServicer produces scored investment suggestions for a user's
// risk profile.
type OpportunityServicer interface {
	Opportunities(ctx context.Context, userID string) ([]market.Opportunity, error)
}

// AdviceServicer assembles the consolidated advisory report.
type AdviceServicer interface {
	Report(ctx context.Context, userID string) (*Report, error)
}
