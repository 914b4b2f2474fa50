// Package advisor derives rule-based financial recommendations and
// market-driven investment suggestions. Every public function degrades to an
// informative message on data absence; only infrastructure faults surface as
// errors.
package advisor

import (
	"fmt"

	"fincoach/internal/models"

	"github.com/shopspring/decimal"
)

// No-data messages. Data absence is informational, never an error.
const (
	MsgNoIncomeSavings = "You have no income recorded. Please add your income to get savings recommendations."
	MsgNoIncomeExpense = "You have no income recorded. Please add your income to get expense recommendations."
	MsgNoIncomeTax     = "You have no income recorded. Please add your income to get tax recommendations."
	MsgNoExpenses      = "No expenses recorded yet."
)

// Savings-ratio brackets, worst to best. Boundaries are strict: a ratio of
// exactly 10, 20, or 30 lands in the higher bracket.
var savingsMessages = []struct {
	below   decimal.Decimal
	message string
}{
	{decimal.NewFromInt(10), "Your savings ratio is below 10%. Consider increasing your savings to improve your financial health."},
	{decimal.NewFromInt(20), "Your savings ratio is between 10% and 20%. This is a good start, but you can aim for a higher savings rate."},
	{decimal.NewFromInt(30), "Your savings ratio is between 20% and 30%. You're doing well, but there's room for improvement."},
}

const savingsMessageBest = "Great job! Your savings ratio is above 30%. Keep up the good work!"

// Expense-ratio brackets, most alarming first, checked in descending order so
// only the highest matched threshold fires.
var expenseMessages = []struct {
	above   decimal.Decimal
	message string
}{
	{decimal.NewFromInt(90), "⚠️ Your expenses are above 90% of your income. Try reducing discretionary spending."},
	{decimal.NewFromInt(70), "Your expenses are a bit high (70–90% of income). Consider saving more aggressively."},
	{decimal.NewFromInt(50), "Balanced spending. Aim to keep expenses under 50% for better savings."},
}

const expenseMessageBest = "Great job! Your expenses are well under control."

// taxSlab is one row of the progressive bracket table: income at or below
// Ceiling is taxed Base (tax accrued on the slices below Floor) plus Rate on
// the slice above Floor.
type taxSlab struct {
	ceiling   decimal.Decimal
	unbounded bool
	floor     decimal.Decimal
	rate      decimal.Decimal
	base      decimal.Decimal
	label     string
}

// taxSlabs is the documented bracket table: 0% up to ₹2.5L, 5% to ₹5L,
// 20% to ₹10L, 30% above.
var taxSlabs = []taxSlab{
	{ceiling: rupeesInt(250000), floor: decimal.Zero, rate: decimal.Zero, base: decimal.Zero, label: "No Tax Slab"},
	{ceiling: rupeesInt(500000), floor: rupeesInt(250000), rate: decimal.NewFromFloat(0.05), base: decimal.Zero, label: "5% Slab"},
	{ceiling: rupeesInt(1000000), floor: rupeesInt(500000), rate: decimal.NewFromFloat(0.20), base: rupeesInt(12500), label: "20% Slab"},
	{unbounded: true, floor: rupeesInt(1000000), rate: decimal.NewFromFloat(0.30), base: rupeesInt(112500), label: "30% Slab"},
}

// Section-87A-style rebate: income at or below the ceiling reduces computed
// tax by min(tax, cap).
var (
	taxRebateCeiling = rupeesInt(500000)
	taxRebateCap     = rupeesInt(12500)
)

func rupeesInt(n int64) decimal.Decimal {
	return decimal.NewFromInt(n)
}

// recommendationService derives ratio-based advice from ledger aggregates.
type recommendationService struct {
	ledger LedgerReader
}

// NewRecommendationService creates a RecommendationServicer over the ledger.
func NewRecommendationService(ledger LedgerReader) RecommendationServicer {
	return &recommendationService{ledger: ledger}
}

// ratio returns part/whole*100. Callers guarantee whole is non-zero.
func ratio(part, whole decimal.Decimal) decimal.Decimal {
	return part.Div(whole).Mul(decimal.NewFromInt(100))
}

// SavingsRecommendation maps the savings/income ratio onto four escalating
// messages.
func (s *recommendationService) SavingsRecommendation(userID string) (string, error) {
	income, err := s.ledger.TotalByType(userID, models.TransactionTypeIncome)
	if err != nil {
		return "", err
	}
	if income.IsZero() {
		return MsgNoIncomeSavings, nil
	}

	savings, err := s.ledger.TotalByType(userID, models.TransactionTypeSavings)
	if err != nil {
		return "", err
	}

	savingRatio := ratio(savings, income)
	for _, bracket := range savingsMessages {
		if savingRatio.LessThan(bracket.below) {
			return bracket.message, nil
		}
	}
	return savingsMessageBest, nil
}

// ExpenseRecommendation maps the expense/income ratio onto four messages,
// most alarming threshold first.
func (s *recommendationService) ExpenseRecommendation(userID string) (string, error) {
	income, err := s.ledger.TotalByType(userID, models.TransactionTypeIncome)
	if err != nil {
		return "", err
	}
	if income.IsZero() {
		return MsgNoIncomeExpense, nil
	}

	expenses, err := s.ledger.TotalByType(userID, models.TransactionTypeExpense)
	if err != nil {
		return "", err
	}

	expenseRatio := ratio(expenses, income)
	for _, bracket := range expenseMessages {
		if expenseRatio.GreaterThan(bracket.above) {
			return bracket.message, nil
		}
	}
	return expenseMessageBest, nil
}

// TaxEstimate computes the progressive tax on total income from the slab
// table, applies the rebate when eligible, and names what applied.
func (s *recommendationService) TaxEstimate(userID string) (string, error) {
	income, err := s.ledger.TotalByType(userID, models.TransactionTypeIncome)
	if err != nil {
		return "", err
	}
	if income.IsZero() {
		return MsgNoIncomeTax, nil
	}

	slab := taxSlabs[len(taxSlabs)-1]
	for _, candidate := range taxSlabs {
		if candidate.unbounded || income.LessThanOrEqual(candidate.ceiling) {
			slab = candidate
			break
		}
	}
	tax := slab.base.Add(income.Sub(slab.floor).Mul(slab.rate))

	rebate := decimal.Zero
	if income.LessThanOrEqual(taxRebateCeiling) {
		rebate = decimal.Min(tax, taxRebateCap)
		tax = tax.Sub(rebate)
	}

	switch {
	case tax.IsZero() && rebate.IsZero():
		return "No tax liability (Income ≤ ₹2.5L).", nil
	case tax.IsZero():
		return fmt.Sprintf("No tax liability after ₹%s rebate (%s).", rebate.StringFixed(2), slab.label), nil
	case rebate.IsPositive():
		return fmt.Sprintf("Estimated Tax: ₹%s after ₹%s rebate (%s).", tax.StringFixed(2), rebate.StringFixed(2), slab.label), nil
	default:
		return fmt.Sprintf("Estimated Tax: ₹%s (%s).", tax.StringFixed(2), slab.label), nil
	}
}

// CategoryExpenseRecommendations thresholds each expense category's share of
// income independently: >25% warns, >15% suggests monitoring, anything else
// is fine. One message per category, in aggregation order.
func (s *recommendationService) CategoryExpenseRecommendations(userID string) ([]string, error) {
	income, err := s.ledger.TotalByType(userID, models.TransactionTypeIncome)
	if err != nil {
		return nil, err
	}
	if income.IsZero() {
		return []string{MsgNoIncomeExpense}, nil
	}

	categories, err := s.ledger.ExpenseTotalsByCategory(userID)
	if err != nil {
		return nil, err
	}
	if len(categories) == 0 {
		return []string{MsgNoExpenses}, nil
	}

	warnAt := decimal.NewFromInt(25)
	monitorAt := decimal.NewFromInt(15)

	recommendations := make([]string, 0, len(categories))
	for _, c := range categories {
		categoryRatio := ratio(c.Total, income)
		pct := fmt.Sprintf("%.0f", categoryRatio.InexactFloat64())
		switch {
		case categoryRatio.GreaterThan(warnAt):
			recommendations = append(recommendations,
				fmt.Sprintf("⚠️ You spend %s%% of your income on %s. Consider reducing to ≤25%%.", pct, c.Category))
		case categoryRatio.GreaterThan(monitorAt):
			recommendations = append(recommendations,
				fmt.Sprintf("Your spending on %s is %s%% of income. Monitor it closely.", c.Category, pct))
		default:
			recommendations = append(recommendations,
				fmt.Sprintf("Good! Spending on %s is %s%% of your income.", c.Category, pct))
		}
	}
	return recommendations, nil
}
