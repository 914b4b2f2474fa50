package advisor

import (
	"context"
	"errors"

	apperrors "fincoach/internal/errors"
	"fincoach/internal/ledger"
	"fincoach/internal/market"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

// dailyExpenseWindow is the trailing window of the per-day expense series.
const dailyExpenseWindow = 30

// GoalProgress is one savings goal with its percent toward target.
type GoalProgress struct {
	ID      string          `json:"id"`
	Name    string          `json:"name"`
	Current decimal.Decimal `json:"current"`
	Target  decimal.Decimal `json:"target"`
	Percent decimal.Decimal `json:"percent"`
}

// Report is the consolidated advisory output handed to the presentation
// layer: plain strings and simple records, recomputed on every request.
type Report struct {
	Totals          ledger.Totals        `json:"totals"`
	Savings         string               `json:"savings"`
	Expense         string               `json:"expense"`
	Tax             string               `json:"tax"`
	Categories      []string             `json:"categories"`
	Opportunities   []market.Opportunity `json:"opportunities,omitempty"`
	OpportunityNote string               `json:"opportunity_note,omitempty"`
	Adaptive        string               `json:"adaptive"`
	Goals           []GoalProgress       `json:"goals,omitempty"`
	DailyExpenses   []ledger.DailyTotal  `json:"daily_expenses"`
}

// adviceService assembles the full report.
type adviceService struct {
	ledger          LedgerReader
	recommendations RecommendationServicer
	opportunities   OpportunityServicer
	log             *zap.SugaredLogger
}

// NewAdviceService creates an AdviceServicer.
func NewAdviceService(ledger LedgerReader, recommendations RecommendationServicer, opportunities OpportunityServicer, log *zap.SugaredLogger) AdviceServicer {
	return &adviceService{
		ledger:          ledger,
		recommendations: recommendations,
		opportunities:   opportunities,
		log:             log,
	}
}

// Report runs the four ratio advisors, the opportunity selector, and the
// adaptive composer for one user. Selector errors (missing profile, unknown
// tier) degrade to an informational note; only ledger faults fail the call.
func (s *adviceService) Report(ctx context.Context, userID string) (*Report, error) {
	totals, err := s.ledger.Totals(userID)
	if err != nil {
		return nil, err
	}

	report := &Report{Totals: totals}

	if report.Savings, err = s.recommendations.SavingsRecommendation(userID); err != nil {
		return nil, err
	}
	if report.Expense, err = s.recommendations.ExpenseRecommendation(userID); err != nil {
		return nil, err
	}
	if report.Tax, err = s.recommendations.TaxEstimate(userID); err != nil {
		return nil, err
	}
	if report.Categories, err = s.recommendations.CategoryExpenseRecommendations(userID); err != nil {
		return nil, err
	}

	opportunities, err := s.opportunities.Opportunities(ctx, userID)
	if err != nil {
		var appErr *apperrors.AppError
		if errors.As(err, &appErr) {
			report.OpportunityNote = appErr.Message
		} else {
			return nil, err
		}
	}
	report.Opportunities = opportunities

	report.Adaptive = Compose(totals.Income, totals.Expenses, totals.Savings, opportunities)

	goals, err := s.ledger.Goals(userID)
	if err != nil {
		return nil, err
	}
	for _, g := range goals {
		current := decimal.New(g.CurrentAmount, -2)
		target := decimal.New(g.TargetAmount, -2)
		percent := decimal.Zero
		if target.IsPositive() {
			percent = current.Div(target).Mul(decimal.NewFromInt(100)).Round(2)
		}
		report.Goals = append(report.Goals, GoalProgress{
			ID:      g.ID,
			Name:    g.Name,
			Current: current,
			Target:  target,
			Percent: percent,
		})
	}

	if report.DailyExpenses, err = s.ledger.DailyExpenses(userID, dailyExpenseWindow); err != nil {
		return nil, err
	}

	return report, nil
}
