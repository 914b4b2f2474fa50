package advisor

import (
	"context"
	"fmt"
	"time"

	"fincoach/internal/cache"
	apperrors "fincoach/internal/errors"
	"fincoach/internal/market"
	"fincoach/internal/models"

	"go.uber.org/zap"
)

// Investment-horizon labels derived from 1-month volatility. The classifier
// is monotonic over volatility with strict `<` boundaries, so a value of
// exactly 0.01 or 0.02 lands in the higher bucket.
const (
	HorizonLongTerm  = "long-term"
	HorizonMidTerm   = "mid-term"
	HorizonShortTerm = "short-term/speculative"
	HorizonUnknown   = "unknown"
)

const (
	horizonMidBelow   = 0.01
	horizonShortBelow = 0.02
)

// opportunitiesTTL bounds external calls per dashboard load.
const opportunitiesTTL = 5 * time.Minute

// opportunityService maps a user's risk tier to a ticker set and scores each
// ticker.
type opportunityService struct {
	profiles   ProfileReader
	calculator *market.Calculator
	gateway    *market.Gateway
	cache      cache.Store
	tickers    map[models.RiskTolerance][]string
	base       string
	quote      string
	log        *zap.SugaredLogger
}

// NewOpportunityService creates an OpportunityServicer. tickers is the
// risk-tier table (policy data); base/quote name the FX pair used to derive
// local prices.
func NewOpportunityService(
	profiles ProfileReader,
	calculator *market.Calculator,
	gateway *market.Gateway,
	store cache.Store,
	tickers map[models.RiskTolerance][]string,
	base, quote string,
	log *zap.SugaredLogger,
) OpportunityServicer {
	return &opportunityService{
		profiles:   profiles,
		calculator: calculator,
		gateway:    gateway,
		cache:      store,
		tickers:    tickers,
		base:       base,
		quote:      quote,
		log:        log,
	}
}

// Opportunities returns one scored record per ticker in the user's risk
// tier, preserving the tier table's ticker order. A missing profile or an
// unrecognized tier yields a structured AppError, never a panic; market-data
// unavailability only leaves fields absent.
func (s *opportunityService) Opportunities(ctx context.Context, userID string) ([]market.Opportunity, error) {
	tier, err := s.profiles.RiskTolerance(userID)
	if err != nil {
		return nil, err
	}

	symbols, ok := s.tickers[tier]
	if !ok {
		return nil, apperrors.WithMessage(apperrors.ErrUnknownRiskTier,
			fmt.Sprintf("Unrecognized risk tolerance %q", tier))
	}

	key := fmt.Sprintf("opportunities:%s:%s", userID, tier)
	if v, ok := s.cache.Get(key); ok {
		if opportunities, ok := v.([]market.Opportunity); ok {
			return opportunities, nil
		}
	}

	fxRate := s.gateway.FXRate(ctx, s.base, s.quote)

	opportunities := make([]market.Opportunity, 0, len(symbols))
	for _, symbol := range symbols {
		opp := s.calculator.Compute(ctx, symbol, fxRate)
		opp.Horizon = horizonFor(opp.Volatility1M)
		opp.RiskLevel = string(tier)
		opportunities = append(opportunities, opp)
	}

	s.cache.Set(key, opportunities, opportunitiesTTL)
	s.log.Debugw("computed opportunities", "user_id", userID, "tier", tier, "count", len(opportunities))
	return opportunities, nil
}

// horizonFor classifies 1-month volatility into a holding-period label.
func horizonFor(volatility *float64) string {
	switch {
	case volatility == nil:
		return HorizonUnknown
	case *volatility < horizonMidBelow:
		return HorizonLongTerm
	case *volatility < horizonShortBelow:
		return HorizonMidTerm
	default:
		return HorizonShortTerm
	}
}
