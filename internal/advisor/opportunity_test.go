package advisor

import (
	"context"
	"sync"
	"testing"
	"time"

	"fincoach/internal/cache"
	"fincoach/internal/ledger"
	"fincoach/internal/logger"
	"fincoach/internal/market"
	"fincoach/internal/models"
	"fincoach/internal/testutil"
)

// fakeProvider serves the same close-price series for every request and
// counts history calls so tests can observe caching.
type fakeProvider struct {
	mu           sync.Mutex
	historyCalls int
	closes       []float64
}

func (p *fakeProvider) History(_ context.Context, symbol, _, _ string) (*market.Series, error) {
	p.mu.Lock()
	p.historyCalls++
	p.mu.Unlock()

	points := make([]market.Point, len(p.closes))
	base := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	for i, c := range p.closes {
		points[i] = market.Point{Time: base.AddDate(0, 0, i), Close: c}
	}
	return &market.Series{Symbol: symbol, Points: points}, nil
}

func (p *fakeProvider) Info(_ context.Context, symbol string) (*market.Info, error) {
	return &market.Info{Name: symbol + " Inc."}, nil
}

func (p *fakeProvider) calls() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.historyCalls
}

func newTestOpportunityService(t *testing.T, provider market.Provider, profiles ProfileReader, tickers map[models.RiskTolerance][]string) OpportunityServicer {
	t.Helper()

	store := cache.NewMemory()
	gateway := market.NewGateway(provider, store, logger.Nop())
	calculator := market.NewCalculator(gateway)
	return NewOpportunityService(profiles, calculator, gateway, store, tickers, "USD", "INR", logger.Nop())
}

func TestHorizonFor(t *testing.T) {
	tests := []struct {
		name       string
		volatility *float64
		expected   string
	}{
		{name: "nil volatility", volatility: nil, expected: HorizonUnknown},
		{name: "below the mid boundary", volatility: floatPtr(0.009), expected: HorizonLongTerm},
		{name: "exactly at the mid boundary", volatility: floatPtr(0.01), expected: HorizonMidTerm},
		{name: "just under the short boundary", volatility: floatPtr(0.0199), expected: HorizonMidTerm},
		{name: "exactly at the short boundary", volatility: floatPtr(0.02), expected: HorizonShortTerm},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := horizonFor(tt.volatility); got != tt.expected {
				t.Errorf("expected %q, got %q", tt.expected, got)
			}
		})
	}
}

func TestOpportunities(t *testing.T) {
	tickers := map[models.RiskTolerance][]string{
		models.RiskMedium: {"AAPL", "MSFT"},
		models.RiskHigh:   {"NVDA"},
	}
	closes := []float64{100, 101, 102, 100.5, 103, 104}

	t.Run("missing profile", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		service := newTestOpportunityService(t, &fakeProvider{closes: closes}, ledger.NewProfileStore(db), tickers)

		_, err := service.Opportunities(context.Background(), testutil.NewUserID())
		testutil.AssertAppError(t, err, "RISK_PROFILE_NOT_FOUND")
	})

	t.Run("unrecognized risk tier", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		service := newTestOpportunityService(t, &fakeProvider{closes: closes}, ledger.NewProfileStore(db), tickers)
		userID := testutil.NewUserID()
		testutil.CreateTestProfile(t, db, userID, models.RiskTolerance("reckless"))

		_, err := service.Opportunities(context.Background(), userID)
		testutil.AssertAppError(t, err, "UNKNOWN_RISK_TIER")
	})

	t.Run("one scored record per ticker in tier order", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		service := newTestOpportunityService(t, &fakeProvider{closes: closes}, ledger.NewProfileStore(db), tickers)
		userID := testutil.NewUserID()
		testutil.CreateTestProfile(t, db, userID, models.RiskMedium)

		opportunities, err := service.Opportunities(context.Background(), userID)
		testutil.AssertNoError(t, err)
		if len(opportunities) != 2 {
			t.Fatalf("expected 2 opportunities, got %d", len(opportunities))
		}

		for i, symbol := range tickers[models.RiskMedium] {
			opp := opportunities[i]
			if opp.Symbol != symbol {
				t.Errorf("expected symbol %q at position %d, got %q", symbol, i, opp.Symbol)
			}
			if opp.Name != symbol+" Inc." {
				t.Errorf("expected provider name for %s, got %q", symbol, opp.Name)
			}
			if opp.RiskLevel != string(models.RiskMedium) {
				t.Errorf("expected risk level %q, got %q", models.RiskMedium, opp.RiskLevel)
			}
			if opp.Horizon == "" || opp.Horizon == HorizonUnknown {
				t.Errorf("expected a classified horizon for %s, got %q", symbol, opp.Horizon)
			}
			if opp.Volatility1M == nil {
				t.Errorf("expected volatility for %s", symbol)
			}
		}
	})

	t.Run("second call is served from cache", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		provider := &fakeProvider{closes: closes}
		service := newTestOpportunityService(t, provider, ledger.NewProfileStore(db), tickers)
		userID := testutil.NewUserID()
		testutil.CreateTestProfile(t, db, userID, models.RiskMedium)

		first, err := service.Opportunities(context.Background(), userID)
		testutil.AssertNoError(t, err)
		callsAfterFirst := provider.calls()

		second, err := service.Opportunities(context.Background(), userID)
		testutil.AssertNoError(t, err)
		if provider.calls() != callsAfterFirst {
			t.Errorf("expected no further provider calls, got %d extra", provider.calls()-callsAfterFirst)
		}
		if len(second) != len(first) {
			t.Errorf("expected cached result of %d records, got %d", len(first), len(second))
		}
	})

	t.Run("cache is keyed per user", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		service := newTestOpportunityService(t, &fakeProvider{closes: closes}, ledger.NewProfileStore(db), tickers)

		mediumUser := testutil.NewUserID()
		highUser := testutil.NewUserID()
		testutil.CreateTestProfile(t, db, mediumUser, models.RiskMedium)
		testutil.CreateTestProfile(t, db, highUser, models.RiskHigh)

		if _, err := service.Opportunities(context.Background(), mediumUser); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		opportunities, err := service.Opportunities(context.Background(), highUser)
		testutil.AssertNoError(t, err)
		if len(opportunities) != 1 || opportunities[0].Symbol != "NVDA" {
			t.Errorf("expected the high-tier ticker set, got %+v", opportunities)
		}
	})
}
