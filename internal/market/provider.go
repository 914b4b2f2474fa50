// Package market fetches, caches, and scores external market data. The
// upstream provider is treated as unreliable: every call site tolerates
// total unavailability, because investment advisory is a non-critical
// enhancement that must never fail the surrounding request.
package market

import (
	"context"
	"time"
)

// Point is one (timestamp, close price) observation.
type Point struct {
	Time  time.Time `json:"time"`
	Close float64   `json:"close"`
}

// Series is an ordered close-price history for a symbol over a requested
// range/interval. It is never mutated after creation.
type Series struct {
	Symbol string  `json:"symbol"`
	Points []Point `json:"points"`
}

// Closes returns the close prices in series order.
func (s *Series) Closes() []float64 {
	closes := make([]float64, len(s.Points))
	for i, p := range s.Points {
		closes[i] = p.Close
	}
	return closes
}

// LastClose returns the most recent close, if the series has any points.
func (s *Series) LastClose() (float64, bool) {
	if len(s.Points) == 0 {
		return 0, false
	}
	return s.Points[len(s.Points)-1].Close, true
}

// Info holds descriptive data for a symbol. DividendYield is a fraction
// (0.05 = 5%) and nil when the provider does not report one.
type Info struct {
	Name          string   `json:"name"`
	DividendYield *float64 `json:"dividend_yield,omitempty"`
}

// Provider is the external market-data source. Implementations return an
// error for any failure mode (network, empty payload, malformed body);
// translating failures into fallbacks is the gateway's job, not theirs.
type Provider interface {
	History(ctx context.Context, symbol, rng, interval string) (*Series, error)
	Info(ctx context.Context, symbol string) (*Info, error)
}
