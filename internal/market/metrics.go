package market

import (
	"context"
	"math"
)

// Trend labels assigned by comparing the latest close against the recent
// intraday mean.
const (
	TrendUp   = "uptrend"
	TrendDown = "downtrend"
)

// Opportunity is one ticker's computed advisory snapshot. Pointer fields are
// optional: absence (nil) is a valid, reportable state, not an error. All
// numeric fields are fractions (0.05 = 5%); formatting as percentages is a
// presentation concern.
type Opportunity struct {
	Symbol        string   `json:"symbol"`
	Name          string   `json:"name"`
	PriceUSD      *float64 `json:"price_usd,omitempty"`
	PriceINR      *float64 `json:"price_inr,omitempty"`
	Return1M      *float64 `json:"return_1m,omitempty"`
	Return1Y      *float64 `json:"return_1y,omitempty"`
	Volatility1M  *float64 `json:"volatility_1m,omitempty"`
	Trend         string   `json:"trend,omitempty"`
	DividendYield *float64 `json:"dividend_yield,omitempty"`
	Horizon       string   `json:"horizon,omitempty"`
	RiskLevel     string   `json:"risk_level,omitempty"`
}

// Calculator derives per-ticker metrics from gateway series. Each sub-metric
// is independently fault tolerant: a failed series fetch leaves its fields
// nil and never blocks the others.
type Calculator struct {
	gateway *Gateway
}

// NewCalculator creates a Calculator over the given gateway.
func NewCalculator(gateway *Gateway) *Calculator {
	return &Calculator{gateway: gateway}
}

// Compute builds the advisory snapshot for symbol. PriceINR is derived from
// PriceUSD and fxRate, rounded to 2 decimals, and is never stored
// independently of its inputs.
func (c *Calculator) Compute(ctx context.Context, symbol string, fxRate float64) Opportunity {
	opp := Opportunity{Symbol: symbol, Name: symbol}

	if daily := c.gateway.History(ctx, symbol, "1d", "1d"); daily != nil {
		if last, ok := daily.LastClose(); ok {
			inr := round2(last * fxRate)
			opp.PriceUSD = &last
			opp.PriceINR = &inr
		}
	}

	if monthly := c.gateway.History(ctx, symbol, "1mo", "1d"); monthly != nil {
		closes := monthly.Closes()
		if r, ok := periodReturn(closes); ok {
			opp.Return1M = &r
		}
		// Volatility needs more than 5 observations; with fewer, absent
		// is the honest answer, not zero.
		if len(closes) > 5 {
			changes := make([]float64, 0, len(closes)-1)
			for i := 1; i < len(closes); i++ {
				if closes[i-1] != 0 {
					changes = append(changes, closes[i]/closes[i-1]-1)
				}
			}
			if len(changes) >= 2 {
				sd := sampleStdDev(changes)
				opp.Volatility1M = &sd
			}
		}
	}

	if yearly := c.gateway.History(ctx, symbol, "1y", "1d"); yearly != nil {
		if r, ok := periodReturn(yearly.Closes()); ok {
			opp.Return1Y = &r
		}
	}

	if hourly := c.gateway.History(ctx, symbol, "5d", "1h"); hourly != nil {
		closes := hourly.Closes()
		if len(closes) > 0 {
			if closes[len(closes)-1] > mean(closes) {
				opp.Trend = TrendUp
			} else {
				opp.Trend = TrendDown
			}
		}
	}

	if info := c.gateway.Info(ctx, symbol); info != nil {
		if info.Name != "" {
			opp.Name = info.Name
		}
		opp.DividendYield = info.DividendYield
	}

	return opp
}

// periodReturn computes close[-1]/close[0] - 1, requiring at least 2 points.
func periodReturn(closes []float64) (float64, bool) {
	if len(closes) < 2 || closes[0] == 0 {
		return 0, false
	}
	return closes[len(closes)-1]/closes[0] - 1, true
}

func mean(xs []float64) float64 {
	sum := 0.0
	for _, x := range xs {
		sum += x
	}
	return sum / float64(len(xs))
}

// sampleStdDev is the n-1 standard deviation of xs. Callers guarantee
// len(xs) >= 2.
func sampleStdDev(xs []float64) float64 {
	m := mean(xs)
	sumSq := 0.0
	for _, x := range xs {
		d := x - m
		sumSq += d * d
	}
	return math.Sqrt(sumSq / float64(len(xs)-1))
}

func round2(x float64) float64 {
	return math.Round(x*100) / 100
}
