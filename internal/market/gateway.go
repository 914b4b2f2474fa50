package market

import (
	"context"
	"fmt"
	"time"

	"fincoach/internal/cache"

	"go.uber.org/zap"
)

// FXFallbackRate is returned by FXRate when the upstream provider is
// unavailable. It approximates USD/INR and is cached like a real rate so a
// flapping upstream is not retried on every request.
const FXFallbackRate = 83.0

// Cache validity per data type: short enough to reflect intraday movement,
// long enough to avoid repeated external calls per page load.
const (
	ttlFXRate  = time.Hour
	ttlHistory = 5 * time.Minute
	ttlInfo    = time.Hour
)

// Gateway wraps a Provider with a time-bounded cache and graceful fallback.
// No provider failure ever crosses this boundary: FXRate degrades to a
// documented constant, History and Info degrade to nil.
type Gateway struct {
	provider Provider
	cache    cache.Store
	log      *zap.SugaredLogger
}

// NewGateway creates a gateway over provider using store for caching.
func NewGateway(provider Provider, store cache.Store, log *zap.SugaredLogger) *Gateway {
	return &Gateway{provider: provider, cache: store, log: log}
}

// FXRate returns the base→quote exchange rate. The pair is resolved through
// the provider's "<BASE><QUOTE>=X" series; on any failure the fallback rate
// is returned and cached for the same window as a real rate.
func (g *Gateway) FXRate(ctx context.Context, base, quote string) float64 {
	key := fmt.Sprintf("fx:%s:%s", base, quote)
	if v, ok := g.cache.Get(key); ok {
		if rate, ok := v.(float64); ok {
			return rate
		}
	}

	rate := FXFallbackRate
	series, err := g.provider.History(ctx, base+quote+"=X", "1d", "1d")
	if err != nil {
		g.log.Warnw("fx rate fetch failed, using fallback", "base", base, "quote", quote, "error", err)
	} else if last, ok := series.LastClose(); ok {
		rate = last
	} else {
		g.log.Warnw("fx rate series empty, using fallback", "base", base, "quote", quote)
	}

	g.cache.Set(key, rate, ttlFXRate)
	return rate
}

// History returns the close-price series for symbol over rng/interval, or
// nil when no data is available. Successful lookups are cached; absence is
// not, so subsequent calls retry the upstream.
func (g *Gateway) History(ctx context.Context, symbol, rng, interval string) *Series {
	key := fmt.Sprintf("history:%s:%s:%s", symbol, rng, interval)
	if v, ok := g.cache.Get(key); ok {
		if series, ok := v.(*Series); ok {
			return series
		}
	}

	series, err := g.provider.History(ctx, symbol, rng, interval)
	if err != nil {
		g.log.Debugw("history fetch failed", "symbol", symbol, "range", rng, "interval", interval, "error", err)
		return nil
	}
	if len(series.Points) == 0 {
		return nil
	}

	g.cache.Set(key, series, ttlHistory)
	return series
}

// Info returns descriptive data for symbol, or nil when unavailable.
func (g *Gateway) Info(ctx context.Context, symbol string) *Info {
	key := "info:" + symbol
	if v, ok := g.cache.Get(key); ok {
		if info, ok := v.(*Info); ok {
			return info
		}
	}

	info, err := g.provider.Info(ctx, symbol)
	if err != nil {
		g.log.Debugw("info fetch failed", "symbol", symbol, "error", err)
		return nil
	}

	g.cache.Set(key, info, ttlInfo)
	return info
}
