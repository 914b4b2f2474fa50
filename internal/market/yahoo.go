package market

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"
)

const (
	yahooChartURL   = "https://query1.finance.yahoo.com/v8/finance/chart/%s?range=%s&interval=%s"
	yahooSummaryURL = "https://query1.finance.yahoo.com/v10/finance/quoteSummary/%s?modules=price,summaryDetail"

	yahooUserAgent   = "Mozilla/5.0 (X11; Linux x86_64) AppleWebKit/537.36"
	yahooMaxBodySize = 10 * 1024 * 1024
)

// YahooProvider fetches close-price series and descriptive info from the
// Yahoo Finance JSON endpoints.
type YahooProvider struct {
	client *http.Client
}

// NewYahooProvider creates a provider using the given HTTP client. The
// client's timeout bounds every request; a hanging upstream must not stall
// advice computation.
func NewYahooProvider(client *http.Client) *YahooProvider {
	if client == nil {
		client = &http.Client{Timeout: 10 * time.Second}
	}
	return &YahooProvider{client: client}
}

type yahooChartResponse struct {
	Chart struct {
		Result []struct {
			Timestamp  []int64 `json:"timestamp"`
			Indicators struct {
				Quote []struct {
					Close []*float64 `json:"close"`
				} `json:"quote"`
			} `json:"indicators"`
		} `json:"result"`
		Error *struct {
			Code        string `json:"code"`
			Description string `json:"description"`
		} `json:"error"`
	} `json:"chart"`
}

type yahooSummaryResponse struct {
	QuoteSummary struct {
		Result []struct {
			Price struct {
				LongName  string `json:"longName"`
				ShortName string `json:"shortName"`
			} `json:"price"`
			SummaryDetail struct {
				DividendYield struct {
					Raw *float64 `json:"raw"`
				} `json:"dividendYield"`
			} `json:"summaryDetail"`
		} `json:"result"`
	} `json:"quoteSummary"`
}

// History fetches a close-price series from the v8 chart endpoint.
// Timestamps with a missing close are skipped.
func (p *YahooProvider) History(ctx context.Context, symbol, rng, interval string) (*Series, error) {
	u := fmt.Sprintf(yahooChartURL, url.PathEscape(symbol), url.QueryEscape(rng), url.QueryEscape(interval))
	body, err := p.get(ctx, u)
	if err != nil {
		return nil, err
	}

	var resp yahooChartResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return nil, fmt.Errorf("decode chart for %s: %w", symbol, err)
	}
	if resp.Chart.Error != nil {
		return nil, fmt.Errorf("chart for %s: %s", symbol, resp.Chart.Error.Description)
	}
	if len(resp.Chart.Result) == 0 || len(resp.Chart.Result[0].Indicators.Quote) == 0 {
		return nil, fmt.Errorf("no chart data for %s", symbol)
	}

	result := resp.Chart.Result[0]
	closes := result.Indicators.Quote[0].Close
	series := &Series{Symbol: symbol}
	for i, ts := range result.Timestamp {
		if i >= len(closes) || closes[i] == nil {
			continue
		}
		series.Points = append(series.Points, Point{
			Time:  time.Unix(ts, 0).UTC(),
			Close: *closes[i],
		})
	}
	if len(series.Points) == 0 {
		return nil, fmt.Errorf("empty series for %s", symbol)
	}
	return series, nil
}

// Info fetches display name and dividend yield from the quoteSummary endpoint.
func (p *YahooProvider) Info(ctx context.Context, symbol string) (*Info, error) {
	u := fmt.Sprintf(yahooSummaryURL, url.PathEscape(symbol))
	body, err := p.get(ctx, u)
	if err != nil {
		return nil, err
	}

	var resp yahooSummaryResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return nil, fmt.Errorf("decode summary for %s: %w", symbol, err)
	}
	if len(resp.QuoteSummary.Result) == 0 {
		return nil, fmt.Errorf("no summary data for %s", symbol)
	}

	result := resp.QuoteSummary.Result[0]
	name := result.Price.LongName
	if name == "" {
		name = result.Price.ShortName
	}
	return &Info{
		Name:          name,
		DividendYield: result.SummaryDetail.DividendYield.Raw,
	}, nil
}

func (p *YahooProvider) get(ctx context.Context, rawURL string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("User-Agent", yahooUserAgent)

	resp, err := p.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("HTTP %d from %s", resp.StatusCode, rawURL)
	}
	return io.ReadAll(io.LimitReader(resp.Body, yahooMaxBodySize))
}
