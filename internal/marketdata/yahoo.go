package marketdata

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/rs/zerolog"

	"github.com/ashik160799-create/Gold-XAU-USD/internal/market"
)

// YahooClient fetches candles from the Yahoo Finance chart API
type YahooClient struct {
	baseURL    string
	userAgent  string
	httpClient *http.Client
	logger     zerolog.Logger
}

// NewYahooClient creates a provider backed by the Yahoo chart endpoint
func NewYahooClient(baseURL, userAgent string, timeout time.Duration, logger zerolog.Logger) *YahooClient {
	return &YahooClient{
		baseURL:    baseURL,
		userAgent:  userAgent,
		httpClient: &http.Client{Timeout: timeout},
		logger:     logger,
	}
}

// fetchSpec maps a timeframe onto the upstream interval and lookback range.
// Yahoo has no 2h/4h intervals, so those fetch hourly data and resample.
type fetchSpec struct {
	interval   string
	lookback   string
	resampleTo time.Duration
}

var fetchSpecs = map[market.Timeframe]fetchSpec{
	market.TF1m:  {interval: "1m", lookback: "5d"},
	market.TF5m:  {interval: "5m", lookback: "60d"},
	market.TF15m: {interval: "15m", lookback: "60d"},
	market.TF1h:  {interval: "60m", lookback: "1y"},
	market.TF2h:  {interval: "60m", lookback: "1y", resampleTo: 2 * time.Hour},
	market.TF4h:  {interval: "60m", lookback: "1y", resampleTo: 4 * time.Hour},
	market.TF1d:  {interval: "1d", lookback: "2y"},
	market.TF1wk: {interval: "1wk", lookback: "5y"},
}

type chartResponse struct {
	Chart struct {
		Result []struct {
			Timestamp  []int64 `json:"timestamp"`
			Indicators struct {
				Quote []struct {
					Open   []*float64 `json:"open"`
					High   []*float64 `json:"high"`
					Low    []*float64 `json:"low"`
					Close  []*float64 `json:"close"`
					Volume []*float64 `json:"volume"`
				} `json:"quote"`
			} `json:"indicators"`
		} `json:"result"`
		Error *struct {
			Code        string `json:"code"`
			Description string `json:"description"`
		} `json:"error"`
	} `json:"chart"`
}

// Candles fetches and normalizes candle history for one symbol
func (c *YahooClient) Candles(ctx context.Context, symbol string, tf market.Timeframe) ([]market.Candle, error) {
	spec, ok := fetchSpecs[tf]
	if !ok {
		return nil, fmt.Errorf("no fetch mapping for timeframe %s", tf)
	}

	params := url.Values{}
	params.Set("interval", spec.interval)
	params.Set("range", spec.lookback)
	endpoint := fmt.Sprintf("%s/v8/finance/chart/%s?%s", c.baseURL, url.PathEscape(symbol), params.Encode())

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("building chart request: %w", err)
	}
	req.Header.Set("User-Agent", c.userAgent)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetching %s %s: %w", symbol, tf, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("reading chart response: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("chart API status %d for %s", resp.StatusCode, symbol)
	}

	var parsed chartResponse
	if err := json.Unmarshal(body, &parsed); err != nil {
		return nil, fmt.Errorf("parsing chart response: %w", err)
	}
	if parsed.Chart.Error != nil {
		return nil, fmt.Errorf("chart API error for %s: %s", symbol, parsed.Chart.Error.Description)
	}
	if len(parsed.Chart.Result) == 0 || len(parsed.Chart.Result[0].Indicators.Quote) == 0 {
		return nil, ErrNoData
	}

	result := parsed.Chart.Result[0]
	quote := result.Indicators.Quote[0]

	candles := make([]market.Candle, 0, len(result.Timestamp))
	for i, ts := range result.Timestamp {
		// Yahoo pads sparse series with nulls and sometimes returns ragged
		// quote arrays; skip incomplete rows
		if i >= len(quote.Open) || i >= len(quote.High) ||
			i >= len(quote.Low) || i >= len(quote.Close) {
			continue
		}
		if quote.Open[i] == nil || quote.High[i] == nil ||
			quote.Low[i] == nil || quote.Close[i] == nil {
			continue
		}
		vol := 0.0
		if i < len(quote.Volume) && quote.Volume[i] != nil {
			vol = *quote.Volume[i]
		}
		candles = append(candles, market.Candle{
			Time:   time.Unix(ts, 0).UTC(),
			Open:   *quote.Open[i],
			High:   *quote.High[i],
			Low:    *quote.Low[i],
			Close:  *quote.Close[i],
			Volume: vol,
		})
	}
	if len(candles) == 0 {
		return nil, ErrNoData
	}

	if spec.resampleTo > 0 {
		candles = Resample(candles, spec.resampleTo)
	}

	c.logger.Debug().
		Str("symbol", symbol).
		Str("timeframe", string(tf)).
		Int("candles", len(candles)).
		Msg("fetched candle history")
	return candles, nil
}
