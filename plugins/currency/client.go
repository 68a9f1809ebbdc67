package currency

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/triply/travelhub/core"
	"github.com/triply/travelhub/plugins"
	"golang.org/x/time/rate"
)

const providerName = "currency"

// Client is the live exchange-rate API implementation of plugins.CurrencyClient
type Client struct {
	BaseURL    string
	APIKey     string
	HTTPClient *http.Client

	limiter *rate.Limiter
}

var _ plugins.CurrencyClient = (*Client)(nil)

// NewClient creates a live currency client
func NewClient(baseURL, apiKey string, timeout time.Duration, limiter *rate.Limiter) *Client {
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	return &Client{
		BaseURL:    baseURL,
		APIKey:     apiKey,
		HTTPClient: &http.Client{Timeout: timeout},
		limiter:    limiter,
	}
}

func (c *Client) get(ctx context.Context, path string, query url.Values, out interface{}) error {
	if err := plugins.WaitLimiter(ctx, c.limiter); err != nil {
		return err
	}

	query.Set("access_key", c.APIKey)
	endpoint := fmt.Sprintf("%s%s?%s", c.BaseURL, path, query.Encode())

	req, err := http.NewRequestWithContext(ctx, "GET", endpoint, nil)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return &plugins.UpstreamError{Provider: providerName, Message: err.Error()}
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return &plugins.UpstreamError{
			Provider: providerName,
			Status:   resp.StatusCode,
			Message:  fmt.Sprintf("request to %s failed", path),
		}
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return &plugins.UpstreamError{Provider: providerName, Message: "malformed response: " + err.Error()}
	}
	return nil
}

// Convert quotes one currency conversion at the current rate
func (c *Client) Convert(ctx context.Context, from, to string, amount float64) (*core.ExchangeQuote, error) {
	query := url.Values{}
	query.Set("from", from)
	query.Set("to", to)
	query.Set("amount", fmt.Sprintf("%f", amount))

	var payload struct {
		Success bool `json:"success"`
		Info    struct {
			Rate float64 `json:"rate"`
		} `json:"info"`
		Result float64 `json:"result"`
		Error  struct {
			Info string `json:"info"`
		} `json:"error"`
	}
	if err := c.get(ctx, "/convert", query, &payload); err != nil {
		return nil, err
	}
	if !payload.Success {
		return nil, &plugins.UpstreamError{Provider: providerName, Message: payload.Error.Info}
	}
	if payload.Info.Rate <= 0 {
		return nil, core.Validationf("no exchange rate available for %s to %s", from, to)
	}

	return &core.ExchangeQuote{
		From:            from,
		To:              to,
		Rate:            payload.Info.Rate,
		Timestamp:       time.Now(),
		OriginalAmount:  amount,
		ConvertedAmount: payload.Result,
	}, nil
}

// ForDestination resolves a destination's currency from the static mapping;
// metadata is not a network concern, so live and mock share it.
func (c *Client) ForDestination(destination string) core.CurrencyInfo {
	return lookupCurrencyInfo(destination)
}

// Trends fetches a daily rate history of the given length ending today
func (c *Client) Trends(ctx context.Context, from, to string, days int) (*core.CurrencyTrends, error) {
	end := time.Now()
	start := end.AddDate(0, 0, -(days - 1))

	query := url.Values{}
	query.Set("start_date", start.Format(core.DateLayout))
	query.Set("end_date", end.Format(core.DateLayout))
	query.Set("source", from)
	query.Set("currencies", to)

	var payload struct {
		Success bool                          `json:"success"`
		Rates   map[string]map[string]float64 `json:"rates"`
		Error   struct {
			Info string `json:"info"`
		} `json:"error"`
	}
	if err := c.get(ctx, "/timeframe", query, &payload); err != nil {
		return nil, err
	}
	if !payload.Success {
		return nil, &plugins.UpstreamError{Provider: providerName, Message: payload.Error.Info}
	}

	trends := &core.CurrencyTrends{From: from, To: to, Days: days}
	for d := start; !d.After(end); d = d.AddDate(0, 0, 1) {
		date := d.Format(core.DateLayout)
		day, ok := payload.Rates[date]
		if !ok {
			continue
		}
		rate, ok := day[to]
		if !ok || rate <= 0 {
			continue
		}
		trends.Trends = append(trends.Trends, core.RatePoint{Date: date, Rate: rate})
	}
	if len(trends.Trends) == 0 {
		return nil, core.Validationf("no exchange rate available for %s to %s", from, to)
	}

	summarizeTrends(trends)
	return trends, nil
}

// summarizeTrends fills average, min and max from the series
func summarizeTrends(trends *core.CurrencyTrends) {
	min, max, sum := trends.Trends[0].Rate, trends.Trends[0].Rate, 0.0
	for _, point := range trends.Trends {
		if point.Rate < min {
			min = point.Rate
		}
		if point.Rate > max {
			max = point.Rate
		}
		sum += point.Rate
	}
	trends.MinRate = min
	trends.MaxRate = max
	trends.AverageRate = sum / float64(len(trends.Trends))
}
