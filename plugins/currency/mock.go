package currency

import (
	"context"
	"math"
	"math/rand"
	"sync"
	"time"

	"github.com/triply/travelhub/core"
	"github.com/triply/travelhub/plugins"
)

// MockClient serves conversions from the indicative rate table and
// randomized trend series when no API key is configured.
type MockClient struct {
	// Now is injectable for tests
	Now func() time.Time

	mu  sync.Mutex
	rng *rand.Rand
}

var _ plugins.CurrencyClient = (*MockClient)(nil)

// NewMockClient creates a mock currency client with the given random source
func NewMockClient(rng *rand.Rand) *MockClient {
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return &MockClient{Now: time.Now, rng: rng}
}

func (m *MockClient) jitter(spread float64) float64 {
	m.mu.Lock()
	defer m.mu.Unlock()
	return 1 + (m.rng.Float64()*2-1)*spread
}

// Convert quotes at the table rate. A pair outside the table is an
// error for this call only.
func (m *MockClient) Convert(_ context.Context, from, to string, amount float64) (*core.ExchangeQuote, error) {
	rate, err := baseRate(from, to)
	if err != nil {
		return nil, err
	}

	return &core.ExchangeQuote{
		From:            from,
		To:              to,
		Rate:            rate,
		Timestamp:       m.Now(),
		OriginalAmount:  amount,
		ConvertedAmount: amount * rate,
	}, nil
}

// ForDestination resolves a destination's currency from the static mapping
func (m *MockClient) ForDestination(destination string) core.CurrencyInfo {
	return lookupCurrencyInfo(destination)
}

// Trends generates a randomized daily series of the requested length
// around the table rate, chronologically ascending and ending today.
func (m *MockClient) Trends(_ context.Context, from, to string, days int) (*core.CurrencyTrends, error) {
	center, err := baseRate(from, to)
	if err != nil {
		return nil, err
	}

	end := m.Now()
	start := end.AddDate(0, 0, -(days - 1))

	trends := &core.CurrencyTrends{From: from, To: to, Days: days}
	for d := start; !d.After(end); d = d.AddDate(0, 0, 1) {
		rate := math.Round(center*m.jitter(0.05)*1e6) / 1e6
		trends.Trends = append(trends.Trends, core.RatePoint{
			Date: d.Format(core.DateLayout),
			Rate: rate,
		})
	}

	summarizeTrends(trends)
	return trends, nil
}
