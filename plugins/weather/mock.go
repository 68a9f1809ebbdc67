package weather

import (
	"context"
	"math"
	"math/rand"
	"sync"
	"time"

	"github.com/triply/travelhub/core"
	"github.com/triply/travelhub/plugins"
)

// conditions the mock cycles through; shapes match live payloads
var mockConditions = []string{
	"Sunny", "Clear", "Partly Cloudy", "Cloudy", "Light Rain", "Rainy", "Windy",
}

var mockAlertPool = []core.WeatherAlert{
	{Severity: "moderate", Event: "Heat Advisory", Description: "High temperatures expected in the afternoon."},
	{Severity: "minor", Event: "Wind Advisory", Description: "Gusty winds near the coast."},
	{Severity: "severe", Event: "Thunderstorm Watch", Description: "Thunderstorms possible in the evening."},
}

// MockClient substitutes deterministic-shape, randomized weather data when
// no API key is configured. The substitution is a designed fallback and is
// never surfaced as an error.
type MockClient struct {
	// Now is injectable for tests
	Now func() time.Time

	mu  sync.Mutex
	rng *rand.Rand
}

var _ plugins.WeatherClient = (*MockClient)(nil)

// NewMockClient creates a mock weather client with the given random source
func NewMockClient(rng *rand.Rand) *MockClient {
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return &MockClient{Now: time.Now, rng: rng}
}

func (m *MockClient) randFloat(min, max float64) float64 {
	m.mu.Lock()
	defer m.mu.Unlock()
	return min + m.rng.Float64()*(max-min)
}

func (m *MockClient) randPick(n int) int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.rng.Intn(n)
}

// Snapshot generates current conditions plus one forecast entry per day in
// [start, end], chronological. Zero dates default to a week from today.
func (m *MockClient) Snapshot(_ context.Context, destination string, start, end time.Time, units string) (*core.WeatherSnapshot, error) {
	if start.IsZero() {
		start = m.Now()
	}
	if end.IsZero() || end.Before(start) {
		end = start.AddDate(0, 0, 6)
	}

	imperial := units == "imperial"
	snapshot := &core.WeatherSnapshot{
		Destination: destination,
		Units:       unitsOrDefault(units),
		Current: core.CurrentWeather{
			Temperature: round1(mockTemp(m.randFloat(15, 35), imperial)),
			Conditions:  mockConditions[m.randPick(len(mockConditions))],
			Humidity:    30 + m.randPick(61),
			WindSpeed:   round1(m.randFloat(0, 30)),
		},
	}

	start = start.Truncate(24 * time.Hour)
	end = end.Truncate(24 * time.Hour)
	for d := start; !d.After(end); d = d.AddDate(0, 0, 1) {
		snapshot.Forecast = append(snapshot.Forecast, core.ForecastDay{
			Date:        d.Format(core.DateLayout),
			Temperature: round1(mockTemp(m.randFloat(15, 35), imperial)),
			Conditions:  mockConditions[m.randPick(len(mockConditions))],
		})
	}

	return snapshot, nil
}

// Alerts returns zero or one randomized alert
func (m *MockClient) Alerts(_ context.Context, destination string) ([]core.WeatherAlert, error) {
	alerts := make([]core.WeatherAlert, 0, 1)
	if m.randPick(3) == 0 {
		alerts = append(alerts, mockAlertPool[m.randPick(len(mockAlertPool))])
	}
	return alerts, nil
}

func mockTemp(celsius float64, imperial bool) float64 {
	if imperial {
		return celsius*9/5 + 32
	}
	return celsius
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}
