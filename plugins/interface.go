// Package plugins defines the provider capability interfaces consumed by
// the orchestrator. Each domain has a live HTTP implementation and a
// deterministic-shape mock, selected once at construction by credential
// presence; callers never learn which one backs the interface.
package plugins

import (
	"context"
	"time"

	"github.com/triply/travelhub/core"
)

// WeatherClient defines the interface for weather data
type WeatherClient interface {
	Snapshot(ctx context.Context, destination string, start, end time.Time, units string) (*core.WeatherSnapshot, error)
	Alerts(ctx context.Context, destination string) ([]core.WeatherAlert, error)
}

// CurrencyClient defines the interface for currency data.
// ForDestination is infallible: unrecognized destinations fall back
// to a default rather than erroring.
type CurrencyClient interface {
	Convert(ctx context.Context, from, to string, amount float64) (*core.ExchangeQuote, error)
	ForDestination(destination string) core.CurrencyInfo
	Trends(ctx context.Context, from, to string, days int) (*core.CurrencyTrends, error)
}

// TranslationClient defines the interface for translation data
type TranslationClient interface {
	Translate(ctx context.Context, text, source, target string) (*core.TranslationResult, error)
	Detect(ctx context.Context, text string) (string, float64, error)
	Phrases(ctx context.Context, language, category string) (map[string]string, error)
	LanguageForDestination(destination string) string
}

// InventoryClient defines the interface for flight, hotel, activity and
// safety data for a destination.
type InventoryClient interface {
	Flights(ctx context.Context, origin, destination string, date time.Time, travelers int) ([]core.FlightOption, error)
	Hotels(ctx context.Context, destination string, nights int) ([]core.HotelOption, error)
	Activities(ctx context.Context, destination string, activityTypes []string) ([]core.ActivityItem, error)
	SafetyRating(ctx context.Context, destination string) (float64, error)
}
