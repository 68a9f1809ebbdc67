package currency

import (
	"context"
	"math/rand"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/triply/travelhub/core"
)

func TestMockClient_Convert(t *testing.T) {
	client := NewMockClient(rand.New(rand.NewSource(1)))

	quote, err := client.Convert(context.Background(), "USD", "EUR", 100)
	assert.NoError(t, err)
	assert.Equal(t, "USD", quote.From)
	assert.Equal(t, "EUR", quote.To)
	assert.Equal(t, 100.0, quote.OriginalAmount)
	assert.InDelta(t, quote.Rate*100, quote.ConvertedAmount, 1e-9)
	assert.Greater(t, quote.Rate, 0.0)
}

func TestMockClient_ConvertCrossRate(t *testing.T) {
	client := NewMockClient(rand.New(rand.NewSource(1)))

	// EUR->GBP crosses through USD; converting there and back recovers
	// the original amount
	there, err := client.Convert(context.Background(), "EUR", "GBP", 100)
	assert.NoError(t, err)
	back, err := client.Convert(context.Background(), "GBP", "EUR", there.ConvertedAmount)
	assert.NoError(t, err)
	assert.InDelta(t, 100.0, back.ConvertedAmount, 1e-6)
}

func TestMockClient_ConvertUnknownPair(t *testing.T) {
	client := NewMockClient(rand.New(rand.NewSource(1)))

	_, err := client.Convert(context.Background(), "USD", "XXX", 100)
	assert.Error(t, err)
	assert.True(t, core.IsValidation(err))
}

func TestMockClient_ForDestination(t *testing.T) {
	client := NewMockClient(nil)

	info := client.ForDestination("Paris")
	assert.Equal(t, "EUR", info.Code)
	assert.Equal(t, "Euro", info.Name)
	assert.Equal(t, "France", info.Country)

	info = client.ForDestination("Tokyo")
	assert.Equal(t, "JPY", info.Code)
}

func TestMockClient_ForDestinationFallback(t *testing.T) {
	client := NewMockClient(nil)

	// Unrecognized destinations fall back to the default, never error
	info := client.ForDestination("Atlantis")
	assert.Equal(t, "USD", info.Code)
	assert.Equal(t, "Unknown", info.Country)

	// Lookup is exact and case-sensitive
	info = client.ForDestination("paris")
	assert.Equal(t, "USD", info.Code)
}

func TestMockClient_Trends(t *testing.T) {
	client := NewMockClient(rand.New(rand.NewSource(5)))
	today := time.Date(2024, 6, 15, 10, 30, 0, 0, time.UTC)
	client.Now = func() time.Time { return today }

	trends, err := client.Trends(context.Background(), "USD", "EUR", 30)
	assert.NoError(t, err)
	assert.Equal(t, 30, trends.Days)
	assert.Len(t, trends.Trends, 30)

	// Chronologically ascending, ending today
	assert.Equal(t, "2024-05-17", trends.Trends[0].Date)
	assert.Equal(t, "2024-06-15", trends.Trends[29].Date)
	for i := 1; i < len(trends.Trends); i++ {
		assert.Less(t, trends.Trends[i-1].Date, trends.Trends[i].Date)
	}

	// Summary bounds hold over the series
	assert.LessOrEqual(t, trends.MinRate, trends.AverageRate)
	assert.LessOrEqual(t, trends.AverageRate, trends.MaxRate)
	for _, point := range trends.Trends {
		assert.GreaterOrEqual(t, point.Rate, trends.MinRate)
		assert.LessOrEqual(t, point.Rate, trends.MaxRate)
	}
}

func TestMockClient_TrendsUnknownPair(t *testing.T) {
	client := NewMockClient(nil)

	_, err := client.Trends(context.Background(), "ZZZ", "EUR", 30)
	assert.Error(t, err)
}
