package currency

import (
	"context"
	"fmt"
	"math/rand"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/triply/travelhub/core"
	"github.com/triply/travelhub/plugins"
)

// failingConvertClient errors on every conversion but keeps lookups working
type failingConvertClient struct {
	plugins.CurrencyClient
}

func (f *failingConvertClient) Convert(ctx context.Context, from, to string, amount float64) (*core.ExchangeQuote, error) {
	return nil, fmt.Errorf("rate service down")
}

func TestConvertTool_Execute(t *testing.T) {
	tool := NewConvertTool(NewMockClient(rand.New(rand.NewSource(1))), nil, nil)

	quote, err := tool.Execute(context.Background(), &ConvertInput{From: "usd", To: "eur", Amount: 100})
	assert.NoError(t, err)

	// Codes are upper-cased before the lookup
	assert.Equal(t, "USD", quote.From)
	assert.Equal(t, "EUR", quote.To)
	assert.Equal(t, 100.0, quote.OriginalAmount)
}

func TestConvertTool_DefaultAmount(t *testing.T) {
	tool := NewConvertTool(NewMockClient(nil), nil, nil)

	quote, err := tool.Execute(context.Background(), &ConvertInput{From: "USD", To: "JPY"})
	assert.NoError(t, err)
	assert.Equal(t, 1.0, quote.OriginalAmount)
	assert.Equal(t, quote.Rate, quote.ConvertedAmount)
}

func TestDestinationCurrencyTool_Execute(t *testing.T) {
	tool := NewDestinationCurrencyTool(NewMockClient(nil), nil, nil)

	info, err := tool.Execute(context.Background(), &DestinationCurrencyInput{Destination: "London"})
	assert.NoError(t, err)
	assert.Equal(t, "GBP", info.Code)
	assert.Equal(t, "United Kingdom", info.Country)
}

func TestBudgetConversionTool_Execute(t *testing.T) {
	tool := NewBudgetConversionTool(NewMockClient(rand.New(rand.NewSource(2))), time.Second, nil, nil)

	out, err := tool.Execute(context.Background(), &BudgetConversionInput{
		Budget:       1000,
		Destinations: []string{"Paris", "New York", "Tokyo"},
	})
	assert.NoError(t, err)
	assert.Equal(t, "USD", out.HomeCurrency)
	assert.Len(t, out.Conversions, 3)

	// Output order matches input order
	assert.Equal(t, "Paris", out.Conversions[0].Destination)
	assert.Equal(t, "EUR", out.Conversions[0].Currency.Code)
	assert.NotNil(t, out.Conversions[0].Quote)

	// Same-currency destination converts at rate 1
	assert.Equal(t, "New York", out.Conversions[1].Destination)
	assert.Equal(t, 1.0, out.Conversions[1].Quote.Rate)
	assert.Equal(t, 1000.0, out.Conversions[1].Quote.ConvertedAmount)

	assert.Equal(t, "Tokyo", out.Conversions[2].Destination)
	assert.Equal(t, "JPY", out.Conversions[2].Currency.Code)
}

func TestBudgetConversionTool_ErrorSlots(t *testing.T) {
	client := &failingConvertClient{CurrencyClient: NewMockClient(nil)}
	tool := NewBudgetConversionTool(client, time.Second, nil, nil)

	out, err := tool.Execute(context.Background(), &BudgetConversionInput{
		Budget:       500,
		Destinations: []string{"Paris", "New York", "Tokyo"},
	})
	assert.NoError(t, err)
	assert.Len(t, out.Conversions, 3)

	// Failing destinations keep their slots with the error message
	assert.Equal(t, "rate service down", out.Conversions[0].Error)
	assert.Nil(t, out.Conversions[0].Quote)

	// New York is home currency and never hits Convert
	assert.Empty(t, out.Conversions[1].Error)
	assert.NotNil(t, out.Conversions[1].Quote)

	assert.Equal(t, "rate service down", out.Conversions[2].Error)
}

func TestTrendsTool_DefaultDays(t *testing.T) {
	tool := NewTrendsTool(NewMockClient(rand.New(rand.NewSource(3))), nil, nil)

	trends, err := tool.Execute(context.Background(), &TrendsInput{From: "USD", To: "GBP"})
	assert.NoError(t, err)
	assert.Equal(t, 30, trends.Days)
	assert.Len(t, trends.Trends, 30)
}
