package currency

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/firebase/genkit/go/ai"
	"github.com/firebase/genkit/go/genkit"
	"github.com/triply/travelhub/core"
	"github.com/triply/travelhub/log"
	"github.com/triply/travelhub/plugins"
	toolspkg "github.com/triply/travelhub/tools"
)

// RegisterTools wires all currency tools for the given client
func RegisterTools(client plugins.CurrencyClient, timeout time.Duration, gk *genkit.Genkit, registry *toolspkg.Registry) {
	if gk == nil || registry == nil {
		return
	}
	NewConvertTool(client, gk, registry)
	NewDestinationCurrencyTool(client, gk, registry)
	NewBudgetConversionTool(client, timeout, gk, registry)
	NewTrendsTool(client, gk, registry)
}

// --- Convert Currency Tool ---

type ConvertInput struct {
	From   string  `json:"from" validate:"required,len=3" description:"Source currency code (e.g. USD)"`
	To     string  `json:"to" validate:"required,len=3" description:"Target currency code (e.g. EUR)"`
	Amount float64 `json:"amount,omitempty" validate:"omitempty,gt=0" description:"Amount to convert, defaults to 1"`
}

type ConvertTool struct {
	client plugins.CurrencyClient
}

func NewConvertTool(client plugins.CurrencyClient, gk *genkit.Genkit, registry *toolspkg.Registry) *ConvertTool {
	t := &ConvertTool{client: client}
	if gk == nil || registry == nil {
		return t
	}

	registry.Register(genkit.DefineTool[*ConvertInput, *core.ExchangeQuote](
		gk,
		"convert_currency",
		"Converts an amount between two currencies at the current rate.",
		func(ctx *ai.ToolContext, input *ConvertInput) (*core.ExchangeQuote, error) {
			return t.Execute(ctx, input)
		},
	), func(ctx context.Context, args map[string]interface{}) (interface{}, error) {
		var input ConvertInput
		if err := toolspkg.DecodeArgs(args, &input); err != nil {
			return nil, err
		}
		return t.Execute(ctx, &input)
	})
	return t
}

func (t *ConvertTool) Execute(ctx context.Context, input *ConvertInput) (*core.ExchangeQuote, error) {
	log.Debugf(ctx, "ConvertTool executing %s to %s", input.From, input.To)

	if t.client == nil {
		return nil, fmt.Errorf("currency client not initialized")
	}

	amount := input.Amount
	if amount == 0 {
		amount = 1
	}

	quote, err := t.client.Convert(ctx, strings.ToUpper(input.From), strings.ToUpper(input.To), amount)
	if err != nil {
		log.Errorf(ctx, "ConvertTool failed: %v", err)
		return nil, err
	}
	return quote, nil
}

// --- Destination Currency Tool ---

type DestinationCurrencyInput struct {
	Destination string `json:"destination" validate:"required" description:"Destination city name"`
}

type DestinationCurrencyTool struct {
	client plugins.CurrencyClient
}

func NewDestinationCurrencyTool(client plugins.CurrencyClient, gk *genkit.Genkit, registry *toolspkg.Registry) *DestinationCurrencyTool {
	t := &DestinationCurrencyTool{client: client}
	if gk == nil || registry == nil {
		return t
	}

	registry.Register(genkit.DefineTool[*DestinationCurrencyInput, *core.CurrencyInfo](
		gk,
		"get_destination_currency",
		"Returns the local currency of a destination. Unknown destinations fall back to USD.",
		func(ctx *ai.ToolContext, input *DestinationCurrencyInput) (*core.CurrencyInfo, error) {
			return t.Execute(ctx, input)
		},
	), func(ctx context.Context, args map[string]interface{}) (interface{}, error) {
		var input DestinationCurrencyInput
		if err := toolspkg.DecodeArgs(args, &input); err != nil {
			return nil, err
		}
		return t.Execute(ctx, &input)
	})
	return t
}

func (t *DestinationCurrencyTool) Execute(ctx context.Context, input *DestinationCurrencyInput) (*core.CurrencyInfo, error) {
	if t.client == nil {
		return nil, fmt.Errorf("currency client not initialized")
	}
	info := t.client.ForDestination(input.Destination)
	return &info, nil
}

// --- Budget Conversion Tool ---

type BudgetConversionInput struct {
	Budget       float64  `json:"budget" validate:"required,gt=0" description:"Budget amount in the home currency"`
	Destinations []string `json:"destinations" validate:"required,min=1,dive,required" description:"Destinations to convert the budget for"`
	HomeCurrency string   `json:"homeCurrency,omitempty" validate:"omitempty,len=3" description:"Home currency code, defaults to USD"`
}

type BudgetConversionOutput struct {
	Budget       float64                 `json:"budget"`
	HomeCurrency string                  `json:"homeCurrency"`
	Conversions  []core.BudgetConversion `json:"conversions"`
}

type BudgetConversionTool struct {
	client  plugins.CurrencyClient
	timeout time.Duration
}

func NewBudgetConversionTool(client plugins.CurrencyClient, timeout time.Duration, gk *genkit.Genkit, registry *toolspkg.Registry) *BudgetConversionTool {
	t := &BudgetConversionTool{client: client, timeout: timeout}
	if gk == nil || registry == nil {
		return t
	}

	registry.Register(genkit.DefineTool[*BudgetConversionInput, *BudgetConversionOutput](
		gk,
		"get_travel_budget_conversion",
		"Converts a travel budget into each destination's local currency concurrently. A failing destination yields an error slot.",
		func(ctx *ai.ToolContext, input *BudgetConversionInput) (*BudgetConversionOutput, error) {
			return t.Execute(ctx, input)
		},
	), func(ctx context.Context, args map[string]interface{}) (interface{}, error) {
		var input BudgetConversionInput
		if err := toolspkg.DecodeArgs(args, &input); err != nil {
			return nil, err
		}
		return t.Execute(ctx, &input)
	})
	return t
}

func (t *BudgetConversionTool) Execute(ctx context.Context, input *BudgetConversionInput) (*BudgetConversionOutput, error) {
	log.Debugf(ctx, "BudgetConversionTool executing for %d destinations", len(input.Destinations))

	if t.client == nil {
		return nil, fmt.Errorf("currency client not initialized")
	}

	home := strings.ToUpper(input.HomeCurrency)
	if home == "" {
		home = "USD"
	}

	type slot struct {
		info  core.CurrencyInfo
		quote *core.ExchangeQuote
	}
	outcomes := core.Gather(ctx, len(input.Destinations), t.timeout,
		func(ctx context.Context, i int) (slot, error) {
			info := t.client.ForDestination(input.Destinations[i])
			if info.Code == home {
				// Same currency, nothing to convert
				return slot{info: info, quote: &core.ExchangeQuote{
					From: home, To: info.Code, Rate: 1,
					Timestamp:       time.Now(),
					OriginalAmount:  input.Budget,
					ConvertedAmount: input.Budget,
				}}, nil
			}
			quote, err := t.client.Convert(ctx, home, info.Code, input.Budget)
			if err != nil {
				return slot{info: info}, err
			}
			return slot{info: info, quote: quote}, nil
		})

	conversions := make([]core.BudgetConversion, len(input.Destinations))
	for i, outcome := range outcomes {
		conversions[i] = core.BudgetConversion{
			Destination: input.Destinations[i],
			Currency:    outcome.Value.info,
		}
		if outcome.Err != nil {
			conversions[i].Error = outcome.Err.Error()
			continue
		}
		conversions[i].Quote = outcome.Value.quote
	}

	return &BudgetConversionOutput{
		Budget:       input.Budget,
		HomeCurrency: home,
		Conversions:  conversions,
	}, nil
}

// --- Currency Trends Tool ---

type TrendsInput struct {
	From string `json:"from" validate:"required,len=3" description:"Source currency code"`
	To   string `json:"to" validate:"required,len=3" description:"Target currency code"`
	Days int    `json:"days,omitempty" validate:"omitempty,min=7,max=365" description:"History length in days (7-365), defaults to 30"`
}

type TrendsTool struct {
	client plugins.CurrencyClient
}

func NewTrendsTool(client plugins.CurrencyClient, gk *genkit.Genkit, registry *toolspkg.Registry) *TrendsTool {
	t := &TrendsTool{client: client}
	if gk == nil || registry == nil {
		return t
	}

	registry.Register(genkit.DefineTool[*TrendsInput, *core.CurrencyTrends](
		gk,
		"get_currency_trends",
		"Returns a daily exchange rate history ending today with average, min and max.",
		func(ctx *ai.ToolContext, input *TrendsInput) (*core.CurrencyTrends, error) {
			return t.Execute(ctx, input)
		},
	), func(ctx context.Context, args map[string]interface{}) (interface{}, error) {
		var input TrendsInput
		if err := toolspkg.DecodeArgs(args, &input); err != nil {
			return nil, err
		}
		return t.Execute(ctx, &input)
	})
	return t
}

func (t *TrendsTool) Execute(ctx context.Context, input *TrendsInput) (*core.CurrencyTrends, error) {
	log.Debugf(ctx, "TrendsTool executing %s/%s over %d days", input.From, input.To, input.Days)

	if t.client == nil {
		return nil, fmt.Errorf("currency client not initialized")
	}

	days := input.Days
	if days == 0 {
		days = 30
	}

	trends, err := t.client.Trends(ctx, strings.ToUpper(input.From), strings.ToUpper(input.To), days)
	if err != nil {
		log.Errorf(ctx, "TrendsTool failed: %v", err)
		return nil, err
	}
	return trends, nil
}
