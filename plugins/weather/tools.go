package weather

import (
	"context"
	"fmt"
	"time"

	"github.com/firebase/genkit/go/ai"
	"github.com/firebase/genkit/go/genkit"
	"github.com/triply/travelhub/core"
	"github.com/triply/travelhub/log"
	"github.com/triply/travelhub/plugins"
	toolspkg "github.com/triply/travelhub/tools"
)

// RegisterTools wires all weather tools for the given client
func RegisterTools(client plugins.WeatherClient, timeout time.Duration, gk *genkit.Genkit, registry *toolspkg.Registry) {
	if gk == nil || registry == nil {
		return
	}
	NewTravelWeatherTool(client, gk, registry)
	NewWeatherAlertsTool(client, gk, registry)
	NewCompareWeatherTool(client, timeout, gk, registry)
}

// --- Travel Weather Tool ---

type TravelWeatherInput struct {
	Destination string `json:"destination" validate:"required" description:"Destination city or region name"`
	StartDate   string `json:"startDate,omitempty" validate:"omitempty,datetime=2006-01-02" description:"Trip start date (YYYY-MM-DD)"`
	EndDate     string `json:"endDate,omitempty" validate:"omitempty,datetime=2006-01-02" description:"Trip end date (YYYY-MM-DD)"`
	Units       string `json:"units,omitempty" validate:"omitempty,oneof=metric imperial" description:"Unit system, metric or imperial"`
}

type TravelWeatherTool struct {
	client plugins.WeatherClient
}

func NewTravelWeatherTool(client plugins.WeatherClient, gk *genkit.Genkit, registry *toolspkg.Registry) *TravelWeatherTool {
	t := &TravelWeatherTool{client: client}
	if gk == nil || registry == nil {
		return t
	}

	registry.Register(genkit.DefineTool[*TravelWeatherInput, *core.WeatherSnapshot](
		gk,
		"get_travel_weather",
		"Returns current conditions and a per-day forecast for a travel destination.",
		func(ctx *ai.ToolContext, input *TravelWeatherInput) (*core.WeatherSnapshot, error) {
			return t.Execute(ctx, input)
		},
	), func(ctx context.Context, args map[string]interface{}) (interface{}, error) {
		var input TravelWeatherInput
		if err := toolspkg.DecodeArgs(args, &input); err != nil {
			return nil, err
		}
		return t.Execute(ctx, &input)
	})
	return t
}

func (t *TravelWeatherTool) Execute(ctx context.Context, input *TravelWeatherInput) (*core.WeatherSnapshot, error) {
	log.Debugf(ctx, "TravelWeatherTool executing for %s", input.Destination)

	if t.client == nil {
		return nil, fmt.Errorf("weather client not initialized")
	}

	start, end, err := toolspkg.ParseDateRange(input.StartDate, input.EndDate)
	if err != nil {
		return nil, err
	}

	snapshot, err := t.client.Snapshot(ctx, input.Destination, start, end, input.Units)
	if err != nil {
		log.Errorf(ctx, "TravelWeatherTool failed: %v", err)
		return nil, err
	}

	log.Debugf(ctx, "TravelWeatherTool completed with %d forecast days", len(snapshot.Forecast))
	return snapshot, nil
}

// --- Weather Alerts Tool ---

type WeatherAlertsInput struct {
	Destination string `json:"destination" validate:"required" description:"Destination city or region name"`
}

type WeatherAlertsOutput struct {
	Destination string              `json:"destination"`
	Alerts      []core.WeatherAlert `json:"alerts"`
	Count       int                 `json:"count"`
}

type WeatherAlertsTool struct {
	client plugins.WeatherClient
}

func NewWeatherAlertsTool(client plugins.WeatherClient, gk *genkit.Genkit, registry *toolspkg.Registry) *WeatherAlertsTool {
	t := &WeatherAlertsTool{client: client}
	if gk == nil || registry == nil {
		return t
	}

	registry.Register(genkit.DefineTool[*WeatherAlertsInput, *WeatherAlertsOutput](
		gk,
		"get_weather_alerts",
		"Returns active weather alerts for a destination. The list may be empty.",
		func(ctx *ai.ToolContext, input *WeatherAlertsInput) (*WeatherAlertsOutput, error) {
			return t.Execute(ctx, input)
		},
	), func(ctx context.Context, args map[string]interface{}) (interface{}, error) {
		var input WeatherAlertsInput
		if err := toolspkg.DecodeArgs(args, &input); err != nil {
			return nil, err
		}
		return t.Execute(ctx, &input)
	})
	return t
}

func (t *WeatherAlertsTool) Execute(ctx context.Context, input *WeatherAlertsInput) (*WeatherAlertsOutput, error) {
	log.Debugf(ctx, "WeatherAlertsTool executing for %s", input.Destination)

	if t.client == nil {
		return nil, fmt.Errorf("weather client not initialized")
	}

	alerts, err := t.client.Alerts(ctx, input.Destination)
	if err != nil {
		log.Errorf(ctx, "WeatherAlertsTool failed: %v", err)
		return nil, err
	}

	return &WeatherAlertsOutput{
		Destination: input.Destination,
		Alerts:      alerts,
		Count:       len(alerts),
	}, nil
}

// --- Compare Destination Weather Tool ---

type CompareWeatherInput struct {
	Destinations []string `json:"destinations" validate:"required,min=1,dive,required" description:"Destinations to compare"`
	Date         string   `json:"date,omitempty" validate:"omitempty,datetime=2006-01-02" description:"Date to compare weather for (YYYY-MM-DD)"`
}

type CompareWeatherOutput struct {
	Date    string                    `json:"date,omitempty"`
	Results []core.DestinationWeather `json:"results"`
}

type CompareWeatherTool struct {
	client  plugins.WeatherClient
	timeout time.Duration
}

func NewCompareWeatherTool(client plugins.WeatherClient, timeout time.Duration, gk *genkit.Genkit, registry *toolspkg.Registry) *CompareWeatherTool {
	t := &CompareWeatherTool{client: client, timeout: timeout}
	if gk == nil || registry == nil {
		return t
	}

	registry.Register(genkit.DefineTool[*CompareWeatherInput, *CompareWeatherOutput](
		gk,
		"compare_destination_weather",
		"Fetches weather for several destinations concurrently. A failing destination yields an error slot, never drops from the list.",
		func(ctx *ai.ToolContext, input *CompareWeatherInput) (*CompareWeatherOutput, error) {
			return t.Execute(ctx, input)
		},
	), func(ctx context.Context, args map[string]interface{}) (interface{}, error) {
		var input CompareWeatherInput
		if err := toolspkg.DecodeArgs(args, &input); err != nil {
			return nil, err
		}
		return t.Execute(ctx, &input)
	})
	return t
}

func (t *CompareWeatherTool) Execute(ctx context.Context, input *CompareWeatherInput) (*CompareWeatherOutput, error) {
	log.Debugf(ctx, "CompareWeatherTool executing for %d destinations", len(input.Destinations))

	if t.client == nil {
		return nil, fmt.Errorf("weather client not initialized")
	}

	date, err := toolspkg.ParseDate("date", input.Date)
	if err != nil {
		return nil, err
	}

	outcomes := core.Gather(ctx, len(input.Destinations), t.timeout,
		func(ctx context.Context, i int) (*core.WeatherSnapshot, error) {
			return t.client.Snapshot(ctx, input.Destinations[i], date, date, "")
		})

	results := make([]core.DestinationWeather, len(input.Destinations))
	for i, outcome := range outcomes {
		results[i] = core.DestinationWeather{Destination: input.Destinations[i]}
		if outcome.Err != nil {
			results[i].Error = outcome.Err.Error()
			continue
		}
		results[i].Weather = outcome.Value
	}

	return &CompareWeatherOutput{Date: input.Date, Results: results}, nil
}
