// Package weather provides the weather provider capability: a live
// WeatherAPI.com client and a deterministic mock, plus the weather tools.
package weather

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

const providerName = "weather"

// maxForecastDays is the largest forecast window WeatherAPI serves
const maxForecastDays = 14

// Client is the live WeatherAPI.com implementation of plugins.WeatherClient
type Client struct {
	BaseURL    string
	APIKey     string
	HTTPClient *http.Client

	limiter *rate.Limiter
}

var _ plugins.WeatherClient = (*Client)(nil)

// NewClient creates a live weather client
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

// forecastResponse mirrors the WeatherAPI forecast.json payload
type forecastResponse struct {
	Current struct {
		TempC     float64 `json:"temp_c"`
		TempF     float64 `json:"temp_f"`
		Humidity  int     `json:"humidity"`
		WindKph   float64 `json:"wind_kph"`
		WindMph   float64 `json:"wind_mph"`
		Condition struct {
			Text string `json:"text"`
		} `json:"condition"`
	} `json:"current"`
	Forecast struct {
		ForecastDay []struct {
			Date string `json:"date"`
			Day  struct {
				AvgTempC  float64 `json:"avgtemp_c"`
				AvgTempF  float64 `json:"avgtemp_f"`
				Condition struct {
					Text string `json:"text"`
				} `json:"condition"`
			} `json:"day"`
		} `json:"forecastday"`
	} `json:"forecast"`
	Alerts struct {
		Alert []struct {
			Headline string `json:"headline"`
			Severity string `json:"severity"`
			Event    string `json:"event"`
			Desc     string `json:"desc"`
		} `json:"alert"`
	} `json:"alerts"`
}

func (c *Client) fetch(ctx context.Context, destination string, days int, alerts bool) (*forecastResponse, error) {
	if err := plugins.WaitLimiter(ctx, c.limiter); err != nil {
		return nil, err
	}

	alertsFlag := "no"
	if alerts {
		alertsFlag = "yes"
	}
	endpoint := fmt.Sprintf("%s/forecast.json?key=%s&q=%s&days=%d&aqi=no&alerts=%s",
		c.BaseURL, c.APIKey, url.QueryEscape(destination), days, alertsFlag)

	req, err := http.NewRequestWithContext(ctx, "GET", endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return nil, &plugins.UpstreamError{Provider: providerName, Message: err.Error()}
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		var apiErr struct {
			Error struct {
				Message string `json:"message"`
			} `json:"error"`
		}
		_ = json.NewDecoder(resp.Body).Decode(&apiErr)
		return nil, &plugins.UpstreamError{
			Provider: providerName,
			Status:   resp.StatusCode,
			Message:  apiErr.Error.Message,
		}
	}

	var payload forecastResponse
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, &plugins.UpstreamError{Provider: providerName, Message: "malformed response: " + err.Error()}
	}

	return &payload, nil
}

// Snapshot returns current conditions plus a per-day forecast for the range
func (c *Client) Snapshot(ctx context.Context, destination string, start, end time.Time, units string) (*core.WeatherSnapshot, error) {
	days := forecastDays(start, end)
	payload, err := c.fetch(ctx, destination, days, false)
	if err != nil {
		return nil, err
	}

	imperial := units == "imperial"
	snapshot := &core.WeatherSnapshot{
		Destination: destination,
		Units:       unitsOrDefault(units),
		Current: core.CurrentWeather{
			Temperature: pick(imperial, payload.Current.TempF, payload.Current.TempC),
			Conditions:  payload.Current.Condition.Text,
			Humidity:    payload.Current.Humidity,
			WindSpeed:   pick(imperial, payload.Current.WindMph, payload.Current.WindKph),
		},
	}

	for _, day := range payload.Forecast.ForecastDay {
		snapshot.Forecast = append(snapshot.Forecast, core.ForecastDay{
			Date:        day.Date,
			Temperature: pick(imperial, day.Day.AvgTempF, day.Day.AvgTempC),
			Conditions:  day.Day.Condition.Text,
		})
	}

	return snapshot, nil
}

// Alerts returns active weather alerts for a destination, possibly empty
func (c *Client) Alerts(ctx context.Context, destination string) ([]core.WeatherAlert, error) {
	payload, err := c.fetch(ctx, destination, 1, true)
	if err != nil {
		return nil, err
	}

	alerts := make([]core.WeatherAlert, 0, len(payload.Alerts.Alert))
	for _, a := range payload.Alerts.Alert {
		description := a.Desc
		if description == "" {
			description = a.Headline
		}
		alerts = append(alerts, core.WeatherAlert{
			Severity:    a.Severity,
			Event:       a.Event,
			Description: description,
		})
	}
	return alerts, nil
}

// forecastDays counts the calendar days in [start, end], both inclusive,
// capped to what the API serves. Zero dates default to a week.
func forecastDays(start, end time.Time) int {
	if start.IsZero() || end.IsZero() {
		return 7
	}
	days := int(end.Sub(start).Hours()/24) + 1
	if days < 1 {
		days = 1
	}
	if days > maxForecastDays {
		days = maxForecastDays
	}
	return days
}

func unitsOrDefault(units string) string {
	if units == "" {
		return "metric"
	}
	return units
}

func pick(imperial bool, f, c float64) float64 {
	if imperial {
		return f
	}
	return c
}
