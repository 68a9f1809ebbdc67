package weather

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

// flakyClient fails for one destination and delegates everything else
type flakyClient struct {
	plugins.WeatherClient
	failFor string
}

func (f *flakyClient) Snapshot(ctx context.Context, destination string, start, end time.Time, units string) (*core.WeatherSnapshot, error) {
	if destination == f.failFor {
		return nil, fmt.Errorf("upstream unavailable")
	}
	return f.WeatherClient.Snapshot(ctx, destination, start, end, units)
}

func TestTravelWeatherTool_Execute(t *testing.T) {
	tool := NewTravelWeatherTool(NewMockClient(rand.New(rand.NewSource(1))), nil, nil)

	out, err := tool.Execute(context.Background(), &TravelWeatherInput{
		Destination: "Tokyo",
		StartDate:   "2024-06-01",
		EndDate:     "2024-06-08",
	})
	assert.NoError(t, err)
	assert.Equal(t, "Tokyo", out.Destination)
	assert.Len(t, out.Forecast, 8)
}

func TestTravelWeatherTool_InvalidDateRange(t *testing.T) {
	tool := NewTravelWeatherTool(NewMockClient(nil), nil, nil)

	_, err := tool.Execute(context.Background(), &TravelWeatherInput{
		Destination: "Tokyo",
		StartDate:   "2024-06-08",
		EndDate:     "2024-06-01",
	})
	assert.Error(t, err)
	assert.True(t, core.IsValidation(err))
}

func TestWeatherAlertsTool_Execute(t *testing.T) {
	tool := NewWeatherAlertsTool(NewMockClient(rand.New(rand.NewSource(2))), nil, nil)

	out, err := tool.Execute(context.Background(), &WeatherAlertsInput{Destination: "Sydney"})
	assert.NoError(t, err)
	assert.Equal(t, "Sydney", out.Destination)
	assert.Equal(t, len(out.Alerts), out.Count)
}

func TestCompareWeatherTool_KeepsOrderWithFailures(t *testing.T) {
	client := &flakyClient{
		WeatherClient: NewMockClient(rand.New(rand.NewSource(3))),
		failFor:       "B",
	}
	tool := NewCompareWeatherTool(client, time.Second, nil, nil)

	out, err := tool.Execute(context.Background(), &CompareWeatherInput{
		Destinations: []string{"A", "B", "C"},
	})
	assert.NoError(t, err)
	assert.Len(t, out.Results, 3)

	assert.Equal(t, "A", out.Results[0].Destination)
	assert.NotNil(t, out.Results[0].Weather)
	assert.Empty(t, out.Results[0].Error)

	// The failing destination keeps its slot instead of dropping out
	assert.Equal(t, "B", out.Results[1].Destination)
	assert.Nil(t, out.Results[1].Weather)
	assert.Equal(t, "upstream unavailable", out.Results[1].Error)

	assert.Equal(t, "C", out.Results[2].Destination)
	assert.NotNil(t, out.Results[2].Weather)
}
