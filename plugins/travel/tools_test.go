package travel

import (
	"context"
	"math/rand"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/triply/travelhub/core"
	"github.com/triply/travelhub/orchestrator"
	"github.com/triply/travelhub/plugins/currency"
	"github.com/triply/travelhub/plugins/inventory"
	"github.com/triply/travelhub/plugins/translate"
	"github.com/triply/travelhub/plugins/weather"
)

func newTestOrchestrator(seed int64) *orchestrator.Orchestrator {
	return orchestrator.New(
		weather.NewMockClient(rand.New(rand.NewSource(seed))),
		currency.NewMockClient(rand.New(rand.NewSource(seed))),
		translate.NewMockClient(rand.New(rand.NewSource(seed))),
		inventory.NewClient(rand.New(rand.NewSource(seed))),
		time.Second,
	)
}

func TestPlanTripTool_Execute(t *testing.T) {
	tool := NewPlanTripTool(newTestOrchestrator(1), nil, nil)

	plan, err := tool.Execute(context.Background(), &PlanTripInput{
		Destination: "Tokyo",
		StartDate:   "2024-06-01",
		EndDate:     "2024-06-08",
		Origin:      "London",
		Travelers:   2,
		Preferences: &core.TripPreferences{ActivityTypes: []string{"food", "museum"}},
	})
	assert.NoError(t, err)

	assert.Equal(t, "Tokyo", plan.Destination)
	assert.Equal(t, 2, plan.Travelers)
	assert.Equal(t, "JPY", plan.Currency)
	assert.Equal(t, "japanese", plan.Language)
	assert.NotEmpty(t, plan.Flights)
	assert.NotEmpty(t, plan.Hotels)
	assert.Greater(t, plan.TotalCost, 0.0)

	// Preference filter narrows the activities
	for _, a := range plan.Activities {
		assert.Contains(t, []string{"food", "museum"}, a.Type)
	}
}

func TestPlanTripTool_InvalidDates(t *testing.T) {
	tool := NewPlanTripTool(newTestOrchestrator(1), nil, nil)

	_, err := tool.Execute(context.Background(), &PlanTripInput{
		Destination: "Tokyo",
		StartDate:   "2024-06-08",
		EndDate:     "2024-06-01",
	})
	assert.Error(t, err)
	assert.True(t, core.IsValidation(err))
}

func TestTravelInsightsTool_Execute(t *testing.T) {
	tool := NewTravelInsightsTool(newTestOrchestrator(2), nil, nil)

	insights, err := tool.Execute(context.Background(), &TravelInsightsInput{
		Destination: "Paris",
		TravelDate:  "2024-06-01",
	})
	assert.NoError(t, err)
	assert.Equal(t, "Paris", insights.Destination)
	assert.Equal(t, "2024-06-01", insights.TravelDate)
	assert.NotEmpty(t, insights.BestTimeToVisit)
	assert.NotEmpty(t, insights.WeatherOutlook)
	assert.Contains(t, insights.VisaRequirements, "France")
}

func TestCompareDestinationsTool_Execute(t *testing.T) {
	tool := NewCompareDestinationsTool(newTestOrchestrator(3), nil, nil)

	out, err := tool.Execute(context.Background(), &CompareDestinationsInput{
		Destinations: []string{"Paris", "Tokyo", "Sydney"},
		Criteria:     &orchestrator.Criteria{Weather: "sunny"},
	})
	assert.NoError(t, err)
	assert.Len(t, out.Results, 3)

	// Sorted descending by score
	for i := 1; i < len(out.Results); i++ {
		assert.GreaterOrEqual(t, out.Results[i-1].OverallScore, out.Results[i].OverallScore)
	}
	for _, s := range out.Results {
		assert.Empty(t, s.Error)
		assert.NotNil(t, s.Weather)
	}
}
