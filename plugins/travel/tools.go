// Package travel registers the composite trip tools backed by the
// orchestrator.
package travel

import (
	"context"
	"fmt"

	"github.com/firebase/genkit/go/ai"
	"github.com/firebase/genkit/go/genkit"
	"github.com/triply/travelhub/core"
	"github.com/triply/travelhub/log"
	"github.com/triply/travelhub/orchestrator"
	toolspkg "github.com/triply/travelhub/tools"
)

// RegisterTools wires the composite travel tools
func RegisterTools(orch *orchestrator.Orchestrator, gk *genkit.Genkit, registry *toolspkg.Registry) {
	if gk == nil || registry == nil {
		return
	}
	NewPlanTripTool(orch, gk, registry)
	NewTravelInsightsTool(orch, gk, registry)
	NewCompareDestinationsTool(orch, gk, registry)
}

// --- Plan Trip Tool ---

type PlanTripInput struct {
	Destination string                `json:"destination" validate:"required" description:"Destination city or region name"`
	StartDate   string                `json:"startDate" validate:"required,datetime=2006-01-02" description:"Trip start date (YYYY-MM-DD)"`
	EndDate     string                `json:"endDate" validate:"required,datetime=2006-01-02" description:"Trip end date (YYYY-MM-DD)"`
	Origin      string                `json:"origin,omitempty" description:"Origin city for flight search"`
	Budget      float64               `json:"budget,omitempty" validate:"omitempty,gte=0" description:"Total trip budget"`
	Travelers   int                   `json:"travelers,omitempty" validate:"omitempty,min=1" description:"Number of travelers, defaults to 1"`
	Preferences *core.TripPreferences `json:"preferences,omitempty" description:"Optional activity and weather preferences"`
}

type PlanTripTool struct {
	orch *orchestrator.Orchestrator
}

func NewPlanTripTool(orch *orchestrator.Orchestrator, gk *genkit.Genkit, registry *toolspkg.Registry) *PlanTripTool {
	t := &PlanTripTool{orch: orch}
	if gk == nil || registry == nil {
		return t
	}

	registry.Register(genkit.DefineTool[*PlanTripInput, *core.TripPlan](
		gk,
		"plan_trip",
		"Builds a complete trip plan with weather, flights, hotels, activities, total cost, currency and language for a destination.",
		func(ctx *ai.ToolContext, input *PlanTripInput) (*core.TripPlan, error) {
			return t.Execute(ctx, input)
		},
	), func(ctx context.Context, args map[string]interface{}) (interface{}, error) {
		var input PlanTripInput
		if err := toolspkg.DecodeArgs(args, &input); err != nil {
			return nil, err
		}
		return t.Execute(ctx, &input)
	})
	return t
}

func (t *PlanTripTool) Execute(ctx context.Context, input *PlanTripInput) (*core.TripPlan, error) {
	log.Infof(ctx, "PlanTripTool executing for %s", input.Destination)

	if t.orch == nil {
		return nil, fmt.Errorf("orchestrator not initialized")
	}

	start, end, err := toolspkg.ParseDateRange(input.StartDate, input.EndDate)
	if err != nil {
		return nil, err
	}

	plan, err := t.orch.PlanTrip(ctx, core.TripRequest{
		Destination: input.Destination,
		Origin:      input.Origin,
		StartDate:   start,
		EndDate:     end,
		Budget:      input.Budget,
		Travelers:   input.Travelers,
		Preferences: input.Preferences,
	})
	if err != nil {
		log.Errorf(ctx, "PlanTripTool failed: %v", err)
		return nil, err
	}

	log.Infof(ctx, "PlanTripTool completed for %s, total cost %.2f", plan.Destination, plan.TotalCost)
	return plan, nil
}

// --- Travel Insights Tool ---

type TravelInsightsInput struct {
	Destination string `json:"destination" validate:"required" description:"Destination city or region name"`
	TravelDate  string `json:"travelDate,omitempty" validate:"omitempty,datetime=2006-01-02" description:"Planned travel date (YYYY-MM-DD)"`
}

type TravelInsightsTool struct {
	orch *orchestrator.Orchestrator
}

func NewTravelInsightsTool(orch *orchestrator.Orchestrator, gk *genkit.Genkit, registry *toolspkg.Registry) *TravelInsightsTool {
	t := &TravelInsightsTool{orch: orch}
	if gk == nil || registry == nil {
		return t
	}

	registry.Register(genkit.DefineTool[*TravelInsightsInput, *core.TravelInsights](
		gk,
		"get_travel_insights",
		"Returns advisory insights for a destination: best time to visit, weather outlook, local events, cultural tips, visa and vaccination notes.",
		func(ctx *ai.ToolContext, input *TravelInsightsInput) (*core.TravelInsights, error) {
			return t.Execute(ctx, input)
		},
	), func(ctx context.Context, args map[string]interface{}) (interface{}, error) {
		var input TravelInsightsInput
		if err := toolspkg.DecodeArgs(args, &input); err != nil {
			return nil, err
		}
		return t.Execute(ctx, &input)
	})
	return t
}

func (t *TravelInsightsTool) Execute(ctx context.Context, input *TravelInsightsInput) (*core.TravelInsights, error) {
	log.Debugf(ctx, "TravelInsightsTool executing for %s", input.Destination)

	if t.orch == nil {
		return nil, fmt.Errorf("orchestrator not initialized")
	}

	date, err := toolspkg.ParseDate("travelDate", input.TravelDate)
	if err != nil {
		return nil, err
	}

	insights, err := t.orch.GetTravelInsights(ctx, input.Destination, date)
	if err != nil {
		log.Errorf(ctx, "TravelInsightsTool failed: %v", err)
		return nil, err
	}
	return insights, nil
}

// --- Compare Destinations Tool ---

type CompareDestinationsInput struct {
	Destinations []string               `json:"destinations" validate:"required,min=1,dive,required" description:"Destinations to compare"`
	Criteria     *orchestrator.Criteria `json:"criteria,omitempty" description:"Optional comparison criteria: budget, weather preference, activity types"`
}

type CompareDestinationsOutput struct {
	Results []core.DestinationScore `json:"results"`
}

type CompareDestinationsTool struct {
	orch *orchestrator.Orchestrator
}

func NewCompareDestinationsTool(orch *orchestrator.Orchestrator, gk *genkit.Genkit, registry *toolspkg.Registry) *CompareDestinationsTool {
	t := &CompareDestinationsTool{orch: orch}
	if gk == nil || registry == nil {
		return t
	}

	registry.Register(genkit.DefineTool[*CompareDestinationsInput, *CompareDestinationsOutput](
		gk,
		"compare_destinations",
		"Scores several destinations on weather, hotel cost, safety and activities and returns them sorted by overall score.",
		func(ctx *ai.ToolContext, input *CompareDestinationsInput) (*CompareDestinationsOutput, error) {
			return t.Execute(ctx, input)
		},
	), func(ctx context.Context, args map[string]interface{}) (interface{}, error) {
		var input CompareDestinationsInput
		if err := toolspkg.DecodeArgs(args, &input); err != nil {
			return nil, err
		}
		return t.Execute(ctx, &input)
	})
	return t
}

func (t *CompareDestinationsTool) Execute(ctx context.Context, input *CompareDestinationsInput) (*CompareDestinationsOutput, error) {
	log.Infof(ctx, "CompareDestinationsTool executing for %d destinations", len(input.Destinations))

	if t.orch == nil {
		return nil, fmt.Errorf("orchestrator not initialized")
	}

	criteria := orchestrator.Criteria{}
	if input.Criteria != nil {
		criteria = *input.Criteria
	}

	scores, err := t.orch.CompareDestinations(ctx, input.Destinations, criteria)
	if err != nil {
		log.Errorf(ctx, "CompareDestinationsTool failed: %v", err)
		return nil, err
	}
	return &CompareDestinationsOutput{Results: scores}, nil
}
