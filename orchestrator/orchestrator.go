// Package orchestrator composes the provider capabilities, the cost
// calculator and the scoring engine into the three top-level travel
// operations. Every operation is a single stateless request/response
// transaction.
package orchestrator

import (
	"context"
	"sync"
	"time"

	"github.com/triply/travelhub/core"
	"github.com/triply/travelhub/log"
	"github.com/triply/travelhub/plugins"
)

// Criteria narrows a destination comparison
type Criteria struct {
	Budget     float64  `json:"budget,omitempty"`
	Weather    string   `json:"weather,omitempty"`
	Activities []string `json:"activities,omitempty"`
}

// Orchestrator fans out to the providers and assembles composite results
type Orchestrator struct {
	Weather     plugins.WeatherClient
	Currency    plugins.CurrencyClient
	Translation plugins.TranslationClient
	Inventory   plugins.InventoryClient

	// Timeout bounds each provider branch within an aggregation
	Timeout time.Duration
}

// New creates an orchestrator over the given providers
func New(weather plugins.WeatherClient, currency plugins.CurrencyClient, translation plugins.TranslationClient, inventory plugins.InventoryClient, timeout time.Duration) *Orchestrator {
	return &Orchestrator{
		Weather:     weather,
		Currency:    currency,
		Translation: translation,
		Inventory:   inventory,
		Timeout:     timeout,
	}
}

func (o *Orchestrator) branchCtx(ctx context.Context) (context.Context, context.CancelFunc) {
	if o.Timeout > 0 {
		return context.WithTimeout(ctx, o.Timeout)
	}
	return context.WithCancel(ctx)
}

// PlanTrip validates the request, aggregates all providers concurrently
// and assembles the complete trip plan. Provider failures degrade to
// empty sections; only validation failures reject the operation.
func (o *Orchestrator) PlanTrip(ctx context.Context, req core.TripRequest) (*core.TripPlan, error) {
	if req.Destination == "" {
		return nil, core.Validationf("destination is required")
	}

	nights, err := core.Nights(req.StartDate, req.EndDate)
	if err != nil {
		return nil, err
	}

	travelers := req.Travelers
	if travelers < 1 {
		travelers = 1
	}

	var activityTypes []string
	if req.Preferences != nil {
		activityTypes = req.Preferences.ActivityTypes
	}

	var (
		wg sync.WaitGroup

		weather    *core.WeatherSnapshot
		weatherErr error

		flights    []core.FlightOption
		flightsErr error

		hotels    []core.HotelOption
		hotelsErr error

		activities    []core.ActivityItem
		activitiesErr error

		safety    float64
		safetyErr error
	)

	wg.Add(5)
	go func() {
		defer wg.Done()
		bctx, cancel := o.branchCtx(ctx)
		defer cancel()
		weather, weatherErr = o.Weather.Snapshot(bctx, req.Destination, req.StartDate, req.EndDate, "")
	}()
	go func() {
		defer wg.Done()
		bctx, cancel := o.branchCtx(ctx)
		defer cancel()
		flights, flightsErr = o.Inventory.Flights(bctx, req.Origin, req.Destination, req.StartDate, travelers)
	}()
	go func() {
		defer wg.Done()
		bctx, cancel := o.branchCtx(ctx)
		defer cancel()
		hotels, hotelsErr = o.Inventory.Hotels(bctx, req.Destination, nights)
	}()
	go func() {
		defer wg.Done()
		bctx, cancel := o.branchCtx(ctx)
		defer cancel()
		activities, activitiesErr = o.Inventory.Activities(bctx, req.Destination, activityTypes)
	}()
	go func() {
		defer wg.Done()
		bctx, cancel := o.branchCtx(ctx)
		defer cancel()
		safety, safetyErr = o.Inventory.SafetyRating(bctx, req.Destination)
	}()
	wg.Wait()

	for _, branchErr := range []error{weatherErr, flightsErr, hotelsErr, activitiesErr, safetyErr} {
		if branchErr != nil {
			log.Warnf(ctx, "plan_trip branch degraded for %s: %v", req.Destination, branchErr)
		}
	}

	currency := o.Currency.ForDestination(req.Destination)
	language := o.Translation.LanguageForDestination(req.Destination)

	plan := &core.TripPlan{
		Destination:  req.Destination,
		StartDate:    req.StartDate.Format(core.DateLayout),
		EndDate:      req.EndDate.Format(core.DateLayout),
		Travelers:    travelers,
		Weather:      weather,
		Flights:      flights,
		Hotels:       hotels,
		Activities:   activities,
		TotalCost:    core.ComputeCost(flights, hotels, activities, travelers),
		Currency:     currency.Code,
		Language:     language,
		SafetyRating: safety,
	}
	if plan.Flights == nil {
		plan.Flights = []core.FlightOption{}
	}
	if plan.Hotels == nil {
		plan.Hotels = []core.HotelOption{}
	}
	if plan.Activities == nil {
		plan.Activities = []core.ActivityItem{}
	}

	return plan, nil
}

// CompareDestinations aggregates weather, hotel cost, safety and filtered
// activities for each destination, scores them and returns the sequence
// sorted descending by score. A failing destination keeps its slot with an
// error instead of dropping from the list.
func (o *Orchestrator) CompareDestinations(ctx context.Context, destinations []string, criteria Criteria) ([]core.DestinationScore, error) {
	if len(destinations) == 0 {
		return nil, core.Validationf("at least one destination is required")
	}

	outcomes := core.Gather(ctx, len(destinations), 0,
		func(ctx context.Context, i int) (core.DestinationScore, error) {
			return o.scoreDestination(ctx, destinations[i], criteria)
		})

	scores := make([]core.DestinationScore, len(destinations))
	for i, outcome := range outcomes {
		if outcome.Err != nil {
			log.Warnf(ctx, "comparison failed for %s: %v", destinations[i], outcome.Err)
			scores[i] = core.DestinationScore{
				Destination: destinations[i],
				Error:       outcome.Err.Error(),
			}
			continue
		}
		scores[i] = outcome.Value
	}

	return core.RankDestinations(scores), nil
}

// scoreDestination gathers the scoring inputs for one destination
func (o *Orchestrator) scoreDestination(ctx context.Context, destination string, criteria Criteria) (core.DestinationScore, error) {
	var (
		wg sync.WaitGroup

		weather    *core.WeatherSnapshot
		weatherErr error

		hotels    []core.HotelOption
		hotelsErr error

		activities    []core.ActivityItem
		activitiesErr error

		safety    float64
		safetyErr error
	)

	wg.Add(4)
	go func() {
		defer wg.Done()
		bctx, cancel := o.branchCtx(ctx)
		defer cancel()
		weather, weatherErr = o.Weather.Snapshot(bctx, destination, time.Time{}, time.Time{}, "")
	}()
	go func() {
		defer wg.Done()
		bctx, cancel := o.branchCtx(ctx)
		defer cancel()
		hotels, hotelsErr = o.Inventory.Hotels(bctx, destination, 1)
	}()
	go func() {
		defer wg.Done()
		bctx, cancel := o.branchCtx(ctx)
		defer cancel()
		activities, activitiesErr = o.Inventory.Activities(bctx, destination, criteria.Activities)
	}()
	go func() {
		defer wg.Done()
		bctx, cancel := o.branchCtx(ctx)
		defer cancel()
		safety, safetyErr = o.Inventory.SafetyRating(bctx, destination)
	}()
	wg.Wait()

	// Weather and hotels are required scoring inputs; the rest degrade
	if weatherErr != nil {
		return core.DestinationScore{}, weatherErr
	}
	if hotelsErr != nil {
		return core.DestinationScore{}, hotelsErr
	}
	if activitiesErr != nil {
		log.Warnf(ctx, "activities degraded for %s: %v", destination, activitiesErr)
	}
	if safetyErr != nil {
		log.Warnf(ctx, "safety rating degraded for %s: %v", destination, safetyErr)
	}

	avgHotelCost := averageHotelCost(hotels)
	score := core.DestinationScore{
		Destination:      destination,
		Weather:          &weather.Current,
		AverageHotelCost: avgHotelCost,
		SafetyRating:     safety,
		ActivityScore:    len(activities),
		OverallScore: core.Score(weather.Current.Conditions, criteria.Weather,
			avgHotelCost, safety, len(activities)),
	}
	return score, nil
}

func averageHotelCost(hotels []core.HotelOption) float64 {
	if len(hotels) == 0 {
		return 0
	}
	var sum float64
	for _, h := range hotels {
		sum += h.PricePerNight
	}
	return sum / float64(len(hotels))
}
