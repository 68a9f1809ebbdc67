package orchestrator

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/triply/travelhub/core"
	"github.com/triply/travelhub/log"
)

var bestTimesToVisit = map[string]string{
	"Paris":          "April to June and September to October",
	"London":         "May to September",
	"Tokyo":          "March to May and October to November",
	"New York":       "April to June and September to early November",
	"Sydney":         "September to November and March to May",
	"Rome":           "April to June and September to October",
	"Barcelona":      "May to June and September to October",
	"Berlin":         "May to September",
	"Amsterdam":      "April to May and September to November",
	"Dubai":          "November to March",
	"Singapore":      "February to April",
	"Bangkok":        "November to February",
	"Mumbai":         "November to February",
	"Rio de Janeiro": "December to March",
	"Cairo":          "October to April",
	"Istanbul":       "April to May and September to November",
	"Moscow":         "May to September",
	"Seoul":          "March to May and September to November",
	"Mexico City":    "March to May",
	"Toronto":        "May to October",
}

const defaultBestTime = "Spring and autumn usually offer mild weather and smaller crowds"

var localEvents = map[string][]string{
	"Paris":    {"Bastille Day celebrations in July", "Nuit Blanche arts night in October", "Fete de la Musique in June"},
	"London":   {"Notting Hill Carnival in August", "Winter markets on the South Bank", "Chelsea Flower Show in May"},
	"Tokyo":    {"Cherry blossom season in late March", "Sumida River fireworks in July", "Autumn foliage in November"},
	"New York": {"US Open tennis in late August", "Thanksgiving Day Parade in November", "Summer concerts in Central Park"},
	"Rome":     {"Estate Romana summer festival", "Rome Film Fest in October"},
	"Sydney":   {"Vivid Sydney light festival in May", "New Year fireworks over the harbour"},
	"Bangkok":  {"Songkran water festival in April", "Loy Krathong lantern festival in November"},
	"Dubai":    {"Dubai Shopping Festival from December to January"},
}

var defaultLocalEvents = []string{
	"Check local listings for festivals and markets during your stay",
}

var culturalTips = map[string][]string{
	"Paris":     {"Greet shopkeepers with 'Bonjour' when entering", "Dinner is typically served after 19:30"},
	"London":    {"Stand on the right on escalators", "Queueing is taken seriously"},
	"Tokyo":     {"Remove shoes when entering homes and some restaurants", "Tipping is not customary", "Avoid phone calls on trains"},
	"New York":  {"Tipping 18-20% is expected in restaurants", "Walk on the right side of the sidewalk"},
	"Dubai":     {"Dress modestly in public areas", "Public displays of affection are frowned upon"},
	"Bangkok":   {"Dress respectfully when visiting temples", "The head is considered sacred, the feet lowly"},
	"Rome":      {"Cover shoulders and knees when visiting churches", "Cappuccino is a morning drink"},
	"Seoul":     {"Use both hands when giving or receiving items", "Remove shoes indoors"},
	"Istanbul":  {"Remove shoes before entering mosques", "Bargaining is expected in the bazaars"},
	"Singapore": {"Chewing gum sale is restricted", "Fines for littering are strictly enforced"},
}

var defaultCulturalTips = []string{
	"Learn a few words of the local language",
	"Research tipping customs before you arrive",
}

var defaultVaccinations = []string{
	"Routine vaccinations should be up to date",
	"Hepatitis A is recommended for most travelers",
}

// GetTravelInsights assembles the advisory view of a destination, blending
// live weather with curated local knowledge
func (o *Orchestrator) GetTravelInsights(ctx context.Context, destination string, travelDate time.Time) (*core.TravelInsights, error) {
	if destination == "" {
		return nil, core.Validationf("destination is required")
	}

	bctx, cancel := o.branchCtx(ctx)
	defer cancel()

	start := travelDate
	var end time.Time
	if !start.IsZero() {
		end = start.AddDate(0, 0, 6)
	}

	outlook := "Weather outlook is currently unavailable"
	weather, err := o.Weather.Snapshot(bctx, destination, start, end, "")
	if err != nil {
		log.Warnf(ctx, "weather outlook degraded for %s: %v", destination, err)
	} else {
		outlook = weatherOutlook(weather)
	}

	insights := &core.TravelInsights{
		Destination:      destination,
		BestTimeToVisit:  lookupOrDefault(bestTimesToVisit, destination, defaultBestTime),
		WeatherOutlook:   outlook,
		LocalEvents:      lookupOrDefaultList(localEvents, destination, defaultLocalEvents),
		CulturalTips:     lookupOrDefaultList(culturalTips, destination, defaultCulturalTips),
		VisaRequirements: visaRequirements(o.Currency.ForDestination(destination).Country),
		Vaccinations:     defaultVaccinations,
	}
	if !travelDate.IsZero() {
		insights.TravelDate = travelDate.Format(core.DateLayout)
	}

	return insights, nil
}

func weatherOutlook(snapshot *core.WeatherSnapshot) string {
	unit := "°C"
	if snapshot.Units == "imperial" {
		unit = "°F"
	}
	if len(snapshot.Forecast) == 0 {
		return fmt.Sprintf("Currently %.0f%s and %s",
			snapshot.Current.Temperature, unit, strings.ToLower(snapshot.Current.Conditions))
	}
	var sum float64
	for _, day := range snapshot.Forecast {
		sum += day.Temperature
	}
	avg := sum / float64(len(snapshot.Forecast))
	return fmt.Sprintf("Around %.0f%s and %s over the next %d days",
		avg, unit, strings.ToLower(snapshot.Forecast[0].Conditions), len(snapshot.Forecast))
}

func visaRequirements(country string) string {
	if country == "" || country == "Unknown" {
		return "Check visa requirements with the destination's embassy before travel"
	}
	return fmt.Sprintf("Check visa requirements for %s with your local embassy before travel", country)
}

func lookupOrDefault(m map[string]string, key, fallback string) string {
	if v, ok := m[key]; ok {
		return v
	}
	return fallback
}

func lookupOrDefaultList(m map[string][]string, key string, fallback []string) []string {
	if v, ok := m[key]; ok {
		return v
	}
	return fallback
}
