// Package inventory generates flight, hotel, activity and safety data for
// a destination. There is no live upstream for these, so the generator is
// the only implementation; shapes are stable, values randomized.
package inventory

import (
	"context"
	"fmt"
	"math"
	"math/rand"
	"strings"
	"sync"
	"time"

	"github.com/triply/travelhub/core"
	"github.com/triply/travelhub/plugins"
)

var airlines = []string{"SkyBridge Air", "Transglobal Airways", "Pacific Wing", "AeroNova", "Meridian Airlines"}

var hotelNames = []string{
	"Grand Plaza Hotel", "Riverside Boutique Inn", "Central Station Suites",
	"Garden Court Hotel", "Old Town Residence",
}

var hotelAmenities = []string{"wifi", "breakfast", "pool", "gym", "spa", "parking"}

var activityCatalog = []struct {
	Name     string
	Type     string
	Duration string
}{
	{"Old Town Walking Tour", "sightseeing", "3 hours"},
	{"Harbor Sunset Cruise", "sightseeing", "2 hours"},
	{"National Museum", "museum", "2 hours"},
	{"Modern Art Gallery", "museum", "90 minutes"},
	{"River Kayaking", "outdoor", "4 hours"},
	{"Street Food Tour", "food", "3 hours"},
	{"Cooking Class with a Local Chef", "food", "3 hours"},
	{"Rooftop Bar Evening", "nightlife", "4 hours"},
	{"Central Market Visit", "shopping", "2 hours"},
	{"Mountain Day Hike", "adventure", "6 hours"},
	{"Traditional Craft Workshop", "cultural", "2 hours"},
}

// Client generates inventory data with an injectable random source
type Client struct {
	// Now is injectable for tests
	Now func() time.Time

	mu  sync.Mutex
	rng *rand.Rand
}

var _ plugins.InventoryClient = (*Client)(nil)

// NewClient creates an inventory generator with the given random source
func NewClient(rng *rand.Rand) *Client {
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return &Client{Now: time.Now, rng: rng}
}

func (c *Client) randFloat(min, max float64) float64 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return min + c.rng.Float64()*(max-min)
}

func (c *Client) randInt(n int) int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.rng.Intn(n)
}

// Flights returns a few flight options to the destination. Prices cover
// the whole party, scaled by the traveler count.
func (c *Client) Flights(_ context.Context, origin, destination string, date time.Time, travelers int) ([]core.FlightOption, error) {
	if travelers < 1 {
		travelers = 1
	}
	if origin == "" {
		origin = "your city"
	}

	day := date
	if day.IsZero() {
		day = c.Now()
	}

	flights := make([]core.FlightOption, 0, 3)
	for i := 0; i < 3; i++ {
		departHour := 6 + c.randInt(14)
		durationHours := 2 + c.randInt(11)
		perPerson := c.randFloat(250, 700)
		flights = append(flights, core.FlightOption{
			Airline:      airlines[c.randInt(len(airlines))],
			FlightNumber: fmt.Sprintf("%s%d", airlineCode(airlines[0]), 100+c.randInt(900)),
			Departure:    fmt.Sprintf("%s %02d:00 (%s)", day.Format(core.DateLayout), departHour, origin),
			Arrival:      fmt.Sprintf("%s %02d:00 (%s)", day.Format(core.DateLayout), (departHour+durationHours)%24, destination),
			Price:        round2(perPerson * float64(travelers)),
			Rating:       round1(c.randFloat(3.0, 5.0)),
			Duration:     fmt.Sprintf("%dh", durationHours),
		})
	}
	return flights, nil
}

// Hotels returns hotel options with totals for the given number of nights
func (c *Client) Hotels(_ context.Context, destination string, nights int) ([]core.HotelOption, error) {
	if nights < 1 {
		return nil, core.Validationf("nights must be at least 1, got %d", nights)
	}

	hotels := make([]core.HotelOption, 0, 4)
	for i := 0; i < 4; i++ {
		perNight := round2(c.randFloat(80, 300))
		amenityCount := 2 + c.randInt(3)
		hotels = append(hotels, core.HotelOption{
			Name:          fmt.Sprintf("%s %s", destination, hotelNames[i%len(hotelNames)]),
			PricePerNight: perNight,
			TotalPrice:    round2(perNight * float64(nights)),
			Rating:        round1(c.randFloat(3.0, 5.0)),
			Amenities:     pickAmenities(c, amenityCount),
		})
	}
	return hotels, nil
}

// Activities returns catalog activities for the destination, filtered to
// the requested types when provided. An empty filter keeps everything.
func (c *Client) Activities(_ context.Context, destination string, activityTypes []string) ([]core.ActivityItem, error) {
	wanted := make(map[string]bool, len(activityTypes))
	for _, t := range activityTypes {
		wanted[strings.ToLower(t)] = true
	}

	activities := make([]core.ActivityItem, 0, len(activityCatalog))
	for _, entry := range activityCatalog {
		if len(wanted) > 0 && !wanted[entry.Type] {
			continue
		}
		activities = append(activities, core.ActivityItem{
			Name:     entry.Name,
			Type:     entry.Type,
			Price:    round2(c.randFloat(20, 120)),
			Rating:   round1(c.randFloat(3.5, 5.0)),
			Duration: entry.Duration,
		})
	}
	return activities, nil
}

// SafetyRating returns a 0-5 safety rating for the destination
func (c *Client) SafetyRating(_ context.Context, destination string) (float64, error) {
	return round1(c.randFloat(3.0, 5.0)), nil
}

func airlineCode(airline string) string {
	fields := strings.Fields(airline)
	code := ""
	for _, f := range fields {
		code += strings.ToUpper(f[:1])
	}
	return code
}

func pickAmenities(c *Client, n int) []string {
	if n > len(hotelAmenities) {
		n = len(hotelAmenities)
	}
	start := c.randInt(len(hotelAmenities))
	amenities := make([]string, 0, n)
	for i := 0; i < n; i++ {
		amenities = append(amenities, hotelAmenities[(start+i)%len(hotelAmenities)])
	}
	return amenities
}

func round1(v float64) float64 { return math.Round(v*10) / 10 }
func round2(v float64) float64 { return math.Round(v*100) / 100 }
