package inventory

import (
	"context"
	"math/rand"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/triply/travelhub/core"
)

func TestClient_Flights(t *testing.T) {
	client := NewClient(rand.New(rand.NewSource(1)))
	date := time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)

	flights, err := client.Flights(context.Background(), "London", "Tokyo", date, 2)
	assert.NoError(t, err)
	assert.Len(t, flights, 3)

	for _, f := range flights {
		assert.NotEmpty(t, f.Airline)
		assert.Contains(t, f.Departure, "2024-06-01")
		assert.Contains(t, f.Departure, "London")
		assert.Contains(t, f.Arrival, "Tokyo")
		// Party of two pays double the per-person band
		assert.GreaterOrEqual(t, f.Price, 500.0)
		assert.LessOrEqual(t, f.Price, 1400.0)
		assert.GreaterOrEqual(t, f.Rating, 3.0)
		assert.LessOrEqual(t, f.Rating, 5.0)
	}
}

func TestClient_FlightsDefaults(t *testing.T) {
	client := NewClient(rand.New(rand.NewSource(2)))
	client.Now = func() time.Time { return time.Date(2024, 7, 1, 0, 0, 0, 0, time.UTC) }

	flights, err := client.Flights(context.Background(), "", "Paris", time.Time{}, 0)
	assert.NoError(t, err)
	assert.Len(t, flights, 3)
	assert.Contains(t, flights[0].Departure, "2024-07-01")
	assert.Contains(t, flights[0].Departure, "your city")
}

func TestClient_Hotels(t *testing.T) {
	client := NewClient(rand.New(rand.NewSource(3)))

	hotels, err := client.Hotels(context.Background(), "Rome", 5)
	assert.NoError(t, err)
	assert.Len(t, hotels, 4)

	for _, h := range hotels {
		assert.Contains(t, h.Name, "Rome")
		assert.InDelta(t, h.PricePerNight*5, h.TotalPrice, 0.01)
		assert.NotEmpty(t, h.Amenities)
	}
}

func TestClient_HotelsInvalidNights(t *testing.T) {
	client := NewClient(nil)

	_, err := client.Hotels(context.Background(), "Rome", 0)
	assert.Error(t, err)
	assert.True(t, core.IsValidation(err))
}

func TestClient_Activities(t *testing.T) {
	client := NewClient(rand.New(rand.NewSource(4)))

	all, err := client.Activities(context.Background(), "Barcelona", nil)
	assert.NoError(t, err)
	assert.Len(t, all, len(activityCatalog))
}

func TestClient_ActivitiesTypeFilter(t *testing.T) {
	client := NewClient(rand.New(rand.NewSource(5)))

	filtered, err := client.Activities(context.Background(), "Barcelona", []string{"Food", "MUSEUM"})
	assert.NoError(t, err)
	assert.NotEmpty(t, filtered)
	for _, a := range filtered {
		assert.Contains(t, []string{"food", "museum"}, a.Type)
	}

	none, err := client.Activities(context.Background(), "Barcelona", []string{"skydiving"})
	assert.NoError(t, err)
	assert.Empty(t, none)
}

func TestClient_SafetyRating(t *testing.T) {
	client := NewClient(rand.New(rand.NewSource(6)))

	rating, err := client.SafetyRating(context.Background(), "Amsterdam")
	assert.NoError(t, err)
	assert.GreaterOrEqual(t, rating, 3.0)
	assert.LessOrEqual(t, rating, 5.0)
}
