package weather

import (
	"context"
	"math/rand"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/triply/travelhub/core"
)

func mustDate(t *testing.T, s string) time.Time {
	t.Helper()
	d, err := time.Parse(core.DateLayout, s)
	assert.NoError(t, err)
	return d
}

func TestMockClient_Snapshot(t *testing.T) {
	client := NewMockClient(rand.New(rand.NewSource(1)))

	start := mustDate(t, "2024-06-01")
	end := mustDate(t, "2024-06-08")

	snapshot, err := client.Snapshot(context.Background(), "Tokyo", start, end, "")
	assert.NoError(t, err)
	assert.Equal(t, "Tokyo", snapshot.Destination)
	assert.Equal(t, "metric", snapshot.Units)

	// One forecast entry per day, inclusive of both endpoints
	assert.Len(t, snapshot.Forecast, 8)
	assert.Equal(t, "2024-06-01", snapshot.Forecast[0].Date)
	assert.Equal(t, "2024-06-08", snapshot.Forecast[7].Date)

	assert.NotEmpty(t, snapshot.Current.Conditions)
	assert.GreaterOrEqual(t, snapshot.Current.Temperature, 15.0)
	assert.LessOrEqual(t, snapshot.Current.Temperature, 35.0)
	assert.GreaterOrEqual(t, snapshot.Current.Humidity, 30)
	assert.LessOrEqual(t, snapshot.Current.Humidity, 90)
}

func TestMockClient_SnapshotImperialUnits(t *testing.T) {
	client := NewMockClient(rand.New(rand.NewSource(1)))

	snapshot, err := client.Snapshot(context.Background(), "New York",
		mustDate(t, "2024-06-01"), mustDate(t, "2024-06-03"), "imperial")
	assert.NoError(t, err)
	assert.Equal(t, "imperial", snapshot.Units)

	// 15-35C converts to 59-95F
	assert.GreaterOrEqual(t, snapshot.Current.Temperature, 59.0)
	assert.LessOrEqual(t, snapshot.Current.Temperature, 95.0)
}

func TestMockClient_SnapshotZeroDates(t *testing.T) {
	client := NewMockClient(rand.New(rand.NewSource(7)))
	client.Now = func() time.Time { return mustDate(t, "2024-06-01") }

	snapshot, err := client.Snapshot(context.Background(), "Paris", time.Time{}, time.Time{}, "")
	assert.NoError(t, err)

	// Defaults to a seven day window from today
	assert.Len(t, snapshot.Forecast, 7)
	assert.Equal(t, "2024-06-01", snapshot.Forecast[0].Date)
}

func TestMockClient_Deterministic(t *testing.T) {
	start := mustDate(t, "2024-06-01")
	end := mustDate(t, "2024-06-05")

	a := NewMockClient(rand.New(rand.NewSource(42)))
	b := NewMockClient(rand.New(rand.NewSource(42)))

	snapA, err := a.Snapshot(context.Background(), "Rome", start, end, "")
	assert.NoError(t, err)
	snapB, err := b.Snapshot(context.Background(), "Rome", start, end, "")
	assert.NoError(t, err)

	assert.Equal(t, snapA, snapB)
}

func TestMockClient_Alerts(t *testing.T) {
	client := NewMockClient(rand.New(rand.NewSource(3)))

	for i := 0; i < 20; i++ {
		alerts, err := client.Alerts(context.Background(), "Bangkok")
		assert.NoError(t, err)
		assert.LessOrEqual(t, len(alerts), 1)
		for _, alert := range alerts {
			assert.NotEmpty(t, alert.Event)
			assert.NotEmpty(t, alert.Severity)
		}
	}
}
