package weather

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/triply/travelhub/plugins"
)

const forecastPayload = `{
	"current": {
		"temp_c": 21.5, "temp_f": 70.7, "humidity": 55,
		"wind_kph": 12.0, "wind_mph": 7.5,
		"condition": {"text": "Partly cloudy"}
	},
	"forecast": {
		"forecastday": [
			{"date": "2024-06-01", "day": {"avgtemp_c": 22.0, "avgtemp_f": 71.6, "condition": {"text": "Sunny"}}},
			{"date": "2024-06-02", "day": {"avgtemp_c": 19.5, "avgtemp_f": 67.1, "condition": {"text": "Light rain"}}}
		]
	},
	"alerts": {
		"alert": [
			{"headline": "Heat warning until Friday", "severity": "moderate", "event": "Heat Advisory", "desc": "High temperatures expected."}
		]
	}
}`

func TestClient_Snapshot(t *testing.T) {
	var gotQuery string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotQuery = r.URL.RawQuery
		w.Write([]byte(forecastPayload))
	}))
	defer server.Close()

	client := NewClient(server.URL, "test-key", time.Second, nil)

	snapshot, err := client.Snapshot(context.Background(), "Paris",
		mustDate(t, "2024-06-01"), mustDate(t, "2024-06-02"), "")
	assert.NoError(t, err)

	assert.Contains(t, gotQuery, "key=test-key")
	assert.Contains(t, gotQuery, "q=Paris")
	assert.Contains(t, gotQuery, "days=2")

	assert.Equal(t, "Paris", snapshot.Destination)
	assert.Equal(t, "metric", snapshot.Units)
	assert.Equal(t, 21.5, snapshot.Current.Temperature)
	assert.Equal(t, "Partly cloudy", snapshot.Current.Conditions)
	assert.Len(t, snapshot.Forecast, 2)
	assert.Equal(t, "2024-06-01", snapshot.Forecast[0].Date)
	assert.Equal(t, 22.0, snapshot.Forecast[0].Temperature)
}

func TestClient_SnapshotImperial(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(forecastPayload))
	}))
	defer server.Close()

	client := NewClient(server.URL, "test-key", time.Second, nil)

	snapshot, err := client.Snapshot(context.Background(), "New York", time.Time{}, time.Time{}, "imperial")
	assert.NoError(t, err)
	assert.Equal(t, "imperial", snapshot.Units)
	assert.Equal(t, 70.7, snapshot.Current.Temperature)
	assert.Equal(t, 7.5, snapshot.Current.WindSpeed)
}

func TestClient_Alerts(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Contains(t, r.URL.RawQuery, "alerts=yes")
		w.Write([]byte(forecastPayload))
	}))
	defer server.Close()

	client := NewClient(server.URL, "test-key", time.Second, nil)

	alerts, err := client.Alerts(context.Background(), "Paris")
	assert.NoError(t, err)
	assert.Len(t, alerts, 1)
	assert.Equal(t, "Heat Advisory", alerts[0].Event)
	assert.Equal(t, "High temperatures expected.", alerts[0].Description)
}

func TestClient_UpstreamError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		w.Write([]byte(`{"error": {"message": "API key is invalid"}}`))
	}))
	defer server.Close()

	client := NewClient(server.URL, "bad-key", time.Second, nil)

	_, err := client.Snapshot(context.Background(), "Paris", time.Time{}, time.Time{}, "")
	assert.Error(t, err)
	assert.True(t, plugins.IsUpstream(err))
	assert.Contains(t, err.Error(), "API key is invalid")
}

func TestClient_MalformedResponse(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("not json"))
	}))
	defer server.Close()

	client := NewClient(server.URL, "test-key", time.Second, nil)

	_, err := client.Snapshot(context.Background(), "Paris", time.Time{}, time.Time{}, "")
	assert.Error(t, err)
	assert.True(t, plugins.IsUpstream(err))
}

func TestForecastDays(t *testing.T) {
	assert.Equal(t, 7, forecastDays(time.Time{}, time.Time{}))
	assert.Equal(t, 8, forecastDays(mustDate(t, "2024-06-01"), mustDate(t, "2024-06-08")))
	assert.Equal(t, 14, forecastDays(mustDate(t, "2024-06-01"), mustDate(t, "2024-07-15")))
	assert.Equal(t, 1, forecastDays(mustDate(t, "2024-06-08"), mustDate(t, "2024-06-01")))
}
