// Package core holds the request-scoped value types and the pure
// aggregation, cost and scoring logic shared by all travel operations.
package core

import "time"

// DateLayout is the calendar date format used on all boundaries
const DateLayout = "2006-01-02"

// TripPreferences captures optional caller preferences for a trip
type TripPreferences struct {
	WeatherPreference        string   `json:"weatherPreference,omitempty"`
	ActivityTypes            []string `json:"activityTypes,omitempty"`
	AccommodationType        string   `json:"accommodationType,omitempty"`
	TransportationPreference string   `json:"transportationPreference,omitempty"`
}

// TripRequest is the validated input of a plan-trip operation
type TripRequest struct {
	Destination string
	Origin      string
	StartDate   time.Time
	EndDate     time.Time
	Budget      float64
	Travelers   int
	Preferences *TripPreferences
}

// CurrentWeather describes conditions at request time
type CurrentWeather struct {
	Temperature float64 `json:"temperature"`
	Conditions  string  `json:"conditions"`
	Humidity    int     `json:"humidity"`
	WindSpeed   float64 `json:"windSpeed"`
}

// ForecastDay is one chronological entry of a forecast
type ForecastDay struct {
	Date        string  `json:"date"`
	Temperature float64 `json:"temperature"`
	Conditions  string  `json:"conditions"`
}

// WeatherSnapshot is the full weather view for one destination,
// one forecast entry per day in the requested range.
type WeatherSnapshot struct {
	Destination string         `json:"destination"`
	Units       string         `json:"units"`
	Current     CurrentWeather `json:"current"`
	Forecast    []ForecastDay  `json:"forecast"`
}

// WeatherAlert is a single advisory for a destination
type WeatherAlert struct {
	Severity    string `json:"severity"`
	Event       string `json:"event"`
	Description string `json:"description"`
}

// DestinationWeather is the per-destination slot of a weather comparison.
// Exactly one of Weather or Error is set; slots keep input order.
type DestinationWeather struct {
	Destination string           `json:"destination"`
	Weather     *WeatherSnapshot `json:"weather,omitempty"`
	Error       string           `json:"error,omitempty"`
}

// CurrencyInfo is the static currency metadata for a destination
type CurrencyInfo struct {
	Code    string `json:"code"`
	Name    string `json:"name"`
	Symbol  string `json:"symbol"`
	Country string `json:"country"`
}

// ExchangeQuote is the result of one currency conversion
type ExchangeQuote struct {
	From            string    `json:"from"`
	To              string    `json:"to"`
	Rate            float64   `json:"rate"`
	Timestamp       time.Time `json:"timestamp"`
	OriginalAmount  float64   `json:"originalAmount"`
	ConvertedAmount float64   `json:"convertedAmount"`
}

// RatePoint is one day of a currency trend
type RatePoint struct {
	Date string  `json:"date"`
	Rate float64 `json:"rate"`
}

// CurrencyTrends is a chronological rate history ending today
type CurrencyTrends struct {
	From        string      `json:"from"`
	To          string      `json:"to"`
	Days        int         `json:"days"`
	Trends      []RatePoint `json:"trends"`
	AverageRate float64     `json:"averageRate"`
	MinRate     float64     `json:"minRate"`
	MaxRate     float64     `json:"maxRate"`
}

// BudgetConversion is the per-destination slot of a budget conversion.
// Error is set when the rate lookup failed; slots keep input order.
type BudgetConversion struct {
	Destination string         `json:"destination"`
	Currency    CurrencyInfo   `json:"currency"`
	Quote       *ExchangeQuote `json:"quote,omitempty"`
	Error       string         `json:"error,omitempty"`
}

// TranslationResult is the outcome of one translation
type TranslationResult struct {
	OriginalText   string  `json:"originalText"`
	TranslatedText string  `json:"translatedText"`
	SourceLanguage string  `json:"sourceLanguage"`
	TargetLanguage string  `json:"targetLanguage"`
	Confidence     float64 `json:"confidence"`
}

// FlightOption is one bookable flight line item
type FlightOption struct {
	Airline      string  `json:"airline"`
	FlightNumber string  `json:"flightNumber"`
	Departure    string  `json:"departure"`
	Arrival      string  `json:"arrival"`
	Price        float64 `json:"price"`
	Rating       float64 `json:"rating"`
	Duration     string  `json:"duration"`
}

// HotelOption is one hotel line item; TotalPrice is PricePerNight
// multiplied by the number of nights in the trip range.
type HotelOption struct {
	Name          string   `json:"name"`
	PricePerNight float64  `json:"pricePerNight"`
	TotalPrice    float64  `json:"totalPrice"`
	Rating        float64  `json:"rating"`
	Amenities     []string `json:"amenities,omitempty"`
}

// ActivityItem is one activity line item
type ActivityItem struct {
	Name     string  `json:"name"`
	Type     string  `json:"type"`
	Price    float64 `json:"price"`
	Rating   float64 `json:"rating"`
	Duration string  `json:"duration"`
}

// TripPlan is the complete response to a plan-trip operation.
// It is assembled once and never mutated afterwards.
type TripPlan struct {
	Destination  string           `json:"destination"`
	StartDate    string           `json:"startDate"`
	EndDate      string           `json:"endDate"`
	Travelers    int              `json:"travelers"`
	Weather      *WeatherSnapshot `json:"weather,omitempty"`
	Flights      []FlightOption   `json:"flights"`
	Hotels       []HotelOption    `json:"hotels"`
	Activities   []ActivityItem   `json:"activities"`
	TotalCost    float64          `json:"totalCost"`
	Currency     string           `json:"currency"`
	Language     string           `json:"language"`
	SafetyRating float64          `json:"safetyRating"`
}

// DestinationScore is the scored summary of one destination in a comparison
type DestinationScore struct {
	Destination      string          `json:"destination"`
	Weather          *CurrentWeather `json:"weather,omitempty"`
	AverageHotelCost float64         `json:"averageHotelCost"`
	SafetyRating     float64         `json:"safetyRating"`
	ActivityScore    int             `json:"activityScore"`
	OverallScore     int             `json:"overallScore"`
	Error            string          `json:"error,omitempty"`
}

// TravelInsights is the advisory, non-numeric view of one destination
type TravelInsights struct {
	Destination      string   `json:"destination"`
	TravelDate       string   `json:"travelDate,omitempty"`
	BestTimeToVisit  string   `json:"bestTimeToVisit"`
	WeatherOutlook   string   `json:"weatherOutlook"`
	LocalEvents      []string `json:"localEvents"`
	CulturalTips     []string `json:"culturalTips"`
	VisaRequirements string   `json:"visaRequirements"`
	Vaccinations     []string `json:"vaccinations"`
}
