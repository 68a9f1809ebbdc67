package core

import (
	"math"
	"sort"
	"strings"
)

// Score weight bands. The four components sum to at most 100.
const (
	weatherMatchPoints   = 30.0
	weatherDefaultPoints = 20.0
	costMaxPoints        = 25.0
	safetyMaxPoints      = 25.0
	activityMaxPoints    = 20.0
	activityPointsEach   = 5.0
)

// WeatherMatchScore awards full points when the current conditions contain
// the caller's preference (case-insensitive substring). Without a preference
// or a match, a fixed default still rewards the destination.
func WeatherMatchScore(conditions, preference string) float64 {
	if preference != "" &&
		strings.Contains(strings.ToLower(conditions), strings.ToLower(preference)) {
		return weatherMatchPoints
	}
	return weatherDefaultPoints
}

// CostScore is strictly decreasing in average hotel cost, floored at zero.
// Costs of 250 and above contribute nothing.
func CostScore(averageHotelCost float64) float64 {
	score := costMaxPoints - averageHotelCost/10
	if score < 0 {
		return 0
	}
	return score
}

// SafetyScore maps a 0-5 safety rating linearly onto 0-25 points
func SafetyScore(safetyRating float64) float64 {
	if safetyRating < 0 {
		safetyRating = 0
	}
	if safetyRating > 5 {
		safetyRating = 5
	}
	return safetyRating / 5 * safetyMaxPoints
}

// ActivityScore saturates at four matching activities
func ActivityScore(activityCount int) float64 {
	if activityCount < 0 {
		activityCount = 0
	}
	score := float64(activityCount) * activityPointsEach
	if score > activityMaxPoints {
		return activityMaxPoints
	}
	return score
}

// Score computes the overall 0-100 desirability of a destination
func Score(conditions, weatherPreference string, averageHotelCost, safetyRating float64, activityCount int) int {
	sum := WeatherMatchScore(conditions, weatherPreference) +
		CostScore(averageHotelCost) +
		SafetyScore(safetyRating) +
		ActivityScore(activityCount)
	return int(math.Round(sum))
}

// RankDestinations orders scores descending by OverallScore.
// The sort is stable so ties keep their original input order.
func RankDestinations(scores []DestinationScore) []DestinationScore {
	ranked := make([]DestinationScore, len(scores))
	copy(ranked, scores)
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].OverallScore > ranked[j].OverallScore
	})
	return ranked
}
