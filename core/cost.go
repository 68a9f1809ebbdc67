package core

import (
	"math"
	"time"
)

// Nights returns the number of hotel nights between two dates,
// rounded up to whole days. End must be after start.
func Nights(start, end time.Time) (int, error) {
	if !end.After(start) {
		return 0, Validationf("end date %s must be after start date %s",
			end.Format(DateLayout), start.Format(DateLayout))
	}
	nights := int(math.Ceil(end.Sub(start).Hours() / 24))
	if nights < 1 {
		nights = 1
	}
	return nights, nil
}

// ComputeCost totals the trip line items in the base currency (USD):
// flight prices plus hotel totals plus activity prices scaled by travelers.
func ComputeCost(flights []FlightOption, hotels []HotelOption, activities []ActivityItem, travelers int) float64 {
	if travelers < 1 {
		travelers = 1
	}

	var total float64
	for _, f := range flights {
		total += f.Price
	}
	for _, h := range hotels {
		total += h.TotalPrice
	}
	for _, a := range activities {
		total += a.Price * float64(travelers)
	}
	return total
}
