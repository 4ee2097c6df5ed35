package utils

import (
	"fmt"
	"math"
	"time"
)

// RentalDays returns the chargeable days for a rental range, counting both
// endpoints: ceil(end - start in days) + 1. A same-day rental is 1 day.
func RentalDays(start, end time.Time) (int32, error) {
	if end.Before(start) {
		return 0, fmt.Errorf("end date must not be before start date")
	}
	days := int32(math.Ceil(end.Sub(start).Hours()/24)) + 1
	return days, nil
}

// RentalCost computes the cost of renting quantity units of a model for
// the given range at its daily rate.
func RentalCost(pricePerDay, quantity int32, start, end time.Time) (int32, error) {
	days, err := RentalDays(start, end)
	if err != nil {
		return 0, err
	}
	return pricePerDay * quantity * days, nil
}

// ParseDate converts a yyyy-mm-dd formatted string into a UTC time.
func ParseDate(dateStr string) (time.Time, error) {
	t, err := time.Parse("2006-01-02", dateStr)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q, expected yyyy-mm-dd", dateStr)
	}
	return t, nil
}
