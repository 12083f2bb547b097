package utils

import (
	"time"
)

func ParseRideDate(s string) (time.Time, error) {
	return time.Parse(RideDateLayout, s)
}

// ParseRideTime accepts a time of day with or without seconds.
func ParseRideTime(s string) (time.Time, error) {
	t, err := time.Parse(RideTimeLayout, s)
	if err == nil {
		return t, nil
	}
	return time.Parse(RideTimeSecondsLayout, s)
}

// Clock returns the current time. Services take one so tests can pin it.
type Clock func() time.Time

func SystemClock() time.Time {
	return time.Now().UTC()
}
