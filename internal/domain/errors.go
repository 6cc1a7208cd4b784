package domain

import (
	"errors"
	"fmt"
)

// RangeError reports an input that falls outside its declared domain.
type RangeError struct {
	Field string
	Value float64
	Min   float64
	Max   float64
	Unit  string
}

func (e *RangeError) Error() string {
	unit := ""
	if e.Unit != "" {
		unit = " " + e.Unit
	}
	return fmt.Sprintf("%s must be between %g and %g%s, got %g", e.Field, e.Min, e.Max, unit, e.Value)
}

func IsRangeError(err error) bool {
	var re *RangeError
	return errors.As(err, &re)
}

// ErrPlaceNotFound is returned when a place name cannot be resolved.
var ErrPlaceNotFound = errors.New("place not found")

// ProviderError marks a failure inside a location, distance or geocoding
// provider, as opposed to bad input or local misconfiguration.
type ProviderError struct {
	Op  string
	Err error
}

func (e *ProviderError) Error() string { return e.Op + ": " + e.Err.Error() }

func (e *ProviderError) Unwrap() error { return e.Err }
