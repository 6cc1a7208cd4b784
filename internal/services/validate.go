package services

import "navigation-service/internal/domain"

const (
	minJointAngleDeg = -180.0
	maxJointAngleDeg = 180.0
	minLatitude      = -90.0
	maxLatitude      = 90.0
	minLongitude     = -180.0
	maxLongitude     = 180.0
)

// ValidateInput checks raw boundary input before any computation happens.
// Fields are checked in order and the first violation is returned as a
// *domain.RangeError. NaN never satisfies a bound.
func ValidateInput(angle1Deg, angle2Deg, lat, lon float64) error {
	checks := []domain.RangeError{
		{Field: "joint angle 1", Value: angle1Deg, Min: minJointAngleDeg, Max: maxJointAngleDeg, Unit: "degrees"},
		{Field: "joint angle 2", Value: angle2Deg, Min: minJointAngleDeg, Max: maxJointAngleDeg, Unit: "degrees"},
		{Field: "target latitude", Value: lat, Min: minLatitude, Max: maxLatitude, Unit: "degrees"},
		{Field: "target longitude", Value: lon, Min: minLongitude, Max: maxLongitude, Unit: "degrees"},
	}

	for _, c := range checks {
		if !(c.Min <= c.Value && c.Value <= c.Max) {
			err := c
			return &err
		}
	}

	return nil
}

// ValidateCoordinate applies the geographic bounds to a single coordinate.
func ValidateCoordinate(field string, c domain.GeoCoordinate) error {
	if !(minLatitude <= c.Lat && c.Lat <= maxLatitude) {
		return &domain.RangeError{Field: field + " latitude", Value: c.Lat, Min: minLatitude, Max: maxLatitude, Unit: "degrees"}
	}
	if !(minLongitude <= c.Lon && c.Lon <= maxLongitude) {
		return &domain.RangeError{Field: field + " longitude", Value: c.Lon, Min: minLongitude, Max: maxLongitude, Unit: "degrees"}
	}
	return nil
}
