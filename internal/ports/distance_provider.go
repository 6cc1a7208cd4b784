package ports

import (
	"context"
	"navigation-service/internal/domain"
)

// Distance between two locations. DurationSeconds is zero and
// BearingDegrees nil when the provider does not compute them.
type DistanceResult struct {
	DistanceMeters  float64
	DurationSeconds int
	BearingDegrees  *float64
	Method          string
}

// Contract for retrieving the distance between two coordinates.
type DistanceProvider interface {
	// Return the distance from origin to destination in meters.
	GetDistance(ctx context.Context, origin, destination domain.GeoCoordinate) (DistanceResult, error)
}
