package ports

import (
	"context"
	"navigation-service/internal/domain"
)

// Source of the current location used as the navigation origin.
type LocationProvider interface {
	ProvideLocation(ctx context.Context) (domain.GeoCoordinate, error)
}
