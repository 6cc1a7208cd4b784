package ports

import (
	"context"
	"navigation-service/internal/domain"
)

// Resolves a free-form address or place name to coordinates.
// Implementations return an error wrapping domain.ErrPlaceNotFound when
// nothing matches.
type Geocoder interface {
	Geocode(ctx context.Context, address string) (domain.GeoCoordinate, error)
}
