package location

import (
	"context"
	"navigation-service/internal/domain"
)

// DefaultLocation is the stub "current location": Los Angeles.
var DefaultLocation = domain.GeoCoordinate{Lat: 34.0522, Lon: -118.2437}

// StaticLocationProvider always reports the same coordinate.
type StaticLocationProvider struct {
	Coord domain.GeoCoordinate
}

func NewStaticLocationProvider(c domain.GeoCoordinate) *StaticLocationProvider {
	return &StaticLocationProvider{Coord: c}
}

func (p *StaticLocationProvider) ProvideLocation(ctx context.Context) (domain.GeoCoordinate, error) {
	if err := ctx.Err(); err != nil {
		return domain.GeoCoordinate{}, err
	}
	return p.Coord, nil
}
