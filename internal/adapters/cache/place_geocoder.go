package cache

import (
	"context"
	"errors"
	"fmt"
	"navigation-service/internal/domain"
	"navigation-service/internal/ports"
)

// PlaceGeocoder resolves names from the geocode cache only.
// It serves seeded places when no external geocoding service is configured.
type PlaceGeocoder struct {
	Cache ports.GeocodeCache
}

func NewPlaceGeocoder(c ports.GeocodeCache) *PlaceGeocoder {
	return &PlaceGeocoder{Cache: c}
}

func (g *PlaceGeocoder) Geocode(ctx context.Context, address string) (domain.GeoCoordinate, error) {
	if g.Cache == nil {
		return domain.GeoCoordinate{}, errors.New("place geocoder: cache is nil")
	}

	key := domain.NormalizeAddress(address)
	if key == "" {
		return domain.GeoCoordinate{}, errors.New("place geocoder: address must not be empty")
	}

	hits, err := g.Cache.GetMany(ctx, []string{key})
	if err != nil {
		return domain.GeoCoordinate{}, fmt.Errorf("place geocoder: %w", err)
	}

	c, ok := hits[key]
	if !ok {
		return domain.GeoCoordinate{}, fmt.Errorf("place geocoder %q: %w", key, domain.ErrPlaceNotFound)
	}
	return c, nil
}
