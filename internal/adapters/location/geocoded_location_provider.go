package location

import (
	"context"
	"errors"
	"fmt"
	"navigation-service/internal/domain"
	"navigation-service/internal/ports"
	"strings"
	"sync"
)

// GeocodedLocationProvider resolves a configured address once and
// reuses the coordinate for the lifetime of the provider.
// Failed lookups are not memoized. The provider is safe for concurrent use.
type GeocodedLocationProvider struct {
	address  string
	geocoder ports.Geocoder

	mu       sync.Mutex
	resolved *domain.GeoCoordinate
}

func NewGeocodedLocationProvider(address string, geocoder ports.Geocoder) (*GeocodedLocationProvider, error) {
	address = strings.TrimSpace(address)
	if address == "" {
		return nil, errors.New("geocoded location: address must not be empty")
	}
	if geocoder == nil {
		return nil, errors.New("geocoded location: geocoder is nil")
	}
	return &GeocodedLocationProvider{address: address, geocoder: geocoder}, nil
}

func (p *GeocodedLocationProvider) ProvideLocation(ctx context.Context) (domain.GeoCoordinate, error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.resolved != nil {
		return *p.resolved, nil
	}

	c, err := p.geocoder.Geocode(ctx, p.address)
	if err != nil {
		return domain.GeoCoordinate{}, fmt.Errorf("geocoded location %q: %w", p.address, err)
	}
	p.resolved = &c

	return c, nil
}
