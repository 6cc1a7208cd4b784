package ports

import (
	"context"
	"navigation-service/internal/domain"
)

// Persistent address -> coordinate cache. Keys are normalized by the caller.
type GeocodeCache interface {
	GetMany(ctx context.Context, addresses []string) (map[string]domain.GeoCoordinate, error)
	PutMany(ctx context.Context, results map[string]domain.GeoCoordinate) error
}

// Persistent origin -> destination distance cache keyed by coordinate keys.
type DistanceCache interface {
	GetMany(ctx context.Context, origin string, destinations []string) (map[string]DistanceResult, error)
	PutMany(ctx context.Context, origin string, results map[string]DistanceResult) error
}
