package distance

import (
	"context"
	"errors"
	"fmt"
	"navigation-service/internal/domain"
	"navigation-service/internal/platform/obs"
	"navigation-service/internal/ports"
	"net/http"
	"strings"
	"time"

	"go.uber.org/zap"
)

const (
	MethodRoad = "road"

	DefaultORSBaseURL = "https://api.openrouteservice.org"
)

// ORSDistanceProvider serves road distances and geocoding from
// OpenRouteService, backed by optional persistent caches.
// It is safe for concurrent use.
type ORSDistanceProvider struct {
	session       *http.Client
	apiKey        string
	baseURL       string
	profile       string
	distanceCache ports.DistanceCache
	geocodeCache  ports.GeocodeCache
	backoff       time.Duration
}

// Either cache may be nil.
func NewORSDistanceProvider(
	apiKey string,
	baseURL string,
	distanceCache ports.DistanceCache,
	geocodeCache ports.GeocodeCache,
) (*ORSDistanceProvider, error) {
	if apiKey == "" {
		return nil, errors.New("ORS api key is empty")
	}

	if strings.TrimSpace(baseURL) == "" {
		baseURL = DefaultORSBaseURL
	}

	provider := &ORSDistanceProvider{
		session:       &http.Client{Timeout: 10 * time.Second},
		apiKey:        apiKey,
		baseURL:       strings.TrimRight(baseURL, "/"),
		profile:       "driving-car",
		distanceCache: distanceCache,
		geocodeCache:  geocodeCache,
		backoff:       200 * time.Millisecond,
	}

	return provider, nil
}

// Geocode resolves an address, consulting the geocode cache first.
func (o *ORSDistanceProvider) Geocode(ctx context.Context, address string) (domain.GeoCoordinate, error) {
	norm := domain.NormalizeAddress(address)
	if norm == "" {
		return domain.GeoCoordinate{}, errors.New("ORS geocode: address must be non-empty")
	}

	if o.geocodeCache != nil {
		hits, err := o.geocodeCache.GetMany(ctx, []string{norm})
		if err != nil {
			return domain.GeoCoordinate{}, fmt.Errorf("ORS get geocode cache: %w", err)
		}
		if c, ok := hits[norm]; ok {
			return c, nil
		}
	}

	fresh, err := o.geocodeMany(ctx, []string{norm})
	if err != nil {
		return domain.GeoCoordinate{}, fmt.Errorf("retrieving coordinates: %w", err)
	}

	if o.geocodeCache != nil {
		if err := o.geocodeCache.PutMany(ctx, fresh); err != nil {
			obs.L().Warn("geocode cache write failed", zap.Error(err))
		}
	}

	c, ok := fresh[norm]
	if !ok {
		return domain.GeoCoordinate{}, fmt.Errorf("ORS geocode %q: %w", norm, domain.ErrPlaceNotFound)
	}
	return c, nil
}

// GetDistance runs the batched matrix path for a single destination.
func (o *ORSDistanceProvider) GetDistance(
	ctx context.Context,
	origin domain.GeoCoordinate,
	destination domain.GeoCoordinate,
) (ports.DistanceResult, error) {
	results, err := o.distancesFrom(ctx, origin, []domain.GeoCoordinate{destination})
	if err != nil {
		return ports.DistanceResult{}, fmt.Errorf(
			"get distances %s -> %s: %w",
			origin, destination, err,
		)
	}

	result, ok := results[destination.Key()]
	if !ok {
		return ports.DistanceResult{}, fmt.Errorf("no distance result for %s -> %s", origin, destination)
	}

	return result, nil
}

// distancesFrom computes road distances from one origin to many
// destinations, deduplicated and keyed by GeoCoordinate.Key.
func (o *ORSDistanceProvider) distancesFrom(
	ctx context.Context,
	origin domain.GeoCoordinate,
	destinations []domain.GeoCoordinate,
) (_ map[string]ports.DistanceResult, err error) {
	defer obs.Time(ctx, "ors.distancesFrom")(&err)

	if len(destinations) == 0 {
		return map[string]ports.DistanceResult{}, nil
	}

	originKey := origin.Key()

	out := make(map[string]ports.DistanceResult, len(destinations))
	seen := make(map[string]struct{}, len(destinations))
	destList := make([]domain.GeoCoordinate, 0, len(destinations))
	destKeys := make([]string, 0, len(destinations))
	for _, d := range destinations {
		k := d.Key()
		if _, ok := seen[k]; ok {
			continue
		}
		seen[k] = struct{}{}

		// ORS rejects zero-length legs in some profiles; answer them locally.
		if k == originKey {
			out[k] = ports.DistanceResult{Method: MethodRoad}
			continue
		}
		destList = append(destList, d)
		destKeys = append(destKeys, k)
	}

	if len(destList) == 0 {
		return out, nil
	}

	// Check persistent distance cache before issuing external API calls.
	if o.distanceCache != nil {
		hits, err := o.distanceCache.GetMany(ctx, originKey, destKeys)
		if err != nil {
			return nil, fmt.Errorf("ORS get distance cache: %w", err)
		}
		for k, v := range hits {
			v.Method = MethodRoad
			out[k] = v
		}
	}

	missKeys := make([]string, 0, len(destKeys))
	missCoords := make([]domain.GeoCoordinate, 0, len(destKeys))
	for i, k := range destKeys {
		if _, ok := out[k]; !ok {
			missKeys = append(missKeys, k)
			missCoords = append(missCoords, destList[i])
		}
	}

	if len(missKeys) == 0 {
		return out, nil
	}

	// Fetch a single origin->many matrix row for all cache misses.
	fetched, err := o.fetchMatrixRow(ctx, origin, missKeys, missCoords)
	if err != nil {
		return nil, fmt.Errorf(
			"fetching matrix row: %w",
			err,
		)
	}

	missing := make([]string, 0)
	for _, k := range missKeys {
		if _, ok := fetched[k]; !ok {
			missing = append(missing, k)
		}
	}

	if len(missing) > 0 {
		return nil, fmt.Errorf(
			"ORS matrix service did not return the following destinations: %s",
			strings.Join(missing, "; "),
		)
	}

	if o.distanceCache != nil {
		if err := o.distanceCache.PutMany(ctx, originKey, fetched); err != nil {
			obs.L().Warn("distance cache write failed", zap.Error(err))
		}
	}

	for k, v := range fetched {
		out[k] = v
	}

	return out, nil
}
