package distance

import (
	"context"
	"fmt"
	"navigation-service/internal/domain"
	"navigation-service/internal/platform/obs"
	"net/http"
	"net/url"
)

// Only the geometry of the best match is read.
type geocodeResponse struct {
	Features []struct {
		Geometry struct {
			Coordinates []float64 `json:"coordinates"`
		} `json:"geometry"`
	} `json:"features"`
}

// geocodeMany looks up each distinct normalized address with /geocode/search.
// Addresses with no match are left out of the result.
func (o *ORSDistanceProvider) geocodeMany(
	ctx context.Context,
	addresses []string,
) (_ map[string]domain.GeoCoordinate, err error) {
	defer obs.Time(ctx, "ors.geocodeMany")(&err)

	out := make(map[string]domain.GeoCoordinate, len(addresses))
	done := make(map[string]bool, len(addresses))

	for _, a := range addresses {
		norm := domain.NormalizeAddress(a)
		if norm == "" || done[norm] {
			continue
		}
		done[norm] = true

		var res geocodeResponse
		q := url.Values{"text": {norm}, "size": {"1"}}
		if err := o.callJSON(ctx, http.MethodGet, "/geocode/search", q, nil, &res); err != nil {
			return nil, fmt.Errorf("geocode %q: %w", norm, err)
		}
		if len(res.Features) == 0 {
			continue
		}

		lonLat := res.Features[0].Geometry.Coordinates
		if len(lonLat) != 2 {
			return nil, fmt.Errorf("geocode %q: want [lon, lat], got %v", norm, lonLat)
		}
		out[norm] = domain.GeoCoordinate{Lon: lonLat[0], Lat: lonLat[1]}
	}

	return out, nil
}
