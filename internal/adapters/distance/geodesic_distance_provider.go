package distance

import (
	"context"
	"math"
	"navigation-service/internal/domain"
	"navigation-service/internal/ports"

	"github.com/tidwall/geodesic"
)

const MethodGeodesic = "geodesic"

// GeodesicDistanceProvider solves the inverse geodesic problem on the
// WGS84 ellipsoid. It is stateless and safe for concurrent use.
type GeodesicDistanceProvider struct{}

func NewGeodesicDistanceProvider() *GeodesicDistanceProvider {
	return &GeodesicDistanceProvider{}
}

func (p *GeodesicDistanceProvider) GetDistance(
	ctx context.Context,
	origin domain.GeoCoordinate,
	destination domain.GeoCoordinate,
) (ports.DistanceResult, error) {
	if err := ctx.Err(); err != nil {
		return ports.DistanceResult{}, err
	}

	var meters, azi1, azi2 float64
	geodesic.WGS84.Inverse(origin.Lat, origin.Lon, destination.Lat, destination.Lon, &meters, &azi1, &azi2)

	res := ports.DistanceResult{DistanceMeters: meters, Method: MethodGeodesic}
	// Azimuth is undefined between identical points.
	if meters > 0 {
		bearing := normalizeBearing(azi1)
		res.BearingDegrees = &bearing
	}

	return res, nil
}

// normalizeBearing maps an azimuth in (-180, 180] onto [0, 360).
func normalizeBearing(deg float64) float64 {
	b := math.Mod(deg, 360)
	if b < 0 {
		b += 360
	}
	return b
}
