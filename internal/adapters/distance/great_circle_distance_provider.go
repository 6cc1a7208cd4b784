package distance

import (
	"context"
	"navigation-service/internal/domain"
	"navigation-service/internal/ports"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geo"
)

const MethodGreatCircle = "greatcircle"

// GreatCircleDistanceProvider measures distance on a sphere of radius
// orb.EarthRadius. Faster and less precise than the ellipsoidal solution.
type GreatCircleDistanceProvider struct{}

func NewGreatCircleDistanceProvider() *GreatCircleDistanceProvider {
	return &GreatCircleDistanceProvider{}
}

func (p *GreatCircleDistanceProvider) GetDistance(
	ctx context.Context,
	origin domain.GeoCoordinate,
	destination domain.GeoCoordinate,
) (ports.DistanceResult, error) {
	if err := ctx.Err(); err != nil {
		return ports.DistanceResult{}, err
	}

	from := orb.Point{origin.Lon, origin.Lat}
	to := orb.Point{destination.Lon, destination.Lat}

	res := ports.DistanceResult{
		DistanceMeters: geo.DistanceHaversine(from, to),
		Method:         MethodGreatCircle,
	}
	if res.DistanceMeters > 0 {
		bearing := normalizeBearing(geo.Bearing(from, to))
		res.BearingDegrees = &bearing
	}

	return res, nil
}
