package services

import (
	"context"
	"errors"
	"fmt"
	"navigation-service/internal/domain"
	"navigation-service/internal/platform/obs"
	"navigation-service/internal/ports"
	"strings"
)

type NavigateRequest struct {
	Angle1Deg float64
	Angle2Deg float64
	TargetLat float64
	TargetLon float64
	// TargetPlace, when set, replaces TargetLat/TargetLon and is
	// resolved through the geocoder.
	TargetPlace string
}

// Navigator runs a single navigation request end to end.
type Navigator struct {
	Locations ports.LocationProvider
	Distances ports.DistanceProvider
	// Geocoder is optional; requests naming a place fail without it.
	Geocoder ports.Geocoder
}

func NewNavigator(locations ports.LocationProvider, distances ports.DistanceProvider, geocoder ports.Geocoder) *Navigator {
	return &Navigator{Locations: locations, Distances: distances, Geocoder: geocoder}
}

// Navigate validates the request, evaluates the arm kinematics and measures
// the distance from the current location to the target.
//
// Validation runs before any computation or provider call, and a
// *domain.RangeError is returned unwrapped so callers can show it directly.
func (n *Navigator) Navigate(ctx context.Context, req NavigateRequest) (_ *domain.NavigationResult, err error) {
	defer obs.Time(ctx, "services.Navigate")(&err)

	if n.Locations == nil || n.Distances == nil {
		return nil, errors.New("navigate: location and distance providers are required")
	}

	if place := strings.TrimSpace(req.TargetPlace); place != "" {
		if n.Geocoder == nil {
			return nil, fmt.Errorf("navigate: resolve place %q: no geocoder configured", place)
		}
		c, err := n.Geocoder.Geocode(ctx, place)
		if err != nil {
			return nil, fmt.Errorf("navigate: %w", &domain.ProviderError{Op: fmt.Sprintf("resolve place %q", place), Err: err})
		}
		req.TargetLat, req.TargetLon = c.Lat, c.Lon
	}

	if err := ValidateInput(req.Angle1Deg, req.Angle2Deg, req.TargetLat, req.TargetLon); err != nil {
		return nil, err
	}

	target := domain.GeoCoordinate{Lat: req.TargetLat, Lon: req.TargetLon}
	angles := domain.JointAnglesFromDegrees(req.Angle1Deg, req.Angle2Deg)
	jacobian, endEffector := ComputeJacobian(angles)

	current, err := n.Locations.ProvideLocation(ctx)
	if err != nil {
		return nil, fmt.Errorf("navigate: %w", &domain.ProviderError{Op: "provide current location", Err: err})
	}

	d, err := n.Distances.GetDistance(ctx, current, target)
	if err != nil {
		return nil, fmt.Errorf("navigate: %w", &domain.ProviderError{Op: fmt.Sprintf("distance %s -> %s", current, target), Err: err})
	}

	return &domain.NavigationResult{
		Current:         current,
		Target:          target,
		DistanceMeters:  d.DistanceMeters,
		DurationSeconds: d.DurationSeconds,
		BearingDegrees:  d.BearingDegrees,
		DistanceMethod:  d.Method,
		Angles:          angles,
		JointTip:        JointTip(angles),
		EndEffector:     endEffector,
		Jacobian:        jacobian,
		Manipulability:  Manipulability(jacobian),
		Singular:        IsSingular(jacobian),
	}, nil
}
