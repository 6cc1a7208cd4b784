package distance

import (
	"context"
	"fmt"
	"math"
	"navigation-service/internal/domain"
	"navigation-service/internal/ports"
	"net/http"
)

// Locations are [lon, lat]. Index 0 is always the origin.
type matrixRequest struct {
	Locations    [][]float64 `json:"locations"`
	Sources      []int       `json:"sources"`
	Destinations []int       `json:"destinations"`
	Metrics      []string    `json:"metrics"`
}

// Unroutable cells come back as null.
type matrixResponse struct {
	Distances [][]*float64 `json:"distances"`
	Durations [][]*float64 `json:"durations"`
}

// fetchMatrixRow asks /v2/matrix for one origin row covering every
// destination. keys[i] names dests[i] in the result.
func (o *ORSDistanceProvider) fetchMatrixRow(
	ctx context.Context,
	origin domain.GeoCoordinate,
	keys []string,
	dests []domain.GeoCoordinate,
) (map[string]ports.DistanceResult, error) {
	if len(keys) != len(dests) {
		return nil, fmt.Errorf("matrix row: %d keys for %d destinations", len(keys), len(dests))
	}
	if len(dests) == 0 {
		return map[string]ports.DistanceResult{}, nil
	}

	req := matrixRequest{
		Locations:    [][]float64{origin.CoordsToList()},
		Sources:      []int{0},
		Destinations: make([]int, len(dests)),
		Metrics:      []string{"distance", "duration"},
	}
	for i, d := range dests {
		req.Locations = append(req.Locations, d.CoordsToList())
		req.Destinations[i] = i + 1
	}

	var res matrixResponse
	if err := o.callJSON(ctx, http.MethodPost, "/v2/matrix/"+o.profile, nil, req, &res); err != nil {
		return nil, fmt.Errorf("matrix row: %w", err)
	}

	if len(res.Distances) != 1 || len(res.Durations) != 1 {
		return nil, fmt.Errorf("matrix row: want 1 source row, got distances=%d durations=%d",
			len(res.Distances), len(res.Durations))
	}
	meters, seconds := res.Distances[0], res.Durations[0]
	if len(meters) != len(keys) || len(seconds) != len(keys) {
		return nil, fmt.Errorf("matrix row: want %d cells, got distances=%d durations=%d",
			len(keys), len(meters), len(seconds))
	}

	out := make(map[string]ports.DistanceResult, len(keys))
	for i, k := range keys {
		if meters[i] == nil || seconds[i] == nil {
			return nil, fmt.Errorf("matrix row: no route to %s", k)
		}
		out[k] = ports.DistanceResult{
			DistanceMeters:  *meters[i],
			DurationSeconds: int(math.Round(*seconds[i])),
			Method:          MethodRoad,
		}
	}

	return out, nil
}
