package distance

import (
	"context"
	"fmt"
	"navigation-service/internal/domain"
	"navigation-service/internal/ports"
	"sync/atomic"
)

type MockPair struct {
	From, To domain.GeoCoordinate
	Meters   float64
	Seconds  int
}

// MockDistanceProvider serves fixed distances and counts lookups.
// It is safe for concurrent use.
type MockDistanceProvider struct {
	m     map[string]ports.DistanceResult
	calls atomic.Int64
}

func NewMockDistanceProvider(pairs []MockPair) *MockDistanceProvider {
	m := make(map[string]ports.DistanceResult, len(pairs))
	for _, p := range pairs {
		m[p.From.Key()+"|"+p.To.Key()] = ports.DistanceResult{
			DistanceMeters:  p.Meters,
			DurationSeconds: p.Seconds,
			Method:          "mock",
		}
	}
	return &MockDistanceProvider{m: m}
}

func (p *MockDistanceProvider) GetDistance(ctx context.Context, origin, destination domain.GeoCoordinate) (ports.DistanceResult, error) {
	p.calls.Add(1)
	r, ok := p.m[origin.Key()+"|"+destination.Key()]
	if !ok {
		return ports.DistanceResult{}, fmt.Errorf("missing pair %s -> %s", origin, destination)
	}

	return r, nil
}

// Calls returns the number of GetDistance lookups so far.
func (p *MockDistanceProvider) Calls() int { return int(p.calls.Load()) }
