package services

import (
	"math"
	"navigation-service/internal/domain"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateInput(t *testing.T) {
	tests := []struct {
		name      string
		a1, a2    float64
		lat, lon  float64
		wantField string
	}{
		{name: "bounds inclusive angles", a1: 180, a2: -180, lat: 90, lon: -180},
		{name: "bounds inclusive coords", a1: 0, a2: 0, lat: -90, lon: 180},
		{name: "angle1 too large", a1: 181, a2: 0, lat: 0, lon: 0, wantField: "joint angle 1"},
		{name: "angle2 too small", a1: 0, a2: -180.0001, lat: 0, lon: 0, wantField: "joint angle 2"},
		{name: "latitude too large", a1: 0, a2: 0, lat: 91, lon: 0, wantField: "target latitude"},
		{name: "longitude too small", a1: 0, a2: 0, lat: 0, lon: -181, wantField: "target longitude"},
		{name: "first violation wins", a1: 200, a2: 0, lat: 100, lon: 0, wantField: "joint angle 1"},
		{name: "nan angle", a1: math.NaN(), a2: 0, lat: 0, lon: 0, wantField: "joint angle 1"},
		{name: "nan longitude", a1: 0, a2: 0, lat: 0, lon: math.NaN(), wantField: "target longitude"},
		{name: "infinite latitude", a1: 0, a2: 0, lat: math.Inf(-1), lon: 0, wantField: "target latitude"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateInput(tt.a1, tt.a2, tt.lat, tt.lon)
			if tt.wantField == "" {
				assert.NoError(t, err)
				return
			}

			require.Error(t, err)
			var re *domain.RangeError
			require.ErrorAs(t, err, &re)
			assert.Equal(t, tt.wantField, re.Field)
			assert.Contains(t, err.Error(), tt.wantField)
		})
	}
}

func TestValidateCoordinate(t *testing.T) {
	assert.NoError(t, ValidateCoordinate("current", domain.GeoCoordinate{Lat: 34.0522, Lon: -118.2437}))

	err := ValidateCoordinate("current", domain.GeoCoordinate{Lat: 0, Lon: 190})
	require.Error(t, err)
	assert.True(t, domain.IsRangeError(err))
	assert.Contains(t, err.Error(), "current longitude")
}
