package domain

import (
	"fmt"
	"strconv"
	"strings"
)

// Immutable geographic coordinates (latitude, longitude) in degrees.
type GeoCoordinate struct {
	Lat float64
	Lon float64
}

// Return coordinates as [lon, lat] for external API compatibility.
func (c GeoCoordinate) CoordsToList() []float64 { return []float64{c.Lon, c.Lat} }

// Key returns a stable cache key with six decimals (~0.1 m).
func (c GeoCoordinate) Key() string {
	return strconv.FormatFloat(c.Lat, 'f', 6, 64) + "," + strconv.FormatFloat(c.Lon, 'f', 6, 64)
}

// InRange reports whether both components are within their WGS84 bounds.
// NaN is never in range.
func (c GeoCoordinate) InRange() bool {
	return -90 <= c.Lat && c.Lat <= 90 && -180 <= c.Lon && c.Lon <= 180
}

func (c GeoCoordinate) String() string {
	return fmt.Sprintf("(%g, %g)", c.Lat, c.Lon)
}

// A named coordinate, used to seed the geocode cache.
type Place struct {
	Name string  `json:"name"`
	Lat  float64 `json:"lat"`
	Lon  float64 `json:"lon"`
}

func (p Place) Coordinate() GeoCoordinate { return GeoCoordinate{Lat: p.Lat, Lon: p.Lon} }

// NormalizeAddress produces the cache key for an address or place name:
// whitespace collapsed, lower case.
func NormalizeAddress(s string) string {
	return strings.ToLower(strings.Join(strings.Fields(s), " "))
}
