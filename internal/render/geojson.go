package render

import (
	"fmt"
	"navigation-service/internal/domain"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geojson"
)

// PathGeoJSON exports the two endpoints and the connecting leg as a
// GeoJSON FeatureCollection.
func PathGeoJSON(current, target domain.GeoCoordinate) ([]byte, error) {
	from := orb.Point{current.Lon, current.Lat}
	to := orb.Point{target.Lon, target.Lat}

	fc := geojson.NewFeatureCollection()

	start := geojson.NewFeature(from)
	start.Properties["name"] = "Current Location"
	start.Properties["marker-color"] = "blue"
	fc.Append(start)

	end := geojson.NewFeature(to)
	end.Properties["name"] = "Target Location"
	end.Properties["marker-color"] = "red"
	fc.Append(end)

	leg := geojson.NewFeature(orb.LineString{from, to})
	leg.Properties["name"] = "Path"
	fc.Append(leg)

	b, err := fc.MarshalJSON()
	if err != nil {
		return nil, fmt.Errorf("path geojson: %w", err)
	}
	return b, nil
}
