package render

import (
	"fmt"
	"html/template"
	"io"
	"navigation-service/internal/domain"
)

const DefaultZoom = 13

type MapOptions struct {
	Zoom int
	// FitBounds zooms to show both markers instead of using Zoom.
	FitBounds bool
}

type mapMarker struct {
	Lat, Lon float64
	Label    string
	Color    string
}

type mapData struct {
	CenterLat, CenterLon float64
	Zoom                 int
	FitBounds            bool
	Markers              []mapMarker
}

var mapTemplate = template.Must(template.New("map").Parse(`<!DOCTYPE html>
<html>
<head>
<meta charset="utf-8">
<title>Navigation Map</title>
<meta name="viewport" content="width=device-width, initial-scale=1.0">
<link rel="stylesheet" href="https://unpkg.com/leaflet@1.9.4/dist/leaflet.css">
<script src="https://unpkg.com/leaflet@1.9.4/dist/leaflet.js"></script>
<style>html, body, #map { height: 100%; margin: 0; }</style>
</head>
<body>
<div id="map"></div>
<script>
var map = L.map("map").setView([{{.CenterLat}}, {{.CenterLon}}], {{.Zoom}});
L.tileLayer("https://tile.openstreetmap.org/{z}/{x}/{y}.png", {
  maxZoom: 19,
  attribution: "&copy; OpenStreetMap contributors"
}).addTo(map);
var bounds = [];
{{range .Markers}}
L.circleMarker([{{.Lat}}, {{.Lon}}], {color: {{.Color}}, radius: 9, fillOpacity: 0.8})
  .bindPopup({{.Label}}).addTo(map);
bounds.push([{{.Lat}}, {{.Lon}}]);
{{end}}
{{if .FitBounds}}map.fitBounds(bounds, {padding: [40, 40]});{{end}}
</script>
</body>
</html>
`))

// WriteMap renders an HTML page centered between the two locations with a
// blue current-location marker and a red target marker.
func WriteMap(w io.Writer, current, target domain.GeoCoordinate, opts MapOptions) error {
	zoom := opts.Zoom
	if zoom <= 0 {
		zoom = DefaultZoom
	}

	data := mapData{
		CenterLat: (current.Lat + target.Lat) / 2,
		CenterLon: (current.Lon + target.Lon) / 2,
		Zoom:      zoom,
		FitBounds: opts.FitBounds,
		Markers: []mapMarker{
			{Lat: current.Lat, Lon: current.Lon, Label: "Current Location", Color: "blue"},
			{Lat: target.Lat, Lon: target.Lon, Label: "Target Location", Color: "red"},
		},
	}

	if err := mapTemplate.Execute(w, data); err != nil {
		return fmt.Errorf("write map: %w", err)
	}
	return nil
}
