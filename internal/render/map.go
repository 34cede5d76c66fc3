package render

import (
	"encoding/json"
	"fmt"
	"html/template"
	"strings"

	"github.com/paulmach/orb"
	gpolyline "github.com/twpayne/go-polyline"

	"github.com/yatrika/service-planner/internal/domain/apperr"
	"github.com/yatrika/service-planner/internal/domain/trip"
)

// routeColors is the palette cycled through by route position.
var routeColors = []string{"blue", "red", "green", "purple"}

// MapRenderer builds a self-contained interactive HTML map for a planned trip.
type MapRenderer struct {
	tmpl *template.Template
}

// NewMapRenderer creates a new MapRenderer.
func NewMapRenderer() *MapRenderer {
	return &MapRenderer{
		tmpl: template.Must(template.New("map").Parse(mapTemplate)),
	}
}

// routeOverlay is one polyline overlay on the rendered map.
type routeOverlay struct {
	Coords  template.JS
	Color   string
	Tooltip string
}

// mapData is the template input for one rendered map.
type mapData struct {
	Title      string
	CenterLat  float64
	CenterLng  float64
	OriginLat  float64
	OriginLng  float64
	DestLat    float64
	DestLng    float64
	BoundsJSON template.JS
	Routes     []routeOverlay
}

// Render produces the HTML map document: markers at both endpoints and one
// colored polyline per route with a route-number tooltip. Routes without
// decodable geometry are skipped.
func (m *MapRenderer) Render(origin, destination *trip.Place, routes []trip.Route) (string, error) {
	bound := orb.Bound{
		Min: orb.Point{min(origin.Longitude, destination.Longitude), min(origin.Latitude, destination.Latitude)},
		Max: orb.Point{max(origin.Longitude, destination.Longitude), max(origin.Latitude, destination.Latitude)},
	}

	overlays := make([]routeOverlay, 0, len(routes))
	for i, r := range routes {
		if r.Polyline == "" {
			continue
		}
		line, err := decodePolyline(r.Polyline)
		if err != nil {
			return "", err
		}
		for _, pt := range line {
			bound = bound.Extend(pt)
		}

		coords, err := latLngJSON(line)
		if err != nil {
			return "", apperr.NewInternalError("failed to encode route geometry", err)
		}
		overlays = append(overlays, routeOverlay{
			Coords:  template.JS(coords),
			Color:   routeColors[i%len(routeColors)],
			Tooltip: fmt.Sprintf("Route %d: %s", r.RouteNumber, r.DistanceText),
		})
	}

	boundsJSON := fmt.Sprintf("[[%f, %f], [%f, %f]]",
		bound.Min.Lat(), bound.Min.Lon(), bound.Max.Lat(), bound.Max.Lon())

	data := mapData{
		Title:      fmt.Sprintf("%s to %s", origin.FormattedAddress, destination.FormattedAddress),
		CenterLat:  (origin.Latitude + destination.Latitude) / 2,
		CenterLng:  (origin.Longitude + destination.Longitude) / 2,
		OriginLat:  origin.Latitude,
		OriginLng:  origin.Longitude,
		DestLat:    destination.Latitude,
		DestLng:    destination.Longitude,
		BoundsJSON: template.JS(boundsJSON),
		Routes:     overlays,
	}

	var sb strings.Builder
	if err := m.tmpl.Execute(&sb, data); err != nil {
		return "", apperr.NewInternalError("failed to render map template", err)
	}
	return sb.String(), nil
}

// decodePolyline decodes a Google encoded polyline into a line string.
func decodePolyline(encoded string) (orb.LineString, error) {
	coords, _, err := gpolyline.DecodeCoords([]byte(encoded))
	if err != nil {
		return nil, apperr.NewUpstreamError("failed to decode route polyline", err)
	}
	line := make(orb.LineString, len(coords))
	for i, c := range coords {
		// orb points are (lon, lat)
		line[i] = orb.Point{c[1], c[0]}
	}
	return line, nil
}

// latLngJSON encodes a line string as a JSON array of [lat, lng] pairs,
// the coordinate order Leaflet expects.
func latLngJSON(line orb.LineString) (string, error) {
	pairs := make([][2]float64, len(line))
	for i, pt := range line {
		pairs[i] = [2]float64{pt.Lat(), pt.Lon()}
	}
	b, err := json.Marshal(pairs)
	if err != nil {
		return "", err
	}
	return string(b), nil
}

const mapTemplate = `<!DOCTYPE html>
<html>
<head>
<meta charset="utf-8">
<title>{{.Title}}</title>
<meta name="viewport" content="width=device-width, initial-scale=1.0">
<link rel="stylesheet" href="https://unpkg.com/leaflet@1.9.4/dist/leaflet.css">
<script src="https://unpkg.com/leaflet@1.9.4/dist/leaflet.js"></script>
<style>
  html, body { margin: 0; padding: 0; height: 100%; }
  #map { height: 100%; width: 100%; }
</style>
</head>
<body>
<div id="map"></div>
<script>
  var map = L.map('map').setView([{{.CenterLat}}, {{.CenterLng}}], 6);
  L.tileLayer('https://{s}.tile.openstreetmap.org/{z}/{x}/{y}.png', {
    attribution: '&copy; OpenStreetMap contributors'
  }).addTo(map);

  L.marker([{{.OriginLat}}, {{.OriginLng}}]).bindTooltip('Start').addTo(map);
  L.marker([{{.DestLat}}, {{.DestLng}}]).bindTooltip('End').addTo(map);

  {{range .Routes}}
  L.polyline({{.Coords}}, {color: '{{.Color}}', weight: 5})
    .bindTooltip('{{.Tooltip}}')
    .addTo(map);
  {{end}}

  map.fitBounds({{.BoundsJSON}});
</script>
</body>
</html>
`
