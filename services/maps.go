package services

import (
	"bytes"
	"fmt"
	"html/template"

	"vacationplanner/catalog"
	"vacationplanner/models"
)

const (
	MapProviderOSM    = "osm"
	MapProviderGoogle = "google"
)

type MapPoint struct {
	Label string  `json:"label"`
	Lat   float64 `json:"lat"`
	Lng   float64 `json:"lng"`
}

// TripMap is what the page plots. Places without known coordinates are left out.
type TripMap struct {
	Provider string     `json:"provider"`
	Points   []MapPoint `json:"points"`
	Center   MapPoint   `json:"center"`
	Zoom     int        `json:"zoom"`
}

// MapService draws the trip route with Leaflet over OpenStreetMap tiles, or
// Google Maps when an API key is configured.
type MapService struct {
	provider  string
	googleKey string
	page      *template.Template
}

func NewMapService(provider, googleKey string) *MapService {
	if provider == MapProviderGoogle && googleKey == "" {
		provider = MapProviderOSM
	}
	if provider != MapProviderGoogle {
		provider = MapProviderOSM
	}
	return &MapService{
		provider:  provider,
		googleKey: googleKey,
		page:      template.Must(template.New("map").Parse(mapPageTemplate)),
	}
}

func (s *MapService) Provider() string { return s.provider }

func (s *MapService) TripMap(plan *models.TripPlan) TripMap {
	m := TripMap{Provider: s.provider, Zoom: 2, Points: []MapPoint{}}
	for _, place := range []string{plan.Preferences.StartingPoint, plan.Destination} {
		if ll, ok := catalog.Coordinates(place); ok {
			m.Points = append(m.Points, MapPoint{Label: place, Lat: ll.Lat, Lng: ll.Lng})
		}
	}
	switch len(m.Points) {
	case 0:
		m.Center = MapPoint{Lat: 20, Lng: 0}
	case 1:
		m.Center, m.Zoom = m.Points[0], 10
	default:
		a, b := m.Points[0], m.Points[1]
		m.Center = MapPoint{Lat: (a.Lat + b.Lat) / 2, Lng: (a.Lng + b.Lng) / 2}
	}
	return m
}

// RenderHTML returns a standalone page showing the trip map.
func (s *MapService) RenderHTML(plan *models.TripPlan) ([]byte, error) {
	var buf bytes.Buffer
	err := s.page.Execute(&buf, struct {
		Title     string
		Map       TripMap
		Google    bool
		GoogleKey string
	}{
		Title:     "Trip to " + plan.Destination,
		Map:       s.TripMap(plan),
		Google:    s.provider == MapProviderGoogle,
		GoogleKey: s.googleKey,
	})
	if err != nil {
		return nil, fmt.Errorf("render map: %w", err)
	}
	return buf.Bytes(), nil
}

const mapPageTemplate = `<!DOCTYPE html>
<html>
<head>
<meta charset="utf-8">
<title>{{.Title}}</title>
<style>html,body,#map{height:100%;margin:0}</style>
{{- if not .Google}}
<link rel="stylesheet" href="https://unpkg.com/leaflet@1.9.4/dist/leaflet.css">
<script src="https://unpkg.com/leaflet@1.9.4/dist/leaflet.js"></script>
{{- end}}
</head>
<body>
<div id="map"></div>
<script>
var points = {{.Map.Points}};
var center = {{.Map.Center}};
{{- if .Google}}
function initMap() {
  var map = new google.maps.Map(document.getElementById("map"), {center: {lat: center.lat, lng: center.lng}, zoom: {{.Map.Zoom}}});
  var path = points.map(function (p) {
    new google.maps.Marker({position: {lat: p.lat, lng: p.lng}, map: map, title: p.label});
    return {lat: p.lat, lng: p.lng};
  });
  if (path.length > 1) { new google.maps.Polyline({path: path, geodesic: true, map: map}); }
}
</script>
<script async src="https://maps.googleapis.com/maps/api/js?key={{.GoogleKey}}&callback=initMap"></script>
{{- else}}
var map = L.map("map").setView([center.lat, center.lng], {{.Map.Zoom}});
L.tileLayer("https://{s}.tile.openstreetmap.org/{z}/{x}/{y}.png", {attribution: "&copy; OpenStreetMap contributors"}).addTo(map);
var path = points.map(function (p) {
  L.marker([p.lat, p.lng]).addTo(map).bindPopup(document.createTextNode(p.label));
  return [p.lat, p.lng];
});
if (path.length > 1) { L.polyline(path).addTo(map); map.fitBounds(path, {padding: [40, 40]}); }
</script>
{{- end}}
</body>
</html>
`
