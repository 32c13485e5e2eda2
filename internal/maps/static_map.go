package maps

import (
	"context"
	"fmt"
	"image/png"
	"io"

	"googlemaps.github.io/maps"

	"travelplanner/internal/planner"
)

const (
	defaultMapSize = "640x480"
	markerColor    = "red"
	markerLabels   = "ABCDEFGHIJKLMNOPQRSTUVWXYZ"
)

// StaticMapService renders itinerary locations with the Google Static Maps API.
type StaticMapService struct {
	client *maps.Client
}

// NewStaticMapService creates a new StaticMapService with the given API Key.
func NewStaticMapService(apiKey string) (*StaticMapService, error) {
	client, err := maps.NewClient(maps.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create maps client: %w", err)
	}
	return &StaticMapService{client: client}, nil
}

// Render writes a PNG map with one marker per location to w.
func (s *StaticMapService) Render(ctx context.Context, locations []planner.Location, w io.Writer) error {
	if len(locations) == 0 {
		return fmt.Errorf("no locations to render")
	}
	img, err := s.client.StaticMap(ctx, staticMapRequest(locations))
	if err != nil {
		return fmt.Errorf("static map api error: %w", err)
	}
	if err := png.Encode(w, img); err != nil {
		return fmt.Errorf("encode map: %w", err)
	}
	return nil
}

// MarkerLabel is the single-character label used for the i-th location, or "" past Z.
func MarkerLabel(i int) string {
	if i < 0 || i >= len(markerLabels) {
		return ""
	}
	return markerLabels[i : i+1]
}

// staticMapRequest builds one labelled marker per location. The API fits the
// viewport to the markers when no center or zoom is given.
func staticMapRequest(locations []planner.Location) *maps.StaticMapRequest {
	markers := make([]maps.Marker, 0, len(locations))
	for i, loc := range locations {
		markers = append(markers, maps.Marker{
			Color: markerColor,
			Label: MarkerLabel(i),
			Location: []maps.LatLng{
				{Lat: loc.Latitude, Lng: loc.Longitude},
			},
		})
	}
	return &maps.StaticMapRequest{
		Size:    defaultMapSize,
		Markers: markers,
	}
}
