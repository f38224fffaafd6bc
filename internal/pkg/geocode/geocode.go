// Package geocode resolves coordinates to street addresses. Failures fall
// back to a "lat, lon" string so a clock action never blocks on geocoding.
package geocode

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"time"
)

type Geocoder interface {
	// ReverseGeocode returns a display address for the coordinates. It never
	// returns an error; on failure the coordinates themselves come back.
	ReverseGeocode(ctx context.Context, lat, lon float64) string
}

type nominatimGeocoder struct {
	baseURL   string
	userAgent string
	client    *http.Client
}

// NewNominatim builds a Geocoder over the OSM Nominatim reverse endpoint.
func NewNominatim(baseURL, userAgent string) Geocoder {
	if baseURL == "" {
		baseURL = "https://nominatim.openstreetmap.org"
	}
	return &nominatimGeocoder{
		baseURL:   baseURL,
		userAgent: userAgent,
		client: &http.Client{
			Timeout: 5 * time.Second,
		},
	}
}

func (g *nominatimGeocoder) ReverseGeocode(ctx context.Context, lat, lon float64) string {
	fallback := fmt.Sprintf("%v, %v", lat, lon)

	q := url.Values{}
	q.Set("lat", fmt.Sprintf("%f", lat))
	q.Set("lon", fmt.Sprintf("%f", lon))
	q.Set("format", "json")

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, g.baseURL+"/reverse?"+q.Encode(), nil)
	if err != nil {
		return fallback
	}
	req.Header.Set("User-Agent", g.userAgent)

	resp, err := g.client.Do(req)
	if err != nil {
		slog.Warn("Reverse geocode failed", "error", err)
		return fallback
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		slog.Warn("Reverse geocode failed", "status", resp.StatusCode)
		return fallback
	}

	var payload struct {
		DisplayName string `json:"display_name"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil || payload.DisplayName == "" {
		return fallback
	}

	return payload.DisplayName
}
