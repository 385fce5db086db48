// Package hospital locates the nearest hospital to a coordinate using the
// OpenStreetMap Overpass API.
package hospital

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"math"
	"net/http"
	"net/url"
	"strings"
	"time"
)

// DefaultEndpoint is the public Overpass API instance.
const DefaultEndpoint = "https://overpass-api.de/api/interpreter"

const (
	searchRadiusMeters = 5000
	httpTimeout        = 15 * time.Second
	earthRadiusKM      = 6371.0
)

// ErrNoneFound is returned when no hospital exists within the search radius.
var ErrNoneFound = errors.New("no hospital found within search radius")

// Hospital is one result from a nearest-hospital lookup.
type Hospital struct {
	Name       string  `json:"name"`
	Lat        float64 `json:"lat"`
	Lon        float64 `json:"lon"`
	DistanceKM float64 `json:"distance_km"`
}

// Client queries an Overpass API endpoint.
type Client struct {
	endpoint   string
	httpClient *http.Client
}

// New creates a client. An empty endpoint falls back to DefaultEndpoint.
func New(endpoint string) *Client {
	if endpoint == "" {
		endpoint = DefaultEndpoint
	}
	return &Client{
		endpoint: endpoint,
		httpClient: &http.Client{
			Timeout: httpTimeout,
		},
	}
}

type overpassResponse struct {
	Elements []overpassElement `json:"elements"`
}

type overpassElement struct {
	Type   string            `json:"type"`
	Lat    float64           `json:"lat"`
	Lon    float64           `json:"lon"`
	Center *overpassCenter   `json:"center,omitempty"`
	Tags   map[string]string `json:"tags"`
}

type overpassCenter struct {
	Lat float64 `json:"lat"`
	Lon float64 `json:"lon"`
}

// Nearest returns the closest hospital to the given coordinate within the
// search radius.
func (c *Client) Nearest(ctx context.Context, lat, lon float64) (*Hospital, error) {
	if lat < -90 || lat > 90 || lon < -180 || lon > 180 {
		return nil, fmt.Errorf("coordinate out of range: %f, %f", lat, lon)
	}

	query := fmt.Sprintf(`[out:json][timeout:10];
(
  node["amenity"="hospital"](around:%d,%f,%f);
  way["amenity"="hospital"](around:%d,%f,%f);
);
out center;`, searchRadiusMeters, lat, lon, searchRadiusMeters, lat, lon)

	form := url.Values{"data": {query}}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint,
		strings.NewReader(form.Encode()))
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("query overpass: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, 4<<20))
	if err != nil {
		return nil, fmt.Errorf("read response: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("overpass error %d: %s", resp.StatusCode, string(body[:min(len(body), 512)]))
	}

	var out overpassResponse
	if err := json.Unmarshal(body, &out); err != nil {
		return nil, fmt.Errorf("unmarshal response: %w", err)
	}

	best := pickNearest(out.Elements, lat, lon)
	if best == nil {
		return nil, ErrNoneFound
	}
	return best, nil
}

func pickNearest(elements []overpassElement, lat, lon float64) *Hospital {
	var best *Hospital
	for _, el := range elements {
		elat, elon := el.Lat, el.Lon
		if el.Center != nil {
			elat, elon = el.Center.Lat, el.Center.Lon
		}
		if elat == 0 && elon == 0 {
			continue
		}

		name := el.Tags["name"]
		if name == "" {
			name = "Unnamed hospital"
		}

		d := haversineKM(lat, lon, elat, elon)
		if best == nil || d < best.DistanceKM {
			best = &Hospital{
				Name:       name,
				Lat:        elat,
				Lon:        elon,
				DistanceKM: d,
			}
		}
	}
	return best
}

// haversineKM returns the great-circle distance between two coordinates.
func haversineKM(lat1, lon1, lat2, lon2 float64) float64 {
	rad := func(deg float64) float64 { return deg * math.Pi / 180 }

	dLat := rad(lat2 - lat1)
	dLon := rad(lon2 - lon1)

	a := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(rad(lat1))*math.Cos(rad(lat2))*math.Sin(dLon/2)*math.Sin(dLon/2)

	return 2 * earthRadiusKM * math.Asin(math.Sqrt(a))
}
