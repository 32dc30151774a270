// Package geolocate estimates the machine's position from its public
// IP address, as a stand-in for device GPS. Accuracy is city-level at
// best.
package geolocate

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"net/http"
	"time"
)

// Position is an estimated location.
type Position struct {
	Latitude  float64
	Longitude float64
	// AccuracyMeters is a coarse estimate; IP lookups are city-level.
	AccuracyMeters float64
	City           string
}

// Sentinel errors for the ways a lookup can fail. Callers branch on
// these with errors.Is.
var (
	ErrUnsupported         = errors.New("geolocation is not supported in this environment")
	ErrPermissionDenied    = errors.New("geolocation permission was denied")
	ErrPositionUnavailable = errors.New("position information is unavailable")
	ErrTimeout             = errors.New("geolocation request timed out")
	ErrUnknown             = errors.New("an unknown geolocation error occurred")
)

// DefaultEndpoint is a free IP-geolocation service.
const DefaultEndpoint = "http://ip-api.com/json"

const lookupTimeout = 10 * time.Second

// Adapter performs IP-based position lookups.
type Adapter struct {
	Endpoint   string
	HTTPClient *http.Client
}

// New returns an Adapter against DefaultEndpoint.
func New() *Adapter {
	return &Adapter{
		Endpoint:   DefaultEndpoint,
		HTTPClient: &http.Client{Timeout: lookupTimeout},
	}
}

// Supported reports whether a lookup can be attempted at all.
func (a *Adapter) Supported() bool {
	return a.Endpoint != ""
}

// CurrentPosition estimates the machine's position. The error is one
// of the package sentinels (possibly wrapped with detail).
func (a *Adapter) CurrentPosition(ctx context.Context) (*Position, error) {
	if !a.Supported() {
		return nil, ErrUnsupported
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, a.Endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnknown, err)
	}

	resp, err := a.HTTPClient.Do(req)
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) {
			return nil, ErrTimeout
		}
		return nil, fmt.Errorf("%w: %v", ErrPositionUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusForbidden || resp.StatusCode == http.StatusTooManyRequests {
		return nil, ErrPermissionDenied
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("%w: status %d", ErrPositionUnavailable, resp.StatusCode)
	}

	var body struct {
		Status  string  `json:"status"`
		Message string  `json:"message"`
		Lat     float64 `json:"lat"`
		Lon     float64 `json:"lon"`
		City    string  `json:"city"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnknown, err)
	}
	if body.Status != "success" {
		return nil, fmt.Errorf("%w: %s", ErrPositionUnavailable, body.Message)
	}

	return &Position{
		Latitude:  body.Lat,
		Longitude: body.Lon,
		// ~50km, the usual ballpark for IP lookups
		AccuracyMeters: 50000,
		City:           body.City,
	}, nil
}

// FormatCoordinates renders a coordinate pair for display, e.g.
// "40.7128°N, 74.0060°W".
func FormatCoordinates(lat, lon float64) string {
	latDir := "N"
	if lat < 0 {
		latDir = "S"
	}
	lonDir := "E"
	if lon < 0 {
		lonDir = "W"
	}
	return fmt.Sprintf("%.4f°%s, %.4f°%s", math.Abs(lat), latDir, math.Abs(lon), lonDir)
}
