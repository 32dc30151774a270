package geolocate

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
)

func TestFormatCoordinates(t *testing.T) {
	tests := []struct {
		lat, lon float64
		want     string
	}{
		{40.7128, -74.0060, "40.7128°N, 74.0060°W"},
		{-33.8688, 151.2093, "33.8688°S, 151.2093°E"},
		{0, 0, "0.0000°N, 0.0000°E"},
	}
	for _, tt := range tests {
		if got := FormatCoordinates(tt.lat, tt.lon); got != tt.want {
			t.Errorf("FormatCoordinates(%v, %v) = %q, want %q", tt.lat, tt.lon, got, tt.want)
		}
	}
}

func testAdapter(t *testing.T, handler http.Handler) *Adapter {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	a := New()
	a.Endpoint = srv.URL
	return a
}

func TestCurrentPosition(t *testing.T) {
	a := testAdapter(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"status":"success","lat":52.52,"lon":13.405,"city":"Berlin"}`))
	}))

	pos, err := a.CurrentPosition(context.Background())
	if err != nil {
		t.Fatalf("CurrentPosition: %v", err)
	}
	if pos.Latitude != 52.52 || pos.Longitude != 13.405 {
		t.Errorf("position = %v, %v", pos.Latitude, pos.Longitude)
	}
	if pos.City != "Berlin" {
		t.Errorf("city = %q", pos.City)
	}
	if pos.AccuracyMeters <= 0 {
		t.Error("accuracy should be a positive estimate")
	}
}

func TestCurrentPositionErrors(t *testing.T) {
	tests := []struct {
		name    string
		handler http.HandlerFunc
		want    error
	}{
		{
			name: "denied",
			handler: func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusForbidden)
			},
			want: ErrPermissionDenied,
		},
		{
			name: "rate limited",
			handler: func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusTooManyRequests)
			},
			want: ErrPermissionDenied,
		},
		{
			name: "server error",
			handler: func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusInternalServerError)
			},
			want: ErrPositionUnavailable,
		},
		{
			name: "lookup failed",
			handler: func(w http.ResponseWriter, r *http.Request) {
				w.Write([]byte(`{"status":"fail","message":"private range"}`))
			},
			want: ErrPositionUnavailable,
		},
		{
			name: "garbage body",
			handler: func(w http.ResponseWriter, r *http.Request) {
				w.Write([]byte("not json"))
			},
			want: ErrUnknown,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a := testAdapter(t, tt.handler)
			_, err := a.CurrentPosition(context.Background())
			if !errors.Is(err, tt.want) {
				t.Errorf("error = %v, want %v", err, tt.want)
			}
		})
	}
}

func TestCurrentPositionTimeout(t *testing.T) {
	a := testAdapter(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		<-r.Context().Done()
	}))
	a.HTTPClient = &http.Client{Timeout: 50 * time.Millisecond}

	_, err := a.CurrentPosition(context.Background())
	if !errors.Is(err, ErrTimeout) && !errors.Is(err, ErrPositionUnavailable) {
		t.Errorf("error = %v, want timeout or unavailable", err)
	}
}

func TestUnsupported(t *testing.T) {
	a := &Adapter{}
	if a.Supported() {
		t.Error("adapter without endpoint should be unsupported")
	}
	_, err := a.CurrentPosition(context.Background())
	if !errors.Is(err, ErrUnsupported) {
		t.Errorf("error = %v, want ErrUnsupported", err)
	}
}
