package openmeteo

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
)

func stubClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	c := NewClient()
	c.ForecastURL = srv.URL
	c.GeocodingURL = srv.URL + "/search"
	return c
}

func TestGeocode(t *testing.T) {
	c := stubClient(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/search" {
			t.Errorf("path = %s", r.URL.Path)
		}
		if got := r.URL.Query().Get("name"); got != "berlin" {
			t.Errorf("name = %q", got)
		}
		w.Write([]byte(`{"results":[
			{"name":"Berlin","country":"Germany","latitude":52.52,"longitude":13.405,"timezone":"Europe/Berlin","admin1":"Berlin"},
			{"name":"Berlin","country":"United States","latitude":44.47,"longitude":-71.19,"timezone":"America/New_York","admin1":"New Hampshire"}
		]}`))
	})

	locations, err := c.Geocode(context.Background(), "berlin")
	if err != nil {
		t.Fatalf("Geocode: %v", err)
	}
	if len(locations) != 2 {
		t.Fatalf("got %d locations", len(locations))
	}
	if locations[0].Country != "Germany" || locations[0].Latitude != 52.52 {
		t.Errorf("first result = %+v", locations[0])
	}
	if locations[1].Admin1 != "New Hampshire" {
		t.Errorf("admin1 = %q", locations[1].Admin1)
	}
}

func TestGeocodeNoResults(t *testing.T) {
	c := stubClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{}`))
	})

	locations, err := c.Geocode(context.Background(), "xyzzy")
	if err != nil {
		t.Fatalf("Geocode: %v", err)
	}
	if len(locations) != 0 {
		t.Errorf("got %d locations, want 0", len(locations))
	}
}

func TestCurrent(t *testing.T) {
	c := stubClient(t, func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()
		if q.Get("latitude") != "52.5200" || q.Get("longitude") != "13.4050" {
			t.Errorf("coordinates = %s, %s", q.Get("latitude"), q.Get("longitude"))
		}
		w.Write([]byte(`{
			"timezone": "Europe/Berlin",
			"current": {
				"time": "2026-08-29T12:00",
				"temperature_2m": 21.4,
				"relative_humidity_2m": 60,
				"apparent_temperature": 20.8,
				"precipitation": 0.0,
				"rain": 0.0,
				"weather_code": 3,
				"cloud_cover": 90,
				"pressure_msl": 1014.2,
				"surface_pressure": 1009.8,
				"wind_speed_10m": 12.3,
				"wind_direction_10m": 250,
				"wind_gusts_10m": 28.1
			}
		}`))
	})

	current, err := c.Current(context.Background(), 52.52, 13.405)
	if err != nil {
		t.Fatalf("Current: %v", err)
	}
	if current.Temperature != 21.4 || current.Humidity != 60 {
		t.Errorf("current = %+v", current)
	}
	if current.WeatherDescription != "Overcast" {
		t.Errorf("description = %q", current.WeatherDescription)
	}
	if current.Timezone != "Europe/Berlin" {
		t.Errorf("timezone = %q", current.Timezone)
	}
}

func TestCurrentUpstreamError(t *testing.T) {
	c := stubClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
	})

	if _, err := c.Current(context.Background(), 0, 0); err == nil {
		t.Fatal("expected error on upstream 400")
	}
}

func TestForecastFlattensParallelArrays(t *testing.T) {
	c := stubClient(t, func(w http.ResponseWriter, r *http.Request) {
		if got := r.URL.Query().Get("forecast_days"); got != "2" {
			t.Errorf("forecast_days = %q", got)
		}
		w.Write([]byte(`{
			"timezone": "Europe/Berlin",
			"daily": {
				"time": ["2026-08-29", "2026-08-30"],
				"weather_code": [61, 0],
				"temperature_2m_max": [18.2, 24.0],
				"temperature_2m_min": [11.0, 13.5],
				"apparent_temperature_max": [17.0, 23.1],
				"apparent_temperature_min": [9.8, 12.2],
				"precipitation_sum": [4.2, 0.0],
				"rain_sum": [4.2, 0.0],
				"precipitation_probability_max": [85, 5],
				"wind_speed_10m_max": [22.0, 14.0],
				"wind_gusts_10m_max": [40.1, 25.0],
				"wind_direction_10m_dominant": [270, 180],
				"sunrise": ["2026-08-29T06:14", "2026-08-30T06:16"],
				"sunset": ["2026-08-29T20:05", "2026-08-30T20:03"],
				"uv_index_max": [4.1, 6.0]
			}
		}`))
	})

	forecast, err := c.Forecast(context.Background(), 52.52, 13.405, 2)
	if err != nil {
		t.Fatalf("Forecast: %v", err)
	}
	if len(forecast.Forecast) != 2 {
		t.Fatalf("got %d days", len(forecast.Forecast))
	}

	first := forecast.Forecast[0]
	if first.Date != "2026-08-29" || first.WeatherDescription != "Slight rain" {
		t.Errorf("first day = %+v", first)
	}
	if first.PrecipitationProbability != 85 || first.Sunrise != "2026-08-29T06:14" {
		t.Errorf("first day = %+v", first)
	}
	if forecast.Forecast[1].WeatherDescription != "Clear sky" {
		t.Errorf("second day description = %q", forecast.Forecast[1].WeatherDescription)
	}
}

func TestForecastToleratesShortArrays(t *testing.T) {
	c := stubClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{
			"timezone": "UTC",
			"daily": {
				"time": ["2026-08-29", "2026-08-30"],
				"weather_code": [61],
				"temperature_2m_max": [18.2]
			}
		}`))
	})

	forecast, err := c.Forecast(context.Background(), 0, 0, 2)
	if err != nil {
		t.Fatalf("Forecast: %v", err)
	}
	if len(forecast.Forecast) != 2 {
		t.Fatalf("got %d days", len(forecast.Forecast))
	}
	second := forecast.Forecast[1]
	if second.WeatherCode != 0 || second.TemperatureMax != 0 {
		t.Errorf("missing positions should be zero values, got %+v", second)
	}
}

func TestDailyRange(t *testing.T) {
	c := stubClient(t, func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()
		if q.Get("start_date") != "2026-08-01" || q.Get("end_date") != "2026-08-02" {
			t.Errorf("range = %s to %s", q.Get("start_date"), q.Get("end_date"))
		}
		w.Write([]byte(`{
			"timezone": "Europe/Berlin",
			"daily": {
				"time": ["2026-08-01", "2026-08-02"],
				"weather_code": [0, 61],
				"temperature_2m_max": [25.0, 19.0],
				"temperature_2m_min": [14.0, 12.0],
				"precipitation_sum": [0.0, 6.5],
				"rain_sum": [0.0, 6.5],
				"wind_speed_10m_max": [10.0, 20.0],
				"wind_direction_10m_dominant": [90, 270]
			}
		}`))
	})

	items, tz, err := c.DailyRange(context.Background(), 52.52, 13.405, "2026-08-01", "2026-08-02")
	if err != nil {
		t.Fatalf("DailyRange: %v", err)
	}
	if tz != "Europe/Berlin" {
		t.Errorf("timezone = %q", tz)
	}
	if len(items) != 2 {
		t.Fatalf("got %d items", len(items))
	}
	if items[1].Precipitation != 6.5 || items[1].WeatherDescription != "Slight rain" {
		t.Errorf("second item = %+v", items[1])
	}
}

func TestHourlyTruncatesToRequestedHours(t *testing.T) {
	c := stubClient(t, func(w http.ResponseWriter, r *http.Request) {
		if got := r.URL.Query().Get("forecast_days"); got != "1" {
			t.Errorf("forecast_days = %q", got)
		}
		w.Write([]byte(`{
			"timezone": "UTC",
			"hourly": {
				"time": ["2026-08-29T00:00", "2026-08-29T01:00", "2026-08-29T02:00", "2026-08-29T03:00"],
				"temperature_2m": [14.0, 13.5, 13.0, 12.8],
				"relative_humidity_2m": [80, 82, 85, 86],
				"apparent_temperature": [13.0, 12.4, 12.0, 11.8],
				"precipitation_probability": [10, 15, 20, 25],
				"precipitation": [0, 0, 0.1, 0.2],
				"weather_code": [1, 2, 3, 61],
				"wind_speed_10m": [8.0, 9.0, 10.0, 11.0],
				"wind_direction_10m": [180, 190, 200, 210]
			}
		}`))
	})

	hourly, err := c.Hourly(context.Background(), 0, 0, 3)
	if err != nil {
		t.Fatalf("Hourly: %v", err)
	}
	if len(hourly.Hourly) != 3 {
		t.Fatalf("got %d hours, want 3", len(hourly.Hourly))
	}
	if hourly.Hourly[2].WeatherDescription != "Overcast" {
		t.Errorf("third hour description = %q", hourly.Hourly[2].WeatherDescription)
	}
}

func TestWeatherDescription(t *testing.T) {
	tests := []struct {
		code int
		want string
	}{
		{0, "Clear sky"},
		{3, "Overcast"},
		{61, "Slight rain"},
		{95, "Thunderstorm"},
		{999, "Unknown"},
	}
	for _, tt := range tests {
		if got := WeatherDescription(tt.code); got != tt.want {
			t.Errorf("WeatherDescription(%d) = %q, want %q", tt.code, got, tt.want)
		}
	}
}
