package models

import "time"

// DateLayout is the calendar-date wire format used throughout the API.
const DateLayout = "2006-01-02"

// ParseDate parses a calendar date in the API wire format.
func ParseDate(s string) (time.Time, error) {
	return time.Parse(DateLayout, s)
}

// Location is a geocoded place returned by search
type Location struct {
	Name      string  `json:"name"`
	Country   string  `json:"country"`
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
	Timezone  string  `json:"timezone"`
	Admin1    string  `json:"admin1,omitempty"`
}

// CurrentWeather is a point-in-time conditions snapshot
type CurrentWeather struct {
	Temperature        float64 `json:"temperature"`
	FeelsLike          float64 `json:"feels_like"`
	Humidity           int     `json:"humidity"`
	Precipitation      float64 `json:"precipitation"`
	Rain               float64 `json:"rain"`
	WeatherCode        int     `json:"weather_code"`
	WeatherDescription string  `json:"weather_description"`
	CloudCover         int     `json:"cloud_cover"`
	Pressure           float64 `json:"pressure"`
	SurfacePressure    float64 `json:"surface_pressure"`
	WindSpeed          float64 `json:"wind_speed"`
	WindDirection      int     `json:"wind_direction"`
	WindGusts          float64 `json:"wind_gusts"`
	Time               string  `json:"time"`
	Timezone           string  `json:"timezone"`
}

// DailyForecast is one day of the daily forecast
type DailyForecast struct {
	Date                     string  `json:"date"`
	WeatherCode              int     `json:"weather_code"`
	WeatherDescription       string  `json:"weather_description"`
	TemperatureMax           float64 `json:"temperature_max"`
	TemperatureMin           float64 `json:"temperature_min"`
	FeelsLikeMax             float64 `json:"feels_like_max"`
	FeelsLikeMin             float64 `json:"feels_like_min"`
	Precipitation            float64 `json:"precipitation"`
	Rain                     float64 `json:"rain"`
	PrecipitationProbability int     `json:"precipitation_probability"`
	WindSpeedMax             float64 `json:"wind_speed_max"`
	WindGustsMax             float64 `json:"wind_gusts_max"`
	WindDirection            int     `json:"wind_direction"`
	Sunrise                  string  `json:"sunrise"`
	Sunset                   string  `json:"sunset"`
	UVIndexMax               float64 `json:"uv_index_max"`
}

// ForecastResponse wraps the daily forecast with its timezone
type ForecastResponse struct {
	Forecast []DailyForecast `json:"forecast"`
	Timezone string          `json:"timezone"`
}

// HourlyForecastItem is one hour of the hourly forecast
type HourlyForecastItem struct {
	Time                     string  `json:"time"`
	Temperature              float64 `json:"temperature"`
	FeelsLike                float64 `json:"feels_like"`
	Humidity                 int     `json:"humidity"`
	PrecipitationProbability int     `json:"precipitation_probability"`
	Precipitation            float64 `json:"precipitation"`
	WeatherCode              int     `json:"weather_code"`
	WeatherDescription       string  `json:"weather_description"`
	WindSpeed                float64 `json:"wind_speed"`
	WindDirection            int     `json:"wind_direction"`
}

// HourlyForecastResponse wraps the hourly forecast with its timezone
type HourlyForecastResponse struct {
	Hourly   []HourlyForecastItem `json:"hourly"`
	Timezone string               `json:"timezone"`
}

// WeatherResponse is the combined search + current + forecast payload
type WeatherResponse struct {
	Location Location        `json:"location"`
	Current  CurrentWeather  `json:"current"`
	Forecast []DailyForecast `json:"forecast"`
}

// LocationValidation is the advisory verdict for a location name
type LocationValidation struct {
	Valid       bool       `json:"valid"`
	Error       string     `json:"error,omitempty"`
	BestMatch   *Location  `json:"best_match,omitempty"`
	Suggestions []Location `json:"suggestions,omitempty"`
}

// DateRangeValidation is the advisory verdict for a date range
type DateRangeValidation struct {
	Valid bool   `json:"valid"`
	Error string `json:"error,omitempty"`
}
