package models

import "time"

// WeatherDataItem is one day of stored weather data inside a WeatherRequest.
// The sequence a request holds always spans its date range inclusively, one
// item per day, in chronological order.
type WeatherDataItem struct {
	Date               string   `json:"date"`
	TemperatureMax     float64  `json:"temperature_max"`
	TemperatureMin     float64  `json:"temperature_min"`
	TemperatureMean    *float64 `json:"temperature_mean,omitempty"`
	FeelsLikeMax       float64  `json:"feels_like_max"`
	FeelsLikeMin       float64  `json:"feels_like_min"`
	Precipitation      float64  `json:"precipitation"`
	Rain               float64  `json:"rain"`
	WeatherCode        int      `json:"weather_code"`
	WeatherDescription string   `json:"weather_description"`
	WindSpeedMax       float64  `json:"wind_speed_max"`
	WindDirection      int      `json:"wind_direction"`
}

// WeatherRequest is a persisted weather lookup owned by one user
type WeatherRequest struct {
	ID           int64             `json:"id"`
	UserID       int64             `json:"-"`
	LocationName string            `json:"location_name"`
	Country      string            `json:"country"`
	Latitude     float64           `json:"latitude"`
	Longitude    float64           `json:"longitude"`
	Timezone     string            `json:"timezone"`
	StartDate    string            `json:"start_date"`
	EndDate      string            `json:"end_date"`
	WeatherData  []WeatherDataItem `json:"weather_data"`
	Notes        string            `json:"notes"`
	CreatedAt    time.Time         `json:"created_at"`
	UpdatedAt    time.Time         `json:"updated_at"`
}

// WeatherRequestListItem is the list view of a request, without the stored
// per-day weather data.
type WeatherRequestListItem struct {
	ID           int64     `json:"id"`
	LocationName string    `json:"location_name"`
	Country      string    `json:"country"`
	StartDate    string    `json:"start_date"`
	EndDate      string    `json:"end_date"`
	Notes        string    `json:"notes"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// CreateWeatherRequest is the request body for creating a weather request
type CreateWeatherRequest struct {
	LocationName string   `json:"location_name"`
	StartDate    string   `json:"start_date"`
	EndDate      string   `json:"end_date"`
	Notes        string   `json:"notes,omitempty"`
	Latitude     *float64 `json:"latitude,omitempty"`
	Longitude    *float64 `json:"longitude,omitempty"`
	Country      string   `json:"country,omitempty"`
	Timezone     string   `json:"timezone,omitempty"`
}

// UpdateWeatherRequest is the partial-update body; nil fields are untouched
type UpdateWeatherRequest struct {
	LocationName *string  `json:"location_name,omitempty"`
	StartDate    *string  `json:"start_date,omitempty"`
	EndDate      *string  `json:"end_date,omitempty"`
	Notes        *string  `json:"notes,omitempty"`
	Latitude     *float64 `json:"latitude,omitempty"`
	Longitude    *float64 `json:"longitude,omitempty"`
	Country      *string  `json:"country,omitempty"`
	Timezone     *string  `json:"timezone,omitempty"`
}

// DeleteResponse is returned after a successful delete
type DeleteResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}
