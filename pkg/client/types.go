package client

// Location is a geocoded place.
type Location struct {
	Name      string  `json:"name"`
	Country   string  `json:"country"`
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
	Timezone  string  `json:"timezone"`
	Admin1    string  `json:"admin1,omitempty"`
}

// CurrentWeather is the current conditions at a point.
type CurrentWeather struct {
	Temperature        float64 `json:"temperature"`
	FeelsLike          float64 `json:"feels_like"`
	Humidity           float64 `json:"humidity"`
	Precipitation      float64 `json:"precipitation"`
	Rain               float64 `json:"rain"`
	WeatherCode        int     `json:"weather_code"`
	WeatherDescription string  `json:"weather_description"`
	CloudCover         float64 `json:"cloud_cover"`
	Pressure           float64 `json:"pressure"`
	SurfacePressure    float64 `json:"surface_pressure"`
	WindSpeed          float64 `json:"wind_speed"`
	WindDirection      float64 `json:"wind_direction"`
	WindGusts          float64 `json:"wind_gusts"`
	Time               string  `json:"time"`
	Timezone           string  `json:"timezone"`
}

// DailyForecast is one day of forecast data.
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
	WindDirection            float64 `json:"wind_direction"`
	Sunrise                  string  `json:"sunrise"`
	Sunset                   string  `json:"sunset"`
	UVIndexMax               float64 `json:"uv_index_max"`
}

// ForecastResponse is a multi-day forecast.
type ForecastResponse struct {
	Forecast []DailyForecast `json:"forecast"`
	Timezone string          `json:"timezone"`
}

// HourlyForecastItem is one hour of forecast data.
type HourlyForecastItem struct {
	Time                     string  `json:"time"`
	Temperature              float64 `json:"temperature"`
	FeelsLike                float64 `json:"feels_like"`
	Humidity                 float64 `json:"humidity"`
	PrecipitationProbability float64 `json:"precipitation_probability"`
	Precipitation            float64 `json:"precipitation"`
	WeatherCode              int     `json:"weather_code"`
	WeatherDescription       string  `json:"weather_description"`
	WindSpeed                float64 `json:"wind_speed"`
	WindDirection            float64 `json:"wind_direction"`
}

// HourlyForecastResponse is an hour-by-hour forecast.
type HourlyForecastResponse struct {
	Hourly   []HourlyForecastItem `json:"hourly"`
	Timezone string               `json:"timezone"`
}

// WeatherResponse bundles a location with its current conditions and
// forecast.
type WeatherResponse struct {
	Location Location        `json:"location"`
	Current  CurrentWeather  `json:"current"`
	Forecast []DailyForecast `json:"forecast"`
}

// LocationValidation is the verdict for a location name.
type LocationValidation struct {
	Valid       bool       `json:"valid"`
	Error       string     `json:"error,omitempty"`
	BestMatch   *Location  `json:"best_match,omitempty"`
	Suggestions []Location `json:"suggestions,omitempty"`
}

// DateRangeValidation is the verdict for a start/end date pair.
type DateRangeValidation struct {
	Valid bool   `json:"valid"`
	Error string `json:"error,omitempty"`
}

// User is the public profile of an account.
type User struct {
	ID        int64  `json:"id"`
	Username  string `json:"username"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
}

// AuthResponse is returned by signup and login.
type AuthResponse struct {
	Token string `json:"token"`
	User  User   `json:"user"`
}

// AuditEntry is one account activity record.
type AuditEntry struct {
	ID        string `json:"id"`
	Timestamp string `json:"timestamp"`
	Action    string `json:"action"`
	Target    string `json:"target,omitempty"`
	IPAddress string `json:"ip_address,omitempty"`
}

// WeatherDataItem is one day of stored historical/forecast data inside
// a saved weather request.
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
	WindDirection      float64  `json:"wind_direction"`
}

// WeatherRequest is a saved location/date-range query with its fetched
// weather data.
type WeatherRequest struct {
	ID           int64             `json:"id"`
	LocationName string            `json:"location_name"`
	Country      string            `json:"country,omitempty"`
	Latitude     float64           `json:"latitude"`
	Longitude    float64           `json:"longitude"`
	Timezone     string            `json:"timezone,omitempty"`
	StartDate    string            `json:"start_date"`
	EndDate      string            `json:"end_date"`
	WeatherData  []WeatherDataItem `json:"weather_data"`
	Notes        string            `json:"notes,omitempty"`
	CreatedAt    string            `json:"created_at"`
	UpdatedAt    string            `json:"updated_at"`
}

// WeatherRequestListItem is the list form of a saved request, without
// the per-day weather data.
type WeatherRequestListItem struct {
	ID           int64  `json:"id"`
	LocationName string `json:"location_name"`
	Country      string `json:"country,omitempty"`
	StartDate    string `json:"start_date"`
	EndDate      string `json:"end_date"`
	Notes        string `json:"notes,omitempty"`
	CreatedAt    string `json:"created_at"`
	UpdatedAt    string `json:"updated_at"`
}

// CreateWeatherRequestInput is the payload for creating a saved request.
// Latitude/Longitude are optional; when absent the server resolves
// LocationName through geocoding.
type CreateWeatherRequestInput struct {
	LocationName string   `json:"location_name"`
	StartDate    string   `json:"start_date"`
	EndDate      string   `json:"end_date"`
	Notes        string   `json:"notes,omitempty"`
	Latitude     *float64 `json:"latitude,omitempty"`
	Longitude    *float64 `json:"longitude,omitempty"`
	Country      string   `json:"country,omitempty"`
	Timezone     string   `json:"timezone,omitempty"`
}

// UpdateWeatherRequestInput is a partial update; only non-nil fields
// are sent.
type UpdateWeatherRequestInput struct {
	LocationName *string  `json:"location_name,omitempty"`
	StartDate    *string  `json:"start_date,omitempty"`
	EndDate      *string  `json:"end_date,omitempty"`
	Notes        *string  `json:"notes,omitempty"`
	Latitude     *float64 `json:"latitude,omitempty"`
	Longitude    *float64 `json:"longitude,omitempty"`
	Country      *string  `json:"country,omitempty"`
	Timezone     *string  `json:"timezone,omitempty"`
}

// DeleteResponse confirms a deletion.
type DeleteResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}
