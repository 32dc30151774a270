package openmeteo

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/Banyel3/weather-app/internal/models"
)

const (
	defaultForecastURL  = "https://api.open-meteo.com/v1"
	defaultGeocodingURL = "https://geocoding-api.open-meteo.com/v1/search"
)

// Client talks to the Open-Meteo forecast and geocoding APIs
type Client struct {
	ForecastURL  string
	GeocodingURL string
	HTTPClient   *http.Client
}

// NewClient creates an Open-Meteo client with default endpoints
func NewClient() *Client {
	return &Client{
		ForecastURL:  defaultForecastURL,
		GeocodingURL: defaultGeocodingURL,
		HTTPClient: &http.Client{
			Timeout: 10 * time.Second,
		},
	}
}

func (c *Client) getJSON(ctx context.Context, rawURL string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return err
	}

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("open-meteo API returned status %d", resp.StatusCode)
	}

	return json.NewDecoder(resp.Body).Decode(out)
}

// Geocode resolves a location name to candidate places
func (c *Client) Geocode(ctx context.Context, name string) ([]models.Location, error) {
	params := url.Values{}
	params.Set("name", name)
	params.Set("count", "5")
	params.Set("language", "en")
	params.Set("format", "json")

	var payload struct {
		Results []struct {
			Name      string  `json:"name"`
			Country   string  `json:"country"`
			Latitude  float64 `json:"latitude"`
			Longitude float64 `json:"longitude"`
			Timezone  string  `json:"timezone"`
			Admin1    string  `json:"admin1"`
		} `json:"results"`
	}

	if err := c.getJSON(ctx, c.GeocodingURL+"?"+params.Encode(), &payload); err != nil {
		return nil, fmt.Errorf("geocoding %q: %w", name, err)
	}

	locations := make([]models.Location, len(payload.Results))
	for i, r := range payload.Results {
		locations[i] = models.Location{
			Name:      r.Name,
			Country:   r.Country,
			Latitude:  r.Latitude,
			Longitude: r.Longitude,
			Timezone:  r.Timezone,
			Admin1:    r.Admin1,
		}
	}
	return locations, nil
}

// Current fetches current conditions for a coordinate
func (c *Client) Current(ctx context.Context, lat, lon float64) (*models.CurrentWeather, error) {
	params := url.Values{}
	params.Set("latitude", formatCoord(lat))
	params.Set("longitude", formatCoord(lon))
	params.Set("current", "temperature_2m,relative_humidity_2m,apparent_temperature,precipitation,rain,"+
		"weather_code,cloud_cover,pressure_msl,surface_pressure,wind_speed_10m,wind_direction_10m,wind_gusts_10m")
	params.Set("timezone", "auto")

	var payload struct {
		Timezone string `json:"timezone"`
		Current  struct {
			Temperature     float64 `json:"temperature_2m"`
			Humidity        int     `json:"relative_humidity_2m"`
			FeelsLike       float64 `json:"apparent_temperature"`
			Precipitation   float64 `json:"precipitation"`
			Rain            float64 `json:"rain"`
			WeatherCode     int     `json:"weather_code"`
			CloudCover      int     `json:"cloud_cover"`
			Pressure        float64 `json:"pressure_msl"`
			SurfacePressure float64 `json:"surface_pressure"`
			WindSpeed       float64 `json:"wind_speed_10m"`
			WindDirection   int     `json:"wind_direction_10m"`
			WindGusts       float64 `json:"wind_gusts_10m"`
			Time            string  `json:"time"`
		} `json:"current"`
	}

	if err := c.getJSON(ctx, c.ForecastURL+"/forecast?"+params.Encode(), &payload); err != nil {
		return nil, fmt.Errorf("fetching current weather: %w", err)
	}

	cur := payload.Current
	return &models.CurrentWeather{
		Temperature:        cur.Temperature,
		FeelsLike:          cur.FeelsLike,
		Humidity:           cur.Humidity,
		Precipitation:      cur.Precipitation,
		Rain:               cur.Rain,
		WeatherCode:        cur.WeatherCode,
		WeatherDescription: WeatherDescription(cur.WeatherCode),
		CloudCover:         cur.CloudCover,
		Pressure:           cur.Pressure,
		SurfacePressure:    cur.SurfacePressure,
		WindSpeed:          cur.WindSpeed,
		WindDirection:      cur.WindDirection,
		WindGusts:          cur.WindGusts,
		Time:               cur.Time,
		Timezone:           payload.Timezone,
	}, nil
}

// dailyPayload is the shape of Open-Meteo's parallel-array daily block
type dailyPayload struct {
	Timezone string `json:"timezone"`
	Daily    struct {
		Time                     []string  `json:"time"`
		WeatherCode              []int     `json:"weather_code"`
		TemperatureMax           []float64 `json:"temperature_2m_max"`
		TemperatureMin           []float64 `json:"temperature_2m_min"`
		FeelsLikeMax             []float64 `json:"apparent_temperature_max"`
		FeelsLikeMin             []float64 `json:"apparent_temperature_min"`
		Precipitation            []float64 `json:"precipitation_sum"`
		Rain                     []float64 `json:"rain_sum"`
		PrecipitationProbability []int     `json:"precipitation_probability_max"`
		WindSpeedMax             []float64 `json:"wind_speed_10m_max"`
		WindGustsMax             []float64 `json:"wind_gusts_10m_max"`
		WindDirection            []int     `json:"wind_direction_10m_dominant"`
		Sunrise                  []string  `json:"sunrise"`
		Sunset                   []string  `json:"sunset"`
		UVIndexMax               []float64 `json:"uv_index_max"`
	} `json:"daily"`
}

const dailyFields = "weather_code,temperature_2m_max,temperature_2m_min,apparent_temperature_max," +
	"apparent_temperature_min,precipitation_sum,rain_sum,precipitation_probability_max," +
	"wind_speed_10m_max,wind_gusts_10m_max,wind_direction_10m_dominant,sunrise,sunset,uv_index_max"

// Forecast fetches a daily forecast for the next days (1-16)
func (c *Client) Forecast(ctx context.Context, lat, lon float64, days int) (*models.ForecastResponse, error) {
	params := url.Values{}
	params.Set("latitude", formatCoord(lat))
	params.Set("longitude", formatCoord(lon))
	params.Set("daily", dailyFields)
	params.Set("timezone", "auto")
	params.Set("forecast_days", strconv.Itoa(days))

	var payload dailyPayload
	if err := c.getJSON(ctx, c.ForecastURL+"/forecast?"+params.Encode(), &payload); err != nil {
		return nil, fmt.Errorf("fetching forecast: %w", err)
	}

	return &models.ForecastResponse{
		Forecast: payload.forecastDays(),
		Timezone: payload.Timezone,
	}, nil
}

// DailyRange fetches daily weather for an explicit date range, one item per
// calendar day inclusive.
func (c *Client) DailyRange(ctx context.Context, lat, lon float64, startDate, endDate string) ([]models.WeatherDataItem, string, error) {
	params := url.Values{}
	params.Set("latitude", formatCoord(lat))
	params.Set("longitude", formatCoord(lon))
	params.Set("daily", dailyFields)
	params.Set("timezone", "auto")
	params.Set("start_date", startDate)
	params.Set("end_date", endDate)

	var payload dailyPayload
	if err := c.getJSON(ctx, c.ForecastURL+"/forecast?"+params.Encode(), &payload); err != nil {
		return nil, "", fmt.Errorf("fetching date range: %w", err)
	}

	items := make([]models.WeatherDataItem, 0, len(payload.Daily.Time))
	for _, day := range payload.forecastDays() {
		items = append(items, models.WeatherDataItem{
			Date:               day.Date,
			TemperatureMax:     day.TemperatureMax,
			TemperatureMin:     day.TemperatureMin,
			FeelsLikeMax:       day.FeelsLikeMax,
			FeelsLikeMin:       day.FeelsLikeMin,
			Precipitation:      day.Precipitation,
			Rain:               day.Rain,
			WeatherCode:        day.WeatherCode,
			WeatherDescription: day.WeatherDescription,
			WindSpeedMax:       day.WindSpeedMax,
			WindDirection:      day.WindDirection,
		})
	}

	return items, payload.Timezone, nil
}

// forecastDays flattens the parallel arrays into per-day values. Short
// arrays are tolerated; missing positions become zero values.
func (p *dailyPayload) forecastDays() []models.DailyForecast {
	d := p.Daily
	days := make([]models.DailyForecast, len(d.Time))
	for i := range d.Time {
		day := models.DailyForecast{Date: d.Time[i]}
		if i < len(d.WeatherCode) {
			day.WeatherCode = d.WeatherCode[i]
			day.WeatherDescription = WeatherDescription(d.WeatherCode[i])
		}
		if i < len(d.TemperatureMax) {
			day.TemperatureMax = d.TemperatureMax[i]
		}
		if i < len(d.TemperatureMin) {
			day.TemperatureMin = d.TemperatureMin[i]
		}
		if i < len(d.FeelsLikeMax) {
			day.FeelsLikeMax = d.FeelsLikeMax[i]
		}
		if i < len(d.FeelsLikeMin) {
			day.FeelsLikeMin = d.FeelsLikeMin[i]
		}
		if i < len(d.Precipitation) {
			day.Precipitation = d.Precipitation[i]
		}
		if i < len(d.Rain) {
			day.Rain = d.Rain[i]
		}
		if i < len(d.PrecipitationProbability) {
			day.PrecipitationProbability = d.PrecipitationProbability[i]
		}
		if i < len(d.WindSpeedMax) {
			day.WindSpeedMax = d.WindSpeedMax[i]
		}
		if i < len(d.WindGustsMax) {
			day.WindGustsMax = d.WindGustsMax[i]
		}
		if i < len(d.WindDirection) {
			day.WindDirection = d.WindDirection[i]
		}
		if i < len(d.Sunrise) {
			day.Sunrise = d.Sunrise[i]
		}
		if i < len(d.Sunset) {
			day.Sunset = d.Sunset[i]
		}
		if i < len(d.UVIndexMax) {
			day.UVIndexMax = d.UVIndexMax[i]
		}
		days[i] = day
	}
	return days
}

// Hourly fetches an hourly forecast limited to the requested hours (1-168)
func (c *Client) Hourly(ctx context.Context, lat, lon float64, hours int) (*models.HourlyForecastResponse, error) {
	// Whole forecast days needed to cover the requested hours
	forecastDays := (hours / 24) + 1
	if forecastDays > 7 {
		forecastDays = 7
	}

	params := url.Values{}
	params.Set("latitude", formatCoord(lat))
	params.Set("longitude", formatCoord(lon))
	params.Set("hourly", "temperature_2m,relative_humidity_2m,apparent_temperature,precipitation_probability,"+
		"precipitation,weather_code,wind_speed_10m,wind_direction_10m")
	params.Set("timezone", "auto")
	params.Set("forecast_days", strconv.Itoa(forecastDays))

	var payload struct {
		Timezone string `json:"timezone"`
		Hourly   struct {
			Time                     []string  `json:"time"`
			Temperature              []float64 `json:"temperature_2m"`
			Humidity                 []int     `json:"relative_humidity_2m"`
			FeelsLike                []float64 `json:"apparent_temperature"`
			PrecipitationProbability []int     `json:"precipitation_probability"`
			Precipitation            []float64 `json:"precipitation"`
			WeatherCode              []int     `json:"weather_code"`
			WindSpeed                []float64 `json:"wind_speed_10m"`
			WindDirection            []int     `json:"wind_direction_10m"`
		} `json:"hourly"`
	}

	if err := c.getJSON(ctx, c.ForecastURL+"/forecast?"+params.Encode(), &payload); err != nil {
		return nil, fmt.Errorf("fetching hourly forecast: %w", err)
	}

	h := payload.Hourly
	n := len(h.Time)
	if n > hours {
		n = hours
	}

	items := make([]models.HourlyForecastItem, n)
	for i := 0; i < n; i++ {
		item := models.HourlyForecastItem{Time: h.Time[i]}
		if i < len(h.Temperature) {
			item.Temperature = h.Temperature[i]
		}
		if i < len(h.Humidity) {
			item.Humidity = h.Humidity[i]
		}
		if i < len(h.FeelsLike) {
			item.FeelsLike = h.FeelsLike[i]
		}
		if i < len(h.PrecipitationProbability) {
			item.PrecipitationProbability = h.PrecipitationProbability[i]
		}
		if i < len(h.Precipitation) {
			item.Precipitation = h.Precipitation[i]
		}
		if i < len(h.WeatherCode) {
			item.WeatherCode = h.WeatherCode[i]
			item.WeatherDescription = WeatherDescription(h.WeatherCode[i])
		}
		if i < len(h.WindSpeed) {
			item.WindSpeed = h.WindSpeed[i]
		}
		if i < len(h.WindDirection) {
			item.WindDirection = h.WindDirection[i]
		}
		items[i] = item
	}

	return &models.HourlyForecastResponse{
		Hourly:   items,
		Timezone: payload.Timezone,
	}, nil
}

func formatCoord(v float64) string {
	return strconv.FormatFloat(v, 'f', 4, 64)
}
