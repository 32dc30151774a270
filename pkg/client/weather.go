package client

import (
	"context"
	"net/url"
	"strconv"

	"golang.org/x/sync/errgroup"
)

func coordQuery(lat, lon float64) url.Values {
	return url.Values{
		"lat": {strconv.FormatFloat(lat, 'f', -1, 64)},
		"lon": {strconv.FormatFloat(lon, 'f', -1, 64)},
	}
}

// SearchLocations finds places matching a free-text query of at least
// two characters.
func (c *Client) SearchLocations(ctx context.Context, query string) ([]Location, error) {
	var locations []Location
	err := c.get(ctx, "/search", url.Values{"q": {query}}, &locations)
	if err != nil {
		return nil, err
	}
	return locations, nil
}

// CurrentWeather fetches current conditions for the coordinates.
func (c *Client) CurrentWeather(ctx context.Context, lat, lon float64) (*CurrentWeather, error) {
	var current CurrentWeather
	if err := c.get(ctx, "/current", coordQuery(lat, lon), &current); err != nil {
		return nil, err
	}
	return &current, nil
}

// Forecast fetches a daily forecast. days must be 1-16; 0 means the
// server default of 7.
func (c *Client) Forecast(ctx context.Context, lat, lon float64, days int) (*ForecastResponse, error) {
	q := coordQuery(lat, lon)
	if days > 0 {
		q.Set("days", strconv.Itoa(days))
	}
	var forecast ForecastResponse
	if err := c.get(ctx, "/forecast", q, &forecast); err != nil {
		return nil, err
	}
	return &forecast, nil
}

// HourlyForecast fetches an hour-by-hour forecast. hours must be 1-168;
// 0 means the server default of 24.
func (c *Client) HourlyForecast(ctx context.Context, lat, lon float64, hours int) (*HourlyForecastResponse, error) {
	q := coordQuery(lat, lon)
	if hours > 0 {
		q.Set("hours", strconv.Itoa(hours))
	}
	var hourly HourlyForecastResponse
	if err := c.get(ctx, "/hourly", q, &hourly); err != nil {
		return nil, err
	}
	return &hourly, nil
}

// CompleteWeather resolves a location query and returns it with current
// conditions and a forecast in one call.
func (c *Client) CompleteWeather(ctx context.Context, query string, days int) (*WeatherResponse, error) {
	q := url.Values{"q": {query}}
	if days > 0 {
		q.Set("days", strconv.Itoa(days))
	}
	var resp WeatherResponse
	if err := c.get(ctx, "/complete", q, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// WeatherByCoordinates fetches current conditions and a forecast for
// the coordinates concurrently. Either both succeed or an error is
// returned.
func (c *Client) WeatherByCoordinates(ctx context.Context, lat, lon float64, days int) (*WeatherResponse, error) {
	var (
		current  *CurrentWeather
		forecast *ForecastResponse
	)

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		current, err = c.CurrentWeather(ctx, lat, lon)
		return err
	})
	g.Go(func() error {
		var err error
		forecast, err = c.Forecast(ctx, lat, lon, days)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	return &WeatherResponse{
		Location: Location{
			Latitude:  lat,
			Longitude: lon,
			Timezone:  forecast.Timezone,
		},
		Current:  *current,
		Forecast: forecast.Forecast,
	}, nil
}

// ValidateLocation asks the server whether a location name resolves to
// an exact geocoding match.
func (c *Client) ValidateLocation(ctx context.Context, name string) (*LocationValidation, error) {
	var verdict LocationValidation
	if err := c.get(ctx, "/validate-location", url.Values{"location_name": {name}}, &verdict); err != nil {
		return nil, err
	}
	return &verdict, nil
}

// ValidateDateRange asks the server whether a start/end date pair is
// acceptable for a weather request.
func (c *Client) ValidateDateRange(ctx context.Context, startDate, endDate string) (*DateRangeValidation, error) {
	q := url.Values{
		"start_date": {startDate},
		"end_date":   {endDate},
	}
	var verdict DateRangeValidation
	if err := c.get(ctx, "/validate-dates", q, &verdict); err != nil {
		return nil, err
	}
	return &verdict, nil
}
