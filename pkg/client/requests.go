package client

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
)

// ListOptions filters and pages ListWeatherRequests. Zero values mean
// no location filter, the server default limit of 50, and no offset.
type ListOptions struct {
	Location string
	Limit    int
	Offset   int
}

// CreateWeatherRequest saves a location/date-range query. The server
// fetches and stores the weather data for the range before returning.
func (c *Client) CreateWeatherRequest(ctx context.Context, input CreateWeatherRequestInput) (*WeatherRequest, error) {
	var wr WeatherRequest
	if err := c.post(ctx, "/weather-requests", input, &wr); err != nil {
		return nil, err
	}
	return &wr, nil
}

// ListWeatherRequests lists the caller's saved requests, newest first.
func (c *Client) ListWeatherRequests(ctx context.Context, opts ListOptions) ([]WeatherRequestListItem, error) {
	q := url.Values{}
	if opts.Location != "" {
		q.Set("location", opts.Location)
	}
	if opts.Limit > 0 {
		q.Set("limit", strconv.Itoa(opts.Limit))
	}
	if opts.Offset > 0 {
		q.Set("offset", strconv.Itoa(opts.Offset))
	}

	var items []WeatherRequestListItem
	if err := c.get(ctx, "/weather-requests", q, &items); err != nil {
		return nil, err
	}
	return items, nil
}

// GetWeatherRequest fetches one saved request including its weather
// data.
func (c *Client) GetWeatherRequest(ctx context.Context, id int64) (*WeatherRequest, error) {
	var wr WeatherRequest
	if err := c.get(ctx, fmt.Sprintf("/weather-requests/%d", id), nil, &wr); err != nil {
		return nil, err
	}
	return &wr, nil
}

// UpdateWeatherRequest applies a partial update. Changing the location
// or dates makes the server re-fetch the stored weather data.
func (c *Client) UpdateWeatherRequest(ctx context.Context, id int64, input UpdateWeatherRequestInput) (*WeatherRequest, error) {
	var wr WeatherRequest
	if err := c.do(ctx, http.MethodPut, fmt.Sprintf("/weather-requests/%d", id), nil, input, &wr); err != nil {
		return nil, err
	}
	return &wr, nil
}

// DeleteWeatherRequest removes a saved request.
func (c *Client) DeleteWeatherRequest(ctx context.Context, id int64) (*DeleteResponse, error) {
	var resp DeleteResponse
	if err := c.do(ctx, http.MethodDelete, fmt.Sprintf("/weather-requests/%d", id), nil, nil, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}
