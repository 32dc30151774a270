package api

import (
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/Banyel3/weather-app/internal/models"
	"github.com/Banyel3/weather-app/internal/openmeteo"
)

var weatherClient *openmeteo.Client

// searchLocationHandler handles GET /api/weather/search
func searchLocationHandler(c echo.Context) error {
	q := strings.TrimSpace(c.QueryParam("q"))
	if len(q) < 2 {
		return apiError(c, http.StatusNotFound, "Invalid query", "Query must be at least 2 characters")
	}

	locations, err := weatherClient.Geocode(c.Request().Context(), q)
	if err != nil {
		c.Logger().Error("search error: ", err)
		return apiError(c, http.StatusNotFound, "Not found", fmt.Sprintf("No locations found for '%s'", q))
	}
	if len(locations) == 0 {
		return apiError(c, http.StatusNotFound, "Not found", fmt.Sprintf("No locations found for '%s'", q))
	}

	return c.JSON(http.StatusOK, locations)
}

// currentWeatherHandler handles GET /api/weather/current
func currentWeatherHandler(c echo.Context) error {
	lat, lon, err := parseCoordinates(c)
	if err != nil {
		return apiError(c, http.StatusBadRequest, "Invalid coordinates", "Latitude must be -90 to 90, longitude -180 to 180")
	}

	current, err := weatherClient.Current(c.Request().Context(), lat, lon)
	if err != nil {
		c.Logger().Error("current weather error: ", err)
		return apiError(c, http.StatusNotFound, "Not found", "Could not fetch weather data")
	}

	return c.JSON(http.StatusOK, current)
}

// forecastHandler handles GET /api/weather/forecast
func forecastHandler(c echo.Context) error {
	lat, lon, err := parseCoordinates(c)
	if err != nil {
		return apiError(c, http.StatusBadRequest, "Invalid coordinates", "Latitude must be -90 to 90, longitude -180 to 180")
	}

	days := 7
	if v := c.QueryParam("days"); v != "" {
		days, err = strconv.Atoi(v)
		if err != nil || days < 1 || days > 16 {
			return apiError(c, http.StatusBadRequest, "Invalid days", "Days must be between 1 and 16")
		}
	}

	forecast, err := weatherClient.Forecast(c.Request().Context(), lat, lon, days)
	if err != nil {
		c.Logger().Error("forecast error: ", err)
		return apiError(c, http.StatusNotFound, "Not found", "Could not fetch forecast data")
	}

	return c.JSON(http.StatusOK, forecast)
}

// hourlyForecastHandler handles GET /api/weather/hourly
func hourlyForecastHandler(c echo.Context) error {
	lat, lon, err := parseCoordinates(c)
	if err != nil {
		return apiError(c, http.StatusBadRequest, "Invalid coordinates", "Latitude must be -90 to 90, longitude -180 to 180")
	}

	hours := 24
	if v := c.QueryParam("hours"); v != "" {
		hours, err = strconv.Atoi(v)
		if err != nil || hours < 1 || hours > 168 {
			return apiError(c, http.StatusBadRequest, "Invalid hours", "Hours must be between 1 and 168")
		}
	}

	hourly, err := weatherClient.Hourly(c.Request().Context(), lat, lon, hours)
	if err != nil {
		c.Logger().Error("hourly forecast error: ", err)
		return apiError(c, http.StatusNotFound, "Not found", "Could not fetch hourly forecast data")
	}

	return c.JSON(http.StatusOK, hourly)
}

// completeWeatherHandler handles GET /api/weather/complete
func completeWeatherHandler(c echo.Context) error {
	q := strings.TrimSpace(c.QueryParam("q"))
	if len(q) < 2 {
		return apiError(c, http.StatusBadRequest, "Invalid query", "Query must be at least 2 characters")
	}

	days := 7
	if v := c.QueryParam("days"); v != "" {
		var err error
		days, err = strconv.Atoi(v)
		if err != nil || days < 1 || days > 16 {
			return apiError(c, http.StatusBadRequest, "Invalid days", "Days must be between 1 and 16")
		}
	}

	ctx := c.Request().Context()

	locations, err := weatherClient.Geocode(ctx, q)
	if err != nil || len(locations) == 0 {
		return apiError(c, http.StatusNotFound, "Not found", fmt.Sprintf("No locations found for '%s'", q))
	}
	location := locations[0]

	current, err := weatherClient.Current(ctx, location.Latitude, location.Longitude)
	if err != nil {
		c.Logger().Error("complete weather error: ", err)
		return apiError(c, http.StatusNotFound, "Not found", "Could not fetch current weather")
	}

	forecast, err := weatherClient.Forecast(ctx, location.Latitude, location.Longitude, days)
	if err != nil {
		c.Logger().Error("complete forecast error: ", err)
		return apiError(c, http.StatusNotFound, "Not found", "Could not fetch forecast")
	}

	return c.JSON(http.StatusOK, models.WeatherResponse{
		Location: location,
		Current:  *current,
		Forecast: forecast.Forecast,
	})
}

// validateLocationHandler handles GET /api/weather/validate-location
func validateLocationHandler(c echo.Context) error {
	name := strings.TrimSpace(c.QueryParam("location_name"))
	if name == "" {
		return apiError(c, http.StatusBadRequest, "Invalid request", "location_name is required")
	}

	verdict := validateLocation(c, name)
	return c.JSON(http.StatusOK, verdict)
}

// validateLocation resolves a location name into an advisory verdict.
// A name is valid when geocoding finds a case-insensitive exact match;
// close-but-not-exact results come back as suggestions.
func validateLocation(c echo.Context, name string) models.LocationValidation {
	locations, err := weatherClient.Geocode(c.Request().Context(), name)
	if err != nil || len(locations) == 0 {
		return models.LocationValidation{
			Valid: false,
			Error: fmt.Sprintf("No matching location found for '%s'", name),
		}
	}

	best := locations[0]
	if strings.EqualFold(best.Name, name) {
		return models.LocationValidation{
			Valid:       true,
			BestMatch:   &best,
			Suggestions: locations[1:],
		}
	}

	return models.LocationValidation{
		Valid:       false,
		Error:       fmt.Sprintf("Location '%s' not found", name),
		Suggestions: locations,
	}
}

// validateDatesHandler handles GET /api/weather/validate-dates
func validateDatesHandler(c echo.Context) error {
	verdict, err := validateDateRange(c.QueryParam("start_date"), c.QueryParam("end_date"))
	if err != nil {
		return apiError(c, http.StatusBadRequest, "Invalid dates", err.Error())
	}
	return c.JSON(http.StatusOK, verdict)
}

// Date range bounds: at most 31 days per request, and the range may not end
// more than 16 days out (the upstream forecast horizon).
const (
	maxRangeDays    = 31
	forecastHorizon = 16
)

func validateDateRange(startStr, endStr string) (models.DateRangeValidation, error) {
	start, err := models.ParseDate(startStr)
	if err != nil {
		return models.DateRangeValidation{}, fmt.Errorf("start_date must be a date in YYYY-MM-DD format")
	}
	end, err := models.ParseDate(endStr)
	if err != nil {
		return models.DateRangeValidation{}, fmt.Errorf("end_date must be a date in YYYY-MM-DD format")
	}

	if start.After(end) {
		return models.DateRangeValidation{Valid: false, Error: "Start date must be before or equal to end date"}, nil
	}
	if end.Sub(start) > maxRangeDays*24*time.Hour {
		return models.DateRangeValidation{Valid: false, Error: fmt.Sprintf("Date range cannot exceed %d days", maxRangeDays)}, nil
	}

	horizon := time.Now().AddDate(0, 0, forecastHorizon)
	if end.After(horizon) {
		return models.DateRangeValidation{Valid: false, Error: fmt.Sprintf("End date cannot be more than %d days in the future", forecastHorizon)}, nil
	}

	return models.DateRangeValidation{Valid: true}, nil
}
