package api

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/Banyel3/weather-app/internal/auth"
	"github.com/Banyel3/weather-app/internal/database"
	"github.com/Banyel3/weather-app/internal/models"
)

var requestRepo *database.RequestRepo

// createRequestHandler handles POST /api/weather/weather-requests
func createRequestHandler(c echo.Context) error {
	user := auth.GetUserFromContext(c)

	var req models.CreateWeatherRequest
	if err := c.Bind(&req); err != nil {
		return apiError(c, http.StatusBadRequest, "Invalid request", "Invalid request body")
	}

	dateVerdict, err := validateDateRange(req.StartDate, req.EndDate)
	if err != nil {
		return apiError(c, http.StatusBadRequest, "Invalid date range", err.Error())
	}
	if !dateVerdict.Valid {
		return apiError(c, http.StatusBadRequest, "Invalid date range", dateVerdict.Error)
	}

	wr := &models.WeatherRequest{
		UserID:    user.ID,
		StartDate: req.StartDate,
		EndDate:   req.EndDate,
		Notes:     req.Notes,
	}

	if req.Latitude != nil && req.Longitude != nil {
		// Caller supplied exact coordinates
		wr.LocationName = req.LocationName
		wr.Latitude = *req.Latitude
		wr.Longitude = *req.Longitude
		wr.Country = req.Country
		wr.Timezone = req.Timezone
		if wr.Timezone == "" {
			wr.Timezone = "UTC"
		}
	} else {
		verdict := validateLocation(c, req.LocationName)
		if !verdict.Valid {
			return apiError(c, http.StatusBadRequest, "Invalid location", locationErrorMessage(verdict))
		}
		wr.LocationName = verdict.BestMatch.Name
		wr.Country = verdict.BestMatch.Country
		wr.Latitude = verdict.BestMatch.Latitude
		wr.Longitude = verdict.BestMatch.Longitude
		wr.Timezone = verdict.BestMatch.Timezone
	}

	data, tz, err := weatherClient.DailyRange(c.Request().Context(), wr.Latitude, wr.Longitude, wr.StartDate, wr.EndDate)
	if err != nil {
		c.Logger().Error("create request weather fetch: ", err)
		return apiError(c, http.StatusBadRequest, "Weather data unavailable",
			"Could not fetch weather data for this location and date range")
	}
	wr.WeatherData = data
	if tz != "" {
		wr.Timezone = tz
	}

	if err := requestRepo.Create(wr); err != nil {
		c.Logger().Error("create request error: ", err)
		return apiError(c, http.StatusInternalServerError, "Create failed", "Could not save weather request")
	}

	auditRepo.Record(user.ID, user.Username, models.AuditActionCreateRequest, strconv.FormatInt(wr.ID, 10), c.RealIP())

	return c.JSON(http.StatusCreated, wr)
}

// listRequestsHandler handles GET /api/weather/weather-requests
func listRequestsHandler(c echo.Context) error {
	user := auth.GetUserFromContext(c)

	filter := database.ListFilter{
		Location: c.QueryParam("location"),
		Limit:    50,
	}
	if v := c.QueryParam("limit"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			filter.Limit = n
		}
	}
	if v := c.QueryParam("offset"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n >= 0 {
			filter.Offset = n
		}
	}

	items, err := requestRepo.ListByUser(user.ID, filter)
	if err != nil {
		c.Logger().Error("list requests error: ", err)
		return apiError(c, http.StatusInternalServerError, "List failed", "Could not list weather requests")
	}

	return c.JSON(http.StatusOK, items)
}

// getRequestHandler handles GET /api/weather/weather-requests/:id
func getRequestHandler(c echo.Context) error {
	user := auth.GetUserFromContext(c)

	id, err := parseID(c.Param("id"))
	if err != nil {
		return apiError(c, http.StatusBadRequest, "Invalid request", "Invalid weather request ID")
	}

	wr, err := requestRepo.GetByID(id, user.ID)
	if err != nil {
		if errors.Is(err, database.ErrRequestNotFound) {
			return apiError(c, http.StatusNotFound, "Not found",
				fmt.Sprintf("Weather request with ID %d not found", id))
		}
		c.Logger().Error("get request error: ", err)
		return apiError(c, http.StatusInternalServerError, "Get failed", "Could not load weather request")
	}

	return c.JSON(http.StatusOK, wr)
}

// updateRequestHandler handles PUT /api/weather/weather-requests/:id.
// Only supplied fields change; a location or date change re-fetches the
// stored weather data so it always spans the (possibly new) range.
func updateRequestHandler(c echo.Context) error {
	user := auth.GetUserFromContext(c)

	id, err := parseID(c.Param("id"))
	if err != nil {
		return apiError(c, http.StatusBadRequest, "Invalid request", "Invalid weather request ID")
	}

	var req models.UpdateWeatherRequest
	if err := c.Bind(&req); err != nil {
		return apiError(c, http.StatusBadRequest, "Invalid request", "Invalid request body")
	}

	wr, err := requestRepo.GetByID(id, user.ID)
	if err != nil {
		if errors.Is(err, database.ErrRequestNotFound) {
			return apiError(c, http.StatusNotFound, "Not found",
				fmt.Sprintf("Weather request with ID %d not found or you don't have permission to edit it", id))
		}
		c.Logger().Error("update request error: ", err)
		return apiError(c, http.StatusInternalServerError, "Update failed", "Could not load weather request")
	}

	needsRefetch := false

	if req.Notes != nil {
		wr.Notes = *req.Notes
	}

	if req.StartDate != nil || req.EndDate != nil {
		newStart := wr.StartDate
		newEnd := wr.EndDate
		if req.StartDate != nil {
			newStart = *req.StartDate
		}
		if req.EndDate != nil {
			newEnd = *req.EndDate
		}

		dateVerdict, err := validateDateRange(newStart, newEnd)
		if err != nil {
			return apiError(c, http.StatusBadRequest, "Invalid date range", err.Error())
		}
		if !dateVerdict.Valid {
			return apiError(c, http.StatusBadRequest, "Invalid date range", dateVerdict.Error)
		}

		wr.StartDate = newStart
		wr.EndDate = newEnd
		needsRefetch = true
	}

	switch {
	case req.LocationName != nil:
		if req.Latitude != nil && req.Longitude != nil {
			// Caller supplied exact coordinates for the new location
			wr.LocationName = *req.LocationName
			wr.Latitude = *req.Latitude
			wr.Longitude = *req.Longitude
			if req.Country != nil {
				wr.Country = *req.Country
			}
			if req.Timezone != nil {
				wr.Timezone = *req.Timezone
			}
		} else {
			verdict := validateLocation(c, *req.LocationName)
			if !verdict.Valid {
				return apiError(c, http.StatusBadRequest, "Invalid location", locationErrorMessage(verdict))
			}
			wr.LocationName = verdict.BestMatch.Name
			wr.Country = verdict.BestMatch.Country
			wr.Latitude = verdict.BestMatch.Latitude
			wr.Longitude = verdict.BestMatch.Longitude
			wr.Timezone = verdict.BestMatch.Timezone
		}
		needsRefetch = true

	case req.Latitude != nil || req.Longitude != nil:
		if req.Latitude != nil {
			wr.Latitude = *req.Latitude
		}
		if req.Longitude != nil {
			wr.Longitude = *req.Longitude
		}
		if req.Country != nil {
			wr.Country = *req.Country
		}
		if req.Timezone != nil {
			wr.Timezone = *req.Timezone
		}
		needsRefetch = true
	}

	if needsRefetch {
		data, tz, err := weatherClient.DailyRange(c.Request().Context(), wr.Latitude, wr.Longitude, wr.StartDate, wr.EndDate)
		if err != nil {
			c.Logger().Error("update request weather fetch: ", err)
			return apiError(c, http.StatusBadRequest, "Weather data unavailable",
				"Could not fetch weather data for updated location/dates")
		}
		wr.WeatherData = data
		if tz != "" {
			wr.Timezone = tz
		}
	}

	if err := requestRepo.Update(wr); err != nil {
		c.Logger().Error("update request error: ", err)
		return apiError(c, http.StatusInternalServerError, "Update failed", "Could not save weather request")
	}

	auditRepo.Record(user.ID, user.Username, models.AuditActionUpdateRequest, strconv.FormatInt(wr.ID, 10), c.RealIP())

	return c.JSON(http.StatusOK, wr)
}

// deleteRequestHandler handles DELETE /api/weather/weather-requests/:id
func deleteRequestHandler(c echo.Context) error {
	user := auth.GetUserFromContext(c)

	id, err := parseID(c.Param("id"))
	if err != nil {
		return apiError(c, http.StatusBadRequest, "Invalid request", "Invalid weather request ID")
	}

	wr, err := requestRepo.GetByID(id, user.ID)
	if err != nil {
		if errors.Is(err, database.ErrRequestNotFound) {
			return apiError(c, http.StatusNotFound, "Not found",
				fmt.Sprintf("Weather request with ID %d not found or you don't have permission to delete it", id))
		}
		c.Logger().Error("delete request error: ", err)
		return apiError(c, http.StatusInternalServerError, "Delete failed", "Could not load weather request")
	}

	if err := requestRepo.Delete(id, user.ID); err != nil {
		c.Logger().Error("delete request error: ", err)
		return apiError(c, http.StatusInternalServerError, "Delete failed", "Could not delete weather request")
	}

	auditRepo.Record(user.ID, user.Username, models.AuditActionDeleteRequest, strconv.FormatInt(id, 10), c.RealIP())

	return c.JSON(http.StatusOK, models.DeleteResponse{
		Success: true,
		Message: fmt.Sprintf("Weather request for '%s' (ID: %d) has been deleted", wr.LocationName, id),
	})
}

// locationErrorMessage renders a failed location verdict, listing any
// near-miss suggestions.
func locationErrorMessage(verdict models.LocationValidation) string {
	if len(verdict.Suggestions) == 0 {
		return verdict.Error
	}
	names := make([]string, len(verdict.Suggestions))
	for i, s := range verdict.Suggestions {
		names[i] = s.Name
	}
	return fmt.Sprintf("%s. Did you mean one of these? %s", verdict.Error, strings.Join(names, ", "))
}
