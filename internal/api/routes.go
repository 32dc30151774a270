package api

import (
	"github.com/labstack/echo/v4"

	"github.com/Banyel3/weather-app/internal/auth"
	"github.com/Banyel3/weather-app/internal/database"
	"github.com/Banyel3/weather-app/internal/openmeteo"
)

// RegisterRoutes wires every endpoint under the given group, which is
// expected to be mounted at /api/weather.
func RegisterRoutes(g *echo.Group, authSvc *auth.Service, weather *openmeteo.Client) {
	authService = authSvc
	weatherClient = weather
	auditRepo = database.NewAuditRepo()
	requestRepo = database.NewRequestRepo()

	g.GET("/health", healthCheck)

	// Public weather lookups
	g.GET("/search", searchLocationHandler)
	g.GET("/current", currentWeatherHandler)
	g.GET("/forecast", forecastHandler)
	g.GET("/hourly", hourlyForecastHandler)
	g.GET("/complete", completeWeatherHandler)
	g.GET("/validate-location", validateLocationHandler)
	g.GET("/validate-dates", validateDatesHandler)
	g.GET("/live", liveWeatherHandler)

	// Auth
	g.POST("/auth/signup", signupHandler)
	g.POST("/auth/login", loginHandler, auth.LoginRateLimiter.Middleware())

	authed := g.Group("", auth.RequireAuth(authSvc))
	authed.POST("/auth/logout", logoutHandler)
	authed.GET("/auth/me", currentUserHandler)
	authed.GET("/auth/activity", activityHandler)

	// Saved weather requests
	authed.POST("/weather-requests", createRequestHandler)
	authed.GET("/weather-requests", listRequestsHandler)
	authed.GET("/weather-requests/:id", getRequestHandler)
	authed.PUT("/weather-requests/:id", updateRequestHandler)
	authed.DELETE("/weather-requests/:id", deleteRequestHandler)
}
