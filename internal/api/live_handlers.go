package api

import (
	"net/http"
	"time"

	"github.com/gorilla/websocket"
	"github.com/labstack/echo/v4"
)

var liveUpgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin: func(r *http.Request) bool {
		return true
	},
}

// liveInterval is how often a /live connection receives a fresh snapshot.
const liveInterval = 60 * time.Second

// liveWeatherHandler handles GET /api/weather/live. It upgrades the
// connection and pushes a current-weather snapshot for the given
// coordinates every minute until the client disconnects.
func liveWeatherHandler(c echo.Context) error {
	lat, lon, err := parseCoordinates(c)
	if err != nil {
		return apiError(c, http.StatusBadRequest, "Invalid coordinates", "Latitude must be -90 to 90, longitude -180 to 180")
	}

	ws, err := liveUpgrader.Upgrade(c.Response(), c.Request(), nil)
	if err != nil {
		c.Logger().Error("live upgrade error: ", err)
		return err
	}
	defer ws.Close()

	ctx := c.Request().Context()

	// Drain client frames so pings and close messages are processed
	go func() {
		for {
			if _, _, err := ws.ReadMessage(); err != nil {
				return
			}
		}
	}()

	send := func() error {
		current, err := weatherClient.Current(ctx, lat, lon)
		if err != nil {
			c.Logger().Error("live weather error: ", err)
			return ws.WriteJSON(map[string]string{
				"error":   "Not found",
				"message": "Could not fetch weather data",
			})
		}
		return ws.WriteJSON(current)
	}

	if err := send(); err != nil {
		return nil
	}

	ticker := time.NewTicker(liveInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
			if err := send(); err != nil {
				return nil
			}
		}
	}
}
