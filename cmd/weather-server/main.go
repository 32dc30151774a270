package main

import (
	"log"
	"net/http"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"github.com/Banyel3/weather-app/internal/api"
	"github.com/Banyel3/weather-app/internal/auth"
	"github.com/Banyel3/weather-app/internal/database"
	"github.com/Banyel3/weather-app/internal/openmeteo"
)

func main() {
	// .env is optional; real deployments set the environment directly
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		log.Printf("Warning: could not load .env: %v", err)
	}

	dbPath := os.Getenv("WEATHER_DB_PATH")
	if dbPath == "" {
		dbPath = "./weather.db"
	}
	if !filepath.IsAbs(dbPath) {
		cwd, _ := os.Getwd()
		dbPath = filepath.Join(cwd, dbPath)
	}

	log.Printf("Initializing database at %s", dbPath)
	if err := database.Open(database.Config{Path: dbPath}); err != nil {
		log.Fatalf("Failed to initialize database: %v", err)
	}
	defer database.Close()

	authSvc := auth.NewService()

	weather := openmeteo.NewClient()
	if u := os.Getenv("WEATHER_FORECAST_URL"); u != "" {
		weather.ForecastURL = u
	}
	if u := os.Getenv("WEATHER_GEOCODING_URL"); u != "" {
		weather.GeocodingURL = u
	}

	e := echo.New()
	e.HideBanner = true

	e.Use(middleware.Logger())
	e.Use(middleware.Recover())
	e.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins:     []string{"http://localhost:3000"},
		AllowMethods:     []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete},
		AllowHeaders:     []string{echo.HeaderOrigin, echo.HeaderContentType, echo.HeaderAccept, echo.HeaderAuthorization},
		AllowCredentials: true,
	}))

	apiGroup := e.Group("/api/weather")
	api.RegisterRoutes(apiGroup, authSvc, weather)

	port := os.Getenv("WEATHER_PORT")
	if port == "" {
		port = "8000"
	}

	log.Printf("Starting weather backend on port %s", port)
	e.Logger.Fatal(e.Start(":" + port))
}
