// Command weather-cli drives the weather API from the terminal: location
// search, current conditions and forecasts, account management, saved
// weather requests, and file exports.
package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"os"
	"strconv"
	"syscall"

	"golang.org/x/term"

	"github.com/Banyel3/weather-app/pkg/client"
	"github.com/Banyel3/weather-app/pkg/export"
	"github.com/Banyel3/weather-app/pkg/geolocate"
)

func usage() {
	fmt.Fprintln(os.Stderr, `Usage: weather-cli <command> [args]

Lookup:
  search <query>                      find locations by name
  current <lat> <lon>                 current conditions
  forecast <lat> <lon> [days]         daily forecast (1-16 days)
  hourly <lat> <lon> [hours]          hourly forecast (1-168 hours)
  complete <query> [days]             location + current + forecast
  here [days]                         weather for your estimated position

Account:
  signup <username> <first> <last>    create an account (prompts for password)
  login <username>                    log in (prompts for password)
  logout                              log out
  me                                  show the logged-in user
  activity                            recent account activity

Saved requests:
  requests [-location s] [-limit n] [-offset n]   list saved requests
  request <id>                                    show one saved request
  save <location> <start> <end> [notes]           save a request
  delete <id>                                     delete a request
  export <id> <json|xml|csv|md|html>              export to a file

The server defaults to ` + client.DefaultBaseURL + `;
set WEATHER_API_URL to override.`)
	os.Exit(2)
}

func main() {
	log.SetFlags(0)

	if len(os.Args) < 2 {
		usage()
	}

	sessions, err := client.DefaultSessionStore()
	if err != nil {
		log.Fatalf("session store: %v", err)
	}

	opts := []client.Option{client.WithSessionStore(sessions)}
	if u := os.Getenv("WEATHER_API_URL"); u != "" {
		opts = append(opts, client.WithBaseURL(u))
	}
	c := client.New(opts...)

	ctx := context.Background()
	args := os.Args[2:]

	switch os.Args[1] {
	case "search":
		requireArgs(args, 1)
		locations, err := c.SearchLocations(ctx, args[0])
		exitOn(err)
		for _, l := range locations {
			fmt.Printf("%-30s %-20s %s\n", place(l), l.Country, geolocate.FormatCoordinates(l.Latitude, l.Longitude))
		}

	case "current":
		requireArgs(args, 2)
		lat, lon := parseCoords(args[0], args[1])
		current, err := c.CurrentWeather(ctx, lat, lon)
		exitOn(err)
		printCurrent(current)

	case "forecast":
		lat, lon, n := coordsAndCount(args, 0)
		forecast, err := c.Forecast(ctx, lat, lon, n)
		exitOn(err)
		printForecast(forecast.Forecast)

	case "hourly":
		lat, lon, n := coordsAndCount(args, 0)
		hourly, err := c.HourlyForecast(ctx, lat, lon, n)
		exitOn(err)
		for _, h := range hourly.Hourly {
			fmt.Printf("%-17s %6.1f°C  %3.0f%%  %s\n", h.Time, h.Temperature, h.PrecipitationProbability, h.WeatherDescription)
		}

	case "complete":
		requireArgs(args, 1)
		days := 0
		if len(args) > 1 {
			days = mustAtoi(args[1])
		}
		resp, err := c.CompleteWeather(ctx, args[0], days)
		exitOn(err)
		fmt.Printf("%s, %s (%s)\n\n", resp.Location.Name, resp.Location.Country,
			geolocate.FormatCoordinates(resp.Location.Latitude, resp.Location.Longitude))
		printCurrent(&resp.Current)
		fmt.Println()
		printForecast(resp.Forecast)

	case "here":
		days := 0
		if len(args) > 0 {
			days = mustAtoi(args[0])
		}
		pos, err := geolocate.New().CurrentPosition(ctx)
		exitOn(err)
		fmt.Printf("Estimated position: %s (%s)\n\n", geolocate.FormatCoordinates(pos.Latitude, pos.Longitude), pos.City)
		resp, err := c.WeatherByCoordinates(ctx, pos.Latitude, pos.Longitude, days)
		exitOn(err)
		printCurrent(&resp.Current)
		fmt.Println()
		printForecast(resp.Forecast)

	case "signup":
		requireArgs(args, 3)
		password := promptPassword("Password: ")
		resp, err := c.Signup(ctx, client.SignupInput{
			Username:  args[0],
			Password:  password,
			FirstName: args[1],
			LastName:  args[2],
		})
		exitOn(err)
		fmt.Printf("Account created, logged in as %s\n", resp.User.Username)

	case "login":
		requireArgs(args, 1)
		password := promptPassword("Password: ")
		resp, err := c.Login(ctx, args[0], password)
		exitOn(err)
		fmt.Printf("Logged in as %s %s\n", resp.User.FirstName, resp.User.LastName)

	case "logout":
		exitOn(c.Logout(ctx))
		fmt.Println("Logged out")

	case "me":
		user, err := c.Me(ctx)
		exitOn(err)
		fmt.Printf("%s (%s %s)\n", user.Username, user.FirstName, user.LastName)

	case "activity":
		entries, err := c.Activity(ctx)
		exitOn(err)
		for _, e := range entries {
			fmt.Printf("%-25s %-30s %s\n", e.Timestamp, e.Action, e.Target)
		}

	case "requests":
		fs := flag.NewFlagSet("requests", flag.ExitOnError)
		location := fs.String("location", "", "filter by location substring")
		limit := fs.Int("limit", 0, "page size")
		offset := fs.Int("offset", 0, "page offset")
		fs.Parse(args)
		items, err := c.ListWeatherRequests(ctx, client.ListOptions{
			Location: *location,
			Limit:    *limit,
			Offset:   *offset,
		})
		exitOn(err)
		for _, r := range items {
			fmt.Printf("%4d  %-25s %s to %s\n", r.ID, r.LocationName, r.StartDate, r.EndDate)
		}

	case "request":
		requireArgs(args, 1)
		wr, err := c.GetWeatherRequest(ctx, mustID(args[0]))
		exitOn(err)
		data, _ := json.MarshalIndent(wr, "", "  ")
		fmt.Println(string(data))

	case "save":
		requireArgs(args, 3)
		input := client.CreateWeatherRequestInput{
			LocationName: args[0],
			StartDate:    args[1],
			EndDate:      args[2],
		}
		if len(args) > 3 {
			input.Notes = args[3]
		}
		wr, err := c.CreateWeatherRequest(ctx, input)
		exitOn(err)
		fmt.Printf("Saved weather request %d for %s (%d days of data)\n", wr.ID, wr.LocationName, len(wr.WeatherData))

	case "delete":
		requireArgs(args, 1)
		resp, err := c.DeleteWeatherRequest(ctx, mustID(args[0]))
		exitOn(err)
		fmt.Println(resp.Message)

	case "export":
		requireArgs(args, 2)
		wr, err := c.GetWeatherRequest(ctx, mustID(args[0]))
		exitOn(err)
		exportRequest(wr, args[1])

	default:
		usage()
	}
}

func exportRequest(wr *client.WeatherRequest, format string) {
	var (
		data []byte
		err  error
		ext  = format
	)
	switch format {
	case "json":
		data, err = export.JSON(wr)
	case "xml":
		data, err = export.XML(wr)
	case "csv":
		data, err = export.CSV(wr)
	case "md", "markdown":
		data, err = export.Markdown(wr)
		ext = "md"
	case "html":
		data, err = export.HTML(wr)
	default:
		log.Fatalf("unknown export format %q (want json, xml, csv, md, or html)", format)
	}
	exitOn(err)

	name := export.Filename(wr, ext)
	exitOn(os.WriteFile(name, data, 0o644))
	fmt.Printf("Wrote %s\n", name)
}

func printCurrent(w *client.CurrentWeather) {
	fmt.Printf("%s, %.1f°C (feels like %.1f°C)\n", w.WeatherDescription, w.Temperature, w.FeelsLike)
	fmt.Printf("Humidity %.0f%%, wind %.0f km/h, pressure %.0f hPa\n", w.Humidity, w.WindSpeed, w.Pressure)
}

func printForecast(days []client.DailyForecast) {
	for _, d := range days {
		fmt.Printf("%s  %5.1f / %5.1f°C  %s\n", d.Date, d.TemperatureMax, d.TemperatureMin, d.WeatherDescription)
	}
}

func place(l client.Location) string {
	if l.Admin1 != "" {
		return l.Name + ", " + l.Admin1
	}
	return l.Name
}

func promptPassword(prompt string) string {
	fmt.Fprint(os.Stderr, prompt)
	password, err := term.ReadPassword(int(syscall.Stdin))
	fmt.Fprintln(os.Stderr)
	if err != nil {
		log.Fatalf("read password: %v", err)
	}
	return string(password)
}

func requireArgs(args []string, n int) {
	if len(args) < n {
		usage()
	}
}

func exitOn(err error) {
	if err != nil {
		log.Fatalf("Error: %v", err)
	}
}

func mustAtoi(s string) int {
	n, err := strconv.Atoi(s)
	if err != nil {
		log.Fatalf("not a number: %q", s)
	}
	return n
}

func mustID(s string) int64 {
	id, err := strconv.ParseInt(s, 10, 64)
	if err != nil || id <= 0 {
		log.Fatalf("not a valid id: %q", s)
	}
	return id
}

func parseCoords(latStr, lonStr string) (float64, float64) {
	lat, err := strconv.ParseFloat(latStr, 64)
	if err != nil {
		log.Fatalf("not a latitude: %q", latStr)
	}
	lon, err := strconv.ParseFloat(lonStr, 64)
	if err != nil {
		log.Fatalf("not a longitude: %q", lonStr)
	}
	return lat, lon
}

func coordsAndCount(args []string, def int) (float64, float64, int) {
	requireArgs(args, 2)
	lat, lon := parseCoords(args[0], args[1])
	n := def
	if len(args) > 2 {
		n = mustAtoi(args[2])
	}
	return lat, lon, n
}
