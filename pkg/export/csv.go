package export

import (
	"fmt"
	"strings"

	"github.com/Banyel3/weather-app/pkg/client"
)

// csvQuote wraps a free-text field in double quotes, doubling any
// embedded quotes.
func csvQuote(s string) string {
	return `"` + strings.ReplaceAll(s, `"`, `""`) + `"`
}

// CSV renders the record as a commented metadata header followed by one
// row per day and trailing aggregate statistics.
func CSV(wr *client.WeatherRequest) ([]byte, error) {
	var b strings.Builder

	fmt.Fprintf(&b, "# Weather data export\n")
	fmt.Fprintf(&b, "# Location: %s, %s\n", wr.LocationName, wr.Country)
	fmt.Fprintf(&b, "# Coordinates: %g, %g\n", wr.Latitude, wr.Longitude)
	fmt.Fprintf(&b, "# Timezone: %s\n", wr.Timezone)
	fmt.Fprintf(&b, "# Date range: %s to %s\n", wr.StartDate, wr.EndDate)
	if wr.Notes != "" {
		fmt.Fprintf(&b, "# Notes: %s\n", wr.Notes)
	}

	b.WriteString("date,temperature_max,temperature_min,feels_like_max,feels_like_min,precipitation,rain,weather_code,weather_description,wind_speed_max,wind_direction\n")
	for _, d := range wr.WeatherData {
		fmt.Fprintf(&b, "%s,%g,%g,%g,%g,%g,%g,%d,%s,%g,%g\n",
			d.Date,
			d.TemperatureMax, d.TemperatureMin,
			d.FeelsLikeMax, d.FeelsLikeMin,
			d.Precipitation, d.Rain,
			d.WeatherCode, csvQuote(d.WeatherDescription),
			d.WindSpeedMax, d.WindDirection,
		)
	}

	s := computeStats(wr.WeatherData)
	fmt.Fprintf(&b, "# Average max temperature: %s\n", fmt1(s.avgTempMax, s.ok))
	fmt.Fprintf(&b, "# Average min temperature: %s\n", fmt1(s.avgTempMin, s.ok))
	fmt.Fprintf(&b, "# Total precipitation: %s\n", fmt1(s.totalPrecipitation, s.ok))
	fmt.Fprintf(&b, "# Total rain: %s\n", fmt1(s.totalRain, s.ok))
	fmt.Fprintf(&b, "# Average max wind speed: %s\n", fmt1(s.avgWindMax, s.ok))

	return []byte(b.String()), nil
}
