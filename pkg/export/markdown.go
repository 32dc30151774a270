package export

import (
	"fmt"
	"strings"

	"github.com/Banyel3/weather-app/pkg/client"
)

// Markdown renders the record as a report: metadata, optional notes,
// a per-day table, and aggregate statistics.
func Markdown(wr *client.WeatherRequest) ([]byte, error) {
	var b strings.Builder

	fmt.Fprintf(&b, "# Weather Data: %s\n\n", wr.LocationName)

	b.WriteString("## Details\n\n")
	fmt.Fprintf(&b, "- **Location:** %s, %s\n", wr.LocationName, wr.Country)
	fmt.Fprintf(&b, "- **Coordinates:** %g, %g\n", wr.Latitude, wr.Longitude)
	fmt.Fprintf(&b, "- **Timezone:** %s\n", wr.Timezone)
	fmt.Fprintf(&b, "- **Date range:** %s to %s\n", wr.StartDate, wr.EndDate)
	b.WriteString("\n")

	if wr.Notes != "" {
		b.WriteString("## Notes\n\n")
		b.WriteString(wr.Notes)
		b.WriteString("\n\n")
	}

	b.WriteString("## Daily Weather\n\n")
	b.WriteString("| Date | Max °C | Min °C | Precipitation (mm) | Rain (mm) | Conditions | Max Wind (km/h) |\n")
	b.WriteString("|------|--------|--------|--------------------|-----------|------------|------------------|\n")
	for _, d := range wr.WeatherData {
		fmt.Fprintf(&b, "| %s | %g | %g | %g | %g | %s | %g |\n",
			d.Date, d.TemperatureMax, d.TemperatureMin,
			d.Precipitation, d.Rain, d.WeatherDescription, d.WindSpeedMax)
	}
	b.WriteString("\n")

	s := computeStats(wr.WeatherData)
	b.WriteString("## Statistics\n\n")
	fmt.Fprintf(&b, "- **Average max temperature:** %s\n", fmt1(s.avgTempMax, s.ok))
	fmt.Fprintf(&b, "- **Average min temperature:** %s\n", fmt1(s.avgTempMin, s.ok))
	fmt.Fprintf(&b, "- **Total precipitation:** %s\n", fmt1(s.totalPrecipitation, s.ok))
	fmt.Fprintf(&b, "- **Total rain:** %s\n", fmt1(s.totalRain, s.ok))
	fmt.Fprintf(&b, "- **Average max wind speed:** %s\n", fmt1(s.avgWindMax, s.ok))

	return []byte(b.String()), nil
}
