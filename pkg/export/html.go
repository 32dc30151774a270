package export

import (
	"fmt"
	"html"
	"strings"

	"github.com/Banyel3/weather-app/pkg/client"
)

// HTML renders the record as a standalone print-ready document. The
// caller decides what to do with it (save, serve, hand to a printer).
func HTML(wr *client.WeatherRequest) ([]byte, error) {
	var b strings.Builder

	b.WriteString("<!DOCTYPE html>\n<html>\n<head>\n")
	fmt.Fprintf(&b, "<title>Weather Data: %s</title>\n", html.EscapeString(wr.LocationName))
	b.WriteString(`<style>
body { font-family: sans-serif; margin: 2em; }
table { border-collapse: collapse; width: 100%; }
th, td { border: 1px solid #ccc; padding: 6px 10px; text-align: left; }
th { background: #f0f0f0; }
.meta { color: #555; }
</style>
`)
	b.WriteString("</head>\n<body>\n")

	fmt.Fprintf(&b, "<h1>Weather Data: %s</h1>\n", html.EscapeString(wr.LocationName))
	b.WriteString("<p class=\"meta\">\n")
	fmt.Fprintf(&b, "%s, %s · %g, %g · %s<br>\n",
		html.EscapeString(wr.LocationName), html.EscapeString(wr.Country),
		wr.Latitude, wr.Longitude, html.EscapeString(wr.Timezone))
	fmt.Fprintf(&b, "%s to %s\n", wr.StartDate, wr.EndDate)
	b.WriteString("</p>\n")

	if wr.Notes != "" {
		fmt.Fprintf(&b, "<p>%s</p>\n", html.EscapeString(wr.Notes))
	}

	b.WriteString("<table>\n<tr><th>Date</th><th>Max °C</th><th>Min °C</th><th>Precipitation</th><th>Rain</th><th>Conditions</th><th>Max Wind</th></tr>\n")
	for _, d := range wr.WeatherData {
		fmt.Fprintf(&b, "<tr><td>%s</td><td>%g</td><td>%g</td><td>%g</td><td>%g</td><td>%s</td><td>%g</td></tr>\n",
			d.Date, d.TemperatureMax, d.TemperatureMin,
			d.Precipitation, d.Rain, html.EscapeString(d.WeatherDescription), d.WindSpeedMax)
	}
	b.WriteString("</table>\n")

	s := computeStats(wr.WeatherData)
	b.WriteString("<h2>Statistics</h2>\n<ul>\n")
	fmt.Fprintf(&b, "<li>Average max temperature: %s</li>\n", fmt1(s.avgTempMax, s.ok))
	fmt.Fprintf(&b, "<li>Average min temperature: %s</li>\n", fmt1(s.avgTempMin, s.ok))
	fmt.Fprintf(&b, "<li>Total precipitation: %s</li>\n", fmt1(s.totalPrecipitation, s.ok))
	fmt.Fprintf(&b, "<li>Total rain: %s</li>\n", fmt1(s.totalRain, s.ok))
	fmt.Fprintf(&b, "<li>Average max wind speed: %s</li>\n", fmt1(s.avgWindMax, s.ok))
	b.WriteString("</ul>\n</body>\n</html>\n")

	return []byte(b.String()), nil
}
