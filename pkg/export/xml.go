package export

import (
	"fmt"
	"strings"

	"github.com/Banyel3/weather-app/pkg/client"
)

// escapeXML substitutes the five XML metacharacters. Ampersands go
// first so already-substituted entities are not escaped twice.
func escapeXML(s string) string {
	s = strings.ReplaceAll(s, "&", "&amp;")
	s = strings.ReplaceAll(s, "<", "&lt;")
	s = strings.ReplaceAll(s, ">", "&gt;")
	s = strings.ReplaceAll(s, `"`, "&quot;")
	s = strings.ReplaceAll(s, "'", "&apos;")
	return s
}

// XML renders the record as a hand-built element tree.
func XML(wr *client.WeatherRequest) ([]byte, error) {
	var b strings.Builder
	b.WriteString(`<?xml version="1.0" encoding="UTF-8"?>` + "\n")
	b.WriteString("<weather_request>\n")

	fmt.Fprintf(&b, "  <id>%d</id>\n", wr.ID)
	fmt.Fprintf(&b, "  <location_name>%s</location_name>\n", escapeXML(wr.LocationName))
	fmt.Fprintf(&b, "  <country>%s</country>\n", escapeXML(wr.Country))
	fmt.Fprintf(&b, "  <latitude>%g</latitude>\n", wr.Latitude)
	fmt.Fprintf(&b, "  <longitude>%g</longitude>\n", wr.Longitude)
	fmt.Fprintf(&b, "  <timezone>%s</timezone>\n", escapeXML(wr.Timezone))
	fmt.Fprintf(&b, "  <start_date>%s</start_date>\n", wr.StartDate)
	fmt.Fprintf(&b, "  <end_date>%s</end_date>\n", wr.EndDate)
	if wr.Notes != "" {
		fmt.Fprintf(&b, "  <notes>%s</notes>\n", escapeXML(wr.Notes))
	}

	b.WriteString("  <weather_data>\n")
	for _, d := range wr.WeatherData {
		b.WriteString("    <day>\n")
		fmt.Fprintf(&b, "      <date>%s</date>\n", d.Date)
		fmt.Fprintf(&b, "      <temperature_max>%g</temperature_max>\n", d.TemperatureMax)
		fmt.Fprintf(&b, "      <temperature_min>%g</temperature_min>\n", d.TemperatureMin)
		fmt.Fprintf(&b, "      <feels_like_max>%g</feels_like_max>\n", d.FeelsLikeMax)
		fmt.Fprintf(&b, "      <feels_like_min>%g</feels_like_min>\n", d.FeelsLikeMin)
		fmt.Fprintf(&b, "      <precipitation>%g</precipitation>\n", d.Precipitation)
		fmt.Fprintf(&b, "      <rain>%g</rain>\n", d.Rain)
		fmt.Fprintf(&b, "      <weather_code>%d</weather_code>\n", d.WeatherCode)
		fmt.Fprintf(&b, "      <weather_description>%s</weather_description>\n", escapeXML(d.WeatherDescription))
		fmt.Fprintf(&b, "      <wind_speed_max>%g</wind_speed_max>\n", d.WindSpeedMax)
		fmt.Fprintf(&b, "      <wind_direction>%g</wind_direction>\n", d.WindDirection)
		b.WriteString("    </day>\n")
	}
	b.WriteString("  </weather_data>\n")

	b.WriteString("</weather_request>\n")
	return []byte(b.String()), nil
}
