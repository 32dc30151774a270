// Package export turns a saved weather request into flat file formats:
// JSON, XML, CSV, Markdown, and a printable HTML document. Every
// formatter is a pure function of the record.
package export

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/Banyel3/weather-app/pkg/client"
)

// JSON serializes the record with 2-space indentation.
func JSON(wr *client.WeatherRequest) ([]byte, error) {
	return json.MarshalIndent(wr, "", "  ")
}

// Filename builds the deterministic download name for a record, e.g.
// "weather-data-new-york-2026-01-01_2026-01-07.csv".
func Filename(wr *client.WeatherRequest, ext string) string {
	return fmt.Sprintf("weather-data-%s-%s_%s.%s", slug(wr.LocationName), wr.StartDate, wr.EndDate, ext)
}

func slug(s string) string {
	var b strings.Builder
	prevDash := false
	for _, r := range strings.ToLower(s) {
		switch {
		case r >= 'a' && r <= 'z' || r >= '0' && r <= '9':
			b.WriteRune(r)
			prevDash = false
		default:
			if !prevDash && b.Len() > 0 {
				b.WriteByte('-')
				prevDash = true
			}
		}
	}
	return strings.TrimRight(b.String(), "-")
}

// stats are the aggregate figures shown in CSV/Markdown exports, each
// already rounded to one decimal.
type stats struct {
	avgTempMax         float64
	avgTempMin         float64
	totalPrecipitation float64
	totalRain          float64
	avgWindMax         float64
	ok                 bool
}

func computeStats(data []client.WeatherDataItem) stats {
	if len(data) == 0 {
		return stats{}
	}

	var s stats
	for _, d := range data {
		s.avgTempMax += d.TemperatureMax
		s.avgTempMin += d.TemperatureMin
		s.totalPrecipitation += d.Precipitation
		s.totalRain += d.Rain
		s.avgWindMax += d.WindSpeedMax
	}
	n := float64(len(data))
	s.avgTempMax = round1(s.avgTempMax / n)
	s.avgTempMin = round1(s.avgTempMin / n)
	s.totalPrecipitation = round1(s.totalPrecipitation)
	s.totalRain = round1(s.totalRain)
	s.avgWindMax = round1(s.avgWindMax / n)
	s.ok = true
	return s
}

func round1(v float64) float64 {
	if v < 0 {
		return float64(int(v*10-0.5)) / 10
	}
	return float64(int(v*10+0.5)) / 10
}

// fmt1 renders a statistic to one decimal, or "N/A" when no data was
// available to compute it.
func fmt1(v float64, ok bool) string {
	if !ok {
		return "N/A"
	}
	return fmt.Sprintf("%.1f", v)
}
