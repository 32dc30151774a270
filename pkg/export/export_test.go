package export

import (
	"encoding/json"
	"reflect"
	"strings"
	"testing"

	"github.com/Banyel3/weather-app/pkg/client"
)

func sampleRequest() *client.WeatherRequest {
	return &client.WeatherRequest{
		ID:           42,
		LocationName: "New York",
		Country:      "United States",
		Latitude:     40.7128,
		Longitude:    -74.006,
		Timezone:     "America/New_York",
		StartDate:    "2026-01-01",
		EndDate:      "2026-01-02",
		Notes:        "trip planning",
		WeatherData: []client.WeatherDataItem{
			{Date: "2026-01-01", TemperatureMax: 20, TemperatureMin: 10, Precipitation: 0, WindSpeedMax: 5, WeatherCode: 1, WeatherDescription: "Mainly clear"},
			{Date: "2026-01-02", TemperatureMax: 22, TemperatureMin: 12, Precipitation: 2, Rain: 1.5, WindSpeedMax: 7, WeatherCode: 61, WeatherDescription: "Slight rain"},
		},
		CreatedAt: "2026-01-01T00:00:00Z",
		UpdatedAt: "2026-01-01T00:00:00Z",
	}
}

func TestJSONRoundTrip(t *testing.T) {
	wr := sampleRequest()

	data, err := JSON(wr)
	if err != nil {
		t.Fatalf("JSON: %v", err)
	}
	if !strings.HasPrefix(string(data), "{\n  ") {
		t.Error("expected 2-space indented output")
	}

	var back client.WeatherRequest
	if err := json.Unmarshal(data, &back); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if !reflect.DeepEqual(*wr, back) {
		t.Errorf("round trip mismatch:\n got %+v\nwant %+v", back, *wr)
	}
}

func TestXMLEscaping(t *testing.T) {
	wr := sampleRequest()
	wr.Notes = "A & B <C>"

	data, err := XML(wr)
	if err != nil {
		t.Fatalf("XML: %v", err)
	}
	out := string(data)

	if !strings.Contains(out, "A &amp; B &lt;C&gt;") {
		t.Errorf("notes not escaped, got:\n%s", out)
	}
	if strings.Contains(out, "&amp;amp;") || strings.Contains(out, "&amp;lt;") {
		t.Errorf("double-escaped entities in:\n%s", out)
	}
}

func TestXMLEscapeOrder(t *testing.T) {
	// Ampersand substitution must run first so entities produced for
	// the other metacharacters are not re-escaped.
	got := escapeXML(`<a href="x">'&'</a>`)
	want := "&lt;a href=&quot;x&quot;&gt;&apos;&amp;&apos;&lt;/a&gt;"
	if got != want {
		t.Errorf("escapeXML = %q, want %q", got, want)
	}
}

func TestCSVFormat(t *testing.T) {
	wr := sampleRequest()
	wr.WeatherData[0].WeatherDescription = `Heavy "thunder" rain`

	data, err := CSV(wr)
	if err != nil {
		t.Fatalf("CSV: %v", err)
	}
	out := string(data)

	if !strings.HasPrefix(out, "# Weather data export\n") {
		t.Error("missing metadata header")
	}
	if !strings.Contains(out, "# Location: New York, United States\n") {
		t.Error("missing location metadata line")
	}
	if !strings.Contains(out, `"Heavy ""thunder"" rain"`) {
		t.Errorf("embedded quotes not doubled:\n%s", out)
	}

	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	dataRows := 0
	for _, line := range lines {
		if !strings.HasPrefix(line, "#") && !strings.HasPrefix(line, "date,") {
			dataRows++
		}
	}
	if dataRows != 2 {
		t.Errorf("got %d data rows, want 2", dataRows)
	}
}

func TestStatistics(t *testing.T) {
	wr := sampleRequest()

	data, err := Markdown(wr)
	if err != nil {
		t.Fatalf("Markdown: %v", err)
	}
	out := string(data)

	for _, want := range []string{
		"**Average max temperature:** 21.0",
		"**Average min temperature:** 11.0",
		"**Total precipitation:** 2.0",
		"**Average max wind speed:** 6.0",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("missing %q in:\n%s", want, out)
		}
	}
}

func TestStatisticsEmptyData(t *testing.T) {
	wr := sampleRequest()
	wr.WeatherData = nil

	for name, format := range map[string]func(*client.WeatherRequest) ([]byte, error){
		"csv":      CSV,
		"markdown": Markdown,
		"html":     HTML,
	} {
		data, err := format(wr)
		if err != nil {
			t.Fatalf("%s: %v", name, err)
		}
		out := string(data)
		if !strings.Contains(out, "N/A") {
			t.Errorf("%s: empty data should report N/A:\n%s", name, out)
		}
		if strings.Contains(out, "NaN") {
			t.Errorf("%s: produced NaN:\n%s", name, out)
		}
	}
}

func TestMarkdownNotesOptional(t *testing.T) {
	wr := sampleRequest()
	wr.Notes = ""

	data, err := Markdown(wr)
	if err != nil {
		t.Fatalf("Markdown: %v", err)
	}
	if strings.Contains(string(data), "## Notes") {
		t.Error("notes section present for empty notes")
	}
}

func TestFilename(t *testing.T) {
	wr := sampleRequest()

	got := Filename(wr, "csv")
	want := "weather-data-new-york-2026-01-01_2026-01-02.csv"
	if got != want {
		t.Errorf("Filename = %q, want %q", got, want)
	}

	wr.LocationName = "São Paulo / Centro"
	got = Filename(wr, "json")
	want = "weather-data-s-o-paulo-centro-2026-01-01_2026-01-02.json"
	if got != want {
		t.Errorf("Filename = %q, want %q", got, want)
	}
}
