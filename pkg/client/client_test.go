package client

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func testClient(t *testing.T, handler http.Handler) *Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return New(WithBaseURL(srv.URL))
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

func TestErrorNormalization(t *testing.T) {
	c := testClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusBadRequest, map[string]string{
			"error":   "bad_request",
			"message": "Invalid date range",
		})
	}))

	ctx := context.Background()
	calls := map[string]func() error{
		"SearchLocations": func() error { _, err := c.SearchLocations(ctx, "lon"); return err },
		"CurrentWeather":  func() error { _, err := c.CurrentWeather(ctx, 51.5, -0.1); return err },
		"Forecast":        func() error { _, err := c.Forecast(ctx, 51.5, -0.1, 7); return err },
		"CreateRequest": func() error {
			_, err := c.CreateWeatherRequest(ctx, CreateWeatherRequestInput{LocationName: "London"})
			return err
		},
		"ValidateDates": func() error { _, err := c.ValidateDateRange(ctx, "x", "y"); return err },
	}

	for name, call := range calls {
		err := call()
		if err == nil {
			t.Errorf("%s: expected error", name)
			continue
		}
		if err.Error() != "Invalid date range" {
			t.Errorf("%s: error = %q, want server message", name, err.Error())
		}
		apiErr, ok := err.(*APIError)
		if !ok {
			t.Errorf("%s: error is %T, want *APIError", name, err)
			continue
		}
		if apiErr.StatusCode != http.StatusBadRequest || apiErr.Code != "bad_request" {
			t.Errorf("%s: got status %d code %q", name, apiErr.StatusCode, apiErr.Code)
		}
	}
}

func TestErrorFallbackMessage(t *testing.T) {
	// A decoded error body with no message gets the generic fallback
	c := testClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusBadGateway, map[string]string{"error": "bad_gateway"})
	}))

	_, err := c.CurrentWeather(context.Background(), 0, 0)
	if err == nil {
		t.Fatal("expected error")
	}
	if err.Error() != "request failed with status 502" {
		t.Errorf("error = %q, want generic fallback", err.Error())
	}
}

func TestErrorBodyDecodeFailurePropagates(t *testing.T) {
	c := testClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
		w.Write([]byte("<html>gateway error</html>"))
	}))

	_, err := c.CurrentWeather(context.Background(), 0, 0)
	if err == nil {
		t.Fatal("expected error")
	}
	if _, ok := err.(*APIError); ok {
		t.Errorf("undecodable error body should not become an APIError, got %v", err)
	}
	if !strings.Contains(err.Error(), "decode error response") {
		t.Errorf("error = %q, want decode failure surfaced", err.Error())
	}
}

func TestWeatherByCoordinatesAllOrNothing(t *testing.T) {
	c := testClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/current":
			writeJSON(w, http.StatusOK, CurrentWeather{Temperature: 18.5})
		case "/forecast":
			writeJSON(w, http.StatusNotFound, map[string]string{
				"error":   "Not found",
				"message": "Could not fetch forecast data",
			})
		default:
			t.Errorf("unexpected path %s", r.URL.Path)
		}
	}))

	resp, err := c.WeatherByCoordinates(context.Background(), 51.5, -0.1, 7)
	if err == nil {
		t.Fatal("expected combined call to fail when forecast fails")
	}
	if resp != nil {
		t.Errorf("expected no partial result, got %+v", resp)
	}
	if err.Error() != "Could not fetch forecast data" {
		t.Errorf("error = %q", err.Error())
	}
}

func TestWeatherByCoordinatesCombines(t *testing.T) {
	c := testClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/current":
			writeJSON(w, http.StatusOK, CurrentWeather{Temperature: 18.5, WeatherDescription: "Overcast"})
		case "/forecast":
			writeJSON(w, http.StatusOK, ForecastResponse{
				Timezone: "Europe/London",
				Forecast: []DailyForecast{{Date: "2026-01-01", TemperatureMax: 8}},
			})
		}
	}))

	resp, err := c.WeatherByCoordinates(context.Background(), 51.5, -0.1, 1)
	if err != nil {
		t.Fatalf("WeatherByCoordinates: %v", err)
	}
	if resp.Current.Temperature != 18.5 {
		t.Errorf("current temperature = %v", resp.Current.Temperature)
	}
	if len(resp.Forecast) != 1 || resp.Location.Timezone != "Europe/London" {
		t.Errorf("forecast not combined: %+v", resp)
	}
}

func TestLoginStoresToken(t *testing.T) {
	var sawAuth string
	c := testClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/auth/login":
			writeJSON(w, http.StatusOK, AuthResponse{
				Token: "tok-abc",
				User:  User{ID: 1, Username: "ana"},
			})
		case "/auth/me":
			sawAuth = r.Header.Get("Authorization")
			writeJSON(w, http.StatusOK, User{ID: 1, Username: "ana"})
		}
	}))

	ctx := context.Background()
	if _, err := c.Login(ctx, "ana", "secret"); err != nil {
		t.Fatalf("Login: %v", err)
	}
	if got := c.Sessions.Token(); got != "tok-abc" {
		t.Errorf("stored token = %q", got)
	}
	if !c.IsLoggedIn() {
		t.Error("IsLoggedIn should be true after login")
	}

	if _, err := c.Me(ctx); err != nil {
		t.Fatalf("Me: %v", err)
	}
	if sawAuth != "Bearer tok-abc" {
		t.Errorf("Authorization header = %q", sawAuth)
	}
}

func TestLogoutClearsTokenOnFailure(t *testing.T) {
	c := testClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusInternalServerError, map[string]string{
			"error":   "Logout failed",
			"message": "boom",
		})
	}))
	if err := c.Sessions.SetToken("tok-abc"); err != nil {
		t.Fatal(err)
	}

	if err := c.Logout(context.Background()); err != nil {
		t.Fatalf("Logout should not surface server errors, got %v", err)
	}
	if c.Sessions.IsAuthenticated() {
		t.Error("token should be cleared after logout")
	}
}

func TestLogoutClearsTokenWhenServerUnreachable(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	srv.Close() // connection refused from here on

	c := New(WithBaseURL(srv.URL))
	if err := c.Sessions.SetToken("tok-abc"); err != nil {
		t.Fatal(err)
	}

	if err := c.Logout(context.Background()); err != nil {
		t.Fatalf("Logout: %v", err)
	}
	if c.Sessions.IsAuthenticated() {
		t.Error("token should be cleared even when the server is down")
	}
}

func TestUpdateSendsOnlySetFields(t *testing.T) {
	var body map[string]any
	c := testClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPut {
			t.Errorf("method = %s, want PUT", r.Method)
		}
		if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
			t.Fatalf("decode body: %v", err)
		}
		writeJSON(w, http.StatusOK, WeatherRequest{ID: 7})
	}))

	notes := "updated notes"
	_, err := c.UpdateWeatherRequest(context.Background(), 7, UpdateWeatherRequestInput{Notes: &notes})
	if err != nil {
		t.Fatalf("UpdateWeatherRequest: %v", err)
	}

	if len(body) != 1 {
		t.Errorf("payload has %d fields, want only notes: %v", len(body), body)
	}
	if body["notes"] != "updated notes" {
		t.Errorf("notes = %v", body["notes"])
	}
}

func TestListWeatherRequestsQuery(t *testing.T) {
	var query url.Values
	c := testClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		query = r.URL.Query()
		writeJSON(w, http.StatusOK, []WeatherRequestListItem{{ID: 1, LocationName: "London"}})
	}))

	items, err := c.ListWeatherRequests(context.Background(), ListOptions{
		Location: "lon",
		Limit:    10,
		Offset:   20,
	})
	if err != nil {
		t.Fatalf("ListWeatherRequests: %v", err)
	}
	if len(items) != 1 {
		t.Fatalf("got %d items", len(items))
	}

	for key, want := range map[string]string{"location": "lon", "limit": "10", "offset": "20"} {
		if got := query.Get(key); got != want {
			t.Errorf("query %s = %q, want %q", key, got, want)
		}
	}
}

func TestRequestIDHeader(t *testing.T) {
	seen := map[string]bool{}
	c := testClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := r.Header.Get("X-Request-ID")
		if id == "" {
			t.Error("missing X-Request-ID header")
		}
		seen[id] = true
		writeJSON(w, http.StatusOK, CurrentWeather{})
	}))

	ctx := context.Background()
	for i := 0; i < 3; i++ {
		if _, err := c.CurrentWeather(ctx, 0, 0); err != nil {
			t.Fatal(err)
		}
	}
	if len(seen) != 3 {
		t.Errorf("request ids not unique per request: %v", seen)
	}
}

func TestSessionStoreInMemory(t *testing.T) {
	// The default client keeps its token in memory only; no file IO
	c := New()

	if err := c.Sessions.SetToken("tok-abc"); err != nil {
		t.Fatalf("SetToken on in-memory store: %v", err)
	}
	if got := c.Sessions.Token(); got != "tok-abc" {
		t.Errorf("Token = %q", got)
	}
	if err := c.Sessions.SetToken(""); err != nil {
		t.Fatalf("clear on in-memory store: %v", err)
	}
	if c.Sessions.IsAuthenticated() {
		t.Error("store should not be authenticated after clearing")
	}
}

func TestSessionStorePersistence(t *testing.T) {
	path := filepath.Join(t.TempDir(), "session")

	s, err := NewSessionStore(path)
	if err != nil {
		t.Fatalf("NewSessionStore: %v", err)
	}
	if s.IsAuthenticated() {
		t.Error("fresh store should not be authenticated")
	}

	if err := s.SetToken("tok-abc"); err != nil {
		t.Fatalf("SetToken: %v", err)
	}
	if got := s.Token(); got != "tok-abc" {
		t.Errorf("Token = %q", got)
	}

	// A new store loads the persisted token
	s2, err := NewSessionStore(path)
	if err != nil {
		t.Fatalf("reload: %v", err)
	}
	if got := s2.Token(); got != "tok-abc" {
		t.Errorf("reloaded token = %q", got)
	}

	if err := s2.SetToken(""); err != nil {
		t.Fatalf("clear: %v", err)
	}
	if s2.IsAuthenticated() {
		t.Error("store should not be authenticated after clearing")
	}
	if _, err := os.Stat(path); !os.IsNotExist(err) {
		t.Error("token file should be removed when cleared")
	}
}
