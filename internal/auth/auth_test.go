package auth

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
)

func TestPasswordHashAndVerify(t *testing.T) {
	hash, err := HashPassword("secret123")
	if err != nil {
		t.Fatalf("HashPassword: %v", err)
	}
	if hash == "secret123" {
		t.Fatal("password stored in plain text")
	}

	if !VerifyPassword("secret123", hash) {
		t.Error("correct password rejected")
	}
	if VerifyPassword("wrong", hash) {
		t.Error("wrong password accepted")
	}
}

func TestRateLimiterBlocksAfterMaxAttempts(t *testing.T) {
	rl := NewRateLimiter(3, time.Minute, time.Minute)

	for i := 0; i < 3; i++ {
		if !rl.Allow("10.0.0.1") {
			t.Fatalf("attempt %d should be allowed", i+1)
		}
	}
	if rl.Allow("10.0.0.1") {
		t.Error("fourth attempt should be blocked")
	}
	if rl.GetBlockedUntil("10.0.0.1").IsZero() {
		t.Error("expected a block expiry time")
	}

	// Other clients are unaffected
	if !rl.Allow("10.0.0.2") {
		t.Error("different key should be allowed")
	}
}

func TestRateLimiterResetOnSuccess(t *testing.T) {
	rl := NewRateLimiter(2, time.Minute, time.Minute)

	rl.Allow("10.0.0.1")
	rl.Allow("10.0.0.1")
	rl.RecordSuccess("10.0.0.1")

	for i := 0; i < 2; i++ {
		if !rl.Allow("10.0.0.1") {
			t.Fatalf("attempt %d after reset should be allowed", i+1)
		}
	}
}

func TestRateLimiterMiddleware(t *testing.T) {
	rl := NewRateLimiter(1, time.Minute, time.Minute)

	e := echo.New()
	handler := rl.Middleware()(func(c echo.Context) error {
		return c.NoContent(http.StatusOK)
	})

	call := func() *httptest.ResponseRecorder {
		req := httptest.NewRequest(http.MethodPost, "/login", nil)
		rec := httptest.NewRecorder()
		if err := handler(e.NewContext(req, rec)); err != nil {
			t.Fatalf("handler: %v", err)
		}
		return rec
	}

	if rec := call(); rec.Code != http.StatusOK {
		t.Fatalf("first call status = %d", rec.Code)
	}
	rec := call()
	if rec.Code != http.StatusTooManyRequests {
		t.Fatalf("second call status = %d", rec.Code)
	}
	if rec.Header().Get("Retry-After") == "" {
		t.Error("missing Retry-After header")
	}
}

func TestTokenFromRequest(t *testing.T) {
	e := echo.New()

	ctx := func(header string) echo.Context {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		if header != "" {
			req.Header.Set("Authorization", header)
		}
		return e.NewContext(req, httptest.NewRecorder())
	}

	if got := TokenFromRequest(ctx("Bearer tok-abc")); got != "tok-abc" {
		t.Errorf("token = %q", got)
	}
	if got := TokenFromRequest(ctx("")); got != "" {
		t.Errorf("token without header = %q", got)
	}
	if got := TokenFromRequest(ctx("Basic dXNlcg==")); got != "" {
		t.Errorf("token for non-bearer scheme = %q", got)
	}
}
