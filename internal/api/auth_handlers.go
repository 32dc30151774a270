package api

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/Banyel3/weather-app/internal/auth"
	"github.com/Banyel3/weather-app/internal/database"
	"github.com/Banyel3/weather-app/internal/models"
)

var (
	authService *auth.Service
	auditRepo   *database.AuditRepo
)

// signupHandler handles POST /api/weather/auth/signup
func signupHandler(c echo.Context) error {
	var req models.SignupRequest
	if err := c.Bind(&req); err != nil {
		return apiError(c, http.StatusBadRequest, "Invalid request", "Invalid request body")
	}

	if len(req.Username) < 3 {
		return apiError(c, http.StatusBadRequest, "Invalid username", "Username must be at least 3 characters")
	}
	if len(req.Password) < 6 {
		return apiError(c, http.StatusBadRequest, "Invalid password", "Password must be at least 6 characters")
	}
	if req.FirstName == "" || req.LastName == "" {
		return apiError(c, http.StatusBadRequest, "Invalid name", "First name and last name are required")
	}

	token, user, err := authService.Signup(req, c.RealIP(), c.Request().UserAgent())
	if err != nil {
		if errors.Is(err, auth.ErrUsernameTaken) {
			return apiError(c, http.StatusBadRequest, "Username exists", "This username is already taken")
		}
		c.Logger().Error("signup error: ", err)
		return apiError(c, http.StatusInternalServerError, "Signup failed", "Could not create account")
	}

	auditRepo.Record(user.ID, user.Username, models.AuditActionSignup, "", c.RealIP())

	return c.JSON(http.StatusCreated, models.AuthResponse{
		Token: token,
		User:  user.Public(),
	})
}

// loginHandler handles POST /api/weather/auth/login
func loginHandler(c echo.Context) error {
	var req models.LoginRequest
	if err := c.Bind(&req); err != nil {
		return apiError(c, http.StatusBadRequest, "Invalid request", "Invalid request body")
	}

	if req.Username == "" || req.Password == "" {
		return apiError(c, http.StatusBadRequest, "Invalid request", "Username and password are required")
	}

	token, user, err := authService.Login(req, c.RealIP(), c.Request().UserAgent())
	if err != nil {
		if errors.Is(err, auth.ErrInvalidCredentials) {
			return apiError(c, http.StatusUnauthorized, "Invalid credentials", "Invalid username or password")
		}
		c.Logger().Error("login error: ", err)
		return apiError(c, http.StatusInternalServerError, "Login failed", "Authentication failed")
	}

	auth.LoginRateLimiter.RecordSuccess(c.RealIP())
	auditRepo.Record(user.ID, user.Username, models.AuditActionLogin, "", c.RealIP())

	return c.JSON(http.StatusOK, models.AuthResponse{
		Token: token,
		User:  user.Public(),
	})
}

// logoutHandler handles POST /api/weather/auth/logout
func logoutHandler(c echo.Context) error {
	user := auth.GetUserFromContext(c)
	token := auth.TokenFromRequest(c)

	if err := authService.Logout(token); err != nil {
		if !errors.Is(err, database.ErrSessionNotFound) {
			c.Logger().Error("logout error: ", err)
		}
		// Session already gone, that's fine
	}

	if user != nil {
		auditRepo.Record(user.ID, user.Username, models.AuditActionLogout, "", c.RealIP())
	}

	return c.JSON(http.StatusOK, map[string]any{
		"success": true,
		"message": "Logged out successfully",
	})
}

// currentUserHandler handles GET /api/weather/auth/me
func currentUserHandler(c echo.Context) error {
	user := auth.GetUserFromContext(c)
	if user == nil {
		return apiError(c, http.StatusUnauthorized, "Unauthorized", "Authentication required")
	}

	return c.JSON(http.StatusOK, user.Public())
}

// activityHandler handles GET /api/weather/auth/activity
func activityHandler(c echo.Context) error {
	user := auth.GetUserFromContext(c)
	if user == nil {
		return apiError(c, http.StatusUnauthorized, "Unauthorized", "Authentication required")
	}

	entries, err := auditRepo.ListByUser(user.ID, 50)
	if err != nil {
		c.Logger().Error("activity error: ", err)
		return apiError(c, http.StatusInternalServerError, "Activity failed", "Could not load account activity")
	}

	return c.JSON(http.StatusOK, entries)
}
