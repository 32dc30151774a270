package auth

import (
	"errors"
	"os"
	"strconv"
	"time"

	"github.com/Banyel3/weather-app/internal/database"
	"github.com/Banyel3/weather-app/internal/models"
)

var (
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrUsernameTaken      = errors.New("username already taken")
)

// Service handles authentication logic
type Service struct {
	userRepo    *database.UserRepo
	sessionRepo *database.SessionRepo
}

// NewService creates a new auth service
func NewService() *Service {
	return &Service{
		userRepo:    database.NewUserRepo(),
		sessionRepo: database.NewSessionRepo(),
	}
}

// sessionDuration reads the session lifetime from the environment,
// defaulting to 24 hours.
func sessionDuration() time.Duration {
	if v := os.Getenv("WEATHER_SESSION_HOURS"); v != "" {
		if hours, err := strconv.Atoi(v); err == nil && hours > 0 {
			return time.Duration(hours) * time.Hour
		}
	}
	return 24 * time.Hour
}

// Signup creates a new user and an initial session for it
func (s *Service) Signup(req models.SignupRequest, ipAddress, userAgent string) (string, *models.User, error) {
	passwordHash, err := HashPassword(req.Password)
	if err != nil {
		return "", nil, err
	}

	user := &models.User{
		Username:     req.Username,
		FirstName:    req.FirstName,
		LastName:     req.LastName,
		PasswordHash: passwordHash,
	}

	if err := s.userRepo.Create(user); err != nil {
		if errors.Is(err, database.ErrUsernameExists) {
			return "", nil, ErrUsernameTaken
		}
		return "", nil, err
	}

	token, _, err := s.sessionRepo.Create(user.ID, ipAddress, userAgent, sessionDuration())
	if err != nil {
		return "", nil, err
	}

	return token, user, nil
}

// Login authenticates a user and creates a session
func (s *Service) Login(req models.LoginRequest, ipAddress, userAgent string) (string, *models.User, error) {
	user, err := s.userRepo.GetByUsername(req.Username)
	if err != nil {
		if errors.Is(err, database.ErrUserNotFound) {
			return "", nil, ErrInvalidCredentials
		}
		return "", nil, err
	}

	if !VerifyPassword(req.Password, user.PasswordHash) {
		return "", nil, ErrInvalidCredentials
	}

	token, _, err := s.sessionRepo.Create(user.ID, ipAddress, userAgent, sessionDuration())
	if err != nil {
		return "", nil, err
	}

	return token, user, nil
}

// Logout invalidates a session
func (s *Service) Logout(token string) error {
	return s.sessionRepo.DeleteByToken(token)
}

// ValidateToken validates a session token and returns the user
func (s *Service) ValidateToken(token string) (*models.User, *models.Session, error) {
	session, err := s.sessionRepo.GetByToken(token)
	if err != nil {
		return nil, nil, err
	}

	user, err := s.userRepo.GetByID(session.UserID)
	if err != nil {
		return nil, nil, err
	}

	return user, session, nil
}
