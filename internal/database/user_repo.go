package database

import (
	"database/sql"
	"errors"
	"time"

	"github.com/Banyel3/weather-app/internal/models"
)

var (
	ErrUserNotFound   = errors.New("user not found")
	ErrUsernameExists = errors.New("username already exists")
)

// UserRepo handles user database operations
type UserRepo struct{}

// NewUserRepo creates a new user repository
func NewUserRepo() *UserRepo {
	return &UserRepo{}
}

// Create inserts a new user. Fails with ErrUsernameExists when the username
// is already taken.
func (r *UserRepo) Create(user *models.User) error {
	var count int
	if err := DB.QueryRow("SELECT COUNT(*) FROM users WHERE username = ?", user.Username).Scan(&count); err != nil {
		return err
	}
	if count > 0 {
		return ErrUsernameExists
	}

	now := time.Now()
	user.CreatedAt = now
	user.UpdatedAt = now

	result, err := DB.Exec(`
		INSERT INTO users (username, first_name, last_name, password_hash, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?)
	`, user.Username, user.FirstName, user.LastName, user.PasswordHash, user.CreatedAt, user.UpdatedAt)
	if err != nil {
		return err
	}

	id, err := result.LastInsertId()
	if err != nil {
		return err
	}
	user.ID = id

	return nil
}

// GetByID retrieves a user by ID
func (r *UserRepo) GetByID(id int64) (*models.User, error) {
	return r.getBy("id = ?", id)
}

// GetByUsername retrieves a user by username
func (r *UserRepo) GetByUsername(username string) (*models.User, error) {
	return r.getBy("username = ?", username)
}

func (r *UserRepo) getBy(where string, arg any) (*models.User, error) {
	user := &models.User{}

	err := DB.QueryRow(`
		SELECT id, username, first_name, last_name, password_hash, created_at, updated_at
		FROM users WHERE `+where, arg).Scan(
		&user.ID, &user.Username, &user.FirstName, &user.LastName,
		&user.PasswordHash, &user.CreatedAt, &user.UpdatedAt,
	)
	if err == sql.ErrNoRows {
		return nil, ErrUserNotFound
	}
	if err != nil {
		return nil, err
	}

	return user, nil
}

// Count returns the total number of users
func (r *UserRepo) Count() (int, error) {
	var count int
	err := DB.QueryRow("SELECT COUNT(*) FROM users").Scan(&count)
	return count, err
}
