package database

import (
	"database/sql"
	"encoding/json"
	"errors"
	"time"

	"github.com/Banyel3/weather-app/internal/models"
)

var ErrRequestNotFound = errors.New("weather request not found")

// RequestRepo handles weather request database operations
type RequestRepo struct{}

// NewRequestRepo creates a new weather request repository
func NewRequestRepo() *RequestRepo {
	return &RequestRepo{}
}

// ListFilter narrows and pages the per-user request listing
type ListFilter struct {
	Location string // case-insensitive substring match on location_name
	Limit    int
	Offset   int
}

// Create inserts a new weather request owned by wr.UserID
func (r *RequestRepo) Create(wr *models.WeatherRequest) error {
	data, err := json.Marshal(wr.WeatherData)
	if err != nil {
		return err
	}

	now := time.Now()
	wr.CreatedAt = now
	wr.UpdatedAt = now

	result, err := DB.Exec(`
		INSERT INTO weather_requests
			(user_id, location_name, country, latitude, longitude, timezone,
			 start_date, end_date, weather_data, notes, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`, wr.UserID, wr.LocationName, wr.Country, wr.Latitude, wr.Longitude, wr.Timezone,
		wr.StartDate, wr.EndDate, string(data), wr.Notes, wr.CreatedAt, wr.UpdatedAt)
	if err != nil {
		return err
	}

	id, err := result.LastInsertId()
	if err != nil {
		return err
	}
	wr.ID = id

	return nil
}

// GetByID retrieves a request by ID, scoped to its owner
func (r *RequestRepo) GetByID(id, userID int64) (*models.WeatherRequest, error) {
	wr := &models.WeatherRequest{}
	var data string

	err := DB.QueryRow(`
		SELECT id, user_id, location_name, country, latitude, longitude, timezone,
		       start_date, end_date, weather_data, notes, created_at, updated_at
		FROM weather_requests WHERE id = ? AND user_id = ?
	`, id, userID).Scan(
		&wr.ID, &wr.UserID, &wr.LocationName, &wr.Country, &wr.Latitude, &wr.Longitude,
		&wr.Timezone, &wr.StartDate, &wr.EndDate, &data, &wr.Notes, &wr.CreatedAt, &wr.UpdatedAt,
	)
	if err == sql.ErrNoRows {
		return nil, ErrRequestNotFound
	}
	if err != nil {
		return nil, err
	}

	if err := json.Unmarshal([]byte(data), &wr.WeatherData); err != nil {
		return nil, err
	}

	return wr, nil
}

// ListByUser returns a page of a user's requests, newest first, without the
// stored weather data.
func (r *RequestRepo) ListByUser(userID int64, filter ListFilter) ([]models.WeatherRequestListItem, error) {
	limit := filter.Limit
	if limit <= 0 {
		limit = 50
	}
	offset := filter.Offset
	if offset < 0 {
		offset = 0
	}

	query := `
		SELECT id, location_name, country, start_date, end_date, notes, created_at, updated_at
		FROM weather_requests WHERE user_id = ?`
	args := []any{userID}

	if filter.Location != "" {
		query += " AND location_name LIKE ? COLLATE NOCASE"
		args = append(args, "%"+filter.Location+"%")
	}

	query += " ORDER BY created_at DESC LIMIT ? OFFSET ?"
	args = append(args, limit, offset)

	rows, err := DB.Query(query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := []models.WeatherRequestListItem{}
	for rows.Next() {
		var item models.WeatherRequestListItem
		err := rows.Scan(
			&item.ID, &item.LocationName, &item.Country,
			&item.StartDate, &item.EndDate, &item.Notes, &item.CreatedAt, &item.UpdatedAt,
		)
		if err != nil {
			return nil, err
		}
		items = append(items, item)
	}

	return items, rows.Err()
}

// Update persists all mutable fields of wr and bumps updated_at
func (r *RequestRepo) Update(wr *models.WeatherRequest) error {
	data, err := json.Marshal(wr.WeatherData)
	if err != nil {
		return err
	}

	wr.UpdatedAt = time.Now()

	result, err := DB.Exec(`
		UPDATE weather_requests
		SET location_name = ?, country = ?, latitude = ?, longitude = ?, timezone = ?,
		    start_date = ?, end_date = ?, weather_data = ?, notes = ?, updated_at = ?
		WHERE id = ? AND user_id = ?
	`, wr.LocationName, wr.Country, wr.Latitude, wr.Longitude, wr.Timezone,
		wr.StartDate, wr.EndDate, string(data), wr.Notes, wr.UpdatedAt, wr.ID, wr.UserID)
	if err != nil {
		return err
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		return ErrRequestNotFound
	}

	return nil
}

// Delete removes a request by ID, scoped to its owner
func (r *RequestRepo) Delete(id, userID int64) error {
	result, err := DB.Exec("DELETE FROM weather_requests WHERE id = ? AND user_id = ?", id, userID)
	if err != nil {
		return err
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		return ErrRequestNotFound
	}

	return nil
}
