package database

import (
	"time"

	"github.com/google/uuid"

	"github.com/Banyel3/weather-app/internal/models"
)

// AuditRepo handles audit log database operations
type AuditRepo struct{}

// NewAuditRepo creates a new audit repository
func NewAuditRepo() *AuditRepo {
	return &AuditRepo{}
}

// Record appends an audit entry for a user action
func (r *AuditRepo) Record(userID int64, username, action, target, ipAddress string) error {
	_, err := DB.Exec(`
		INSERT INTO audit_logs (id, timestamp, user_id, username, action, target, ip_address)
		VALUES (?, ?, ?, ?, ?, ?, ?)
	`, uuid.NewString(), time.Now(), userID, username, action, target, ipAddress)
	return err
}

// ListByUser returns a user's most recent audit entries, newest first
func (r *AuditRepo) ListByUser(userID int64, limit int) ([]models.AuditEntry, error) {
	if limit <= 0 {
		limit = 50
	}

	rows, err := DB.Query(`
		SELECT id, timestamp, user_id, username, action, COALESCE(target, ''), COALESCE(ip_address, '')
		FROM audit_logs WHERE user_id = ?
		ORDER BY timestamp DESC LIMIT ?
	`, userID, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	entries := []models.AuditEntry{}
	for rows.Next() {
		var e models.AuditEntry
		err := rows.Scan(&e.ID, &e.Timestamp, &e.UserID, &e.Username, &e.Action, &e.Target, &e.IPAddress)
		if err != nil {
			return nil, err
		}
		entries = append(entries, e)
	}

	return entries, rows.Err()
}
