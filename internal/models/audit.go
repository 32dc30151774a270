package models

import "time"

// Audit actions recorded by the API
const (
	AuditActionSignup        = "auth.signup"
	AuditActionLogin         = "auth.login"
	AuditActionLogout        = "auth.logout"
	AuditActionCreateRequest = "weather_request.create"
	AuditActionUpdateRequest = "weather_request.update"
	AuditActionDeleteRequest = "weather_request.delete"
)

// AuditEntry is one recorded account action
type AuditEntry struct {
	ID        string    `json:"id"`
	Timestamp time.Time `json:"timestamp"`
	UserID    int64     `json:"user_id"`
	Username  string    `json:"username"`
	Action    string    `json:"action"`
	Target    string    `json:"target,omitempty"`
	IPAddress string    `json:"ip_address,omitempty"`
}
