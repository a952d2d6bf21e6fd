package models

import "time"

// Lifecycle events recorded for an attempt.
const (
	EventLogin    = "login"
	EventSignUp   = "signup"
	EventUpdate   = "update"
	EventReadBack = "readback"
)

// OutcomeSuccess is recorded for accepted attempts. Rejected attempts record
// the error kind instead (validation, not_found, ...).
const OutcomeSuccess = "success"

// AuthAttempt is one audited authentication attempt. It never holds
// credentials: no access token, code or redirect URI.
type AuthAttempt struct {
	ID         string        `json:"id"`
	Timestamp  time.Time     `json:"timestamp"`
	Provider   string        `json:"provider"`
	Event      string        `json:"event"`
	Outcome    string        `json:"outcome"`
	IdentityID string        `json:"identity_id,omitempty"`
	Duration   time.Duration `json:"duration"`
}

// Succeeded reports whether the attempt was accepted.
func (a AuthAttempt) Succeeded() bool {
	return a.Outcome == OutcomeSuccess
}
