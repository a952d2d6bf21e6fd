package logger

import (
	"time"

	"go.uber.org/zap"
)

// Provider names the auth provider an entry is about.
func Provider(v string) zap.Field {
	return zap.String("provider", v)
}

// Event is the lifecycle step: login, signup, update, readback.
func Event(v string) zap.Field {
	return zap.String("event", v)
}

// AttemptID correlates all entries of one authentication attempt.
func AttemptID(v string) zap.Field {
	return zap.String("attempt_id", v)
}

// IdentityID is the provider-side user id. Never pass tokens here.
func IdentityID(v string) zap.Field {
	return zap.String("identity_id", v)
}

// Path is the resolution path taken: "code" or "token".
func Path(v string) zap.Field {
	return zap.String("path", v)
}

// Outcome is "success" or the error kind that ended the attempt.
func Outcome(v string) zap.Field {
	return zap.String("outcome", v)
}

// Duration is the wall time of the attempt.
func Duration(v time.Duration) zap.Field {
	return zap.Duration("duration", v)
}

// Component names the package an entry comes from.
func Component(v string) zap.Field {
	return zap.String("component", v)
}

// Err attaches err under the "error" key.
func Err(err error) zap.Field {
	return zap.Error(err)
}
