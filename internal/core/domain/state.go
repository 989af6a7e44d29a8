package domain

import "time"

// TokenState describes where a token sits in its lifecycle:
//
//	Absent → Generating → Valid → ExpiringSoon → Expired → Absent
//
// Generating moves to Valid on success or back to Absent on failure.
// Valid and ExpiringSoon move to Absent on an explicit clear.
// Only Valid permits issuing gateway calls.
type TokenState string

const (
	// StateAbsent means no token is held.
	StateAbsent TokenState = "absent"

	// StateGenerating means a token exchange is in flight.
	StateGenerating TokenState = "generating"

	// StateValid means the token is usable for gateway calls.
	StateValid TokenState = "valid"

	// StateExpiringSoon means the token is inside the expiry buffer.
	// It still exists but no longer permits gateway calls.
	StateExpiringSoon TokenState = "expiring-soon"

	// StateExpired means the token's expiry has passed.
	StateExpired TokenState = "expired"
)

// StateOf classifies a token at the given instant.
// The Generating state is transient and tracked by the auth service,
// not derivable from the token itself.
func StateOf(t *Token, now time.Time) TokenState {
	if t == nil || t.Bearer == "" {
		return StateAbsent
	}
	if t.Valid(now) {
		return StateValid
	}
	if now.Before(t.ExpiresAt) {
		return StateExpiringSoon
	}
	return StateExpired
}
