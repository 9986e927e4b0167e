package domain

import "time"

// EndUser is a consumer driver account. Drivers are workspace-independent:
// an end user never holds a role in any tenant.
type EndUser struct {
	ID           string
	Email        string
	Name         string
	PasswordHash string
	CreatedAt    time.Time
}

// SessionScope separates the two session token namespaces. A token minted in
// one scope can never resolve in the other.
type SessionScope string

const (
	ScopeStaff  SessionScope = "staff"
	ScopeDriver SessionScope = "driver"
)

// Session is an opaque server-side session record. The token itself is the
// lookup key and carries no claims; validity is re-checked against the
// credential store on every verification.
type Session struct {
	SubjectID string
	ExpiresAt time.Time
}
