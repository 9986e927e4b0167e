package domain

import "time"

// Workspace is a tenant. The slug is the external, routable name; the ID is
// the stable internal identifier every query must be scoped by. Slugs are
// never reused after a workspace is soft-deleted.
type Workspace struct {
	ID        string
	Slug      string
	Name      string
	CreatedAt time.Time
}

// Membership relates a user to a workspace with a role. A soft-deleted
// membership is indistinguishable from no membership for every authorization
// decision; repositories never return deleted rows.
type Membership struct {
	ID          string
	WorkspaceID string
	UserID      string
	Role        Role
	CreatedAt   time.Time
}

// User is a staff account: a workspace member and/or platform super admin.
type User struct {
	ID           string
	Email        string
	Name         string
	PasswordHash string
	SuperAdmin   bool
	CreatedAt    time.Time
}
