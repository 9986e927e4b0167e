package usecase

import (
	"context"
	"time"

	"voltgate/internal/domain"
)

// Repositories return domain.ErrNotFound for missing rows and exclude
// soft-deleted rows from every lookup. Any other error means the store could
// not answer and is surfaced as domain.ErrStoreUnavailable by the verifiers.

type UserRepository interface {
	GetByID(ctx context.Context, userID string) (*domain.User, error)
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
}

type WorkspaceRepository interface {
	GetBySlug(ctx context.Context, slug string) (*domain.Workspace, error)
}

type MembershipRepository interface {
	Get(ctx context.Context, userID, workspaceID string) (*domain.Membership, error)
}

type EndUserRepository interface {
	GetByID(ctx context.Context, endUserID string) (*domain.EndUser, error)
	GetByEmail(ctx context.Context, email string) (*domain.EndUser, error)
}

// SessionStore holds opaque session tokens. Scopes are disjoint key
// namespaces: a Get in one scope never observes tokens minted in the other.
type SessionStore interface {
	Put(ctx context.Context, scope domain.SessionScope, token, subjectID string, ttl time.Duration) error
	Get(ctx context.Context, scope domain.SessionScope, token string) (string, error)
	Delete(ctx context.Context, scope domain.SessionScope, token string) error
}
