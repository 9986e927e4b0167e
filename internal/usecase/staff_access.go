package usecase

import (
	"context"
	"errors"
	"time"

	"voltgate/internal/domain"
)

// StaffAccess resolves staff session tokens into identities. Every failure
// mode on the token path (absent, malformed, expired, revoked, user deleted)
// collapses into domain.ErrUnauthenticated so the endpoint cannot be used as
// an oracle for which of them occurred.
type StaffAccess struct {
	Users        UserRepository
	Sessions     SessionStore
	StoreTimeout time.Duration
}

// Resolve validates an opaque staff token and returns the identity behind
// it. The super-admin flag is read from the current user row, never from the
// session, so platform grants and revocations apply immediately.
func (a *StaffAccess) Resolve(ctx context.Context, token string) (domain.StaffIdentity, error) {
	if token == "" {
		return domain.StaffIdentity{}, domain.ErrUnauthenticated
	}

	sctx, cancel := storeCtx(ctx, a.StoreTimeout)
	defer cancel()

	userID, err := a.Sessions.Get(sctx, domain.ScopeStaff, token)
	if errors.Is(err, domain.ErrNotFound) {
		return domain.StaffIdentity{}, domain.ErrUnauthenticated
	}
	if err != nil {
		return domain.StaffIdentity{}, storeUnavailable(err)
	}

	user, err := a.Users.GetByID(sctx, userID)
	if errors.Is(err, domain.ErrNotFound) {
		// User deleted after the session was issued.
		return domain.StaffIdentity{}, domain.ErrUnauthenticated
	}
	if err != nil {
		return domain.StaffIdentity{}, storeUnavailable(err)
	}

	return domain.StaffIdentity{UserID: user.ID, SuperAdmin: user.SuperAdmin}, nil
}

// RequireSuperAdmin asserts the platform-global admin capability. It has no
// tenant context and is orthogonal to any workspace role.
func (a *StaffAccess) RequireSuperAdmin(ctx context.Context, ident domain.StaffIdentity) (domain.Principal, error) {
	if !ident.SuperAdmin {
		return domain.Principal{}, domain.Denial(domain.DenialSuperAdminRequired)
	}
	return domain.Principal{Kind: domain.PrincipalSuperAdmin, UserID: ident.UserID}, nil
}

// Logout revokes the session token. Revoking an already-absent token is not
// an error; logout is idempotent.
func (a *StaffAccess) Logout(ctx context.Context, token string) error {
	if token == "" {
		return nil
	}
	sctx, cancel := storeCtx(ctx, a.StoreTimeout)
	defer cancel()
	if err := a.Sessions.Delete(sctx, domain.ScopeStaff, token); err != nil && !errors.Is(err, domain.ErrNotFound) {
		return storeUnavailable(err)
	}
	return nil
}
