package usecase

import (
	"context"
	"errors"
	"time"

	"voltgate/internal/domain"
)

// DriverAccess resolves consumer sessions. Driver tokens live in their own
// scope: a staff token presented here fails exactly like an unknown token,
// and there is no elevation path from a driver session to any staff check.
type DriverAccess struct {
	EndUsers     EndUserRepository
	Sessions     SessionStore
	StoreTimeout time.Duration
}

// Resolve validates the driver token and re-fetches the end user so accounts
// deactivated after the session was issued fail immediately.
func (a *DriverAccess) Resolve(ctx context.Context, token string) (*domain.EndUser, error) {
	if token == "" {
		return nil, domain.ErrUnauthenticated
	}

	sctx, cancel := storeCtx(ctx, a.StoreTimeout)
	defer cancel()

	endUserID, err := a.Sessions.Get(sctx, domain.ScopeDriver, token)
	if errors.Is(err, domain.ErrNotFound) {
		return nil, domain.ErrUnauthenticated
	}
	if err != nil {
		return nil, storeUnavailable(err)
	}

	endUser, err := a.EndUsers.GetByID(sctx, endUserID)
	if errors.Is(err, domain.ErrNotFound) {
		return nil, domain.ErrUnauthenticated
	}
	if err != nil {
		return nil, storeUnavailable(err)
	}
	return endUser, nil
}

// Logout revokes the driver token. Absent tokens are not an error: the
// cookie must be cleared on every exit path, so logout is idempotent.
func (a *DriverAccess) Logout(ctx context.Context, token string) error {
	if token == "" {
		return nil
	}
	sctx, cancel := storeCtx(ctx, a.StoreTimeout)
	defer cancel()
	if err := a.Sessions.Delete(sctx, domain.ScopeDriver, token); err != nil && !errors.Is(err, domain.ErrNotFound) {
		return storeUnavailable(err)
	}
	return nil
}
