package usecase

import (
	"context"
	"errors"
	"time"

	"voltgate/internal/domain"

	"golang.org/x/crypto/bcrypt"
)

const (
	defaultStaffSessionTTL  = 12 * time.Hour
	defaultDriverSessionTTL = 30 * 24 * time.Hour
)

// LoginService mints sessions. It is the only writer to the session store;
// the verifiers are read-only.
type LoginService struct {
	Users            UserRepository
	EndUsers         EndUserRepository
	Sessions         SessionStore
	StaffSessionTTL  time.Duration
	DriverSessionTTL time.Duration
	StoreTimeout     time.Duration
}

// StaffLogin checks credentials and issues an opaque staff token. Unknown
// email and wrong password are the same failure.
func (s *LoginService) StaffLogin(ctx context.Context, email, password string) (string, *domain.User, error) {
	sctx, cancel := storeCtx(ctx, s.StoreTimeout)
	defer cancel()

	user, err := s.Users.GetByEmail(sctx, email)
	if errors.Is(err, domain.ErrNotFound) {
		return "", nil, domain.ErrUnauthenticated
	}
	if err != nil {
		return "", nil, storeUnavailable(err)
	}
	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)) != nil {
		return "", nil, domain.ErrUnauthenticated
	}

	token, err := newSessionToken()
	if err != nil {
		return "", nil, err
	}
	ttl := s.StaffSessionTTL
	if ttl <= 0 {
		ttl = defaultStaffSessionTTL
	}
	if err := s.Sessions.Put(sctx, domain.ScopeStaff, token, user.ID, ttl); err != nil {
		return "", nil, storeUnavailable(err)
	}
	return token, user, nil
}

// DriverLogin checks credentials and issues an opaque driver token in the
// driver scope.
func (s *LoginService) DriverLogin(ctx context.Context, email, password string) (string, *domain.EndUser, error) {
	sctx, cancel := storeCtx(ctx, s.StoreTimeout)
	defer cancel()

	endUser, err := s.EndUsers.GetByEmail(sctx, email)
	if errors.Is(err, domain.ErrNotFound) {
		return "", nil, domain.ErrUnauthenticated
	}
	if err != nil {
		return "", nil, storeUnavailable(err)
	}
	if bcrypt.CompareHashAndPassword([]byte(endUser.PasswordHash), []byte(password)) != nil {
		return "", nil, domain.ErrUnauthenticated
	}

	token, err := newSessionToken()
	if err != nil {
		return "", nil, err
	}
	ttl := s.DriverSessionTTL
	if ttl <= 0 {
		ttl = defaultDriverSessionTTL
	}
	if err := s.Sessions.Put(sctx, domain.ScopeDriver, token, endUser.ID, ttl); err != nil {
		return "", nil, storeUnavailable(err)
	}
	return token, endUser, nil
}
