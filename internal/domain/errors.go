package domain

import "errors"

var (
	ErrUnauthenticated   = errors.New("unauthenticated")
	ErrForbidden         = errors.New("forbidden")
	ErrNotFound          = errors.New("not found")
	ErrConflict          = errors.New("conflict")
	ErrInvalidArgument   = errors.New("invalid argument")
	ErrInvalidCredential = errors.New("invalid credential")
	ErrStoreUnavailable  = errors.New("credential store unavailable")
)

// Denial kinds. These are internal diagnostics only: the HTTP layer collapses
// every tenant-boundary kind into one externally visible "access denied"
// response so callers cannot enumerate tenants or memberships.
const (
	DenialSuperAdminRequired     = "SUPER_ADMIN_REQUIRED"
	DenialWorkspaceNotFound      = "WORKSPACE_NOT_FOUND"
	DenialNotAMember             = "NOT_A_MEMBER"
	DenialInsufficientPermission = "INSUFFICIENT_PERMISSION"
)

// DenialError carries the internal kind of an authorization denial.
// It unwraps to ErrForbidden so callers can match the class without
// depending on the kind.
type DenialError struct {
	Kind string
	Err  error
}

func (e *DenialError) Error() string {
	if e == nil {
		return ""
	}
	return e.Kind
}

func (e *DenialError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

func Denial(kind string) *DenialError {
	return &DenialError{Kind: kind, Err: ErrForbidden}
}

func IsDenial(err error) (*DenialError, bool) {
	var denial *DenialError
	if errors.As(err, &denial) {
		return denial, true
	}
	return nil, false
}
