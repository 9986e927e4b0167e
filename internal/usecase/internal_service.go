package usecase

import (
	"crypto/subtle"

	"voltgate/internal/domain"
)

// InternalServiceVerifier admits trusted backend-to-backend calls that carry
// no user session, such as charger-controller callbacks. It produces no
// identity; the caller either is the internal system or is rejected.
type InternalServiceVerifier struct {
	secret []byte
}

func NewInternalServiceVerifier(secret string) *InternalServiceVerifier {
	return &InternalServiceVerifier{secret: []byte(secret)}
}

// Verify compares the presented credential against the configured secret in
// constant time. With no secret configured every credential is rejected:
// misconfiguration must fail closed, not open.
func (v *InternalServiceVerifier) Verify(credential string) error {
	if len(v.secret) == 0 || credential == "" {
		return domain.ErrInvalidCredential
	}
	if subtle.ConstantTimeCompare([]byte(credential), v.secret) != 1 {
		return domain.ErrInvalidCredential
	}
	return nil
}
