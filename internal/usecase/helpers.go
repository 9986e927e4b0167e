package usecase

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"time"

	"voltgate/internal/domain"
)

const defaultStoreTimeout = 3 * time.Second

// storeCtx bounds a single store lookup. A slow dependency must not hold the
// request worker past the deadline; the resulting context error is reported
// as domain.ErrStoreUnavailable.
func storeCtx(ctx context.Context, timeout time.Duration) (context.Context, context.CancelFunc) {
	if timeout <= 0 {
		timeout = defaultStoreTimeout
	}
	return context.WithTimeout(ctx, timeout)
}

func storeUnavailable(err error) error {
	return fmt.Errorf("%w: %v", domain.ErrStoreUnavailable, err)
}

// newSessionToken mints an opaque 256-bit token. The token is a pure lookup
// key and carries no claims.
func newSessionToken() (string, error) {
	buf := make([]byte, 32)
	if _, err := rand.Read(buf); err != nil {
		return "", err
	}
	return hex.EncodeToString(buf), nil
}
