package usecase

import (
	"context"
	"errors"
	"os"
	"strconv"
	"time"
)

const defaultStoreTimeoutSeconds = 15

var (
	// ErrServiceUnavailable: a store or gateway call failed or timed out.
	// Retryable by the caller; every mutation here is idempotent under retry.
	ErrServiceUnavailable = errors.New("service unavailable")
)

// storeTimeout is the bound on any single document-store or gateway
// round-trip (STORE_TIMEOUT_SECONDS, default 15s).
func storeTimeout() time.Duration {
	if v := os.Getenv("STORE_TIMEOUT_SECONDS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			return time.Duration(n) * time.Second
		}
	}
	return defaultStoreTimeoutSeconds * time.Second
}

// storeCtx bounds an I/O call. The operation fails ErrServiceUnavailable
// instead of hanging.
func storeCtx(ctx context.Context) (context.Context, context.CancelFunc) {
	return context.WithTimeout(ctx, storeTimeout())
}

// mapStoreErr converts timeout-shaped failures into the retryable sentinel.
func mapStoreErr(err error) error {
	if errors.Is(err, context.DeadlineExceeded) {
		return ErrServiceUnavailable
	}
	return err
}
