// Package cache stores rendered PDFs keyed by a hash of the document and the
// page options they were printed with.
package cache

import (
	"context"
	"time"
)

// Cache is a byte store with per-entry expiry. A miss is reported through
// the bool result, not an error.
type Cache interface {
	Get(ctx context.Context, key string) ([]byte, bool, error)
	Set(ctx context.Context, key string, data []byte, ttl time.Duration) error
	Delete(ctx context.Context, key string) error
	Close() error
}
