package interfaces

import "context"

// ICache is a best-effort byte cache with a backend-wide TTL.
//
// A miss is (nil, false, nil). Callers must tolerate stale entries and treat
// errors as misses.
type ICache interface {
	Get(ctx context.Context, key string) ([]byte, bool, error)
	Set(ctx context.Context, key string, value []byte) error
	DeleteByPrefix(ctx context.Context, prefix string) error
}
