package repository

import (
	"context"
	"errors"
)

// ErrKeyNotFound is returned by KVStore.Get for absent keys.
var ErrKeyNotFound = errors.New("key not found")

// Well-known keys. Values are implicit JSON with no versioning.
const (
	KeyProviderProfile = "provider_profile"
	KeyLastNumber      = "last_receipt_number"
	KeyLogo            = "receipt_logo"
	KeyHistory         = "receipt_history"
)

// KVStore is the persistence port for all process-wide state: the
// provider profile, the last-used counter, the optional logo and the
// finalized history. Writes are last-write-wins with no transactional
// guarantee across keys.
type KVStore interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
	Remove(ctx context.Context, key string) error
}
