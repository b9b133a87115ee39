package keyval

import (
	"context"
	"errors"
)

// ErrKeyNotFound is returned when the requested key has never been set.
var ErrKeyNotFound = errors.New("key not found")

// Api is a synchronous string key-value store. All tracker state
// is persisted through it as JSON snapshots.
type Api interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key, value string) error
}
