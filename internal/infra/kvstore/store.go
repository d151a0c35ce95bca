package kvstore

import (
	"context"
	"errors"
	"io"
)

var ErrKeyNotFound = errors.New("key not found")

// Store persists small opaque blobs under string keys. Remove of a missing
// key succeeds.
type Store interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
	Remove(ctx context.Context, key string) error
	io.Closer
}
