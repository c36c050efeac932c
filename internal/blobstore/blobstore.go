// Package blobstore persists string-keyed JSON blobs for the workspace
// state stores. Each store owns exactly one key.
package blobstore

import (
	"context"
	"errors"
)

// ErrKeyNotFound indicates the key has no stored value.
var ErrKeyNotFound = errors.New("blobstore: key not found")

type Store interface {
	// Get returns the blob stored under key, or ErrKeyNotFound.
	Get(ctx context.Context, key string) ([]byte, error)
	// Set stores value under key, replacing any previous value.
	Set(ctx context.Context, key string, value []byte) error
	// Delete removes key. Deleting an absent key is not an error.
	Delete(ctx context.Context, key string) error
	Close() error
}
