// README: Durable named records (trip history, language preference) behind one interface.
package storage

import (
	"context"
	"errors"
	"fmt"
	"strings"
)

// ErrNotFound is returned by Get when no record exists for the key.
var ErrNotFound = errors.New("record not found")

// KV stores opaque values under string keys.
type KV interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
}

const (
	BackendMemory   = "memory"
	BackendRedis    = "redis"
	BackendPostgres = "postgres"
)

// ScopedKey appends the owner to a base record name. An empty owner keeps the bare
// name so a single-user deployment uses exactly "tripHistory" and "language".
func ScopedKey(base, owner string) string {
	owner = strings.TrimSpace(owner)
	if owner == "" {
		return base
	}
	return fmt.Sprintf("%s:%s", base, owner)
}
