// README: Storage backend selection for the record store.
package infra

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"tripguide/internal/storage"
)

// NewKV opens the configured backend. The returned close func releases its connections.
func NewKV(ctx context.Context, backend, redisAddr, dsn string, log *zap.Logger) (storage.KV, func(), error) {
	switch backend {
	case storage.BackendRedis:
		client, err := NewRedis(ctx, redisAddr)
		if err != nil {
			return nil, nil, err
		}
		log.Info("using redis storage", zap.String("addr", redisAddr))
		return storage.NewRedisKV(client), func() { _ = client.Close() }, nil
	case storage.BackendPostgres:
		pool, err := NewDB(ctx, dsn)
		if err != nil {
			return nil, nil, err
		}
		kv := storage.NewPostgresKV(pool)
		if err := kv.EnsureSchema(ctx); err != nil {
			pool.Close()
			return nil, nil, fmt.Errorf("ensure kv schema: %w", err)
		}
		log.Info("using postgres storage")
		return kv, pool.Close, nil
	case storage.BackendMemory, "":
		log.Info("using in-memory storage")
		return storage.NewMemoryKV(), func() {}, nil
	default:
		return nil, nil, fmt.Errorf("unknown storage backend %q", backend)
	}
}
