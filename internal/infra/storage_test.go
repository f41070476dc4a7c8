// README: Storage backend selection tests.
package infra

import (
	"context"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"tripguide/internal/storage"
)

func TestNewKVMemory(t *testing.T) {
	kv, closeFn, err := NewKV(context.Background(), "", "", "", zap.NewNop())
	require.NoError(t, err)
	defer closeFn()
	assert.IsType(t, &storage.MemoryKV{}, kv)
}

func TestNewKVRedis(t *testing.T) {
	mr := miniredis.RunT(t)
	kv, closeFn, err := NewKV(context.Background(), storage.BackendRedis, mr.Addr(), "", zap.NewNop())
	require.NoError(t, err)
	defer closeFn()

	require.NoError(t, kv.Set(context.Background(), "language", []byte("fr")))
	got, err := mr.Get("tripguide:language")
	require.NoError(t, err)
	assert.Equal(t, "fr", got)
}

func TestNewKVRedisUnreachable(t *testing.T) {
	mr := miniredis.RunT(t)
	addr := mr.Addr()
	mr.Close()
	_, _, err := NewKV(context.Background(), storage.BackendRedis, addr, "", zap.NewNop())
	assert.Error(t, err)
}

func TestNewKVUnknown(t *testing.T) {
	_, _, err := NewKV(context.Background(), "sqlite", "", "", zap.NewNop())
	assert.Error(t, err)
}
