// README: History service tests (dedupe, cap, corrupt data, swallowed save failures).
package history

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"

	"tripguide/internal/storage"
	"tripguide/internal/types"
)

// failingKV returns setErr from every Set and delegates Get.
type failingKV struct {
	storage.KV
	getErr error
	setErr error
}

func (f *failingKV) Get(ctx context.Context, key string) ([]byte, error) {
	if f.getErr != nil {
		return nil, f.getErr
	}
	return f.KV.Get(ctx, key)
}

func (f *failingKV) Set(ctx context.Context, key string, value []byte) error {
	return f.setErr
}

func newTestService(kv storage.KV) *Service {
	svc := NewService(kv, zap.NewNop())
	clock := time.Date(2026, 10, 19, 9, 0, 0, 0, time.UTC)
	svc.now = func() time.Time {
		clock = clock.Add(time.Minute)
		return clock
	}
	return svc
}

func trip(dest string) Item {
	return Item{Destination: dest, Origin: "Berlin", HotelPreference: HotelAverage, TravelMode: ModeTrain}
}

func destinations(items []Item) []string {
	out := make([]string, len(items))
	for i, it := range items {
		out[i] = it.Destination
	}
	return out
}

func TestRecordCaseInsensitiveDedupe(t *testing.T) {
	svc := newTestService(storage.NewMemoryKV())
	ctx := context.Background()

	svc.Record(ctx, "", trip("Paris"))
	svc.Record(ctx, "", trip("Tokyo"))
	got := svc.Record(ctx, "", trip("paris"))

	assert.Equal(t, []string{"paris", "Tokyo"}, destinations(got))
	assert.Equal(t, []string{"paris", "Tokyo"}, destinations(svc.Load(ctx, "")))
	assert.Greater(t, got[0].Timestamp, got[1].Timestamp)
}

func TestRecordCapsAtFive(t *testing.T) {
	svc := newTestService(storage.NewMemoryKV())
	ctx := context.Background()

	for i := 0; i < 12; i++ {
		got := svc.Record(ctx, "", trip(fmt.Sprintf("City%d", i)))
		assert.LessOrEqual(t, len(got), MaxItems)
	}
	got := svc.Load(ctx, "")
	assert.Equal(t, []string{"City11", "City10", "City9", "City8", "City7"}, destinations(got))
}

func TestLoadMissingIsEmpty(t *testing.T) {
	svc := newTestService(storage.NewMemoryKV())
	got := svc.Load(context.Background(), "")
	assert.NotNil(t, got)
	assert.Empty(t, got)
}

func TestLoadCorruptIsEmpty(t *testing.T) {
	kv := storage.NewMemoryKV()
	ctx := context.Background()
	require.NoError(t, kv.Set(ctx, RecordName, []byte(`{not json`)))

	svc := newTestService(kv)
	assert.Empty(t, svc.Load(ctx, ""))

	got := svc.Record(ctx, "", trip("Rome"))
	assert.Equal(t, []string{"Rome"}, destinations(got))
}

func loggedError(entry observer.LoggedEntry) error {
	for _, f := range entry.Context {
		if err, ok := f.Interface.(error); ok && f.Key == "error" {
			return err
		}
	}
	return nil
}

func TestLoadBackendErrorIsEmpty(t *testing.T) {
	core, logs := observer.New(zap.ErrorLevel)
	svc := newTestService(&failingKV{KV: storage.NewMemoryKV(), getErr: errors.New("connection refused")})
	svc.log = zap.New(core)

	assert.Empty(t, svc.Load(context.Background(), ""))

	entries := logs.FilterMessage("failed to load trip history").All()
	require.Len(t, entries, 1)
	assert.Equal(t, types.KindPersistence, types.KindOf(loggedError(entries[0])))
}

func TestRecordSaveFailureIsSwallowed(t *testing.T) {
	core, logs := observer.New(zap.ErrorLevel)
	svc := newTestService(&failingKV{KV: storage.NewMemoryKV(), setErr: errors.New("disk full")})
	svc.log = zap.New(core)

	got := svc.Record(context.Background(), "", trip("Lima"))

	assert.Equal(t, []string{"Lima"}, destinations(got))
	entries := logs.FilterMessage("failed to save trip history").All()
	require.Len(t, entries, 1)
	assert.Equal(t, types.KindPersistence, types.KindOf(loggedError(entries[0])))
}

func TestRecordScopesByOwner(t *testing.T) {
	kv := storage.NewMemoryKV()
	svc := newTestService(kv)
	ctx := context.Background()

	svc.Record(ctx, "alice", trip("Cairo"))
	svc.Record(ctx, "bob", trip("Quito"))

	assert.Equal(t, []string{"Cairo"}, destinations(svc.Load(ctx, "alice")))
	assert.Equal(t, []string{"Quito"}, destinations(svc.Load(ctx, "bob")))
	assert.Empty(t, svc.Load(ctx, ""))

	_, err := kv.Get(ctx, "tripHistory:alice")
	assert.NoError(t, err)
}

func TestPrependDoesNotMutateInput(t *testing.T) {
	prev := []Item{trip("A"), trip("B")}
	got := Prepend(prev, trip("b"))
	assert.Equal(t, []string{"b", "A"}, destinations(got))
	assert.Equal(t, []string{"A", "B"}, destinations(prev))
}

func TestParseEnums(t *testing.T) {
	p, err := ParseHotelPreference(" Premium ")
	require.NoError(t, err)
	assert.Equal(t, HotelPremium, p)

	_, err = ParseHotelPreference("luxury")
	assert.ErrorIs(t, err, ErrInvalidHotelPreference)

	m, err := ParseTravelMode("TRAIN")
	require.NoError(t, err)
	assert.Equal(t, ModeTrain, m)

	_, err = ParseTravelMode("car")
	assert.ErrorIs(t, err, ErrInvalidTravelMode)
}
