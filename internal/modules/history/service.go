// README: Trip history service: newest-first, case-insensitive de-duplicated, capped list.
package history

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"time"

	"go.uber.org/zap"

	"tripguide/internal/storage"
	"tripguide/internal/types"
)

type Service struct {
	kv  storage.KV
	log *zap.Logger
	now func() time.Time
}

func NewService(kv storage.KV, log *zap.Logger) *Service {
	return &Service{kv: kv, log: log, now: time.Now}
}

// Load returns the owner's history. Missing or corrupt data yields an empty list.
func (s *Service) Load(ctx context.Context, owner string) []Item {
	key := storage.ScopedKey(RecordName, owner)
	raw, err := s.kv.Get(ctx, key)
	if err != nil {
		if !errors.Is(err, storage.ErrNotFound) {
			err = types.E(types.KindPersistence, "history.load", err)
			s.log.Error("failed to load trip history", zap.String("key", key), zap.Error(err))
		}
		return []Item{}
	}

	var items []Item
	if err := json.Unmarshal(raw, &items); err != nil {
		s.log.Warn("discarding corrupt trip history", zap.String("key", key), zap.Error(err))
		return []Item{}
	}
	if items == nil {
		return []Item{}
	}
	if len(items) > MaxItems {
		items = items[:MaxItems]
	}
	return items
}

// Record stamps item, prepends it, drops older entries for the same destination
// (case-insensitive), keeps MaxItems and persists. A persistence failure is logged
// and the updated list is still returned.
func (s *Service) Record(ctx context.Context, owner string, item Item) []Item {
	item.Timestamp = s.now().UnixMilli()
	updated := Prepend(s.Load(ctx, owner), item)

	key := storage.ScopedKey(RecordName, owner)
	raw, err := json.Marshal(updated)
	if err == nil {
		err = s.kv.Set(ctx, key, raw)
	}
	if err != nil {
		err = types.E(types.KindPersistence, "history.save", err)
		s.log.Error("failed to save trip history", zap.String("key", key), zap.Error(err))
	}
	return updated
}

// Prepend places item first, removes entries whose destination equals item's
// case-insensitively, and truncates to MaxItems.
func Prepend(history []Item, item Item) []Item {
	out := make([]Item, 0, MaxItems)
	out = append(out, item)
	for _, h := range history {
		if len(out) == MaxItems {
			break
		}
		if strings.EqualFold(h.Destination, item.Destination) {
			continue
		}
		out = append(out, h)
	}
	return out
}
