// README: Language preference persistence.
package locale

import (
	"context"
	"errors"

	"go.uber.org/zap"

	"tripguide/internal/storage"
	"tripguide/internal/types"
)

type Service struct {
	kv  storage.KV
	log *zap.Logger
}

func NewService(kv storage.KV, log *zap.Logger) *Service {
	return &Service{kv: kv, log: log}
}

// Load returns the owner's Localizer; missing, unknown or unreadable preferences
// fall back to DefaultLanguage.
func (s *Service) Load(ctx context.Context, owner string) Localizer {
	key := storage.ScopedKey(RecordName, owner)
	raw, err := s.kv.Get(ctx, key)
	if err != nil {
		if !errors.Is(err, storage.ErrNotFound) {
			err = types.E(types.KindPersistence, "locale.load", err)
			s.log.Error("failed to load language", zap.String("key", key), zap.Error(err))
		}
		return New(DefaultLanguage)
	}
	return New(string(raw))
}

// Save stores code for owner. Unsupported codes are a validation error; a storage
// failure is logged and the Localizer is still returned.
func (s *Service) Save(ctx context.Context, owner, code string) (Localizer, error) {
	lang, err := Normalize(code)
	if err != nil {
		return Localizer{}, types.E(types.KindValidation, "locale.save", err)
	}
	key := storage.ScopedKey(RecordName, owner)
	if err := s.kv.Set(ctx, key, []byte(lang)); err != nil {
		s.log.Error("failed to save language", zap.String("key", key),
			zap.Error(types.E(types.KindPersistence, "locale.save", err)))
	}
	return Localizer{lang: lang}, nil
}
