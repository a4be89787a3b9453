package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/keoko/mots/internal/repository"
	"go.uber.org/zap"
)

// loadJSON never fails: a missing, unreadable or corrupted value yields def.
func loadJSON[T any](ctx context.Context, repo KVRI, log *zap.Logger, owner, key string, def T) T {
	raw, err := repo.Get(ctx, owner, key)
	if err != nil {
		if !errors.Is(err, repository.ErrNotFound) {
			log.Warn("failed to read stored value", zap.String("owner", owner), zap.String("key", key), zap.Error(err))
		}
		return def
	}

	var value T
	if err := json.Unmarshal(raw, &value); err != nil {
		log.Warn("corrupted stored value, using defaults", zap.String("owner", owner), zap.String("key", key), zap.Error(err))
		return def
	}

	return value
}

func saveJSON(ctx context.Context, repo KVRI, log *zap.Logger, owner, key string, value any) error {
	raw, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("failed to encode %s: %w", key, err)
	}

	if err := repo.Put(ctx, owner, key, raw); err != nil {
		log.Warn("failed to write stored value", zap.String("owner", owner), zap.String("key", key), zap.Error(err))
		return err
	}

	return nil
}
