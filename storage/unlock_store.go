package storage

import (
	"context"
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/lixenwraith/super-dash/component"
	"github.com/lixenwraith/super-dash/engine"
)

// ErrUnknownUnlock rejects keys no character is gated on
var ErrUnknownUnlock = errors.New("unknown unlock key")

// UnlockStore persists unlock flags
type UnlockStore struct {
	db  *gorm.DB
	now func() time.Time
}

func NewUnlockStore(db *gorm.DB) *UnlockStore {
	return &UnlockStore{db: db, now: time.Now}
}

func knownUnlock(key string) bool {
	for _, c := range component.Characters {
		if c.Secret && c.UnlockKey == key {
			return true
		}
	}
	return false
}

// Unlock sets a flag; unlocking twice keeps the first timestamp
func (s *UnlockStore) Unlock(ctx context.Context, key string) error {
	if !knownUnlock(key) {
		return fmt.Errorf("%w: %q", ErrUnknownUnlock, key)
	}
	model := UnlockFlagModel{Key: key, UnlockedAt: s.now().UTC()}
	result := s.db.WithContext(ctx).Clauses(clause.OnConflict{DoNothing: true}).Create(&model)
	if result.Error != nil {
		return fmt.Errorf("failed to save unlock %s: %w", key, result.Error)
	}
	return nil
}

// IsUnlocked reports whether key has been earned
func (s *UnlockStore) IsUnlocked(ctx context.Context, key string) (bool, error) {
	var count int64
	result := s.db.WithContext(ctx).Model(&UnlockFlagModel{}).Where("unlock_key = ?", key).Count(&count)
	if result.Error != nil {
		return false, fmt.Errorf("failed to query unlock %s: %w", key, result.Error)
	}
	return count > 0, nil
}

// List returns every unlock flag in the order earned
func (s *UnlockStore) List(ctx context.Context) ([]UnlockFlagModel, error) {
	var models []UnlockFlagModel
	result := s.db.WithContext(ctx).Order("unlocked_at, unlock_key").Find(&models)
	if result.Error != nil {
		return nil, fmt.Errorf("failed to list unlocks: %w", result.Error)
	}
	return models, nil
}

// Available returns the roster filtered to characters the player may pick
func (s *UnlockStore) Available(ctx context.Context) ([]component.Character, error) {
	flags, err := s.List(ctx)
	if err != nil {
		return nil, err
	}
	earned := make(map[string]bool, len(flags))
	for _, f := range flags {
		earned[f.Key] = true
	}
	chars := make([]component.Character, 0, len(component.Characters))
	for _, c := range component.Characters {
		if !c.Secret || earned[c.UnlockKey] {
			chars = append(chars, c)
		}
	}
	return chars, nil
}

// RecordResult stores every key a won run unlocked in one transaction
func (s *UnlockStore) RecordResult(ctx context.Context, res engine.Result) error {
	if len(res.Unlocks) == 0 {
		return nil
	}
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		txStore := &UnlockStore{db: tx, now: s.now}
		for _, key := range res.Unlocks {
			if err := txStore.Unlock(ctx, key); err != nil {
				return err
			}
		}
		return nil
	})
}
