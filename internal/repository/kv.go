package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/keoko/mots/internal/clock"
)

// KVR stores JSON blobs in kv_store, one row per (owner, key).
type KVR struct {
	db    QueryI
	clock clock.Clock
}

func NewKVRepository(db QueryI, clk clock.Clock) *KVR {
	return &KVR{db: db, clock: clk}
}

func (k *KVR) Get(ctx context.Context, owner, key string) ([]byte, error) {
	query := k.db.Rebind(`SELECT value FROM kv_store WHERE owner_id = ? AND name = ?`)

	var value string
	err := k.db.GetContext(ctx, &value, query, owner, key)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("database error: %w", err)
	}

	return []byte(value), nil
}

func (k *KVR) Put(ctx context.Context, owner, key string, value []byte) error {
	query := k.db.Rebind(upsertQuery(k.db.DriverName()))

	_, err := k.db.ExecContext(ctx, query, owner, key, string(value), k.clock.Now().UTC())
	if err != nil {
		return fmt.Errorf("failed to put %s: %w", key, err)
	}

	return nil
}

func (k *KVR) Owners(ctx context.Context, key string) ([]string, error) {
	query := k.db.Rebind(`SELECT owner_id FROM kv_store WHERE name = ? ORDER BY owner_id`)

	owners := []string{}
	if err := k.db.SelectContext(ctx, &owners, query, key); err != nil {
		return nil, fmt.Errorf("database error: %w", err)
	}

	return owners, nil
}

func upsertQuery(driver string) string {
	if driver == "mysql" {
		return `INSERT INTO kv_store (owner_id, name, value, updated_at)
		VALUES (?, ?, ?, ?)
		ON DUPLICATE KEY UPDATE
			value = VALUES(value),
			updated_at = VALUES(updated_at)`
	}

	return `INSERT INTO kv_store (owner_id, name, value, updated_at)
		VALUES (?, ?, ?, ?)
		ON CONFLICT (owner_id, name)
		DO UPDATE SET
			value = EXCLUDED.value,
			updated_at = EXCLUDED.updated_at`
}
