package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"slices"
	"time"

	entsql "entgo.io/ent/dialect/sql"
)

// KV is a flat key-value store for scalar and small collection fields.
// Values are stored JSON-encoded; an absent key is not an error.
type KV interface {
	// Get decodes the value stored under key into dst. It reports false
	// when the key has never been written.
	Get(ctx context.Context, key string, dst any) (bool, error)

	// Set writes a single key.
	Set(ctx context.Context, key string, value any) error

	// SetMany writes all keys in a single statement, so readers never see
	// a partial update.
	SetMany(ctx context.Context, values map[string]any) error
}

const kvTable = "kv"

// kvRepo implements KV over the kv table.
type kvRepo struct {
	db *sql.DB
	b  *entsql.DialectBuilder
}

func (r *kvRepo) Get(ctx context.Context, key string, dst any) (bool, error) {
	query, args := r.b.Select("value").
		From(entsql.Table(kvTable)).
		Where(entsql.EQ("name", key)).
		Query()

	var raw string
	err := r.db.QueryRowContext(ctx, query, args...).Scan(&raw)
	if errors.Is(err, sql.ErrNoRows) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("get %s: %w", key, err)
	}
	if err := json.Unmarshal([]byte(raw), dst); err != nil {
		return false, fmt.Errorf("decode %s: %w", key, err)
	}
	return true, nil
}

func (r *kvRepo) Set(ctx context.Context, key string, value any) error {
	return r.SetMany(ctx, map[string]any{key: value})
}

func (r *kvRepo) SetMany(ctx context.Context, values map[string]any) error {
	if len(values) == 0 {
		return nil
	}

	keys := make([]string, 0, len(values))
	for k := range values {
		keys = append(keys, k)
	}
	slices.Sort(keys)

	now := time.Now().Unix()
	insert := r.b.Insert(kvTable).Columns("name", "value", "updated_at")
	for _, k := range keys {
		raw, err := json.Marshal(values[k])
		if err != nil {
			return fmt.Errorf("encode %s: %w", k, err)
		}
		insert = insert.Values(k, string(raw), now)
	}

	query, args := insert.
		OnConflict(entsql.ConflictColumns("name"), entsql.ResolveWithNewValues()).
		Query()
	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("save keys: %w", err)
	}
	return nil
}

// MemKV is an in-memory KV, used by tests and as a fallback when no
// database is available. Values round-trip through JSON like the real store.
type MemKV struct {
	data map[string][]byte

	// Err, when set, is returned from every write.
	Err error
	// Writes counts successful SetMany calls.
	Writes int
}

// NewMemKV returns an empty in-memory KV.
func NewMemKV() *MemKV {
	return &MemKV{data: make(map[string][]byte)}
}

func (m *MemKV) Get(_ context.Context, key string, dst any) (bool, error) {
	raw, ok := m.data[key]
	if !ok {
		return false, nil
	}
	return true, json.Unmarshal(raw, dst)
}

func (m *MemKV) Set(ctx context.Context, key string, value any) error {
	return m.SetMany(ctx, map[string]any{key: value})
}

func (m *MemKV) SetMany(_ context.Context, values map[string]any) error {
	if m.Err != nil {
		return m.Err
	}
	for k, v := range values {
		raw, err := json.Marshal(v)
		if err != nil {
			return err
		}
		m.data[k] = raw
	}
	m.Writes++
	return nil
}
