package storage

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
)

// Keyspace binds one logical key to a Go type with JSON round-tripping:
// read-with-default at startup, write-through on every change.
type Keyspace[T any] struct {
	store Store
	key   string
}

func NewKeyspace[T any](store Store, key string) Keyspace[T] {
	return Keyspace[T]{store: store, key: key}
}

// LoadOr returns the stored value, or fallback when the key has never been
// written. A corrupt payload is an error; the caller decides whether to
// continue on the default.
func (k Keyspace[T]) LoadOr(ctx context.Context, fallback T) (T, error) {
	raw, err := k.store.Get(ctx, k.key)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return fallback, nil
		}
		return fallback, fmt.Errorf("load %s: %w", k.key, err)
	}
	var out T
	if err := json.Unmarshal(raw, &out); err != nil {
		return fallback, fmt.Errorf("decode %s: %w", k.key, err)
	}
	return out, nil
}

func (k Keyspace[T]) Save(ctx context.Context, value T) error {
	raw, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("encode %s: %w", k.key, err)
	}
	if err := k.store.Set(ctx, k.key, raw); err != nil {
		return fmt.Errorf("save %s: %w", k.key, err)
	}
	return nil
}
