package storage

import (
	"context"
	"errors"
)

var ErrNotFound = errors.New("storage: not found")

// Store is the durable key-value surface the app persists through. Each
// logical key (weekly menus, completion dates, saved location) is independent.
type Store interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
	Close() error
}

// Logical keys used by the app.
const (
	KeyWeeklyMenus     = "weekly-menus"
	KeyCompletionDates = "completion-dates"
	KeySavedLocation   = "saved-location"
)
