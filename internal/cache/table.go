// Package cache holds read-only snapshots of provider tables between requests.
package cache

import (
	"context"
	"fmt"
	"sync"
	"time"

	"golang.org/x/sync/singleflight"

	"library-assistant/internal/contextutil"
)

// Loader fetches a fresh copy of a table.
type Loader[T any] func(ctx context.Context) ([]T, error)

// Info describes the current state of a Table.
type Info struct {
	Name     string    `json:"name"`
	Size     int       `json:"size"`
	Loaded   bool      `json:"loaded"`
	LoadedAt time.Time `json:"loaded_at,omitempty"`
}

// Table caches the result of a Loader. An empty snapshot is treated as "not loaded"
// so the next Get retries the provider. Concurrent misses share a single load.
//
// Snapshots returned by Get are shared between callers and must not be modified.
type Table[T any] struct {
	name  string
	load  Loader[T]
	group singleflight.Group

	mu       sync.RWMutex
	items    []T
	loadedAt time.Time
	gen      uint64 // bumped by Invalidate
}

// NewTable creates a Table named name (used in logs) backed by load.
func NewTable[T any](name string, load Loader[T]) *Table[T] {
	return &Table[T]{
		name: name,
		load: load,
	}
}

// Get returns the cached snapshot, loading it first when nothing usable is cached.
func (t *Table[T]) Get(ctx context.Context) ([]T, error) {
	t.mu.RLock()
	items := t.items
	t.mu.RUnlock()
	if len(items) > 0 {
		return items, nil
	}

	v, err, shared := t.group.Do(t.name, func() (any, error) {
		// Double-check after winning the flight: another load may have just finished.
		t.mu.RLock()
		items, gen := t.items, t.gen
		t.mu.RUnlock()
		if len(items) > 0 {
			return items, nil
		}

		// A caller going away must not fail the load for everyone waiting on it.
		items, err := t.load(context.WithoutCancel(ctx))
		if err != nil {
			return nil, fmt.Errorf("load %s: %w", t.name, err)
		}

		t.mu.Lock()
		stale := t.gen != gen
		if !stale {
			t.items = items
			t.loadedAt = time.Now()
		}
		t.mu.Unlock()

		if stale {
			contextutil.LoggerFromContext(ctx).DebugContext(ctx, "table invalidated during load, snapshot not kept", "table", t.name)
			return items, nil
		}
		contextutil.LoggerFromContext(ctx).InfoContext(ctx, "table loaded", "table", t.name, "size", len(items))
		return items, nil
	})
	if err != nil {
		return nil, err
	}
	if shared {
		contextutil.LoggerFromContext(ctx).DebugContext(ctx, "table load shared", "table", t.name)
	}
	return v.([]T), nil
}

// Invalidate drops the snapshot; the next Get reloads it. A load already in
// flight still answers its own callers but its result is not cached, and later
// callers start a fresh load instead of joining it.
func (t *Table[T]) Invalidate() {
	t.mu.Lock()
	t.items = nil
	t.loadedAt = time.Time{}
	t.gen++
	t.mu.Unlock()
	t.group.Forget(t.name)
}

// Info reports the snapshot size and load time without triggering a load.
func (t *Table[T]) Info() Info {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return Info{
		Name:     t.name,
		Size:     len(t.items),
		Loaded:   len(t.items) > 0,
		LoadedAt: t.loadedAt,
	}
}
