package cache

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"
)

func TestTable_GetCachesNonEmpty(t *testing.T) {
	var calls atomic.Int32
	table := NewTable[string]("books", func(ctx context.Context) ([]string, error) {
		calls.Add(1)
		return []string{"a", "b"}, nil
	})

	for i := 0; i < 3; i++ {
		got, err := table.Get(context.Background())
		if err != nil {
			t.Fatalf("Get() error = %v", err)
		}
		if len(got) != 2 {
			t.Fatalf("Get() len = %d, want 2", len(got))
		}
	}

	if calls.Load() != 1 {
		t.Errorf("loader called %d times, want 1", calls.Load())
	}
	if info := table.Info(); !info.Loaded || info.Size != 2 || info.Name != "books" {
		t.Errorf("Info() = %+v", info)
	}
}

func TestTable_EmptySnapshotReloads(t *testing.T) {
	var calls atomic.Int32
	table := NewTable[string]("intents", func(ctx context.Context) ([]string, error) {
		if calls.Add(1) == 1 {
			return nil, nil
		}
		return []string{"greeting"}, nil
	})

	first, err := table.Get(context.Background())
	if err != nil {
		t.Fatalf("Get() error = %v", err)
	}
	if len(first) != 0 {
		t.Fatalf("first Get() len = %d, want 0", len(first))
	}

	second, err := table.Get(context.Background())
	if err != nil {
		t.Fatalf("Get() error = %v", err)
	}
	if len(second) != 1 {
		t.Errorf("second Get() len = %d, want 1 after lazy reload", len(second))
	}
	if calls.Load() != 2 {
		t.Errorf("loader called %d times, want 2", calls.Load())
	}
}

func TestTable_LoadError(t *testing.T) {
	table := NewTable[int]("books", func(ctx context.Context) ([]int, error) {
		return nil, errors.New("connection refused")
	})

	if _, err := table.Get(context.Background()); err == nil {
		t.Fatal("Get() expected error, got nil")
	}
	if table.Info().Loaded {
		t.Error("Info().Loaded should be false after a failed load")
	}
}

func TestTable_Invalidate(t *testing.T) {
	var calls atomic.Int32
	table := NewTable[int]("books", func(ctx context.Context) ([]int, error) {
		calls.Add(1)
		return []int{1}, nil
	})

	if _, err := table.Get(context.Background()); err != nil {
		t.Fatalf("Get() error = %v", err)
	}
	table.Invalidate()
	if table.Info().Loaded {
		t.Error("Info().Loaded should be false after Invalidate")
	}
	if _, err := table.Get(context.Background()); err != nil {
		t.Fatalf("Get() error = %v", err)
	}

	if calls.Load() != 2 {
		t.Errorf("loader called %d times, want 2", calls.Load())
	}
}

func TestTable_ConcurrentFirstAccessLoadsOnce(t *testing.T) {
	var calls atomic.Int32
	release := make(chan struct{})
	table := NewTable[int]("intents", func(ctx context.Context) ([]int, error) {
		calls.Add(1)
		<-release
		return []int{1, 2, 3}, nil
	})

	const workers = 16
	var wg sync.WaitGroup
	errs := make(chan error, workers)
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			items, err := table.Get(context.Background())
			if err == nil && len(items) != 3 {
				err = errors.New("wrong snapshot size")
			}
			errs <- err
		}()
	}

	time.Sleep(50 * time.Millisecond)
	close(release)
	wg.Wait()
	close(errs)

	for err := range errs {
		if err != nil {
			t.Errorf("Get() error = %v", err)
		}
	}
	if calls.Load() != 1 {
		t.Errorf("loader called %d times, want 1", calls.Load())
	}
}

func TestTable_CanceledCallerDoesNotFailLoad(t *testing.T) {
	table := NewTable[int]("books", func(ctx context.Context) ([]int, error) {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		return []int{1}, nil
	})

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if _, err := table.Get(ctx); err != nil {
		t.Errorf("Get() with canceled context error = %v, want nil", err)
	}
}

func TestTable_InvalidateDuringLoadDiscardsResult(t *testing.T) {
	var source atomic.Value
	source.Store("v1")

	started := make(chan struct{})
	release := make(chan struct{})
	var calls atomic.Int32
	table := NewTable[string]("intents", func(ctx context.Context) ([]string, error) {
		v := source.Load().(string)
		if calls.Add(1) == 1 {
			close(started)
			<-release
		}
		return []string{v}, nil
	})

	done := make(chan []string, 1)
	go func() {
		items, _ := table.Get(context.Background())
		done <- items
	}()

	<-started
	source.Store("v2")
	table.Invalidate()

	// A Get issued after Invalidate must not join the load that read "v1".
	got, err := table.Get(context.Background())
	if err != nil {
		t.Fatalf("Get() error = %v", err)
	}
	if len(got) != 1 || got[0] != "v2" {
		t.Errorf("Get() after Invalidate = %v, want [v2]", got)
	}

	close(release)
	if first := <-done; len(first) != 1 || first[0] != "v1" {
		t.Errorf("in-flight Get() = %v, want [v1]", first)
	}

	got, err = table.Get(context.Background())
	if err != nil {
		t.Fatalf("Get() error = %v", err)
	}
	if len(got) != 1 || got[0] != "v2" {
		t.Errorf("Get() after in-flight load finished = %v, want [v2]", got)
	}
	if calls.Load() != 2 {
		t.Errorf("loader called %d times, want 2", calls.Load())
	}
}

func TestTable_InvalidateBeforeLoadStores(t *testing.T) {
	var source atomic.Value
	source.Store("v1")

	started := make(chan struct{})
	release := make(chan struct{})
	var calls atomic.Int32
	table := NewTable[string]("intents", func(ctx context.Context) ([]string, error) {
		v := source.Load().(string)
		if calls.Add(1) == 1 {
			close(started)
			<-release
		}
		return []string{v}, nil
	})

	done := make(chan struct{})
	go func() {
		_, _ = table.Get(context.Background())
		close(done)
	}()

	<-started
	source.Store("v2")
	table.Invalidate()
	close(release)
	<-done

	if table.Info().Loaded {
		t.Fatal("result of a load overtaken by Invalidate should not be cached")
	}
	got, err := table.Get(context.Background())
	if err != nil {
		t.Fatalf("Get() error = %v", err)
	}
	if len(got) != 1 || got[0] != "v2" {
		t.Errorf("Get() = %v, want [v2]", got)
	}
}
