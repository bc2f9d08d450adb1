package inmemory

import (
	"context"
	"sync"
	"testing"

	ierr "github.com/ricehouse/ricepos/internal/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStoreCreateGetUpdate(t *testing.T) {
	ctx := context.Background()
	store := NewStore[int]()

	require.NoError(t, store.Create(ctx, "a", 1))

	err := store.Create(ctx, "a", 2)
	assert.True(t, ierr.IsAlreadyExists(err))

	got, err := store.Get(ctx, "a")
	require.NoError(t, err)
	assert.Equal(t, 1, got)

	_, err = store.Get(ctx, "missing")
	assert.True(t, ierr.IsNotFound(err))

	require.NoError(t, store.Update(ctx, "a", 5))
	got, err = store.Get(ctx, "a")
	require.NoError(t, err)
	assert.Equal(t, 5, got)

	err = store.Update(ctx, "missing", 1)
	assert.True(t, ierr.IsNotFound(err))
}

func TestStoreListFilterAndSort(t *testing.T) {
	ctx := context.Background()
	store := NewStore[int]()
	for id, v := range map[string]int{"a": 3, "b": 1, "c": 2, "d": 10} {
		require.NoError(t, store.Create(ctx, id, v))
	}

	items, err := store.List(ctx,
		func(ctx context.Context, item int) bool { return item < 10 },
		func(i, j int) bool { return i < j })
	require.NoError(t, err)
	assert.Equal(t, []int{1, 2, 3}, items)
}

func TestStoreWithLockIsAtomic(t *testing.T) {
	ctx := context.Background()
	store := NewStore[*int]()
	counter := 100
	require.NoError(t, store.Create(ctx, "stock", &counter))

	// Concurrent decrements must never drive the value negative
	var wg sync.WaitGroup
	for i := 0; i < 150; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_ = store.WithLock(func(items map[string]*int) error {
				v := items["stock"]
				if *v < 1 {
					return ierr.NewError("insufficient").Mark(ierr.ErrInsufficientStock)
				}
				*v--
				return nil
			})
		}()
	}
	wg.Wait()

	got, err := store.Get(ctx, "stock")
	require.NoError(t, err)
	assert.Equal(t, 0, *got)
}
