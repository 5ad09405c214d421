package memory

import (
	"context"
	"fmt"
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"
	"golang.org/x/sync/errgroup"

	"user-api/internal/domain/user"
)

func TestUserRepository_CreateAssignsSequentialIDs(t *testing.T) {
	repo := NewUserRepository(zaptest.NewLogger(t))
	ctx := context.Background()

	for i := 1; i <= 3; i++ {
		u, err := repo.Create(ctx, &user.User{ID: 99, Name: fmt.Sprintf("User %d", i), Email: "u@example.com"})
		require.NoError(t, err)
		assert.Equal(t, int64(i), u.ID)
	}
}

func TestUserRepository_CreateNil(t *testing.T) {
	repo := NewUserRepository(zaptest.NewLogger(t))

	_, err := repo.Create(context.Background(), nil)
	assert.EqualError(t, err, "user cannot be nil")

	users, err := repo.List(context.Background())
	require.NoError(t, err)
	assert.Empty(t, users)
}

func TestUserRepository_CanceledContext(t *testing.T) {
	repo := NewUserRepository(zaptest.NewLogger(t))
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := repo.Create(ctx, &user.User{Name: "John", Email: "john@example.com"})
	assert.ErrorIs(t, err, context.Canceled)

	_, err = repo.List(ctx)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestUserRepository_ListEmptyIsNotNil(t *testing.T) {
	repo := NewUserRepository(zaptest.NewLogger(t))

	users, err := repo.List(context.Background())
	require.NoError(t, err)
	assert.NotNil(t, users)
	assert.Len(t, users, 0)
}

func TestUserRepository_ListPreservesOrderAndIsSnapshot(t *testing.T) {
	repo := NewUserRepository(zaptest.NewLogger(t))
	ctx := context.Background()

	_, err := repo.Create(ctx, &user.User{Name: "First", Email: "first@example.com"})
	require.NoError(t, err)
	_, err = repo.Create(ctx, &user.User{Name: "Second", Email: "second@example.com"})
	require.NoError(t, err)

	users, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, users, 2)
	assert.Equal(t, user.User{ID: 1, Name: "First", Email: "first@example.com"}, users[0])
	assert.Equal(t, user.User{ID: 2, Name: "Second", Email: "second@example.com"}, users[1])

	// Mutating the snapshot must not leak into the store
	users[0].Name = "changed"
	_, err = repo.Create(ctx, &user.User{Name: "Third", Email: "third@example.com"})
	require.NoError(t, err)

	again, err := repo.List(ctx)
	require.NoError(t, err)
	assert.Equal(t, "First", again[0].Name)
	assert.Len(t, users, 2)
	assert.Len(t, again, 3)
}

func TestUserRepository_ConcurrentCreateUniqueIDs(t *testing.T) {
	repo := NewUserRepository(zaptest.NewLogger(t))
	ctx := context.Background()

	const workers = 16
	const perWorker = 50

	ids := make([][]int64, workers)
	var g errgroup.Group
	for w := 0; w < workers; w++ {
		g.Go(func() error {
			for i := 0; i < perWorker; i++ {
				u, err := repo.Create(ctx, &user.User{Name: "Concurrent", Email: "c@example.com"})
				if err != nil {
					return err
				}
				ids[w] = append(ids[w], u.ID)

				// Interleave reads to exercise the snapshot path
				if _, err := repo.List(ctx); err != nil {
					return err
				}
			}
			return nil
		})
	}
	require.NoError(t, g.Wait())

	var all []int64
	for _, workerIDs := range ids {
		// IDs seen by one goroutine are strictly increasing
		assert.True(t, sort.SliceIsSorted(workerIDs, func(i, j int) bool { return workerIDs[i] < workerIDs[j] }))
		all = append(all, workerIDs...)
	}

	sort.Slice(all, func(i, j int) bool { return all[i] < all[j] })
	require.Len(t, all, workers*perWorker)
	for i, id := range all {
		assert.Equal(t, int64(i+1), id)
	}

	users, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, users, workers*perWorker)
	for i, u := range users {
		assert.Equal(t, int64(i+1), u.ID, "store order must match ID order")
	}
}
