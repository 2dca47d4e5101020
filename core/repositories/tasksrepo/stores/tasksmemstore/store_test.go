package tasksmemstore_test

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/jrazmi/todolist/core/repositories"
	"github.com/jrazmi/todolist/core/repositories/tasksrepo"
	"github.com/jrazmi/todolist/core/repositories/tasksrepo/stores/tasksmemstore"
	"github.com/jrazmi/todolist/sdk/validation"
	"github.com/stretchr/testify/require"
)

func TestStore_SaveAssignsIDsAndCreatedAt(t *testing.T) {
	ctx := context.Background()
	s := tasksmemstore.NewStore()

	first, err := s.Save(ctx, tasksrepo.Task{Title: validation.StringPtr("a")})
	require.NoError(t, err)
	second, err := s.Save(ctx, tasksrepo.Task{Title: validation.StringPtr("b")})
	require.NoError(t, err)

	require.Equal(t, int64(1), first.ID)
	require.Equal(t, int64(2), second.ID)
	require.NotNil(t, first.CreatedAt)

	fixed := time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC)
	third, err := s.Save(ctx, tasksrepo.Task{CreatedAt: &fixed})
	require.NoError(t, err)
	require.Equal(t, fixed, *third.CreatedAt)
}

func TestStore_UpdateKeepsCreatedAt(t *testing.T) {
	ctx := context.Background()
	s := tasksmemstore.NewStore()

	task, err := s.Save(ctx, tasksrepo.Task{Title: validation.StringPtr("a")})
	require.NoError(t, err)
	created := *task.CreatedAt

	task.Title = validation.StringPtr("b")
	task.Completed = true
	task.CreatedAt = nil
	updated, err := s.Save(ctx, task)
	require.NoError(t, err)
	require.Equal(t, "b", *updated.Title)
	require.True(t, updated.Completed)
	require.Equal(t, created, *updated.CreatedAt)
}

func TestStore_ReturnsCopies(t *testing.T) {
	ctx := context.Background()
	s := tasksmemstore.NewStore()

	task, err := s.Save(ctx, tasksrepo.Task{Title: validation.StringPtr("a")})
	require.NoError(t, err)
	*task.Title = "mutated"

	got, err := s.GetByID(ctx, task.ID)
	require.NoError(t, err)
	require.Equal(t, "a", *got.Title)
}

func TestStore_NotFound(t *testing.T) {
	ctx := context.Background()
	s := tasksmemstore.NewStore()

	_, err := s.GetByID(ctx, 7)
	require.ErrorIs(t, err, repositories.ErrNotFound)

	_, err = s.Save(ctx, tasksrepo.Task{ID: 7})
	require.ErrorIs(t, err, repositories.ErrNotFound)

	require.ErrorIs(t, s.Delete(ctx, tasksrepo.Task{ID: 7}), repositories.ErrNotFound)
}

func TestStore_ListOrderedAndEmpty(t *testing.T) {
	ctx := context.Background()
	s := tasksmemstore.NewStore()

	tasks, err := s.List(ctx)
	require.NoError(t, err)
	require.NotNil(t, tasks)
	require.Empty(t, tasks)

	for i := 0; i < 5; i++ {
		_, err := s.Save(ctx, tasksrepo.Task{})
		require.NoError(t, err)
	}
	require.NoError(t, s.Delete(ctx, tasksrepo.Task{ID: 3}))

	tasks, err = s.List(ctx)
	require.NoError(t, err)
	ids := make([]int64, 0, len(tasks))
	for _, task := range tasks {
		ids = append(ids, task.ID)
	}
	require.Equal(t, []int64{1, 2, 4, 5}, ids)
}

func TestStore_ConcurrentInserts(t *testing.T) {
	ctx := context.Background()
	s := tasksmemstore.NewStore()

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if _, err := s.Save(ctx, tasksrepo.Task{}); err != nil {
				t.Error(err)
			}
		}()
	}
	wg.Wait()

	tasks, err := s.List(ctx)
	require.NoError(t, err)
	require.Len(t, tasks, 50)
	require.Equal(t, int64(50), tasks[49].ID)
}
