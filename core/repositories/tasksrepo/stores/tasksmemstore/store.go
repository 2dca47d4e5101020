// Package tasksmemstore implements tasksrepo.Storer in process memory.
package tasksmemstore

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/jrazmi/todolist/core/repositories"
	"github.com/jrazmi/todolist/core/repositories/tasksrepo"
	"github.com/jrazmi/todolist/sdk/validation"
)

// Store keeps tasks in a map guarded by a RWMutex. Ids start at 1.
type Store struct {
	mu     sync.RWMutex
	tasks  map[int64]tasksrepo.Task
	nextID int64
	now    func() time.Time
}

// NewStore creates an empty in memory task store.
func NewStore() *Store {
	return &Store{
		tasks:  make(map[int64]tasksrepo.Task),
		nextID: 1,
		now:    time.Now,
	}
}

var _ tasksrepo.Storer = (*Store)(nil)

func (s *Store) List(ctx context.Context) ([]tasksrepo.Task, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	tasks := make([]tasksrepo.Task, 0, len(s.tasks))
	for _, t := range s.tasks {
		tasks = append(tasks, clone(t))
	}
	sort.Slice(tasks, func(i, j int) bool { return tasks[i].ID < tasks[j].ID })
	return tasks, nil
}

func (s *Store) GetByID(ctx context.Context, id int64) (tasksrepo.Task, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	t, ok := s.tasks[id]
	if !ok {
		return tasksrepo.Task{}, repositories.ErrNotFound
	}
	return clone(t), nil
}

func (s *Store) Save(ctx context.Context, task tasksrepo.Task) (tasksrepo.Task, error) {
	if err := ctx.Err(); err != nil {
		return tasksrepo.Task{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if !task.Persisted() {
		task = clone(task)
		task.ID = s.nextID
		s.nextID++
		task.StampCreated(s.now())
		s.tasks[task.ID] = task
		return clone(task), nil
	}

	stored, ok := s.tasks[task.ID]
	if !ok {
		return tasksrepo.Task{}, fmt.Errorf("save task %d: %w", task.ID, repositories.ErrNotFound)
	}

	stored.Title = validation.CloneStringPtr(task.Title)
	stored.Description = validation.CloneStringPtr(task.Description)
	stored.Priority = validation.CloneStringPtr(task.Priority)
	stored.Completed = task.Completed
	s.tasks[task.ID] = stored
	return clone(stored), nil
}

func (s *Store) Delete(ctx context.Context, task tasksrepo.Task) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.tasks[task.ID]; !ok {
		return fmt.Errorf("delete task %d: %w", task.ID, repositories.ErrNotFound)
	}
	delete(s.tasks, task.ID)
	return nil
}

func clone(t tasksrepo.Task) tasksrepo.Task {
	return tasksrepo.Task{
		ID:          t.ID,
		Title:       validation.CloneStringPtr(t.Title),
		Description: validation.CloneStringPtr(t.Description),
		Completed:   t.Completed,
		Priority:    validation.CloneStringPtr(t.Priority),
		CreatedAt:   validation.CloneTimePtr(t.CreatedAt),
	}
}
