// Package tasksrepo provides the core business api for tasks.
package tasksrepo

import (
	"context"
	"errors"
	"fmt"

	"github.com/jrazmi/todolist/core/repositories"
	"github.com/jrazmi/todolist/sdk/logger"
	"github.com/jrazmi/todolist/sdk/validation"
)

// ErrNotFound is returned, wrapped, when no task has the requested id.
var ErrNotFound = fmt.Errorf("task %w", repositories.ErrNotFound)

// Storer defines the data storage interface for Task.
//
// Save inserts when the task has no id, assigning one and stamping CreatedAt
// if it is unset, and otherwise updates the mutable fields of the stored row.
// CreatedAt is never rewritten by an update. GetByID, Save and Delete wrap
// repositories.ErrNotFound when the row is absent.
type Storer interface {
	List(ctx context.Context) ([]Task, error)
	GetByID(ctx context.Context, id int64) (Task, error)
	Save(ctx context.Context, task Task) (Task, error)
	Delete(ctx context.Context, task Task) error
}

// Repository provides access to task storage.
//
// Replace, Update and Delete read the task and then write it back without a
// transaction or version check. Two concurrent writers to the same id race
// and the last save wins.
type Repository struct {
	log    *logger.Logger
	storer Storer
}

// NewRepository creates a new Task repository
func NewRepository(log *logger.Logger, storer Storer) *Repository {
	return &Repository{
		log:    log,
		storer: storer,
	}
}

// List returns every stored task.
func (r *Repository) List(ctx context.Context) ([]Task, error) {
	tasks, err := r.storer.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list tasks: %w", err)
	}
	return tasks, nil
}

// GetByID returns the task with the given id.
func (r *Repository) GetByID(ctx context.Context, id int64) (Task, error) {
	task, err := r.storer.GetByID(ctx, id)
	if err != nil {
		return Task{}, r.notFound(id, fmt.Errorf("get task: %w", err))
	}
	return task, nil
}

// Create persists a new task and returns it with its id and creation time.
func (r *Repository) Create(ctx context.Context, input CreateTask) (Task, error) {
	task, err := r.storer.Save(ctx, input.toTask())
	if err != nil {
		return Task{}, fmt.Errorf("create task: %w", err)
	}

	r.log.InfoContext(ctx, "created task", "id", task.ID, "title", validation.StringPtrValue(task.Title))
	return task, nil
}

// Replace overwrites every mutable field of the task. The id and creation
// time are kept from the stored record.
func (r *Repository) Replace(ctx context.Context, id int64, input ReplaceTask) (Task, error) {
	task, err := r.GetByID(ctx, id)
	if err != nil {
		return Task{}, err
	}

	input.apply(&task)

	saved, err := r.storer.Save(ctx, task)
	if err != nil {
		return Task{}, r.notFound(id, fmt.Errorf("replace task: %w", err))
	}

	r.log.InfoContext(ctx, "replaced task", "id", id)
	return saved, nil
}

// Update applies a partial update. The task is saved even when the update
// carries no recognised field.
func (r *Repository) Update(ctx context.Context, id int64, input UpdateTask) (Task, error) {
	task, err := r.GetByID(ctx, id)
	if err != nil {
		return Task{}, err
	}

	input.apply(&task)

	saved, err := r.storer.Save(ctx, task)
	if err != nil {
		return Task{}, r.notFound(id, fmt.Errorf("update task: %w", err))
	}

	r.log.InfoContext(ctx, "updated task", "id", id, "completed", saved.Completed)
	return saved, nil
}

// Delete removes the task with the given id.
func (r *Repository) Delete(ctx context.Context, id int64) error {
	task, err := r.GetByID(ctx, id)
	if err != nil {
		return err
	}

	if err := r.storer.Delete(ctx, task); err != nil {
		return r.notFound(id, fmt.Errorf("delete task: %w", err))
	}

	r.log.InfoContext(ctx, "deleted task", "id", id)
	return nil
}

// notFound normalises store level not found errors to ErrNotFound.
func (r *Repository) notFound(id int64, err error) error {
	if errors.Is(err, repositories.ErrNotFound) {
		return fmt.Errorf("%w: id %d", ErrNotFound, id)
	}
	return err
}
