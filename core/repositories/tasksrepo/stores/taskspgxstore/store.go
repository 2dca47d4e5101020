// Package taskspgxstore implements tasksrepo.Storer on PostgreSQL using pgx.
package taskspgxstore

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jrazmi/todolist/core/repositories"
	"github.com/jrazmi/todolist/core/repositories/tasksrepo"
	"github.com/jrazmi/todolist/infrastructure/postgresdb"
	"github.com/jrazmi/todolist/sdk/logger"
)

const columns = `id, title, description, completed, priority, created_at`

// Store provides database access for Task.
type Store struct {
	log  *logger.Logger
	pool *postgresdb.Pool
}

// NewStore creates a new Task store
func NewStore(log *logger.Logger, pool *postgresdb.Pool) *Store {
	return &Store{
		log:  log,
		pool: pool,
	}
}

var _ tasksrepo.Storer = (*Store)(nil)

// List returns all tasks ordered by id.
func (s *Store) List(ctx context.Context) ([]tasksrepo.Task, error) {
	query := `SELECT ` + columns + ` FROM public.tasks ORDER BY id ASC`

	rows, err := s.pool.Query(ctx, query)
	if err != nil {
		return nil, postgresdb.HandlePgError(err)
	}
	defer rows.Close()

	tasks, err := pgx.CollectRows(rows, pgx.RowToStructByName[tasksrepo.Task])
	if err != nil {
		return nil, postgresdb.HandlePgError(err)
	}

	if tasks == nil {
		tasks = []tasksrepo.Task{}
	}
	return tasks, nil
}

// GetByID returns a single task.
func (s *Store) GetByID(ctx context.Context, id int64) (tasksrepo.Task, error) {
	query := `SELECT ` + columns + ` FROM public.tasks WHERE id = @id`

	return s.collectOne(ctx, query, pgx.NamedArgs{"id": id})
}

// Save inserts a task without an id and updates one that has an id.
func (s *Store) Save(ctx context.Context, task tasksrepo.Task) (tasksrepo.Task, error) {
	if !task.Persisted() {
		return s.insert(ctx, task)
	}
	return s.update(ctx, task)
}

func (s *Store) insert(ctx context.Context, task tasksrepo.Task) (tasksrepo.Task, error) {
	query := `
		INSERT INTO public.tasks (title, description, completed, priority, created_at)
		VALUES (@title, @description, @completed, @priority, COALESCE(@created_at, NOW()))
		RETURNING ` + columns

	args := pgx.NamedArgs{
		"title":       task.Title,
		"description": task.Description,
		"completed":   task.Completed,
		"priority":    task.Priority,
		"created_at":  task.CreatedAt,
	}

	return s.collectOne(ctx, query, args)
}

func (s *Store) update(ctx context.Context, task tasksrepo.Task) (tasksrepo.Task, error) {
	query := `
		UPDATE public.tasks
		SET title = @title, description = @description, completed = @completed, priority = @priority
		WHERE id = @id
		RETURNING ` + columns

	args := pgx.NamedArgs{
		"id":          task.ID,
		"title":       task.Title,
		"description": task.Description,
		"completed":   task.Completed,
		"priority":    task.Priority,
	}

	return s.collectOne(ctx, query, args)
}

// Delete removes a task by its id.
func (s *Store) Delete(ctx context.Context, task tasksrepo.Task) error {
	query := `DELETE FROM public.tasks WHERE id = @id`

	tag, err := s.pool.Exec(ctx, query, pgx.NamedArgs{"id": task.ID})
	if err != nil {
		return postgresdb.HandlePgError(err)
	}
	if tag.RowsAffected() == 0 {
		s.log.WarnContext(ctx, "delete matched no row", "id", task.ID)
		return fmt.Errorf("delete task %d: %w", task.ID, repositories.ErrNotFound)
	}
	return nil
}

func (s *Store) collectOne(ctx context.Context, query string, args pgx.NamedArgs) (tasksrepo.Task, error) {
	rows, err := s.pool.Query(ctx, query, args)
	if err != nil {
		return tasksrepo.Task{}, postgresdb.HandlePgError(err)
	}
	defer rows.Close()

	task, err := pgx.CollectOneRow(rows, pgx.RowToStructByName[tasksrepo.Task])
	if err != nil {
		err = postgresdb.HandlePgError(err)
		if errors.Is(err, postgresdb.ErrDBNotFound) {
			return tasksrepo.Task{}, repositories.ErrNotFound
		}
		return tasksrepo.Task{}, err
	}
	return task, nil
}
