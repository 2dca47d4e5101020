package tasksrepo

import (
	"time"
)

// Conventional priority values. Priority is free text; these are not enforced.
const (
	PriorityLow    = "low"
	PriorityMedium = "medium"
	PriorityHigh   = "high"
)

// Task is a single to-do item. ID is zero until the task has been persisted.
type Task struct {
	ID          int64      `db:"id"`
	Title       *string    `db:"title"`
	Description *string    `db:"description"`
	Completed   bool       `db:"completed"`
	Priority    *string    `db:"priority"`
	CreatedAt   *time.Time `db:"created_at"`
}

// Persisted reports whether the store has assigned the task an id.
func (t Task) Persisted() bool {
	return t.ID != 0
}

// StampCreated sets CreatedAt to now unless it is already set.
func (t *Task) StampCreated(now time.Time) {
	if t.CreatedAt != nil {
		return
	}
	ts := now.UTC()
	t.CreatedAt = &ts
}

// CreateTask contains fields for creating a new task.
type CreateTask struct {
	Title       *string
	Description *string
	Completed   bool
	Priority    *string
}

// ReplaceTask carries the full set of mutable fields for a replace.
// Nil pointers clear the field.
type ReplaceTask struct {
	Title       *string
	Description *string
	Completed   bool
	Priority    *string
}

// UpdateTask is a partial update. Only non-nil fields are applied.
type UpdateTask struct {
	Completed *bool
}

func (c CreateTask) toTask() Task {
	return Task{
		Title:       c.Title,
		Description: c.Description,
		Completed:   c.Completed,
		Priority:    c.Priority,
	}
}

func (r ReplaceTask) apply(t *Task) {
	t.Title = r.Title
	t.Description = r.Description
	t.Completed = r.Completed
	t.Priority = r.Priority
}

func (u UpdateTask) apply(t *Task) {
	if u.Completed != nil {
		t.Completed = *u.Completed
	}
}
