package tasksrepobridge

import (
	"encoding/json"
	"errors"
	"time"
)

// Task is the JSON representation of a task. Absent values render as null.
type Task struct {
	ID          *int64     `json:"id"`
	Title       *string    `json:"title"`
	Description *string    `json:"description"`
	Completed   bool       `json:"completed"`
	Priority    *string    `json:"priority"`
	CreatedAt   *time.Time `json:"createdAt"`
}

// CreateTaskInput is the body of a create. Any id or createdAt sent by the
// client is not decoded.
type CreateTaskInput struct {
	Title       *string `json:"title"`
	Description *string `json:"description"`
	Completed   bool    `json:"completed"`
	Priority    *string `json:"priority"`
}

// ReplaceTaskInput is the body of a full replace. Omitted fields reset to
// null or false.
type ReplaceTaskInput struct {
	Title       *string `json:"title"`
	Description *string `json:"description"`
	Completed   bool    `json:"completed"`
	Priority    *string `json:"priority"`
}

// PatchTaskInput is the body of a partial update.
type PatchTaskInput struct {
	Completed *bool
}

var errNotObject = errors.New("body must be a JSON object")

// Decode implements web.Decoder. The body must be an object but only a
// boolean "completed" is taken from it; other keys and values are ignored.
func (p *PatchTaskInput) Decode(data []byte) error {
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(data, &fields); err != nil || fields == nil {
		return errNotObject
	}

	raw, ok := fields["completed"]
	if !ok {
		return nil
	}

	var completed *bool
	if err := json.Unmarshal(raw, &completed); err != nil {
		return nil
	}
	p.Completed = completed

	return nil
}
