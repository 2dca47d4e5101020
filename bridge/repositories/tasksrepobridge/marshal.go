package tasksrepobridge

import (
	"github.com/jrazmi/todolist/core/repositories/tasksrepo"
)

// MarshalToBridge converts a core task to its JSON representation.
func MarshalToBridge(task tasksrepo.Task) Task {
	var id *int64
	if task.Persisted() {
		v := task.ID
		id = &v
	}

	return Task{
		ID:          id,
		Title:       task.Title,
		Description: task.Description,
		Completed:   task.Completed,
		Priority:    task.Priority,
		CreatedAt:   task.CreatedAt,
	}
}

// MarshalListToBridge converts a list of core models to bridge models
func MarshalListToBridge(tasks []tasksrepo.Task) []Task {
	bridgeTasks := make([]Task, len(tasks))
	for i, task := range tasks {
		bridgeTasks[i] = MarshalToBridge(task)
	}
	return bridgeTasks
}

// MarshalCreateToRepository converts bridge create input to repository input
func MarshalCreateToRepository(input CreateTaskInput) tasksrepo.CreateTask {
	return tasksrepo.CreateTask{
		Title:       input.Title,
		Description: input.Description,
		Completed:   input.Completed,
		Priority:    input.Priority,
	}
}

// MarshalReplaceToRepository converts bridge replace input to repository input
func MarshalReplaceToRepository(input ReplaceTaskInput) tasksrepo.ReplaceTask {
	return tasksrepo.ReplaceTask{
		Title:       input.Title,
		Description: input.Description,
		Completed:   input.Completed,
		Priority:    input.Priority,
	}
}

// MarshalPatchToRepository converts bridge patch input to repository input
func MarshalPatchToRepository(input PatchTaskInput) tasksrepo.UpdateTask {
	return tasksrepo.UpdateTask{
		Completed: input.Completed,
	}
}
