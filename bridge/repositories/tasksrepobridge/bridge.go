package tasksrepobridge

import (
	"context"
	"errors"
	"net/http"

	"github.com/jrazmi/todolist/bridge/scaffolding/errs"
	"github.com/jrazmi/todolist/core/repositories/tasksrepo"
	"github.com/jrazmi/todolist/infrastructure/web"
)

// bridge provides HTTP handlers for Task operations.
type bridge struct {
	taskRepository *tasksrepo.Repository
}

// newBridge creates a new Task bridge
func newBridge(taskRepository *tasksrepo.Repository) *bridge {
	return &bridge{
		taskRepository: taskRepository,
	}
}

func (b *bridge) httpList(ctx context.Context, r *http.Request) web.Encoder {
	tasks, err := b.taskRepository.List(ctx)
	if err != nil {
		return errs.New(errs.InternalOnlyLog, err)
	}

	return web.NewJSONResponse(MarshalListToBridge(tasks))
}

func (b *bridge) httpGetByID(ctx context.Context, r *http.Request) web.Encoder {
	id, err := web.ParamInt64(r, "id")
	if err != nil {
		return errs.New(errs.InvalidArgument, err)
	}

	task, err := b.taskRepository.GetByID(ctx, id)
	if err != nil {
		return repositoryError(err)
	}

	return web.NewJSONResponse(MarshalToBridge(task))
}

func (b *bridge) httpCreate(ctx context.Context, r *http.Request) web.Encoder {
	var input CreateTaskInput
	if err := web.Decode(r, &input); err != nil {
		return errs.New(errs.InvalidArgument, err)
	}

	task, err := b.taskRepository.Create(ctx, MarshalCreateToRepository(input))
	if err != nil {
		return errs.New(errs.InternalOnlyLog, err)
	}

	return web.NewJSONResponse(MarshalToBridge(task))
}

func (b *bridge) httpReplace(ctx context.Context, r *http.Request) web.Encoder {
	id, err := web.ParamInt64(r, "id")
	if err != nil {
		return errs.New(errs.InvalidArgument, err)
	}

	var input ReplaceTaskInput
	if err := web.Decode(r, &input); err != nil {
		return errs.New(errs.InvalidArgument, err)
	}

	task, err := b.taskRepository.Replace(ctx, id, MarshalReplaceToRepository(input))
	if err != nil {
		return repositoryError(err)
	}

	return web.NewJSONResponse(MarshalToBridge(task))
}

func (b *bridge) httpPatch(ctx context.Context, r *http.Request) web.Encoder {
	id, err := web.ParamInt64(r, "id")
	if err != nil {
		return errs.New(errs.InvalidArgument, err)
	}

	var input PatchTaskInput
	if err := web.Decode(r, &input); err != nil {
		return errs.New(errs.InvalidArgument, err)
	}

	task, err := b.taskRepository.Update(ctx, id, MarshalPatchToRepository(input))
	if err != nil {
		return repositoryError(err)
	}

	return web.NewJSONResponse(MarshalToBridge(task))
}

func (b *bridge) httpDelete(ctx context.Context, r *http.Request) web.Encoder {
	id, err := web.ParamInt64(r, "id")
	if err != nil {
		return errs.New(errs.InvalidArgument, err)
	}

	if err := b.taskRepository.Delete(ctx, id); err != nil {
		return repositoryError(err)
	}

	return web.NewStatusResponse(http.StatusOK)
}

func repositoryError(err error) *errs.Error {
	if errors.Is(err, tasksrepo.ErrNotFound) {
		return errs.New(errs.NotFound, err)
	}
	return errs.New(errs.InternalOnlyLog, err)
}
