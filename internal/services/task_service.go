package services

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"task-manager/internal/domain"
	"task-manager/internal/repository/sqlite"
)

// taskServiceImpl implements the TaskService interface on top of an owned repository.
// Input is validated by the caller; every method is a thin pass-through to the store.
type taskServiceImpl struct {
	repo   sqlite.Repository
	mapper *domain.Mapper
	log    zerolog.Logger
}

// NewTaskService creates a new TaskService instance
func NewTaskService(repo sqlite.Repository, log zerolog.Logger) TaskService {
	return &taskServiceImpl{
		repo:   repo,
		mapper: domain.NewMapper(),
		log:    log,
	}
}

// AddTask stores a new, not yet completed task and returns it with its assigned id
func (t *taskServiceImpl) AddTask(ctx context.Context, title string, dueDate time.Time, priority domain.Priority) (*domain.Task, error) {
	task := domain.NewTask(title, dueDate, priority)
	dbTask := t.mapper.Task.ToDatabase(task)

	if err := t.repo.CreateTask(ctx, &dbTask); err != nil {
		return nil, err
	}

	created := t.mapper.Task.FromDatabase(dbTask)
	t.log.Debug().Int64("id", created.ID).Str("title", created.Title).Msg("task added")
	return &created, nil
}

// ViewAllTasks returns every task, soonest due first
func (t *taskServiceImpl) ViewAllTasks(ctx context.Context) ([]*domain.Task, error) {
	return t.list(t.repo.ListTasks(ctx))
}

// FilterByDate returns the tasks due on date
func (t *taskServiceImpl) FilterByDate(ctx context.Context, date time.Time) ([]*domain.Task, error) {
	return t.list(t.repo.FilterTasksByDate(ctx, date))
}

// FilterByPriority returns the tasks with exactly this priority
func (t *taskServiceImpl) FilterByPriority(ctx context.Context, priority domain.Priority) ([]*domain.Task, error) {
	return t.list(t.repo.FilterTasksByPriority(ctx, int(priority)))
}

// FilterByCompletionStatus returns completed or open tasks
func (t *taskServiceImpl) FilterByCompletionStatus(ctx context.Context, completed bool) ([]*domain.Task, error) {
	return t.list(t.repo.FilterTasksByCompletion(ctx, completed))
}

// GetTaskByID returns the task, or nil when no task has that id
func (t *taskServiceImpl) GetTaskByID(ctx context.Context, id int64) (*domain.Task, error) {
	dbTask, err := t.repo.GetTask(ctx, id)
	if err != nil || dbTask == nil {
		return nil, err
	}

	task := t.mapper.Task.FromDatabase(*dbTask)
	return &task, nil
}

// UpdateTask overwrites the stored task with the same id
func (t *taskServiceImpl) UpdateTask(ctx context.Context, task *domain.Task) error {
	dbTask := t.mapper.Task.ToDatabase(*task)
	if err := t.repo.UpdateTask(ctx, &dbTask); err != nil {
		return err
	}

	t.log.Debug().Int64("id", task.ID).Msg("task updated")
	return nil
}

// DeleteTask removes the task with id
func (t *taskServiceImpl) DeleteTask(ctx context.Context, id int64) error {
	if err := t.repo.DeleteTask(ctx, id); err != nil {
		return err
	}

	t.log.Debug().Int64("id", id).Msg("task deleted")
	return nil
}

func (t *taskServiceImpl) list(dbTasks []*sqlite.Task, err error) ([]*domain.Task, error) {
	if err != nil {
		return nil, err
	}
	return t.mapper.Task.FromDatabaseSlice(dbTasks), nil
}
