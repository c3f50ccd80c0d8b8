package cli

import (
	"context"
	"time"

	"github.com/stretchr/testify/mock"

	"task-manager/internal/domain"
)

type mockTaskService struct {
	mock.Mock
}

func (m *mockTaskService) AddTask(ctx context.Context, title string, dueDate time.Time, priority domain.Priority) (*domain.Task, error) {
	args := m.Called(ctx, title, dueDate, priority)
	task, _ := args.Get(0).(*domain.Task)
	return task, args.Error(1)
}

func (m *mockTaskService) ViewAllTasks(ctx context.Context) ([]*domain.Task, error) {
	args := m.Called(ctx)
	tasks, _ := args.Get(0).([]*domain.Task)
	return tasks, args.Error(1)
}

func (m *mockTaskService) FilterByDate(ctx context.Context, date time.Time) ([]*domain.Task, error) {
	args := m.Called(ctx, date)
	tasks, _ := args.Get(0).([]*domain.Task)
	return tasks, args.Error(1)
}

func (m *mockTaskService) FilterByPriority(ctx context.Context, priority domain.Priority) ([]*domain.Task, error) {
	args := m.Called(ctx, priority)
	tasks, _ := args.Get(0).([]*domain.Task)
	return tasks, args.Error(1)
}

func (m *mockTaskService) FilterByCompletionStatus(ctx context.Context, completed bool) ([]*domain.Task, error) {
	args := m.Called(ctx, completed)
	tasks, _ := args.Get(0).([]*domain.Task)
	return tasks, args.Error(1)
}

func (m *mockTaskService) GetTaskByID(ctx context.Context, id int64) (*domain.Task, error) {
	args := m.Called(ctx, id)
	task, _ := args.Get(0).(*domain.Task)
	return task, args.Error(1)
}

func (m *mockTaskService) UpdateTask(ctx context.Context, task *domain.Task) error {
	args := m.Called(ctx, task)
	return args.Error(0)
}

func (m *mockTaskService) DeleteTask(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}
