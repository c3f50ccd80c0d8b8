package services

import (
	"context"
	"time"

	"github.com/stretchr/testify/mock"

	"task-manager/internal/repository/sqlite"
)

// mockRepository is a testify mock of sqlite.Repository
type mockRepository struct {
	mock.Mock
}

var _ sqlite.Repository = (*mockRepository)(nil)

func (m *mockRepository) CreateTask(ctx context.Context, task *sqlite.Task) error {
	args := m.Called(ctx, task)
	return args.Error(0)
}

func (m *mockRepository) GetTask(ctx context.Context, id int64) (*sqlite.Task, error) {
	args := m.Called(ctx, id)
	task, _ := args.Get(0).(*sqlite.Task)
	return task, args.Error(1)
}

func (m *mockRepository) ListTasks(ctx context.Context) ([]*sqlite.Task, error) {
	args := m.Called(ctx)
	tasks, _ := args.Get(0).([]*sqlite.Task)
	return tasks, args.Error(1)
}

func (m *mockRepository) FilterTasksByDate(ctx context.Context, date time.Time) ([]*sqlite.Task, error) {
	args := m.Called(ctx, date)
	tasks, _ := args.Get(0).([]*sqlite.Task)
	return tasks, args.Error(1)
}

func (m *mockRepository) FilterTasksByPriority(ctx context.Context, priority int) ([]*sqlite.Task, error) {
	args := m.Called(ctx, priority)
	tasks, _ := args.Get(0).([]*sqlite.Task)
	return tasks, args.Error(1)
}

func (m *mockRepository) FilterTasksByCompletion(ctx context.Context, completed bool) ([]*sqlite.Task, error) {
	args := m.Called(ctx, completed)
	tasks, _ := args.Get(0).([]*sqlite.Task)
	return tasks, args.Error(1)
}

func (m *mockRepository) UpdateTask(ctx context.Context, task *sqlite.Task) error {
	args := m.Called(ctx, task)
	return args.Error(0)
}

func (m *mockRepository) DeleteTask(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *mockRepository) Close() error {
	args := m.Called()
	return args.Error(0)
}
