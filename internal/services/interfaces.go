package services

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"task-manager/internal/domain"
	"task-manager/internal/repository/sqlite"
)

// Summary holds task counts for a given day
type Summary struct {
	Date       time.Time               `json:"date" yaml:"date"`
	Total      int                     `json:"total" yaml:"total"`
	Completed  int                     `json:"completed" yaml:"completed"`
	Pending    int                     `json:"pending" yaml:"pending"`
	Overdue    int                     `json:"overdue" yaml:"overdue"`
	DueToday   int                     `json:"due_today" yaml:"due_today"`
	ByPriority map[domain.Priority]int `json:"by_priority" yaml:"by_priority"`
}

// TaskService handles task lifecycle operations
type TaskService interface {
	// Create
	AddTask(ctx context.Context, title string, dueDate time.Time, priority domain.Priority) (*domain.Task, error)

	// Read
	ViewAllTasks(ctx context.Context) ([]*domain.Task, error)
	FilterByDate(ctx context.Context, date time.Time) ([]*domain.Task, error)
	FilterByPriority(ctx context.Context, priority domain.Priority) ([]*domain.Task, error)
	FilterByCompletionStatus(ctx context.Context, completed bool) ([]*domain.Task, error)
	GetTaskByID(ctx context.Context, id int64) (*domain.Task, error)

	// Update and delete
	UpdateTask(ctx context.Context, task *domain.Task) error
	DeleteTask(ctx context.Context, id int64) error
}

// ReportingService handles aggregate views over the task list
type ReportingService interface {
	GetSummary(ctx context.Context, today time.Time) (*Summary, error)
}

// ServiceContainer manages all services and their dependencies
type ServiceContainer struct {
	TaskService      TaskService
	ReportingService ReportingService
	Logger           zerolog.Logger
}

// NewServiceContainer wires every service to the same repository and logger
func NewServiceContainer(repo sqlite.Repository, log zerolog.Logger) *ServiceContainer {
	return &ServiceContainer{
		TaskService:      NewTaskService(repo, log),
		ReportingService: NewReportingService(repo),
		Logger:           log,
	}
}
