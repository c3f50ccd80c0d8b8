package services

import (
	"context"
	"time"

	"task-manager/internal/domain"
	"task-manager/internal/repository/sqlite"
)

// reportingServiceImpl implements the ReportingService interface
type reportingServiceImpl struct {
	repo   sqlite.Repository
	mapper *domain.Mapper
}

// NewReportingService creates a new ReportingService instance
func NewReportingService(repo sqlite.Repository) ReportingService {
	return &reportingServiceImpl{
		repo:   repo,
		mapper: domain.NewMapper(),
	}
}

// GetSummary counts tasks by status and priority relative to today
func (r *reportingServiceImpl) GetSummary(ctx context.Context, today time.Time) (*Summary, error) {
	dbTasks, err := r.repo.ListTasks(ctx)
	if err != nil {
		return nil, err
	}

	return Summarize(r.mapper.Task.FromDatabaseSlice(dbTasks), today), nil
}

// Summarize aggregates tasks into a Summary. Overdue and due-today only count open tasks.
func Summarize(tasks []*domain.Task, today time.Time) *Summary {
	day := domain.TruncateToDate(today)
	summary := &Summary{
		Date:       day,
		ByPriority: make(map[domain.Priority]int, len(domain.Priorities)),
	}
	for _, p := range domain.Priorities {
		summary.ByPriority[p] = 0
	}

	for _, task := range tasks {
		summary.Total++
		summary.ByPriority[task.Priority]++

		if task.Completed {
			summary.Completed++
			continue
		}

		summary.Pending++
		switch {
		case task.IsOverdue(day):
			summary.Overdue++
		case task.DueDate.Equal(day):
			summary.DueToday++
		}
	}

	return summary
}
