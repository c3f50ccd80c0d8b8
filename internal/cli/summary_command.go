package cli

import (
	"context"

	"task-manager/internal/domain"
)

// SummaryCommand prints task counts for today
type SummaryCommand struct {
	app *App
}

// NewSummaryCommand creates a new summary command handler
func NewSummaryCommand(app *App) *SummaryCommand {
	return &SummaryCommand{app: app}
}

// Execute prints the summary. Arguments are ignored.
func (c *SummaryCommand) Execute(ctx context.Context, args []string) error {
	summary, err := c.app.reports.GetSummary(ctx, timeNow())
	if err != nil {
		return c.app.errors.Handle("summarize tasks", err)
	}

	c.app.printf("==== Summary for %s ====\n", domain.FormatDate(summary.Date))
	c.app.printf("Total:     %d\n", summary.Total)
	c.app.printf("Completed: %d\n", summary.Completed)
	c.app.printf("Pending:   %d\n", summary.Pending)
	c.app.printf("Overdue:   %d\n", summary.Overdue)
	c.app.printf("Due today: %d\n", summary.DueToday)
	c.app.println("By priority:")
	for _, priority := range domain.Priorities {
		c.app.printf("  %-7s %d\n", priority.String()+":", summary.ByPriority[priority])
	}
	return nil
}
