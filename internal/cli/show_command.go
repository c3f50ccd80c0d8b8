package cli

import (
	"context"
	"strings"

	"task-manager/internal/domain"
)

// ShowCommand prints a single task
type ShowCommand struct {
	app *App
}

// NewShowCommand creates a new show command handler
func NewShowCommand(app *App) *ShowCommand {
	return &ShowCommand{app: app}
}

// Execute shows the task whose id is args[0]
func (c *ShowCommand) Execute(ctx context.Context, args []string) error {
	id, err := c.app.validator.ParseTaskID(strings.Join(args, ""))
	if err != nil {
		return c.app.errors.Handle("show task", err)
	}

	task, err := c.app.loadTask(ctx, id)
	if err != nil {
		return c.app.errors.Handle("show task", err)
	}

	c.app.table().Render(c.app.out, []*domain.Task{task})
	return nil
}
