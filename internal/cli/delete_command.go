package cli

import (
	"context"
	"strings"

	"task-manager/internal/domain"
	apperrors "task-manager/internal/errors"
)

// DeleteCommand handles the delete command
type DeleteCommand struct {
	app *App
	Yes bool
}

// NewDeleteCommand creates a new delete command handler
func NewDeleteCommand(app *App) *DeleteCommand {
	return &DeleteCommand{app: app}
}

// Execute deletes the task whose id is args[0], asking for confirmation unless Yes is set
func (c *DeleteCommand) Execute(ctx context.Context, args []string) error {
	id, err := c.app.validator.ParseTaskID(strings.Join(args, ""))
	if err != nil {
		return c.app.errors.Handle("delete task", err)
	}

	task, err := c.app.loadTask(ctx, id)
	if err != nil {
		return c.app.errors.Handle("delete task", err)
	}

	return c.confirmAndDelete(ctx, task)
}

// Interactive asks for the id of the task to delete
func (c *DeleteCommand) Interactive(ctx context.Context) error {
	input, err := c.app.prompt("Enter a task ID for the task you would like to delete:")
	if err != nil {
		return err
	}

	id, err := c.app.validator.ParseTaskID(input)
	if err != nil {
		c.app.println("Invalid ID, please enter a valid number.")
		return nil
	}

	task, err := c.app.loadTask(ctx, id)
	if err != nil {
		if c.app.errors.IsNotFoundError(err) {
			c.app.printf("Task with task ID %d not found.\n", id)
			return nil
		}
		return c.app.errors.Handle("delete task", err)
	}

	return c.confirmAndDelete(ctx, task)
}

func (c *DeleteCommand) confirmAndDelete(ctx context.Context, task *domain.Task) error {
	if !c.Yes {
		c.app.println("Are you sure you want to delete the following task?")
		c.app.table().Render(c.app.out, []*domain.Task{task})

		answer, err := c.app.prompt("Type 'yes' to confirm or 'no' to cancel:")
		if err != nil {
			return err
		}

		switch strings.ToLower(strings.TrimSpace(answer)) {
		case "yes":
		case "no":
			c.app.println("Task deletion cancelled.")
			return nil
		default:
			return c.app.errors.Handle("delete task",
				apperrors.NewInvalidInputError("confirmation", answer, "please type 'yes' or 'no'"))
		}
	}

	if err := c.app.tasks.DeleteTask(ctx, task.ID); err != nil {
		return c.app.errors.Handle("delete task", err)
	}

	c.app.printf("Task with task ID %d deleted.\n", task.ID)
	return nil
}
