package cli

import (
	"context"
	"strings"

	"task-manager/internal/validation"
)

// AddCommand handles the add command
type AddCommand struct {
	app      *App
	DueDate  string
	Priority string
}

// NewAddCommand creates a new add command handler
func NewAddCommand(app *App) *AddCommand {
	return &AddCommand{app: app}
}

// Execute adds a task titled by args using the DueDate and Priority options
func (c *AddCommand) Execute(ctx context.Context, args []string) error {
	input, err := c.app.validator.ParseNewTask(strings.Join(args, " "), c.DueDate, c.Priority)
	if err != nil {
		return c.app.errors.Handle("add task", err)
	}
	return c.add(ctx, input)
}

// Interactive asks for each field in turn until it is valid, then adds the task
func (c *AddCommand) Interactive(ctx context.Context) error {
	title, err := ask(c.app, "Enter the task title:", c.app.validator.ParseTitle)
	if err != nil {
		return err
	}
	priority, err := ask(c.app, "Enter the task priority (1 being highest, to 3 being lowest):", c.app.validator.ParsePriority)
	if err != nil {
		return err
	}
	dueDate, err := ask(c.app, "Enter the task due date (YYYY-MM-DD):", c.app.validator.ParseDueDate)
	if err != nil {
		return err
	}

	return c.add(ctx, validation.TaskInput{Title: title, DueDate: dueDate, Priority: priority})
}

func (c *AddCommand) add(ctx context.Context, input validation.TaskInput) error {
	task, err := c.app.tasks.AddTask(ctx, input.Title, input.DueDate, input.Priority)
	if err != nil {
		return c.app.errors.Handle("add task", err)
	}

	c.app.printf("Task added successfully (ID %d).\n", task.ID)
	return nil
}
