package cli

import (
	"context"
	"strconv"
	"strings"

	"task-manager/internal/domain"
	apperrors "task-manager/internal/errors"
)

// EditCommand handles the edit command
type EditCommand struct {
	app *App
	// Changes holds the new value of each field given on the command line
	Changes map[EditField]string
}

// NewEditCommand creates a new edit command handler
func NewEditCommand(app *App) *EditCommand {
	return &EditCommand{app: app, Changes: make(map[EditField]string)}
}

// Execute applies each change to the task whose id is args[0], one field at a time
func (c *EditCommand) Execute(ctx context.Context, args []string) error {
	id, err := c.app.validator.ParseTaskID(strings.Join(args, ""))
	if err != nil {
		return c.app.errors.Handle("edit task", err)
	}
	if len(c.Changes) == 0 {
		return c.app.errors.Handle("edit task",
			apperrors.NewInvalidInputError("fields", nil, "give at least one of --title, --due, --priority or --completed"))
	}

	task, err := c.app.loadTask(ctx, id)
	if err != nil {
		return c.app.errors.Handle("edit task", err)
	}

	workflow := NewEditWorkflow(c.app.tasks, c.app.validator, *task)
	for _, field := range EditFields {
		value, ok := c.Changes[field]
		if !ok {
			continue
		}
		if workflow.State() == StateIdle {
			if err := workflow.Restart(); err != nil {
				return err
			}
		}
		if err := workflow.SelectField(field); err != nil {
			return err
		}
		if err := workflow.Submit(ctx, value); err != nil {
			return c.app.errors.Handle("edit task", err)
		}
	}

	updated := workflow.Task()
	c.app.printf("Task %d updated.\n", updated.ID)
	c.app.table().Render(c.app.out, []*domain.Task{&updated})
	return nil
}

// Interactive asks for a task id, then edits fields until the user goes back
func (c *EditCommand) Interactive(ctx context.Context) error {
	input, err := c.app.prompt("Enter a task ID for the task you would like to edit:")
	if err != nil {
		return err
	}

	id, err := c.app.validator.ParseTaskID(input)
	if err != nil {
		c.app.println("Invalid task ID. Please enter a valid number.")
		return nil
	}

	task, err := c.app.loadTask(ctx, id)
	if err != nil {
		if c.app.errors.IsNotFoundError(err) {
			c.app.println("Task not found. Please try again.")
			return nil
		}
		return c.app.errors.Handle("edit task", err)
	}

	c.app.println()
	c.app.println("-- Task Details --")
	c.app.table().Render(c.app.out, []*domain.Task{task})

	workflow := NewEditWorkflow(c.app.tasks, c.app.validator, *task)
	for {
		if workflow.State() == StateIdle {
			if err := workflow.Restart(); err != nil {
				return err
			}
		}

		c.app.println("What would you like to edit?")
		for _, field := range EditFields {
			c.app.printf("%d. %s\n", int(field), field)
		}
		c.app.println("0. Back")

		choice, err := c.app.prompt("Choose an option:")
		if err != nil {
			return err
		}

		n, convErr := strconv.Atoi(strings.TrimSpace(choice))
		if convErr != nil || n < 0 || n > len(EditFields) {
			c.app.println("Invalid entry, please try again.")
			continue
		}
		if n == 0 {
			if err := workflow.Back(); err != nil {
				return err
			}
			c.app.println("Returning to the previous menu.")
			return nil
		}

		field := EditField(n)
		if err := workflow.SelectField(field); err != nil {
			return err
		}
		if err := c.submit(ctx, workflow, field); err != nil {
			return err
		}
	}
}

// submit asks for the selected field until the value is accepted and persisted
func (c *EditCommand) submit(ctx context.Context, workflow *EditWorkflow, field EditField) error {
	for workflow.State() == StateValidateInput {
		value, err := c.app.prompt(field.Prompt())
		if err != nil {
			return err
		}

		err = workflow.Submit(ctx, value)
		switch {
		case err == nil:
			c.app.printf("%s updated.\n", field)
		case c.app.errors.IsValidationError(err):
			c.app.println(c.app.errors.UserMessage(err))
		default:
			return c.app.errors.Handle("edit task", err)
		}
	}
	return nil
}
