package cli

import (
	"context"
	"fmt"
	"strings"

	"task-manager/internal/domain"
	apperrors "task-manager/internal/errors"
)

// ListCommand handles the list command. At most one filter may be set.
type ListCommand struct {
	app       *App
	Date      string
	Priority  string
	Completed string
}

// NewListCommand creates a new list command handler
func NewListCommand(app *App) *ListCommand {
	return &ListCommand{app: app}
}

// Execute lists all tasks, or the tasks matching the one filter given
func (c *ListCommand) Execute(ctx context.Context, args []string) error {
	filters := 0
	for _, value := range []string{c.Date, c.Priority, c.Completed} {
		if value != "" {
			filters++
		}
	}
	if filters > 1 {
		return c.app.errors.Handle("list tasks",
			apperrors.NewInvalidInputError("filter", filters, "use only one of --date, --priority or --completed"))
	}

	var err error
	switch {
	case c.Date != "":
		err = c.byDate(ctx, c.Date)
	case c.Priority != "":
		err = c.byPriority(ctx, c.Priority)
	case c.Completed != "":
		err = c.byCompletion(ctx, c.Completed)
	default:
		err = c.all(ctx)
	}
	return c.app.errors.Handle("list tasks", err)
}

// Interactive runs the view menu until the user goes back
func (c *ListCommand) Interactive(ctx context.Context) error {
	for {
		c.app.println()
		c.app.println("-- View Task --")
		c.app.println("1. View all tasks")
		c.app.println("2. Filter by Date")
		c.app.println("3. Filter by priority")
		c.app.println("4. Filter by completion status")
		c.app.println("0. Back")

		choice, err := c.app.prompt("Choose an option:")
		if err != nil {
			return err
		}

		switch strings.TrimSpace(choice) {
		case "1":
			err = c.all(ctx)
		case "2":
			err = c.promptFilter(ctx, "Enter date to filter by (YYYY-MM-DD):", c.byDate)
		case "3":
			err = c.promptFilter(ctx, "Enter the priority (1 to 3) to filter by:", c.byPriority)
		case "4":
			err = c.promptFilter(ctx, "Enter the completion status (true for completed, false for not completed):", c.byCompletion)
		case "0":
			return nil
		default:
			c.app.println("Invalid input")
			continue
		}

		if err != nil {
			if c.app.errors.IsUserError(err) {
				c.app.println(c.app.errors.UserMessage(err))
				continue
			}
			return c.app.errors.Handle("list tasks", err)
		}
	}
}

func (c *ListCommand) promptFilter(ctx context.Context, label string, filter func(context.Context, string) error) error {
	value, err := c.app.prompt(label)
	if err != nil {
		return err
	}
	return filter(ctx, value)
}

func (c *ListCommand) all(ctx context.Context) error {
	tasks, err := c.app.tasks.ViewAllTasks(ctx)
	if err != nil {
		return err
	}
	c.render(tasks, "==== All Tasks ====", "There are no tasks in the database.")
	return nil
}

func (c *ListCommand) byDate(ctx context.Context, value string) error {
	date, err := c.app.validator.ParseDueDate(value)
	if err != nil {
		return err
	}
	tasks, err := c.app.tasks.FilterByDate(ctx, date)
	if err != nil {
		return err
	}
	day := domain.FormatDate(date)
	c.render(tasks, fmt.Sprintf("Tasks due on %s:", day), fmt.Sprintf("No tasks found for %s", day))
	return nil
}

func (c *ListCommand) byPriority(ctx context.Context, value string) error {
	priority, err := c.app.validator.ParsePriority(value)
	if err != nil {
		return err
	}
	tasks, err := c.app.tasks.FilterByPriority(ctx, priority)
	if err != nil {
		return err
	}
	c.render(tasks,
		fmt.Sprintf("Tasks with priority %d (%s):", int(priority), priority),
		fmt.Sprintf("No tasks found for priority %d", int(priority)))
	return nil
}

func (c *ListCommand) byCompletion(ctx context.Context, value string) error {
	completed, err := c.app.validator.ParseCompleted(value)
	if err != nil {
		return err
	}
	tasks, err := c.app.tasks.FilterByCompletionStatus(ctx, completed)
	if err != nil {
		return err
	}
	c.render(tasks,
		fmt.Sprintf("Tasks with completion status %t:", completed),
		fmt.Sprintf("No tasks found with completion status %t", completed))
	return nil
}

func (c *ListCommand) render(tasks []*domain.Task, heading, empty string) {
	if len(tasks) == 0 {
		c.app.println(empty)
		return
	}
	c.app.println(heading)
	c.app.table().Render(c.app.out, tasks)
}
