package cli

import (
	"context"
	"errors"
	"io"
	"strings"
)

// menuOption is one numbered entry of the main menu
type menuOption struct {
	key     string
	label   string
	command string
}

var menuOptions = []menuOption{
	{key: "1", label: "Add Task", command: "add"},
	{key: "2", label: "View Task", command: "list"},
	{key: "3", label: "Edit Task", command: "edit"},
	{key: "4", label: "Delete Task", command: "delete"},
}

// MenuCommand runs the numbered main menu until the user exits
type MenuCommand struct {
	app      *App
	registry *CommandRegistry
}

// NewMenuCommand creates a menu backed by the commands in registry
func NewMenuCommand(app *App, registry *CommandRegistry) *MenuCommand {
	return &MenuCommand{app: app, registry: registry}
}

// Execute shows the menu until "0" is chosen or input runs out
func (c *MenuCommand) Execute(ctx context.Context, args []string) error {
	for {
		c.app.println()
		c.app.println("==== Task Manager Menu ====")
		for _, option := range menuOptions {
			c.app.printf("%s. %s\n", option.key, option.label)
		}
		c.app.println("0. Exit")

		choice, err := c.app.prompt("Choose an option:")
		if errors.Is(err, io.EOF) {
			return nil
		}
		if err != nil {
			return err
		}

		choice = strings.TrimSpace(choice)
		if choice == "0" {
			c.app.println("Exiting...")
			return nil
		}

		option, ok := c.find(choice)
		if !ok {
			c.app.println("Invalid input")
			continue
		}

		err = c.registry.Interactive(ctx, option.command)
		switch {
		case err == nil:
		case errors.Is(err, io.EOF):
			return nil
		case errors.Is(err, context.Canceled):
			return err
		default:
			c.app.printf("Error: %s\n", c.app.errors.UserMessage(err))
		}
	}
}

func (c *MenuCommand) find(key string) (menuOption, bool) {
	for _, option := range menuOptions {
		if option.key == key {
			return option, true
		}
	}
	return menuOption{}, false
}
