package cli

import (
	"context"

	apperrors "task-manager/internal/errors"
)

// Command represents a CLI command
type Command interface {
	Execute(ctx context.Context, args []string) error
}

// InteractiveCommand is a command that can also gather its input by prompting
type InteractiveCommand interface {
	Command
	Interactive(ctx context.Context) error
}

// CommandRegistry manages all available commands
type CommandRegistry struct {
	commands map[string]Command
}

// NewCommandRegistry creates a new command registry
func NewCommandRegistry(app *App) *CommandRegistry {
	registry := &CommandRegistry{
		commands: make(map[string]Command),
	}

	// Register all commands
	registry.Register("add", NewAddCommand(app))
	registry.Register("list", NewListCommand(app))
	registry.Register("show", NewShowCommand(app))
	registry.Register("edit", NewEditCommand(app))
	registry.Register("delete", NewDeleteCommand(app))
	registry.Register("summary", NewSummaryCommand(app))
	registry.Register("export", NewExportCommand(app))

	return registry
}

// Register adds a command to the registry
func (r *CommandRegistry) Register(name string, command Command) {
	r.commands[name] = command
}

// Interactive runs the prompting form of the specified command
func (r *CommandRegistry) Interactive(ctx context.Context, commandName string) error {
	command, exists := r.commands[commandName]
	if !exists {
		return apperrors.NewInvalidInputError("command", commandName, "unknown command")
	}
	interactive, ok := command.(InteractiveCommand)
	if !ok {
		return apperrors.NewInvalidInputError("command", commandName, "command is not interactive")
	}
	return interactive.Interactive(ctx)
}
