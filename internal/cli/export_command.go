package cli

import (
	"bytes"
	"context"
	"os"
	"slices"
	"strings"

	"task-manager/internal/config"
	apperrors "task-manager/internal/errors"
	"task-manager/internal/export"
)

// ExportCommand writes every task to stdout or a file
type ExportCommand struct {
	app    *App
	Format string
	Output string
}

// NewExportCommand creates a new export command handler
func NewExportCommand(app *App) *ExportCommand {
	return &ExportCommand{app: app}
}

// Execute exports the tasks in Format, or the configured default format
func (c *ExportCommand) Execute(ctx context.Context, args []string) error {
	format := strings.ToLower(c.Format)
	if format == "" {
		format = c.app.config.Export.DefaultFormat
	}
	if !slices.Contains(config.ExportFormats, format) {
		return c.app.errors.Handle("export tasks",
			apperrors.NewInvalidInputError("format", c.Format, "must be one of "+strings.Join(config.ExportFormats, ", ")))
	}

	exporter := export.NewExporter(c.app.tasks)
	if c.Output == "" {
		if err := exporter.Export(ctx, c.app.out, format); err != nil {
			return c.app.errors.Handle("export tasks", err)
		}
		return nil
	}

	// the file is only created once the whole export has been rendered
	var buf bytes.Buffer
	if err := exporter.Export(ctx, &buf, format); err != nil {
		return c.app.errors.Handle("export tasks", err)
	}
	if err := os.WriteFile(c.Output, buf.Bytes(), 0o644); err != nil {
		return c.app.errors.Handle("export tasks", err)
	}

	c.app.printf("Tasks exported to %s.\n", c.Output)
	return nil
}
