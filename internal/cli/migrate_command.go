package cli

import (
	"context"

	apperrors "task-manager/internal/errors"
	"task-manager/internal/repository/sqlite"
)

// MigrateCommand reports and reverts the schema version of the task store
type MigrateCommand struct {
	app      *App
	migrator sqlite.Migrator
	Steps    int
}

// NewMigrateCommand creates a migrate command for the store behind migrator
func NewMigrateCommand(app *App, migrator sqlite.Migrator) *MigrateCommand {
	return &MigrateCommand{app: app, migrator: migrator, Steps: 1}
}

// Status prints the current schema version and every applied migration
func (c *MigrateCommand) Status(ctx context.Context) error {
	versions, err := c.migrator.SchemaVersions(ctx)
	if err != nil {
		return c.app.errors.Handle("read schema version", err)
	}

	if len(versions) == 0 {
		c.app.println("Schema version: 0 (no migrations applied)")
		return nil
	}
	c.app.printf("Schema version: %d\n", versions[len(versions)-1])
	c.app.printf("Applied migrations: %v\n", versions)
	return nil
}

// Down reverts the newest Steps migrations
func (c *MigrateCommand) Down(ctx context.Context) error {
	if c.Steps < 1 {
		return c.app.errors.Handle("revert migrations",
			apperrors.NewInvalidInputError("steps", c.Steps, "must be at least 1"))
	}

	before, err := c.migrator.SchemaVersions(ctx)
	if err != nil {
		return c.app.errors.Handle("revert migrations", err)
	}
	if err := c.migrator.MigrateDown(ctx, c.Steps); err != nil {
		return c.app.errors.Handle("revert migrations", err)
	}
	after, err := c.migrator.SchemaVersions(ctx)
	if err != nil {
		return c.app.errors.Handle("revert migrations", err)
	}

	version := 0
	if len(after) > 0 {
		version = after[len(after)-1]
	}
	c.app.printf("Reverted %d migration(s). Schema version: %d\n", len(before)-len(after), version)
	return nil
}
