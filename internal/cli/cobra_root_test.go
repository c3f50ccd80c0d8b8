package cli

import (
	"bytes"
	"context"
	"errors"
	"path/filepath"
	"strings"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"task-manager/internal/config"
	apperrors "task-manager/internal/errors"
	"task-manager/internal/repository/sqlite"
)

// runTD executes td with args against a database in dir
func runTD(t *testing.T, dir, input string, args ...string) (string, error) {
	t.Helper()
	cfg := config.NewConfig()
	cfg.Database.Dir = dir
	return runRoot(t, NewRootCommand(cfg, config.CreateRepository), input, args...)
}

func runRoot(t *testing.T, root *RootCommand, input string, args ...string) (string, error) {
	t.Helper()
	var out, errOut bytes.Buffer
	cmd := root.Command()
	cmd.SetArgs(args)
	cmd.SetIn(strings.NewReader(input))
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)

	err := root.Execute(context.Background())
	return out.String(), err
}

func TestRootCommand_TaskLifecycle(t *testing.T) {
	dir := t.TempDir()

	output, err := runTD(t, dir, "", "add", "Write", "report", "--due", "2025-04-22", "--priority", "1")
	require.NoError(t, err)
	assert.Equal(t, "Task added successfully (ID 1).\n", output)

	output, err = runTD(t, dir, "", "add", "Call Bob", "--due", "2025-04-20", "--priority", "3")
	require.NoError(t, err)
	assert.Equal(t, "Task added successfully (ID 2).\n", output)

	output, err = runTD(t, dir, "", "list")
	require.NoError(t, err)
	assert.Less(t, strings.Index(output, "Call Bob"), strings.Index(output, "Write report"))

	output, err = runTD(t, dir, "", "edit", "1", "--completed", "true", "--priority", "2")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(output, "Task 1 updated.\n"))

	output, err = runTD(t, dir, "", "list", "--completed", "true")
	require.NoError(t, err)
	assert.Contains(t, output, "Write report")
	assert.Contains(t, output, "Medium")
	assert.NotContains(t, output, "Call Bob")

	output, err = runTD(t, dir, "", "show", "2")
	require.NoError(t, err)
	assert.Contains(t, output, "Call Bob")

	output, err = runTD(t, dir, "no\n", "delete", "2")
	require.NoError(t, err)
	assert.Contains(t, output, "Task deletion cancelled.")

	output, err = runTD(t, dir, "", "delete", "2", "--yes")
	require.NoError(t, err)
	assert.Equal(t, "Task with task ID 2 deleted.\n", output)

	_, err = runTD(t, dir, "", "show", "2")
	require.Error(t, err)
	assert.True(t, apperrors.IsErrorType(err, apperrors.ErrorTypeNotFound))

	output, err = runTD(t, dir, "", "export", "--format", "yaml")
	require.NoError(t, err)
	assert.Contains(t, output, "title: Write report")
	assert.NotContains(t, output, "Call Bob")
}

func TestRootCommand_SummaryAndMenu(t *testing.T) {
	dir := t.TempDir()

	output, err := runTD(t, dir, "1\nFrom the menu\n2\n2025-04-22\n0\n", "menu")
	require.NoError(t, err)
	assert.Contains(t, output, "Task added successfully (ID 1).")
	assert.Contains(t, output, "Exiting...")

	output, err = runTD(t, dir, "", "summary")
	require.NoError(t, err)
	assert.Contains(t, output, "Total:     1\n")
	assert.Contains(t, output, "  Medium: 1\n")
}

func TestRootCommand_FlagOverrides(t *testing.T) {
	dir := t.TempDir()

	_, err := runTD(t, dir, "", "--db-filename", "other.db", "add", "Elsewhere", "--due", "2025-04-22", "--priority", "2")
	require.NoError(t, err)
	assert.FileExists(t, filepath.Join(dir, "other.db"))

	output, err := runTD(t, dir, "", "list")
	require.NoError(t, err)
	assert.Equal(t, "There are no tasks in the database.\n", output)

	output, err = runTD(t, dir, "", "--db-filename", "other.db", "--title-width", "5", "list")
	require.NoError(t, err)
	assert.Contains(t, output, "| El... |")
}

func TestRootCommand_InvalidConfiguration(t *testing.T) {
	opened := false
	root := NewRootCommand(config.NewConfig(), func(ctx context.Context, cfg *config.Config) (sqlite.Repository, error) {
		opened = true
		return config.CreateTestRepository()
	})

	_, err := runRoot(t, root, "", "--title-width", "2", "list")

	var cfgErr *config.ConfigError
	require.ErrorAs(t, err, &cfgErr)
	assert.Equal(t, "display.title_width", cfgErr.Field)
	assert.False(t, opened)
}

func TestRootCommand_TestingEnvironmentUsesMemory(t *testing.T) {
	dir := t.TempDir()

	_, err := runTD(t, dir, "", "--env", "testing", "add", "Ephemeral", "--due", "2025-04-22", "--priority", "1")
	require.NoError(t, err)
	assert.NoFileExists(t, filepath.Join(dir, "tasks.db"))
}

func TestRootCommand_OpenerError(t *testing.T) {
	root := NewRootCommand(config.NewConfig(), func(ctx context.Context, cfg *config.Config) (sqlite.Repository, error) {
		return nil, errors.New("cannot open store")
	})

	_, err := runRoot(t, root, "", "list")
	assert.EqualError(t, err, "cannot open store")
}

func TestRootCommand_ClosesStore(t *testing.T) {
	var repo sqlite.Repository
	root := NewRootCommand(config.NewConfig(), func(ctx context.Context, cfg *config.Config) (sqlite.Repository, error) {
		var err error
		repo, err = config.CreateTestRepository()
		return repo, err
	})

	_, err := runRoot(t, root, "", "list")
	require.NoError(t, err)
	require.NotNil(t, repo)

	_, err = repo.ListTasks(context.Background())
	assert.True(t, apperrors.IsStorageError(err))
}

func TestRootCommand_HelpDoesNotOpenStore(t *testing.T) {
	root := NewRootCommand(config.NewConfig(), func(ctx context.Context, cfg *config.Config) (sqlite.Repository, error) {
		t.Fatal("store opened for help")
		return nil, nil
	})

	output, err := runRoot(t, root, "", "help", "add")
	require.NoError(t, err)
	assert.Contains(t, output, "td add [title]")
}

func TestRootCommand_ArgumentErrors(t *testing.T) {
	dir := t.TempDir()

	_, err := runTD(t, dir, "", "add", "No due date", "--priority", "1")
	assert.Error(t, err)

	_, err = runTD(t, dir, "", "show")
	assert.Error(t, err)

	_, err = runTD(t, dir, "", "list", "--date", "2025-04-22", "--completed", "true")
	require.Error(t, err)
	assert.True(t, apperrors.IsErrorType(err, apperrors.ErrorTypeInvalidInput))
}

func TestRootCommand_MigrateStatusAndDown(t *testing.T) {
	dir := t.TempDir()

	output, err := runTD(t, dir, "", "migrate", "status")
	require.NoError(t, err)
	assert.Equal(t, "Schema version: 2\nApplied migrations: [1 2]\n", output)

	output, err = runTD(t, dir, "", "migrate", "down")
	require.NoError(t, err)
	assert.Equal(t, "Reverted 1 migration(s). Schema version: 1\n", output)

	// opening the store again reapplies the reverted migration
	output, err = runTD(t, dir, "", "migrate", "down", "--steps", "5")
	require.NoError(t, err)
	assert.Equal(t, "Reverted 2 migration(s). Schema version: 0\n", output)

	_, err = runTD(t, dir, "", "migrate", "down", "--steps", "0")
	require.Error(t, err)
	assert.True(t, apperrors.IsErrorType(err, apperrors.ErrorTypeInvalidInput))
}

func TestRootCommand_LoggerTravelsInContext(t *testing.T) {
	var level zerolog.Level
	root := NewRootCommand(config.NewConfig(), func(ctx context.Context, cfg *config.Config) (sqlite.Repository, error) {
		level = zerolog.Ctx(ctx).GetLevel()
		return config.CreateRepository(ctx, cfg)
	})
	root.config.Application.Env = config.Testing

	var out, errOut bytes.Buffer
	cmd := root.Command()
	cmd.SetArgs([]string{"--log-level", "debug", "add", "Logged", "--due", "2025-04-22", "--priority", "1"})
	cmd.SetIn(strings.NewReader(""))
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	t.Setenv("TD_DEBUG", "")

	require.NoError(t, root.Execute(context.Background()))
	assert.Equal(t, zerolog.DebugLevel, level)
	assert.Contains(t, errOut.String(), "opened task store")
	assert.Contains(t, errOut.String(), "task added")
}
