package cli

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	apperrors "task-manager/internal/errors"
	"task-manager/internal/repository/sqlite"
)

type mockMigrator struct {
	mock.Mock
}

func (m *mockMigrator) SchemaVersions(ctx context.Context) ([]int, error) {
	args := m.Called(ctx)
	versions, _ := args.Get(0).([]int)
	return versions, args.Error(1)
}

func (m *mockMigrator) MigrateDown(ctx context.Context, steps int) error {
	return m.Called(ctx, steps).Error(0)
}

func TestMigrateCommand_StatusEmpty(t *testing.T) {
	app, out, _ := setupTestApp(t, "")
	migrator := &mockMigrator{}
	migrator.On("SchemaVersions", mock.Anything).Return([]int{}, nil)

	require.NoError(t, NewMigrateCommand(app, migrator).Status(context.Background()))
	assert.Equal(t, "Schema version: 0 (no migrations applied)\n", out.String())
	migrator.AssertExpectations(t)
}

func TestMigrateCommand_DownFailure(t *testing.T) {
	app, out, _ := setupTestApp(t, "")
	migrator := &mockMigrator{}
	migrator.On("SchemaVersions", mock.Anything).Return([]int{1, 2}, nil).Once()
	migrator.On("MigrateDown", mock.Anything, 2).
		Return(apperrors.NewStorageError("revert migrations", errors.New("no migration file for applied version 2"))).Once()

	cmd := NewMigrateCommand(app, migrator)
	cmd.Steps = 2
	err := cmd.Down(context.Background())

	require.Error(t, err)
	assert.Equal(t, "failed to revert migrations: A storage error occurred. Please try again.", err.Error())
	assert.Empty(t, out.String())
	migrator.AssertExpectations(t)
}

func TestMigrateCommand_DownWithStore(t *testing.T) {
	app, out, repo := setupTestApp(t, "")
	migrator, ok := repo.(sqlite.Migrator)
	require.True(t, ok)

	require.NoError(t, NewMigrateCommand(app, migrator).Down(context.Background()))
	assert.Equal(t, "Reverted 1 migration(s). Schema version: 1\n", out.String())
}
