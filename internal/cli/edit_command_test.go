package cli

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"task-manager/internal/domain"
	apperrors "task-manager/internal/errors"
	"task-manager/internal/validation"
)

func TestEditCommand_Execute(t *testing.T) {
	app, out, _ := setupTestApp(t, "")
	seedTasks(t, app)
	cmd := NewEditCommand(app)
	cmd.Changes[EditTitle] = "Task 1 revised"
	cmd.Changes[EditCompleted] = "true"

	require.NoError(t, cmd.Execute(context.Background(), []string{"1"}))
	assert.True(t, strings.HasPrefix(out.String(), "Task 1 updated.\n"))
	assert.Contains(t, out.String(), "Task 1 revised")

	task, err := app.loadTask(context.Background(), 1)
	require.NoError(t, err)
	assert.Equal(t, "Task 1 revised", task.Title)
	assert.True(t, task.Completed)
	assert.Equal(t, domain.NewDate(2025, time.April, 22), task.DueDate)
	assert.Equal(t, domain.PriorityHigh, task.Priority)
}

func TestEditCommand_ExecuteKeepsEarlierFieldsOnLaterFailure(t *testing.T) {
	app, _, _ := setupTestApp(t, "")
	seedTasks(t, app)
	cmd := NewEditCommand(app)
	cmd.Changes[EditTitle] = "Renamed"
	cmd.Changes[EditPriority] = "9"

	err := cmd.Execute(context.Background(), []string{"1"})
	require.Error(t, err)
	assert.True(t, validation.IsValidationError(err))

	task, err := app.loadTask(context.Background(), 1)
	require.NoError(t, err)
	assert.Equal(t, "Renamed", task.Title)
	assert.Equal(t, domain.PriorityHigh, task.Priority)
}

func TestEditCommand_ExecuteErrors(t *testing.T) {
	app, _, _ := setupTestApp(t, "")
	seedTasks(t, app)
	ctx := context.Background()

	err := NewEditCommand(app).Execute(ctx, []string{"1"})
	require.Error(t, err)
	assert.True(t, apperrors.IsErrorType(err, apperrors.ErrorTypeInvalidInput))

	cmd := NewEditCommand(app)
	cmd.Changes[EditTitle] = "Anything"
	err = cmd.Execute(ctx, []string{"42"})
	require.Error(t, err)
	assert.True(t, app.errors.IsNotFoundError(err))

	err = cmd.Execute(ctx, []string{"one"})
	require.Error(t, err)
	assert.True(t, validation.IsValidationError(err))
}

func TestEditCommand_Interactive(t *testing.T) {
	input := strings.Join([]string{
		"1",
		"2", "bad", "2025-06-01",
		"4", "maybe", "true",
		"7",
		"0",
	}, "\n") + "\n"
	app, out, _ := setupTestApp(t, input)
	seedTasks(t, app)

	require.NoError(t, NewEditCommand(app).Interactive(context.Background()))

	output := out.String()
	assert.Contains(t, output, "-- Task Details --")
	assert.Contains(t, output, "What would you like to edit?")
	assert.Contains(t, output, "Enter the new due date (YYYY-MM-DD):")
	assert.Contains(t, output, "due_date has invalid format, expected: YYYY-MM-DD")
	assert.Contains(t, output, "Due date updated.")
	assert.Contains(t, output, "Has the task been completed? (true/false):")
	assert.Contains(t, output, "completed has invalid format, expected: true or false")
	assert.Contains(t, output, "Completion status updated.")
	assert.Contains(t, output, "Invalid entry, please try again.")
	assert.True(t, strings.HasSuffix(output, "Returning to the previous menu.\n"))

	task, err := app.loadTask(context.Background(), 1)
	require.NoError(t, err)
	assert.Equal(t, domain.NewDate(2025, time.June, 1), task.DueDate)
	assert.True(t, task.Completed)
	assert.Equal(t, "Task 1", task.Title)
}

func TestEditCommand_InteractiveUnknownTask(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"42\n", "Task not found. Please try again."},
		{"x\n", "Invalid task ID. Please enter a valid number."},
	}

	for _, tt := range tests {
		t.Run(tt.expected, func(t *testing.T) {
			app, out, _ := setupTestApp(t, tt.input)
			seedTasks(t, app)

			require.NoError(t, NewEditCommand(app).Interactive(context.Background()))
			assert.Contains(t, out.String(), tt.expected)
			assert.NotContains(t, out.String(), "What would you like to edit?")
		})
	}
}
