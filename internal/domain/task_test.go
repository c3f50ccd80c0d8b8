package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewTask(t *testing.T) {
	due := time.Date(2025, time.April, 22, 9, 15, 0, 0, time.UTC)

	task := NewTask("Task 1", due, PriorityHigh)

	assert.Equal(t, int64(0), task.ID)
	assert.Equal(t, "Task 1", task.Title)
	assert.Equal(t, NewDate(2025, time.April, 22), task.DueDate)
	assert.Equal(t, PriorityHigh, task.Priority)
	assert.False(t, task.Completed)
	assert.False(t, task.IsPersisted())
}

func TestTask_IsOverdue(t *testing.T) {
	today := time.Date(2025, time.April, 23, 14, 0, 0, 0, time.UTC)

	assert.True(t, Task{DueDate: NewDate(2025, time.April, 22)}.IsOverdue(today))
	assert.False(t, Task{DueDate: NewDate(2025, time.April, 23)}.IsOverdue(today))
	assert.False(t, Task{DueDate: NewDate(2025, time.April, 22), Completed: true}.IsOverdue(today))
}

func TestTask_String(t *testing.T) {
	assert.Equal(t, "My Task", Task{ID: 1, Title: "My Task"}.String())
}

func TestPriority(t *testing.T) {
	tests := []struct {
		priority Priority
		valid    bool
		name     string
	}{
		{PriorityHigh, true, "High"},
		{PriorityMedium, true, "Medium"},
		{PriorityLow, true, "Low"},
		{Priority(0), false, "0"},
		{Priority(99), false, "99"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.valid, tt.priority.IsValid())
			assert.Equal(t, tt.name, tt.priority.String())
		})
	}
	assert.Equal(t, []Priority{1, 2, 3}, Priorities)
}

func TestParseAndFormatDate(t *testing.T) {
	d, err := ParseDate("2025-04-22")
	require.NoError(t, err)
	assert.Equal(t, NewDate(2025, time.April, 22), d)
	assert.Equal(t, "2025-04-22", FormatDate(d))

	_, err = ParseDate("22/04/2025")
	assert.Error(t, err)
	_, err = ParseDate("2025-02-30")
	assert.Error(t, err)
}

func TestTruncateToDate(t *testing.T) {
	zone := time.FixedZone("UTC+10", 10*3600)
	in := time.Date(2025, time.April, 22, 23, 59, 0, 0, zone)

	assert.Equal(t, NewDate(2025, time.April, 22), TruncateToDate(in))
	assert.True(t, TruncateToDate(time.Time{}).IsZero())
}
