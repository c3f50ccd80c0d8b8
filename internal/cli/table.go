package cli

import (
	"fmt"
	"io"
	"strings"
	"unicode/utf8"

	"task-manager/internal/domain"
)

const (
	idWidth        = 6
	dueDateWidth   = 10
	priorityWidth  = 8
	completedWidth = 9
	minTitleWidth  = 5
)

// TaskTable renders tasks as a fixed-width text table
type TaskTable struct {
	titleWidth int
}

// NewTaskTable creates a table whose title column is titleWidth characters wide
func NewTaskTable(titleWidth int) *TaskTable {
	if titleWidth < minTitleWidth {
		titleWidth = minTitleWidth
	}
	return &TaskTable{titleWidth: titleWidth}
}

// Render writes the header, one row per task and the footer
func (t *TaskTable) Render(w io.Writer, tasks []*domain.Task) {
	border := t.border()
	fmt.Fprintln(w, border)
	fmt.Fprintln(w, t.header())
	fmt.Fprintln(w, border)
	for _, task := range tasks {
		fmt.Fprintln(w, t.Row(task))
	}
	fmt.Fprintln(w, border)
}

// Row formats a single task
func (t *TaskTable) Row(task *domain.Task) string {
	return fmt.Sprintf("| %-*d | %-*s | %-*s | %-*s | %-*t |",
		idWidth, task.ID,
		t.titleWidth, t.fitTitle(task.Title),
		dueDateWidth, domain.FormatDate(task.DueDate),
		priorityWidth, task.Priority,
		completedWidth, task.Completed,
	)
}

func (t *TaskTable) header() string {
	return fmt.Sprintf("| %-*s | %-*s | %-*s | %-*s | %-*s |",
		idWidth, "TaskID",
		t.titleWidth, "Title",
		dueDateWidth, "Due Date",
		priorityWidth, "Priority",
		completedWidth, "Completed",
	)
}

func (t *TaskTable) border() string {
	var b strings.Builder
	b.WriteString("+")
	for _, width := range []int{idWidth, t.titleWidth, dueDateWidth, priorityWidth, completedWidth} {
		b.WriteString(strings.Repeat("-", width+2))
		b.WriteString("+")
	}
	return b.String()
}

// fitTitle shortens titles wider than the column, marking the cut with "..."
func (t *TaskTable) fitTitle(title string) string {
	if utf8.RuneCountInString(title) <= t.titleWidth {
		return title
	}
	runes := []rune(title)
	return string(runes[:t.titleWidth-3]) + "..."
}
