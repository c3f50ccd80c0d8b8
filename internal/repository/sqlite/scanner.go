package sqlite

import (
	"fmt"
)

// Scanner interface defines the common scanning behavior for both sql.Row and sql.Rows
type Scanner interface {
	Scan(dest ...interface{}) error
}

// Rows interface defines the common behavior for sql.Rows
type Rows interface {
	Next() bool
	Scan(dest ...interface{}) error
	Err() error
}

// ScanTask scans a single task from a row of (id, title, due_date, priority, isCompleted)
func ScanTask(scanner Scanner) (*Task, error) {
	task := &Task{}
	var dueDate string

	err := scanner.Scan(
		&task.ID,
		&task.Title,
		&dueDate,
		&task.Priority,
		&task.Completed,
	)
	if err != nil {
		return nil, err
	}

	task.DueDate, err = ParseDateFromDB(dueDate)
	if err != nil {
		return nil, fmt.Errorf("task %d has malformed due_date %q: %w", task.ID, dueDate, err)
	}

	return task, nil
}

// ScanTasks scans multiple tasks from database rows. An empty result is an empty, non-nil slice.
func ScanTasks(rows Rows) ([]*Task, error) {
	tasks := make([]*Task, 0)
	for rows.Next() {
		task, err := ScanTask(rows)
		if err != nil {
			return nil, err
		}
		tasks = append(tasks, task)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return tasks, nil
}
