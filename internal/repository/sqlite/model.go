package sqlite

import "time"

// Task is a row of the tasks table. DueDate holds a calendar date at midnight UTC.
type Task struct {
	ID        int64
	Title     string
	DueDate   time.Time
	Priority  int
	Completed bool
}
