package domain

import "time"

// Task represents a to-do item in the domain model.
// An ID of zero means the task has not been persisted yet.
type Task struct {
	ID        int64
	Title     string
	DueDate   time.Time
	Priority  Priority
	Completed bool
}

// NewTask creates an unsaved, not yet completed task.
func NewTask(title string, dueDate time.Time, priority Priority) Task {
	return Task{
		Title:     title,
		DueDate:   TruncateToDate(dueDate),
		Priority:  priority,
		Completed: false,
	}
}

// IsPersisted reports whether the store has assigned an id.
func (t Task) IsPersisted() bool {
	return t.ID > 0
}

// IsOverdue reports whether an open task was due before today.
func (t Task) IsOverdue(today time.Time) bool {
	return !t.Completed && t.DueDate.Before(TruncateToDate(today))
}

// String returns the task title for display purposes.
func (t Task) String() string {
	return t.Title
}
