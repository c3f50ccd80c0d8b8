package cli

import (
	"context"
	"fmt"

	"task-manager/internal/domain"
	"task-manager/internal/services"
	"task-manager/internal/validation"
)

// EditState is a step of the edit workflow
type EditState int

const (
	StateIdle EditState = iota
	StateSelectField
	StateValidateInput
	StatePersist
)

func (s EditState) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateSelectField:
		return "select field"
	case StateValidateInput:
		return "validate input"
	case StatePersist:
		return "persist"
	default:
		return fmt.Sprintf("state(%d)", int(s))
	}
}

// EditField is a task attribute the user can change
type EditField int

const (
	EditTitle EditField = iota + 1
	EditDueDate
	EditPriority
	EditCompleted
)

// EditFields lists the editable fields in menu order
var EditFields = []EditField{EditTitle, EditDueDate, EditPriority, EditCompleted}

func (f EditField) String() string {
	switch f {
	case EditTitle:
		return "Title"
	case EditDueDate:
		return "Due date"
	case EditPriority:
		return "Priority"
	case EditCompleted:
		return "Completion status"
	default:
		return fmt.Sprintf("field(%d)", int(f))
	}
}

// Prompt is the question asked when the field has been selected
func (f EditField) Prompt() string {
	switch f {
	case EditTitle:
		return "Enter the new title:"
	case EditDueDate:
		return "Enter the new due date (YYYY-MM-DD):"
	case EditPriority:
		return "Enter the new priority (1 being highest, 3 being lowest):"
	case EditCompleted:
		return "Has the task been completed? (true/false):"
	default:
		return ""
	}
}

// InvalidTransitionError is returned when an event does not apply to the current state
type InvalidTransitionError struct {
	State EditState
	Event string
}

func (e *InvalidTransitionError) Error() string {
	return fmt.Sprintf("cannot %s while in %s state", e.Event, e.State)
}

// EditWorkflow edits one field of a task at a time.
//
//	SelectField --select--> ValidateInput --valid input--> Persist --> Idle
//	ValidateInput --invalid input--> ValidateInput
//	ValidateInput --back--> SelectField --back--> Idle
//
// Each accepted value is written immediately as a full record update.
type EditWorkflow struct {
	tasks     services.TaskService
	validator *validation.TaskValidator
	task      domain.Task
	state     EditState
	field     EditField
}

// NewEditWorkflow starts a workflow for task in the SelectField state
func NewEditWorkflow(tasks services.TaskService, validator *validation.TaskValidator, task domain.Task) *EditWorkflow {
	return &EditWorkflow{
		tasks:     tasks,
		validator: validator,
		task:      task,
		state:     StateSelectField,
	}
}

// State returns the current state
func (w *EditWorkflow) State() EditState {
	return w.state
}

// Field returns the selected field, or zero when none is selected
func (w *EditWorkflow) Field() EditField {
	return w.field
}

// Task returns the workflow's copy of the task including persisted edits
func (w *EditWorkflow) Task() domain.Task {
	return w.task
}

// Restart begins another edit of the same task after the previous one finished
func (w *EditWorkflow) Restart() error {
	if w.state != StateIdle {
		return &InvalidTransitionError{State: w.state, Event: "restart"}
	}
	w.state = StateSelectField
	w.field = 0
	return nil
}

// SelectField chooses the field to edit
func (w *EditWorkflow) SelectField(field EditField) error {
	if w.state != StateSelectField {
		return &InvalidTransitionError{State: w.state, Event: "select a field"}
	}
	if field < EditTitle || field > EditCompleted {
		return fmt.Errorf("unknown field %d", int(field))
	}
	w.field = field
	w.state = StateValidateInput
	return nil
}

// Back leaves ValidateInput for SelectField, or SelectField for Idle, without persisting
func (w *EditWorkflow) Back() error {
	switch w.state {
	case StateValidateInput:
		w.field = 0
		w.state = StateSelectField
	case StateSelectField:
		w.state = StateIdle
	default:
		return &InvalidTransitionError{State: w.state, Event: "go back"}
	}
	return nil
}

// Submit validates input for the selected field and persists the changed task.
// Invalid input keeps the workflow in ValidateInput. A failed update returns to SelectField
// with the task unchanged.
func (w *EditWorkflow) Submit(ctx context.Context, input string) error {
	if w.state != StateValidateInput {
		return &InvalidTransitionError{State: w.state, Event: "submit input"}
	}

	updated, err := w.apply(input)
	if err != nil {
		return err
	}

	w.state = StatePersist
	if err := w.tasks.UpdateTask(ctx, &updated); err != nil {
		w.field = 0
		w.state = StateSelectField
		return err
	}

	w.task = updated
	w.field = 0
	w.state = StateIdle
	return nil
}

// apply returns a copy of the task with the selected field set from input.
// The whole record must be valid before it is written back.
func (w *EditWorkflow) apply(input string) (domain.Task, error) {
	updated, err := w.set(input)
	if err != nil {
		return updated, err
	}
	return updated, w.validator.ValidateTask(updated)
}

func (w *EditWorkflow) set(input string) (domain.Task, error) {
	updated := w.task
	var err error

	switch w.field {
	case EditTitle:
		updated.Title, err = w.validator.ParseTitle(input)
	case EditDueDate:
		updated.DueDate, err = w.validator.ParseDueDate(input)
	case EditPriority:
		updated.Priority, err = w.validator.ParsePriority(input)
	case EditCompleted:
		updated.Completed, err = w.validator.ParseCompleted(input)
	}

	return updated, err
}
