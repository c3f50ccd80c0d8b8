package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"task-manager/internal/config"
	"task-manager/internal/domain"
	apperrors "task-manager/internal/errors"
	"task-manager/internal/services"
	"task-manager/internal/validation"
)

// timeNow is a variable that can be replaced in tests
var timeNow = time.Now

// App holds the services and terminal streams shared by every command
type App struct {
	tasks     services.TaskService
	reports   services.ReportingService
	config    *config.Config
	validator *validation.TaskValidator
	errors    *ErrorHandler
	in        *bufio.Reader
	out       io.Writer
}

// NewApp creates a new CLI application instance with dependency injection
func NewApp(container *services.ServiceContainer, cfg *config.Config, in io.Reader, out io.Writer) *App {
	if cfg == nil {
		cfg = config.NewConfig()
	}
	return &App{
		tasks:     container.TaskService,
		reports:   container.ReportingService,
		config:    cfg,
		validator: validation.NewTaskValidatorWithConfig(cfg),
		errors:    NewErrorHandler(container.Logger),
		in:        bufio.NewReader(in),
		out:       out,
	}
}

func (a *App) printf(format string, args ...interface{}) {
	fmt.Fprintf(a.out, format, args...)
}

func (a *App) println(args ...interface{}) {
	fmt.Fprintln(a.out, args...)
}

// prompt prints label on its own line and reads one line of input without the line ending.
// io.EOF is returned only when no input is left at all.
func (a *App) prompt(label string) (string, error) {
	a.println(label)
	line, err := a.in.ReadString('\n')
	if err != nil && (err != io.EOF || line == "") {
		return "", err
	}
	return strings.TrimRight(line, "\r\n"), nil
}

// ask prompts until parse accepts the answer, printing why each rejected answer was invalid
func ask[T any](a *App, label string, parse func(string) (T, error)) (T, error) {
	for {
		line, err := a.prompt(label)
		if err != nil {
			var zero T
			return zero, err
		}

		value, err := parse(line)
		if err == nil {
			return value, nil
		}
		a.println(a.errors.UserMessage(err))
	}
}

// loadTask fetches a task, turning absence into a not found error
func (a *App) loadTask(ctx context.Context, id int64) (*domain.Task, error) {
	task, err := a.tasks.GetTaskByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if task == nil {
		return nil, apperrors.NewNotFoundError("task", strconv.FormatInt(id, 10))
	}
	return task, nil
}

// table returns a renderer sized by the display configuration
func (a *App) table() *TaskTable {
	return NewTaskTable(a.config.Display.TitleWidth)
}
