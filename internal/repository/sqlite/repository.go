package sqlite

import (
	"context"
	"database/sql"
	"time"

	"github.com/rs/zerolog"

	apperrors "task-manager/internal/errors"
	"task-manager/internal/repository/sqlite/migrations"

	_ "modernc.org/sqlite"
)

const taskColumns = `id, title, due_date, priority, isCompleted`

// Repository defines the persistence operations over the tasks table
type Repository interface {
	// Create operations
	CreateTask(ctx context.Context, task *Task) error

	// Read operations
	GetTask(ctx context.Context, id int64) (*Task, error)
	ListTasks(ctx context.Context) ([]*Task, error)
	FilterTasksByDate(ctx context.Context, date time.Time) ([]*Task, error)
	FilterTasksByPriority(ctx context.Context, priority int) ([]*Task, error)
	FilterTasksByCompletion(ctx context.Context, completed bool) ([]*Task, error)

	// Update operations
	UpdateTask(ctx context.Context, task *Task) error

	// Delete operations
	DeleteTask(ctx context.Context, id int64) error

	// Utility
	Close() error
}

// Migrator manages the schema version of a store
type Migrator interface {
	SchemaVersions(ctx context.Context) ([]int, error)
	MigrateDown(ctx context.Context, steps int) error
}

// SQLiteRepository implements the Repository and Migrator interfaces
type SQLiteRepository struct {
	db *sql.DB
}

// New opens the database at dbPath and brings its schema up to date.
// The pool is capped at one connection, so ":memory:" databases stay a single database.
func New(ctx context.Context, dbPath string) (*SQLiteRepository, error) {
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, apperrors.NewStorageError("open database", err)
	}
	db.SetMaxOpenConns(1)

	if err := migrations.RunMigrations(ctx, db); err != nil {
		db.Close()
		return nil, apperrors.NewStorageError("run migrations", err)
	}

	zerolog.Ctx(ctx).Debug().Str("path", dbPath).Msg("opened task store")
	return &SQLiteRepository{db: db}, nil
}

// SchemaVersions lists the applied migration versions, oldest first
func (r *SQLiteRepository) SchemaVersions(ctx context.Context) ([]int, error) {
	versions, err := migrations.AppliedVersions(ctx, r.db)
	if err != nil {
		return nil, apperrors.NewStorageError("read schema versions", err)
	}
	return versions, nil
}

// MigrateDown reverts the newest steps migrations
func (r *SQLiteRepository) MigrateDown(ctx context.Context, steps int) error {
	if err := migrations.Rollback(ctx, r.db, steps); err != nil {
		return apperrors.NewStorageError("revert migrations", err)
	}
	return nil
}

// Close closes the database connection
func (r *SQLiteRepository) Close() error {
	return r.db.Close()
}

// CreateTask inserts a task and sets task.ID to the store-assigned id
func (r *SQLiteRepository) CreateTask(ctx context.Context, task *Task) error {
	query := `
	INSERT INTO tasks (title, due_date, priority, isCompleted)
	VALUES (?, ?, ?, ?)`

	id, err := ExecuteWithLastInsertID(ctx, r.db, query, task.Title, FormatDateForDB(task.DueDate), task.Priority, task.Completed)
	if err != nil {
		return err
	}

	task.ID = id
	return nil
}

// GetTask retrieves a task by ID, returning nil without error when it does not exist
func (r *SQLiteRepository) GetTask(ctx context.Context, id int64) (*Task, error) {
	query := `SELECT ` + taskColumns + ` FROM tasks WHERE id = ?`
	return QueryOptional(ctx, r.db, query, ScanTask, "task", id)
}

// ListTasks retrieves all tasks, soonest due date first
func (r *SQLiteRepository) ListTasks(ctx context.Context) ([]*Task, error) {
	query := `SELECT ` + taskColumns + ` FROM tasks ORDER BY due_date ASC, id ASC`
	return QueryMultiple(ctx, r.db, query, ScanTasks, "tasks")
}

// FilterTasksByDate retrieves tasks due on the given calendar day
func (r *SQLiteRepository) FilterTasksByDate(ctx context.Context, date time.Time) ([]*Task, error) {
	return r.filterTasks(ctx, "due_date = ?", FormatDateForDB(date))
}

// FilterTasksByPriority retrieves tasks with exactly the given priority; the value is not range checked
func (r *SQLiteRepository) FilterTasksByPriority(ctx context.Context, priority int) ([]*Task, error) {
	return r.filterTasks(ctx, "priority = ?", priority)
}

// FilterTasksByCompletion retrieves tasks whose completion flag matches
func (r *SQLiteRepository) FilterTasksByCompletion(ctx context.Context, completed bool) ([]*Task, error) {
	return r.filterTasks(ctx, "isCompleted = ?", completed)
}

func (r *SQLiteRepository) filterTasks(ctx context.Context, condition string, args ...interface{}) ([]*Task, error) {
	query := `SELECT ` + taskColumns + ` FROM tasks WHERE ` + condition + ` ORDER BY id ASC`
	return QueryMultiple(ctx, r.db, query, ScanTasks, "tasks", args...)
}

// UpdateTask overwrites every mutable field of the task with task.ID.
// An unknown id affects no rows and is not an error.
func (r *SQLiteRepository) UpdateTask(ctx context.Context, task *Task) error {
	query := `
	UPDATE tasks
	SET title = ?, due_date = ?, priority = ?, isCompleted = ?
	WHERE id = ?`

	rows, err := Execute(ctx, r.db, query, task.Title, FormatDateForDB(task.DueDate), task.Priority, task.Completed, task.ID)
	if err != nil {
		return err
	}
	if rows == 0 {
		zerolog.Ctx(ctx).Debug().Int64("id", task.ID).Msg("update matched no task")
	}
	return nil
}

// DeleteTask deletes a task by ID. An unknown id is not an error.
func (r *SQLiteRepository) DeleteTask(ctx context.Context, id int64) error {
	rows, err := Execute(ctx, r.db, `DELETE FROM tasks WHERE id = ?`, id)
	if err != nil {
		return err
	}
	if rows == 0 {
		zerolog.Ctx(ctx).Debug().Int64("id", id).Msg("delete matched no task")
	}
	return nil
}
