package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"task-manager/internal/config"
	"task-manager/internal/logging"
	"task-manager/internal/repository/sqlite"
	"task-manager/internal/services"
)

// StoreOpener opens the task store selected by cfg. The logger travels in ctx.
type StoreOpener func(ctx context.Context, cfg *config.Config) (sqlite.Repository, error)

// RootCommand represents the base command when called without any subcommands
type RootCommand struct {
	cmd    *cobra.Command
	config *config.Config
	open   StoreOpener
	app    *App
	repo   sqlite.Repository
}

// NewRootCommand creates the root cobra command with global flags.
// The store is opened by open once flags have been applied to cfg.
func NewRootCommand(cfg *config.Config, open StoreOpener) *RootCommand {
	if cfg == nil {
		cfg = config.NewConfig()
	}
	root := &RootCommand{
		config: cfg,
		open:   open,
	}

	root.cmd = &cobra.Command{
		Use:   "td",
		Short: "A command-line task manager",
		Long: `Task Manager (td) keeps a list of tasks with a due date, a priority and a completion flag.

EXAMPLES:
  td add "Write report" --due 2025-04-22 --priority 1
  td list                                  # All tasks ordered by due date
  td list --date 2025-04-22                # Tasks due on a day
  td list --priority 1                     # High priority tasks
  td list --completed false                # Open tasks
  td show 3                                # One task
  td edit 3 --title "Write final report" --completed true
  td delete 3                              # Asks for confirmation
  td summary                               # Counts for today
  td export --format yaml --output tasks.yaml
  td menu                                  # Interactive menu
  td migrate status                        # Schema version of the database

CONFIGURATION:
  Configuration follows this priority order: command-line flags > environment variables > defaults

  Database Configuration:
    TD_DB_DIR                              Database directory (default: ~/.td)
    TD_DB_FILENAME                         Database filename (default: tasks.db)
    TD_DB_DIR_PERMISSIONS                  Directory permissions (default: 0755)

  Validation Configuration:
    TD_VALIDATION_TITLE_MIN                Min title length (default: 1)
    TD_VALIDATION_TITLE_MAX                Max title length (default: 255)

  Display Configuration:
    TD_DISPLAY_TITLE_WIDTH                 Title column width (default: 20)

  Application Configuration:
    TD_APP_VERBOSE                         Enable verbose output (default: false)
    TD_LOG_LEVEL                           Log level (default: warn)
    TD_ENV                                 production, development or testing (default: production)
    TD_DEBUG                               Enable debug logging when set

  Export Configuration:
    TD_EXPORT_DEFAULT_FORMAT               csv, yaml or pdf (default: csv)`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return root.setup(cmd)
		},
	}

	root.addGlobalFlags()
	root.addSubcommands()

	return root
}

// Command returns the underlying cobra command
func (r *RootCommand) Command() *cobra.Command {
	return r.cmd
}

// Execute runs the root command and closes the store afterwards
func (r *RootCommand) Execute(ctx context.Context) error {
	err := r.cmd.ExecuteContext(ctx)
	if r.repo != nil {
		if closeErr := r.repo.Close(); closeErr != nil && err == nil {
			err = closeErr
		}
		r.repo = nil
	}
	return err
}

// addGlobalFlags adds global configuration flags
func (r *RootCommand) addGlobalFlags() {
	flags := r.cmd.PersistentFlags()

	// Database configuration
	flags.String("db-dir", "", "Database directory (overrides TD_DB_DIR)")
	flags.String("db-filename", "", "Database filename (overrides TD_DB_FILENAME)")

	// Validation configuration
	flags.Int("title-min-length", 0, "Minimum title length (overrides TD_VALIDATION_TITLE_MIN)")
	flags.Int("title-max-length", 0, "Maximum title length (overrides TD_VALIDATION_TITLE_MAX)")

	// Display configuration
	flags.Int("title-width", 0, "Title column width (overrides TD_DISPLAY_TITLE_WIDTH)")

	// Application configuration
	flags.Bool("verbose", false, "Enable verbose output (overrides TD_APP_VERBOSE)")
	flags.String("log-level", "", "Log level (overrides TD_LOG_LEVEL)")
	flags.String("env", "", "Environment (overrides TD_ENV)")

	// Export configuration
	flags.String("export-format", "", "Default export format (overrides TD_EXPORT_DEFAULT_FORMAT)")
}

// overridesFromFlags collects the flags that were set explicitly
func (r *RootCommand) overridesFromFlags(cmd *cobra.Command) *config.ConfigOverrides {
	flags := cmd.Flags()
	overrides := &config.ConfigOverrides{}

	if flags.Changed("db-dir") {
		v, _ := flags.GetString("db-dir")
		overrides.DBDir = &v
	}
	if flags.Changed("db-filename") {
		v, _ := flags.GetString("db-filename")
		overrides.DBFilename = &v
	}
	if flags.Changed("title-min-length") {
		v, _ := flags.GetInt("title-min-length")
		overrides.TitleMinLength = &v
	}
	if flags.Changed("title-max-length") {
		v, _ := flags.GetInt("title-max-length")
		overrides.TitleMaxLength = &v
	}
	if flags.Changed("title-width") {
		v, _ := flags.GetInt("title-width")
		overrides.TitleWidth = &v
	}
	if flags.Changed("verbose") {
		v, _ := flags.GetBool("verbose")
		overrides.Verbose = &v
	}
	if flags.Changed("log-level") {
		v, _ := flags.GetString("log-level")
		overrides.LogLevel = &v
	}
	if flags.Changed("env") {
		v, _ := flags.GetString("env")
		overrides.Env = &v
	}
	if flags.Changed("export-format") {
		v, _ := flags.GetString("export-format")
		overrides.ExportFormat = &v
	}

	return overrides
}

// setup applies flag overrides, configures logging and opens the store
func (r *RootCommand) setup(cmd *cobra.Command) error {
	if !needsStore(cmd) {
		return nil
	}

	r.config.ApplyOverrides(r.overridesFromFlags(cmd))
	if err := r.config.Validate(); err != nil {
		return err
	}

	logger := logging.New(cmd.ErrOrStderr(), logging.Options{
		Level:   r.config.Application.LogLevel,
		Verbose: r.config.Application.Verbose,
		Console: true,
	})
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	ctx = logger.WithContext(ctx)
	cmd.SetContext(ctx)

	if r.open == nil {
		return fmt.Errorf("no task store configured")
	}
	repo, err := r.open(ctx, r.config)
	if err != nil {
		return err
	}
	r.repo = repo
	r.app = NewApp(services.NewServiceContainer(repo, logger), r.config, cmd.InOrStdin(), cmd.OutOrStdout())
	return nil
}

// needsStore reports whether cmd is one of ours rather than a help or completion command
func needsStore(cmd *cobra.Command) bool {
	for c := cmd; c != nil; c = c.Parent() {
		switch c.Name() {
		case "help", "completion", cobra.ShellCompRequestCmd, cobra.ShellCompNoDescRequestCmd:
			return false
		}
	}
	return true
}

// addSubcommands adds all CLI subcommands to the root command
func (r *RootCommand) addSubcommands() {
	// Add command
	add := &AddCommand{}
	addCmd := &cobra.Command{
		Use:   "add [title]",
		Short: "Add a new task",
		Long: `Add a new task. The task starts out not completed.

Examples:
  td add "Write report" --due 2025-04-22 --priority 1`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			add.app = r.app
			return add.Execute(cmd.Context(), args)
		},
	}
	addCmd.Flags().StringVar(&add.DueDate, "due", "", "Due date (YYYY-MM-DD)")
	addCmd.Flags().StringVar(&add.Priority, "priority", "", "Priority: 1 (High), 2 (Medium) or 3 (Low)")
	_ = addCmd.MarkFlagRequired("due")
	_ = addCmd.MarkFlagRequired("priority")

	// List command
	list := &ListCommand{}
	listCmd := &cobra.Command{
		Use:   "list",
		Short: "List tasks",
		Long: `List all tasks ordered by due date, or filter them by one criterion.

Examples:
  td list                    # All tasks
  td list --date 2025-04-22  # Tasks due on a day
  td list --priority 2       # Medium priority tasks
  td list --completed true   # Completed tasks`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			list.app = r.app
			return list.Execute(cmd.Context(), args)
		},
	}
	listCmd.Flags().StringVar(&list.Date, "date", "", "Only tasks due on this date (YYYY-MM-DD)")
	listCmd.Flags().StringVar(&list.Priority, "priority", "", "Only tasks with this priority (1-3)")
	listCmd.Flags().StringVar(&list.Completed, "completed", "", "Only tasks with this completion status (true/false)")

	// Show command
	showCmd := &cobra.Command{
		Use:   "show [id]",
		Short: "Show a task",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return NewShowCommand(r.app).Execute(cmd.Context(), args)
		},
	}

	// Edit command
	editCmd := &cobra.Command{
		Use:   "edit [id]",
		Short: "Edit a task",
		Long: `Edit one or more fields of a task. Each field is saved as soon as it is accepted.

Examples:
  td edit 3 --title "Write final report"
  td edit 3 --due 2025-05-01 --priority 2
  td edit 3 --completed true`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			edit := NewEditCommand(r.app)
			for _, field := range []struct {
				flag  string
				field EditField
			}{
				{"title", EditTitle},
				{"due", EditDueDate},
				{"priority", EditPriority},
				{"completed", EditCompleted},
			} {
				if cmd.Flags().Changed(field.flag) {
					edit.Changes[field.field], _ = cmd.Flags().GetString(field.flag)
				}
			}
			return edit.Execute(cmd.Context(), args)
		},
	}
	editCmd.Flags().String("title", "", "New title")
	editCmd.Flags().String("due", "", "New due date (YYYY-MM-DD)")
	editCmd.Flags().String("priority", "", "New priority (1-3)")
	editCmd.Flags().String("completed", "", "New completion status (true/false)")

	// Delete command
	del := &DeleteCommand{}
	deleteCmd := &cobra.Command{
		Use:   "delete [id]",
		Short: "Delete a task",
		Long: `Delete a task. This operation cannot be undone, so you will be asked
to confirm unless --yes is given.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			del.app = r.app
			return del.Execute(cmd.Context(), args)
		},
	}
	deleteCmd.Flags().BoolVarP(&del.Yes, "yes", "y", false, "Delete without asking for confirmation")

	// Summary command
	summaryCmd := &cobra.Command{
		Use:   "summary",
		Short: "Show task counts for today",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return NewSummaryCommand(r.app).Execute(cmd.Context(), args)
		},
	}

	// Export command
	exp := &ExportCommand{}
	exportCmd := &cobra.Command{
		Use:   "export",
		Short: "Export all tasks",
		Long: `Export all tasks as csv, yaml or pdf.

Examples:
  td export                                # csv to stdout
  td export --format pdf --output tasks.pdf`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			exp.app = r.app
			return exp.Execute(cmd.Context(), args)
		},
	}
	exportCmd.Flags().StringVarP(&exp.Format, "format", "f", "", "Export format: csv, yaml or pdf (default from TD_EXPORT_DEFAULT_FORMAT)")
	exportCmd.Flags().StringVarP(&exp.Output, "output", "o", "", "Write to this file instead of stdout")

	// Menu command
	menuCmd := &cobra.Command{
		Use:   "menu",
		Short: "Run the interactive menu",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return NewMenuCommand(r.app, NewCommandRegistry(r.app)).Execute(cmd.Context(), args)
		},
	}

	// Migrate command
	migrateCmd := &cobra.Command{
		Use:   "migrate",
		Short: "Inspect or revert the database schema",
		Long: `Inspect or revert the database schema.

Opening the database always applies pending migrations first, so reverted
migrations are applied again by the next td command. Revert before switching
to an older td release.

Examples:
  td migrate status
  td migrate down --steps 1`,
	}
	migrateStatusCmd := &cobra.Command{
		Use:   "status",
		Short: "Show the schema version",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			migrate, err := r.migrateCommand()
			if err != nil {
				return err
			}
			return migrate.Status(cmd.Context())
		},
	}
	var steps int
	migrateDownCmd := &cobra.Command{
		Use:   "down",
		Short: "Revert the newest migrations",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			migrate, err := r.migrateCommand()
			if err != nil {
				return err
			}
			migrate.Steps = steps
			return migrate.Down(cmd.Context())
		},
	}
	migrateDownCmd.Flags().IntVar(&steps, "steps", 1, "Number of migrations to revert")
	migrateCmd.AddCommand(migrateStatusCmd, migrateDownCmd)

	// Add all subcommands to root
	r.cmd.AddCommand(
		addCmd,
		listCmd,
		showCmd,
		editCmd,
		deleteCmd,
		summaryCmd,
		exportCmd,
		menuCmd,
		migrateCmd,
	)
}

// migrateCommand returns the migrate handler for the open store
func (r *RootCommand) migrateCommand() (*MigrateCommand, error) {
	migrator, ok := r.repo.(sqlite.Migrator)
	if !ok {
		return nil, fmt.Errorf("the task store does not support migrations")
	}
	return NewMigrateCommand(r.app, migrator), nil
}
