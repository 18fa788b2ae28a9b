package cli

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"tasker/internal/config"
)

// RootCommand represents the base command when called without any subcommands
type RootCommand struct {
	cmd    *cobra.Command
	app    *App
	config *config.Config
}

// NewRootCommand creates the root cobra command with global flags
func NewRootCommand(app *App, cfg *config.Config) *RootCommand {
	root := &RootCommand{
		app:    app,
		config: cfg,
	}

	root.cmd = &cobra.Command{
		Use:   "tk",
		Short: "A command-line task manager with weather-aware outdoor tasks",
		Long: `Tasker (tk) is a command-line task manager with category tagging,
priorities and weather annotations for outdoor tasks.

EXAMPLES:
  tk login -u alice -e test@test.com       # Log in (demo credentials)
  tk add "Buy milk" -c Shopping            # Add a task
  tk add "Mow lawn" -c Outdoor --outdoor   # Add an outdoor task
  tk list --status active --sort priority  # List open tasks by priority
  tk done 1724068526000                    # Toggle completion
  tk weather                               # Weather for your location
  tk weather London                        # Weather for a named city
  tk watch                                 # Keep weather fresh in the background

CONFIGURATION:
  Configuration follows this priority order: command-line flags > environment variables > defaults

  Storage Configuration:
    TK_STORAGE_DIR                         Storage directory (default: ~/.tk)
    TK_STORAGE_FILENAME                    Database filename (default: tasker.db)

  Weather Configuration:
    TK_WEATHER_API_KEY                     OpenWeatherMap API key (required for weather)
    TK_WEATHER_BASE_URL                    Weather API base URL
    TK_WEATHER_REFRESH_INTERVAL            Refresh interval for watch (default: 30m)
    TK_WEATHER_UNITS                       Units (default: metric)

  Location Configuration:
    TK_LATITUDE, TK_LONGITUDE              Fixed coordinates, skip IP lookup
    TK_LOCATION_TIMEOUT                    Geolocation timeout (default: 5s)

  Application Configuration:
    TK_APP_TIMEOUT                         Application timeout (default: 60s)
    TK_APP_VERBOSE                         Enable verbose output (default: false)

GETTING HELP:
  tk [command] --help                      # Get help for any specific command`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return root.getConfigFromFlags()
		},
	}

	root.addGlobalFlags()
	root.addSubcommands()

	return root
}

// Execute runs the root command
func (r *RootCommand) Execute() error {
	return r.cmd.Execute()
}

// addGlobalFlags adds global configuration flags
func (r *RootCommand) addGlobalFlags() {
	flags := r.cmd.PersistentFlags()

	flags.String("storage-dir", "", "Storage directory (overrides TK_STORAGE_DIR)")
	flags.String("storage-filename", "", "Database filename (overrides TK_STORAGE_FILENAME)")

	flags.String("weather-api-key", "", "OpenWeatherMap API key (overrides TK_WEATHER_API_KEY)")
	flags.Duration("refresh-interval", 0, "Weather refresh interval (overrides TK_WEATHER_REFRESH_INTERVAL)")

	flags.Float64("latitude", 0, "Fixed latitude (overrides TK_LATITUDE)")
	flags.Float64("longitude", 0, "Fixed longitude (overrides TK_LONGITUDE)")

	flags.Duration("app-timeout", 0, "Application timeout (overrides TK_APP_TIMEOUT)")
	flags.Bool("verbose", false, "Enable verbose output (overrides TK_APP_VERBOSE)")
}

// addSubcommands adds all CLI subcommands to the root command
func (r *RootCommand) addSubcommands() {
	var addOpts AddOptions
	addCmd := &cobra.Command{
		Use:   "add [title]",
		Short: "Add a new task",
		Long: `Add a new task. Title words are joined with spaces.

Examples:
  tk add "Buy milk"
  tk add Water plants -d "the ones on the balcony" -p high -c Home
  tk add "Mow lawn" -c Outdoor --outdoor`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := context.WithTimeout(context.Background(), r.getAppTimeout())
			defer cancel()

			return NewAddCommand(r.app).Execute(ctx, args, addOpts)
		},
	}
	addCmd.Flags().StringVarP(&addOpts.Description, "description", "d", "", "Task description")
	addCmd.Flags().StringVarP(&addOpts.Priority, "priority", "p", "", "Priority: low, medium or high")
	addCmd.Flags().StringVarP(&addOpts.Category, "category", "c", "", "Category name")
	addCmd.Flags().BoolVar(&addOpts.Outdoor, "outdoor", false, "Mark as an outdoor task")

	var listOpts ListOptions
	listCmd := &cobra.Command{
		Use:   "list",
		Short: "List tasks",
		Long: `List tasks with optional filtering and sorting. All filters combine.

Examples:
  tk list                                  # All tasks, newest first
  tk list --status active                  # Only open tasks
  tk list --search milk                    # Title, description and category search
  tk list --category Shopping --sort priority
  tk list --outdoor`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := context.WithTimeout(context.Background(), r.getAppTimeout())
			defer cancel()

			return NewListCommand(r.app).Execute(ctx, listOpts)
		},
	}
	listCmd.Flags().StringVar(&listOpts.Status, "status", "all", "Status filter: all, active or completed")
	listCmd.Flags().StringVar(&listOpts.Search, "search", "", "Case-insensitive text search")
	listCmd.Flags().StringVar(&listOpts.Category, "category", "", "Category filter")
	listCmd.Flags().BoolVar(&listOpts.Outdoor, "outdoor", false, "Only outdoor tasks")
	listCmd.Flags().StringVar(&listOpts.SortBy, "sort", "date", "Sort key: date, priority, category or completion")

	doneCmd := &cobra.Command{
		Use:   "done [task-id]",
		Short: "Toggle a task's completion",
		Long:  "Toggle a task between completed and open. Running it twice restores the original state.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := context.WithTimeout(context.Background(), r.getAppTimeout())
			defer cancel()

			return NewDoneCommand(r.app).Execute(ctx, args)
		},
	}

	rmCmd := &cobra.Command{
		Use:   "rm [task-id]",
		Short: "Remove a task",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := context.WithTimeout(context.Background(), r.getAppTimeout())
			defer cancel()

			return NewRemoveCommand(r.app).Execute(ctx, args)
		},
	}

	editCmd := &cobra.Command{
		Use:   "edit [task-id]",
		Short: "Edit a task's fields",
		Long: `Edit one or more fields of a task. Only the passed flags change.

Examples:
  tk edit 1724068526000 --title "Buy oat milk"
  tk edit 1724068526000 --priority high --outdoor=false`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := context.WithTimeout(context.Background(), r.getAppTimeout())
			defer cancel()

			return NewEditCommand(r.app).Execute(ctx, args, editOptionsFromFlags(cmd))
		},
	}
	editCmd.Flags().String("title", "", "New title")
	editCmd.Flags().String("description", "", "New description")
	editCmd.Flags().String("priority", "", "New priority: low, medium or high")
	editCmd.Flags().String("category", "", "New category")
	editCmd.Flags().Bool("outdoor", false, "Outdoor flag")

	priorityCmd := &cobra.Command{
		Use:   "priority [task-id] [level]",
		Short: "Set a task's priority",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := context.WithTimeout(context.Background(), r.getAppTimeout())
			defer cancel()

			return NewPriorityCommand(r.app).Execute(ctx, args)
		},
	}

	categoryCmd := &cobra.Command{
		Use:   "category",
		Short: "Manage categories",
	}
	categoryCmd.AddCommand(
		&cobra.Command{
			Use:   "add [name]",
			Short: "Add a category",
			Args:  cobra.MinimumNArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				ctx, cancel := context.WithTimeout(context.Background(), r.getAppTimeout())
				defer cancel()

				return NewCategoryCommand(r.app).ExecuteAdd(ctx, args)
			},
		},
		&cobra.Command{
			Use:   "rm [name]",
			Short: "Remove a category",
			Long:  "Remove a category. Its tasks are moved to the fallback category. Built-in categories cannot be removed.",
			Args:  cobra.MinimumNArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				ctx, cancel := context.WithTimeout(context.Background(), r.getAppTimeout())
				defer cancel()

				return NewCategoryCommand(r.app).ExecuteRemove(ctx, args)
			},
		},
		&cobra.Command{
			Use:   "list",
			Short: "List categories with task counts",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, args []string) error {
				ctx, cancel := context.WithTimeout(context.Background(), r.getAppTimeout())
				defer cancel()

				return NewCategoryCommand(r.app).ExecuteList(ctx)
			},
		},
	)

	weatherCmd := &cobra.Command{
		Use:   "weather [city]",
		Short: "Show current weather",
		Long: `Show the current weather for your resolved location, or for a named city.

Location resolution tries the cached location first, then configured
coordinates, then an IP-based lookup.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := context.WithTimeout(context.Background(), r.getAppTimeout())
			defer cancel()

			return NewWeatherCommand(r.app).Execute(ctx, args)
		},
	}

	locationCmd := &cobra.Command{
		Use:   "location",
		Short: "Manage the cached location",
	}
	locationCmd.AddCommand(&cobra.Command{
		Use:   "update",
		Short: "Discard the cached location and look it up again",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := context.WithTimeout(context.Background(), r.getAppTimeout())
			defer cancel()

			return NewLocationCommand(r.app).ExecuteUpdate(ctx)
		},
	})

	var loginUsername, loginEmail, loginPassword string
	loginCmd := &cobra.Command{
		Use:   "login",
		Short: "Log in",
		Long:  "Log in with username, email and password. Without --password the password is read from the terminal.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := context.WithTimeout(context.Background(), r.getAppTimeout())
			defer cancel()

			return NewSessionCommand(r.app).ExecuteLogin(ctx, loginUsername, loginEmail, loginPassword)
		},
	}
	loginCmd.Flags().StringVarP(&loginUsername, "username", "u", "", "Username")
	loginCmd.Flags().StringVarP(&loginEmail, "email", "e", "", "Email address")
	loginCmd.Flags().StringVar(&loginPassword, "password", "", "Password (prompted when omitted)")

	logoutCmd := &cobra.Command{
		Use:   "logout",
		Short: "Log out",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := context.WithTimeout(context.Background(), r.getAppTimeout())
			defer cancel()

			return NewSessionCommand(r.app).ExecuteLogout(ctx)
		},
	}

	whoamiCmd := &cobra.Command{
		Use:   "whoami",
		Short: "Show the logged-in user",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := context.WithTimeout(context.Background(), r.getAppTimeout())
			defer cancel()

			return NewSessionCommand(r.app).ExecuteWhoami(ctx)
		},
	}

	themeCmd := &cobra.Command{
		Use:   "theme [light|dark]",
		Short: "Toggle or set the display theme",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := context.WithTimeout(context.Background(), r.getAppTimeout())
			defer cancel()

			return NewThemeCommand(r.app).Execute(ctx, args)
		},
	}

	watchCmd := &cobra.Command{
		Use:   "watch",
		Short: "Keep weather data fresh while outdoor tasks exist",
		Long: `Run until interrupted, refreshing weather data on the configured
interval as long as at least one outdoor task exists.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			// No timeout: watch runs until interrupted
			return NewWatchCommand(r.app, r.getRefreshInterval()).Execute(context.Background())
		},
	}

	r.cmd.AddCommand(
		addCmd,
		listCmd,
		doneCmd,
		rmCmd,
		editCmd,
		priorityCmd,
		categoryCmd,
		weatherCmd,
		locationCmd,
		loginCmd,
		logoutCmd,
		whoamiCmd,
		themeCmd,
		watchCmd,
	)
}

// editOptionsFromFlags maps only the flags the user actually passed, so an
// untouched flag leaves the field unchanged
func editOptionsFromFlags(cmd *cobra.Command) EditOptions {
	var opts EditOptions
	flags := cmd.Flags()

	if flags.Changed("title") {
		v, _ := flags.GetString("title")
		opts.Title = &v
	}
	if flags.Changed("description") {
		v, _ := flags.GetString("description")
		opts.Description = &v
	}
	if flags.Changed("priority") {
		v, _ := flags.GetString("priority")
		opts.Priority = &v
	}
	if flags.Changed("category") {
		v, _ := flags.GetString("category")
		opts.Category = &v
	}
	if flags.Changed("outdoor") {
		v, _ := flags.GetBool("outdoor")
		opts.Outdoor = &v
	}
	return opts
}

// getAppTimeout returns the configured application timeout
func (r *RootCommand) getAppTimeout() time.Duration {
	if r.config != nil {
		return r.config.Application.Timeout
	}
	return 60 * time.Second
}

// getRefreshInterval returns the configured weather refresh interval
func (r *RootCommand) getRefreshInterval() time.Duration {
	if r.config != nil && r.config.Weather.RefreshInterval > 0 {
		return r.config.Weather.RefreshInterval
	}
	return 30 * time.Minute
}

// getConfigFromFlags updates the configuration with values from command-line flags
func (r *RootCommand) getConfigFromFlags() error {
	if r.config == nil {
		return fmt.Errorf("configuration not initialized")
	}

	flags := r.cmd.PersistentFlags()

	if storageDir, _ := flags.GetString("storage-dir"); storageDir != "" {
		r.config.Storage.Dir = storageDir
	}
	if storageFilename, _ := flags.GetString("storage-filename"); storageFilename != "" {
		r.config.Storage.Filename = storageFilename
	}

	if apiKey, _ := flags.GetString("weather-api-key"); apiKey != "" {
		r.config.Weather.APIKey = apiKey
	}
	if refreshInterval, _ := flags.GetDuration("refresh-interval"); refreshInterval > 0 {
		r.config.Weather.RefreshInterval = refreshInterval
	}

	if flags.Changed("latitude") {
		latitude, _ := flags.GetFloat64("latitude")
		r.config.Location.Latitude = &latitude
	}
	if flags.Changed("longitude") {
		longitude, _ := flags.GetFloat64("longitude")
		r.config.Location.Longitude = &longitude
	}

	if appTimeout, _ := flags.GetDuration("app-timeout"); appTimeout > 0 {
		r.config.Application.Timeout = appTimeout
	}
	if verbose, _ := flags.GetBool("verbose"); verbose {
		r.config.Application.Verbose = verbose
	}

	return nil
}
