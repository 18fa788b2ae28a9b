package cli

import (
	"context"
	"fmt"
	"strconv"

	"tasker/internal/domain"
	"tasker/internal/store"
	"tasker/internal/theme"
)

// TaskAPI is the slice of the task store the command handlers use
type TaskAPI interface {
	AddTask(ctx context.Context, title, description string, priority domain.Priority, category string, isOutdoor bool) (*domain.Task, error)
	RemoveTask(ctx context.Context, id int64) error
	UpdateTask(ctx context.Context, id int64, update domain.TaskUpdate) error
	ToggleComplete(ctx context.Context, id int64) error
	SetPriority(ctx context.Context, id int64, priority domain.Priority) error
	AddCategory(ctx context.Context, name string) error
	RemoveCategory(ctx context.Context, name string) error
	Tasks() []domain.Task
	Categories() []string
	HasOutdoorTasks() bool
	Weather() store.WeatherStatus
	FetchWeatherByLocation(ctx context.Context)
	FetchWeatherByCity(ctx context.Context, city string)
	RefreshWeather(ctx context.Context)
	UpdateLocation(ctx context.Context) error
}

var _ TaskAPI = (*store.Store)(nil)

// SessionAPI is the slice of the auth store the command handlers use
type SessionAPI interface {
	Login(ctx context.Context, username, email, password string) (*domain.User, error)
	Logout(ctx context.Context) error
	Current() *domain.User
	IsAuthenticated() bool
}

// ThemeAPI is the slice of the theme store the command handlers use
type ThemeAPI interface {
	Current() theme.Mode
	Set(ctx context.Context, mode theme.Mode) error
	Toggle(ctx context.Context) (theme.Mode, error)
}

// App bundles the stores the command handlers depend on
type App struct {
	tasks   TaskAPI
	session SessionAPI
	theme   ThemeAPI
}

// NewApp creates a new CLI application instance with dependency injection
func NewApp(tasks TaskAPI, session SessionAPI, themes ThemeAPI) *App {
	return &App{
		tasks:   tasks,
		session: session,
		theme:   themes,
	}
}

// parseTaskID parses a task id argument
func parseTaskID(arg string) (int64, error) {
	id, err := strconv.ParseInt(arg, 10, 64)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("invalid task id: %s", arg)
	}
	return id, nil
}

// requireSession rejects protected commands when nobody is logged in
func (a *App) requireSession() error {
	if !a.session.IsAuthenticated() {
		return fmt.Errorf("not logged in: run 'tk login' first")
	}
	return nil
}
