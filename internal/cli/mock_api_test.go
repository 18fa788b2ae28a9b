package cli

import (
	"context"
	"strings"
	"time"

	"tasker/internal/domain"
	"tasker/internal/errors"
	"tasker/internal/store"
	"tasker/internal/theme"
	"tasker/internal/validation"
)

// mockTaskAPI implements the TaskAPI interface for testing
type mockTaskAPI struct {
	tasks      map[int64]*domain.Task
	categories []string
	nextID     int64
	weather    store.WeatherStatus

	fetchByLocationCalls int
	fetchByCityCalls     int
	lastCity             string
	updateLocationCalls  int
	updateLocationErr    error
}

// newMockTaskAPI creates a new mock TaskAPI instance seeded with the
// default categories
func newMockTaskAPI() *mockTaskAPI {
	return &mockTaskAPI{
		tasks:      make(map[int64]*domain.Task),
		categories: append([]string(nil), domain.DefaultCategories...),
		nextID:     1,
		weather:    store.WeatherStatus{State: domain.WeatherIdle},
	}
}

func (m *mockTaskAPI) AddTask(ctx context.Context, title, description string, priority domain.Priority, category string, isOutdoor bool) (*domain.Task, error) {
	title = strings.TrimSpace(title)
	if title == "" {
		verr := validation.NewValidationError()
		verr.AddRequiredError("title")
		return nil, verr
	}
	if priority == "" {
		priority = domain.PriorityMedium
	}
	if !priority.IsValid() {
		verr := validation.NewValidationError()
		verr.AddInvalidValueError("priority", string(priority), "unknown priority level")
		return nil, verr
	}
	if strings.TrimSpace(category) == "" {
		category = domain.FallbackCategory
	}

	task := &domain.Task{
		ID:          m.nextID,
		Title:       title,
		Description: description,
		Priority:    priority,
		Category:    category,
		IsOutdoor:   isOutdoor,
	}
	m.tasks[task.ID] = task
	m.nextID++
	return task, nil
}

func (m *mockTaskAPI) RemoveTask(ctx context.Context, id int64) error {
	delete(m.tasks, id)
	return nil
}

func (m *mockTaskAPI) UpdateTask(ctx context.Context, id int64, update domain.TaskUpdate) error {
	task, exists := m.tasks[id]
	if !exists {
		return nil
	}
	if update.Title != nil && strings.TrimSpace(*update.Title) == "" {
		verr := validation.NewValidationError()
		verr.AddRequiredError("title")
		return verr
	}
	merged := update.Apply(*task)
	m.tasks[id] = &merged
	return nil
}

func (m *mockTaskAPI) ToggleComplete(ctx context.Context, id int64) error {
	if task, exists := m.tasks[id]; exists {
		task.Completed = !task.Completed
	}
	return nil
}

func (m *mockTaskAPI) SetPriority(ctx context.Context, id int64, priority domain.Priority) error {
	if !priority.IsValid() {
		return errors.NewValidationError("unknown priority level", nil)
	}
	if task, exists := m.tasks[id]; exists {
		task.Priority = priority
	}
	return nil
}

func (m *mockTaskAPI) AddCategory(ctx context.Context, name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil
	}
	for _, existing := range m.categories {
		if existing == name {
			return nil
		}
	}
	m.categories = append(m.categories, name)
	return nil
}

func (m *mockTaskAPI) RemoveCategory(ctx context.Context, name string) error {
	if domain.IsDefaultCategory(name) {
		return nil
	}
	kept := m.categories[:0]
	for _, existing := range m.categories {
		if existing != name {
			kept = append(kept, existing)
		}
	}
	m.categories = kept
	for _, task := range m.tasks {
		if task.Category == name {
			task.Category = domain.FallbackCategory
		}
	}
	return nil
}

func (m *mockTaskAPI) Tasks() []domain.Task {
	result := make([]domain.Task, 0, len(m.tasks))
	for _, task := range m.tasks {
		result = append(result, *task)
	}
	return result
}

func (m *mockTaskAPI) Categories() []string {
	return append([]string(nil), m.categories...)
}

func (m *mockTaskAPI) HasOutdoorTasks() bool {
	for _, task := range m.tasks {
		if task.IsOutdoor {
			return true
		}
	}
	return false
}

func (m *mockTaskAPI) Weather() store.WeatherStatus {
	return m.weather
}

func (m *mockTaskAPI) FetchWeatherByLocation(ctx context.Context) {
	m.fetchByLocationCalls++
	if m.weather.State == domain.WeatherIdle {
		m.weather = readyWeather("Resolved City")
	}
}

func (m *mockTaskAPI) FetchWeatherByCity(ctx context.Context, city string) {
	m.fetchByCityCalls++
	m.lastCity = city
	m.weather = readyWeather(city)
}

func (m *mockTaskAPI) RefreshWeather(ctx context.Context) {
	if m.weather.Snapshot != nil {
		m.FetchWeatherByLocation(ctx)
	}
}

func (m *mockTaskAPI) UpdateLocation(ctx context.Context) error {
	m.updateLocationCalls++
	if m.updateLocationErr != nil {
		return m.updateLocationErr
	}
	m.weather = readyWeather("Fresh City")
	return nil
}

func readyWeather(place string) store.WeatherStatus {
	return store.WeatherStatus{
		State: domain.WeatherReady,
		Snapshot: &domain.WeatherSnapshot{
			Temp:        18.5,
			ConditionID: 800,
			Condition:   "Clear",
			Place:       place,
			FetchedAt:   time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC),
		},
		LastUpdate: time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC),
	}
}

// mockSessionAPI implements the SessionAPI interface for testing
type mockSessionAPI struct {
	user        *domain.User
	logoutCalls int
}

func (m *mockSessionAPI) Login(ctx context.Context, username, email, password string) (*domain.User, error) {
	if email != "test@test.com" || password != "test123" {
		return nil, errors.NewCredentialsError()
	}
	m.user = &domain.User{Username: username, Email: email}
	return m.user, nil
}

func (m *mockSessionAPI) Logout(ctx context.Context) error {
	m.logoutCalls++
	m.user = nil
	return nil
}

func (m *mockSessionAPI) Current() *domain.User {
	return m.user
}

func (m *mockSessionAPI) IsAuthenticated() bool {
	return m.user != nil
}

// mockThemeAPI implements the ThemeAPI interface for testing
type mockThemeAPI struct {
	mode theme.Mode
}

func (m *mockThemeAPI) Current() theme.Mode {
	if m.mode == "" {
		return theme.ModeLight
	}
	return m.mode
}

func (m *mockThemeAPI) Set(ctx context.Context, mode theme.Mode) error {
	if mode.IsValid() {
		m.mode = mode
	}
	return nil
}

func (m *mockThemeAPI) Toggle(ctx context.Context) (theme.Mode, error) {
	if m.Current() == theme.ModeDark {
		m.mode = theme.ModeLight
	} else {
		m.mode = theme.ModeDark
	}
	return m.mode, nil
}

// setupTestApp builds an App over the mocks with a logged-in session
func setupTestApp() (*App, *mockTaskAPI, *mockSessionAPI, *mockThemeAPI) {
	tasks := newMockTaskAPI()
	session := &mockSessionAPI{user: &domain.User{Username: "alice", Email: "test@test.com"}}
	themes := &mockThemeAPI{}
	return NewApp(tasks, session, themes), tasks, session, themes
}

// setupLoggedOutApp builds an App over the mocks with no session
func setupLoggedOutApp() (*App, *mockTaskAPI) {
	tasks := newMockTaskAPI()
	return NewApp(tasks, &mockSessionAPI{}, &mockThemeAPI{}), tasks
}
