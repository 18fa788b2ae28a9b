// Package store holds the authoritative in-memory state for tasks and
// categories and orchestrates the weather fetch lifecycle. Every mutation
// persists its touched keys synchronously before returning.
package store

import (
	"context"
	"encoding/json"
	"strings"
	"sync"
	"time"

	"tasker/internal/domain"
	"tasker/internal/errors"
	"tasker/internal/location"
	"tasker/internal/storage"
	"tasker/internal/validation"
	"tasker/internal/weather"
)

// LocationResolver produces a best-effort coordinate pair for the weather
// fetch. Reset clears any cached location.
type LocationResolver interface {
	Resolve(ctx context.Context) (domain.Coordinates, error)
	Reset(ctx context.Context) error
}

var _ LocationResolver = (*location.Resolver)(nil)

// Store is the authoritative owner of the task and category collections and
// the weather snapshot. A single mutex serializes mutations; the weather
// fetch releases it around network I/O.
type Store struct {
	mu        sync.Mutex
	kv        storage.Store
	client    weather.Client
	resolver  LocationResolver
	validator *validation.TaskValidator

	tasks      []domain.Task
	categories []string
	lastID     int64

	weatherState      domain.WeatherState
	snapshot          *domain.WeatherSnapshot
	weatherErr        string
	lastWeatherUpdate time.Time
	fetchSeq          uint64

	// now is replaceable in tests
	now func() time.Time
}

// New creates a Store and loads the persisted tasks and categories. Default
// categories are seeded when absent.
func New(ctx context.Context, kv storage.Store, client weather.Client, resolver LocationResolver) (*Store, error) {
	s := &Store{
		kv:           kv,
		client:       client,
		resolver:     resolver,
		validator:    validation.NewTaskValidator(),
		weatherState: domain.WeatherIdle,
		now:          time.Now,
	}

	if err := s.load(ctx); err != nil {
		return nil, err
	}
	return s, nil
}

// load reads the persisted collections into memory
func (s *Store) load(ctx context.Context) error {
	raw, ok, err := s.kv.Get(ctx, storage.KeyTasks)
	if err != nil {
		return err
	}
	if ok {
		if err := json.Unmarshal([]byte(raw), &s.tasks); err != nil {
			return errors.NewStorageError("decode tasks", err)
		}
	}
	for _, task := range s.tasks {
		if task.ID > s.lastID {
			s.lastID = task.ID
		}
	}

	raw, ok, err = s.kv.Get(ctx, storage.KeyCategories)
	if err != nil {
		return err
	}
	if ok {
		if err := json.Unmarshal([]byte(raw), &s.categories); err != nil {
			return errors.NewStorageError("decode categories", err)
		}
	}
	s.seedDefaultCategories()

	return nil
}

// seedDefaultCategories ensures every default category is present. Defaults
// survive even when the persisted collection predates them.
func (s *Store) seedDefaultCategories() {
	present := make(map[string]bool, len(s.categories))
	for _, name := range s.categories {
		present[name] = true
	}
	for _, name := range domain.DefaultCategories {
		if !present[name] {
			s.categories = append(s.categories, name)
		}
	}
}

// nextID derives a task id from the current time in milliseconds, bumped
// monotonically so two tasks created in the same millisecond never collide.
func (s *Store) nextID() int64 {
	id := s.now().UnixMilli()
	if id <= s.lastID {
		id = s.lastID + 1
	}
	s.lastID = id
	return id
}

// persistTasks writes the whole task collection. Callers hold the mutex.
func (s *Store) persistTasks(ctx context.Context) error {
	raw, err := json.Marshal(s.tasks)
	if err != nil {
		return errors.NewStorageError("encode tasks", err)
	}
	return s.kv.Set(ctx, storage.KeyTasks, string(raw))
}

// persistCategories writes the whole category collection. Callers hold the mutex.
func (s *Store) persistCategories(ctx context.Context) error {
	raw, err := json.Marshal(s.categories)
	if err != nil {
		return errors.NewStorageError("encode categories", err)
	}
	return s.kv.Set(ctx, storage.KeyCategories, string(raw))
}

// AddTask creates a new task and appends it to the collection. The title
// must be non-empty after trimming; the category falls back to the default
// when omitted.
func (s *Store) AddTask(ctx context.Context, title, description string, priority domain.Priority, category string, isOutdoor bool) (*domain.Task, error) {
	cleanTitle, err := s.validator.GetValidTitle(title)
	if err != nil {
		return nil, errors.NewValidationError("invalid task title", err)
	}
	if err := s.validator.ValidateDescription(description); err != nil {
		return nil, errors.NewValidationError("invalid task description", err)
	}

	if priority == "" {
		priority = domain.PriorityMedium
	}
	if err := s.validator.ValidatePriority(priority); err != nil {
		return nil, errors.NewValidationError("invalid task priority", err)
	}

	category = strings.TrimSpace(category)
	if category == "" {
		category = domain.FallbackCategory
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	task := domain.Task{
		ID:          s.nextID(),
		Title:       cleanTitle,
		Description: strings.TrimSpace(description),
		Priority:    priority,
		Category:    category,
		IsOutdoor:   isOutdoor,
	}
	s.tasks = append(s.tasks, task)

	if err := s.persistTasks(ctx); err != nil {
		s.tasks = s.tasks[:len(s.tasks)-1]
		return nil, err
	}
	return &task, nil
}

// RemoveTask removes the task with the given id. Removing an absent id is
// an idempotent no-op.
func (s *Store) RemoveTask(ctx context.Context, id int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i, task := range s.tasks {
		if task.ID == id {
			s.tasks = append(s.tasks[:i], s.tasks[i+1:]...)
			return s.persistTasks(ctx)
		}
	}
	return nil
}

// UpdateTask merges the non-nil fields of the update into the task with the
// given id. Updating an absent id is a no-op.
func (s *Store) UpdateTask(ctx context.Context, id int64, update domain.TaskUpdate) error {
	if update.Title != nil {
		cleanTitle, err := s.validator.GetValidTitle(*update.Title)
		if err != nil {
			return errors.NewValidationError("invalid task title", err)
		}
		update.Title = &cleanTitle
	}
	if update.Description != nil {
		if err := s.validator.ValidateDescription(*update.Description); err != nil {
			return errors.NewValidationError("invalid task description", err)
		}
	}
	if update.Priority != nil {
		if err := s.validator.ValidatePriority(*update.Priority); err != nil {
			return errors.NewValidationError("invalid task priority", err)
		}
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	for i, task := range s.tasks {
		if task.ID == id {
			s.tasks[i] = update.Apply(task)
			return s.persistTasks(ctx)
		}
	}
	return nil
}

// ToggleComplete flips the completion flag of the task with the given id.
// Toggling an absent id is a no-op.
func (s *Store) ToggleComplete(ctx context.Context, id int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i, task := range s.tasks {
		if task.ID == id {
			s.tasks[i].Completed = !task.Completed
			return s.persistTasks(ctx)
		}
	}
	return nil
}

// SetPriority sets the priority of the task with the given id. Setting on
// an absent id is a no-op.
func (s *Store) SetPriority(ctx context.Context, id int64, priority domain.Priority) error {
	if err := s.validator.ValidatePriority(priority); err != nil {
		return errors.NewValidationError("invalid task priority", err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	for i, task := range s.tasks {
		if task.ID == id {
			s.tasks[i].Priority = priority
			return s.persistTasks(ctx)
		}
	}
	return nil
}

// AddCategory appends a new category name. Empty names and names already
// present are no-ops; matching is case-sensitive and exact.
func (s *Store) AddCategory(ctx context.Context, name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil
	}
	cleanName, err := s.validator.GetValidCategoryName(name)
	if err != nil {
		return errors.NewValidationError("invalid category name", err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	for _, existing := range s.categories {
		if existing == cleanName {
			return nil
		}
	}
	s.categories = append(s.categories, cleanName)

	if err := s.persistCategories(ctx); err != nil {
		s.categories = s.categories[:len(s.categories)-1]
		return err
	}
	return nil
}

// RemoveCategory removes a custom category and reassigns its member tasks
// to the fallback category in the same logical step. Default categories and
// absent names are no-ops.
func (s *Store) RemoveCategory(ctx context.Context, name string) error {
	if domain.IsDefaultCategory(name) {
		return nil
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	index := -1
	for i, existing := range s.categories {
		if existing == name {
			index = i
			break
		}
	}
	if index < 0 {
		return nil
	}

	s.categories = append(s.categories[:index], s.categories[index+1:]...)
	for i, task := range s.tasks {
		if task.Category == name {
			s.tasks[i].Category = domain.FallbackCategory
		}
	}

	if err := s.persistCategories(ctx); err != nil {
		return err
	}
	return s.persistTasks(ctx)
}

// Tasks returns a copy of the task collection in insertion order
func (s *Store) Tasks() []domain.Task {
	s.mu.Lock()
	defer s.mu.Unlock()

	tasks := make([]domain.Task, len(s.tasks))
	copy(tasks, s.tasks)
	return tasks
}

// Categories returns a copy of the category names in insertion order
func (s *Store) Categories() []string {
	s.mu.Lock()
	defer s.mu.Unlock()

	categories := make([]string, len(s.categories))
	copy(categories, s.categories)
	return categories
}

// HasOutdoorTasks reports whether at least one task is flagged outdoor
func (s *Store) HasOutdoorTasks() bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, task := range s.tasks {
		if task.IsOutdoor {
			return true
		}
	}
	return false
}
