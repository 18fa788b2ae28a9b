package cli

import (
	"context"
	"fmt"

	"tasker/internal/domain"
	"tasker/internal/query"
)

// ListOptions carries the filter and sort flags for the list command
type ListOptions struct {
	Status   string
	Search   string
	Category string
	Outdoor  bool
	SortBy   string
}

// ListCommand handles the list command
type ListCommand struct {
	app          *App
	errorHandler *ErrorHandler
}

// NewListCommand creates a new list command handler
func NewListCommand(app *App) *ListCommand {
	return &ListCommand{
		app:          app,
		errorHandler: NewErrorHandler(),
	}
}

// Execute runs the list command
func (c *ListCommand) Execute(ctx context.Context, opts ListOptions) error {
	if err := c.app.requireSession(); err != nil {
		return err
	}

	criteria, err := c.buildCriteria(opts)
	if err != nil {
		return err
	}

	tasks := query.Apply(c.app.tasks.Tasks(), criteria)
	c.printTasks(tasks)
	return nil
}

// buildCriteria validates the flag values and maps them onto query criteria
func (c *ListCommand) buildCriteria(opts ListOptions) (query.Criteria, error) {
	criteria := query.Criteria{
		Search:      opts.Search,
		Category:    opts.Category,
		OutdoorOnly: opts.Outdoor,
	}

	switch opts.Status {
	case "", string(query.StatusAll):
		criteria.Status = query.StatusAll
	case string(query.StatusActive):
		criteria.Status = query.StatusActive
	case string(query.StatusCompleted):
		criteria.Status = query.StatusCompleted
	default:
		return query.Criteria{}, fmt.Errorf("invalid status %q: use all, active or completed", opts.Status)
	}

	switch opts.SortBy {
	case "", string(query.SortByDate):
		criteria.SortBy = query.SortByDate
	case string(query.SortByPriority):
		criteria.SortBy = query.SortByPriority
	case string(query.SortByCategory):
		criteria.SortBy = query.SortByCategory
	case string(query.SortByCompletion):
		criteria.SortBy = query.SortByCompletion
	default:
		return query.Criteria{}, fmt.Errorf("invalid sort key %q: use date, priority, category or completion", opts.SortBy)
	}

	return criteria, nil
}

// printTasks prints one line per task:
// [x] id title (category, priority) [outdoor]
func (c *ListCommand) printTasks(tasks []domain.Task) {
	if len(tasks) == 0 {
		fmt.Println("No tasks found")
		return
	}

	for _, task := range tasks {
		check := " "
		if task.Completed {
			check = "x"
		}
		marker := ""
		if task.IsOutdoor {
			marker = " [outdoor]"
		}
		fmt.Printf("[%s] %d  %s (%s, %s)%s\n", check, task.ID, task.Title, task.Category, task.Priority, marker)
		if task.Description != "" {
			fmt.Printf("        %s\n", task.Description)
		}
	}
	fmt.Printf("%d task(s)\n", len(tasks))
}
