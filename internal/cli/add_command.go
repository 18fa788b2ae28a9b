package cli

import (
	"context"
	"fmt"
	"strings"

	"tasker/internal/domain"
)

// AddOptions carries the optional attributes for a new task
type AddOptions struct {
	Description string
	Priority    string
	Category    string
	Outdoor     bool
}

// AddCommand handles the add command
type AddCommand struct {
	app          *App
	errorHandler *ErrorHandler
}

// NewAddCommand creates a new add command handler
func NewAddCommand(app *App) *AddCommand {
	return &AddCommand{
		app:          app,
		errorHandler: NewErrorHandler(),
	}
}

// Execute runs the add command
func (c *AddCommand) Execute(ctx context.Context, args []string, opts AddOptions) error {
	if err := c.app.requireSession(); err != nil {
		return err
	}
	if len(args) < 1 {
		return fmt.Errorf("usage: tk add \"task title\"")
	}

	title := strings.Join(args, " ")

	var priority domain.Priority
	if opts.Priority != "" {
		parsed, ok := domain.ParsePriority(opts.Priority)
		if !ok {
			return fmt.Errorf("invalid priority %q: use low, medium or high", opts.Priority)
		}
		priority = parsed
	}

	task, err := c.app.tasks.AddTask(ctx, title, opts.Description, priority, opts.Category, opts.Outdoor)
	if err != nil {
		return c.errorHandler.Handle("add task", err)
	}

	marker := ""
	if task.IsOutdoor {
		marker = " [outdoor]"
	}
	fmt.Printf("Added task %d: %s (%s, %s)%s\n", task.ID, task.Title, task.Category, task.Priority, marker)
	return nil
}
