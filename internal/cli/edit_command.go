package cli

import (
	"context"
	"fmt"

	"tasker/internal/domain"
)

// EditOptions carries the fields to change. Nil means leave unchanged.
type EditOptions struct {
	Title       *string
	Description *string
	Priority    *string
	Category    *string
	Outdoor     *bool
}

func (o EditOptions) isEmpty() bool {
	return o.Title == nil && o.Description == nil && o.Priority == nil &&
		o.Category == nil && o.Outdoor == nil
}

// EditCommand handles the edit command
type EditCommand struct {
	app          *App
	errorHandler *ErrorHandler
}

// NewEditCommand creates a new edit command handler
func NewEditCommand(app *App) *EditCommand {
	return &EditCommand{
		app:          app,
		errorHandler: NewErrorHandler(),
	}
}

// Execute runs the edit command
func (c *EditCommand) Execute(ctx context.Context, args []string, opts EditOptions) error {
	if err := c.app.requireSession(); err != nil {
		return err
	}
	if len(args) != 1 {
		return fmt.Errorf("usage: tk edit <task-id> [flags]")
	}
	if opts.isEmpty() {
		return fmt.Errorf("nothing to change: pass at least one of --title, --description, --priority, --category, --outdoor")
	}

	id, err := parseTaskID(args[0])
	if err != nil {
		return err
	}

	update := domain.TaskUpdate{
		Title:       opts.Title,
		Description: opts.Description,
		Category:    opts.Category,
		IsOutdoor:   opts.Outdoor,
	}
	if opts.Priority != nil {
		priority, ok := domain.ParsePriority(*opts.Priority)
		if !ok {
			return fmt.Errorf("invalid priority %q: use low, medium or high", *opts.Priority)
		}
		update.Priority = &priority
	}

	if err := c.app.tasks.UpdateTask(ctx, id, update); err != nil {
		return c.errorHandler.Handle("edit task", err)
	}

	fmt.Printf("Updated task %d\n", id)
	return nil
}
