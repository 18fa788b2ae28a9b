package cli

import (
	"context"
	"fmt"

	"tasker/internal/domain"
)

// PriorityCommand handles the priority command
type PriorityCommand struct {
	app          *App
	errorHandler *ErrorHandler
}

// NewPriorityCommand creates a new priority command handler
func NewPriorityCommand(app *App) *PriorityCommand {
	return &PriorityCommand{
		app:          app,
		errorHandler: NewErrorHandler(),
	}
}

// Execute runs the priority command
func (c *PriorityCommand) Execute(ctx context.Context, args []string) error {
	if err := c.app.requireSession(); err != nil {
		return err
	}
	if len(args) != 2 {
		return fmt.Errorf("usage: tk priority <task-id> <low|medium|high>")
	}

	id, err := parseTaskID(args[0])
	if err != nil {
		return err
	}

	priority, ok := domain.ParsePriority(args[1])
	if !ok {
		return fmt.Errorf("invalid priority %q: use low, medium or high", args[1])
	}

	if err := c.app.tasks.SetPriority(ctx, id, priority); err != nil {
		return c.errorHandler.Handle("set priority", err)
	}

	fmt.Printf("Set task %d priority to %s\n", id, priority)
	return nil
}
