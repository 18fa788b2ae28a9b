package cli

import (
	"context"
	"fmt"
)

// RemoveCommand handles the rm command
type RemoveCommand struct {
	app          *App
	errorHandler *ErrorHandler
}

// NewRemoveCommand creates a new remove command handler
func NewRemoveCommand(app *App) *RemoveCommand {
	return &RemoveCommand{
		app:          app,
		errorHandler: NewErrorHandler(),
	}
}

// Execute runs the rm command
func (c *RemoveCommand) Execute(ctx context.Context, args []string) error {
	if err := c.app.requireSession(); err != nil {
		return err
	}
	if len(args) != 1 {
		return fmt.Errorf("usage: tk rm <task-id>")
	}

	id, err := parseTaskID(args[0])
	if err != nil {
		return err
	}

	existed := false
	for _, task := range c.app.tasks.Tasks() {
		if task.ID == id {
			existed = true
			break
		}
	}

	if err := c.app.tasks.RemoveTask(ctx, id); err != nil {
		return c.errorHandler.Handle("remove task", err)
	}

	if existed {
		fmt.Printf("Removed task %d\n", id)
	} else {
		fmt.Printf("No task with id %d\n", id)
	}
	return nil
}
