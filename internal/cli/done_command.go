package cli

import (
	"context"
	"fmt"
)

// DoneCommand handles the done command, toggling a task's completion flag
type DoneCommand struct {
	app          *App
	errorHandler *ErrorHandler
}

// NewDoneCommand creates a new done command handler
func NewDoneCommand(app *App) *DoneCommand {
	return &DoneCommand{
		app:          app,
		errorHandler: NewErrorHandler(),
	}
}

// Execute runs the done command
func (c *DoneCommand) Execute(ctx context.Context, args []string) error {
	if err := c.app.requireSession(); err != nil {
		return err
	}
	if len(args) != 1 {
		return fmt.Errorf("usage: tk done <task-id>")
	}

	id, err := parseTaskID(args[0])
	if err != nil {
		return err
	}

	if err := c.app.tasks.ToggleComplete(ctx, id); err != nil {
		return c.errorHandler.Handle("toggle task", err)
	}

	for _, task := range c.app.tasks.Tasks() {
		if task.ID == id {
			if task.Completed {
				fmt.Printf("Completed task %d: %s\n", id, task.Title)
			} else {
				fmt.Printf("Reopened task %d: %s\n", id, task.Title)
			}
			return nil
		}
	}

	// Toggling an unknown id is a silent no-op in the store
	fmt.Printf("No task with id %d\n", id)
	return nil
}
