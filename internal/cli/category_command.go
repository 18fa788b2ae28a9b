package cli

import (
	"context"
	"fmt"
	"strings"

	"tasker/internal/domain"
)

// CategoryCommand handles the category subcommands
type CategoryCommand struct {
	app          *App
	errorHandler *ErrorHandler
}

// NewCategoryCommand creates a new category command handler
func NewCategoryCommand(app *App) *CategoryCommand {
	return &CategoryCommand{
		app:          app,
		errorHandler: NewErrorHandler(),
	}
}

// ExecuteAdd runs category add
func (c *CategoryCommand) ExecuteAdd(ctx context.Context, args []string) error {
	if err := c.app.requireSession(); err != nil {
		return err
	}
	if len(args) < 1 {
		return fmt.Errorf("usage: tk category add <name>")
	}

	name := strings.TrimSpace(strings.Join(args, " "))
	if name == "" {
		return fmt.Errorf("category name must not be empty")
	}

	before := len(c.app.tasks.Categories())
	if err := c.app.tasks.AddCategory(ctx, name); err != nil {
		return c.errorHandler.Handle("add category", err)
	}

	if len(c.app.tasks.Categories()) == before {
		fmt.Printf("Category %q already exists\n", name)
	} else {
		fmt.Printf("Added category %q\n", name)
	}
	return nil
}

// ExecuteRemove runs category rm. Removing a category reassigns its tasks
// to the fallback category.
func (c *CategoryCommand) ExecuteRemove(ctx context.Context, args []string) error {
	if err := c.app.requireSession(); err != nil {
		return err
	}
	if len(args) < 1 {
		return fmt.Errorf("usage: tk category rm <name>")
	}

	name := strings.TrimSpace(strings.Join(args, " "))
	if domain.IsDefaultCategory(name) {
		return fmt.Errorf("cannot remove built-in category %q", name)
	}

	found := false
	for _, existing := range c.app.tasks.Categories() {
		if existing == name {
			found = true
			break
		}
	}
	if !found {
		fmt.Printf("No category named %q\n", name)
		return nil
	}

	if err := c.app.tasks.RemoveCategory(ctx, name); err != nil {
		return c.errorHandler.Handle("remove category", err)
	}

	fmt.Printf("Removed category %q, its tasks moved to %q\n", name, domain.FallbackCategory)
	return nil
}

// ExecuteList runs category list
func (c *CategoryCommand) ExecuteList(ctx context.Context) error {
	if err := c.app.requireSession(); err != nil {
		return err
	}

	counts := make(map[string]int)
	for _, task := range c.app.tasks.Tasks() {
		counts[task.Category]++
	}

	for _, name := range c.app.tasks.Categories() {
		fmt.Printf("%s (%d task(s))\n", name, counts[name])
	}
	return nil
}
