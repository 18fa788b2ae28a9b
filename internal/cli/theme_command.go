package cli

import (
	"context"
	"fmt"

	"tasker/internal/theme"
)

// ThemeCommand handles the theme command
type ThemeCommand struct {
	app          *App
	errorHandler *ErrorHandler
}

// NewThemeCommand creates a new theme command handler
func NewThemeCommand(app *App) *ThemeCommand {
	return &ThemeCommand{
		app:          app,
		errorHandler: NewErrorHandler(),
	}
}

// Execute runs the theme command. Without arguments it toggles between
// light and dark; with an argument it switches to the named mode.
func (c *ThemeCommand) Execute(ctx context.Context, args []string) error {
	if len(args) == 0 {
		mode, err := c.app.theme.Toggle(ctx)
		if err != nil {
			return c.errorHandler.Handle("switch theme", err)
		}
		fmt.Printf("Theme is now %s\n", mode)
		return nil
	}

	mode := theme.Mode(args[0])
	if !mode.IsValid() {
		return fmt.Errorf("invalid theme %q: use light or dark", args[0])
	}
	if err := c.app.theme.Set(ctx, mode); err != nil {
		return c.errorHandler.Handle("switch theme", err)
	}
	fmt.Printf("Theme is now %s\n", mode)
	return nil
}
