package cli

import (
	"context"
	"fmt"

	"tasker/internal/domain"
)

// LocationCommand handles the location command
type LocationCommand struct {
	app          *App
	errorHandler *ErrorHandler
}

// NewLocationCommand creates a new location command handler
func NewLocationCommand(app *App) *LocationCommand {
	return &LocationCommand{
		app:          app,
		errorHandler: NewErrorHandler(),
	}
}

// ExecuteUpdate runs location update: the cached location is discarded and
// the weather is re-fetched from a fresh lookup.
func (c *LocationCommand) ExecuteUpdate(ctx context.Context) error {
	if err := c.app.requireSession(); err != nil {
		return err
	}

	if err := c.app.tasks.UpdateLocation(ctx); err != nil {
		return c.errorHandler.Handle("update location", err)
	}

	status := c.app.tasks.Weather()
	switch status.State {
	case domain.WeatherReady:
		fmt.Printf("Location updated: %s\n", status.Snapshot.Place)
		return nil
	case domain.WeatherError:
		return fmt.Errorf("%s", status.Err)
	default:
		return fmt.Errorf("location could not be determined")
	}
}
