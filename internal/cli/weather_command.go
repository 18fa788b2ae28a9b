package cli

import (
	"context"
	"fmt"
	"strings"

	"tasker/internal/domain"
)

// WeatherCommand handles the weather command
type WeatherCommand struct {
	app          *App
	errorHandler *ErrorHandler
}

// NewWeatherCommand creates a new weather command handler
func NewWeatherCommand(app *App) *WeatherCommand {
	return &WeatherCommand{
		app:          app,
		errorHandler: NewErrorHandler(),
	}
}

// Execute runs the weather command. Without arguments it fetches for the
// resolved location; with arguments it fetches for the named city.
func (c *WeatherCommand) Execute(ctx context.Context, args []string) error {
	if err := c.app.requireSession(); err != nil {
		return err
	}

	if len(args) > 0 {
		city := strings.Join(args, " ")
		c.app.tasks.FetchWeatherByCity(ctx, city)
	} else {
		c.app.tasks.FetchWeatherByLocation(ctx)
	}

	status := c.app.tasks.Weather()
	switch status.State {
	case domain.WeatherReady:
		c.printSnapshot(status.Snapshot)
		return nil
	case domain.WeatherError:
		return fmt.Errorf("%s", status.Err)
	default:
		return fmt.Errorf("weather data is not available")
	}
}

func (c *WeatherCommand) printSnapshot(snapshot *domain.WeatherSnapshot) {
	fmt.Printf("%s: %.1f°C, %s\n", snapshot.Place, snapshot.Temp, snapshot.Condition)
	fmt.Printf("Conditions: %s (as of %s)\n",
		snapshot.ConditionCategory(), snapshot.FetchedAt.Format("15:04"))
}
