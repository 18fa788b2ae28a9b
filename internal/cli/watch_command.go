package cli

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"tasker/internal/domain"
	"tasker/internal/scheduler"
)

// WatchCommand runs a long-lived process that refreshes weather data on an
// interval while outdoor tasks exist.
type WatchCommand struct {
	app          *App
	errorHandler *ErrorHandler
	interval     time.Duration
}

// NewWatchCommand creates a new watch command handler
func NewWatchCommand(app *App, interval time.Duration) *WatchCommand {
	return &WatchCommand{
		app:          app,
		errorHandler: NewErrorHandler(),
		interval:     interval,
	}
}

// Execute runs the watch command until interrupted
func (c *WatchCommand) Execute(ctx context.Context) error {
	if err := c.app.requireSession(); err != nil {
		return err
	}

	sched := scheduler.New(c.app.tasks, c.interval)
	if err := sched.Start(ctx); err != nil {
		return c.errorHandler.Handle("start weather watch", err)
	}
	defer sched.Stop()

	fmt.Printf("Watching weather every %s, press Ctrl+C to stop\n", c.interval)
	c.printCurrent()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)
	select {
	case <-stop:
	case <-ctx.Done():
	}
	fmt.Println("Stopped")
	return nil
}

func (c *WatchCommand) printCurrent() {
	status := c.app.tasks.Weather()
	if status.State == domain.WeatherReady && status.Snapshot != nil {
		fmt.Printf("%s: %.1f°C, %s\n", status.Snapshot.Place, status.Snapshot.Temp, status.Snapshot.Condition)
	}
}
