package cli

import (
	"context"
	"fmt"
	"syscall"

	"golang.org/x/term"
)

// SessionCommand handles login, logout and whoami
type SessionCommand struct {
	app          *App
	errorHandler *ErrorHandler

	// readPassword is replaced in tests
	readPassword func() (string, error)
}

// NewSessionCommand creates a new session command handler
func NewSessionCommand(app *App) *SessionCommand {
	return &SessionCommand{
		app:          app,
		errorHandler: NewErrorHandler(),
		readPassword: readPasswordFromTerminal,
	}
}

func readPasswordFromTerminal() (string, error) {
	fmt.Print("Password: ")
	raw, err := term.ReadPassword(int(syscall.Stdin))
	fmt.Println()
	if err != nil {
		return "", fmt.Errorf("failed to read password: %w", err)
	}
	return string(raw), nil
}

// ExecuteLogin runs the login command
func (c *SessionCommand) ExecuteLogin(ctx context.Context, username, email, password string) error {
	if password == "" {
		read, err := c.readPassword()
		if err != nil {
			return err
		}
		password = read
	}

	user, err := c.app.session.Login(ctx, username, email, password)
	if err != nil {
		return c.errorHandler.HandleSimple(err)
	}

	fmt.Printf("Logged in as %s <%s>\n", user.Username, user.Email)
	return nil
}

// ExecuteLogout runs the logout command
func (c *SessionCommand) ExecuteLogout(ctx context.Context) error {
	wasLoggedIn := c.app.session.IsAuthenticated()

	if err := c.app.session.Logout(ctx); err != nil {
		return c.errorHandler.Handle("log out", err)
	}

	if wasLoggedIn {
		fmt.Println("Logged out")
	} else {
		fmt.Println("Not logged in")
	}
	return nil
}

// ExecuteWhoami runs the whoami command
func (c *SessionCommand) ExecuteWhoami(ctx context.Context) error {
	user := c.app.session.Current()
	if user == nil {
		fmt.Println("Not logged in")
		return nil
	}
	fmt.Printf("%s <%s>\n", user.Username, user.Email)
	return nil
}
