// Package adapter provides adapters for user-facing surfaces to interact
// with the session package.
package adapter

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"
	"sync"

	"github.com/lebronisbest/ootp-storyline-generator/pkg/log"
	"github.com/lebronisbest/ootp-storyline-generator/pkg/model"
	"github.com/lebronisbest/ootp-storyline-generator/pkg/session"
)

// CLIAdapter provides command-line interface support for managing multiple CLI connections
type CLIAdapter struct {
	sessions       map[string]*session.Session
	sessionMutex   sync.RWMutex
	adapterManager *AdapterManager
	logger         *log.Logger
}

// NewCLIAdapter creates a new instance of CLIAdapter
func NewCLIAdapter(am *AdapterManager, logger *log.Logger) (*CLIAdapter, error) {
	logger.Info(context.Background(), "Creating new CLI adapter", nil)
	return &CLIAdapter{
		sessions:       make(map[string]*session.Session),
		adapterManager: am,
		logger:         logger,
	}, nil
}

// AdapterStart starts the CLI adapter
func (a *CLIAdapter) AdapterStart() error {
	a.logger.Info(context.Background(), "CLI adapter started", nil)
	return nil
}

// AdapterStop signals the CLI adapter to stop
func (a *CLIAdapter) AdapterStop() error {
	ctx := context.Background()

	a.sessionMutex.Lock()
	for sessionID := range a.sessions {
		delete(a.sessions, sessionID)
	}
	a.sessionMutex.Unlock()

	a.logger.Info(ctx, "CLI adapter stopped", nil)
	return nil
}

// GetType returns the adapter type
func (a *CLIAdapter) GetType() string {
	return "cli"
}

// SessionRegister ties a session to this adapter so the prompt can show
// its state.
func (a *CLIAdapter) SessionRegister(sessionID string) error {
	sess, exists := a.adapterManager.SessionGet(sessionID)
	if !exists {
		a.logger.Error(context.Background(), "Session does not exist", log.Fields{"sessionID": sessionID})
		return fmt.Errorf("session %s does not exist", sessionID)
	}

	a.sessionMutex.Lock()
	a.sessions[sessionID] = sess
	a.sessionMutex.Unlock()
	a.logger.Info(context.Background(), "New CLI session registered", log.Fields{"sessionID": sessionID})

	return nil
}

// CommandProcess validates the command and runs it in the session
func (a *CLIAdapter) CommandProcess(sessionID string, cmd model.Command) (interface{}, error) {
	sessionCmd := session.NewCommand(cmd, a.logger)
	if err := sessionCmd.Validate(); err != nil {
		return nil, err
	}
	return a.adapterManager.SessionRun(sessionID, cmd)
}

// ProcessInput converts the input string into a command and runs it
func (a *CLIAdapter) ProcessInput(sessionID string, input string) (interface{}, error) {
	cmd, err := a.parseCommand(input)
	if err != nil {
		return nil, err
	}
	return a.adapterManager.CommandRun(sessionID, cmd)
}

// parseCommand splits input into scope, operation and arguments. Double
// quotes group words into a single argument.
func (a *CLIAdapter) parseCommand(input string) (model.Command, error) {
	args := parseArgs(input)
	if len(args) == 0 {
		return model.Command{}, fmt.Errorf("empty command")
	}

	cmd := model.Command{
		Scope:     strings.ToLower(args[0]),
		Operation: "",
		Args:      []string{},
	}

	if len(args) > 1 {
		cmd.Operation = strings.ToLower(args[1])
		cmd.Args = args[2:]
	}

	a.logger.Debug(context.Background(), "Command parsed", log.Fields{"command": cmd})
	return cmd, nil
}

// parseArgs tokenizes a command line, honoring double quotes.
func parseArgs(input string) []string {
	var args []string
	var currentArg strings.Builder
	inQuotes := false

	for _, char := range input {
		switch char {
		case '"':
			inQuotes = !inQuotes
		case ' ':
			if !inQuotes {
				if currentArg.Len() > 0 {
					args = append(args, currentArg.String())
					currentArg.Reset()
				}
			} else {
				currentArg.WriteRune(char)
			}
		default:
			currentArg.WriteRune(char)
		}
	}

	if currentArg.Len() > 0 {
		args = append(args, currentArg.String())
	}

	return args
}

// PromptGet gets the current prompt of the session
func (a *CLIAdapter) PromptGet(sessionID string) string {
	a.sessionMutex.RLock()
	defer a.sessionMutex.RUnlock()

	sess, exists := a.sessions[sessionID]
	if !exists {
		return "> "
	}

	if sess.Profile == nil {
		return "> "
	}

	if sess.Collection == nil || sess.Collection.FilePath == "" {
		return fmt.Sprintf("%s > ", sess.Profile.Name)
	}

	return fmt.Sprintf("%s @ %s > ", sess.Profile.Name, filepath.Base(sess.Collection.FilePath))
}
