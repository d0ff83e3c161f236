// Package cli implements the interactive command-line surface of the
// storyline editor.
package cli

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/chzyer/readline"

	"github.com/lebronisbest/ootp-storyline-generator/pkg/adapter"
	"github.com/lebronisbest/ootp-storyline-generator/pkg/log"
	"github.com/lebronisbest/ootp-storyline-generator/pkg/session"
)

// CLI represents the command-line interface
type CLI struct {
	adapter   *adapter.CLIAdapter
	sessionID string
	rl        *readline.Instance
	stopCh    chan struct{}
	logger    *log.Logger
}

// NewCLI creates a new CLI instance bound to one adapter session
func NewCLI(cliAdapter *adapter.CLIAdapter, sessionID string, logger *log.Logger) (*CLI, error) {
	rl, err := readline.New("> ")
	if err != nil {
		return nil, fmt.Errorf("failed to initialize readline: %w", err)
	}

	return &CLI{
		adapter:   cliAdapter,
		sessionID: sessionID,
		rl:        rl,
		stopCh:    make(chan struct{}),
		logger:    logger,
	}, nil
}

// Run starts the CLI and handles user input
func (c *CLI) Run() error {
	fmt.Println("Storyline Editor CLI")
	fmt.Println("Type 'help' for a list of commands or 'exit' to quit.")

	if err := c.adapter.AdapterStart(); err != nil {
		return fmt.Errorf("failed to start CLI adapter: %w", err)
	}
	defer func() {
		if err := c.adapter.AdapterStop(); err != nil {
			fmt.Printf("Error stopping CLI adapter: %v\n", err)
		}
		c.rl.Close()
	}()

	// Main loop
	for {
		select {
		case <-c.stopCh:
			return nil
		default:
		}

		c.rl.SetPrompt(c.adapter.PromptGet(c.sessionID))
		input, err := c.rl.Readline()
		if err == readline.ErrInterrupt {
			continue
		}
		if err == io.EOF {
			return nil
		}
		if err != nil {
			return fmt.Errorf("error reading input: %w", err)
		}

		input = strings.TrimSpace(input)
		if input == "" {
			continue
		}

		if input == "exit" || input == "quit" {
			return nil
		}

		// Check for help command
		if strings.HasPrefix(input, "help") {
			args := strings.Fields(input)
			c.printHelp(args[1:])
			continue
		}

		// Pass input to the adapter
		result, err := c.adapter.ProcessInput(c.sessionID, input)
		if err != nil {
			fmt.Printf("Error: %v\n", err)
			c.logger.Info(context.Background(), "Command returned error", log.Fields{"error": err})
			continue
		}
		if _, ok := result.(session.ExitResult); ok {
			return nil
		}
		if result != nil {
			fmt.Printf("%v\n", result)
		}
	}
}

// Stop signals the CLI to stop its main loop
func (c *CLI) Stop() {
	close(c.stopCh)
}

// printHelp prints the help message based on the provided arguments
func (c *CLI) printHelp(args []string) {
	switch len(args) {
	case 0:
		c.showGeneralHelp()
	case 1:
		c.showScopeHelp(args[0])
	case 2:
		c.showOperationHelp(args[0], args[1])
	default:
		fmt.Println("Invalid help command. Use 'help [scope] [operation]'")
	}
}

// showGeneralHelp displays an overview of all available commands grouped by scope
func (c *CLI) showGeneralHelp() {
	fmt.Println("Command syntax: <scope> [operation] [arguments] [options]")
	fmt.Println("\nAvailable commands:")
	currentScope := ""
	for _, cmd := range commandHelps {
		if cmd.Scope != currentScope {
			fmt.Printf("\n%s:\n", cmd.Scope)
			currentScope = cmd.Scope
		}
		fmt.Printf("  %-15s %s\n", cmd.Operation, cmd.ShortDesc)
	}
}

// showScopeHelp displays help information for all commands within a specific scope
func (c *CLI) showScopeHelp(scope string) {
	fmt.Printf("Commands for %s:\n\n", scope)
	found := false
	for _, cmd := range commandHelps {
		if cmd.Scope == scope {
			fmt.Printf("%-15s %s\n", cmd.Operation, cmd.ShortDesc)
			found = true
		}
	}
	if !found {
		fmt.Printf("No commands found for scope '%s'\n", scope)
	}
}

// showOperationHelp displays detailed help information for a specific operation within a scope
func (c *CLI) showOperationHelp(scope, operation string) {
	for _, cmd := range commandHelps {
		if cmd.Scope == scope && cmd.Operation == operation {
			fmt.Printf("Command: %s %s\n", scope, operation)
			fmt.Printf("Description: %s\n", cmd.LongDesc)
			fmt.Printf("Syntax: %s\n", cmd.Syntax)
			if len(cmd.Arguments) > 0 {
				fmt.Println("Arguments:")
				for _, arg := range cmd.Arguments {
					fmt.Printf("  %s\n", arg)
				}
			}
			if len(cmd.Examples) > 0 {
				fmt.Println("Examples:")
				for _, ex := range cmd.Examples {
					fmt.Printf("  %s\n", ex)
				}
			}
			return
		}
	}
	fmt.Printf("No help found for %s %s\n", scope, operation)
}
