package session

import (
	"context"
	"errors"
	"fmt"

	"github.com/lebronisbest/ootp-storyline-generator/pkg/log"
	"github.com/lebronisbest/ootp-storyline-generator/pkg/model"
)

// Command wraps the model.Command and adds session-specific functionality
type Command struct {
	command model.Command
	logger  *log.Logger
}

// NewCommand creates a new session Command from a model.Command
func NewCommand(cmd model.Command, logger *log.Logger) Command {
	return Command{command: cmd, logger: logger}
}

// Validate checks if the command is valid
func (c *Command) Validate() error {
	ctx := context.Background()
	c.logger.Debug(ctx, "Validating command", log.Fields{"scope": c.command.Scope, "operation": c.command.Operation})

	if c.command.Scope == "" {
		c.logger.Error(ctx, "Command scope is empty", nil)
		return errors.New("command scope is required")
	}
	return c.validateScopeAndOperation()
}

// validateScopeAndOperation checks if the scope and operation are valid
func (c *Command) validateScopeAndOperation() error {
	switch c.command.Scope {
	case "file":
		return c.validateFileCommand()
	case "storyline":
		return c.validateStorylineCommand()
	case "article":
		return c.validateArticleCommand()
	case "participant":
		return c.validateParticipantCommand()
	case "catalog":
		return c.validateCatalogCommand()
	case "profile":
		return c.validateProfileCommand()
	case "system":
		return c.validateSystemCommand()
	default:
		c.logger.Error(context.Background(), "Invalid command scope", log.Fields{"scope": c.command.Scope})
		return fmt.Errorf("invalid command scope: %s", c.command.Scope)
	}
}

func (c *Command) validateFileCommand() error {
	ctx := context.Background()

	switch c.command.Operation {
	case "open":
		if len(c.command.Args) != 1 {
			c.logger.Error(ctx, "Invalid number of arguments for file open command", log.Fields{"argCount": len(c.command.Args)})
			return errors.New("file open command requires 1 argument: <path>")
		}
	case "save":
		if len(c.command.Args) > 1 {
			c.logger.Error(ctx, "Invalid number of arguments for file save command", log.Fields{"argCount": len(c.command.Args)})
			return errors.New("file save command requires 0 or 1 argument: [path]")
		}
	case "info", "recent":
		if len(c.command.Args) != 0 {
			c.logger.Error(ctx, "Invalid number of arguments for file command", log.Fields{"operation": c.command.Operation, "argCount": len(c.command.Args)})
			return fmt.Errorf("file %s command does not accept any arguments", c.command.Operation)
		}
	default:
		c.logger.Error(ctx, "Invalid file operation", log.Fields{"operation": c.command.Operation})
		return fmt.Errorf("invalid file operation: %s", c.command.Operation)
	}
	return nil
}

func (c *Command) validateStorylineCommand() error {
	ctx := context.Background()

	switch c.command.Operation {
	case "add":
		if len(c.command.Args) > 1 {
			c.logger.Error(ctx, "Invalid number of arguments for storyline add command", log.Fields{"argCount": len(c.command.Args)})
			return errors.New("storyline add command requires 0 or 1 argument: [id]")
		}
	case "update":
		if len(c.command.Args) != 2 {
			c.logger.Error(ctx, "Invalid number of arguments for storyline update command", log.Fields{"argCount": len(c.command.Args)})
			return errors.New("storyline update command requires 2 arguments: <attribute> <value>")
		}
	case "delete", "list", "show":
		if len(c.command.Args) != 0 {
			c.logger.Error(ctx, "Invalid number of arguments for storyline command", log.Fields{"operation": c.command.Operation, "argCount": len(c.command.Args)})
			return fmt.Errorf("storyline %s command does not accept any arguments", c.command.Operation)
		}
	case "select", "find":
		if len(c.command.Args) != 1 {
			c.logger.Error(ctx, "Invalid number of arguments for storyline command", log.Fields{"operation": c.command.Operation, "argCount": len(c.command.Args)})
			return fmt.Errorf("storyline %s command requires 1 argument", c.command.Operation)
		}
	default:
		c.logger.Error(ctx, "Invalid storyline operation", log.Fields{"operation": c.command.Operation})
		return fmt.Errorf("invalid storyline operation: %s", c.command.Operation)
	}
	return nil
}

func (c *Command) validateArticleCommand() error {
	ctx := context.Background()

	switch c.command.Operation {
	case "add", "show":
		if len(c.command.Args) != 0 {
			c.logger.Error(ctx, "Invalid number of arguments for article command", log.Fields{"operation": c.command.Operation, "argCount": len(c.command.Args)})
			return fmt.Errorf("article %s command does not accept any arguments", c.command.Operation)
		}
	case "update":
		if len(c.command.Args) != 2 {
			c.logger.Error(ctx, "Invalid number of arguments for article update command", log.Fields{"argCount": len(c.command.Args)})
			return errors.New("article update command requires 2 arguments: <field> <value>")
		}
	case "delete":
		if len(c.command.Args) > 1 {
			c.logger.Error(ctx, "Invalid number of arguments for article delete command", log.Fields{"argCount": len(c.command.Args)})
			return errors.New("article delete command requires 0 or 1 argument: [index]")
		}
	case "select", "renumber":
		if len(c.command.Args) != 1 {
			c.logger.Error(ctx, "Invalid number of arguments for article command", log.Fields{"operation": c.command.Operation, "argCount": len(c.command.Args)})
			return fmt.Errorf("article %s command requires 1 argument", c.command.Operation)
		}
	case "preset":
		if len(c.command.Args) != 2 {
			c.logger.Error(ctx, "Invalid number of arguments for article preset command", log.Fields{"argCount": len(c.command.Args)})
			return errors.New("article preset command requires 2 arguments: <category> <preset_name>")
		}
	case "attrs":
		if len(c.command.Args) > 2 {
			c.logger.Error(ctx, "Invalid number of arguments for article attrs command", log.Fields{"argCount": len(c.command.Args)})
			return errors.New("article attrs command accepts at most 2 arguments: [query] [--set]")
		}
	default:
		c.logger.Error(ctx, "Invalid article operation", log.Fields{"operation": c.command.Operation})
		return fmt.Errorf("invalid article operation: %s", c.command.Operation)
	}
	return nil
}

func (c *Command) validateParticipantCommand() error {
	ctx := context.Background()

	switch c.command.Operation {
	case "add":
		if len(c.command.Args) != 1 {
			c.logger.Error(ctx, "Invalid number of arguments for participant add command", log.Fields{"argCount": len(c.command.Args)})
			return errors.New("participant add command requires 1 argument: <type>")
		}
	case "update":
		if len(c.command.Args) != 3 {
			c.logger.Error(ctx, "Invalid number of arguments for participant update command", log.Fields{"argCount": len(c.command.Args)})
			return errors.New("participant update command requires 3 arguments: <index> <attribute> <value>")
		}
	case "delete", "main":
		if len(c.command.Args) != 1 {
			c.logger.Error(ctx, "Invalid number of arguments for participant command", log.Fields{"operation": c.command.Operation, "argCount": len(c.command.Args)})
			return fmt.Errorf("participant %s command requires 1 argument: <index>", c.command.Operation)
		}
	default:
		c.logger.Error(ctx, "Invalid participant operation", log.Fields{"operation": c.command.Operation})
		return fmt.Errorf("invalid participant operation: %s", c.command.Operation)
	}
	return nil
}

func (c *Command) validateCatalogCommand() error {
	ctx := context.Background()

	switch c.command.Operation {
	case "types":
		if len(c.command.Args) != 0 {
			c.logger.Error(ctx, "Invalid number of arguments for catalog types command", log.Fields{"argCount": len(c.command.Args)})
			return errors.New("catalog types command does not accept any arguments")
		}
	case "attrs", "tooltip":
		if len(c.command.Args) != 1 {
			c.logger.Error(ctx, "Invalid number of arguments for catalog command", log.Fields{"operation": c.command.Operation, "argCount": len(c.command.Args)})
			return fmt.Errorf("catalog %s command requires 1 argument", c.command.Operation)
		}
	case "presets":
		if len(c.command.Args) > 1 {
			c.logger.Error(ctx, "Invalid number of arguments for catalog presets command", log.Fields{"argCount": len(c.command.Args)})
			return errors.New("catalog presets command requires 0 or 1 argument: [category]")
		}
	default:
		c.logger.Error(ctx, "Invalid catalog operation", log.Fields{"operation": c.command.Operation})
		return fmt.Errorf("invalid catalog operation: %s", c.command.Operation)
	}
	return nil
}

func (c *Command) validateProfileCommand() error {
	ctx := context.Background()

	switch c.command.Operation {
	case "add", "select":
		if len(c.command.Args) < 1 || len(c.command.Args) > 2 {
			c.logger.Error(ctx, "Invalid number of arguments for profile command", log.Fields{"operation": c.command.Operation, "argCount": len(c.command.Args)})
			return fmt.Errorf("profile %s command requires 1 or 2 arguments: <name> [password]", c.command.Operation)
		}
	case "delete":
		if len(c.command.Args) != 1 {
			c.logger.Error(ctx, "Invalid number of arguments for profile delete command", log.Fields{"argCount": len(c.command.Args)})
			return errors.New("profile delete command requires 1 argument: <name>")
		}
	default:
		c.logger.Error(ctx, "Invalid profile operation", log.Fields{"operation": c.command.Operation})
		return fmt.Errorf("invalid profile operation: %s", c.command.Operation)
	}
	return nil
}

func (c *Command) validateSystemCommand() error {
	ctx := context.Background()

	switch c.command.Operation {
	case "exit", "quit":
		if len(c.command.Args) != 0 {
			c.logger.Error(ctx, "Invalid number of arguments for system command", log.Fields{"operation": c.command.Operation, "argCount": len(c.command.Args)})
			return fmt.Errorf("system %s command does not accept any arguments", c.command.Operation)
		}
	default:
		c.logger.Error(ctx, "Invalid system operation", log.Fields{"operation": c.command.Operation})
		return fmt.Errorf("invalid system operation: %s", c.command.Operation)
	}
	return nil
}
