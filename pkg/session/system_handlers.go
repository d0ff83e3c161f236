package session

import (
	"context"

	"github.com/lebronisbest/ootp-storyline-generator/pkg/model"
)

// ExitResult is returned by the exit handler so the surface layer knows to
// shut the program down.
type ExitResult struct{}

// handleSystemExit handles the system exit and quit commands
func handleSystemExit(s *Session, cmd model.Command) (interface{}, error) {
	s.logger.Info(context.Background(), "Handling system exit command", nil)
	return ExitResult{}, nil
}
