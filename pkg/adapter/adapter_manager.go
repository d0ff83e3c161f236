package adapter

import (
	"fmt"
	"sync"

	"github.com/lebronisbest/ootp-storyline-generator/pkg/log"
	"github.com/lebronisbest/ootp-storyline-generator/pkg/model"
	"github.com/lebronisbest/ootp-storyline-generator/pkg/session"
)

// AdapterInstance represents an instance of an adapter
type AdapterInstance interface {
	// CommandProcess processes a command for a session and returns the result
	CommandProcess(sessionID string, cmd model.Command) (interface{}, error)

	// AdapterStart starts the adapter instance
	AdapterStart() error

	// AdapterStop terminates the adapter instance
	AdapterStop() error

	// GetType returns the type of the adapter
	GetType() string
}

// AdapterFactory creates new instances of adapters
type AdapterFactory func(am *AdapterManager) (AdapterInstance, error)

// AdapterManager manages all adapter instances
type AdapterManager struct {
	factories      map[string]AdapterFactory
	instances      sync.Map // map[string]AdapterInstance
	sessionManager *session.SessionManager
	cmdChan        chan commandRequest
	stopChan       chan struct{}
	logger         *log.Logger
}

// commandRequest represents a request to execute a command within a specific session and carries a result channel
type commandRequest struct {
	SessionID  string
	Command    model.Command
	ResultChan chan interface{}
}

// NewAdapterManager creates a new AdapterManager
func NewAdapterManager(sm *session.SessionManager, logger *log.Logger) *AdapterManager {
	am := &AdapterManager{
		factories:      make(map[string]AdapterFactory),
		sessionManager: sm,
		cmdChan:        make(chan commandRequest),
		stopChan:       make(chan struct{}),
		logger:         logger,
	}
	am.factories["cli"] = func(am *AdapterManager) (AdapterInstance, error) {
		return NewCLIAdapter(am, logger)
	}
	go am.commandHandler()
	return am
}

// AdapterAdd creates a new adapter instance with its own session and
// returns the session ID and the instance.
func (am *AdapterManager) AdapterAdd(adapterType string) (string, AdapterInstance, error) {
	// Check if a factory for the specified adapter type exists
	factory, ok := am.factories[adapterType]
	if !ok {
		return "", nil, fmt.Errorf("unknown adapter type: %s", adapterType)
	}

	// Create a new instance of the adapter using the factory
	instance, err := factory(am)
	if err != nil {
		return "", nil, err
	}

	// Create a new session for this adapter instance
	sessionID, err := am.sessionManager.SessionAdd()
	if err != nil {
		return "", nil, fmt.Errorf("failed to add session: %w", err)
	}

	// Store the adapter instance with its associated session ID
	am.instances.Store(sessionID, instance)

	return sessionID, instance, nil
}

// SessionGet retrieves a session by its ID
func (am *AdapterManager) SessionGet(sessionID string) (*session.Session, bool) {
	return am.sessionManager.SessionGet(sessionID)
}

// SessionRun executes a validated command in a session
func (am *AdapterManager) SessionRun(sessionID string, cmd model.Command) (interface{}, error) {
	return am.sessionManager.SessionRun(sessionID, cmd)
}

// CommandRun runs a command on a specific adapter instance
func (am *AdapterManager) CommandRun(sessionID string, cmd model.Command) (interface{}, error) {
	resultChan := make(chan interface{})
	am.cmdChan <- commandRequest{SessionID: sessionID, Command: cmd, ResultChan: resultChan}
	result := <-resultChan
	if err, ok := result.(error); ok {
		return nil, err
	}
	return result, nil
}

// Shutdown stops all adapter instances and the command handler
func (am *AdapterManager) Shutdown() {
	close(am.stopChan)
	am.instances.Range(func(key, value interface{}) bool {
		instance := value.(AdapterInstance)
		instance.AdapterStop()
		am.instances.Delete(key)
		am.sessionManager.SessionDelete(key.(string))
		return true
	})
}

func (am *AdapterManager) commandHandler() {
	for {
		select {
		case req := <-am.cmdChan:
			instance, ok := am.instances.Load(req.SessionID)
			if !ok {
				req.ResultChan <- fmt.Errorf("no adapter instance found for session: %s", req.SessionID)
				continue
			}
			// Use the CommandProcess method of the AdapterInstance
			result, err := instance.(AdapterInstance).CommandProcess(req.SessionID, req.Command)
			if err != nil {
				req.ResultChan <- err
			} else {
				req.ResultChan <- result
			}
		case <-am.stopChan:
			return
		}
	}
}
