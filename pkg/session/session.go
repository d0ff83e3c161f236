package session

import (
	"context"
	"errors"
	"time"

	"github.com/lebronisbest/ootp-storyline-generator/pkg/catalog"
	"github.com/lebronisbest/ootp-storyline-generator/pkg/data"
	"github.com/lebronisbest/ootp-storyline-generator/pkg/log"
	"github.com/lebronisbest/ootp-storyline-generator/pkg/model"
)

// CommandHandler is a function type for command handlers
type CommandHandler func(*Session, model.Command) (interface{}, error)

// Session represents an individual editing session: the active profile,
// the live collection, and the current storyline and article selection.
// Index -1 means no selection.
type Session struct {
	ID              string
	DataManager     *data.DataManager
	Catalog         *catalog.Manager
	Profile         *model.Profile
	Collection      *model.Collection
	StorylineIndex  int
	ArticleIndex    int
	LastActivity    time.Time
	commandHandlers map[string]map[string]CommandHandler
	logger          *log.Logger
}

// NewSession creates a new Session instance with an empty collection.
func NewSession(id string, dataManager *data.DataManager, cat *catalog.Manager, logger *log.Logger) *Session {
	ctx := context.Background()
	logger.Info(ctx, "Creating new Session", log.Fields{"sessionID": id})

	s := &Session{
		ID:             id,
		DataManager:    dataManager,
		Catalog:        cat,
		Collection:     dataManager.StorylineManager.CollectionNew(),
		StorylineIndex: -1,
		ArticleIndex:   -1,
		LastActivity:   time.Now(),
		logger:         logger,
	}
	s.initCommandHandlers()

	logger.Info(ctx, "New Session created successfully", log.Fields{"sessionID": id})
	return s
}

// initCommandHandlers initializes the command handlers map
func (s *Session) initCommandHandlers() {
	s.commandHandlers = map[string]map[string]CommandHandler{
		"file":        initFileCommandHandlers(),
		"storyline":   initStorylineCommandHandlers(),
		"article":     initArticleCommandHandlers(),
		"participant": initParticipantCommandHandlers(),
		"catalog":     initCatalogCommandHandlers(),
		"profile":     initProfileCommandHandlers(),
		"system":      initSystemCommandHandlers(),
	}
}

// CommandRun executes a command within the session context
func (s *Session) CommandRun(cmd model.Command) (interface{}, error) {
	ctx := context.Background()
	s.logger.Info(ctx, "Running command", log.Fields{"command": cmd})

	// Update last activity
	s.LastActivity = time.Now()

	scopeHandlers, ok := s.commandHandlers[cmd.Scope]
	if !ok {
		s.logger.Error(ctx, "Invalid command scope", log.Fields{"scope": cmd.Scope})
		return nil, errors.New("invalid command scope")
	}

	handler, ok := scopeHandlers[cmd.Operation]
	if !ok {
		s.logger.Error(ctx, "Invalid command operation", log.Fields{"operation": cmd.Operation})
		return nil, errors.New("invalid command operation")
	}

	result, err := handler(s, cmd)
	if err != nil {
		s.logger.Error(ctx, "Command execution failed", log.Fields{"error": err})
	} else {
		s.logger.Info(ctx, "Command executed successfully", nil)
	}

	return result, err
}

// ProfileGet retrieves the current profile
func (s *Session) ProfileGet() (*model.Profile, error) {
	if s.Profile == nil {
		s.logger.Warn(context.Background(), "No profile selected", nil)
		return nil, errors.New("no profile selected")
	}
	return s.Profile, nil
}

// ProfileSet sets the current profile
func (s *Session) ProfileSet(profile *model.Profile) {
	ctx := context.Background()
	if profile != nil {
		s.logger.Info(ctx, "Setting current profile", log.Fields{"name": profile.Name})
	} else {
		s.logger.Info(ctx, "Clearing current profile", nil)
	}
	s.Profile = profile
}

// CollectionSet swaps in a collection and clears the selection.
func (s *Session) CollectionSet(collection *model.Collection) {
	s.Collection = collection
	s.StorylineIndex = -1
	s.ArticleIndex = -1
}

// StorylineGet retrieves the currently selected storyline
func (s *Session) StorylineGet() (*model.Storyline, error) {
	if s.StorylineIndex < 0 || s.StorylineIndex >= len(s.Collection.Storylines) {
		s.logger.Warn(context.Background(), "No storyline selected", nil)
		return nil, model.NewValidationWarning("no storyline selected")
	}
	return s.Collection.Storylines[s.StorylineIndex], nil
}

// ArticleGet retrieves the currently selected article
func (s *Session) ArticleGet() (*model.Article, error) {
	storyline, err := s.StorylineGet()
	if err != nil {
		return nil, err
	}
	if s.ArticleIndex < 0 || s.ArticleIndex >= len(storyline.Articles) {
		s.logger.Warn(context.Background(), "No article selected", nil)
		return nil, model.NewValidationWarning("no article selected")
	}
	return storyline.Articles[s.ArticleIndex], nil
}

// initFileCommandHandlers initializes file command handlers
func initFileCommandHandlers() map[string]CommandHandler {
	return map[string]CommandHandler{
		"open":   handleFileOpen,
		"save":   handleFileSave,
		"info":   handleFileInfo,
		"recent": handleFileRecent,
	}
}

// initStorylineCommandHandlers initializes storyline command handlers
func initStorylineCommandHandlers() map[string]CommandHandler {
	return map[string]CommandHandler{
		"add":    handleStorylineAdd,
		"update": handleStorylineUpdate,
		"delete": handleStorylineDelete,
		"select": handleStorylineSelect,
		"list":   handleStorylineList,
		"find":   handleStorylineFind,
		"show":   handleStorylineShow,
	}
}

// initArticleCommandHandlers initializes article command handlers
func initArticleCommandHandlers() map[string]CommandHandler {
	return map[string]CommandHandler{
		"add":      handleArticleAdd,
		"update":   handleArticleUpdate,
		"delete":   handleArticleDelete,
		"select":   handleArticleSelect,
		"show":     handleArticleShow,
		"preset":   handleArticlePreset,
		"renumber": handleArticleRenumber,
		"attrs":    handleArticleAttrs,
	}
}

// initParticipantCommandHandlers initializes participant command handlers
func initParticipantCommandHandlers() map[string]CommandHandler {
	return map[string]CommandHandler{
		"add":    handleParticipantAdd,
		"update": handleParticipantUpdate,
		"delete": handleParticipantDelete,
		"main":   handleParticipantMain,
	}
}

// initCatalogCommandHandlers initializes catalog command handlers
func initCatalogCommandHandlers() map[string]CommandHandler {
	return map[string]CommandHandler{
		"types":   handleCatalogTypes,
		"attrs":   handleCatalogAttrs,
		"presets": handleCatalogPresets,
		"tooltip": handleCatalogTooltip,
	}
}

// initProfileCommandHandlers initializes profile command handlers
func initProfileCommandHandlers() map[string]CommandHandler {
	return map[string]CommandHandler{
		"add":    handleProfileAdd,
		"select": handleProfileSelect,
		"delete": handleProfileDelete,
	}
}

// initSystemCommandHandlers initializes system command handlers
func initSystemCommandHandlers() map[string]CommandHandler {
	return map[string]CommandHandler{
		"exit": handleSystemExit,
		"quit": handleSystemExit,
	}
}
