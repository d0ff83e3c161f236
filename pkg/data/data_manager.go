// This file coordinates operations between the profile and storyline
// managers and wires event subscriptions into workspace storage.
package data

import (
	"context"
	"fmt"

	"github.com/lebronisbest/ootp-storyline-generator/pkg/event"
	"github.com/lebronisbest/ootp-storyline-generator/pkg/log"
	"github.com/lebronisbest/ootp-storyline-generator/pkg/model"
	"github.com/lebronisbest/ootp-storyline-generator/pkg/storage"
)

// DataManager is the main struct that coordinates all data operations
type DataManager struct {
	ProfileManager   *ProfileManager
	StorylineManager *StorylineManager
	EventManager     *event.EventManager
	Config           *model.Config
	Logger           *log.Logger

	workspaceStore storage.WorkspaceStore
}

// NewDataManager creates a new DataManager instance
func NewDataManager(profileStore storage.ProfileStore, workspaceStore storage.WorkspaceStore, cfg *model.Config, logger *log.Logger) (*DataManager, error) {
	eventManager := event.NewEventManager(logger)
	m := &DataManager{
		EventManager:   eventManager,
		Config:         cfg,
		Logger:         logger,
		workspaceStore: workspaceStore,
	}

	// Initialize ProfileManager
	var err error
	m.ProfileManager, err = NewProfileManager(profileStore, eventManager, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to create ProfileManager: %w", err)
	}

	// Initialize StorylineManager
	m.StorylineManager, err = NewStorylineManager(eventManager, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to create StorylineManager: %w", err)
	}

	// Handle default profile logic
	if cfg.DefaultProfileActive {
		exists, err := m.ProfileManager.ProfileGet(model.ProfileInfo{Name: cfg.DefaultProfile}, model.ProfileFilter{Name: true})
		if err != nil {
			return nil, fmt.Errorf("failed to check default profile existence: %w", err)
		}
		if len(exists) == 0 {
			_, err = m.ProfileManager.ProfileAdd(cfg.DefaultProfile, cfg.DefaultProfilePassword)
			if err != nil {
				return nil, fmt.Errorf("failed to create default profile: %w", err)
			}
		}
	}

	// Record recent files on every successful load
	eventManager.Subscribe(event.CollectionLoaded, m.handleCollectionLoaded)

	// Record snapshots on every successful save
	eventManager.Subscribe(event.CollectionSaved, m.handleCollectionSaved)

	return m, nil
}

// handleCollectionLoaded records the opened path in the profile's recent
// file list.
func (m *DataManager) handleCollectionLoaded(e event.Event) {
	recent, ok := e.Data.(*model.RecentFile)
	if !ok {
		return
	}
	if err := m.workspaceStore.RecentFileAdd(recent.ProfileID, recent.Path); err != nil {
		m.Logger.Error(context.Background(), "Failed to record recent file", log.Fields{"error": err, "path": recent.Path})
	}
}

// handleCollectionSaved records the saved payload as a snapshot, pruned to
// the configured limit.
func (m *DataManager) handleCollectionSaved(e event.Event) {
	snap, ok := e.Data.(*model.Snapshot)
	if !ok {
		return
	}
	if _, err := m.workspaceStore.SnapshotAdd(snap.ProfileID, snap.Path, snap.Payload, m.Config.SnapshotLimit); err != nil {
		m.Logger.Error(context.Background(), "Failed to record snapshot", log.Fields{"error": err, "path": snap.Path})
	}
}

// RecentFiles returns the profile's recently opened paths, newest first.
func (m *DataManager) RecentFiles(profile *model.Profile, limit int) ([]*model.RecentFile, error) {
	files, err := m.workspaceStore.RecentFileGet(profile.ID, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to get recent files: %w", err)
	}
	return files, nil
}
