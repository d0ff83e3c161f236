// This file contains operations related to profile management.
package data

import (
	"context"
	"fmt"

	"golang.org/x/crypto/bcrypt"

	"github.com/lebronisbest/ootp-storyline-generator/pkg/event"
	"github.com/lebronisbest/ootp-storyline-generator/pkg/log"
	"github.com/lebronisbest/ootp-storyline-generator/pkg/model"
	"github.com/lebronisbest/ootp-storyline-generator/pkg/storage"
)

// ProfileOperations defines the interface for profile-related operations
type ProfileOperations interface {
	ProfileAdd(name, password string) (int, error)
	ProfileAuthenticate(name, password string) (bool, error)
	ProfileGet(profileInfo model.ProfileInfo, profileFilter model.ProfileFilter) ([]*model.Profile, error)
	ProfileDelete(profile *model.Profile) error
}

// ProfileManager handles all profile-related operations.
type ProfileManager struct {
	profileStore storage.ProfileStore
	eventManager *event.EventManager
	logger       *log.Logger
}

// NewProfileManager creates a new ProfileManager instance.
func NewProfileManager(profileStore storage.ProfileStore, eventManager *event.EventManager, logger *log.Logger) (*ProfileManager, error) {
	ctx := context.Background()

	if profileStore == nil {
		return nil, fmt.Errorf("profileStore not initialized")
	}
	if eventManager == nil {
		return nil, fmt.Errorf("eventManager not initialized")
	}
	if logger == nil {
		return nil, fmt.Errorf("logger not initialized")
	}

	pm := &ProfileManager{
		profileStore: profileStore,
		eventManager: eventManager,
		logger:       logger,
	}

	logger.Info(ctx, "ProfileManager created successfully", nil)
	return pm, nil
}

// ProfileAdd creates a new profile with the given name and password.
func (pm *ProfileManager) ProfileAdd(name, password string) (int, error) {
	ctx := context.Background()
	pm.logger.Info(ctx, "Adding new profile", log.Fields{"name": name})

	// Check if the profile already exists
	existing, err := pm.ProfileGet(model.ProfileInfo{Name: name}, model.ProfileFilter{Name: true})
	if err != nil {
		pm.logger.Error(ctx, "Error checking profile existence", log.Fields{"error": err, "name": name})
		return 0, fmt.Errorf("error checking profile existence: %w", err)
	}
	if len(existing) > 0 {
		pm.logger.Warn(ctx, "Profile already exists", log.Fields{"name": name})
		return 0, fmt.Errorf("profile '%s' already exists", name)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		pm.logger.Error(ctx, "Failed to hash password", log.Fields{"error": err})
		return 0, fmt.Errorf("failed to hash password: %w", err)
	}

	profileID, err := pm.profileStore.ProfileAdd(model.ProfileInfo{Name: name, PasswordHash: hash, Active: true})
	if err != nil {
		pm.logger.Error(ctx, "Failed to create profile", log.Fields{"error": err, "name": name})
		return 0, fmt.Errorf("failed to create profile: %w", err)
	}

	pm.logger.Info(ctx, "Profile added successfully", log.Fields{"profileID": profileID, "name": name})
	return profileID, nil
}

// ProfileAuthenticate verifies a profile's credentials.
func (pm *ProfileManager) ProfileAuthenticate(name, password string) (bool, error) {
	ctx := context.Background()
	pm.logger.Info(ctx, "Authenticating profile", log.Fields{"name": name})

	profiles, err := pm.ProfileGet(model.ProfileInfo{Name: name}, model.ProfileFilter{Name: true})
	if err != nil {
		pm.logger.Error(ctx, "Error retrieving profile", log.Fields{"error": err, "name": name})
		return false, fmt.Errorf("error retrieving profile: %w", err)
	}
	if len(profiles) == 0 {
		pm.logger.Warn(ctx, "Profile doesn't exist", log.Fields{"name": name})
		return false, fmt.Errorf("profile '%s' doesn't exist", name)
	}

	err = bcrypt.CompareHashAndPassword(profiles[0].PasswordHash, []byte(password))
	if err != nil {
		pm.logger.Warn(ctx, "Authentication failed", log.Fields{"name": name})
		return false, nil
	}

	pm.logger.Info(ctx, "Profile authenticated successfully", log.Fields{"name": name})
	return true, nil
}

// ProfileGet retrieves profiles based on the provided info and filter.
func (pm *ProfileManager) ProfileGet(profileInfo model.ProfileInfo, profileFilter model.ProfileFilter) ([]*model.Profile, error) {
	profiles, err := pm.profileStore.ProfileGet(profileInfo, profileFilter)
	if err != nil {
		pm.logger.Error(context.Background(), "Failed to get profiles", log.Fields{"error": err})
		return nil, fmt.Errorf("failed to get profiles: %w", err)
	}
	return profiles, nil
}

// ProfileDelete removes a profile and all associated workspace data.
func (pm *ProfileManager) ProfileDelete(profile *model.Profile) error {
	ctx := context.Background()
	pm.logger.Info(ctx, "Deleting profile", log.Fields{"profileID": profile.ID, "name": profile.Name})

	err := pm.profileStore.ProfileDelete(profile)
	if err != nil {
		pm.logger.Error(ctx, "Failed to delete profile", log.Fields{"error": err, "profileID": profile.ID})
		return fmt.Errorf("failed to delete profile: %w", err)
	}

	// Publish ProfileDeleted event
	pm.eventManager.Publish(event.Event{
		Type: event.ProfileDeleted,
		Data: profile,
	})

	pm.logger.Info(ctx, "Profile deleted successfully", log.Fields{"profileID": profile.ID, "name": profile.Name})
	return nil
}
