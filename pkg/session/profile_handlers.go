package session

import (
	"context"
	"errors"
	"fmt"

	"github.com/lebronisbest/ootp-storyline-generator/pkg/log"
	"github.com/lebronisbest/ootp-storyline-generator/pkg/model"
)

// handleProfileAdd handles the profile add command
func handleProfileAdd(s *Session, cmd model.Command) (interface{}, error) {
	ctx := context.Background()
	s.logger.Info(ctx, "Handling profile add command", log.Fields{"name": cmd.Args[0]})

	name := cmd.Args[0]
	var password string
	if len(cmd.Args) == 2 {
		password = cmd.Args[1]
	}

	profileID, err := s.DataManager.ProfileManager.ProfileAdd(name, password)
	if err != nil {
		return nil, fmt.Errorf("failed to add profile: %w", err)
	}

	s.logger.Info(ctx, "Profile added successfully", log.Fields{"profileID": profileID})
	return fmt.Sprintf("Profile '%s' added", name), nil
}

// handleProfileSelect handles the profile select command
func handleProfileSelect(s *Session, cmd model.Command) (interface{}, error) {
	ctx := context.Background()
	s.logger.Info(ctx, "Handling profile select command", log.Fields{"name": cmd.Args[0]})

	name := cmd.Args[0]
	var password string
	if len(cmd.Args) == 2 {
		password = cmd.Args[1]
	}

	ok, err := s.DataManager.ProfileManager.ProfileAuthenticate(name, password)
	if err != nil {
		return nil, fmt.Errorf("failed to authenticate profile: %w", err)
	}
	if !ok {
		return nil, errors.New("authentication failed")
	}

	profiles, err := s.DataManager.ProfileManager.ProfileGet(model.ProfileInfo{Name: name}, model.ProfileFilter{Name: true})
	if err != nil {
		return nil, fmt.Errorf("failed to get profile: %w", err)
	}
	if len(profiles) == 0 {
		return nil, fmt.Errorf("profile not found: %s", name)
	}

	s.ProfileSet(profiles[0])
	return fmt.Sprintf("Profile '%s' selected", name), nil
}

// handleProfileDelete handles the profile delete command. Only the
// currently selected profile can be deleted.
func handleProfileDelete(s *Session, cmd model.Command) (interface{}, error) {
	ctx := context.Background()
	s.logger.Info(ctx, "Handling profile delete command", log.Fields{"name": cmd.Args[0]})

	current, err := s.ProfileGet()
	if err != nil {
		return nil, err
	}

	name := cmd.Args[0]
	if name != current.Name {
		return nil, fmt.Errorf("can only delete the current profile")
	}

	if err := s.DataManager.ProfileManager.ProfileDelete(current); err != nil {
		return nil, fmt.Errorf("failed to delete profile: %w", err)
	}

	s.ProfileSet(nil)
	return fmt.Sprintf("Profile '%s' deleted", name), nil
}
