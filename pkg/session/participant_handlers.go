package session

import (
	"context"
	"fmt"
	"strconv"

	"github.com/lebronisbest/ootp-storyline-generator/pkg/log"
	"github.com/lebronisbest/ootp-storyline-generator/pkg/model"
)

// handleParticipantAdd handles the participant add command. The first
// participant of a storyline becomes the main actor.
func handleParticipantAdd(s *Session, cmd model.Command) (interface{}, error) {
	ctx := context.Background()
	s.logger.Info(ctx, "Handling participant add command", log.Fields{"args": cmd.Args})

	storyline, err := s.StorylineGet()
	if err != nil {
		return nil, err
	}

	objType := cmd.Args[0]
	d := s.DataManager.StorylineManager.ParticipantAdd(storyline, objType)
	if len(storyline.RequiredData) == 1 {
		d.MainActor = true
	}

	return fmt.Sprintf("Participant %d added: %s", len(storyline.RequiredData)-1, objType), nil
}

// handleParticipantUpdate handles the participant update command. An
// empty value clears the attribute.
func handleParticipantUpdate(s *Session, cmd model.Command) (interface{}, error) {
	ctx := context.Background()
	s.logger.Info(ctx, "Handling participant update command", log.Fields{"args": cmd.Args})

	storyline, err := s.StorylineGet()
	if err != nil {
		return nil, err
	}

	index, err := participantIndex(storyline, cmd.Args[0])
	if err != nil {
		return nil, err
	}

	name, value := cmd.Args[1], cmd.Args[2]
	d := storyline.RequiredData[index]
	if name == "type" {
		d.Type = value
	} else if value == "" {
		delete(d.Attributes, name)
	} else {
		if d.Attributes == nil {
			d.Attributes = make(map[string]string)
		}
		d.Attributes[name] = value
	}

	return fmt.Sprintf("Participant %d updated: %s=%q", index, name, value), nil
}

// handleParticipantDelete handles the participant delete command
func handleParticipantDelete(s *Session, cmd model.Command) (interface{}, error) {
	ctx := context.Background()
	s.logger.Info(ctx, "Handling participant delete command", log.Fields{"args": cmd.Args})

	storyline, err := s.StorylineGet()
	if err != nil {
		return nil, err
	}

	index, err := participantIndex(storyline, cmd.Args[0])
	if err != nil {
		return nil, err
	}

	s.DataManager.StorylineManager.ParticipantDelete(storyline, index)
	return fmt.Sprintf("Participant %d deleted", index), nil
}

// handleParticipantMain handles the participant main command
func handleParticipantMain(s *Session, cmd model.Command) (interface{}, error) {
	ctx := context.Background()
	s.logger.Info(ctx, "Handling participant main command", log.Fields{"args": cmd.Args})

	storyline, err := s.StorylineGet()
	if err != nil {
		return nil, err
	}

	index, err := participantIndex(storyline, cmd.Args[0])
	if err != nil {
		return nil, err
	}

	s.DataManager.StorylineManager.SetMainActor(storyline, index)
	return fmt.Sprintf("Participant %d is now the main actor", index), nil
}

// participantIndex parses and range-checks a participant index argument.
func participantIndex(storyline *model.Storyline, arg string) (int, error) {
	index, err := strconv.Atoi(arg)
	if err != nil || index < 0 || index >= len(storyline.RequiredData) {
		return 0, fmt.Errorf("invalid participant index: %s", arg)
	}
	return index, nil
}
