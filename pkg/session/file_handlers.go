package session

import (
	"context"
	"fmt"

	"github.com/lebronisbest/ootp-storyline-generator/pkg/log"
	"github.com/lebronisbest/ootp-storyline-generator/pkg/model"
)

// handleFileOpen handles the file open command. The session's collection
// is only swapped after a successful parse.
func handleFileOpen(s *Session, cmd model.Command) (interface{}, error) {
	ctx := context.Background()
	s.logger.Info(ctx, "Handling file open command", log.Fields{"args": cmd.Args})

	profile, err := s.ProfileGet()
	if err != nil {
		return nil, err
	}

	path := cmd.Args[0]
	collection, err := s.DataManager.StorylineManager.CollectionLoad(profile, path)
	if err != nil {
		s.logger.Error(ctx, "Failed to open file", log.Fields{"error": err, "path": path})
		return nil, err
	}

	s.CollectionSet(collection)
	return fmt.Sprintf("Opened '%s' with %d storylines", path, len(collection.Storylines)), nil
}

// handleFileSave handles the file save command. Without an argument the
// collection is written back to the path it was loaded from.
func handleFileSave(s *Session, cmd model.Command) (interface{}, error) {
	ctx := context.Background()
	s.logger.Info(ctx, "Handling file save command", log.Fields{"args": cmd.Args})

	profile, err := s.ProfileGet()
	if err != nil {
		return nil, err
	}

	path := s.Collection.FilePath
	if len(cmd.Args) == 1 {
		path = cmd.Args[0]
	}
	if path == "" {
		return nil, model.NewValidationWarning("no file path; use file save <path>")
	}

	if err := s.DataManager.StorylineManager.CollectionSave(profile, s.Collection, path); err != nil {
		return nil, err
	}

	return fmt.Sprintf("Saved %d storylines to '%s'", len(s.Collection.Storylines), path), nil
}

// handleFileInfo handles the file info command
func handleFileInfo(s *Session, cmd model.Command) (interface{}, error) {
	path := s.Collection.FilePath
	if path == "" {
		path = "(unsaved)"
	}
	version := s.Collection.FileVersion
	if version == "" {
		version = "(none)"
	}
	return fmt.Sprintf("File: %s\nVersion: %s\nStorylines: %d", path, version, len(s.Collection.Storylines)), nil
}

// handleFileRecent handles the file recent command
func handleFileRecent(s *Session, cmd model.Command) (interface{}, error) {
	profile, err := s.ProfileGet()
	if err != nil {
		return nil, err
	}

	files, err := s.DataManager.RecentFiles(profile, 10)
	if err != nil {
		return nil, fmt.Errorf("failed to list recent files: %w", err)
	}
	if len(files) == 0 {
		return "No recent files", nil
	}

	out := "Recent files:\n"
	for i, f := range files {
		out += fmt.Sprintf("%d: %s (%s)\n", i+1, f.Path, f.Opened.Format("2006-01-02 15:04:05"))
	}
	return out, nil
}
