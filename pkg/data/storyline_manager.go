// Package data provides data management functionality for the storyline
// editor. This file contains operations on collections, storylines,
// participants and articles.
package data

import (
	"context"
	"fmt"
	"strings"

	"github.com/lebronisbest/ootp-storyline-generator/pkg/event"
	"github.com/lebronisbest/ootp-storyline-generator/pkg/log"
	"github.com/lebronisbest/ootp-storyline-generator/pkg/model"
	"github.com/lebronisbest/ootp-storyline-generator/pkg/storage"
)

// StorylineOperations defines the interface for storyline-related operations
type StorylineOperations interface {
	CollectionNew() *model.Collection
	CollectionLoad(profile *model.Profile, path string) (*model.Collection, error)
	CollectionSave(profile *model.Profile, collection *model.Collection, path string) error
	StorylineAdd(collection *model.Collection, storyline *model.Storyline) int
	StorylineUpdate(collection *model.Collection, index int, storyline *model.Storyline)
	StorylineDelete(collection *model.Collection, index int)
	StorylineFind(collection *model.Collection, id string) int
	SetMainActor(storyline *model.Storyline, index int)
	ParticipantAdd(storyline *model.Storyline, objType string) *model.DataObject
	ParticipantDelete(storyline *model.Storyline, index int)
	ArticleAdd(storyline *model.Storyline) *model.Article
	ArticleDelete(storyline *model.Storyline, index int) error
	ApplyPreset(article *model.Article, preset map[string]string)
}

// StorylineManager handles all storyline-related operations.
type StorylineManager struct {
	eventManager *event.EventManager
	logger       *log.Logger
}

// NewStorylineManager creates a new StorylineManager instance.
func NewStorylineManager(eventManager *event.EventManager, logger *log.Logger) (*StorylineManager, error) {
	ctx := context.Background()

	if eventManager == nil {
		return nil, fmt.Errorf("eventManager not initialized")
	}
	if logger == nil {
		return nil, fmt.Errorf("logger not initialized")
	}

	sm := &StorylineManager{
		eventManager: eventManager,
		logger:       logger,
	}

	logger.Info(ctx, "StorylineManager created successfully", nil)
	return sm, nil
}

// CollectionNew returns an empty collection.
func (sm *StorylineManager) CollectionNew() *model.Collection {
	return &model.Collection{}
}

// CollectionLoad reads and parses a storyline file. The caller swaps its
// live collection only on success; a failed load changes nothing.
func (sm *StorylineManager) CollectionLoad(profile *model.Profile, path string) (*model.Collection, error) {
	ctx := context.Background()
	sm.logger.Info(ctx, "Loading collection", log.Fields{"path": path})

	collection, err := storage.FileImport(path)
	if err != nil {
		sm.logger.Error(ctx, "Failed to load collection", log.Fields{"error": err, "path": path})
		return nil, err
	}

	sm.eventManager.Publish(event.Event{
		Type: event.CollectionLoaded,
		Data: &model.RecentFile{ProfileID: profile.ID, Path: path},
	})

	sm.logger.Info(ctx, "Collection loaded successfully", log.Fields{"path": path, "storylines": len(collection.Storylines)})
	return collection, nil
}

// CollectionSave serializes the collection and writes it to path. Saving
// an empty collection is refused with a warning. The live collection is
// never modified by a failed save.
func (sm *StorylineManager) CollectionSave(profile *model.Profile, collection *model.Collection, path string) error {
	ctx := context.Background()
	sm.logger.Info(ctx, "Saving collection", log.Fields{"path": path, "storylines": len(collection.Storylines)})

	if len(collection.Storylines) == 0 {
		return model.NewValidationWarning("no storylines to save")
	}

	data, err := storage.FileExport(collection, path)
	if err != nil {
		sm.logger.Error(ctx, "Failed to save collection", log.Fields{"error": err, "path": path})
		return err
	}
	collection.FilePath = path

	sm.eventManager.Publish(event.Event{
		Type: event.CollectionSaved,
		Data: &model.Snapshot{ProfileID: profile.ID, Path: path, Payload: data},
	})

	sm.logger.Info(ctx, "Collection saved successfully", log.Fields{"path": path})
	return nil
}

// StorylineAdd appends a storyline and returns its index. Insertion order
// is kept; the collection is only sorted when loaded from a file.
func (sm *StorylineManager) StorylineAdd(collection *model.Collection, storyline *model.Storyline) int {
	storyline.FillDefaults()
	collection.Storylines = append(collection.Storylines, storyline)
	index := len(collection.Storylines) - 1

	sm.eventManager.Publish(event.Event{Type: event.StorylineAdded, Data: storyline})
	sm.logger.Info(context.Background(), "Storyline added", log.Fields{"id": storyline.ID(), "index": index})
	return index
}

// StorylineUpdate replaces the storyline at index.
func (sm *StorylineManager) StorylineUpdate(collection *model.Collection, index int, storyline *model.Storyline) {
	storyline.FillDefaults()
	collection.Storylines[index] = storyline

	sm.eventManager.Publish(event.Event{Type: event.StorylineUpdated, Data: storyline})
	sm.logger.Info(context.Background(), "Storyline updated", log.Fields{"id": storyline.ID(), "index": index})
}

// StorylineDelete removes the storyline at index. Remaining ids are left
// alone; the file format does not require them to be contiguous.
func (sm *StorylineManager) StorylineDelete(collection *model.Collection, index int) {
	deleted := collection.Storylines[index]
	collection.Storylines = append(collection.Storylines[:index], collection.Storylines[index+1:]...)

	sm.eventManager.Publish(event.Event{Type: event.StorylineDeleted, Data: deleted})
	sm.logger.Info(context.Background(), "Storyline deleted", log.Fields{"id": deleted.ID(), "index": index})
}

// StorylineFind returns the index of the storyline with the given id, or
// -1 when absent.
func (sm *StorylineManager) StorylineFind(collection *model.Collection, id string) int {
	for i, s := range collection.Storylines {
		if s.ID() == id {
			return i
		}
	}
	return -1
}

// StorylineSearch returns the indexes of storylines whose id contains the
// given substring.
func (sm *StorylineManager) StorylineSearch(collection *model.Collection, query string) []int {
	var matches []int
	for i, s := range collection.Storylines {
		if strings.Contains(s.ID(), query) {
			matches = append(matches, i)
		}
	}
	return matches
}

// SetMainActor marks the participant at index as the main actor and
// clears the flag everywhere else. At most one participant ever carries
// it.
func (sm *StorylineManager) SetMainActor(storyline *model.Storyline, index int) {
	for _, d := range storyline.RequiredData {
		d.MainActor = false
	}
	storyline.RequiredData[index].MainActor = true
}

// ParticipantAdd appends a participant requirement of the given type.
func (sm *StorylineManager) ParticipantAdd(storyline *model.Storyline, objType string) *model.DataObject {
	d := &model.DataObject{
		Type:       objType,
		Attributes: make(map[string]string),
	}
	storyline.RequiredData = append(storyline.RequiredData, d)
	return d
}

// ParticipantDelete removes the participant at index.
func (sm *StorylineManager) ParticipantDelete(storyline *model.Storyline, index int) {
	storyline.RequiredData = append(storyline.RequiredData[:index], storyline.RequiredData[index+1:]...)
}

// ArticleAdd appends a new empty article and returns it.
func (sm *StorylineManager) ArticleAdd(storyline *model.Storyline) *model.Article {
	a := &model.Article{
		ID:        fmt.Sprintf("article_%d", len(storyline.Articles)+1),
		Modifiers: make(map[string]string),
	}
	storyline.Articles = append(storyline.Articles, a)

	sm.eventManager.Publish(event.Event{Type: event.ArticleAdded, Data: a})
	return a
}

// ArticleDelete removes the article at index. A storyline keeps at least
// one article; deleting the last one is refused with a warning.
func (sm *StorylineManager) ArticleDelete(storyline *model.Storyline, index int) error {
	if len(storyline.Articles) <= 1 {
		return model.NewValidationWarning("a storyline needs at least one article")
	}
	deleted := storyline.Articles[index]
	storyline.Articles = append(storyline.Articles[:index], storyline.Articles[index+1:]...)

	sm.eventManager.Publish(event.Event{Type: event.ArticleDeleted, Data: deleted})
	return nil
}

// ApplyPreset assigns every preset value to the article's modifiers. An
// empty preset value clears the modifier.
func (sm *StorylineManager) ApplyPreset(article *model.Article, preset map[string]string) {
	if article.Modifiers == nil {
		article.Modifiers = make(map[string]string)
	}
	for name, value := range preset {
		if value == "" {
			delete(article.Modifiers, name)
			continue
		}
		article.Modifiers[name] = value
	}
}
