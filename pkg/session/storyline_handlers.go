package session

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/lebronisbest/ootp-storyline-generator/pkg/log"
	"github.com/lebronisbest/ootp-storyline-generator/pkg/model"
)

// handleStorylineAdd handles the storyline add command. Without an id
// argument the next free numeric id is used. The new storyline gets one
// empty article and a default random_frequency.
func handleStorylineAdd(s *Session, cmd model.Command) (interface{}, error) {
	ctx := context.Background()
	s.logger.Info(ctx, "Handling storyline add command", log.Fields{"args": cmd.Args})

	id := ""
	if len(cmd.Args) == 1 {
		id = cmd.Args[0]
	} else {
		id = strconv.Itoa(nextStorylineID(s.Collection))
	}

	storyline := model.NewStoryline(id)
	storyline.Attributes["random_frequency"] = "1000"

	index := s.DataManager.StorylineManager.StorylineAdd(s.Collection, storyline)
	s.DataManager.StorylineManager.ArticleAdd(storyline)

	s.StorylineIndex = index
	s.ArticleIndex = 0

	return fmt.Sprintf("Storyline '%s' added and selected", id), nil
}

// nextStorylineID returns one past the highest numeric id in use.
func nextStorylineID(c *model.Collection) int {
	next := 1
	for _, s := range c.Storylines {
		if n, err := strconv.Atoi(s.ID()); err == nil && n >= next {
			next = n + 1
		}
	}
	return next
}

// handleStorylineUpdate handles the storyline update command. It sets one
// attribute on the selected storyline; an empty value clears it.
func handleStorylineUpdate(s *Session, cmd model.Command) (interface{}, error) {
	ctx := context.Background()
	s.logger.Info(ctx, "Handling storyline update command", log.Fields{"args": cmd.Args})

	storyline, err := s.StorylineGet()
	if err != nil {
		return nil, err
	}

	name, value := cmd.Args[0], cmd.Args[1]
	storyline.Attributes[name] = value
	s.DataManager.StorylineManager.StorylineUpdate(s.Collection, s.StorylineIndex, storyline)

	return fmt.Sprintf("Storyline '%s' updated: %s=%q", storyline.ID(), name, value), nil
}

// handleStorylineDelete handles the storyline delete command
func handleStorylineDelete(s *Session, cmd model.Command) (interface{}, error) {
	ctx := context.Background()
	s.logger.Info(ctx, "Handling storyline delete command", nil)

	storyline, err := s.StorylineGet()
	if err != nil {
		return nil, err
	}

	id := storyline.ID()
	s.DataManager.StorylineManager.StorylineDelete(s.Collection, s.StorylineIndex)
	s.StorylineIndex = -1
	s.ArticleIndex = -1

	return fmt.Sprintf("Storyline '%s' deleted", id), nil
}

// handleStorylineSelect handles the storyline select command. The argument
// is matched against storyline ids first, then treated as a list index.
func handleStorylineSelect(s *Session, cmd model.Command) (interface{}, error) {
	ctx := context.Background()
	s.logger.Info(ctx, "Handling storyline select command", log.Fields{"args": cmd.Args})

	arg := cmd.Args[0]
	index := s.DataManager.StorylineManager.StorylineFind(s.Collection, arg)
	if index == -1 {
		if n, err := strconv.Atoi(arg); err == nil && n >= 0 && n < len(s.Collection.Storylines) {
			index = n
		}
	}
	if index == -1 {
		return nil, fmt.Errorf("storyline not found: %s", arg)
	}

	s.StorylineIndex = index
	if len(s.Collection.Storylines[index].Articles) > 0 {
		s.ArticleIndex = 0
	} else {
		s.ArticleIndex = -1
	}

	return fmt.Sprintf("Storyline '%s' selected", s.Collection.Storylines[index].ID()), nil
}

// handleStorylineList handles the storyline list command
func handleStorylineList(s *Session, cmd model.Command) (interface{}, error) {
	if len(s.Collection.Storylines) == 0 {
		return "No storylines", nil
	}

	var b strings.Builder
	for i, st := range s.Collection.Storylines {
		marker := " "
		if i == s.StorylineIndex {
			marker = "*"
		}
		fmt.Fprintf(&b, "%s %d: %s (articles: %d, participants: %d)\n",
			marker, i, st.ID(), len(st.Articles), len(st.RequiredData))
	}
	return b.String(), nil
}

// handleStorylineFind handles the storyline find command
func handleStorylineFind(s *Session, cmd model.Command) (interface{}, error) {
	query := cmd.Args[0]
	matches := s.DataManager.StorylineManager.StorylineSearch(s.Collection, query)
	if len(matches) == 0 {
		return fmt.Sprintf("No storylines matching '%s'", query), nil
	}

	var b strings.Builder
	for _, i := range matches {
		fmt.Fprintf(&b, "%d: %s\n", i, s.Collection.Storylines[i].ID())
	}
	return b.String(), nil
}

// handleStorylineShow handles the storyline show command
func handleStorylineShow(s *Session, cmd model.Command) (interface{}, error) {
	storyline, err := s.StorylineGet()
	if err != nil {
		return nil, err
	}

	var b strings.Builder
	fmt.Fprintf(&b, "Storyline %s\n", storyline.ID())
	for _, name := range model.StorylineAttributes {
		if v := storyline.Attributes[name]; v != "" {
			fmt.Fprintf(&b, "  %s: %s\n", name, v)
		}
	}
	for i, d := range storyline.RequiredData {
		main := ""
		if d.MainActor {
			main = " [main]"
		}
		fmt.Fprintf(&b, "  participant %d: %s%s\n", i, d.Type, main)
	}
	for i, a := range storyline.Articles {
		status := "complete"
		if !a.Complete() {
			status = "empty"
		}
		fmt.Fprintf(&b, "  article %d: %s (%s)\n", i, a.ID, status)
	}
	return b.String(), nil
}
