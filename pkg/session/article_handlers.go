package session

import (
	"context"
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/lebronisbest/ootp-storyline-generator/pkg/log"
	"github.com/lebronisbest/ootp-storyline-generator/pkg/model"
	"github.com/lebronisbest/ootp-storyline-generator/pkg/tag"
)

// handleArticleAdd handles the article add command
func handleArticleAdd(s *Session, cmd model.Command) (interface{}, error) {
	ctx := context.Background()
	s.logger.Info(ctx, "Handling article add command", nil)

	storyline, err := s.StorylineGet()
	if err != nil {
		return nil, err
	}

	article := s.DataManager.StorylineManager.ArticleAdd(storyline)
	s.ArticleIndex = len(storyline.Articles) - 1

	return fmt.Sprintf("Article '%s' added and selected", article.ID), nil
}

// handleArticleUpdate handles the article update command. The field is
// subject, text or injury; any other name is treated as a modifier
// attribute, where an empty value clears it.
func handleArticleUpdate(s *Session, cmd model.Command) (interface{}, error) {
	ctx := context.Background()
	s.logger.Info(ctx, "Handling article update command", log.Fields{"args": cmd.Args})

	article, err := s.ArticleGet()
	if err != nil {
		return nil, err
	}

	field, value := cmd.Args[0], cmd.Args[1]
	switch field {
	case "subject":
		article.Subject = value
	case "text":
		article.Text = value
	case "injury":
		article.InjuryDescription = value
	default:
		if article.Modifiers == nil {
			article.Modifiers = make(map[string]string)
		}
		if value == "" {
			delete(article.Modifiers, field)
		} else {
			article.Modifiers[field] = value
		}
	}

	return fmt.Sprintf("Article '%s' updated: %s=%q", article.ID, field, value), nil
}

// handleArticleDelete handles the article delete command. Without an
// argument the selected article is deleted.
func handleArticleDelete(s *Session, cmd model.Command) (interface{}, error) {
	ctx := context.Background()
	s.logger.Info(ctx, "Handling article delete command", log.Fields{"args": cmd.Args})

	storyline, err := s.StorylineGet()
	if err != nil {
		return nil, err
	}

	index := s.ArticleIndex
	if len(cmd.Args) == 1 {
		index, err = strconv.Atoi(cmd.Args[0])
		if err != nil || index < 0 || index >= len(storyline.Articles) {
			return nil, fmt.Errorf("invalid article index: %s", cmd.Args[0])
		}
	}
	if index < 0 || index >= len(storyline.Articles) {
		return nil, model.NewValidationWarning("no article selected")
	}

	id := storyline.Articles[index].ID
	if err := s.DataManager.StorylineManager.ArticleDelete(storyline, index); err != nil {
		return nil, err
	}
	if s.ArticleIndex >= len(storyline.Articles) {
		s.ArticleIndex = len(storyline.Articles) - 1
	}

	return fmt.Sprintf("Article '%s' deleted", id), nil
}

// handleArticleSelect handles the article select command
func handleArticleSelect(s *Session, cmd model.Command) (interface{}, error) {
	storyline, err := s.StorylineGet()
	if err != nil {
		return nil, err
	}

	index, err := strconv.Atoi(cmd.Args[0])
	if err != nil || index < 0 || index >= len(storyline.Articles) {
		return nil, fmt.Errorf("invalid article index: %s", cmd.Args[0])
	}

	s.ArticleIndex = index
	return fmt.Sprintf("Article '%s' selected", storyline.Articles[index].ID), nil
}

// handleArticleShow handles the article show command
func handleArticleShow(s *Session, cmd model.Command) (interface{}, error) {
	article, err := s.ArticleGet()
	if err != nil {
		return nil, err
	}

	var b strings.Builder
	fmt.Fprintf(&b, "Article %s\n", article.ID)
	if article.Subject != "" {
		fmt.Fprintf(&b, "  subject: %s\n", article.Subject)
	}
	if article.Text != "" {
		fmt.Fprintf(&b, "  text: %s\n", article.Text)
	}
	if article.InjuryDescription != "" {
		fmt.Fprintf(&b, "  injury: %s\n", article.InjuryDescription)
	}
	names := make([]string, 0, len(article.Modifiers))
	for name := range article.Modifiers {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		fmt.Fprintf(&b, "  %s: %s\n", name, article.Modifiers[name])
	}
	if !article.Complete() {
		b.WriteString("  (empty article)\n")
	}
	return b.String(), nil
}

// handleArticlePreset handles the article preset command. It applies a
// catalog preset's modifier values to the selected article in one step.
func handleArticlePreset(s *Session, cmd model.Command) (interface{}, error) {
	ctx := context.Background()
	s.logger.Info(ctx, "Handling article preset command", log.Fields{"args": cmd.Args})

	article, err := s.ArticleGet()
	if err != nil {
		return nil, err
	}

	category, name := cmd.Args[0], cmd.Args[1]
	presets := s.Catalog.Presets(category)
	if presets == nil {
		return nil, fmt.Errorf("unknown preset category: %s", category)
	}
	preset, ok := presets[name]
	if !ok {
		return nil, fmt.Errorf("unknown preset '%s' in category '%s'", name, category)
	}

	s.DataManager.StorylineManager.ApplyPreset(article, preset)
	return fmt.Sprintf("Preset '%s' applied to article '%s' (%d attributes)", name, article.ID, len(preset)), nil
}

// handleArticleRenumber handles the article renumber command. Every link
// tag in the article text is pointed at the given participant number.
func handleArticleRenumber(s *Session, cmd model.Command) (interface{}, error) {
	ctx := context.Background()
	s.logger.Info(ctx, "Handling article renumber command", log.Fields{"args": cmd.Args})

	article, err := s.ArticleGet()
	if err != nil {
		return nil, err
	}

	n, err := strconv.Atoi(cmd.Args[0])
	if err != nil || n < 1 {
		return nil, fmt.Errorf("invalid tag number: %s", cmd.Args[0])
	}

	updated, count := tag.Renumber(article.Text, n)
	if count == 0 {
		return "No tags to renumber", nil
	}
	article.Text = updated

	return fmt.Sprintf("Renumbered %d tags to #%d", count, n), nil
}

// handleArticleAttrs handles the article attrs command. It lists catalog
// modifier names filtered by an optional substring; --set restricts the
// list to modifiers populated on the selected article.
func handleArticleAttrs(s *Session, cmd model.Command) (interface{}, error) {
	query := ""
	setOnly := false
	for _, arg := range cmd.Args {
		if arg == "--set" {
			setOnly = true
		} else {
			query = arg
		}
	}

	var names []string
	if setOnly {
		article, err := s.ArticleGet()
		if err != nil {
			return nil, err
		}
		for name, v := range article.Modifiers {
			if v != "" {
				names = append(names, name)
			}
		}
		sort.Strings(names)
	} else {
		names = append(names, s.Catalog.ArticleAttributes()...)
	}

	var b strings.Builder
	count := 0
	for _, name := range names {
		if query != "" && !strings.Contains(strings.ToLower(name), strings.ToLower(query)) {
			continue
		}
		fmt.Fprintf(&b, "%s\n", name)
		count++
	}
	if count == 0 {
		return "No matching attributes", nil
	}
	return b.String(), nil
}
