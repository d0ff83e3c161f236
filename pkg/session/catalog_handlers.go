package session

import (
	"fmt"
	"sort"
	"strings"

	"github.com/lebronisbest/ootp-storyline-generator/pkg/model"
)

// handleCatalogTypes handles the catalog types command
func handleCatalogTypes(s *Session, cmd model.Command) (interface{}, error) {
	types := s.Catalog.DataObjectTypes()
	if len(types) == 0 {
		return "No participant types defined", nil
	}
	return strings.Join(types, "\n"), nil
}

// handleCatalogAttrs handles the catalog attrs command. The argument is
// either "storyline", "article", an article category, or a participant
// type.
func handleCatalogAttrs(s *Session, cmd model.Command) (interface{}, error) {
	target := cmd.Args[0]

	var names []string
	switch target {
	case "storyline":
		names = s.Catalog.StorylineAttributes()
	case "article":
		names = s.Catalog.ArticleAttributes()
	case model.CategoryModifier, model.CategoryCondition, model.CategoryInjury, model.CategoryOther:
		names = s.Catalog.ArticleCategory(target)
	default:
		names = s.Catalog.AttributesForType(target)
	}

	if len(names) == 0 {
		return fmt.Sprintf("No attributes for '%s'", target), nil
	}
	return strings.Join(names, "\n"), nil
}

// handleCatalogPresets handles the catalog presets command
func handleCatalogPresets(s *Session, cmd model.Command) (interface{}, error) {
	if len(cmd.Args) == 0 {
		categories := s.Catalog.PresetCategories()
		if len(categories) == 0 {
			return "No presets defined", nil
		}
		return strings.Join(categories, "\n"), nil
	}

	category := cmd.Args[0]
	presets := s.Catalog.Presets(category)
	if len(presets) == 0 {
		return fmt.Sprintf("No presets in category '%s'", category), nil
	}

	names := make([]string, 0, len(presets))
	for name := range presets {
		names = append(names, name)
	}
	sort.Strings(names)

	var b strings.Builder
	for _, name := range names {
		fmt.Fprintf(&b, "%s (%d attributes)\n", name, len(presets[name]))
	}
	return b.String(), nil
}

// handleCatalogTooltip handles the catalog tooltip command
func handleCatalogTooltip(s *Session, cmd model.Command) (interface{}, error) {
	name := cmd.Args[0]
	return fmt.Sprintf("%s: %s (%s)", name, s.Catalog.Tooltip(name), s.Catalog.AttributeKind(name)), nil
}
