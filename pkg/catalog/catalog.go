// Package catalog loads the external attribute catalog that drives which
// attribute names, participant types, tooltips and presets the editor
// offers. A missing or unreadable catalog file degrades to built-in
// defaults instead of failing startup.
package catalog

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"sort"

	"github.com/lebronisbest/ootp-storyline-generator/pkg/log"
	"github.com/lebronisbest/ootp-storyline-generator/pkg/model"
)

// Manager provides read-only access to the loaded catalog.
type Manager struct {
	catalog *model.Catalog
	logger  *log.Logger
}

// NewManager loads the catalog from the given file. Load failures are
// logged and the built-in defaults are used; the editor stays usable.
func NewManager(path string, logger *log.Logger) *Manager {
	m := &Manager{logger: logger}
	cat, err := loadCatalog(path)
	if err != nil {
		if logger != nil {
			logger.Warn(context.Background(), "Catalog unavailable, using defaults", log.Fields{"path": path, "error": err})
		}
		cat = defaultCatalog()
	} else if logger != nil {
		logger.Info(context.Background(), "Catalog loaded", log.Fields{
			"path":                 path,
			"storyline_attributes": len(cat.StorylineAttributes),
			"article_attributes":   len(cat.ArticleAttributes.All),
			"data_object_types":    len(cat.DataObjectTypes),
		})
	}
	m.catalog = cat
	return m
}

// loadCatalog reads and parses the catalog JSON file.
func loadCatalog(path string) (*model.Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read catalog file: %w", err)
	}
	cat := &model.Catalog{}
	if err := json.Unmarshal(data, cat); err != nil {
		return nil, fmt.Errorf("failed to parse catalog file: %w", err)
	}
	normalize(cat)
	return cat, nil
}

// normalize fills nil maps and slices so callers never check for them.
func normalize(cat *model.Catalog) {
	if cat.StorylineAttributes == nil {
		cat.StorylineAttributes = []string{}
	}
	if cat.ArticleAttributes.All == nil {
		cat.ArticleAttributes.All = []string{}
	}
	if cat.ArticleAttributes.Categories == nil {
		cat.ArticleAttributes.Categories = map[string][]string{}
	}
	for _, c := range []string{model.CategoryModifier, model.CategoryCondition, model.CategoryInjury, model.CategoryOther} {
		if _, ok := cat.ArticleAttributes.Categories[c]; !ok {
			cat.ArticleAttributes.Categories[c] = []string{}
		}
	}
	if cat.ArticleAttributes.Types == nil {
		cat.ArticleAttributes.Types = map[string]string{}
	}
	if cat.DataObjectTypes == nil {
		cat.DataObjectTypes = []string{}
	}
	if cat.DataObjectAttributes.All == nil {
		cat.DataObjectAttributes.All = []string{}
	}
	if cat.DataObjectAttributes.Common == nil {
		cat.DataObjectAttributes.Common = []string{}
	}
	if cat.DataObjectAttributes.ByType == nil {
		cat.DataObjectAttributes.ByType = map[string][]string{}
	}
	if cat.DataObjectAttributes.Types == nil {
		cat.DataObjectAttributes.Types = map[string]string{}
	}
	if cat.Tooltips == nil {
		cat.Tooltips = map[string]string{}
	}
	if cat.Presets == nil {
		cat.Presets = map[string]map[string]map[string]string{}
	}
}

// defaultCatalog returns the minimal catalog used when no file is available.
func defaultCatalog() *model.Catalog {
	cat := &model.Catalog{
		StorylineAttributes: append([]string{}, model.StorylineAttributes...),
		DataObjectTypes:     []string{"PLAYER", "TEAM", "MANAGER"},
	}
	normalize(cat)
	return cat
}

// StorylineAttributes returns the catalog's storyline attribute names.
func (m *Manager) StorylineAttributes() []string {
	return m.catalog.StorylineAttributes
}

// ArticleAttributes returns every catalog-defined article attribute name.
func (m *Manager) ArticleAttributes() []string {
	return m.catalog.ArticleAttributes.All
}

// ArticleCategory returns the article attribute names of one category.
func (m *Manager) ArticleCategory(category string) []string {
	return m.catalog.ArticleAttributes.Categories[category]
}

// DataObjectTypes returns the recognized participant types.
func (m *Manager) DataObjectTypes() []string {
	return m.catalog.DataObjectTypes
}

// AttributesForType returns the sorted union of common participant
// attributes and those specific to the given type, without duplicates.
func (m *Manager) AttributesForType(objType string) []string {
	seen := make(map[string]struct{})
	for _, a := range m.catalog.DataObjectAttributes.Common {
		seen[a] = struct{}{}
	}
	for _, a := range m.catalog.DataObjectAttributes.ByType[objType] {
		seen[a] = struct{}{}
	}
	attrs := make([]string, 0, len(seen))
	for a := range seen {
		attrs = append(attrs, a)
	}
	sort.Strings(attrs)
	return attrs
}

// Tooltip returns the descriptive text for an attribute name, or the name
// itself when no tooltip is defined.
func (m *Manager) Tooltip(attrName string) string {
	if tip, ok := m.catalog.Tooltips[attrName]; ok {
		return tip
	}
	return attrName
}

// Presets returns the named presets of one category. Each preset maps
// attribute names to preset values.
func (m *Manager) Presets(category string) map[string]map[string]string {
	return m.catalog.Presets[category]
}

// PresetCategories returns the sorted preset category names.
func (m *Manager) PresetCategories() []string {
	cats := make([]string, 0, len(m.catalog.Presets))
	for c := range m.catalog.Presets {
		cats = append(cats, c)
	}
	sort.Strings(cats)
	return cats
}

// AttributeKind returns the value kind hint for an attribute name. Article
// attribute kinds take precedence; unknown names are text.
func (m *Manager) AttributeKind(attrName string) model.AttributeKind {
	if t, ok := m.catalog.ArticleAttributes.Types[attrName]; ok && t != "" {
		return model.AttributeKind(t)
	}
	if t, ok := m.catalog.DataObjectAttributes.Types[attrName]; ok && t != "" {
		return model.AttributeKind(t)
	}
	return model.KindText
}
