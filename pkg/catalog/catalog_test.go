package catalog

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lebronisbest/ootp-storyline-generator/pkg/model"
)

const sampleCatalog = `{
	"storyline_attributes": ["random_frequency", "trigger_events"],
	"article_attributes": {
		"all": ["morale_player", "injury_length", "team_chemistry"],
		"categories": {
			"MODIFIER": ["morale_player", "team_chemistry"],
			"INJURY": ["injury_length"]
		},
		"types": {"injury_length": "number"}
	},
	"data_object_types": ["PLAYER", "TEAM", "COACH"],
	"data_object_attributes": {
		"all": ["min_age", "position", "league_level"],
		"common": ["league_level"],
		"by_type": {
			"PLAYER": ["min_age", "position", "league_level"],
			"TEAM": []
		},
		"types": {"min_age": "number"}
	},
	"tooltips": {"morale_player": "Adjusts the player's morale."},
	"presets": {
		"injury": {
			"sore_arm": {"injury_length": "10", "morale_player": "-5"}
		}
	}
}`

func writeCatalog(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "attribute_options.json")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestNewManager(t *testing.T) {
	t.Run("LoadsFile", func(t *testing.T) {
		m := NewManager(writeCatalog(t, sampleCatalog), nil)
		assert.Equal(t, []string{"random_frequency", "trigger_events"}, m.StorylineAttributes())
		assert.Equal(t, []string{"PLAYER", "TEAM", "COACH"}, m.DataObjectTypes())
		assert.Contains(t, m.ArticleAttributes(), "morale_player")
	})

	t.Run("MissingFileFallsBack", func(t *testing.T) {
		m := NewManager(filepath.Join(t.TempDir(), "nope.json"), nil)
		assert.Equal(t, model.StorylineAttributes, m.StorylineAttributes())
		assert.Equal(t, []string{"PLAYER", "TEAM", "MANAGER"}, m.DataObjectTypes())
		assert.Empty(t, m.ArticleAttributes())
	})

	t.Run("CorruptFileFallsBack", func(t *testing.T) {
		m := NewManager(writeCatalog(t, "{not json"), nil)
		assert.Equal(t, []string{"PLAYER", "TEAM", "MANAGER"}, m.DataObjectTypes())
	})
}

func TestArticleCategory(t *testing.T) {
	m := NewManager(writeCatalog(t, sampleCatalog), nil)
	assert.Equal(t, []string{"morale_player", "team_chemistry"}, m.ArticleCategory(model.CategoryModifier))
	assert.Equal(t, []string{"injury_length"}, m.ArticleCategory(model.CategoryInjury))
	// Categories absent from the file are normalized to empty, never nil lookups.
	assert.Empty(t, m.ArticleCategory(model.CategoryCondition))
}

func TestAttributesForType(t *testing.T) {
	m := NewManager(writeCatalog(t, sampleCatalog), nil)

	t.Run("UnionWithoutDuplicates", func(t *testing.T) {
		attrs := m.AttributesForType("PLAYER")
		assert.Equal(t, []string{"league_level", "min_age", "position"}, attrs)
	})

	t.Run("UnknownTypeGetsCommon", func(t *testing.T) {
		attrs := m.AttributesForType("STADIUM")
		assert.Equal(t, []string{"league_level"}, attrs)
	})
}

func TestTooltip(t *testing.T) {
	m := NewManager(writeCatalog(t, sampleCatalog), nil)
	assert.Equal(t, "Adjusts the player's morale.", m.Tooltip("morale_player"))
	assert.Equal(t, "injury_length", m.Tooltip("injury_length"))
}

func TestAttributeKind(t *testing.T) {
	m := NewManager(writeCatalog(t, sampleCatalog), nil)
	assert.Equal(t, model.KindNumber, m.AttributeKind("injury_length"))
	assert.Equal(t, model.KindNumber, m.AttributeKind("min_age"))
	assert.Equal(t, model.KindText, m.AttributeKind("morale_player"))
	assert.Equal(t, model.KindText, m.AttributeKind("made_up_name"))
}

func TestPresets(t *testing.T) {
	m := NewManager(writeCatalog(t, sampleCatalog), nil)

	assert.Equal(t, []string{"injury"}, m.PresetCategories())

	presets := m.Presets("injury")
	require.Contains(t, presets, "sore_arm")
	assert.Equal(t, "10", presets["sore_arm"]["injury_length"])

	assert.Nil(t, m.Presets("celebration"))
}
