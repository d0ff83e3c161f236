package data

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lebronisbest/ootp-storyline-generator/pkg/event"
	"github.com/lebronisbest/ootp-storyline-generator/pkg/log"
	"github.com/lebronisbest/ootp-storyline-generator/pkg/model"
)

func newTestLogger(t *testing.T) *log.Logger {
	t.Helper()
	cfg := &model.Config{
		LogFolder:  t.TempDir(),
		CommandLog: "commands.log",
		ErrorLog:   "errors.log",
		InfoLog:    "info.log",
	}
	logger, err := log.NewLogger(cfg, log.LevelInfo)
	require.NoError(t, err)
	t.Cleanup(func() { logger.Close() })
	return logger
}

func newTestStorylineManager(t *testing.T) *StorylineManager {
	t.Helper()
	logger := newTestLogger(t)
	sm, err := NewStorylineManager(event.NewEventManager(logger), logger)
	require.NoError(t, err)
	return sm
}

func TestStorylineAdd(t *testing.T) {
	sm := newTestStorylineManager(t)
	c := sm.CollectionNew()

	t.Run("AppendsAndReturnsIndex", func(t *testing.T) {
		index := sm.StorylineAdd(c, model.NewStoryline("sl_1"))
		assert.Equal(t, 0, index)
		index = sm.StorylineAdd(c, model.NewStoryline("sl_2"))
		assert.Equal(t, 1, index)
	})

	t.Run("KeepsInsertionOrder", func(t *testing.T) {
		sm.StorylineAdd(c, model.NewStoryline("aaa_first_alphabetically"))
		require.Len(t, c.Storylines, 3)
		assert.Equal(t, "sl_1", c.Storylines[0].ID())
		assert.Equal(t, "aaa_first_alphabetically", c.Storylines[2].ID())
	})

	t.Run("FillsDefaults", func(t *testing.T) {
		bare := &model.Storyline{Attributes: map[string]string{"id": "bare"}}
		sm.StorylineAdd(c, bare)
		v, ok := bare.Attributes["random_frequency"]
		assert.True(t, ok)
		assert.Empty(t, v)
	})
}

func TestStorylineDelete(t *testing.T) {
	sm := newTestStorylineManager(t)
	c := sm.CollectionNew()
	sm.StorylineAdd(c, model.NewStoryline("sl_1"))
	sm.StorylineAdd(c, model.NewStoryline("sl_2"))
	sm.StorylineAdd(c, model.NewStoryline("sl_3"))

	sm.StorylineDelete(c, 1)

	require.Len(t, c.Storylines, 2)
	assert.Equal(t, "sl_1", c.Storylines[0].ID())
	// Remaining ids are not renumbered.
	assert.Equal(t, "sl_3", c.Storylines[1].ID())
}

func TestStorylineFind(t *testing.T) {
	sm := newTestStorylineManager(t)
	c := sm.CollectionNew()
	sm.StorylineAdd(c, model.NewStoryline("trade_rumor"))
	sm.StorylineAdd(c, model.NewStoryline("arm_injury"))

	assert.Equal(t, 1, sm.StorylineFind(c, "arm_injury"))
	assert.Equal(t, -1, sm.StorylineFind(c, "missing"))
}

func TestStorylineSearch(t *testing.T) {
	sm := newTestStorylineManager(t)
	c := sm.CollectionNew()
	sm.StorylineAdd(c, model.NewStoryline("trade_rumor"))
	sm.StorylineAdd(c, model.NewStoryline("trade_deadline"))
	sm.StorylineAdd(c, model.NewStoryline("arm_injury"))

	assert.Equal(t, []int{0, 1}, sm.StorylineSearch(c, "trade"))
	assert.Empty(t, sm.StorylineSearch(c, "playoff"))
}

func TestSetMainActor(t *testing.T) {
	sm := newTestStorylineManager(t)
	s := model.NewStoryline("sl_1")
	sm.ParticipantAdd(s, "PLAYER")
	sm.ParticipantAdd(s, "TEAM")
	sm.ParticipantAdd(s, "PLAYER")

	sm.SetMainActor(s, 0)
	sm.SetMainActor(s, 2)

	assert.False(t, s.RequiredData[0].MainActor)
	assert.False(t, s.RequiredData[1].MainActor)
	assert.True(t, s.RequiredData[2].MainActor)
}

func TestParticipantDelete(t *testing.T) {
	sm := newTestStorylineManager(t)
	s := model.NewStoryline("sl_1")
	sm.ParticipantAdd(s, "PLAYER")
	sm.ParticipantAdd(s, "TEAM")

	sm.ParticipantDelete(s, 0)

	require.Len(t, s.RequiredData, 1)
	assert.Equal(t, "TEAM", s.RequiredData[0].Type)
}

func TestArticleAdd(t *testing.T) {
	sm := newTestStorylineManager(t)
	s := model.NewStoryline("sl_1")

	first := sm.ArticleAdd(s)
	second := sm.ArticleAdd(s)

	assert.Equal(t, "article_1", first.ID)
	assert.Equal(t, "article_2", second.ID)
	assert.Len(t, s.Articles, 2)
}

func TestArticleDelete(t *testing.T) {
	sm := newTestStorylineManager(t)
	s := model.NewStoryline("sl_1")
	sm.ArticleAdd(s)
	sm.ArticleAdd(s)

	t.Run("RemovesArticle", func(t *testing.T) {
		require.NoError(t, sm.ArticleDelete(s, 0))
		require.Len(t, s.Articles, 1)
		assert.Equal(t, "article_2", s.Articles[0].ID)
	})

	t.Run("RefusesLastArticle", func(t *testing.T) {
		err := sm.ArticleDelete(s, 0)
		var warn *model.ValidationWarning
		require.ErrorAs(t, err, &warn)
		assert.Len(t, s.Articles, 1)
	})
}

func TestApplyPreset(t *testing.T) {
	sm := newTestStorylineManager(t)
	a := &model.Article{Modifiers: map[string]string{"morale_player": "-5", "stale": "1"}}

	sm.ApplyPreset(a, map[string]string{
		"morale_player": "10",
		"injury_length": "3",
		"stale":         "",
	})

	assert.Equal(t, "10", a.Modifiers["morale_player"])
	assert.Equal(t, "3", a.Modifiers["injury_length"])
	assert.NotContains(t, a.Modifiers, "stale")
}

func TestCollectionSave(t *testing.T) {
	sm := newTestStorylineManager(t)
	profile := &model.Profile{ID: 1, Name: "tester"}

	t.Run("RefusesEmptyCollection", func(t *testing.T) {
		err := sm.CollectionSave(profile, sm.CollectionNew(), filepath.Join(t.TempDir(), "out.xml"))
		var warn *model.ValidationWarning
		require.ErrorAs(t, err, &warn)
	})

	t.Run("WritesFileAndSetsPath", func(t *testing.T) {
		c := sm.CollectionNew()
		s := model.NewStoryline("sl_1")
		sm.ArticleAdd(s)
		sm.StorylineAdd(c, s)

		path := filepath.Join(t.TempDir(), "out.xml")
		require.NoError(t, sm.CollectionSave(profile, c, path))
		assert.Equal(t, path, c.FilePath)

		data, err := os.ReadFile(path)
		require.NoError(t, err)
		assert.Contains(t, string(data), `<STORYLINE id="sl_1"`)
	})
}

func TestCollectionLoad(t *testing.T) {
	sm := newTestStorylineManager(t)
	profile := &model.Profile{ID: 1, Name: "tester"}

	t.Run("RoundTripsSavedFile", func(t *testing.T) {
		c := sm.CollectionNew()
		s := model.NewStoryline("sl_1")
		sm.ArticleAdd(s)
		sm.StorylineAdd(c, s)
		path := filepath.Join(t.TempDir(), "out.xml")
		require.NoError(t, sm.CollectionSave(profile, c, path))

		loaded, err := sm.CollectionLoad(profile, path)
		require.NoError(t, err)
		assert.Equal(t, path, loaded.FilePath)
		require.Len(t, loaded.Storylines, 1)
		assert.Equal(t, "sl_1", loaded.Storylines[0].ID())
	})

	t.Run("MissingFile", func(t *testing.T) {
		_, err := sm.CollectionLoad(profile, filepath.Join(t.TempDir(), "absent.xml"))
		assert.Error(t, err)
	})
}
