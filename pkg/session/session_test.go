package session

import (
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lebronisbest/ootp-storyline-generator/pkg/catalog"
	"github.com/lebronisbest/ootp-storyline-generator/pkg/data"
	"github.com/lebronisbest/ootp-storyline-generator/pkg/log"
	"github.com/lebronisbest/ootp-storyline-generator/pkg/model"
	"github.com/lebronisbest/ootp-storyline-generator/pkg/storage"
)

// newTestSession wires a full stack against a temp directory: sqlite
// storage, a default profile, and a catalog running on its built-in
// defaults.
func newTestSession(t *testing.T) *Session {
	t.Helper()
	dir := t.TempDir()
	cfg := &model.Config{
		DatabaseType:         "sqlite",
		DatabaseDir:          dir,
		DatabaseFile:         "workspace.db",
		CatalogFile:          filepath.Join(dir, "absent_catalog.json"),
		LogFolder:            dir,
		CommandLog:           "commands.log",
		ErrorLog:             "errors.log",
		InfoLog:              "info.log",
		DefaultProfile:       "default",
		DefaultProfileActive: true,
		SnapshotLimit:        10,
	}
	logger, err := log.NewLogger(cfg, log.LevelInfo)
	require.NoError(t, err)

	store, err := storage.NewStorage(cfg, logger)
	require.NoError(t, err)
	t.Cleanup(func() {
		store.Close()
		logger.Close()
	})

	dm, err := data.NewDataManager(store, store, cfg, logger)
	require.NoError(t, err)

	s := NewSession("test-session", dm, catalog.NewManager(cfg.CatalogFile, logger), logger)

	profiles, err := dm.ProfileManager.ProfileGet(model.ProfileInfo{Name: "default"}, model.ProfileFilter{Name: true})
	require.NoError(t, err)
	require.Len(t, profiles, 1)
	s.ProfileSet(profiles[0])

	return s
}

func run(t *testing.T, s *Session, scope, operation string, args ...string) interface{} {
	t.Helper()
	result, err := s.CommandRun(model.Command{Scope: scope, Operation: operation, Args: args})
	require.NoError(t, err, "%s %s %v", scope, operation, args)
	return result
}

func TestStorylineCommands(t *testing.T) {
	s := newTestSession(t)

	t.Run("AddSelectsNewStoryline", func(t *testing.T) {
		result := run(t, s, "storyline", "add")
		assert.Equal(t, "Storyline '1' added and selected", result)
		assert.Equal(t, 0, s.StorylineIndex)
		assert.Equal(t, 0, s.ArticleIndex)

		storyline, err := s.StorylineGet()
		require.NoError(t, err)
		assert.Equal(t, "1000", storyline.Attributes["random_frequency"])
		assert.Len(t, storyline.Articles, 1)
	})

	t.Run("AddWithExplicitID", func(t *testing.T) {
		run(t, s, "storyline", "add", "trade_rumor")
		storyline, err := s.StorylineGet()
		require.NoError(t, err)
		assert.Equal(t, "trade_rumor", storyline.ID())
	})

	t.Run("UpdateSetsAttribute", func(t *testing.T) {
		run(t, s, "storyline", "update", "only_in_season", "1")
		storyline, err := s.StorylineGet()
		require.NoError(t, err)
		assert.Equal(t, "1", storyline.Attributes["only_in_season"])
	})

	t.Run("SelectByID", func(t *testing.T) {
		run(t, s, "storyline", "select", "1")
		storyline, err := s.StorylineGet()
		require.NoError(t, err)
		assert.Equal(t, "1", storyline.ID())
	})

	t.Run("ListMarksSelection", func(t *testing.T) {
		result := run(t, s, "storyline", "list").(string)
		assert.Contains(t, result, "* 0: 1")
		assert.Contains(t, result, "  1: trade_rumor")
	})

	t.Run("DeleteClearsSelection", func(t *testing.T) {
		run(t, s, "storyline", "delete")
		assert.Equal(t, -1, s.StorylineIndex)
		_, err := s.StorylineGet()
		var warn *model.ValidationWarning
		assert.ErrorAs(t, err, &warn)
	})

	t.Run("UpdateWithoutSelection", func(t *testing.T) {
		_, err := s.CommandRun(model.Command{Scope: "storyline", Operation: "update", Args: []string{"only_in_season", "1"}})
		var warn *model.ValidationWarning
		assert.ErrorAs(t, err, &warn)
	})
}

func TestArticleCommands(t *testing.T) {
	s := newTestSession(t)
	run(t, s, "storyline", "add", "arm_injury")

	t.Run("UpdateFields", func(t *testing.T) {
		run(t, s, "article", "update", "subject", "Injury news")
		run(t, s, "article", "update", "text", "[%personlink#1 f l] left the game. [%teamlink#1] fears the worst.")
		run(t, s, "article", "update", "injury", "sore elbow")

		article, err := s.ArticleGet()
		require.NoError(t, err)
		assert.Equal(t, "Injury news", article.Subject)
		assert.Equal(t, "sore elbow", article.InjuryDescription)
	})

	t.Run("UpdateModifier", func(t *testing.T) {
		run(t, s, "article", "update", "morale_player", "-5")
		article, err := s.ArticleGet()
		require.NoError(t, err)
		assert.Equal(t, "-5", article.Modifiers["morale_player"])

		run(t, s, "article", "update", "morale_player", "")
		assert.NotContains(t, article.Modifiers, "morale_player")
	})

	t.Run("Renumber", func(t *testing.T) {
		result := run(t, s, "article", "renumber", "2")
		assert.Equal(t, "Renumbered 2 tags to #2", result)

		article, err := s.ArticleGet()
		require.NoError(t, err)
		assert.Contains(t, article.Text, "[%personlink#2 f l]")
		assert.Contains(t, article.Text, "[%teamlink#2]")

		again := run(t, s, "article", "renumber", "2")
		assert.Equal(t, "No tags to renumber", again)
	})

	t.Run("AddAndDelete", func(t *testing.T) {
		run(t, s, "article", "add")
		assert.Equal(t, 1, s.ArticleIndex)

		run(t, s, "article", "delete")
		assert.Equal(t, 0, s.ArticleIndex)

		_, err := s.CommandRun(model.Command{Scope: "article", Operation: "delete"})
		var warn *model.ValidationWarning
		assert.ErrorAs(t, err, &warn)
	})

	t.Run("ShowFlagsEmptyArticle", func(t *testing.T) {
		run(t, s, "storyline", "add", "blank")
		result := run(t, s, "article", "show").(string)
		assert.Contains(t, result, "(empty article)")
	})
}

func TestParticipantCommands(t *testing.T) {
	s := newTestSession(t)
	run(t, s, "storyline", "add", "trade_rumor")

	t.Run("FirstParticipantIsMainActor", func(t *testing.T) {
		run(t, s, "participant", "add", "PLAYER")
		storyline, err := s.StorylineGet()
		require.NoError(t, err)
		require.Len(t, storyline.RequiredData, 1)
		assert.True(t, storyline.RequiredData[0].MainActor)
	})

	t.Run("MainMovesFlag", func(t *testing.T) {
		run(t, s, "participant", "add", "TEAM")
		run(t, s, "participant", "main", "1")

		storyline, err := s.StorylineGet()
		require.NoError(t, err)
		assert.False(t, storyline.RequiredData[0].MainActor)
		assert.True(t, storyline.RequiredData[1].MainActor)
	})

	t.Run("UpdateSetsCondition", func(t *testing.T) {
		run(t, s, "participant", "update", "0", "min_age", "30")
		storyline, err := s.StorylineGet()
		require.NoError(t, err)
		assert.Equal(t, "30", storyline.RequiredData[0].Attributes["min_age"])
	})

	t.Run("Delete", func(t *testing.T) {
		run(t, s, "participant", "delete", "0")
		storyline, err := s.StorylineGet()
		require.NoError(t, err)
		require.Len(t, storyline.RequiredData, 1)
		assert.Equal(t, "TEAM", storyline.RequiredData[0].Type)
	})
}

func TestFileCommands(t *testing.T) {
	s := newTestSession(t)
	path := filepath.Join(t.TempDir(), "storylines.xml")

	t.Run("SaveWithoutPath", func(t *testing.T) {
		run(t, s, "storyline", "add", "sl_1")
		_, err := s.CommandRun(model.Command{Scope: "file", Operation: "save"})
		var warn *model.ValidationWarning
		assert.ErrorAs(t, err, &warn)
	})

	t.Run("SaveAndReopen", func(t *testing.T) {
		run(t, s, "article", "update", "subject", "Hello")
		run(t, s, "file", "save", path)
		assert.Equal(t, path, s.Collection.FilePath)

		result := run(t, s, "file", "open", path).(string)
		assert.True(t, strings.HasPrefix(result, "Opened "), result)
		require.Len(t, s.Collection.Storylines, 1)
		assert.Equal(t, "sl_1", s.Collection.Storylines[0].ID())
		// Opening clears the selection.
		assert.Equal(t, -1, s.StorylineIndex)
	})

	t.Run("SaveEmptyCollection", func(t *testing.T) {
		s.CollectionSet(s.DataManager.StorylineManager.CollectionNew())
		_, err := s.CommandRun(model.Command{Scope: "file", Operation: "save", Args: []string{path}})
		var warn *model.ValidationWarning
		assert.ErrorAs(t, err, &warn)
	})
}

func TestProfileCommands(t *testing.T) {
	s := newTestSession(t)

	t.Run("AddAndSelect", func(t *testing.T) {
		run(t, s, "profile", "add", "alex", "secret")
		run(t, s, "profile", "select", "alex", "secret")
		assert.Equal(t, "alex", s.Profile.Name)
	})

	t.Run("SelectWithWrongPassword", func(t *testing.T) {
		_, err := s.CommandRun(model.Command{Scope: "profile", Operation: "select", Args: []string{"alex", "wrong"}})
		assert.Error(t, err)
	})
}

func TestSystemExit(t *testing.T) {
	s := newTestSession(t)
	result := run(t, s, "system", "exit")
	assert.IsType(t, ExitResult{}, result)
}
