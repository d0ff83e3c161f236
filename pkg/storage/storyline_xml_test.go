package storage

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lebronisbest/ootp-storyline-generator/pkg/model"
)

const sampleDocument = `<?xml version="1.0" encoding="UTF-8"?>
<STORYLINE_DATABASE fileversion="OOTP Developments 2024-03-15 09:30:00">
	<STORYLINES>
		<STORYLINE id="trade_rumor" random_frequency="500" only_in_season="1" custom_flag="yes">
			<REQUIRED_DATA>
				<DATA_OBJECT type="PLAYER" main_actor="1" min_age="25"/>
				<DATA_OBJECT type="TEAM"/>
			</REQUIRED_DATA>
			<ARTICLES>
				<ARTICLE id="article_1" importance="3">
					<SUBJECT>Trade winds swirl around [%personlink#1 f l]</SUBJECT>
					<TEXT>Sources say [%teamlink#2] is interested.</TEXT>
				</ARTICLE>
			</ARTICLES>
		</STORYLINE>
		<STORYLINE id="arm_injury">
			<ARTICLES>
				<ARTICLE id="article_1">
					<SUBJECT>Injury news</SUBJECT>
					<INJURY_DESCRIPTION>sore elbow</INJURY_DESCRIPTION>
				</ARTICLE>
			</ARTICLES>
		</STORYLINE>
	</STORYLINES>
</STORYLINE_DATABASE>
`

func TestParseCollection(t *testing.T) {
	t.Run("ParsesDocument", func(t *testing.T) {
		c, err := ParseCollection([]byte(sampleDocument))
		require.NoError(t, err)
		assert.Equal(t, "OOTP Developments 2024-03-15 09:30:00", c.FileVersion)
		require.Len(t, c.Storylines, 2)
	})

	t.Run("SortsByIDOnLoad", func(t *testing.T) {
		c, err := ParseCollection([]byte(sampleDocument))
		require.NoError(t, err)
		assert.Equal(t, "arm_injury", c.Storylines[0].ID())
		assert.Equal(t, "trade_rumor", c.Storylines[1].ID())
	})

	t.Run("FillsMissingAttributes", func(t *testing.T) {
		c, err := ParseCollection([]byte(sampleDocument))
		require.NoError(t, err)
		s := c.Storylines[1]
		assert.Equal(t, "500", s.Attributes["random_frequency"])
		assert.Equal(t, "1", s.Attributes["only_in_season"])
		// Absent well-known names come back as empty strings, not missing keys.
		v, ok := s.Attributes["league_year_min"]
		assert.True(t, ok)
		assert.Empty(t, v)
	})

	t.Run("KeepsUnknownAttributes", func(t *testing.T) {
		c, err := ParseCollection([]byte(sampleDocument))
		require.NoError(t, err)
		assert.Equal(t, "yes", c.Storylines[1].Attributes["custom_flag"])
	})

	t.Run("ParsesParticipants", func(t *testing.T) {
		c, err := ParseCollection([]byte(sampleDocument))
		require.NoError(t, err)
		s := c.Storylines[1]
		require.Len(t, s.RequiredData, 2)
		assert.Equal(t, "PLAYER", s.RequiredData[0].Type)
		assert.True(t, s.RequiredData[0].MainActor)
		assert.Equal(t, "25", s.RequiredData[0].Attributes["min_age"])
		assert.Equal(t, "TEAM", s.RequiredData[1].Type)
		assert.False(t, s.RequiredData[1].MainActor)
	})

	t.Run("ParsesArticles", func(t *testing.T) {
		c, err := ParseCollection([]byte(sampleDocument))
		require.NoError(t, err)
		a := c.Storylines[1].Articles[0]
		assert.Equal(t, "article_1", a.ID)
		assert.Equal(t, "Trade winds swirl around [%personlink#1 f l]", a.Subject)
		assert.Equal(t, "Sources say [%teamlink#2] is interested.", a.Text)
		assert.Equal(t, "3", a.Modifiers["importance"])

		injured := c.Storylines[0].Articles[0]
		assert.Equal(t, "sore elbow", injured.InjuryDescription)
	})

	t.Run("MissingStorylinesSection", func(t *testing.T) {
		_, err := ParseCollection([]byte(`<?xml version="1.0"?><STORYLINE_DATABASE fileversion="x"></STORYLINE_DATABASE>`))
		require.Error(t, err)
		var schemaErr *SchemaError
		require.ErrorAs(t, err, &schemaErr)
		assert.Contains(t, schemaErr.Msg, "STORYLINES")
	})

	t.Run("EmptyStorylinesSectionIsValid", func(t *testing.T) {
		c, err := ParseCollection([]byte(`<?xml version="1.0"?><STORYLINE_DATABASE><STORYLINES></STORYLINES></STORYLINE_DATABASE>`))
		require.NoError(t, err)
		assert.Empty(t, c.Storylines)
	})

	t.Run("MalformedXML", func(t *testing.T) {
		_, err := ParseCollection([]byte(`<STORYLINE_DATABASE><STORYLINES>`))
		require.Error(t, err)
		var schemaErr *SchemaError
		assert.ErrorAs(t, err, &schemaErr)
	})
}

func TestSerializeCollection(t *testing.T) {
	t.Run("RoundTrip", func(t *testing.T) {
		original, err := ParseCollection([]byte(sampleDocument))
		require.NoError(t, err)

		data, err := SerializeCollection(original)
		require.NoError(t, err)

		reread, err := ParseCollection(data)
		require.NoError(t, err)
		require.Len(t, reread.Storylines, 2)

		for i := range original.Storylines {
			want, got := original.Storylines[i], reread.Storylines[i]
			assert.Equal(t, want.ID(), got.ID())
			assert.Equal(t, want.Attributes, got.Attributes)
			assert.Equal(t, len(want.RequiredData), len(got.RequiredData))
			assert.Equal(t, len(want.Articles), len(got.Articles))
		}
		full := reread.Storylines[1]
		assert.Equal(t, "Trade winds swirl around [%personlink#1 f l]", full.Articles[0].Subject)
		assert.Equal(t, "3", full.Articles[0].Modifiers["importance"])
		assert.True(t, full.RequiredData[0].MainActor)
	})

	t.Run("StampsFileVersion", func(t *testing.T) {
		data, err := SerializeCollection(&model.Collection{})
		require.NoError(t, err)
		c, err := ParseCollection(data)
		require.NoError(t, err)
		assert.True(t, strings.HasPrefix(c.FileVersion, "OOTP Developments "))
	})

	t.Run("SkipsEmptyValues", func(t *testing.T) {
		s := model.NewStoryline("quiet")
		s.Attributes["random_frequency"] = "100"
		s.Articles = []*model.Article{{ID: "article_1", Modifiers: map[string]string{"blank": ""}}}
		data, err := SerializeCollection(&model.Collection{Storylines: []*model.Storyline{s}})
		require.NoError(t, err)

		out := string(data)
		assert.Contains(t, out, `random_frequency="100"`)
		assert.NotContains(t, out, "league_year_min")
		assert.NotContains(t, out, "blank")
		// Empty article children are omitted entirely.
		assert.NotContains(t, out, "<SUBJECT>")
		assert.NotContains(t, out, "<TEXT>")
	})

	t.Run("TabIndentation", func(t *testing.T) {
		s := model.NewStoryline("sl_1")
		s.Articles = []*model.Article{{ID: "article_1", Subject: "s"}}
		data, err := SerializeCollection(&model.Collection{Storylines: []*model.Storyline{s}})
		require.NoError(t, err)
		assert.Contains(t, string(data), "\n\t<STORYLINES>")
		assert.Contains(t, string(data), "\n\t\t<STORYLINE")
	})

	t.Run("DeterministicAttributeOrder", func(t *testing.T) {
		s := model.NewStoryline("sl_1")
		s.Attributes["zeta"] = "z"
		s.Attributes["alpha"] = "a"
		s.Attributes["trigger_events"] = "7"
		c := &model.Collection{Storylines: []*model.Storyline{s}}

		first, err := SerializeCollection(c)
		require.NoError(t, err)
		second, err := SerializeCollection(c)
		require.NoError(t, err)

		strip := func(b []byte) string {
			out := string(b)
			i := strings.Index(out, `fileversion="`)
			j := strings.Index(out[i:], `">`)
			return out[:i] + out[i+j:]
		}
		assert.Equal(t, strip(first), strip(second))

		line := string(first)
		assert.Less(t, strings.Index(line, `id="sl_1"`), strings.Index(line, `trigger_events="7"`))
		assert.Less(t, strings.Index(line, `trigger_events="7"`), strings.Index(line, `alpha="a"`))
		assert.Less(t, strings.Index(line, `alpha="a"`), strings.Index(line, `zeta="z"`))
	})
}
