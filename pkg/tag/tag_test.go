package tag

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInsert(t *testing.T) {
	t.Run("PersonTag", func(t *testing.T) {
		marker, err := Insert("person", 3)
		require.NoError(t, err)
		assert.Equal(t, "[%personlink#3 f l]", marker)
	})

	t.Run("PersonLastTag", func(t *testing.T) {
		marker, err := Insert("person-last", 2)
		require.NoError(t, err)
		assert.Equal(t, "[%personlink#2 l]", marker)
	})

	t.Run("TeamTag", func(t *testing.T) {
		marker, err := Insert("team", 1)
		require.NoError(t, err)
		assert.Equal(t, "[%teamlink#1]", marker)
	})

	t.Run("UnknownKind", func(t *testing.T) {
		_, err := Insert("planet", 1)
		assert.Error(t, err)
	})
}

func TestKinds(t *testing.T) {
	kinds := Kinds()
	assert.Len(t, kinds, len(Templates))
	assert.Contains(t, kinds, "person")
	assert.Contains(t, kinds, "salary")
	assert.IsIncreasing(t, kinds)
}

func TestRenumber(t *testing.T) {
	t.Run("RewritesAllMarkers", func(t *testing.T) {
		text := "[%personlink#1 f l] signed with [%teamlink#2] for [%salarylink#1]."
		updated, count := Renumber(text, 3)
		assert.Equal(t, "[%personlink#3 f l] signed with [%teamlink#3] for [%salarylink#3].", updated)
		assert.Equal(t, 3, count)
	})

	t.Run("CountsOnlyChanges", func(t *testing.T) {
		text := "[%personlink#2 f l] and [%teamlink#1]"
		updated, count := Renumber(text, 2)
		assert.Equal(t, "[%personlink#2 f l] and [%teamlink#2]", updated)
		assert.Equal(t, 1, count)
	})

	t.Run("NoMarkers", func(t *testing.T) {
		text := "plain text without any markers"
		updated, count := Renumber(text, 5)
		assert.Equal(t, text, updated)
		assert.Zero(t, count)
	})

	t.Run("PreservesFormatArguments", func(t *testing.T) {
		updated, count := Renumber("[%personlink#1 l]", 4)
		assert.Equal(t, "[%personlink#4 l]", updated)
		assert.Equal(t, 1, count)
	})
}

func TestFind(t *testing.T) {
	text := "Intro [%personlink#1 f l] middle [%datelink#1] end."
	markers := Find(text)
	require.Len(t, markers, 2)
	assert.Equal(t, "[%personlink#1 f l]", markers[0])
	assert.Equal(t, "[%datelink#1]", markers[1])

	assert.Empty(t, Find("nothing here"))
}
