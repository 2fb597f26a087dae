package post

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParseTags(t *testing.T) {
	require.Equal(t, []string{"tag1", "tag2", "tag3"}, ParseTags("tag1, tag2 ,  , tag3"))
	require.Equal(t, []string{"go"}, ParseTags("go"))
	require.Empty(t, ParseTags(""))
	require.Empty(t, ParseTags(" , ,, "))
}

func TestStatusValid(t *testing.T) {
	require.True(t, StatusDraft.Valid())
	require.True(t, StatusPublish.Valid())
	require.False(t, Status("").Valid())
	require.False(t, Status("Published").Valid())
}

func TestValidCategory(t *testing.T) {
	for _, c := range Categories {
		require.True(t, ValidCategory(c))
	}
	require.False(t, ValidCategory("Cooking"))
	require.False(t, ValidCategory(""))
}
