package menu

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegistryFindAndParent(t *testing.T) {
	reg := NewRegistry(Default())

	entry, ok := reg.Find("3:1")
	require.True(t, ok)
	assert.Equal(t, "Home", entry.Label)

	parent, ok := reg.Parent("3:1")
	require.True(t, ok)
	assert.Equal(t, "Index Page", parent.Label)

	_, ok = reg.Parent("3")
	assert.False(t, ok, "root entries have no parent")

	_, ok = reg.Find("99")
	assert.False(t, ok)
}

func TestRegistryPathAndCounts(t *testing.T) {
	root := Build(List{
		Title("T"),
		Item("A", Item("B", Title("U"), Item("C"))),
	})
	reg := NewRegistry(root)

	assert.Equal(t, []string{"A", "B"}, reg.Path("1:0:1"))
	assert.Empty(t, reg.Path("1"))

	entries, titles := reg.Count()
	assert.Equal(t, 5, entries)
	assert.Equal(t, 2, titles)
	assert.Equal(t, 3, reg.Depth())
	assert.Equal(t, root, reg.Root())
}
