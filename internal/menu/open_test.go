package menu

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOpenActionReportsHref(t *testing.T) {
	cmd := OpenAction(Context{}, Item("Home").WithHref(" / "))
	require.NotNil(t, cmd)
	result, ok := cmd().(ActionResult)
	require.True(t, ok)
	assert.NoError(t, result.Err)
	assert.Equal(t, "/", result.Href)
	assert.Equal(t, "Opening /", result.Info)
}

func TestOpenActionWithoutHrefFails(t *testing.T) {
	result, ok := OpenAction(Context{}, Item("Nowhere"))().(ActionResult)
	require.True(t, ok)
	assert.Error(t, result.Err)
	assert.Empty(t, result.Href)
}

func TestThemeActionEmitsToggle(t *testing.T) {
	_, ok := ThemeAction(Context{}, Item("Theme"))().(ThemeToggleMsg)
	assert.True(t, ok)
}

func TestActionFor(t *testing.T) {
	_, ok := ActionFor(Item("Theme").WithAction("theme").WithHref("/ignored"))
	assert.True(t, ok)

	_, ok = ActionFor(Item("Home").WithHref("/"))
	assert.True(t, ok)

	_, ok = ActionFor(Item("Plain"))
	assert.False(t, ok)

	_, ok = ActionFor(Item("Folder", Item("Child")).WithHref("/folder"))
	assert.False(t, ok, "entries with children drill in instead of running actions")

	_, ok = ActionFor(Title("Section"))
	assert.False(t, ok)

	_, ok = ActionFor(Item("Bad").WithAction("missing"))
	assert.False(t, ok)
}
