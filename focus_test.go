package anchor

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUpdateFocusBuildsPath(t *testing.T) {
	var log []string
	s := newTestScreen()
	win := newRecWindow(s, "win", &log)
	win.SetSize(Vector2i{300, 300})
	panel := newRecWidget(win, "panel", &log)
	panel.SetSize(Vector2i{200, 200})
	leaf := newRecWidget(panel, "leaf", &log)
	leaf.SetSize(Vector2i{50, 50})

	s.UpdateFocus(leaf)

	// One focus-gained per ancestor up to (excluding) the root,
	// outermost ancestor first.
	require.Equal(t, []string{"win:focus", "panel:focus", "leaf:focus"}, log)
	require.Len(t, s.focusPath, 3)
	assert.Equal(t, Widget(leaf), s.focusPath[0])
	assert.Equal(t, Widget(win), s.focusPath[2])
	assert.True(t, leaf.Focused())
	assert.True(t, panel.Focused())
	assert.True(t, win.Focused())
}

func TestUpdateFocusMovesFocus(t *testing.T) {
	var log []string
	s := newTestScreen()
	win := newRecWindow(s, "win", &log)
	win.SetSize(Vector2i{300, 300})
	panel := newRecWidget(win, "panel", &log)
	leaf := newRecWidget(panel, "leaf", &log)
	other := newRecWidget(win, "other", &log)

	s.UpdateFocus(leaf)
	log = log[:0]

	s.UpdateFocus(other)

	// Old path loses focus leaf-outward, then the new path gains
	// outermost-first. The window keeps its focus via a loss/gain pair,
	// never two consecutive gains.
	require.Equal(t, []string{
		"leaf:blur", "panel:blur", "win:blur",
		"win:focus", "other:focus",
	}, log)
	assert.Equal(t, 1, leaf.lost)
	assert.Equal(t, 1, panel.lost)
	assert.False(t, leaf.Focused())
	assert.False(t, panel.Focused())
	assert.True(t, other.Focused())
	assert.True(t, win.Focused())
}

func TestUpdateFocusNilClearsEverything(t *testing.T) {
	var log []string
	s := newTestScreen()
	win := newRecWindow(s, "win", &log)
	leaf := newRecWidget(win, "leaf", &log)

	s.UpdateFocus(leaf)
	log = log[:0]

	s.UpdateFocus(nil)

	assert.Equal(t, []string{"leaf:blur", "win:blur"}, log)
	assert.Empty(t, s.focusPath)
	assert.False(t, leaf.Focused())
	assert.False(t, win.Focused())
}

func TestUpdateFocusRaisesWindow(t *testing.T) {
	s := newTestScreen()
	w1 := newRecWindow(s, "w1", nil)
	leaf := newRecWidget(w1, "leaf", nil)
	w2 := newRecWindow(s, "w2", nil)

	require.Less(t, indexOf(s, w1), indexOf(s, w2))

	s.UpdateFocus(leaf)
	assert.Greater(t, indexOf(s, w1), indexOf(s, w2))
}

func TestClickFocusesWidget(t *testing.T) {
	s := newTestScreen()
	win := newRecWindow(s, "win", nil)
	win.SetPosition(Vector2i{100, 100})
	win.SetSize(Vector2i{200, 200})
	leaf := newRecWidget(win, "leaf", nil)
	leaf.SetPosition(Vector2i{20, 50})
	leaf.SetSize(Vector2i{50, 50})

	s.CursorPosCallbackEvent(130, 160)
	s.MouseButtonCallbackEvent(MouseButtonLeft, true, 0)

	assert.True(t, leaf.Focused())
	assert.True(t, win.Focused())
	require.Len(t, s.focusPath, 2)
	assert.Equal(t, Widget(leaf), s.focusPath[0])
}
