package anchor

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// requireStackingInvariant asserts every popup sits strictly above its owner.
func requireStackingInvariant(t *testing.T, s *Screen) {
	t.Helper()
	for i, c := range s.Children() {
		popup, ok := c.(Anchored)
		if !ok || popup.Owner() == nil {
			continue
		}
		ownerIdx := indexOf(s, popup.Owner())
		require.Greater(t, i, ownerIdx, "popup at %d below owner at %d", i, ownerIdx)
	}
}

func TestMoveWindowToFront(t *testing.T) {
	s := newTestScreen()
	w1 := NewWindow(s, "one")
	w2 := NewWindow(s, "two")

	s.MoveWindowToFront(w1)
	assert.Equal(t, indexOf(s, w1), len(s.Children())-1)

	s.MoveWindowToFront(w2)
	assert.Equal(t, indexOf(s, w2), len(s.Children())-1)
}

func TestMoveWindowToFrontRaisesPopupChain(t *testing.T) {
	s := newTestScreen()
	w1 := NewWindow(s, "one")
	w2 := NewWindow(s, "two")
	p1 := NewPopup(s, w2)
	p2 := NewPopup(s, p1) // popup of a popup

	// Burying the owner under another window and re-raising it must
	// pull the whole popup chain above it, in ownership order.
	s.MoveWindowToFront(w1)
	s.MoveWindowToFront(w2)

	requireStackingInvariant(t, s)
	assert.Greater(t, indexOf(s, p1), indexOf(s, w2))
	assert.Greater(t, indexOf(s, p2), indexOf(s, p1))
}

func TestMoveWindowToFrontIdempotent(t *testing.T) {
	s := newTestScreen()
	NewWindow(s, "one")
	w2 := NewWindow(s, "two")
	p1 := NewPopup(s, w2)
	NewPopup(s, p1)

	s.MoveWindowToFront(w2)
	first := append([]Widget(nil), s.Children()...)

	s.MoveWindowToFront(w2)
	assert.Equal(t, first, s.Children())
	requireStackingInvariant(t, s)
}

func TestMoveWindowToFrontIgnoresNonChild(t *testing.T) {
	s := newTestScreen()
	w1 := NewWindow(s, "one")
	stray := &Window{}
	stray.InitWidget(stray, nil)

	s.MoveWindowToFront(stray)
	assert.Equal(t, []Widget{w1}, s.Children())
}

func TestDisposeWindowClearsFocusAndDrag(t *testing.T) {
	s := newTestScreen()
	win := newRecWindow(s, "win", nil)
	win.SetPosition(Vector2i{100, 100})
	win.SetSize(Vector2i{200, 200})
	leaf := newRecWidget(win, "leaf", nil)
	leaf.SetPosition(Vector2i{20, 20})
	leaf.SetSize(Vector2i{50, 50})
	leaf.handleButton = true

	// Focus the leaf and start a drag on it.
	s.CursorPosCallbackEvent(130, 130)
	s.MouseButtonCallbackEvent(MouseButtonLeft, true, 0)
	s.UpdateFocus(leaf)
	require.True(t, s.dragActive)
	require.NotEmpty(t, s.focusPath)

	s.DisposeWindow(win)

	assert.Empty(t, s.focusPath)
	assert.Nil(t, s.dragWidget)
	assert.False(t, s.dragActive)
	assert.Equal(t, -1, indexOf(s, win))
}

func TestCenterWindow(t *testing.T) {
	s := newTestScreen()
	win := NewWindow(s, "centered")
	win.SetSize(Vector2i{200, 100})

	s.CenterWindow(win)
	assert.Equal(t, Vector2i{300, 250}, win.Position())
}

func TestWindowHeaderDragMovesWindow(t *testing.T) {
	s := newTestScreen()
	win := NewWindow(s, "drag me")
	win.SetPosition(Vector2i{100, 100})
	win.SetSize(Vector2i{200, 150})

	// Press in the header, drag, release.
	s.CursorPosCallbackEvent(150, 110)
	require.True(t, s.MouseButtonCallbackEvent(MouseButtonLeft, true, 0))
	s.CursorPosCallbackEvent(180, 140)
	s.MouseButtonCallbackEvent(MouseButtonLeft, false, 0)

	assert.Equal(t, Vector2i{130, 130}, win.Position())
}
