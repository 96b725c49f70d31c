package anchor

import (
	"fmt"

	"github.com/anchorui/anchor/internal/platform"
)

// OpenScreen creates a native window of the given logical size and returns a
// screen bound to it. Construction is all-or-nothing: a library or window
// failure aborts with an error and no screen exists afterwards.
func OpenScreen(size Vector2i, caption string, resizable bool) (*Screen, error) {
	surface, err := platform.Open(platform.Config{
		Width:     size.X,
		Height:    size.Y,
		Title:     caption,
		Resizable: resizable,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create platform surface: %w", err)
	}

	s := NewScreen(size, caption)
	s.Attach(surface, nil)
	surface.SetEventFunc(s.handlePlatformEvent)
	return s, nil
}

// handlePlatformEvent translates one normalized platform event into the
// matching per-event-kind handler, exactly once, in arrival order.
func (s *Screen) handlePlatformEvent(ev platform.Event) {
	if !s.processEvents {
		return
	}
	switch ev.Kind {
	case platform.EventButtonPress:
		s.MouseButtonCallbackEvent(MouseButton(ev.Button), true, Modifiers(ev.Modifiers))
	case platform.EventButtonRelease:
		s.MouseButtonCallbackEvent(MouseButton(ev.Button), false, Modifiers(ev.Modifiers))
	case platform.EventMotion:
		s.CursorPosCallbackEvent(ev.X, ev.Y)
	case platform.EventScroll:
		s.ScrollCallbackEvent(ev.X, ev.Y)
	case platform.EventKeyPress:
		s.KeyCallbackEvent(Key(ev.Key), ev.Scancode, Press, Modifiers(ev.Modifiers))
		if ev.IsChar {
			s.CharCallbackEvent(ev.Codepoint)
		}
	case platform.EventKeyRelease:
		s.KeyCallbackEvent(Key(ev.Key), ev.Scancode, Release, Modifiers(ev.Modifiers))
	case platform.EventConfigure:
		s.ResizeCallbackEvent(ev.Width, ev.Height)
	case platform.EventExpose:
		s.DrawAll()
	case platform.EventClose:
		s.SetShouldClose(true)
	}
}
