package anchor

import (
	"log/slog"
	"math"
	"time"
)

// Tooltip timing: idle threshold before a tooltip appears, then a fade-in of
// the same length.
const tooltipDelay = 500 * time.Millisecond

// Surface is the platform capability the screen consumes: native window
// geometry, DPI scale, visibility, and a close request. The raw event feed is
// wired separately by whoever constructs the surface (see OpenScreen).
type Surface interface {
	LogicalSize() (int, int)
	FramebufferSize() (int, int)
	PixelRatio() float32
	SetVisible(visible bool)
	RequestClose()
	PollEvents()
}

// captionSurface and cursorSurface are optional surface capabilities.
// A platform that cannot set a title or cursor simply leaves them alone.
type captionSurface interface {
	SetCaption(title string)
}

type cursorSurface interface {
	SetCursor(kind int)
}

// ============================================================================
// Screen
// ============================================================================

// Screen is the root of the widget tree and the event-dispatch core. It owns
// pointer, drag, focus-path, cursor, tooltip, and stacking-order state, and
// converts normalized platform events into widget-tree calls.
//
// All state is owned by the screen and mutated only from its event-handling
// methods on the platform thread. Widget callbacks may read this state but
// must not restructure the tree from inside their own handler; defer
// structural changes (DisposeWindow and friends) until dispatch returns.
type Screen struct {
	BaseWidget

	surface  Surface
	renderer Renderer
	logger   *slog.Logger

	caption    string
	background Color
	fbSize     Vector2i
	pixelRatio float32
	cursor     Cursor

	// Border correction applied to every pointer coordinate. Observed
	// platform convention; surfaces that don't need it set it to zero.
	pointerOffset Vector2i

	mousePos   Vector2i
	mouseState ButtonMask
	modifiers  Modifiers

	dragActive bool
	dragWidget Widget

	// Focus path from the focused leaf up to, but excluding, the screen.
	focusPath []Widget

	lastInteraction time.Time
	shouldClose     bool
	processEvents   bool

	resizeCallback       func(Vector2i)
	dropCallback         func(names []string) bool
	drawContentsCallback func()
}

// NewScreen creates a screen of the given logical size. The screen dispatches
// events with or without attached surface/renderer capabilities; a bare
// screen is how tests drive the core.
func NewScreen(size Vector2i, caption string) *Screen {
	s := &Screen{
		caption:         caption,
		background:      Color{0.3, 0.3, 0.32, 1},
		fbSize:          size,
		pixelRatio:      1,
		cursor:          CursorArrow,
		pointerOffset:   Vector2i{1, 2},
		lastInteraction: time.Now(),
		processEvents:   true,
		logger:          slog.Default(),
	}
	s.InitWidget(s, nil)
	s.SetTheme(DefaultTheme())
	s.SetSize(size)
	return s
}

// Attach binds the platform surface and renderer capabilities and syncs
// geometry from the surface. Must be called before Run.
func (s *Screen) Attach(surface Surface, renderer Renderer) {
	s.surface = surface
	s.renderer = renderer
	if surface != nil {
		w, h := surface.LogicalSize()
		s.SetSize(Vector2i{w, h})
		fw, fh := surface.FramebufferSize()
		s.fbSize = Vector2i{fw, fh}
		s.pixelRatio = surface.PixelRatio()
		if cs, ok := surface.(captionSurface); ok {
			cs.SetCaption(s.caption)
		}
	}
}

// SetLogger replaces the diagnostic logger. A nil logger falls back to
// slog.Default.
func (s *Screen) SetLogger(logger *slog.Logger) {
	if logger == nil {
		logger = slog.Default()
	}
	s.logger = logger
}

func (s *Screen) Caption() string { return s.caption }

// SetCaption updates the window title on surfaces that support it.
func (s *Screen) SetCaption(caption string) {
	if caption == s.caption {
		return
	}
	s.caption = caption
	if cs, ok := s.surface.(captionSurface); ok {
		cs.SetCaption(caption)
	}
}

func (s *Screen) Background() Color         { return s.background }
func (s *Screen) SetBackground(c Color)     { s.background = c }
func (s *Screen) FramebufferSize() Vector2i { return s.fbSize }
func (s *Screen) PixelRatio() float32       { return s.pixelRatio }
func (s *Screen) MousePos() Vector2i        { return s.mousePos }
func (s *Screen) ShouldClose() bool         { return s.shouldClose }
func (s *Screen) SetShouldClose(v bool)     { s.shouldClose = v }

// SetPointerOffset overrides the per-platform pointer border correction.
func (s *Screen) SetPointerOffset(off Vector2i) { s.pointerOffset = off }

// SetVisible shows or hides the native surface along with the widget flag.
func (s *Screen) SetVisible(visible bool) {
	if s.Visible() == visible {
		return
	}
	s.BaseWidget.SetVisible(visible)
	if s.surface != nil {
		s.surface.SetVisible(visible)
	}
}

// SetResizeCallback registers a callback fired on accepted resize events.
func (s *Screen) SetResizeCallback(cb func(Vector2i)) { s.resizeCallback = cb }

// SetDropCallback registers a callback fired when files are dropped on the
// surface.
func (s *Screen) SetDropCallback(cb func(names []string) bool) { s.dropCallback = cb }

// SetDrawContentsCallback registers a hook drawn behind the widget tree.
func (s *Screen) SetDrawContentsCallback(cb func()) { s.drawContentsCallback = cb }

// ============================================================================
// Failure Boundary
// ============================================================================

// contain runs one dispatch, converting widget errors and panics into an
// unhandled result plus a diagnostic log entry. Nothing a widget handler does
// may break event delivery for subsequent events.
func (s *Screen) contain(event string, fn func() (bool, error)) (handled bool) {
	defer func() {
		if r := recover(); r != nil {
			s.logger.Error("panic in event handler", "event", event, "panic", r)
			handled = false
		}
	}()
	handled, err := fn()
	if err != nil {
		s.logger.Error("error in event handler", "event", event, "error", err)
		return false
	}
	return handled
}

// ============================================================================
// Event Normalization (platform feed -> per-event-kind handlers)
// ============================================================================

// CursorPosCallbackEvent normalizes a raw pointer position (device pixels)
// into logical coordinates, routes it as a drag or motion event, and records
// the new pointer position. Returns whether a widget handled the event.
func (s *Screen) CursorPosCallbackEvent(x, y float64) bool {
	p := Vector2i{
		int(x / float64(s.pixelRatio)),
		int(y / float64(s.pixelRatio)),
	}
	s.lastInteraction = time.Now()
	return s.contain("motion", func() (bool, error) {
		p = p.Sub(s.pointerOffset)

		ret := false
		if !s.dragActive {
			// Hover tracking: adopt the cursor hint of whatever is
			// under the pointer. Suspended while dragging.
			if w := s.FindWidget(p); w != nil && w.Cursor() != s.cursor {
				s.setCursor(w.Cursor())
			}
		} else {
			var err error
			ret, err = s.dragWidget.MouseDragEvent(
				p.Sub(s.dragParentPos()), p.Sub(s.mousePos),
				s.mouseState, s.modifiers)
			if err != nil {
				return false, err
			}
		}

		if !ret {
			var err error
			ret, err = s.MouseMotionEvent(p, p.Sub(s.mousePos), s.mouseState, s.modifiers)
			if err != nil {
				return false, err
			}
		}

		s.mousePos = p
		return ret, nil
	})
}

// MouseButtonCallbackEvent handles a pointer button press or release at the
// current pointer position: modal gating, button-mask bookkeeping, the drag
// state machine, then tree dispatch.
func (s *Screen) MouseButtonCallbackEvent(button MouseButton, down bool, mods Modifiers) bool {
	s.modifiers = mods
	s.lastInteraction = time.Now()
	return s.contain("button", func() (bool, error) {
		if s.modalGated() {
			return false, nil
		}

		if down {
			s.mouseState = s.mouseState.With(button)
		} else {
			s.mouseState = s.mouseState.Without(button)
		}

		dropWidget := s.FindWidget(s.mousePos)
		if s.dragActive && !down && dropWidget != s.dragWidget {
			// The pointer released somewhere else: the dragged widget
			// still gets told its drag ended.
			if _, err := s.dragWidget.MouseButtonEvent(
				s.mousePos.Sub(s.dragParentPos()), button, false, s.modifiers); err != nil {
				return false, err
			}
		}

		if dropWidget != nil && dropWidget.Cursor() != s.cursor {
			s.setCursor(dropWidget.Cursor())
		}

		if down && (button == MouseButtonLeft || button == MouseButtonRight) {
			s.dragWidget = s.FindWidget(s.mousePos)
			if s.dragWidget == Widget(s) {
				s.dragWidget = nil
			}
			s.dragActive = s.dragWidget != nil
			if !s.dragActive {
				// Press on empty root area clears focus entirely.
				s.UpdateFocus(nil)
			}
		} else {
			s.dragActive = false
			s.dragWidget = nil
		}

		return s.MouseButtonEvent(s.mousePos, button, down, s.modifiers)
	})
}

// ScrollCallbackEvent routes a scroll like a click, subject to the same modal
// gating. Motion events are deliberately not gated.
func (s *Screen) ScrollCallbackEvent(x, y float64) bool {
	s.lastInteraction = time.Now()
	return s.contain("scroll", func() (bool, error) {
		if s.modalGated() {
			return false, nil
		}
		return s.ScrollEvent(s.mousePos, Vector2f{float32(x), float32(y)})
	})
}

// KeyCallbackEvent routes a physical key event along the focus path.
func (s *Screen) KeyCallbackEvent(key Key, scancode int, action Action, mods Modifiers) bool {
	s.lastInteraction = time.Now()
	return s.contain("key", func() (bool, error) {
		return s.KeyboardEvent(key, scancode, action, mods)
	})
}

// CharCallbackEvent routes decoded text input along the focus path.
func (s *Screen) CharCallbackEvent(codepoint rune) bool {
	s.lastInteraction = time.Now()
	return s.contain("char", func() (bool, error) {
		return s.KeyboardCharacterEvent(codepoint)
	})
}

// DropCallbackEvent forwards dropped file paths to the drop hook.
func (s *Screen) DropCallbackEvent(names []string) bool {
	return s.contain("drop", func() (bool, error) {
		return s.DropEvent(names)
	})
}

// ResizeCallbackEvent refreshes logical and framebuffer sizes from the
// surface. A degenerate size (either dimension zero) is a transient platform
// glitch during minimize or reconfigure: it is silently ignored, no callback
// fires and no state changes.
func (s *Screen) ResizeCallbackEvent(width, height int) bool {
	fbSize := Vector2i{width, height}
	logical := Vector2i{
		int(float32(width) / s.pixelRatio),
		int(float32(height) / s.pixelRatio),
	}
	if s.surface != nil {
		fw, fh := s.surface.FramebufferSize()
		fbSize = Vector2i{fw, fh}
		lw, lh := s.surface.LogicalSize()
		logical = Vector2i{lw, lh}
	}
	if fbSize.X == 0 || fbSize.Y == 0 || logical.X == 0 || logical.Y == 0 {
		return false
	}

	s.fbSize = fbSize
	s.SetSize(logical)
	s.lastInteraction = time.Now()
	return s.contain("resize", func() (bool, error) {
		return s.ResizeEvent(logical)
	})
}

// modalGated reports whether the pointer currently sits outside a modal
// window that holds focus. Evaluated fresh per event from live focus-path and
// pointer state; gated events are discarded before the tree sees them.
func (s *Screen) modalGated() bool {
	if len(s.focusPath) == 0 {
		return false
	}
	win, ok := s.focusPath[len(s.focusPath)-1].(Windowed)
	return ok && win.Modal() && !win.Contains(s.mousePos)
}

func (s *Screen) dragParentPos() Vector2i {
	if s.dragWidget != nil && s.dragWidget.Parent() != nil {
		return s.dragWidget.Parent().AbsolutePosition()
	}
	return Vector2i{}
}

func (s *Screen) setCursor(c Cursor) {
	s.cursor = c
	if cs, ok := s.surface.(cursorSurface); ok {
		cs.SetCursor(int(c))
	}
}

// ============================================================================
// Widget-Tree Interface
// ============================================================================

// KeyboardEvent walks the focus path from the outermost ancestor toward the
// focused leaf, offering the key to each focused widget until one handles it.
func (s *Screen) KeyboardEvent(key Key, scancode int, action Action, mods Modifiers) (bool, error) {
	for i := len(s.focusPath) - 1; i >= 0; i-- {
		w := s.focusPath[i]
		if !w.Focused() {
			continue
		}
		handled, err := w.KeyboardEvent(key, scancode, action, mods)
		if handled || err != nil {
			return handled, err
		}
	}
	return false, nil
}

// KeyboardCharacterEvent routes decoded text along the focus path the same
// way KeyboardEvent does.
func (s *Screen) KeyboardCharacterEvent(codepoint rune) (bool, error) {
	for i := len(s.focusPath) - 1; i >= 0; i-- {
		w := s.focusPath[i]
		if !w.Focused() {
			continue
		}
		handled, err := w.KeyboardCharacterEvent(codepoint)
		if handled || err != nil {
			return handled, err
		}
	}
	return false, nil
}

// ResizeEvent fires the registered resize callback.
func (s *Screen) ResizeEvent(size Vector2i) (bool, error) {
	if s.resizeCallback != nil {
		s.resizeCallback(size)
		return true, nil
	}
	return false, nil
}

// DropEvent fires the registered file-drop callback.
func (s *Screen) DropEvent(names []string) (bool, error) {
	if s.dropCallback != nil {
		return s.dropCallback(names), nil
	}
	return false, nil
}

// ============================================================================
// Focus-Path Management
// ============================================================================

// UpdateFocus is the single mutator of the focus path. Every focused widget
// on the old path gets a focus-lost notification; the path is rebuilt by
// walking parent links from widget up to (excluding) the screen; the new path
// gets focus-gained notifications outermost ancestor first, so a window is
// marked focused before its focused child control. A window on the new path
// is raised to the front. A nil widget clears focus entirely.
func (s *Screen) UpdateFocus(widget Widget) {
	for _, w := range s.focusPath {
		if !w.Focused() {
			continue
		}
		if _, err := w.FocusEvent(false); err != nil {
			s.logger.Error("error in focus handler", "error", err)
		}
	}
	s.focusPath = nil

	var window Windowed
	for w := widget; w != nil && w != Widget(s); w = w.Parent() {
		s.focusPath = append(s.focusPath, w)
		if win, ok := w.(Windowed); ok {
			window = win
		}
	}

	for i := len(s.focusPath) - 1; i >= 0; i-- {
		if _, err := s.focusPath[i].FocusEvent(true); err != nil {
			s.logger.Error("error in focus handler", "error", err)
		}
	}

	// The screen counts as focused whenever any target is, so the default
	// click-to-focus path does not re-claim focus for the root and wipe the
	// path it just built.
	s.focused = widget != nil

	if window != nil {
		s.MoveWindowToFront(window)
	}
}

// ============================================================================
// Window Management
// ============================================================================

// DisposeWindow removes a top-level window, first clearing any focus-path or
// drag reference into it so no stale reference survives the removal.
func (s *Screen) DisposeWindow(window Windowed) {
	for _, w := range s.focusPath {
		if w == Widget(window) {
			s.focusPath = nil
			break
		}
	}
	if s.dragWidget != nil && hasAncestor(s.dragWidget, window) {
		s.dragWidget = nil
		s.dragActive = false
	}
	s.RemoveChild(window)
}

// hasAncestor reports whether a equals w or contains it.
func hasAncestor(w Widget, a Widget) bool {
	for ; w != nil; w = w.Parent() {
		if w == a {
			return true
		}
	}
	return false
}

// CenterWindow centers a window on the screen, sizing it from its preferred
// size first when it has none yet.
func (s *Screen) CenterWindow(window Windowed) {
	if window.Size().IsZero() {
		window.SetSize(window.PreferredSize(s.renderer))
		window.PerformLayout(s.renderer)
	}
	window.SetPosition(s.Size().Sub(window.Size()).Div(2))
}

// MoveWindowToFront moves a window to the top of the stacking order and then
// re-raises every popup anchored to it, recursively, until a full scan finds
// no popup below its owner. Brute force, but window counts are small.
func (s *Screen) MoveWindowToFront(window Windowed) {
	idx := -1
	for i, c := range s.children {
		if c == Widget(window) {
			idx = i
			break
		}
	}
	if idx < 0 {
		return
	}
	s.children = append(s.children[:idx], s.children[idx+1:]...)
	s.children = append(s.children, window)

	for changed := true; changed; {
		changed = false
		baseIndex := 0
		for i, c := range s.children {
			if c == Widget(window) {
				baseIndex = i
			}
		}
		for i, c := range s.children {
			popup, ok := c.(Anchored)
			if ok && popup.Owner() == Windowed(window) && i < baseIndex {
				s.MoveWindowToFront(popup)
				changed = true
				break
			}
		}
	}
}

// ============================================================================
// Drawing & Tooltips
// ============================================================================

// DrawAll renders the background contents hook and then the widget tree.
func (s *Screen) DrawAll() {
	if s.drawContentsCallback != nil {
		s.drawContentsCallback()
	}
	s.DrawWidgets()
}

// DrawWidgets renders the widget tree and, after the idle threshold, the
// tooltip of the widget under the pointer with its fade-in alpha.
func (s *Screen) DrawWidgets() {
	if !s.Visible() || s.renderer == nil {
		return
	}

	if s.surface != nil {
		s.pixelRatio = s.surface.PixelRatio()
		fw, fh := s.surface.FramebufferSize()
		s.fbSize = Vector2i{fw, fh}
		lw, lh := s.surface.LogicalSize()
		s.SetSize(Vector2i{lw, lh})
	}

	r := s.renderer
	r.BeginFrame(s.Size(), s.pixelRatio)
	s.Draw(r)

	if widget, alpha, ok := s.PendingTooltip(time.Now()); ok {
		r.SetGlobalAlpha(alpha)
		anchor := widget.AbsolutePosition().
			Add(Vector2i{widget.Size().X / 2, widget.Size().Y + 10})
		r.DrawTooltip(anchor, widget.Tooltip(), s.Theme())
		r.SetGlobalAlpha(1)
	}

	r.EndFrame()
}

// PendingTooltip reports which widget's tooltip should be visible at now and
// its fade-in opacity. Any interaction resets the idle clock; after 500ms of
// idle the tooltip fades in over a further 500ms up to 0.8 opacity.
func (s *Screen) PendingTooltip(now time.Time) (Widget, float32, bool) {
	elapsed := now.Sub(s.lastInteraction).Seconds()
	if elapsed <= tooltipDelay.Seconds() {
		return nil, 0, false
	}
	w := s.FindWidget(s.mousePos)
	if w == nil || w.Tooltip() == "" {
		return nil, 0, false
	}
	alpha := float32(math.Min(1, 2*(elapsed-tooltipDelay.Seconds())) * 0.8)
	return w, alpha, true
}

// ============================================================================
// Run Loop
// ============================================================================

// Run drains platform events and redraws until the screen should close.
// Events are fully processed, including all downstream widget callbacks,
// before the next one is normalized.
func (s *Screen) Run() {
	if s.surface == nil {
		return
	}
	for !s.shouldClose {
		s.surface.PollEvents()
		s.DrawAll()
	}
}
