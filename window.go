package anchor

// Window is a top-level child of the screen: a draggable, optionally modal
// container. While a window is modal, button and scroll events landing
// outside its bounds are discarded before the tree sees them.
type Window struct {
	BaseWidget
	title string
	modal bool
	drag  bool
}

// NewWindow creates a window with the given title under parent
// (normally the screen).
func NewWindow(parent Widget, title string) *Window {
	w := &Window{title: title}
	w.InitWidget(w, parent)
	return w
}

// Title returns the window title.
func (w *Window) Title() string { return w.title }

// SetTitle sets the window title.
func (w *Window) SetTitle(title string) { w.title = title }

// Modal reports whether the window gates input outside its bounds.
func (w *Window) Modal() bool { return w.modal }

// SetModal toggles modal input gating.
func (w *Window) SetModal(modal bool) { w.modal = modal }

func (w *Window) headerHeight() int {
	if w.Theme() != nil {
		return w.Theme().WindowHeaderHeight
	}
	return defaultTheme.WindowHeaderHeight
}

// MouseButtonEvent arms window dragging when the primary button goes down in
// the header area. Clicks anywhere on the window count as handled so they
// cannot fall through to windows behind it.
func (w *Window) MouseButtonEvent(p Vector2i, button MouseButton, down bool, mods Modifiers) (bool, error) {
	handled, err := w.BaseWidget.MouseButtonEvent(p, button, down, mods)
	if handled || err != nil {
		return handled, err
	}
	if button == MouseButtonLeft {
		w.drag = down && p.Sub(w.Position()).Y < w.headerHeight()
		return true, nil
	}
	return false, nil
}

// MouseDragEvent moves the window while a header drag is active, clamped to
// the parent's bounds.
func (w *Window) MouseDragEvent(p, rel Vector2i, buttons ButtonMask, mods Modifiers) (bool, error) {
	if !w.drag || !buttons.Has(MouseButtonLeft) {
		return false, nil
	}
	pos := w.Position().Add(rel)
	if pos.X < 0 {
		pos.X = 0
	}
	if pos.Y < 0 {
		pos.Y = 0
	}
	if w.Parent() != nil {
		limit := w.Parent().Size().Sub(w.Size())
		if pos.X > limit.X {
			pos.X = limit.X
		}
		if pos.Y > limit.Y {
			pos.Y = limit.Y
		}
	}
	w.SetPosition(pos)
	return true, nil
}

// ScrollEvent consumes scrolls over the window so they cannot reach
// whatever is stacked behind it.
func (w *Window) ScrollEvent(p Vector2i, rel Vector2f) (bool, error) {
	if handled, err := w.BaseWidget.ScrollEvent(p, rel); handled || err != nil {
		return handled, err
	}
	return true, nil
}
