package anchor

// ============================================================================
// Widget Capability
// ============================================================================

// Widget is the capability the dispatch core requires from every node in the
// tree: parent/child links, geometry and hit testing, a cursor hint, focus
// bookkeeping, and the per-kind input handlers.
//
// Input handlers return (handled, err). A non-nil error is contained at the
// Screen boundary and treated as unhandled; it never propagates to the
// platform loop.
type Widget interface {
	Parent() Widget
	SetParent(Widget)
	Children() []Widget
	AddChild(Widget)
	RemoveChild(Widget)

	Position() Vector2i
	SetPosition(Vector2i)
	AbsolutePosition() Vector2i
	Size() Vector2i
	SetSize(Vector2i)
	FixedSize() Vector2i

	Visible() bool
	SetVisible(bool)
	Enabled() bool
	SetEnabled(bool)
	Focused() bool
	Cursor() Cursor
	SetCursor(Cursor)
	Tooltip() string
	SetTooltip(string)
	Theme() *Theme
	SetTheme(*Theme)

	// Contains reports whether p (in parent-relative coordinates) lies
	// inside the widget's bounds.
	Contains(p Vector2i) bool

	// FindWidget returns the deepest visible widget containing p
	// (parent-relative coordinates), or nil.
	FindWidget(p Vector2i) Widget

	MouseButtonEvent(p Vector2i, button MouseButton, down bool, mods Modifiers) (bool, error)
	MouseMotionEvent(p, rel Vector2i, buttons ButtonMask, mods Modifiers) (bool, error)
	MouseDragEvent(p, rel Vector2i, buttons ButtonMask, mods Modifiers) (bool, error)
	MouseEnterEvent(p Vector2i, enter bool) (bool, error)
	ScrollEvent(p Vector2i, rel Vector2f) (bool, error)
	FocusEvent(focused bool) (bool, error)
	KeyboardEvent(key Key, scancode int, action Action, mods Modifiers) (bool, error)
	KeyboardCharacterEvent(codepoint rune) (bool, error)

	PreferredSize(r Renderer) Vector2i
	PerformLayout(r Renderer)
	Draw(r Renderer)
}

// Windowed is the window capability: a top-level child of the screen that can
// gate input when modal.
type Windowed interface {
	Widget
	Modal() bool
}

// Anchored is the popup capability: a window owned by (anchored to) another
// window. The z-order invariant keeps every popup above its owner.
type Anchored interface {
	Windowed
	Owner() Windowed
}

// ============================================================================
// BaseWidget
// ============================================================================

// BaseWidget supplies the default Widget behavior. Concrete widgets embed it
// and override the handlers they care about. InitWidget must be called with
// the embedding widget so tree traversal dispatches to overrides.
type BaseWidget struct {
	self      Widget
	parent    Widget
	children  []Widget
	pos       Vector2i
	size      Vector2i
	fixedSize Vector2i
	theme     *Theme

	visible    bool
	enabled    bool
	focused    bool
	mouseFocus bool
	tooltip    string
	cursor     Cursor
}

// InitWidget wires the embedding widget into the tree under parent.
// A nil parent leaves the widget detached (the screen's own case).
func (b *BaseWidget) InitWidget(self, parent Widget) {
	b.self = self
	b.visible = true
	b.enabled = true
	b.cursor = CursorArrow
	if parent != nil {
		parent.AddChild(self)
	}
}

func (b *BaseWidget) Parent() Widget          { return b.parent }
func (b *BaseWidget) SetParent(p Widget)      { b.parent = p }
func (b *BaseWidget) Children() []Widget      { return b.children }
func (b *BaseWidget) Position() Vector2i      { return b.pos }
func (b *BaseWidget) SetPosition(p Vector2i)  { b.pos = p }
func (b *BaseWidget) Size() Vector2i          { return b.size }
func (b *BaseWidget) SetSize(s Vector2i)      { b.size = s }
func (b *BaseWidget) FixedSize() Vector2i     { return b.fixedSize }
func (b *BaseWidget) SetFixedSize(s Vector2i) { b.fixedSize = s }
func (b *BaseWidget) Visible() bool           { return b.visible }
func (b *BaseWidget) SetVisible(v bool)       { b.visible = v }
func (b *BaseWidget) Enabled() bool           { return b.enabled }
func (b *BaseWidget) SetEnabled(v bool)       { b.enabled = v }
func (b *BaseWidget) Focused() bool           { return b.focused }
func (b *BaseWidget) Cursor() Cursor          { return b.cursor }
func (b *BaseWidget) SetCursor(c Cursor)      { b.cursor = c }
func (b *BaseWidget) Tooltip() string         { return b.tooltip }
func (b *BaseWidget) SetTooltip(t string)     { b.tooltip = t }
func (b *BaseWidget) Theme() *Theme           { return b.theme }
func (b *BaseWidget) SetTheme(t *Theme)       { b.theme = t }

// AbsolutePosition returns the widget's position in screen coordinates.
func (b *BaseWidget) AbsolutePosition() Vector2i {
	if b.parent != nil {
		return b.parent.AbsolutePosition().Add(b.pos)
	}
	return b.pos
}

// AddChild appends child to the end of the child list (topmost in z-order)
// and hands down the theme when the child has none.
func (b *BaseWidget) AddChild(child Widget) {
	b.children = append(b.children, child)
	child.SetParent(b.self)
	if child.Theme() == nil {
		child.SetTheme(b.theme)
	}
}

// RemoveChild detaches child from the child list.
func (b *BaseWidget) RemoveChild(child Widget) {
	for i, c := range b.children {
		if c == child {
			b.children = append(b.children[:i], b.children[i+1:]...)
			child.SetParent(nil)
			return
		}
	}
}

// Contains reports whether p (parent-relative) lies inside the bounds.
func (b *BaseWidget) Contains(p Vector2i) bool {
	d := p.Sub(b.pos)
	return d.X >= 0 && d.Y >= 0 && d.X < b.size.X && d.Y < b.size.Y
}

// FindWidget returns the deepest visible widget containing p, checking
// children last-to-first so the topmost sibling wins.
func (b *BaseWidget) FindWidget(p Vector2i) Widget {
	for i := len(b.children) - 1; i >= 0; i-- {
		child := b.children[i]
		if child.Visible() && child.Contains(p.Sub(b.pos)) {
			return child.FindWidget(p.Sub(b.pos))
		}
	}
	if b.self.Contains(p) {
		return b.self
	}
	return nil
}

// RequestFocus asks the owning screen to move focus to this widget.
// No-op for widgets not attached to a screen.
func (b *BaseWidget) RequestFocus() {
	var w Widget = b.self
	for w.Parent() != nil {
		w = w.Parent()
	}
	if screen, ok := w.(*Screen); ok {
		screen.UpdateFocus(b.self)
	}
}

// MouseButtonEvent routes the press to the topmost child containing p.
// A primary press on an unfocused widget claims focus.
func (b *BaseWidget) MouseButtonEvent(p Vector2i, button MouseButton, down bool, mods Modifiers) (bool, error) {
	for i := len(b.children) - 1; i >= 0; i-- {
		child := b.children[i]
		if !child.Visible() || !child.Contains(p.Sub(b.pos)) {
			continue
		}
		handled, err := child.MouseButtonEvent(p.Sub(b.pos), button, down, mods)
		if handled || err != nil {
			return handled, err
		}
	}
	if button == MouseButtonLeft && down && !b.focused {
		b.RequestFocus()
	}
	return false, nil
}

// MouseMotionEvent forwards motion to children, issuing enter/leave
// notifications when containment flips between the previous and current
// pointer position.
func (b *BaseWidget) MouseMotionEvent(p, rel Vector2i, buttons ButtonMask, mods Modifiers) (bool, error) {
	for i := len(b.children) - 1; i >= 0; i-- {
		child := b.children[i]
		if !child.Visible() {
			continue
		}
		contained := child.Contains(p.Sub(b.pos))
		prevContained := child.Contains(p.Sub(b.pos).Sub(rel))
		if contained != prevContained {
			if _, err := child.MouseEnterEvent(p, contained); err != nil {
				return false, err
			}
		}
		if !contained && !prevContained {
			continue
		}
		handled, err := child.MouseMotionEvent(p.Sub(b.pos), rel, buttons, mods)
		if handled || err != nil {
			return handled, err
		}
	}
	return false, nil
}

// MouseDragEvent is ignored by default.
func (b *BaseWidget) MouseDragEvent(p, rel Vector2i, buttons ButtonMask, mods Modifiers) (bool, error) {
	return false, nil
}

// MouseEnterEvent records pointer containment.
func (b *BaseWidget) MouseEnterEvent(p Vector2i, enter bool) (bool, error) {
	b.mouseFocus = enter
	return false, nil
}

// ScrollEvent routes the scroll to the topmost child containing p.
func (b *BaseWidget) ScrollEvent(p Vector2i, rel Vector2f) (bool, error) {
	for i := len(b.children) - 1; i >= 0; i-- {
		child := b.children[i]
		if !child.Visible() || !child.Contains(p.Sub(b.pos)) {
			continue
		}
		handled, err := child.ScrollEvent(p.Sub(b.pos), rel)
		if handled || err != nil {
			return handled, err
		}
	}
	return false, nil
}

// FocusEvent records the focus flag. Widgets that react to focus override
// this and call the base to keep the flag in sync.
func (b *BaseWidget) FocusEvent(focused bool) (bool, error) {
	b.focused = focused
	return false, nil
}

// KeyboardEvent is ignored by default.
func (b *BaseWidget) KeyboardEvent(key Key, scancode int, action Action, mods Modifiers) (bool, error) {
	return false, nil
}

// KeyboardCharacterEvent is ignored by default.
func (b *BaseWidget) KeyboardCharacterEvent(codepoint rune) (bool, error) {
	return false, nil
}

// PreferredSize defaults to the current size.
func (b *BaseWidget) PreferredSize(r Renderer) Vector2i {
	return b.size
}

// PerformLayout sizes each child to its fixed size where set, otherwise its
// preferred size, then recurses.
func (b *BaseWidget) PerformLayout(r Renderer) {
	for _, child := range b.children {
		pref := child.PreferredSize(r)
		fix := child.FixedSize()
		target := pref
		if fix.X != 0 {
			target.X = fix.X
		}
		if fix.Y != 0 {
			target.Y = fix.Y
		}
		child.SetSize(target)
		child.PerformLayout(r)
	}
}

// Draw renders visible children in z-order.
func (b *BaseWidget) Draw(r Renderer) {
	for _, child := range b.children {
		if child.Visible() {
			child.Draw(r)
		}
	}
}
