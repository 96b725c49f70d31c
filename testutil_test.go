package anchor

// Recording widgets used across the dispatch tests. They capture the
// notifications the screen sends them and can be configured to handle, fail,
// or panic on demand.

type recWidget struct {
	BaseWidget
	name string
	log  *[]string

	handleButton  bool
	handleKey     bool
	handleChar    bool
	buttonErr     error
	panicOnButton bool

	gained   int
	lost     int
	presses  []Vector2i
	releases []Vector2i
	drags    []Vector2i
	keys     []Key
	chars    []rune
}

func newRecWidget(parent Widget, name string, log *[]string) *recWidget {
	w := &recWidget{name: name, log: log}
	w.InitWidget(w, parent)
	return w
}

func (w *recWidget) record(ev string) {
	if w.log != nil {
		*w.log = append(*w.log, w.name+":"+ev)
	}
}

func (w *recWidget) FocusEvent(focused bool) (bool, error) {
	if focused {
		w.gained++
		w.record("focus")
	} else {
		w.lost++
		w.record("blur")
	}
	return w.BaseWidget.FocusEvent(focused)
}

func (w *recWidget) MouseButtonEvent(p Vector2i, button MouseButton, down bool, mods Modifiers) (bool, error) {
	if w.panicOnButton {
		panic("widget exploded")
	}
	if w.buttonErr != nil {
		return false, w.buttonErr
	}
	if down {
		w.presses = append(w.presses, p)
	} else {
		w.releases = append(w.releases, p)
	}
	if w.handleButton {
		w.record("button")
		return true, nil
	}
	return w.BaseWidget.MouseButtonEvent(p, button, down, mods)
}

func (w *recWidget) MouseDragEvent(p, rel Vector2i, buttons ButtonMask, mods Modifiers) (bool, error) {
	w.drags = append(w.drags, p)
	w.record("drag")
	return true, nil
}

func (w *recWidget) KeyboardEvent(key Key, scancode int, action Action, mods Modifiers) (bool, error) {
	w.keys = append(w.keys, key)
	w.record("key")
	return w.handleKey, nil
}

func (w *recWidget) KeyboardCharacterEvent(codepoint rune) (bool, error) {
	w.chars = append(w.chars, codepoint)
	w.record("char")
	return w.handleChar, nil
}

type recWindow struct {
	Window
	name string
	log  *[]string

	gained int
	lost   int
}

func newRecWindow(parent Widget, name string, log *[]string) *recWindow {
	w := &recWindow{name: name, log: log}
	w.InitWidget(w, parent)
	return w
}

func (w *recWindow) FocusEvent(focused bool) (bool, error) {
	if w.log != nil {
		if focused {
			*w.log = append(*w.log, w.name+":focus")
		} else {
			*w.log = append(*w.log, w.name+":blur")
		}
	}
	if focused {
		w.gained++
	} else {
		w.lost++
	}
	return w.Window.FocusEvent(focused)
}

// newTestScreen returns a headless screen with the platform border
// correction disabled so test coordinates map one to one.
func newTestScreen() *Screen {
	s := NewScreen(Vector2i{800, 600}, "test")
	s.SetPointerOffset(Vector2i{})
	return s
}

// indexOf returns the z-order index of w among the screen's children.
func indexOf(s *Screen, w Widget) int {
	for i, c := range s.Children() {
		if c == w {
			return i
		}
	}
	return -1
}
