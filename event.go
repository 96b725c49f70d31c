package anchor

// ============================================================================
// Input Event Types
// ============================================================================

// MouseButton identifies which pointer button an event refers to.
type MouseButton int

const (
	MouseButtonLeft MouseButton = iota + 1
	MouseButtonMiddle
	MouseButtonRight
)

// ButtonMask is a bitmask of currently held pointer buttons, indexed by
// MouseButton value.
type ButtonMask uint32

// With returns the mask with the given button pressed.
func (m ButtonMask) With(b MouseButton) ButtonMask {
	return m | 1<<uint(b)
}

// Without returns the mask with the given button released.
func (m ButtonMask) Without(b MouseButton) ButtonMask {
	return m &^ (1 << uint(b))
}

// Has reports whether the given button is pressed.
func (m ButtonMask) Has(b MouseButton) bool {
	return m&(1<<uint(b)) != 0
}

// Modifiers is a bitmask of active modifier keys.
type Modifiers uint8

const (
	ModShift Modifiers = 1 << iota
	ModCtrl
	ModAlt
	ModSuper // Cmd on Mac, Win key elsewhere
)

func (m Modifiers) Shift() bool { return m&ModShift != 0 }
func (m Modifiers) Ctrl() bool  { return m&ModCtrl != 0 }
func (m Modifiers) Alt() bool   { return m&ModAlt != 0 }
func (m Modifiers) Super() bool { return m&ModSuper != 0 }

// Action distinguishes press from release on button and key events.
type Action int

const (
	Release Action = iota
	Press
)

// Pressed reports whether the action is a press.
func (a Action) Pressed() bool { return a == Press }

// Key is a physical key code as reported by the platform surface.
type Key int

// A small set of named keys the core itself cares about. Widgets receive the
// raw platform code either way.
const (
	KeyUnknown   Key = 0
	KeyEnter     Key = 257
	KeyTab       Key = 258
	KeyBackspace Key = 259
	KeyDelete    Key = 261
	KeyLeft      Key = 263
	KeyRight     Key = 262
	KeyDown      Key = 264
	KeyUp        Key = 265
	KeyEscape    Key = 256
	KeyHome      Key = 268
	KeyEnd       Key = 269
)
