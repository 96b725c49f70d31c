package anchor

// Cursor is the shape the platform should display for the pointer.
// Widgets expose a cursor hint; the screen tracks the hint of whichever
// widget is under the pointer and pushes changes to the surface when it can.
type Cursor int

const (
	CursorArrow Cursor = iota
	CursorIBeam
	CursorCrosshair
	CursorHand
	CursorHResize
	CursorVResize

	cursorCount
)

// String returns a human-readable name for the cursor shape.
func (c Cursor) String() string {
	switch c {
	case CursorArrow:
		return "Arrow"
	case CursorIBeam:
		return "IBeam"
	case CursorCrosshair:
		return "Crosshair"
	case CursorHand:
		return "Hand"
	case CursorHResize:
		return "HResize"
	case CursorVResize:
		return "VResize"
	default:
		return "Unknown"
	}
}
