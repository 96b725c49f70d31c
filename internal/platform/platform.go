// Package platform owns the native window and GL context behind a Surface.
// It loads the native view library via purego, performs one-time native
// initialization at Open, and translates the library's packed event records
// into normalized Events. Callers get an already-ready capability; there is
// no process-wide init state to poke.
package platform

import (
	"encoding/binary"
	"fmt"
	"math"
)

// EventKind identifies a normalized platform event.
type EventKind uint32

const (
	EventButtonPress EventKind = iota + 1
	EventButtonRelease
	EventMotion
	EventScroll
	EventKeyPress
	EventKeyRelease
	EventConfigure
	EventExpose
	EventClose
)

// Event is one normalized platform event. Which fields are meaningful
// depends on Kind.
type Event struct {
	Kind      EventKind
	Button    int     // button events
	Key       int     // key events: platform key code
	Scancode  int     // key events
	Modifiers uint32  // button, key events
	X, Y      float64 // motion: device pixels; scroll: deltas
	Width     int     // configure
	Height    int     // configure
	Codepoint rune    // key press with decoded text
	IsChar    bool    // key press carries decoded text
}

// Config describes the native window to create.
type Config struct {
	Width     int
	Height    int
	Title     string
	Resizable bool
}

// Surface wraps one native window/context.
type Surface struct {
	view    uintptr
	eventFn func(Event)

	// reused decode buffer for polled event records
	eventBuf [eventRecordSize]byte
}

// Open creates the native window and returns a ready surface. Library load
// or window creation failure is fatal here; a Surface is never returned
// partially initialized.
func Open(cfg Config) (*Surface, error) {
	if err := loadLibrary(); err != nil {
		return nil, fmt.Errorf("failed to load native view library: %w", err)
	}

	resizable := int32(0)
	if cfg.Resizable {
		resizable = 1
	}
	view := fnViewCreate(int32(cfg.Width), int32(cfg.Height), cstring(cfg.Title), resizable)
	if view == 0 {
		return nil, fmt.Errorf("failed to create native window (%dx%d)", cfg.Width, cfg.Height)
	}
	return &Surface{view: view}, nil
}

// SetEventFunc registers the callback invoked for each polled event.
func (s *Surface) SetEventFunc(fn func(Event)) {
	s.eventFn = fn
}

// LogicalSize returns the window size in logical pixels.
func (s *Surface) LogicalSize() (int, int) {
	var out [2]int32
	fnViewGetSize(s.view, ptr(&out[0]))
	ratio := s.PixelRatio()
	return int(float32(out[0]) / ratio), int(float32(out[1]) / ratio)
}

// FramebufferSize returns the drawable size in device pixels.
func (s *Surface) FramebufferSize() (int, int) {
	var out [2]int32
	fnViewGetSize(s.view, ptr(&out[0]))
	return int(out[0]), int(out[1])
}

// PixelRatio returns the DPI scale factor, falling back to 1 when the native
// library cannot determine it.
func (s *Surface) PixelRatio() float32 {
	ratio := float32(fnViewScaleFactor(s.view))
	if ratio < 1 {
		return 1
	}
	return ratio
}

// SetVisible shows or hides the window.
func (s *Surface) SetVisible(visible bool) {
	if visible {
		fnViewShow(s.view)
	} else {
		fnViewHide(s.view)
	}
}

// SetCaption sets the window title.
func (s *Surface) SetCaption(title string) {
	fnViewSetTitle(s.view, cstring(title))
}

// SetCursor sets the displayed cursor shape. Best effort: unsupported shapes
// leave the previous cursor displayed.
func (s *Surface) SetCursor(kind int) {
	fnViewSetCursor(s.view, int32(kind))
}

// RequestClose asks the native window to close; the owner sees it as a
// Close event on the feed.
func (s *Surface) RequestClose() {
	fnViewRequestClose(s.view)
}

// PollEvents drains the native event queue, delivering each event to the
// registered callback in arrival order. Each event is fully dispatched
// before the next is decoded.
func (s *Surface) PollEvents() {
	for fnViewPoll(s.view, ptr(&s.eventBuf[0])) != 0 {
		ev := decodeEvent(s.eventBuf[:])
		if s.eventFn != nil {
			s.eventFn(ev)
		}
	}
}

// Destroy tears down the native window. The surface must not be used after.
func (s *Surface) Destroy() {
	if s.view != 0 {
		fnViewDestroy(s.view)
		s.view = 0
	}
}

// Packed event record layout, little endian:
//
//	0  u32 kind
//	4  i32 arg0   button / key / width
//	8  i32 arg1   scancode / height
//	12 u32 mods
//	16 f64 x
//	24 f64 y
//	32 u32 codepoint
//	36 u32 flags  bit 0: event carries decoded text
const eventRecordSize = 40

func decodeEvent(buf []byte) Event {
	ev := Event{
		Kind:      EventKind(binary.LittleEndian.Uint32(buf[0:])),
		Modifiers: binary.LittleEndian.Uint32(buf[12:]),
		Codepoint: rune(binary.LittleEndian.Uint32(buf[32:])),
		IsChar:    binary.LittleEndian.Uint32(buf[36:])&1 != 0,
	}
	arg0 := int(int32(binary.LittleEndian.Uint32(buf[4:])))
	arg1 := int(int32(binary.LittleEndian.Uint32(buf[8:])))
	x := math.Float64frombits(binary.LittleEndian.Uint64(buf[16:]))
	y := math.Float64frombits(binary.LittleEndian.Uint64(buf[24:]))

	switch ev.Kind {
	case EventButtonPress, EventButtonRelease:
		ev.Button = arg0
	case EventKeyPress, EventKeyRelease:
		ev.Key = arg0
		ev.Scancode = arg1
	case EventConfigure:
		ev.Width = arg0
		ev.Height = arg1
	case EventMotion, EventScroll:
		ev.X = x
		ev.Y = y
	}
	return ev
}
