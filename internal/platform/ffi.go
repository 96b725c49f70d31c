package platform

import "unsafe"

// Native view library function pointers, populated by loadLibrary.
var (
	fnViewCreate       func(width, height int32, title uintptr, resizable int32) uintptr
	fnViewDestroy      func(view uintptr)
	fnViewShow         func(view uintptr)
	fnViewHide         func(view uintptr)
	fnViewGetSize      func(view uintptr, out uintptr)
	fnViewScaleFactor  func(view uintptr) float64
	fnViewSetTitle     func(view uintptr, title uintptr)
	fnViewSetCursor    func(view uintptr, kind int32)
	fnViewRequestClose func(view uintptr)
	fnViewPoll         func(view uintptr, out uintptr) int32
)

// cstring returns a pointer to a NUL-terminated copy of s for FFI calls.
// The copy is garbage collected; callees must not retain the pointer.
func cstring(s string) uintptr {
	buf := make([]byte, len(s)+1)
	copy(buf, s)
	return uintptr(unsafe.Pointer(&buf[0]))
}

func ptr[T any](v *T) uintptr {
	return uintptr(unsafe.Pointer(v))
}
