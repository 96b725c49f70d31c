//go:build darwin || linux || freebsd

package platform

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"sync"

	"github.com/ebitengine/purego"
)

var (
	libHandle uintptr
	libOnce   sync.Once
	libErr    error
)

func libraryName() string {
	switch runtime.GOOS {
	case "darwin":
		return "libanchorview.dylib"
	default:
		return "libanchorview.so"
	}
}

// libraryPath searches the usual locations for the native view library,
// falling back to the bare name so the system loader can find it.
func libraryPath() string {
	libName := libraryName()
	if env := os.Getenv("ANCHOR_VIEW_LIBRARY"); env != "" {
		return env
	}

	searchPaths := []string{
		libName,
		filepath.Join("lib", libName),
	}
	if execPath, err := os.Executable(); err == nil {
		execDir := filepath.Dir(execPath)
		searchPaths = append(searchPaths,
			filepath.Join(execDir, libName),
			filepath.Join(execDir, "..", "lib", libName),
		)
		if runtime.GOOS == "darwin" {
			searchPaths = append(searchPaths,
				filepath.Join(execDir, "..", "Frameworks", libName),
			)
		}
	}

	for _, path := range searchPaths {
		if _, err := os.Stat(path); err == nil {
			if absPath, err := filepath.Abs(path); err == nil {
				return absPath
			}
			return path
		}
	}
	return libName
}

// loadLibrary loads the native view library and registers all function
// pointers. One-time; subsequent calls return the first result.
func loadLibrary() error {
	libOnce.Do(func() {
		libPath := libraryPath()
		libHandle, libErr = purego.Dlopen(libPath, purego.RTLD_NOW|purego.RTLD_GLOBAL)
		if libErr != nil {
			libErr = fmt.Errorf("failed to load %s: %w", libPath, libErr)
			return
		}

		purego.RegisterLibFunc(&fnViewCreate, libHandle, "anchor_view_create")
		purego.RegisterLibFunc(&fnViewDestroy, libHandle, "anchor_view_destroy")
		purego.RegisterLibFunc(&fnViewShow, libHandle, "anchor_view_show")
		purego.RegisterLibFunc(&fnViewHide, libHandle, "anchor_view_hide")
		purego.RegisterLibFunc(&fnViewGetSize, libHandle, "anchor_view_get_size")
		purego.RegisterLibFunc(&fnViewScaleFactor, libHandle, "anchor_view_scale_factor")
		purego.RegisterLibFunc(&fnViewSetTitle, libHandle, "anchor_view_set_title")
		purego.RegisterLibFunc(&fnViewSetCursor, libHandle, "anchor_view_set_cursor")
		purego.RegisterLibFunc(&fnViewRequestClose, libHandle, "anchor_view_request_close")
		purego.RegisterLibFunc(&fnViewPoll, libHandle, "anchor_view_poll")
	})

	return libErr
}
