//go:build !(darwin || linux || freebsd)

package platform

import (
	"fmt"
	"runtime"
)

func loadLibrary() error {
	return fmt.Errorf("native view library is not supported on %s", runtime.GOOS)
}
