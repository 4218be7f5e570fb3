//go:build !linux

package platform

import (
	"fmt"
	"log/slog"
	"runtime"
)

// Options configures a window-system backend.
type Options struct {
	Display       string
	DefaultSize   Size
	CloseOnEscape bool
	Logger        *slog.Logger
}

// Open reports that no window-system backend exists for this platform.
func Open(opts Options) (Backend, error) {
	return nil, fmt.Errorf("no window system backend for %s", runtime.GOOS)
}
