// Package debug provides optional file-based debug logging.
//
// When the GRID_DEBUG environment variable is set to a file path, debug
// messages are appended to that file. Otherwise, logging is a no-op.
package debug

import (
	"fmt"
	"os"
	"sync"
)

var (
	once sync.Once
	mu   sync.Mutex
	out  *os.File
)

// sink opens the debug log on first use, or returns nil when disabled.
func sink() *os.File {
	once.Do(func() {
		path := os.Getenv("GRID_DEBUG")
		if path == "" {
			return
		}
		f, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
		if err != nil {
			// Debug logging is best-effort; a bad path disables it.
			return
		}
		out = f
	})
	return out
}

// Logf appends a formatted line to the debug log, if enabled.
func Logf(format string, args ...any) {
	f := sink()
	if f == nil {
		return
	}
	mu.Lock()
	defer mu.Unlock()
	fmt.Fprintf(f, format+"\n", args...)
}
