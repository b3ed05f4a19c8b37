package tui

import (
	"fmt"
	"os"
	"time"
)

// debugLogf appends to the file named by RAFPAD_TUI_DEBUG_LOG. A TUI can't
// print to the terminal it owns, so background errors that the UI swallows
// (like chat send failures behind the fallback message) go here.
func debugLogf(format string, args ...any) {
	path := os.Getenv("RAFPAD_TUI_DEBUG_LOG")
	if path == "" {
		return
	}
	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return
	}
	defer f.Close()
	fmt.Fprintf(f, "%s "+format+"\n", append([]any{time.Now().Format(time.RFC3339)}, args...)...)
}
