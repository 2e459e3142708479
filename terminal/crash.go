package terminal

import (
	"fmt"
	"io"
	"os"
	"runtime/debug"

	"github.com/gdamore/tcell/v2"
)

var (
	crashOut  io.Writer = os.Stderr
	crashExit           = os.Exit
)

// HandleCrash restores the terminal, prints the panic with its stack and exits
// No-op for a nil recover value
func HandleCrash(screen tcell.Screen, r any) {
	if r == nil {
		return
	}
	if screen != nil {
		screen.Fini()
	}
	fmt.Fprintf(crashOut, "\n\x1b[31mCRASH DETECTED: %v\x1b[0m\n", r)
	fmt.Fprintf(crashOut, "Stack Trace:\n%s\n", debug.Stack())
	crashExit(1)
}

// Go runs fn on a new goroutine that restores screen if fn panics
func Go(screen tcell.Screen, fn func()) {
	go func() {
		defer func() {
			HandleCrash(screen, recover())
		}()
		fn()
	}()
}
