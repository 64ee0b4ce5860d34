//go:build !windows

package app

import (
	"os"
	"syscall"

	"github.com/gdamore/tcell/v2"
)

func contSignals() []os.Signal {
	return []os.Signal{syscall.SIGCONT}
}

// suspendToShell hands the terminal back and stops the process, like Ctrl+Z
// in a line-mode program. The loop resumes on SIGCONT.
func (app *Application) suspendToShell() {
	_ = app.screen.Suspend()
	// Signal this process only. Stopping the whole group would also stop the
	// maskform wrapper and break `fg`.
	_ = syscall.Kill(syscall.Getpid(), syscall.SIGTSTP)
}

func (app *Application) resumeAfterStop() bool {
	if err := app.screen.Resume(); err != nil {
		return false
	}
	// Resume resets terminal modes, bracketed paste included.
	app.screen.EnablePaste()
	app.screen.Sync()
	w, h := app.screen.Size()
	if w > 0 && h > 0 {
		app.state.ScreenWidth = w
		app.state.ScreenHeight = h
	}
	_ = app.screen.PostEvent(tcell.NewEventInterrupt("resume"))
	return true
}

// Terminals drop pending input through tcell's own teardown.
func flushConsoleInput() error {
	return nil
}
