//go:build windows

package app

import (
	"os"

	"golang.org/x/sys/windows"
)

// Windows has no job control, so there is nothing to wait for.
func contSignals() []os.Signal {
	return nil
}

func (app *Application) suspendToShell() {}

func (app *Application) resumeAfterStop() bool {
	return false
}

// flushConsoleInput discards keys typed while the form was closing so they do
// not land in the calling shell.
func flushConsoleInput() error {
	handle, err := windows.GetStdHandle(windows.STD_INPUT_HANDLE)
	if err != nil {
		return err
	}
	return windows.FlushConsoleInputBuffer(handle)
}
