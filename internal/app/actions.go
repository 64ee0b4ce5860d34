package app

import (
	"bytes"
	"fmt"
	"os/exec"
	"strings"
	"time"
)

var commandBuilder = exec.Command

// handleClipboard copies the focused field's raw value, not its display.
func (app *Application) handleClipboard() bool {
	if !app.clipboardAvail || len(app.clipboardCmd) == 0 {
		return false
	}
	field := app.state.FocusedField()
	if field == nil {
		return false
	}

	name := app.clipboardCmd[0]
	cmd := commandBuilder(name, app.clipboardCmd[1:]...)
	cmd.Stdin = strings.NewReader(field.Value())
	// The screen is live; tool diagnostics go into the error instead.
	var stderr bytes.Buffer
	cmd.Stderr = &stderr
	if err := cmd.Run(); err != nil {
		if msg := strings.TrimSpace(stderr.String()); msg != "" {
			err = fmt.Errorf("%w: %s", err, msg)
		}
		app.state.LastError = fmt.Errorf("%s: %w", name, err)
		app.logger.Warn("clipboard copy failed", "command", name, "error", err)
		return true
	}
	app.state.LastError = nil
	app.state.LastYankTime = time.Now()
	app.logger.Debug("value yanked", "profile", field.Profile)
	return true
}
