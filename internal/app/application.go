package app

import (
	"log/slog"

	"github.com/gdamore/tcell/v2"
	statepkg "github.com/kk-code-lab/maskfield/internal/state"
	inputui "github.com/kk-code-lab/maskfield/internal/ui/input"
	renderui "github.com/kk-code-lab/maskfield/internal/ui/render"
)

// Application represents the running app.
type Application struct {
	screen         tcell.Screen
	state          *statepkg.FormState
	reducer        *statepkg.StateReducer
	renderer       *renderui.Renderer
	input          *inputui.InputHandler
	actionCh       chan statepkg.Action
	logger         *slog.Logger
	shouldQuit     bool
	submitted      bool
	clipboardCmd   []string
	clipboardAvail bool
}

// FieldValue is one submitted field.
type FieldValue struct {
	Name  string
	Value string
}

// Close cleans up resources.
func (app *Application) Close() error {
	close(app.actionCh)
	app.screen.Fini()
	// Keys typed while the form was closing must not reach the shell.
	return flushConsoleInput()
}

// Submitted reports whether the user confirmed the form rather than quitting.
func (app *Application) Submitted() bool {
	return app.submitted
}

// Values returns each field's raw value in form order.
func (app *Application) Values() []FieldValue {
	values := make([]FieldValue, 0, len(app.state.Fields))
	for i := range app.state.Fields {
		field := &app.state.Fields[i]
		values = append(values, FieldValue{Name: field.Profile, Value: field.Value()})
	}
	return values
}
