package app

import (
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/kk-code-lab/maskfield/internal/config"
	statepkg "github.com/kk-code-lab/maskfield/internal/state"
	"github.com/kk-code-lab/maskfield/internal/ui/input"
	renderui "github.com/kk-code-lab/maskfield/internal/ui/render"
)

// NewApplication opens the terminal and builds one field per profile.
func NewApplication(profiles []config.Profile, logger *slog.Logger) (*Application, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, err
	}
	if err := screen.Init(); err != nil {
		return nil, err
	}
	// Bracketed paste lets a pasted value arrive as one edit.
	screen.EnablePaste()

	clipboardCmd, clipboardAvail := detectClipboard()
	app, err := newApplication(screen, profiles, logger, clipboardCmd, clipboardAvail)
	if err != nil {
		screen.Fini()
		return nil, err
	}
	return app, nil
}

func newApplication(screen tcell.Screen, profiles []config.Profile, logger *slog.Logger, clipboardCmd []string, clipboardAvail bool) (*Application, error) {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}

	state, err := newInitialState(profiles, clipboardAvail)
	if err != nil {
		return nil, err
	}
	w, h := screen.Size()
	state.ScreenWidth = w
	state.ScreenHeight = h

	actionCh := make(chan statepkg.Action, 10)
	inputHandler := input.NewInputHandler(actionCh)
	inputHandler.SetState(state)

	logger.Debug("form started", "fields", len(state.Fields), "clipboard", clipboardAvail)

	return &Application{
		screen:         screen,
		state:          state,
		reducer:        statepkg.NewStateReducer(logger),
		renderer:       renderui.NewRenderer(screen),
		input:          inputHandler,
		actionCh:       actionCh,
		logger:         logger,
		clipboardCmd:   clipboardCmd,
		clipboardAvail: clipboardAvail,
	}, nil
}

func newInitialState(profiles []config.Profile, clipboardAvail bool) (*statepkg.FormState, error) {
	if len(profiles) == 0 {
		return nil, fmt.Errorf("no profiles selected")
	}

	fields := make([]statepkg.Field, 0, len(profiles))
	for _, profile := range profiles {
		cfg, err := profile.MaskConfig()
		if err != nil {
			return nil, err
		}
		fields = append(fields, statepkg.NewField(profile.Name, profile.DisplayLabel(), profile.Placeholder, cfg, profile.Value))
	}

	return &statepkg.FormState{
		Fields:             fields,
		ClipboardAvailable: clipboardAvail,
	}, nil
}

// Run draws the form and processes events until the user submits or quits.
func (app *Application) Run() {
	defer app.screen.Fini()

	events := app.pollEvents()

	var resumed chan os.Signal
	if sigs := contSignals(); len(sigs) > 0 {
		resumed = make(chan os.Signal, 1)
		signal.Notify(resumed, sigs...)
		defer signal.Stop(resumed)
	}

	dirty := true
	for !app.shouldQuit {
		if dirty {
			app.renderer.Render(app.state)
			dirty = false
		}

		// Redraw once more when the yank flash runs out.
		var flashDone <-chan time.Time
		if remaining := app.flashRemaining(); remaining > 0 {
			flashDone = time.After(remaining)
		}

		select {
		case ev := <-events:
			dirty = app.handleEvent(ev)
		case action := <-app.actionCh:
			dirty = app.handleAction(action)
		case <-flashDone:
			dirty = true
		case <-resumed:
			dirty = app.resumeAfterStop()
		}

		if app.processActions() {
			dirty = true
		}
	}
}

// pollEvents forwards screen events to a channel so the loop can select on
// them alongside actions and signals.
func (app *Application) pollEvents() <-chan tcell.Event {
	events := make(chan tcell.Event)
	go func() {
		for {
			ev := app.screen.PollEvent()
			if ev == nil {
				// Fini was called.
				close(events)
				return
			}
			events <- ev
		}
	}()
	return events
}

func (app *Application) handleEvent(ev tcell.Event) bool {
	switch ev.(type) {
	case nil:
		return false
	case *tcell.EventKey, *tcell.EventResize, *tcell.EventPaste:
		// The handler queues the final action before asking to stop; it is
		// drained by processActions so Quit and Submit still run.
		app.input.ProcessEvent(ev)
	case *tcell.EventInterrupt:
		return true
	default:
		return false
	}
	return true
}

func (app *Application) processActions() bool {
	changed := false
	for {
		select {
		case action := <-app.actionCh:
			if app.handleAction(action) {
				changed = true
			}
		default:
			return changed
		}
	}
}

// yankFlash matches how long the renderer highlights the status line after
// a copy.
const yankFlash = 100 * time.Millisecond

func (app *Application) flashRemaining() time.Duration {
	if app.state == nil || app.state.LastYankTime.IsZero() {
		return 0
	}
	return max(yankFlash-time.Since(app.state.LastYankTime), 0)
}

func (app *Application) handleAction(action statepkg.Action) bool {
	if action == nil {
		return false
	}

	switch action.(type) {
	case statepkg.QuitAction:
		app.shouldQuit = true
		return false
	case statepkg.SubmitAction:
		app.submitted = true
		app.shouldQuit = true
		app.logger.Debug("form submitted", "fields", len(app.state.Fields))
		return false
	case statepkg.SuspendAction:
		app.suspendToShell()
		app.resumeAfterStop()
		return true
	}

	return app.handleAppAction(action)
}

func (app *Application) handleAppAction(action statepkg.Action) bool {
	switch action.(type) {
	case statepkg.YankValueAction:
		return app.handleClipboard()
	}

	if _, ok := action.(statepkg.ResizeAction); !ok {
		app.state.LastError = nil
	}
	if _, err := app.reducer.Reduce(app.state, action); err != nil {
		app.state.LastError = err
		app.logger.Warn("action failed", "action", fmt.Sprintf("%T", action), "error", err)
	}
	return true
}
