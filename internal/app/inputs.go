package app

import (
	"log/slog"
	"time"

	"github.com/TillWege/Carnival/internal/platform"
)

const (
	rumbleStrength = 0xFFFF
	rumbleDuration = 1000 * time.Millisecond
)

// chord is a key plus whether Ctrl must be held. Bindings without Ctrl fire
// regardless of modifiers.
type chord struct {
	key  platform.Key
	ctrl bool
}

var bindings = map[chord]func(*Application){
	{platform.KeyEscape, false}: (*Application).stop,
	{platform.KeyF, true}:       (*Application).toggleFullscreen,
	{platform.KeyF11, false}:    (*Application).toggleFullscreen,
	{platform.KeyV, true}:       (*Application).toggleVSync,
	{platform.KeyK, false}:      (*Application).disconnectController,
	{platform.KeyH, false}:      (*Application).rumble,
	{platform.KeyJ, false}:      (*Application).connectController,
	{platform.KeyR, false}:      (*Application).logState,
}

func lookup(ev platform.KeyEvent) (func(*Application), bool) {
	if ev.Mod&platform.ModCtrl != 0 {
		if h, ok := bindings[chord{ev.Key, true}]; ok {
			return h, true
		}
	}
	h, ok := bindings[chord{ev.Key, false}]
	return h, ok
}

// HandleEvents drains the pending events. Every event reaches the GUI first.
func (a *Application) HandleEvents() {
	for {
		ev, ok := a.platform.PollEvent()
		if !ok {
			return
		}
		a.overlay.ProcessEvent(ev)
		a.dispatch(ev)
	}
}

func (a *Application) dispatch(ev platform.Event) {
	switch e := ev.(type) {
	case platform.QuitEvent:
		a.stop()
	case platform.ResizeEvent:
		a.state.Resize(e.Width, e.Height)
	case platform.KeyEvent:
		if !e.Down || e.Repeat {
			return
		}
		if h, ok := lookup(e); ok {
			h(a)
		}
	}
}

func (a *Application) stop() {
	a.state.Running = false
}

func (a *Application) toggleFullscreen() {
	on := !a.platform.Fullscreen()
	if err := a.platform.SetFullscreen(on); err != nil {
		slog.Error("failed to toggle fullscreen", "fullscreen", on, "error", err)
	}
}

func (a *Application) toggleVSync() {
	next := 0
	if a.platform.SwapInterval() == 0 {
		next = 1
	}
	if err := a.platform.SetSwapInterval(next); err != nil {
		slog.Error("failed to set swap interval", "interval", next, "error", err)
		return
	}
	slog.Info("swap interval changed", "interval", next)
}

func (a *Application) disconnectController() {
	if a.input.Controller == nil {
		slog.Error("no controller connected")
		return
	}
	a.input.Controller.Close()
	a.input.Controller = nil
	a.input.Joystick = nil
	slog.Info("controller disconnected")
}

func (a *Application) rumble() {
	if a.input.Controller == nil {
		return
	}
	a.input.Joystick = a.input.Controller.Joystick()
	if a.input.Joystick == nil {
		return
	}
	result := 0
	err := a.input.Joystick.Rumble(rumbleStrength, rumbleStrength, rumbleDuration)
	if err != nil {
		result = -1
	}
	slog.Info("rumble result", "result", result, "error", err)
}

func (a *Application) connectController() {
	if a.input.Controller != nil {
		slog.Error("controller already connected")
		return
	}
	a.platform.UpdateJoysticks()
	if a.platform.NumJoysticks() == 0 {
		slog.Error("no controller connected")
		return
	}
	c, err := a.platform.OpenController(0)
	if err != nil {
		slog.Error("controller not connected", "error", err)
		return
	}
	a.input.Controller = c
	a.input.Joystick = c.Joystick()
	slog.Info("controller connected", "name", c.Name())
}

func (a *Application) logState() {
	s := a.state
	slog.Info("application state",
		"window", [2]int{s.WindowWidth, s.WindowHeight},
		"viewport", [2]int{s.ViewportWidth, s.ViewportHeight},
		"resize_queued", s.ResizeQueued,
		"counter", s.Counter,
		"controller", a.input.Controller != nil,
		"fullscreen", a.platform.Fullscreen(),
		"swap_interval", a.platform.SwapInterval())
}
