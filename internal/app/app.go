// Package app is the application shell: it owns the platform, the GUI and
// the GL objects and runs the poll, render, present loop.
package app

import (
	"fmt"
	"image"
	"time"

	"github.com/TillWege/Carnival/internal/config"
	"github.com/TillWege/Carnival/internal/platform"
)

// Overlay is the immediate-mode GUI layer.
type Overlay interface {
	ProcessEvent(ev platform.Event)
	// Frame begins a GUI frame, runs build and renders the result.
	Frame(build func())
	Viewports() bool
	RenderPlatformWindows()
	Dispose()
}

// Scene draws the 3D content into the bound framebuffer.
type Scene interface {
	Draw(viewport image.Rectangle)
	Delete()
}

// Target is the offscreen image the viewport panel shows.
type Target interface {
	Size() (width, height int)
	Texture() uint32
	Resize(width, height int)
	Bind()
	Unbind()
	Delete()
}

type Application struct {
	cfg      config.Config
	platform platform.Platform
	overlay  Overlay
	scene    Scene
	// nil in direct mode
	target Target

	input InputContext
	state State
	info  platform.Info

	frames int
}

// New takes ownership of every handle passed in. target must be nil in
// direct mode.
func New(cfg config.Config, plat platform.Platform, overlay Overlay, scene Scene, target Target) *Application {
	a := &Application{
		cfg:      cfg,
		platform: plat,
		overlay:  overlay,
		scene:    scene,
		target:   target,
		state:    NewState(),
		info:     plat.Info(),
	}
	a.state.OffsetScene = cfg.OffsetScene
	a.state.WindowWidth, a.state.WindowHeight = plat.WindowSize()
	return a
}

func (a *Application) State() *State {
	return &a.state
}

// Run loops until a quit is requested. A quit seen while handling events
// ends the loop before that iteration draws anything.
func (a *Application) Run() {
	second := time.NewTicker(time.Second)
	defer second.Stop()

	for a.state.Running {
		a.HandleEvents()
		if !a.state.Running {
			break
		}
		a.render()

		a.frames++
		select {
		case <-second.C:
			a.platform.SetTitle(fmt.Sprintf("%s | FPS: %d", a.cfg.Title, a.frames))
			a.frames = 0
		default:
		}
	}
}

// Close releases everything in reverse order of creation.
func (a *Application) Close() {
	if a.input.Controller != nil {
		a.input.Controller.Close()
		a.input = InputContext{}
	}
	if a.overlay != nil {
		a.overlay.Dispose()
		a.overlay = nil
	}
	if a.target != nil {
		a.target.Delete()
		a.target = nil
	}
	if a.scene != nil {
		a.scene.Delete()
		a.scene = nil
	}
	if a.platform != nil {
		a.platform.Destroy()
		a.platform = nil
	}
}
