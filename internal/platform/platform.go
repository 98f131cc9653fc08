// Package platform owns the window, the GL context and the input devices.
// Two backends exist: SDL2 (default) and GLFW.
package platform

import (
	"time"

	"github.com/pkg/errors"
)

const (
	DefaultWidth  = 1280
	DefaultHeight = 720
	MinWidth      = 500
	MinHeight     = 300
)

// Backend names accepted by Open.
const (
	BackendSDL  = "sdl"
	BackendGLFW = "glfw"
)

// Config selects the backend and the window/context attributes.
type Config struct {
	Backend string
	Title   string
	VSync   bool
	MSAA    bool
}

// Platform is everything the application needs from the windowing layer.
type Platform interface {
	// PollEvent returns the next pending event without blocking.
	PollEvent() (Event, bool)
	SwapWindow()
	SetTitle(title string)

	Fullscreen() bool
	SetFullscreen(on bool) error
	SwapInterval() int
	SetSwapInterval(interval int) error

	WindowSize() (width, height int)
	DrawableSize() (width, height int)

	// UpdateJoysticks refreshes the device list before NumJoysticks.
	UpdateJoysticks()
	NumJoysticks() int
	OpenController(index int) (Controller, error)

	// PreserveContext runs fn and makes the previously current window and context
	// current again afterwards.
	PreserveContext(fn func())

	Profile() Profile
	Info() Info
	Destroy()
}

// Controller is an open game controller.
type Controller interface {
	Name() string
	// Joystick returns nil if the controller has no joystick handle.
	Joystick() Joystick
	Close()
}

// Joystick is the vibration-capable side of a controller.
type Joystick interface {
	Rumble(low, high uint16, d time.Duration) error
}

// Info describes the host for display purposes.
type Info struct {
	Name  string
	CPUs  int
	RAMMB int
}

// ErrRumbleUnsupported is returned by joysticks that cannot vibrate.
var ErrRumbleUnsupported = errors.New("rumble not supported by this backend")

// Open initializes the backend named in cfg, creates the window and makes a
// GL context current on it.
func Open(cfg Config) (Platform, error) {
	if cfg.Title == "" {
		cfg.Title = "Carnival"
	}
	switch cfg.Backend {
	case BackendSDL, "":
		return openSDL(cfg, Current())
	case BackendGLFW:
		return openGLFW(cfg, Current())
	}
	return nil, errors.Errorf("unknown platform backend %q", cfg.Backend)
}
