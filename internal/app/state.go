package app

import (
	"image"
	"time"

	"github.com/TillWege/Carnival/internal/platform"
)

// EasterEggClicks is the counter value that opens the easter egg popup.
const EasterEggClicks = 9

// TimeLayout formats timestamps in the start/quit banners and the clock.
const TimeLayout = "02.01.2006 15:04:05.000 -0700"

func Timestamp(t time.Time) string {
	return t.Format(TimeLayout)
}

// InputContext holds the single open controller, if any.
type InputContext struct {
	Controller platform.Controller
	Joystick   platform.Joystick
}

// State is the UI and view state read and written by the loop.
type State struct {
	Running bool

	// last resize event seen
	WindowWidth  int
	WindowHeight int

	// LeftPanelWidth is the right edge of the left panel as last drawn.
	LeftPanelWidth int
	// OffsetScene shifts the direct-mode viewport right of the left panel.
	OffsetScene bool

	Counter int
	// EasterEggOpen requests the modal; EasterEggShown is whether it was
	// drawn in the last frame.
	EasterEggOpen     bool
	EasterEggShown    bool
	ShowDemoWindow    bool
	ShowAnotherWindow bool
	SecondOpen        bool

	// last measured content region of the viewport panel
	ViewportWidth  int
	ViewportHeight int
	ResizeQueued   bool

	// FirstLayout is true until the first GUI frame built the dock layout.
	FirstLayout bool
}

func NewState() State {
	return State{
		Running:        true,
		WindowWidth:    platform.DefaultWidth,
		WindowHeight:   platform.DefaultHeight,
		LeftPanelWidth: 300,
		FirstLayout:    true,
	}
}

// Resize records a window resize.
func (s *State) Resize(width, height int) {
	s.WindowWidth, s.WindowHeight = width, height
}

// DirectViewport is where the scene goes when drawing straight to the
// window.
func (s *State) DirectViewport() image.Rectangle {
	if s.OffsetScene && s.LeftPanelWidth < s.WindowWidth {
		return image.Rect(s.LeftPanelWidth, 0, s.WindowWidth, s.WindowHeight)
	}
	return image.Rect(0, 0, s.WindowWidth, s.WindowHeight)
}

// MeasureViewport records the viewport panel's content size and queues an
// offscreen rebuild if it changed.
func (s *State) MeasureViewport(width, height int) bool {
	if width == s.ViewportWidth && height == s.ViewportHeight {
		return false
	}
	s.ViewportWidth, s.ViewportHeight = width, height
	s.ResizeQueued = true
	return true
}

// Click counts a counter button press and reports whether the easter egg
// popup should open.
func (s *State) Click() bool {
	s.Counter++
	if s.Counter == EasterEggClicks {
		s.EasterEggOpen = true
		return true
	}
	return false
}

func (s *State) CloseEasterEgg() {
	s.EasterEggOpen = false
}
