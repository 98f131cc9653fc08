package platform

// Event is one of the concrete event types below. The set is closed: the
// unexported method keeps other packages from adding kinds.
type Event interface {
	event()
}

// QuitEvent is raised when the user closes the main window.
type QuitEvent struct{}

// ResizeEvent carries the new window size in screen coordinates.
type ResizeEvent struct {
	Width, Height int
}

// KeyEvent reports a key transition.
type KeyEvent struct {
	Key    Key
	Mod    Mod
	Down   bool
	Repeat bool
}

// TextEvent carries typed characters.
type TextEvent struct {
	Text string
}

// MouseMoveEvent reports the cursor position in window coordinates.
type MouseMoveEvent struct {
	X, Y float32
}

// MouseButtonEvent reports a button transition. Button 0 is the left button,
// 1 the right and 2 the middle.
type MouseButtonEvent struct {
	Button int
	Down   bool
}

// MouseWheelEvent reports scroll offsets.
type MouseWheelEvent struct {
	X, Y float32
}

func (QuitEvent) event()        {}
func (ResizeEvent) event()      {}
func (KeyEvent) event()         {}
func (TextEvent) event()        {}
func (MouseMoveEvent) event()   {}
func (MouseButtonEvent) event() {}
func (MouseWheelEvent) event()  {}

// Mod is a bit set of held modifier keys.
type Mod uint8

const (
	ModShift Mod = 1 << iota
	ModCtrl
	ModAlt
	ModSuper
)

// Key is a backend-neutral key code. Values stay below 512 so they can index
// the GUI's key-down table directly.
type Key int

const (
	KeyUnknown Key = iota
	KeyEscape
	KeyEnter
	KeyTab
	KeyBackspace
	KeyDelete
	KeyInsert
	KeySpace
	KeyLeft
	KeyRight
	KeyUp
	KeyDown
	KeyPageUp
	KeyPageDown
	KeyHome
	KeyEnd
	KeyLeftShift
	KeyRightShift
	KeyLeftCtrl
	KeyRightCtrl
	KeyLeftAlt
	KeyRightAlt
	KeyLeftSuper
	KeyRightSuper
	KeyF1
	KeyF2
	KeyF3
	KeyF4
	KeyF5
	KeyF6
	KeyF7
	KeyF8
	KeyF9
	KeyF10
	KeyF11
	KeyF12
	KeyA
	KeyB
	KeyC
	KeyD
	KeyE
	KeyF
	KeyG
	KeyH
	KeyI
	KeyJ
	KeyK
	KeyL
	KeyM
	KeyN
	KeyO
	KeyP
	KeyQ
	KeyR
	KeyS
	KeyT
	KeyU
	KeyV
	KeyW
	KeyX
	KeyY
	KeyZ
	KeyCount
)

// Letter returns the key for an ASCII letter, or KeyUnknown.
func Letter(r rune) Key {
	switch {
	case r >= 'a' && r <= 'z':
		return KeyA + Key(r-'a')
	case r >= 'A' && r <= 'Z':
		return KeyA + Key(r-'A')
	}
	return KeyUnknown
}

// Function returns the key for F1..F12, or KeyUnknown.
func Function(n int) Key {
	if n < 1 || n > 12 {
		return KeyUnknown
	}
	return KeyF1 + Key(n-1)
}
