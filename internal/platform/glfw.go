package platform

import (
	"log/slog"
	"runtime"
	"time"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/glfw/v3.3/glfw"
	"github.com/pkg/errors"
)

// glfwPlatform delivers GLFW's callbacks as polled events: callbacks append
// to a queue during glfw.PollEvents and PollEvent drains it.
type glfwPlatform struct {
	window   *glfw.Window
	profile  Profile
	interval int
	queue    []Event

	// windowed geometry restored when leaving fullscreen
	windowedX, windowedY, windowedW, windowedH int
}

func openGLFW(cfg Config, profile Profile) (_ Platform, err error) {
	if err := glfw.Init(); err != nil {
		return nil, errors.Wrap(err, "failed to initialize glfw")
	}
	p := &glfwPlatform{profile: profile}
	defer func() {
		if err != nil {
			p.Destroy()
		}
	}()

	glfw.WindowHint(glfw.Resizable, glfw.True)
	glfw.WindowHint(glfw.ScaleToMonitor, glfw.True)
	glfw.WindowHint(glfw.DoubleBuffer, glfw.True)
	glfw.WindowHint(glfw.DepthBits, 24)
	glfw.WindowHint(glfw.StencilBits, 8)
	glfw.WindowHint(glfw.ContextVersionMajor, profile.Major)
	glfw.WindowHint(glfw.ContextVersionMinor, profile.Minor)
	glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCoreProfile)
	if profile.ForwardCompatible {
		glfw.WindowHint(glfw.OpenGLForwardCompatible, glfw.True)
	}
	if cfg.MSAA {
		glfw.WindowHint(glfw.Samples, 16)
	}

	p.window, err = glfw.CreateWindow(DefaultWidth, DefaultHeight, cfg.Title, nil, nil)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create window")
	}
	p.window.SetSizeLimits(MinWidth, MinHeight, glfw.DontCare, glfw.DontCare)
	if monitor := glfw.GetPrimaryMonitor(); monitor != nil {
		mode := monitor.GetVideoMode()
		p.window.SetPos((mode.Width-DefaultWidth)/2, (mode.Height-DefaultHeight)/2)
	}
	p.window.MakeContextCurrent()

	if cfg.VSync {
		p.interval = 1
	}
	glfw.SwapInterval(p.interval)

	if err = gl.InitWithProcAddrFunc(glfw.GetProcAddress); err != nil {
		return nil, errors.Wrap(err, "couldn't load GL entry points")
	}
	if cfg.MSAA {
		gl.Enable(gl.MULTISAMPLE)
	}

	p.installCallbacks()
	return p, nil
}

func (p *glfwPlatform) installCallbacks() {
	p.window.SetCloseCallback(func(w *glfw.Window) {
		w.SetShouldClose(false)
		p.queue = append(p.queue, QuitEvent{})
	})
	p.window.SetSizeCallback(func(_ *glfw.Window, width, height int) {
		p.queue = append(p.queue, ResizeEvent{Width: width, Height: height})
	})
	p.window.SetKeyCallback(func(_ *glfw.Window, key glfw.Key, _ int, action glfw.Action, mods glfw.ModifierKey) {
		p.queue = append(p.queue, KeyEvent{
			Key:    glfwKey(key),
			Mod:    glfwMod(mods),
			Down:   action != glfw.Release,
			Repeat: action == glfw.Repeat,
		})
	})
	p.window.SetCharCallback(func(_ *glfw.Window, char rune) {
		p.queue = append(p.queue, TextEvent{Text: string(char)})
	})
	p.window.SetCursorPosCallback(func(_ *glfw.Window, x, y float64) {
		p.queue = append(p.queue, MouseMoveEvent{X: float32(x), Y: float32(y)})
	})
	p.window.SetMouseButtonCallback(func(_ *glfw.Window, button glfw.MouseButton, action glfw.Action, _ glfw.ModifierKey) {
		index := -1
		switch button {
		case glfw.MouseButtonLeft:
			index = 0
		case glfw.MouseButtonRight:
			index = 1
		case glfw.MouseButtonMiddle:
			index = 2
		}
		if index >= 0 {
			p.queue = append(p.queue, MouseButtonEvent{Button: index, Down: action == glfw.Press})
		}
	})
	p.window.SetScrollCallback(func(_ *glfw.Window, x, y float64) {
		p.queue = append(p.queue, MouseWheelEvent{X: float32(x), Y: float32(y)})
	})
}

func (p *glfwPlatform) PollEvent() (Event, bool) {
	if len(p.queue) == 0 {
		glfw.PollEvents()
		if len(p.queue) == 0 {
			return nil, false
		}
	}
	ev := p.queue[0]
	p.queue = p.queue[1:]
	return ev, true
}

func glfwMod(m glfw.ModifierKey) Mod {
	var out Mod
	if m&glfw.ModShift != 0 {
		out |= ModShift
	}
	if m&glfw.ModControl != 0 {
		out |= ModCtrl
	}
	if m&glfw.ModAlt != 0 {
		out |= ModAlt
	}
	if m&glfw.ModSuper != 0 {
		out |= ModSuper
	}
	return out
}

var glfwKeys = map[glfw.Key]Key{
	glfw.KeyEscape:       KeyEscape,
	glfw.KeyEnter:        KeyEnter,
	glfw.KeyKPEnter:      KeyEnter,
	glfw.KeyTab:          KeyTab,
	glfw.KeyBackspace:    KeyBackspace,
	glfw.KeyDelete:       KeyDelete,
	glfw.KeyInsert:       KeyInsert,
	glfw.KeySpace:        KeySpace,
	glfw.KeyLeft:         KeyLeft,
	glfw.KeyRight:        KeyRight,
	glfw.KeyUp:           KeyUp,
	glfw.KeyDown:         KeyDown,
	glfw.KeyPageUp:       KeyPageUp,
	glfw.KeyPageDown:     KeyPageDown,
	glfw.KeyHome:         KeyHome,
	glfw.KeyEnd:          KeyEnd,
	glfw.KeyLeftShift:    KeyLeftShift,
	glfw.KeyRightShift:   KeyRightShift,
	glfw.KeyLeftControl:  KeyLeftCtrl,
	glfw.KeyRightControl: KeyRightCtrl,
	glfw.KeyLeftAlt:      KeyLeftAlt,
	glfw.KeyRightAlt:     KeyRightAlt,
	glfw.KeyLeftSuper:    KeyLeftSuper,
	glfw.KeyRightSuper:   KeyRightSuper,
}

func glfwKey(k glfw.Key) Key {
	if out, ok := glfwKeys[k]; ok {
		return out
	}
	switch {
	case k >= glfw.KeyA && k <= glfw.KeyZ:
		return Letter(rune('a' + int(k-glfw.KeyA)))
	case k >= glfw.KeyF1 && k <= glfw.KeyF12:
		return Function(int(k-glfw.KeyF1) + 1)
	}
	return KeyUnknown
}

func (p *glfwPlatform) SwapWindow() {
	p.window.SwapBuffers()
}

func (p *glfwPlatform) SetTitle(title string) {
	p.window.SetTitle(title)
}

func (p *glfwPlatform) Fullscreen() bool {
	return p.window.GetMonitor() != nil
}

func (p *glfwPlatform) SetFullscreen(on bool) error {
	if on == p.Fullscreen() {
		return nil
	}
	if !on {
		p.window.SetMonitor(nil, p.windowedX, p.windowedY, p.windowedW, p.windowedH, glfw.DontCare)
		return nil
	}
	monitor := glfw.GetPrimaryMonitor()
	if monitor == nil {
		return errors.New("no monitor available for fullscreen")
	}
	p.windowedX, p.windowedY = p.window.GetPos()
	p.windowedW, p.windowedH = p.window.GetSize()
	mode := monitor.GetVideoMode()
	p.window.SetMonitor(monitor, 0, 0, mode.Width, mode.Height, mode.RefreshRate)
	return nil
}

// SwapInterval reports the last value set; GLFW has no getter.
func (p *glfwPlatform) SwapInterval() int {
	return p.interval
}

func (p *glfwPlatform) SetSwapInterval(interval int) error {
	glfw.SwapInterval(interval)
	p.interval = interval
	return nil
}

func (p *glfwPlatform) WindowSize() (int, int) {
	return p.window.GetSize()
}

func (p *glfwPlatform) DrawableSize() (int, int) {
	return p.window.GetFramebufferSize()
}

func (p *glfwPlatform) UpdateJoysticks() {
	glfw.PollEvents()
}

func (p *glfwPlatform) NumJoysticks() int {
	n := 0
	for j := glfw.Joystick1; j <= glfw.JoystickLast; j++ {
		if j.Present() {
			n++
		}
	}
	return n
}

// OpenController opens the index-th present joystick that has a gamepad
// mapping.
func (p *glfwPlatform) OpenController(index int) (Controller, error) {
	seen := 0
	for j := glfw.Joystick1; j <= glfw.JoystickLast; j++ {
		if !j.Present() {
			continue
		}
		if seen == index {
			if !j.IsGamepad() {
				return nil, errors.Errorf("joystick %d (%s) has no gamepad mapping", index, j.GetName())
			}
			return glfwController{joy: j}, nil
		}
		seen++
	}
	return nil, errors.Errorf("no joystick at index %d", index)
}

func (p *glfwPlatform) PreserveContext(fn func()) {
	current := glfw.GetCurrentContext()
	fn()
	if current == nil {
		current = p.window
	}
	current.MakeContextCurrent()
}

func (p *glfwPlatform) Profile() Profile {
	return p.profile
}

func (p *glfwPlatform) Info() Info {
	return Info{Name: runtime.GOOS, CPUs: runtime.NumCPU()}
}

func (p *glfwPlatform) Destroy() {
	if p.window != nil {
		p.window.Destroy()
		p.window = nil
	}
	glfw.Terminate()
}

type glfwController struct {
	joy glfw.Joystick
}

func (c glfwController) Name() string {
	return c.joy.GetGamepadName()
}

func (c glfwController) Joystick() Joystick {
	return glfwJoystick{}
}

// Close is a no-op; GLFW joysticks are never opened explicitly.
func (c glfwController) Close() {}

type glfwJoystick struct{}

func (glfwJoystick) Rumble(uint16, uint16, time.Duration) error {
	slog.Debug("rumble requested on glfw backend")
	return ErrRumbleUnsupported
}
