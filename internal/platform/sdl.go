package platform

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/pkg/errors"
	"github.com/veandco/go-sdl2/sdl"
)

type glAttr struct {
	attr  sdl.GLattr
	value int
}

type sdlPlatform struct {
	window  *sdl.Window
	context sdl.GLContext
	profile Profile
}

func openSDL(cfg Config, profile Profile) (_ Platform, err error) {
	if err := sdl.Init(sdl.INIT_VIDEO | sdl.INIT_JOYSTICK | sdl.INIT_GAMECONTROLLER | sdl.INIT_HAPTIC); err != nil {
		return nil, errors.Wrap(err, "failed to initialize SDL")
	}
	p := &sdlPlatform{profile: profile}
	defer func() {
		if err != nil {
			p.Destroy()
		}
	}()

	var compiled, linked sdl.Version
	sdl.VERSION(&compiled)
	sdl.GetVersion(&linked)
	slog.Info("SDL initialized",
		"compiled", fmtVersion(compiled.Major, compiled.Minor, compiled.Patch),
		"linked", fmtVersion(linked.Major, linked.Minor, linked.Patch))

	contextFlags := 0
	if profile.ForwardCompatible {
		contextFlags = sdl.GL_CONTEXT_FORWARD_COMPATIBLE_FLAG
	}
	attrs := []glAttr{
		{sdl.GL_DOUBLEBUFFER, 1},
		{sdl.GL_DEPTH_SIZE, 24},
		{sdl.GL_STENCIL_SIZE, 8},
		{sdl.GL_CONTEXT_PROFILE_MASK, sdl.GL_CONTEXT_PROFILE_CORE},
		{sdl.GL_CONTEXT_FLAGS, contextFlags},
		{sdl.GL_CONTEXT_MAJOR_VERSION, profile.Major},
		{sdl.GL_CONTEXT_MINOR_VERSION, profile.Minor},
	}
	if cfg.MSAA {
		// only honoured before the context exists
		attrs = append(attrs,
			glAttr{sdl.GL_MULTISAMPLEBUFFERS, 1},
			glAttr{sdl.GL_MULTISAMPLESAMPLES, 16})
	}
	for _, a := range attrs {
		if err := sdl.GLSetAttribute(a.attr, a.value); err != nil {
			return nil, errors.Wrap(err, "failed to set GL attribute")
		}
	}

	p.window, err = sdl.CreateWindow(cfg.Title,
		sdl.WINDOWPOS_CENTERED, sdl.WINDOWPOS_CENTERED,
		DefaultWidth, DefaultHeight,
		sdl.WINDOW_OPENGL|sdl.WINDOW_RESIZABLE|sdl.WINDOW_ALLOW_HIGHDPI)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create window")
	}
	p.window.SetMinimumSize(MinWidth, MinHeight)

	p.context, err = p.window.GLCreateContext()
	if err != nil {
		return nil, errors.Wrap(err, "failed to create a GL context")
	}
	if err = p.window.GLMakeCurrent(p.context); err != nil {
		return nil, errors.Wrap(err, "failed to make GL context current")
	}

	interval := 0
	if cfg.VSync {
		interval = 1
	}
	if err := sdl.GLSetSwapInterval(interval); err != nil {
		slog.Warn("failed to set swap interval", "interval", interval, "error", err)
	}

	if err = gl.InitWithProcAddrFunc(sdl.GLGetProcAddress); err != nil {
		return nil, errors.Wrap(err, "couldn't load GL entry points")
	}
	if cfg.MSAA {
		gl.Enable(gl.MULTISAMPLE)
	}
	sdl.StartTextInput()
	return p, nil
}

func fmtVersion(major, minor, patch uint8) string {
	return fmt.Sprintf("%d.%d.%d", major, minor, patch)
}

func (p *sdlPlatform) PollEvent() (Event, bool) {
	for {
		ev := sdl.PollEvent()
		if ev == nil {
			return nil, false
		}
		if out := translateSDL(ev); out != nil {
			return out, true
		}
	}
}

func translateSDL(ev sdl.Event) Event {
	switch e := ev.(type) {
	case *sdl.QuitEvent:
		return QuitEvent{}
	case *sdl.WindowEvent:
		if e.Event == sdl.WINDOWEVENT_RESIZED {
			return ResizeEvent{Width: int(e.Data1), Height: int(e.Data2)}
		}
	case *sdl.KeyboardEvent:
		return KeyEvent{
			Key:    sdlKey(e.Keysym.Sym),
			Mod:    sdlMod(e.Keysym.Mod),
			Down:   e.Type == sdl.KEYDOWN,
			Repeat: e.Repeat != 0,
		}
	case *sdl.TextInputEvent:
		return TextEvent{Text: e.GetText()}
	case *sdl.MouseMotionEvent:
		return MouseMoveEvent{X: float32(e.X), Y: float32(e.Y)}
	case *sdl.MouseButtonEvent:
		button := -1
		switch e.Button {
		case sdl.BUTTON_LEFT:
			button = 0
		case sdl.BUTTON_RIGHT:
			button = 1
		case sdl.BUTTON_MIDDLE:
			button = 2
		}
		if button < 0 {
			return nil
		}
		return MouseButtonEvent{Button: button, Down: e.State == sdl.PRESSED}
	case *sdl.MouseWheelEvent:
		return MouseWheelEvent{X: float32(e.X), Y: float32(e.Y)}
	}
	return nil
}

func sdlMod(m uint16) Mod {
	var out Mod
	bits := uint32(m)
	if bits&uint32(sdl.KMOD_SHIFT) != 0 {
		out |= ModShift
	}
	if bits&uint32(sdl.KMOD_CTRL) != 0 {
		out |= ModCtrl
	}
	if bits&uint32(sdl.KMOD_ALT) != 0 {
		out |= ModAlt
	}
	if bits&uint32(sdl.KMOD_GUI) != 0 {
		out |= ModSuper
	}
	return out
}

var sdlKeys = map[sdl.Keycode]Key{
	sdl.K_ESCAPE:    KeyEscape,
	sdl.K_RETURN:    KeyEnter,
	sdl.K_KP_ENTER:  KeyEnter,
	sdl.K_TAB:       KeyTab,
	sdl.K_BACKSPACE: KeyBackspace,
	sdl.K_DELETE:    KeyDelete,
	sdl.K_INSERT:    KeyInsert,
	sdl.K_SPACE:     KeySpace,
	sdl.K_LEFT:      KeyLeft,
	sdl.K_RIGHT:     KeyRight,
	sdl.K_UP:        KeyUp,
	sdl.K_DOWN:      KeyDown,
	sdl.K_PAGEUP:    KeyPageUp,
	sdl.K_PAGEDOWN:  KeyPageDown,
	sdl.K_HOME:      KeyHome,
	sdl.K_END:       KeyEnd,
	sdl.K_LSHIFT:    KeyLeftShift,
	sdl.K_RSHIFT:    KeyRightShift,
	sdl.K_LCTRL:     KeyLeftCtrl,
	sdl.K_RCTRL:     KeyRightCtrl,
	sdl.K_LALT:      KeyLeftAlt,
	sdl.K_RALT:      KeyRightAlt,
	sdl.K_LGUI:      KeyLeftSuper,
	sdl.K_RGUI:      KeyRightSuper,
	sdl.K_F1:        KeyF1,
	sdl.K_F2:        KeyF2,
	sdl.K_F3:        KeyF3,
	sdl.K_F4:        KeyF4,
	sdl.K_F5:        KeyF5,
	sdl.K_F6:        KeyF6,
	sdl.K_F7:        KeyF7,
	sdl.K_F8:        KeyF8,
	sdl.K_F9:        KeyF9,
	sdl.K_F10:       KeyF10,
	sdl.K_F11:       KeyF11,
	sdl.K_F12:       KeyF12,
}

func sdlKey(sym sdl.Keycode) Key {
	if k, ok := sdlKeys[sym]; ok {
		return k
	}
	// SDL letter keycodes are their lowercase ASCII value
	if sym >= 'a' && sym <= 'z' {
		return Letter(rune(sym))
	}
	return KeyUnknown
}

func (p *sdlPlatform) SwapWindow() {
	p.window.GLSwap()
}

func (p *sdlPlatform) SetTitle(title string) {
	p.window.SetTitle(title)
}

func (p *sdlPlatform) Fullscreen() bool {
	return p.window.GetFlags()&sdl.WINDOW_FULLSCREEN_DESKTOP != 0
}

func (p *sdlPlatform) SetFullscreen(on bool) error {
	var flags uint32
	if on {
		flags = sdl.WINDOW_FULLSCREEN_DESKTOP
	}
	return p.window.SetFullscreen(flags)
}

func (p *sdlPlatform) SwapInterval() int {
	interval, err := sdl.GLGetSwapInterval()
	if err != nil {
		slog.Warn("failed to query swap interval", "error", err)
	}
	return interval
}

func (p *sdlPlatform) SetSwapInterval(interval int) error {
	return sdl.GLSetSwapInterval(interval)
}

func (p *sdlPlatform) WindowSize() (int, int) {
	w, h := p.window.GetSize()
	return int(w), int(h)
}

func (p *sdlPlatform) DrawableSize() (int, int) {
	w, h := p.window.GLGetDrawableSize()
	return int(w), int(h)
}

func (p *sdlPlatform) UpdateJoysticks() {
	sdl.JoystickUpdate()
}

func (p *sdlPlatform) NumJoysticks() int {
	return sdl.NumJoysticks()
}

func (p *sdlPlatform) OpenController(index int) (Controller, error) {
	gc := sdl.GameControllerOpen(index)
	if gc == nil {
		if err := sdl.GetError(); err != nil {
			return nil, errors.Wrapf(err, "failed to open controller %d", index)
		}
		return nil, errors.Errorf("failed to open controller %d", index)
	}
	return &sdlController{gc: gc}, nil
}

func (p *sdlPlatform) PreserveContext(fn func()) {
	window, werr := sdl.GLGetCurrentWindow()
	context, cerr := sdl.GLGetCurrentContext()
	fn()
	if werr != nil || cerr != nil {
		window, context = p.window, p.context
	}
	if err := window.GLMakeCurrent(context); err != nil {
		slog.Error("failed to restore GL context", "error", err)
	}
}

func (p *sdlPlatform) Profile() Profile {
	return p.profile
}

func (p *sdlPlatform) Info() Info {
	return Info{
		Name:  sdl.GetPlatform(),
		CPUs:  sdl.GetCPUCount(),
		RAMMB: sdl.GetSystemRAM(),
	}
}

func (p *sdlPlatform) Destroy() {
	if p.context != nil {
		sdl.GLDeleteContext(p.context)
		p.context = nil
	}
	if p.window != nil {
		if err := p.window.Destroy(); err != nil {
			slog.Warn("failed to destroy window", "error", err)
		}
		p.window = nil
	}
	sdl.Quit()
}

type sdlController struct {
	gc *sdl.GameController
}

func (c *sdlController) Name() string {
	return c.gc.Name()
}

func (c *sdlController) Joystick() Joystick {
	joy := c.gc.Joystick()
	if joy == nil {
		return nil
	}
	return sdlJoystick{joy: joy}
}

func (c *sdlController) Close() {
	c.gc.Close()
}

type sdlJoystick struct {
	joy *sdl.Joystick
}

func (j sdlJoystick) Rumble(low, high uint16, d time.Duration) error {
	return j.joy.Rumble(low, high, uint32(d/time.Millisecond))
}
