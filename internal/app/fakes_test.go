package app

import (
	"errors"
	"image"
	"time"

	"github.com/TillWege/Carnival/internal/config"
	"github.com/TillWege/Carnival/internal/platform"
)

type fakePlatform struct {
	events     []platform.Event
	fullscreen bool
	interval   int
	width      int
	height     int
	joysticks  int
	openErr    error
	opened     []*fakeController
	swaps      int
	preserved  int
	destroyed  bool
	calls      []string
}

func newFakePlatform() *fakePlatform {
	return &fakePlatform{interval: 1, width: platform.DefaultWidth, height: platform.DefaultHeight}
}

func (p *fakePlatform) push(evs ...platform.Event) {
	p.events = append(p.events, evs...)
}

func (p *fakePlatform) PollEvent() (platform.Event, bool) {
	if len(p.events) == 0 {
		return nil, false
	}
	ev := p.events[0]
	p.events = p.events[1:]
	return ev, true
}

func (p *fakePlatform) SwapWindow() {
	p.swaps++
	p.calls = append(p.calls, "swap")
}

func (p *fakePlatform) SetTitle(string) {}
func (p *fakePlatform) Fullscreen() bool { return p.fullscreen }

func (p *fakePlatform) SetFullscreen(on bool) error {
	p.fullscreen = on
	return nil
}

func (p *fakePlatform) SwapInterval() int { return p.interval }

func (p *fakePlatform) SetSwapInterval(interval int) error {
	p.interval = interval
	return nil
}

func (p *fakePlatform) WindowSize() (int, int)   { return p.width, p.height }
func (p *fakePlatform) DrawableSize() (int, int) { return p.width, p.height }
func (p *fakePlatform) UpdateJoysticks()         { p.calls = append(p.calls, "update-joysticks") }
func (p *fakePlatform) NumJoysticks() int        { return p.joysticks }

func (p *fakePlatform) OpenController(index int) (platform.Controller, error) {
	if p.openErr != nil {
		return nil, p.openErr
	}
	c := &fakeController{joystick: &fakeJoystick{}}
	p.opened = append(p.opened, c)
	return c, nil
}

func (p *fakePlatform) PreserveContext(fn func()) {
	p.preserved++
	fn()
}

func (p *fakePlatform) Profile() platform.Profile { return platform.Current() }
func (p *fakePlatform) Info() platform.Info       { return platform.Info{Name: "Test", CPUs: 4} }
func (p *fakePlatform) Destroy()                  { p.destroyed = true }

type fakeController struct {
	joystick *fakeJoystick
	closed   bool
}

func (c *fakeController) Name() string { return "pad" }

func (c *fakeController) Joystick() platform.Joystick {
	if c.joystick == nil {
		return nil
	}
	return c.joystick
}

func (c *fakeController) Close() { c.closed = true }

type rumbleCall struct {
	low, high uint16
	d         time.Duration
}

type fakeJoystick struct {
	rumbles []rumbleCall
}

func (j *fakeJoystick) Rumble(low, high uint16, d time.Duration) error {
	j.rumbles = append(j.rumbles, rumbleCall{low, high, d})
	return nil
}

type fakeOverlay struct {
	events    []platform.Event
	frames    int
	viewports bool
	rendered  int
	disposed  bool
	// build stands in for the panels, which need a live imgui context
	build func()
}

func (o *fakeOverlay) ProcessEvent(ev platform.Event) { o.events = append(o.events, ev) }

func (o *fakeOverlay) Frame(func()) {
	o.frames++
	if o.build != nil {
		o.build()
	}
}

func (o *fakeOverlay) Viewports() bool        { return o.viewports }
func (o *fakeOverlay) RenderPlatformWindows() { o.rendered++ }
func (o *fakeOverlay) Dispose()               { o.disposed = true }

type fakeScene struct {
	draws   []image.Rectangle
	deleted bool
}

func (s *fakeScene) Draw(viewport image.Rectangle) { s.draws = append(s.draws, viewport) }
func (s *fakeScene) Delete()                       { s.deleted = true }

type fakeTarget struct {
	width, height int
	resizes       int
	bound         bool
	// size of the image when the GUI last sampled it
	sampled [2]int
	deleted bool
}

func (t *fakeTarget) Size() (int, int) { return t.width, t.height }

func (t *fakeTarget) Texture() uint32 {
	t.sampled = [2]int{t.width, t.height}
	return 7
}

func (t *fakeTarget) Resize(width, height int) {
	t.width, t.height = width, height
	t.resizes++
}

func (t *fakeTarget) Bind()   { t.bound = true }
func (t *fakeTarget) Unbind() { t.bound = false }
func (t *fakeTarget) Delete() { t.deleted = true }

var errNoDevice = errors.New("no device")

type fixture struct {
	app     *Application
	plat    *fakePlatform
	overlay *fakeOverlay
	scene   *fakeScene
	target  *fakeTarget
}

func newFixture(mode string) *fixture {
	cfg := config.Default()
	cfg.RenderMode = mode
	f := &fixture{
		plat:    newFakePlatform(),
		overlay: &fakeOverlay{},
		scene:   &fakeScene{},
	}
	if mode == config.ModeOffscreen {
		f.target = &fakeTarget{}
		f.app = New(cfg, f.plat, f.overlay, f.scene, f.target)
	} else {
		f.app = New(cfg, f.plat, f.overlay, f.scene, nil)
	}
	return f
}
