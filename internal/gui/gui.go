// Package gui wraps the imgui context: input forwarding, per-frame
// begin/end, the OpenGL renderer, docking and the secondary viewports.
package gui

import (
	"time"

	"github.com/AllenDang/cimgui-go/imgui"

	"github.com/TillWege/Carnival/internal/platform"
)

// Surface is the part of the platform the GUI measures each frame.
type Surface interface {
	WindowSize() (width, height int)
	DrawableSize() (width, height int)
}

type Options struct {
	GLSL string
	// IniFile is where window and dock positions persist; "" disables
	// persistence.
	IniFile   string
	Viewports bool
}

// Context owns the imgui context and its renderer.
type Context struct {
	ctx      *imgui.Context
	io       *imgui.IO
	input    *input
	renderer *Renderer
	surface  Surface
	last     time.Time
}

// New creates the imgui context with docking enabled. A GL context must be
// current.
func New(surface Surface, opts Options) (*Context, error) {
	c := &Context{
		ctx:     imgui.CreateContext(),
		surface: surface,
	}
	c.io = imgui.CurrentIO()
	c.io.SetIniFilename(opts.IniFile)
	Configure(c.io, opts.Viewports)
	c.input = newInput(c.io)
	SetStyle()

	renderer, err := NewRenderer(c.io, opts.GLSL)
	if err != nil {
		imgui.DestroyContextV(c.ctx)
		return nil, err
	}
	c.renderer = renderer
	return c, nil
}

// Configure turns on docking, and multi-viewport support when viewports is
// set.
func Configure(io *imgui.IO, viewports bool) {
	flags := io.ConfigFlags() | imgui.ConfigFlagsDockingEnable | imgui.ConfigFlagsNavEnableKeyboard
	if viewports {
		flags |= imgui.ConfigFlagsViewportsEnable
	}
	io.SetConfigFlags(flags)
}

// ProcessEvent forwards a platform event to imgui.
func (c *Context) ProcessEvent(ev platform.Event) {
	c.input.process(ev)
}

// NewFrame measures the window and starts a GUI frame.
func (c *Context) NewFrame() {
	w, h := c.surface.WindowSize()
	c.io.SetDisplaySize(imgui.Vec2{X: float32(w), Y: float32(h)})
	if fw, fh := c.surface.DrawableSize(); w > 0 && h > 0 {
		c.io.SetDisplayFramebufferScale(imgui.Vec2{X: float32(fw) / float32(w), Y: float32(fh) / float32(h)})
	}

	now := time.Now()
	if dt := now.Sub(c.last); !c.last.IsZero() && dt > 0 {
		c.io.SetDeltaTime(float32(dt.Seconds()))
	}
	c.last = now

	imgui.NewFrame()
	pushTheme()
}

// Render finishes the frame and draws it into the bound framebuffer.
func (c *Context) Render() {
	popTheme()
	imgui.Render()
	w, h := c.surface.WindowSize()
	fw, fh := c.surface.DrawableSize()
	c.renderer.Render(
		[2]float32{float32(w), float32(h)},
		[2]float32{float32(fw), float32(fh)},
		imgui.CurrentDrawData())
}

// Frame runs build between NewFrame and Render.
func (c *Context) Frame(build func()) {
	c.NewFrame()
	build()
	c.Render()
}

// Viewports reports whether panels may be dragged out into platform windows.
func (c *Context) Viewports() bool {
	return c.io.ConfigFlags()&imgui.ConfigFlagsViewportsEnable != 0
}

// RenderPlatformWindows updates and draws the windows outside the main
// viewport. It switches GL contexts; the caller restores its own.
func (c *Context) RenderPlatformWindows() {
	imgui.UpdatePlatformWindows()
	imgui.RenderPlatformWindowsDefault()
}

func (c *Context) Dispose() {
	if c.renderer != nil {
		c.renderer.Dispose()
		c.renderer = nil
	}
	if c.ctx != nil {
		imgui.DestroyContextV(c.ctx)
		c.ctx = nil
	}
}
