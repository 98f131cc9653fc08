package app

import (
	"fmt"
	"image"
	"log/slog"
	"time"

	"github.com/AllenDang/cimgui-go/imgui"

	"github.com/TillWege/Carnival/internal/config"
	"github.com/TillWege/Carnival/internal/gui"
)

const easterEgg = "Easter egg"

type menuItem struct {
	menu, label string
	action      func(*Application)
}

var menuItems = []menuItem{
	{"File", "Quit", (*Application).stop},
	{"View", "Standard demo", (*Application).toggleDemo},
}

func (a *Application) drawPanels() {
	a.drawMenuBar()

	if a.cfg.Layout == config.LayoutSidebar {
		a.drawSidebar()
	} else {
		a.drawDocked()
	}
	a.state.FirstLayout = false

	if a.state.ShowDemoWindow {
		imgui.ShowDemoWindowV(&a.state.ShowDemoWindow)
	}
}

func (a *Application) drawMenuBar() {
	if !imgui.BeginMainMenuBar() {
		return
	}
	menu, opened := "", false
	for _, item := range menuItems {
		if item.menu != menu {
			if opened {
				imgui.EndMenu()
			}
			menu = item.menu
			opened = imgui.BeginMenu(menu)
		}
		if opened && imgui.MenuItemBool(item.label) {
			item.action(a)
		}
	}
	if opened {
		imgui.EndMenu()
	}
	imgui.EndMainMenuBar()
}

func (a *Application) toggleDemo() {
	a.state.ShowDemoWindow = !a.state.ShowDemoWindow
}

func (a *Application) drawDocked() {
	// in direct mode the scene is behind the empty central node
	gui.DockSpace(a.state.FirstLayout, a.target == nil)

	if a.target != nil {
		a.drawViewport(0)
	}

	imgui.Begin(gui.LeftPanel)
	a.state.LeftPanelWidth = int(imgui.WindowWidth())
	imgui.Text("Render Controls")
	a.drawControls()
	imgui.End()

	imgui.Begin(gui.RightPanel)
	imgui.Text("Right Panel Controls")
	if imgui.Button("Test") {
		a.state.SecondOpen = !a.state.SecondOpen
	}
	imgui.End()

	imgui.Begin(gui.BottomPanel)
	imgui.Text("Bottom Panel Controls")
	a.drawController()
	imgui.End()

	if a.state.SecondOpen {
		imgui.SetNextWindowSizeV(imgui.Vec2{X: 300, Y: 200}, imgui.CondFirstUseEver)
		imgui.BeginV("Second window", &a.state.SecondOpen, 0)
		imgui.Text("Opened from the right panel")
		imgui.End()
	}
}

func (a *Application) drawSidebar() {
	work := gui.WorkArea()
	side := gui.Sidebar(work)
	gui.Place(side, imgui.CondAlways)
	imgui.BeginV(gui.Controls, nil, imgui.WindowFlagsNoResize|imgui.WindowFlagsNoDocking)
	a.drawControls()
	imgui.Dummy(imgui.Vec2{Y: 3})
	a.drawController()
	imgui.End()
	a.state.LeftPanelWidth = int(side.X + side.W)

	if a.target != nil {
		right := side.X + side.W + 10
		gui.Place(gui.Rect{X: right, Y: side.Y, W: work.W - right - 10, H: side.H}, imgui.CondFirstUseEver)
		a.drawViewport(imgui.WindowFlagsNoDocking)
	}
}

// drawViewport shows the offscreen image sized to the panel.
func (a *Application) drawViewport(flags imgui.WindowFlags) {
	imgui.PushStyleVarVec2(imgui.StyleVarWindowPadding, imgui.Vec2{})
	imgui.BeginV(gui.Viewport, nil, flags|imgui.WindowFlagsNoTitleBar|imgui.WindowFlagsNoCollapse|imgui.WindowFlagsNoScrollbar)

	size := imgui.ContentRegionAvail()
	a.measureViewport(int(size.X), int(size.Y))

	w, h := a.target.Size()
	// GL textures are bottom-up
	topLeft := imgui.CursorScreenPos()
	bottomRight := imgui.Vec2{X: topLeft.X + float32(w), Y: topLeft.Y + float32(h)}
	imgui.WindowDrawList().AddImageV(gui.TextureID(a.target.Texture()), topLeft, bottomRight,
		imgui.Vec2{X: 0, Y: 1}, imgui.Vec2{X: 1, Y: 0}, 0xFFFFFFFF)
	imgui.Dummy(imgui.Vec2{X: float32(w), Y: float32(h)})

	imgui.End()
	imgui.PopStyleVar()
}

// measureViewport records the panel's content size. A changed size
// rebuilds the image and redraws the scene into it right away, so the
// image submitted in this frame already has the new size.
func (a *Application) measureViewport(width, height int) {
	if !a.state.MeasureViewport(width, height) {
		return
	}
	a.drawOffscreen()
}

// drawOffscreen rebuilds the target if a resize is queued and draws the
// scene into it.
func (a *Application) drawOffscreen() {
	if a.state.ResizeQueued {
		a.target.Resize(a.state.ViewportWidth, a.state.ViewportHeight)
		a.state.ResizeQueued = false
	}
	a.target.Bind()
	w, h := a.target.Size()
	a.scene.Draw(image.Rect(0, 0, w, h))
	a.target.Unbind()
}

func (a *Application) drawControls() {
	imgui.Dummy(imgui.Vec2{Y: 1})
	gui.TextColored(gui.Heading, "Time")
	imgui.Text(Timestamp(time.Now()))

	imgui.Dummy(imgui.Vec2{Y: 3})
	gui.TextColored(gui.Heading, "Platform")
	imgui.Text(a.info.Name)
	imgui.Text(fmt.Sprintf("CPU cores: %d", a.info.CPUs))
	if a.info.RAMMB > 0 {
		imgui.Text(fmt.Sprintf("RAM: %.2f GB", float32(a.info.RAMMB)/1024))
	}

	imgui.Dummy(imgui.Vec2{Y: 3})
	gui.TextColored(gui.Heading, "Application")
	imgui.Text(fmt.Sprintf("Main window width: %d", a.state.WindowWidth))
	imgui.Text(fmt.Sprintf("Main window height: %d", a.state.WindowHeight))
	if a.target != nil {
		imgui.Text(fmt.Sprintf("Viewport: %dx%d", a.state.ViewportWidth, a.state.ViewportHeight))
	}

	imgui.Dummy(imgui.Vec2{Y: 10})
	imgui.Separator()
	imgui.Dummy(imgui.Vec2{Y: 10})

	if imgui.Button("Counter button") {
		slog.Debug("counter button clicked")
		a.state.Click()
	}
	imgui.SameLine()
	imgui.Text(fmt.Sprintf("counter = %d", a.state.Counter))

	a.drawEasterEgg()

	imgui.Dummy(imgui.Vec2{Y: 15})
	if !a.state.ShowDemoWindow {
		if imgui.Button("Open standard demo") {
			a.state.ShowDemoWindow = true
		}
	}

	imgui.Checkbox("show a custom window", &a.state.ShowAnotherWindow)
	if a.state.ShowAnotherWindow {
		// later launches use the size stored in the settings file
		imgui.SetNextWindowSizeV(imgui.Vec2{X: 400, Y: 350}, imgui.CondFirstUseEver)
		imgui.BeginV("A custom window", &a.state.ShowAnotherWindow, 0)
		imgui.Dummy(imgui.Vec2{Y: 1})
		if imgui.Button("Close") {
			slog.Debug("close button clicked")
			a.state.ShowAnotherWindow = false
		}
		imgui.End()
	}
}

// drawEasterEgg keeps the modal in step with State.EasterEggOpen.
func (a *Application) drawEasterEgg() {
	if a.state.EasterEggOpen && !imgui.IsPopupOpenStr(easterEgg) {
		imgui.OpenPopupStr(easterEgg)
	}
	a.state.EasterEggShown = false
	if !imgui.BeginPopupModalV(easterEgg, nil, imgui.WindowFlagsAlwaysAutoResize) {
		return
	}
	imgui.Text("Ho-ho, you found me!")
	if imgui.Button("Buy Ultimate Orb") {
		a.state.CloseEasterEgg()
	}
	if a.state.EasterEggOpen {
		a.state.EasterEggShown = true
	} else {
		imgui.CloseCurrentPopup()
	}
	imgui.EndPopup()
}

func (a *Application) drawController() {
	if a.input.Controller == nil {
		imgui.Text("Controller: none (J to connect)")
		return
	}
	imgui.Text(fmt.Sprintf("Controller: %s (H rumble, K disconnect)", a.input.Controller.Name()))
}
