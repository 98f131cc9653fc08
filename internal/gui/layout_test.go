package gui

import (
	"testing"

	"github.com/AllenDang/cimgui-go/imgui"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/TillWege/Carnival/internal/platform"
)

func assertRect(t *testing.T, want, got Rect) {
	t.Helper()
	assert.InDelta(t, want.X, got.X, 1e-3, "x")
	assert.InDelta(t, want.Y, got.Y, 1e-3, "y")
	assert.InDelta(t, want.W, got.W, 1e-3, "w")
	assert.InDelta(t, want.H, got.H, 1e-3, "h")
}

func TestSidebar(t *testing.T) {
	assertRect(t, Rect{10, 10, 426, 700}, Sidebar(Rect{0, 0, 1280, 720}))
	// narrow windows keep the 300px minimum
	assertRect(t, Rect{10, 30, 300, 280}, Sidebar(Rect{0, 20, 500, 300}))
}

func TestDockPlanOrder(t *testing.T) {
	require.Len(t, DockPlan.Splits, 3)
	assert.Equal(t, Split{imgui.DirLeft, LeftPanel}, DockPlan.Splits[0])
	assert.Equal(t, Split{imgui.DirRight, RightPanel}, DockPlan.Splits[1])
	assert.Equal(t, Split{imgui.DirDown, BottomPanel}, DockPlan.Splits[2])
	assert.Equal(t, Viewport, DockPlan.Center)
}

// headless starts an imgui context without a renderer.
func headless(t *testing.T, viewports bool) *imgui.IO {
	t.Helper()
	ctx := imgui.CreateContext()
	t.Cleanup(func() { imgui.DestroyContextV(ctx) })
	io := imgui.CurrentIO()
	io.SetIniFilename("")
	Configure(io, viewports)
	io.SetDisplaySize(imgui.Vec2{X: platform.DefaultWidth, Y: platform.DefaultHeight})
	io.SetDeltaTime(1.0 / 60)
	io.Fonts().GetTextureDataAsRGBA32()
	return io
}

func dockFrame(build bool) (left, center imgui.Vec2) {
	imgui.NewFrame()
	DockSpace(build, false)
	for _, name := range []string{LeftPanel, RightPanel, BottomPanel, Viewport} {
		imgui.Begin(name)
		switch name {
		case LeftPanel:
			left = imgui.WindowSize()
		case Viewport:
			center = imgui.WindowSize()
		}
		imgui.End()
	}
	imgui.Render()
	return left, center
}

func TestDockSpaceSplits(t *testing.T) {
	headless(t, false)

	dockFrame(true)
	var left, center imgui.Vec2
	for i := 0; i < 3; i++ {
		left, center = dockFrame(false)
	}

	// 0.2 of the width, give or take the splitter
	assert.InDelta(t, 0.2*platform.DefaultWidth, left.X, 10)
	// 0.8 * 0.8 of the width remains for the center
	assert.InDelta(t, 0.64*platform.DefaultWidth, center.X, 10)
	assert.Less(t, center.Y, left.Y)
}

func TestConfigureFlags(t *testing.T) {
	io := headless(t, true)
	assert.NotZero(t, io.ConfigFlags()&imgui.ConfigFlagsDockingEnable)
	assert.NotZero(t, io.ConfigFlags()&imgui.ConfigFlagsViewportsEnable)

	c := &Context{io: io}
	assert.True(t, c.Viewports())

	io.SetConfigFlags(0)
	Configure(io, false)
	assert.False(t, c.Viewports())
}

func TestInputKeys(t *testing.T) {
	k, ok := imguiKey(platform.KeyF)
	assert.True(t, ok)
	assert.Equal(t, imgui.KeyF, k)

	k, ok = imguiKey(platform.KeyF11)
	assert.True(t, ok)
	assert.Equal(t, imgui.KeyF11, k)

	k, ok = imguiKey(platform.KeyEscape)
	assert.True(t, ok)
	assert.Equal(t, imgui.KeyEscape, k)

	_, ok = imguiKey(platform.KeyUnknown)
	assert.False(t, ok)
}
