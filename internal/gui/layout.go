package gui

import "github.com/AllenDang/cimgui-go/imgui"

// Panel window names.
const (
	LeftPanel   = "Left Panel"
	RightPanel  = "Right Panel"
	BottomPanel = "Bottom Panel"
	Viewport    = "Viewport"
	Controls    = "Controls"
)

// DockRatio is the share each side panel takes of the node it is split off.
const DockRatio = 0.2

// Split is one dock-builder step: cut ratio of the remaining node off side
// dir and dock window there.
type Split struct {
	Dir    imgui.Dir
	Window string
}

// DockPlan splits left, right, then down; Center takes what remains.
var DockPlan = struct {
	Splits []Split
	Center string
}{
	Splits: []Split{
		{imgui.DirLeft, LeftPanel},
		{imgui.DirRight, RightPanel},
		{imgui.DirDown, BottomPanel},
	},
	Center: Viewport,
}

// DockSpace covers the main viewport with a dock space. When build is set
// and no layout was restored from the settings file, the panels are docked
// according to DockPlan. passthru lets the scene behind the empty central
// node show through.
func DockSpace(build, passthru bool) imgui.ID {
	flags := imgui.DockNodeFlagsNone
	if passthru {
		flags |= imgui.DockNodeFlagsPassthruCentralNode
	}
	id := imgui.DockSpaceOverViewportV(0, imgui.MainViewport(), flags, nil)
	if build && !restored(id) {
		buildDock(id)
	}
	return id
}

// restored reports whether the settings file already split the node.
func restored(id imgui.ID) bool {
	node := imgui.InternalDockBuilderGetNode(id)
	return node != nil && !node.IsLeafNode()
}

func buildDock(id imgui.ID) {
	rest := id
	for _, s := range DockPlan.Splits {
		var at imgui.ID
		imgui.InternalDockBuilderSplitNode(rest, s.Dir, DockRatio, &at, &rest)
		imgui.InternalDockBuilderDockWindow(s.Window, at)
	}
	imgui.InternalDockBuilderDockWindow(DockPlan.Center, rest)
	imgui.InternalDockBuilderFinish(id)
}

type Rect struct {
	X, Y, W, H float32
}

// Sidebar is the single controls window: a 10px margin, a third of the
// width but at least 300px, full height.
func Sidebar(work Rect) Rect {
	width := int(work.W) / 3
	if width < 300 {
		width = 300
	}
	return Rect{X: work.X + 10, Y: work.Y + 10, W: float32(width), H: work.H - 20}
}

// WorkArea is the main viewport minus the menu bar.
func WorkArea() Rect {
	vp := imgui.MainViewport()
	pos, size := vp.WorkPos(), vp.WorkSize()
	return Rect{X: pos.X, Y: pos.Y, W: size.X, H: size.Y}
}

// Place sets the position and size of the next window.
func Place(r Rect, cond imgui.Cond) {
	imgui.SetNextWindowPosV(imgui.Vec2{X: r.X, Y: r.Y}, cond, imgui.Vec2{})
	imgui.SetNextWindowSizeV(imgui.Vec2{X: r.W, Y: r.H}, cond)
}
