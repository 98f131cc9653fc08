package gui

import "github.com/AllenDang/cimgui-go/imgui"

func rgb(r, g, b int) imgui.Vec4 {
	return imgui.Vec4{X: float32(r) / 255, Y: float32(g) / 255, Z: float32(b) / 255, W: 1}
}

var accent = rgb(163, 73, 164)

// theme is pushed over imgui's dark colors at the start of every frame.
var theme = []struct {
	col   imgui.Col
	color imgui.Vec4
}{
	{imgui.ColWindowBg, rgb(35, 35, 35)},
	{imgui.ColMenuBarBg, rgb(28, 28, 28)},
	{imgui.ColTitleBg, rgb(28, 28, 28)},
	{imgui.ColTitleBgActive, rgb(48, 48, 48)},
	{imgui.ColFrameBg, rgb(55, 55, 55)},
	{imgui.ColFrameBgHovered, rgb(70, 70, 70)},
	{imgui.ColButton, rgb(70, 70, 70)},
	{imgui.ColButtonHovered, accent},
	{imgui.ColButtonActive, rgb(120, 50, 121)},
	{imgui.ColHeader, rgb(70, 70, 70)},
	{imgui.ColHeaderHovered, accent},
	{imgui.ColCheckMark, accent},
	{imgui.ColTab, rgb(45, 45, 45)},
	{imgui.ColTabHovered, accent},
	{imgui.ColDockingPreview, accent},
}

// SetStyle selects imgui's dark theme. The accent colors are pushed per
// frame.
func SetStyle() {
	imgui.StyleColorsDark()
}

func pushTheme() {
	for _, c := range theme {
		imgui.PushStyleColorVec4(c.col, c.color)
	}
}

func popTheme() {
	imgui.PopStyleColorV(int32(len(theme)))
}

// Heading is the magenta used for section labels.
var Heading = imgui.Vec4{X: 1, Y: 0, Z: 1, W: 1}

// TextColored writes text in the given color.
func TextColored(color imgui.Vec4, text string) {
	imgui.TextColored(color, text)
}
