package gui

import (
	"github.com/AllenDang/cimgui-go/imgui"

	"github.com/TillWege/Carnival/internal/platform"
)

var keyMap = map[platform.Key]imgui.Key{
	platform.KeyTab:        imgui.KeyTab,
	platform.KeyLeft:       imgui.KeyLeftArrow,
	platform.KeyRight:      imgui.KeyRightArrow,
	platform.KeyUp:         imgui.KeyUpArrow,
	platform.KeyDown:       imgui.KeyDownArrow,
	platform.KeyPageUp:     imgui.KeyPageUp,
	platform.KeyPageDown:   imgui.KeyPageDown,
	platform.KeyHome:       imgui.KeyHome,
	platform.KeyEnd:        imgui.KeyEnd,
	platform.KeyInsert:     imgui.KeyInsert,
	platform.KeyDelete:     imgui.KeyDelete,
	platform.KeyBackspace:  imgui.KeyBackspace,
	platform.KeySpace:      imgui.KeySpace,
	platform.KeyEnter:      imgui.KeyEnter,
	platform.KeyEscape:     imgui.KeyEscape,
	platform.KeyLeftShift:  imgui.KeyLeftShift,
	platform.KeyRightShift: imgui.KeyRightShift,
	platform.KeyLeftCtrl:   imgui.KeyLeftCtrl,
	platform.KeyRightCtrl:  imgui.KeyRightCtrl,
	platform.KeyLeftAlt:    imgui.KeyLeftAlt,
	platform.KeyRightAlt:   imgui.KeyRightAlt,
	platform.KeyLeftSuper:  imgui.KeyLeftSuper,
	platform.KeyRightSuper: imgui.KeyRightSuper,
}

func imguiKey(k platform.Key) (imgui.Key, bool) {
	switch {
	case k >= platform.KeyA && k <= platform.KeyZ:
		return imgui.KeyA + imgui.Key(k-platform.KeyA), true
	case k >= platform.KeyF1 && k <= platform.KeyF12:
		return imgui.KeyF1 + imgui.Key(k-platform.KeyF1), true
	}
	out, ok := keyMap[k]
	return out, ok
}

// input feeds platform events into imgui's input queue. The queue keeps
// presses and releases that land within one frame apart, so no latching is
// needed here.
type input struct {
	io *imgui.IO
}

func newInput(io *imgui.IO) *input {
	return &input{io: io}
}

func (in *input) process(ev platform.Event) {
	switch e := ev.(type) {
	case platform.KeyEvent:
		in.modifiers(e.Mod)
		if key, ok := imguiKey(e.Key); ok {
			in.io.AddKeyEvent(key, e.Down)
		}
	case platform.TextEvent:
		in.io.AddInputCharactersUTF8(e.Text)
	case platform.MouseMoveEvent:
		in.io.AddMousePosEvent(e.X, e.Y)
	case platform.MouseButtonEvent:
		if e.Button < 0 || e.Button > 2 {
			return
		}
		in.io.AddMouseButtonEvent(int32(e.Button), e.Down)
	case platform.MouseWheelEvent:
		in.io.AddMouseWheelEvent(e.X, e.Y)
	}
}

func (in *input) modifiers(mod platform.Mod) {
	in.io.AddKeyEvent(imgui.ModCtrl, mod&platform.ModCtrl != 0)
	in.io.AddKeyEvent(imgui.ModShift, mod&platform.ModShift != 0)
	in.io.AddKeyEvent(imgui.ModAlt, mod&platform.ModAlt != 0)
	in.io.AddKeyEvent(imgui.ModSuper, mod&platform.ModSuper != 0)
}
