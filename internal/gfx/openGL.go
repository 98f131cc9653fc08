// Package gfx holds the OpenGL objects drawn by the application: the scene
// program and mesh, and the offscreen image the GUI displays.
package gfx

import (
	"context"
	"log/slog"

	"github.com/go-gl/gl/v4.1-core/gl"
)

// LogInfo reports the driver strings once the context is current.
func LogInfo() {
	slog.Info("OpenGL initialized",
		"renderer", gl.GoStr(gl.GetString(gl.RENDERER)),
		"version", gl.GoStr(gl.GetString(gl.VERSION)),
		"vendor", gl.GoStr(gl.GetString(gl.VENDOR)),
		"glsl", gl.GoStr(gl.GetString(gl.SHADING_LANGUAGE_VERSION)))

	if !slog.Default().Enabled(context.Background(), slog.LevelDebug) {
		return
	}
	var n int32
	gl.GetIntegerv(gl.NUM_EXTENSIONS, &n)
	for i := int32(0); i < n; i++ {
		slog.Debug("OpenGL extension", "name", gl.GoStr(gl.GetStringi(gl.EXTENSIONS, uint32(i))))
	}
}

// BindDefault makes the window the draw target again.
func BindDefault() {
	gl.BindFramebuffer(gl.FRAMEBUFFER, 0)
}
