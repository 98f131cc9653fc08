package app

import (
	"log/slog"
	"os"

	"github.com/go-gl/mathgl/mgl32"

	"github.com/TillWege/Carnival/internal/config"
	"github.com/TillWege/Carnival/internal/gfx"
	"github.com/TillWege/Carnival/internal/gui"
	"github.com/TillWege/Carnival/internal/platform"
)

// Bootstrap opens the window and builds the GUI and GL objects described by
// cfg. On failure everything created so far is released.
func Bootstrap(cfg config.Config) (_ *Application, err error) {
	vertices, err := gfx.Shape(cfg.Shape)
	if err != nil {
		return nil, err
	}
	mode, err := gfx.Primitive(cfg.Primitive)
	if err != nil {
		return nil, err
	}

	plat, err := platform.Open(platform.Config{
		Backend: cfg.Backend,
		Title:   cfg.Title,
		VSync:   cfg.VSync,
		MSAA:    cfg.MSAA,
	})
	if err != nil {
		return nil, err
	}
	release := []func(){plat.Destroy}
	defer func() {
		if err == nil {
			return
		}
		for i := len(release) - 1; i >= 0; i-- {
			release[i]()
		}
	}()

	profile := plat.Profile()
	slog.Info("platform ready", "backend", cfg.Backend,
		"gl", [2]int{profile.Major, profile.Minor}, "glsl", profile.GLSL)
	gfx.LogInfo()

	overlay, err := gui.New(plat, gui.Options{
		GLSL:      profile.GLSL,
		IniFile:   cfg.Ini(),
		Viewports: cfg.Viewports,
	})
	if err != nil {
		return nil, err
	}
	release = append(release, overlay.Dispose)

	if wd, err := os.Getwd(); err == nil {
		slog.Info("loading shaders", "dir", wd, "vertex", cfg.Shaders.Vertex, "fragment", cfg.Shaders.Fragment)
	}
	program, err := gfx.LoadProgram(cfg.Shaders.Vertex, cfg.Shaders.Fragment)
	if err != nil {
		return nil, err
	}
	scene := gfx.NewScene(program, gfx.NewMesh(vertices, mode), mgl32.Vec4(cfg.ClearColor))
	release = append(release, scene.Delete)

	var target Target
	if cfg.RenderMode == config.ModeOffscreen {
		target = gfx.NewImage(0, 0)
	}
	return New(cfg, plat, overlay, scene, target), nil
}
