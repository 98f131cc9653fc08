package gfx

import (
	"image"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/mathgl/mgl32"
)

// Scene is the program and mesh drawn behind (or inside) the GUI.
type Scene struct {
	program   uint32
	mesh      *Mesh
	transform int32
	clear     mgl32.Vec4
}

// NewScene takes ownership of program and mesh.
func NewScene(program uint32, mesh *Mesh, clear mgl32.Vec4) *Scene {
	s := &Scene{
		program: program,
		mesh:    mesh,
		clear:   clear,
	}
	s.transform = gl.GetUniformLocation(program, gl.Str("transform\x00"))
	return s
}

// Draw clears the bound framebuffer and draws the mesh into viewport.
func (s *Scene) Draw(viewport image.Rectangle) {
	gl.Viewport(int32(viewport.Min.X), int32(viewport.Min.Y), int32(viewport.Dx()), int32(viewport.Dy()))
	gl.ClearColor(s.clear[0], s.clear[1], s.clear[2], s.clear[3])
	gl.Clear(gl.COLOR_BUFFER_BIT | gl.DEPTH_BUFFER_BIT)

	gl.UseProgram(s.program)
	if s.transform >= 0 {
		m := Transform(viewport.Dx(), viewport.Dy())
		gl.UniformMatrix4fv(s.transform, 1, false, &m[0])
	}
	s.mesh.Draw()
	gl.UseProgram(0)
}

// Transform keeps a unit shape square and slightly inset in a viewport of
// the given size.
func Transform(width, height int) mgl32.Mat4 {
	const inset = 0.8
	if width <= 0 || height <= 0 {
		return mgl32.Scale3D(inset, inset, 1)
	}
	aspect := float32(width) / float32(height)
	if aspect > 1 {
		return mgl32.Scale3D(inset/aspect, inset, 1)
	}
	return mgl32.Scale3D(inset, inset*aspect, 1)
}

func (s *Scene) Delete() {
	s.mesh.Delete()
	if s.program != 0 {
		gl.DeleteProgram(s.program)
		s.program = 0
	}
}
