package gfx

import (
	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/pkg/errors"

	"github.com/TillWege/Carnival/internal/config"
)

//  X, Y, Z

var shapes = map[string][]float32{
	config.ShapeTriangle: {
		-1, 1, 0,
		1, 1, 0,
		-1, -1, 0,
	},
	config.ShapeQuad: {
		-1, 1, 0,
		1, 1, 0,
		-1, -1, 0,
		1, -1, 0,
	},
}

var primitives = map[string]uint32{
	config.PrimitiveTriangles:     gl.TRIANGLES,
	config.PrimitiveTriangleStrip: gl.TRIANGLE_STRIP,
	config.PrimitiveLineStrip:     gl.LINE_STRIP,
}

// Shape returns a copy of the named vertex list.
func Shape(name string) ([]float32, error) {
	v, ok := shapes[name]
	if !ok {
		return nil, errors.Errorf("unknown shape %q", name)
	}
	return append([]float32(nil), v...), nil
}

// Primitive maps a config name to a GL draw mode.
func Primitive(name string) (uint32, error) {
	mode, ok := primitives[name]
	if !ok {
		return 0, errors.Errorf("unknown primitive %q", name)
	}
	return mode, nil
}

// Mesh is a vertex array with one position-only buffer.
type Mesh struct {
	vao, vbo uint32
	count    int32
	mode     uint32
}

// NewMesh uploads vertices (three floats each) and binds them to attribute 0.
func NewMesh(vertices []float32, mode uint32) *Mesh {
	m := &Mesh{count: int32(len(vertices) / 3), mode: mode}

	gl.GenVertexArrays(1, &m.vao)
	gl.BindVertexArray(m.vao)

	gl.GenBuffers(1, &m.vbo)
	gl.BindBuffer(gl.ARRAY_BUFFER, m.vbo)
	gl.BufferData(gl.ARRAY_BUFFER, len(vertices)*4, gl.Ptr(vertices), gl.STATIC_DRAW)

	gl.EnableVertexAttribArray(0)
	gl.VertexAttribPointer(0, 3, gl.FLOAT, false, 3*4, gl.PtrOffset(0))

	gl.BindVertexArray(0)
	return m
}

func (m *Mesh) Draw() {
	gl.BindVertexArray(m.vao)
	gl.DrawArrays(m.mode, 0, m.count)
	gl.BindVertexArray(0)
}

// Delete releases the buffers. Safe to call more than once.
func (m *Mesh) Delete() {
	if m.vbo != 0 {
		gl.DeleteBuffers(1, &m.vbo)
		m.vbo = 0
	}
	if m.vao != 0 {
		gl.DeleteVertexArrays(1, &m.vao)
		m.vao = 0
	}
}
