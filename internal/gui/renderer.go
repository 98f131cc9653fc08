package gui

import (
	"github.com/AllenDang/cimgui-go/imgui"
	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/pkg/errors"

	"github.com/TillWege/Carnival/internal/gfx"
)

const vertexShader = `
uniform mat4 ProjMtx;

in vec2 Position;
in vec2 UV;
in vec4 Color;

out vec2 Frag_UV;
out vec4 Frag_Color;

void main() {
	Frag_UV = UV;
	Frag_Color = Color;
	gl_Position = ProjMtx * vec4(Position.xy, 0, 1);
}
`

const fragmentShader = `
uniform sampler2D Texture;

in vec2 Frag_UV;
in vec4 Frag_Color;

out vec4 Out_Color;

void main() {
	Out_Color = Frag_Color * texture(Texture, Frag_UV.st);
}
`

// Renderer turns imgui draw data into OpenGL 3 calls.
type Renderer struct {
	program     uint32
	texture     int32
	projection  int32
	position    uint32
	uv          uint32
	color       uint32
	vbo         uint32
	elements    uint32
	fontTexture uint32
}

// NewRenderer compiles the GUI program with the given GLSL header and
// uploads the font atlas of io.
func NewRenderer(io *imgui.IO, glsl string) (*Renderer, error) {
	program, err := gfx.NewProgram(glsl+"\n"+vertexShader, glsl+"\n"+fragmentShader)
	if err != nil {
		return nil, errors.Wrap(err, "failed to build GUI program")
	}
	r := &Renderer{program: program}
	r.texture = gl.GetUniformLocation(program, gl.Str("Texture\x00"))
	r.projection = gl.GetUniformLocation(program, gl.Str("ProjMtx\x00"))
	r.position = uint32(gl.GetAttribLocation(program, gl.Str("Position\x00")))
	r.uv = uint32(gl.GetAttribLocation(program, gl.Str("UV\x00")))
	r.color = uint32(gl.GetAttribLocation(program, gl.Str("Color\x00")))

	gl.GenBuffers(1, &r.vbo)
	gl.GenBuffers(1, &r.elements)

	pixels, width, height, _ := io.Fonts().GetTextureDataAsRGBA32()
	gl.GenTextures(1, &r.fontTexture)
	gl.BindTexture(gl.TEXTURE_2D, r.fontTexture)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MIN_FILTER, gl.LINEAR)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MAG_FILTER, gl.LINEAR)
	gl.PixelStorei(gl.UNPACK_ROW_LENGTH, 0)
	gl.TexImage2D(gl.TEXTURE_2D, 0, gl.RGBA, int32(width), int32(height),
		0, gl.RGBA, gl.UNSIGNED_BYTE, pixels)
	gl.BindTexture(gl.TEXTURE_2D, 0)
	io.Fonts().SetTexID(TextureID(r.fontTexture))
	io.SetBackendFlags(io.BackendFlags() | imgui.BackendFlagsRendererHasVtxOffset)

	return r, nil
}

// Render draws drawData into the window framebuffer. displaySize is in
// window coordinates, framebufferSize in pixels.
func (r *Renderer) Render(displaySize, framebufferSize [2]float32, drawData *imgui.DrawData) {
	displayWidth, displayHeight := displaySize[0], displaySize[1]
	fbWidth, fbHeight := framebufferSize[0], framebufferSize[1]
	if fbWidth <= 0 || fbHeight <= 0 || displayWidth <= 0 || displayHeight <= 0 {
		return
	}
	scale := imgui.Vec2{X: fbWidth / displayWidth, Y: fbHeight / displayHeight}

	var lastProgram, lastTexture, lastArrayBuffer int32
	gl.GetIntegerv(gl.CURRENT_PROGRAM, &lastProgram)
	gl.GetIntegerv(gl.TEXTURE_BINDING_2D, &lastTexture)
	gl.GetIntegerv(gl.ARRAY_BUFFER_BINDING, &lastArrayBuffer)
	var lastViewport, lastScissorBox [4]int32
	gl.GetIntegerv(gl.VIEWPORT, &lastViewport[0])
	gl.GetIntegerv(gl.SCISSOR_BOX, &lastScissorBox[0])
	lastBlend := gl.IsEnabled(gl.BLEND)
	lastCullFace := gl.IsEnabled(gl.CULL_FACE)
	lastDepthTest := gl.IsEnabled(gl.DEPTH_TEST)
	lastScissorTest := gl.IsEnabled(gl.SCISSOR_TEST)

	gl.Enable(gl.BLEND)
	gl.BlendEquation(gl.FUNC_ADD)
	gl.BlendFunc(gl.SRC_ALPHA, gl.ONE_MINUS_SRC_ALPHA)
	gl.Disable(gl.CULL_FACE)
	gl.Disable(gl.DEPTH_TEST)
	gl.Enable(gl.SCISSOR_TEST)
	gl.ActiveTexture(gl.TEXTURE0)

	gl.Viewport(0, 0, int32(fbWidth), int32(fbHeight))
	// the main viewport sits at its screen position when viewports are on
	pos := drawData.DisplayPos()
	projection := mgl32.Ortho(pos.X, pos.X+displayWidth, pos.Y+displayHeight, pos.Y, -1, 1)
	gl.UseProgram(r.program)
	gl.Uniform1i(r.texture, 0)
	gl.UniformMatrix4fv(r.projection, 1, false, &projection[0])

	var vao uint32
	gl.GenVertexArrays(1, &vao)
	gl.BindVertexArray(vao)
	gl.BindBuffer(gl.ARRAY_BUFFER, r.vbo)
	gl.EnableVertexAttribArray(r.position)
	gl.EnableVertexAttribArray(r.uv)
	gl.EnableVertexAttribArray(r.color)
	vertexSize, vertexOffsetPos, vertexOffsetUV, vertexOffsetCol := imgui.VertexBufferLayout()
	gl.VertexAttribPointer(r.position, 2, gl.FLOAT, false, int32(vertexSize), gl.PtrOffset(vertexOffsetPos))
	gl.VertexAttribPointer(r.uv, 2, gl.FLOAT, false, int32(vertexSize), gl.PtrOffset(vertexOffsetUV))
	gl.VertexAttribPointer(r.color, 4, gl.UNSIGNED_BYTE, true, int32(vertexSize), gl.PtrOffset(vertexOffsetCol))

	indexSize := imgui.IndexBufferLayout()
	drawType := uint32(gl.UNSIGNED_SHORT)
	if indexSize == 4 {
		drawType = gl.UNSIGNED_INT
	}

	for _, list := range drawData.CommandLists() {
		vertexBuffer, vertexBufferSize := list.GetVertexBuffer()
		gl.BindBuffer(gl.ARRAY_BUFFER, r.vbo)
		gl.BufferData(gl.ARRAY_BUFFER, int(vertexBufferSize), vertexBuffer, gl.STREAM_DRAW)

		indexBuffer, indexBufferSize := list.GetIndexBuffer()
		gl.BindBuffer(gl.ELEMENT_ARRAY_BUFFER, r.elements)
		gl.BufferData(gl.ELEMENT_ARRAY_BUFFER, int(indexBufferSize), indexBuffer, gl.STREAM_DRAW)

		for _, cmd := range list.Commands() {
			if cmd.HasUserCallback() {
				cmd.CallUserCallback(list)
				continue
			}
			gl.BindTexture(gl.TEXTURE_2D, uint32(cmd.TexID()))
			clip := cmd.ClipRect()
			clip.X, clip.Z = (clip.X-pos.X)*scale.X, (clip.Z-pos.X)*scale.X
			clip.Y, clip.W = (clip.Y-pos.Y)*scale.Y, (clip.W-pos.Y)*scale.Y
			gl.Scissor(int32(clip.X), int32(fbHeight)-int32(clip.W), int32(clip.Z-clip.X), int32(clip.W-clip.Y))
			gl.DrawElementsBaseVertex(gl.TRIANGLES, int32(cmd.ElemCount()), drawType,
				gl.PtrOffset(int(cmd.IdxOffset())*indexSize), int32(cmd.VtxOffset()))
		}
	}
	gl.DeleteVertexArrays(1, &vao)

	gl.UseProgram(uint32(lastProgram))
	gl.BindTexture(gl.TEXTURE_2D, uint32(lastTexture))
	gl.BindBuffer(gl.ARRAY_BUFFER, uint32(lastArrayBuffer))
	restore(gl.BLEND, lastBlend)
	restore(gl.CULL_FACE, lastCullFace)
	restore(gl.DEPTH_TEST, lastDepthTest)
	restore(gl.SCISSOR_TEST, lastScissorTest)
	gl.Viewport(lastViewport[0], lastViewport[1], lastViewport[2], lastViewport[3])
	gl.Scissor(lastScissorBox[0], lastScissorBox[1], lastScissorBox[2], lastScissorBox[3])
}

// TextureID wraps a GL texture name for image widgets and draw lists.
func TextureID(texture uint32) imgui.TextureID {
	return imgui.TextureID(texture)
}

func restore(capability uint32, enabled bool) {
	if enabled {
		gl.Enable(capability)
	} else {
		gl.Disable(capability)
	}
}

// Dispose releases the program, buffers and font texture.
func (r *Renderer) Dispose() {
	if r.vbo != 0 {
		gl.DeleteBuffers(1, &r.vbo)
		r.vbo = 0
	}
	if r.elements != 0 {
		gl.DeleteBuffers(1, &r.elements)
		r.elements = 0
	}
	if r.fontTexture != 0 {
		gl.DeleteTextures(1, &r.fontTexture)
		r.fontTexture = 0
	}
	if r.program != 0 {
		gl.DeleteProgram(r.program)
		r.program = 0
	}
}
