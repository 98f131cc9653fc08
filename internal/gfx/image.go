package gfx

import (
	"log/slog"

	"github.com/go-gl/gl/v4.1-core/gl"
)

// Image is a framebuffer with a color texture and a depth renderbuffer. The
// GUI samples the texture; the scene draws into the framebuffer.
type Image struct {
	framebuffer uint32
	texture     uint32
	depthbuffer uint32
	width       int
	height      int
}

// NewImage allocates an image of the given size.
func NewImage(width, height int) *Image {
	img := &Image{}
	img.setup(width, height)
	return img
}

func (img *Image) setup(width, height int) {
	// zero-sized attachments leave the framebuffer incomplete
	img.width, img.height = width, height
	w, h := int32(max(width, 1)), int32(max(height, 1))

	gl.GenFramebuffers(1, &img.framebuffer)
	gl.BindFramebuffer(gl.FRAMEBUFFER, img.framebuffer)

	gl.GenTextures(1, &img.texture)
	gl.BindTexture(gl.TEXTURE_2D, img.texture)
	gl.TexImage2D(gl.TEXTURE_2D, 0, gl.RGB, w, h, 0, gl.RGB, gl.UNSIGNED_BYTE, nil)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MAG_FILTER, gl.NEAREST)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MIN_FILTER, gl.NEAREST)

	gl.GenRenderbuffers(1, &img.depthbuffer)
	gl.BindRenderbuffer(gl.RENDERBUFFER, img.depthbuffer)
	gl.RenderbufferStorage(gl.RENDERBUFFER, gl.DEPTH_COMPONENT, w, h)
	gl.FramebufferRenderbuffer(gl.FRAMEBUFFER, gl.DEPTH_ATTACHMENT, gl.RENDERBUFFER, img.depthbuffer)

	gl.FramebufferTexture2D(gl.DRAW_FRAMEBUFFER, gl.COLOR_ATTACHMENT0, gl.TEXTURE_2D, img.texture, 0)
	drawBuffers := []uint32{gl.COLOR_ATTACHMENT0}
	gl.DrawBuffers(1, &drawBuffers[0])

	if status := gl.CheckFramebufferStatus(gl.FRAMEBUFFER); status != gl.FRAMEBUFFER_COMPLETE {
		slog.Warn("offscreen framebuffer incomplete", "status", status, "width", width, "height", height)
	}

	gl.BindTexture(gl.TEXTURE_2D, 0)
	gl.BindRenderbuffer(gl.RENDERBUFFER, 0)
	gl.BindFramebuffer(gl.FRAMEBUFFER, 0)
}

func (img *Image) Size() (int, int) {
	return img.width, img.height
}

func (img *Image) Texture() uint32 {
	return img.texture
}

// Resize releases the attachments and allocates new ones at the given size.
func (img *Image) Resize(width, height int) {
	img.Delete()
	img.setup(width, height)
	slog.Debug("offscreen image rebuilt", "width", width, "height", height)
}

// Bind makes the image the draw target.
func (img *Image) Bind() {
	gl.BindFramebuffer(gl.FRAMEBUFFER, img.framebuffer)
}

// Unbind restores the window framebuffer.
func (img *Image) Unbind() {
	BindDefault()
}

// Delete releases the GL objects. Safe to call more than once.
func (img *Image) Delete() {
	if img.texture != 0 {
		gl.DeleteTextures(1, &img.texture)
		img.texture = 0
	}
	if img.depthbuffer != 0 {
		gl.DeleteRenderbuffers(1, &img.depthbuffer)
		img.depthbuffer = 0
	}
	if img.framebuffer != 0 {
		gl.DeleteFramebuffers(1, &img.framebuffer)
		img.framebuffer = 0
	}
}
