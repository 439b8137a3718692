package viewer

import (
	"image"
	"image/color"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/mathgl/mgl32"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
)

const overlayVertexShader = `#version 410 core
layout (location = 0) in vec4 vertex; // xy position, zw texcoord
out vec2 TexCoords;
uniform mat4 projection;
void main() {
    gl_Position = projection * vec4(vertex.xy, 0.0, 1.0);
    TexCoords = vertex.zw;
}
`

const overlayFragmentShader = `#version 410 core
in vec2 TexCoords;
out vec4 FragColor;
uniform sampler2D text;
void main() {
    FragColor = texture(text, TexCoords);
}
`

// Overlay draws HUD text lines in the window corner. Text is rasterized on
// the CPU with the fixed 7x13 bitmap face and uploaded as a texture, so no
// font asset files are needed.
type Overlay struct {
	shader     *Shader
	projection mgl32.Mat4
	vao, vbo   uint32
	texture    uint32
	texW, texH int
	lines      []string
	dirty      bool
}

// NewOverlay creates the HUD for a window of the given pixel size.
func NewOverlay(width, height int) (*Overlay, error) {
	shader, err := NewShader(overlayVertexShader, overlayFragmentShader)
	if err != nil {
		return nil, err
	}
	o := &Overlay{
		shader:     shader,
		projection: mgl32.Ortho(0, float32(width), float32(height), 0, 0, 1),
	}
	o.initGL()
	return o, nil
}

func (o *Overlay) initGL() {
	gl.GenVertexArrays(1, &o.vao)
	gl.GenBuffers(1, &o.vbo)
	gl.BindVertexArray(o.vao)
	gl.BindBuffer(gl.ARRAY_BUFFER, o.vbo)
	gl.BufferData(gl.ARRAY_BUFFER, 6*4*4, nil, gl.DYNAMIC_DRAW)
	gl.EnableVertexAttribArray(0)
	gl.VertexAttribPointer(0, 4, gl.FLOAT, false, 4*4, gl.PtrOffset(0))
	gl.BindBuffer(gl.ARRAY_BUFFER, 0)
	gl.BindVertexArray(0)

	gl.GenTextures(1, &o.texture)
}

// SetLines replaces the HUD text. The texture is rebuilt lazily on the next
// Render call.
func (o *Overlay) SetLines(lines []string) {
	o.lines = lines
	o.dirty = true
}

func (o *Overlay) rebuild() {
	face := basicfont.Face7x13
	lineH := face.Height + 3

	w := 0
	for _, line := range o.lines {
		if lw := font.MeasureString(face, line).Ceil(); lw > w {
			w = lw
		}
	}
	h := lineH * len(o.lines)
	if w == 0 || h == 0 {
		o.texW, o.texH = 0, 0
		return
	}

	img := image.NewRGBA(image.Rect(0, 0, w, h))
	d := font.Drawer{
		Dst:  img,
		Src:  image.NewUniform(color.RGBA{255, 255, 255, 255}),
		Face: face,
	}
	for i, line := range o.lines {
		d.Dot = fixed.P(0, face.Ascent+i*lineH)
		d.DrawString(line)
	}

	gl.BindTexture(gl.TEXTURE_2D, o.texture)
	gl.PixelStorei(gl.UNPACK_ALIGNMENT, 1)
	gl.TexImage2D(gl.TEXTURE_2D, 0, gl.RGBA, int32(w), int32(h), 0,
		gl.RGBA, gl.UNSIGNED_BYTE, gl.Ptr(img.Pix))
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_S, gl.CLAMP_TO_EDGE)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_T, gl.CLAMP_TO_EDGE)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MIN_FILTER, gl.NEAREST)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MAG_FILTER, gl.NEAREST)

	o.texW, o.texH = w, h
}

// Render draws the HUD at (x, y) in window pixels, top-left anchored.
func (o *Overlay) Render(x, y float32) {
	if o.dirty {
		o.rebuild()
		o.dirty = false
	}
	if o.texW == 0 {
		return
	}

	gl.Disable(gl.DEPTH_TEST)
	gl.Enable(gl.BLEND)
	gl.BlendFunc(gl.SRC_ALPHA, gl.ONE_MINUS_SRC_ALPHA)

	o.shader.Use()
	o.shader.SetMatrix4("projection", &o.projection[0])
	o.shader.SetInt("text", 0)

	gl.ActiveTexture(gl.TEXTURE0)
	gl.BindTexture(gl.TEXTURE_2D, o.texture)
	gl.BindVertexArray(o.vao)
	gl.BindBuffer(gl.ARRAY_BUFFER, o.vbo)

	w, h := float32(o.texW), float32(o.texH)
	verts := []float32{
		x, y + h, 0, 1,
		x, y, 0, 0,
		x + w, y, 1, 0,
		x, y + h, 0, 1,
		x + w, y, 1, 0,
		x + w, y + h, 1, 1,
	}
	gl.BufferSubData(gl.ARRAY_BUFFER, 0, len(verts)*4, gl.Ptr(verts))
	gl.DrawArrays(gl.TRIANGLES, 0, 6)

	gl.Disable(gl.BLEND)
	gl.Enable(gl.DEPTH_TEST)
}
