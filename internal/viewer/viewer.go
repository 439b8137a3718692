// Package viewer displays generated meshes in an interactive OpenGL window:
// drag to orbit, scroll to zoom. It complements the scene-file exporters with
// a quick local preview that needs no external renderer.
package viewer

import (
	"fmt"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/glfw/v3.3/glfw"
	"github.com/go-gl/mathgl/mgl32"

	"procgen/internal/mesh"
)

const (
	winWidth  = 1280
	winHeight = 720
)

const meshVertexShader = `#version 410 core
layout (location = 0) in vec3 aPos;
layout (location = 1) in vec3 aNormal;
layout (location = 2) in vec3 aColor;

out vec3 Normal;
out vec3 Color;
out vec3 FragPos;

uniform mat4 model;
uniform mat4 view;
uniform mat4 projection;

void main() {
    FragPos = vec3(model * vec4(aPos, 1.0));
    Normal = mat3(model) * aNormal;
    Color = aColor;
    gl_Position = projection * view * vec4(FragPos, 1.0);
}
`

const meshFragmentShader = `#version 410 core
in vec3 Normal;
in vec3 Color;
in vec3 FragPos;

out vec4 FragColor;

uniform vec3 lightDir;
uniform vec3 viewPos;

void main() {
    vec3 n = normalize(Normal);
    // Two-sided shading keeps open surfaces readable from inside.
    if (dot(n, viewPos - FragPos) < 0.0) {
        n = -n;
    }
    float ambient = 0.25;
    float diffuse = max(dot(n, normalize(-lightDir)), 0.0) * 0.75;
    FragColor = vec4(Color * (ambient + diffuse), 1.0);
}
`

// Viewer owns the window, the uploaded mesh and the camera.
type Viewer struct {
	window  *glfw.Window
	shader  *Shader
	camera  *OrbitCamera
	overlay *Overlay

	vao, vbo, ebo uint32
	indexCount    int32

	dragging         bool
	lastX, lastY     float64
	wireframe        bool
	wireframeKeyHeld bool
}

// Run opens a window, uploads the mesh and blocks until the window closes.
// The caller must have locked the main OS thread.
func Run(title string, m *mesh.TriangleMesh, hudLines []string) error {
	if err := glfw.Init(); err != nil {
		return fmt.Errorf("failed to initialize glfw: %w", err)
	}
	defer glfw.Terminate()

	glfw.WindowHint(glfw.ContextVersionMajor, 4)
	glfw.WindowHint(glfw.ContextVersionMinor, 1)
	glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCoreProfile)
	glfw.WindowHint(glfw.OpenGLForwardCompatible, glfw.True)
	glfw.WindowHint(glfw.Resizable, glfw.False)

	window, err := glfw.CreateWindow(winWidth, winHeight, title, nil, nil)
	if err != nil {
		return fmt.Errorf("failed to create window: %w", err)
	}
	window.MakeContextCurrent()
	glfw.SwapInterval(1)

	if err := gl.Init(); err != nil {
		return fmt.Errorf("failed to initialize gl: %w", err)
	}

	shader, err := NewShader(meshVertexShader, meshFragmentShader)
	if err != nil {
		return err
	}
	overlay, err := NewOverlay(winWidth, winHeight)
	if err != nil {
		return err
	}
	overlay.SetLines(hudLines)

	min, max := m.Bounds()
	center := min.Add(max).Mul(0.5)
	distance := max.Sub(min).Len() * 1.2
	if distance < 1 {
		distance = 1
	}

	v := &Viewer{
		window:  window,
		shader:  shader,
		camera:  NewOrbitCamera(center, distance, winWidth, winHeight),
		overlay: overlay,
	}
	v.upload(m)
	v.installCallbacks()

	gl.Enable(gl.DEPTH_TEST)
	gl.ClearColor(0.05, 0.05, 0.08, 1.0)

	for !window.ShouldClose() {
		v.handleKeys()
		v.drawFrame()
		window.SwapBuffers()
		glfw.PollEvents()
	}
	return nil
}

// upload moves the interleaved mesh data into GPU buffers.
func (v *Viewer) upload(m *mesh.TriangleMesh) {
	data := m.Interleave()
	v.indexCount = int32(len(m.Indices))

	gl.GenVertexArrays(1, &v.vao)
	gl.GenBuffers(1, &v.vbo)
	gl.GenBuffers(1, &v.ebo)

	gl.BindVertexArray(v.vao)
	gl.BindBuffer(gl.ARRAY_BUFFER, v.vbo)
	gl.BufferData(gl.ARRAY_BUFFER, len(data)*4, gl.Ptr(data), gl.STATIC_DRAW)
	gl.BindBuffer(gl.ELEMENT_ARRAY_BUFFER, v.ebo)
	gl.BufferData(gl.ELEMENT_ARRAY_BUFFER, len(m.Indices)*4, gl.Ptr(m.Indices), gl.STATIC_DRAW)

	stride := int32(mesh.VertexStride * 4)
	gl.EnableVertexAttribArray(0)
	gl.VertexAttribPointer(0, 3, gl.FLOAT, false, stride, gl.PtrOffset(0))
	gl.EnableVertexAttribArray(1)
	gl.VertexAttribPointer(1, 3, gl.FLOAT, false, stride, gl.PtrOffset(3*4))
	gl.EnableVertexAttribArray(2)
	gl.VertexAttribPointer(2, 3, gl.FLOAT, false, stride, gl.PtrOffset(6*4))

	gl.BindVertexArray(0)
}

func (v *Viewer) installCallbacks() {
	v.window.SetMouseButtonCallback(func(_ *glfw.Window, button glfw.MouseButton, action glfw.Action, _ glfw.ModifierKey) {
		if button != glfw.MouseButtonLeft {
			return
		}
		if action == glfw.Press {
			v.dragging = true
			v.lastX, v.lastY = v.window.GetCursorPos()
		} else if action == glfw.Release {
			v.dragging = false
		}
	})

	v.window.SetCursorPosCallback(func(_ *glfw.Window, x, y float64) {
		if !v.dragging {
			return
		}
		const sensitivity = 0.005
		v.camera.Rotate(
			float32(x-v.lastX)*-sensitivity,
			float32(y-v.lastY)*sensitivity,
		)
		v.lastX, v.lastY = x, y
	})

	v.window.SetScrollCallback(func(_ *glfw.Window, _, yoff float64) {
		v.camera.Zoom(float32(yoff))
	})
}

func (v *Viewer) handleKeys() {
	if v.window.GetKey(glfw.KeyEscape) == glfw.Press {
		v.window.SetShouldClose(true)
	}
	// Edge-triggered wireframe toggle.
	held := v.window.GetKey(glfw.KeyW) == glfw.Press
	if held && !v.wireframeKeyHeld {
		v.wireframe = !v.wireframe
	}
	v.wireframeKeyHeld = held
}

func (v *Viewer) drawFrame() {
	gl.Clear(gl.COLOR_BUFFER_BIT | gl.DEPTH_BUFFER_BIT)

	if v.wireframe {
		gl.PolygonMode(gl.FRONT_AND_BACK, gl.LINE)
	} else {
		gl.PolygonMode(gl.FRONT_AND_BACK, gl.FILL)
	}

	v.shader.Use()
	model := mgl32.Ident4()
	view := v.camera.GetViewMatrix()
	projection := v.camera.GetProjectionMatrix()
	v.shader.SetMatrix4("model", &model[0])
	v.shader.SetMatrix4("view", &view[0])
	v.shader.SetMatrix4("projection", &projection[0])
	v.shader.SetVector3("lightDir", -0.4, -0.6, -1.0)
	eye := v.camera.Eye()
	v.shader.SetVector3("viewPos", eye.X(), eye.Y(), eye.Z())

	gl.BindVertexArray(v.vao)
	gl.DrawElements(gl.TRIANGLES, v.indexCount, gl.UNSIGNED_INT, gl.PtrOffset(0))
	gl.BindVertexArray(0)

	gl.PolygonMode(gl.FRONT_AND_BACK, gl.FILL)
	v.overlay.Render(10, 10)
}
