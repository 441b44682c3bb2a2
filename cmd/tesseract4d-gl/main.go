package main

import (
	"fmt"
	"log"
	"os"
	"runtime"
	"strings"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/glfw/v3.3/glfw"
	"github.com/go-gl/mathgl/mgl32"

	"github.com/lukaszgryglicki/tesseract4d/internal/tesseract4d"
)

const (
	width  = 800
	height = 600
	title  = "Tesseract 4D (OpenGL)"
	objID  = "tesseract"
)

var (
	vertexShaderSource = `
		#version 410
		in vec3 vp;
		uniform mat4 mvp;
		void main() {
			gl_Position = mvp * vec4(vp, 1.0);
			gl_PointSize = 6.0;
		}
	` + "\x00"

	fragmentShaderSource = `
		#version 410
		uniform vec4 colour;
		out vec4 frag_colour;
		void main() {
			frag_colour = colour;
		}
	` + "\x00"
)

func main() {
	runtime.LockOSThread()
	tesseract4d.Debug = os.Getenv("DEBUG") != ""

	reg := tesseract4d.NewRegistry()
	mesh := tesseract4d.NewMesh(objID)
	store, err := reg.Register(objID, mesh)
	if err != nil {
		log.Fatalln("failed to create tesseract:", err)
	}

	if err := glfw.Init(); err != nil {
		log.Fatalln("failed to initialize glfw:", err)
	}
	defer glfw.Terminate()

	glfw.WindowHint(glfw.Resizable, glfw.False)
	glfw.WindowHint(glfw.ContextVersionMajor, 4)
	glfw.WindowHint(glfw.ContextVersionMinor, 1)
	glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCoreProfile)
	glfw.WindowHint(glfw.OpenGLForwardCompatible, glfw.True)

	window, err := glfw.CreateWindow(width, height, title, nil, nil)
	if err != nil {
		panic(err)
	}
	window.MakeContextCurrent()

	if err := gl.Init(); err != nil {
		panic(err)
	}
	fmt.Println("OpenGL version", gl.GoStr(gl.GetString(gl.VERSION)))
	fmt.Print(tesseract4d.HelpText())

	window.SetKeyCallback(func(w *glfw.Window, key glfw.Key, scancode int, action glfw.Action, mods glfw.ModifierKey) {
		if action != glfw.Press {
			return
		}
		switch key {
		case glfw.KeyEscape:
			w.SetShouldClose(true)
		case glfw.Key0:
			if err := store.Reset(); err != nil {
				log.Println("reset:", err)
			}
		}
	})

	program, err := newProgram(vertexShaderSource, fragmentShaderSource)
	if err != nil {
		panic(err)
	}
	gl.UseProgram(program)

	mvpUniform := gl.GetUniformLocation(program, gl.Str("mvp\x00"))
	colourUniform := gl.GetUniformLocation(program, gl.Str("colour\x00"))

	// Edge indices never change; only the vertex buffer is refilled.
	edgeIndices := make([]uint32, 0, 2*len(tesseract4d.Edges))
	for _, e := range tesseract4d.Edges {
		edgeIndices = append(edgeIndices, uint32(e[0]), uint32(e[1]))
	}
	vertices := make([]float32, 3*tesseract4d.VertexCount)

	var vao uint32
	gl.GenVertexArrays(1, &vao)
	gl.BindVertexArray(vao)

	var vbo uint32
	gl.GenBuffers(1, &vbo)
	gl.BindBuffer(gl.ARRAY_BUFFER, vbo)
	gl.BufferData(gl.ARRAY_BUFFER, len(vertices)*4, gl.Ptr(vertices), gl.DYNAMIC_DRAW)

	var ebo uint32
	gl.GenBuffers(1, &ebo)
	gl.BindBuffer(gl.ELEMENT_ARRAY_BUFFER, ebo)
	gl.BufferData(gl.ELEMENT_ARRAY_BUFFER, len(edgeIndices)*4, gl.Ptr(edgeIndices), gl.STATIC_DRAW)

	vertAttrib := uint32(gl.GetAttribLocation(program, gl.Str("vp\x00")))
	gl.EnableVertexAttribArray(vertAttrib)
	gl.VertexAttribPointer(vertAttrib, 3, gl.FLOAT, false, 0, gl.PtrOffset(0))

	gl.Enable(gl.DEPTH_TEST)
	gl.Enable(gl.PROGRAM_POINT_SIZE)
	gl.DepthFunc(gl.LESS)
	gl.ClearColor(0.06, 0.06, 0.1, 1.0)

	projection := mgl32.Perspective(mgl32.DegToRad(45.0), float32(width)/float32(height), 0.1, 100.0)
	camera := mgl32.LookAtV(mgl32.Vec3{6, 4, 6}, mgl32.Vec3{0, 0, 0}, mgl32.Vec3{0, 1, 0})

	var uploaded uint64
	angle := 0.0
	lastFrameTime := glfw.GetTime()

	for !window.ShouldClose() {
		currentTime := glfw.GetTime()
		deltaTime := currentTime - lastFrameTime
		lastFrameTime = currentTime

		if _, err := tesseract4d.HandleKeys(store, func(r rune) bool {
			return window.GetKey(glfw.Key(r)) == glfw.Press
		}); err != nil {
			log.Println("update:", err)
		}

		// Re-upload only when the store pushed new geometry.
		if v := mesh.Version(); v != uploaded {
			snap := mesh.Snapshot()
			for i, p := range snap.Vertices {
				vertices[3*i+0] = float32(p[0])
				vertices[3*i+1] = float32(p[1])
				vertices[3*i+2] = float32(p[2])
			}
			gl.BindBuffer(gl.ARRAY_BUFFER, vbo)
			gl.BufferSubData(gl.ARRAY_BUFFER, 0, len(vertices)*4, gl.Ptr(vertices))
			uploaded = snap.Version
			p := store.Params()
			window.SetTitle(fmt.Sprintf("%s | d=%.2f shift=%.2f xw=%.2f yw=%.2f zw=%.2f",
				title, p.ViewerDistance, p.WShift, p.Rot.XW, p.Rot.YW, p.Rot.ZW))
		}

		gl.Clear(gl.COLOR_BUFFER_BIT | gl.DEPTH_BUFFER_BIT)
		gl.UseProgram(program)

		// Slow turn of the 3D view so the depth of the projection is visible.
		angle += 0.3 * deltaTime
		model := mgl32.HomogRotate3D(float32(angle), mgl32.Vec3{0, 1, 0})
		mvp := projection.Mul4(camera).Mul4(model)
		gl.UniformMatrix4fv(mvpUniform, 1, false, &mvp[0])

		gl.BindVertexArray(vao)
		gl.Uniform4f(colourUniform, 1, 0.8, 0.25, 1)
		gl.DrawElements(gl.LINES, int32(len(edgeIndices)), gl.UNSIGNED_INT, gl.PtrOffset(0))
		gl.Uniform4f(colourUniform, 1, 1, 1, 1)
		gl.DrawArrays(gl.POINTS, 0, tesseract4d.VertexCount)

		window.SwapBuffers()
		glfw.PollEvents()
	}
}

func newProgram(vertexShaderSource, fragmentShaderSource string) (uint32, error) {
	vertexShader, err := compileShader(vertexShaderSource, gl.VERTEX_SHADER)
	if err != nil {
		return 0, err
	}

	fragmentShader, err := compileShader(fragmentShaderSource, gl.FRAGMENT_SHADER)
	if err != nil {
		return 0, err
	}

	program := gl.CreateProgram()
	gl.AttachShader(program, vertexShader)
	gl.AttachShader(program, fragmentShader)
	gl.LinkProgram(program)

	var status int32
	gl.GetProgramiv(program, gl.LINK_STATUS, &status)
	if status == gl.FALSE {
		var logLength int32
		gl.GetProgramiv(program, gl.INFO_LOG_LENGTH, &logLength)

		log := strings.Repeat("\x00", int(logLength+1))
		gl.GetProgramInfoLog(program, logLength, nil, gl.Str(log))

		return 0, fmt.Errorf("failed to link program: %v", log)
	}

	gl.DeleteShader(vertexShader)
	gl.DeleteShader(fragmentShader)

	return program, nil
}

func compileShader(source string, shaderType uint32) (uint32, error) {
	shader := gl.CreateShader(shaderType)

	csources, free := gl.Strs(source)
	gl.ShaderSource(shader, 1, csources, nil)
	free()
	gl.CompileShader(shader)

	var status int32
	gl.GetShaderiv(shader, gl.COMPILE_STATUS, &status)
	if status == gl.FALSE {
		var logLength int32
		gl.GetShaderiv(shader, gl.INFO_LOG_LENGTH, &logLength)

		log := strings.Repeat("\x00", int(logLength+1))
		gl.GetShaderInfoLog(shader, logLength, nil, gl.Str(log))

		return 0, fmt.Errorf("failed to compile %v: %v", source, log)
	}

	return shader, nil
}
