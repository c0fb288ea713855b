// Package glw wraps the handful of OpenGL calls needed to build a shader
// program and draw vertex buffers with it.
//
// All GL access goes through a Context so the package itself needs no cgo.
// A Context must only be used from the goroutine that owns the GL context,
// normally the main goroutine locked to its OS thread.
package glw

import (
	"log"
	"os"
)

// Enum is a GL enumerated value.
type Enum uint32

// GL values used by this package. They match the values in the GL headers.
const (
	FALSE Enum = 0
	TRUE  Enum = 1

	TRIANGLES        Enum = 0x0004
	FLOAT            Enum = 0x1406
	COLOR_BUFFER_BIT Enum = 0x4000
	ARRAY_BUFFER     Enum = 0x8892
	STATIC_DRAW      Enum = 0x88E4
	DYNAMIC_DRAW     Enum = 0x88E8
	FRAGMENT_SHADER  Enum = 0x8B30
	VERTEX_SHADER    Enum = 0x8B31
	COMPILE_STATUS   Enum = 0x8B81
	LINK_STATUS      Enum = 0x8B82
)

// Context is the subset of GL used by glw. Object names are plain uint32
// values as returned by the driver; zero is never a valid name.
type Context interface {
	CreateShader(typ Enum) uint32
	ShaderSource(shader uint32, src string)
	CompileShader(shader uint32)
	GetShaderi(shader uint32, pname Enum) int32
	GetShaderInfoLog(shader uint32) string
	DeleteShader(shader uint32)

	CreateProgram() uint32
	AttachShader(program, shader uint32)
	LinkProgram(program uint32)
	GetProgrami(program uint32, pname Enum) int32
	GetProgramInfoLog(program uint32) string
	UseProgram(program uint32)
	DeleteProgram(program uint32)

	// GetAttribLocation returns -1 if name is not an active attribute.
	GetAttribLocation(program uint32, name string) int32

	CreateBuffer() uint32
	BindBuffer(target Enum, buffer uint32)
	BufferData(target Enum, src []byte, usage Enum)
	BufferSubData(target Enum, offset int, src []byte)
	DeleteBuffer(buffer uint32)

	CreateVertexArray() uint32
	BindVertexArray(array uint32)
	DeleteVertexArray(array uint32)

	EnableVertexAttribArray(index uint32)
	DisableVertexAttribArray(index uint32)
	VertexAttribPointer(index uint32, size int32, typ Enum, normalized bool, stride, offset int)
	DrawArrays(mode Enum, first, count int)

	ClearColor(r, g, b, a float32)
	Clear(mask Enum)
	Viewport(x, y, width, height int)
}

var (
	// InfoLog receives informational lines such as loaded sources.
	InfoLog = log.New(os.Stdout, "glw: ", 0)

	// ErrorLog receives diagnostics for failed builds.
	ErrorLog = log.New(os.Stderr, "glw: ", 0)
)
