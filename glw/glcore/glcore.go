// Package glcore implements glw.Context on an OpenGL 3.3 core profile
// context using github.com/go-gl/gl.
package glcore

import (
	"fmt"
	"strings"

	"dasa.cc/triangle/glw"
	"github.com/go-gl/gl/v3.3-core/gl"
)

// Init loads GL function pointers for the current context and returns
// the driver's version string. It must be called after a context is made
// current and before any Context method.
func Init() (version string, err error) {
	if err := gl.Init(); err != nil {
		return "", fmt.Errorf("gl.Init failed: %w", err)
	}
	return gl.GoStr(gl.GetString(gl.VERSION)), nil
}

// Context is a glw.Context for the GL context current on the calling thread.
type Context struct{}

var _ glw.Context = Context{}

func (Context) CreateShader(typ glw.Enum) uint32 { return gl.CreateShader(uint32(typ)) }

func (Context) ShaderSource(shader uint32, src string) {
	csrc, free := gl.Strs(src + "\x00")
	gl.ShaderSource(shader, 1, csrc, nil)
	free()
}

func (Context) CompileShader(shader uint32) { gl.CompileShader(shader) }

func (Context) GetShaderi(shader uint32, pname glw.Enum) int32 {
	var v int32
	gl.GetShaderiv(shader, uint32(pname), &v)
	return v
}

func (Context) GetShaderInfoLog(shader uint32) string {
	var n int32
	gl.GetShaderiv(shader, gl.INFO_LOG_LENGTH, &n)
	if n == 0 {
		return ""
	}
	msg := strings.Repeat("\x00", int(n+1))
	gl.GetShaderInfoLog(shader, n, nil, gl.Str(msg))
	return strings.TrimRight(msg, "\x00")
}

func (Context) DeleteShader(shader uint32) { gl.DeleteShader(shader) }

func (Context) CreateProgram() uint32               { return gl.CreateProgram() }
func (Context) AttachShader(program, shader uint32) { gl.AttachShader(program, shader) }
func (Context) LinkProgram(program uint32)          { gl.LinkProgram(program) }
func (Context) UseProgram(program uint32)           { gl.UseProgram(program) }
func (Context) DeleteProgram(program uint32)        { gl.DeleteProgram(program) }

func (Context) GetProgrami(program uint32, pname glw.Enum) int32 {
	var v int32
	gl.GetProgramiv(program, uint32(pname), &v)
	return v
}

func (Context) GetProgramInfoLog(program uint32) string {
	var n int32
	gl.GetProgramiv(program, gl.INFO_LOG_LENGTH, &n)
	if n == 0 {
		return ""
	}
	msg := strings.Repeat("\x00", int(n+1))
	gl.GetProgramInfoLog(program, n, nil, gl.Str(msg))
	return strings.TrimRight(msg, "\x00")
}

func (Context) GetAttribLocation(program uint32, name string) int32 {
	return gl.GetAttribLocation(program, gl.Str(name+"\x00"))
}

func (Context) CreateBuffer() uint32 {
	var b uint32
	gl.GenBuffers(1, &b)
	return b
}

func (Context) BindBuffer(target glw.Enum, buffer uint32) { gl.BindBuffer(uint32(target), buffer) }

func (Context) BufferData(target glw.Enum, src []byte, usage glw.Enum) {
	if len(src) == 0 {
		gl.BufferData(uint32(target), 0, nil, uint32(usage))
		return
	}
	gl.BufferData(uint32(target), len(src), gl.Ptr(src), uint32(usage))
}

func (Context) BufferSubData(target glw.Enum, offset int, src []byte) {
	if len(src) == 0 {
		return
	}
	gl.BufferSubData(uint32(target), offset, len(src), gl.Ptr(src))
}

func (Context) DeleteBuffer(buffer uint32) { gl.DeleteBuffers(1, &buffer) }

func (Context) CreateVertexArray() uint32 {
	var a uint32
	gl.GenVertexArrays(1, &a)
	return a
}

func (Context) BindVertexArray(array uint32)   { gl.BindVertexArray(array) }
func (Context) DeleteVertexArray(array uint32) { gl.DeleteVertexArrays(1, &array) }

func (Context) EnableVertexAttribArray(index uint32)  { gl.EnableVertexAttribArray(index) }
func (Context) DisableVertexAttribArray(index uint32) { gl.DisableVertexAttribArray(index) }

func (Context) VertexAttribPointer(index uint32, size int32, typ glw.Enum, normalized bool, stride, offset int) {
	gl.VertexAttribPointer(index, size, uint32(typ), normalized, int32(stride), gl.PtrOffset(offset))
}

func (Context) DrawArrays(mode glw.Enum, first, count int) {
	gl.DrawArrays(uint32(mode), int32(first), int32(count))
}

func (Context) ClearColor(r, g, b, a float32) { gl.ClearColor(r, g, b, a) }
func (Context) Clear(mask glw.Enum)           { gl.Clear(uint32(mask)) }

func (Context) Viewport(x, y, width, height int) {
	gl.Viewport(int32(x), int32(y), int32(width), int32(height))
}
