package glw

import "math"

// FloatBuffer is an ARRAY_BUFFER of float32 values.
type FloatBuffer struct {
	ctx   Context
	Value uint32
	bin   []byte
	count int
	usage Enum
}

// Create generates the buffer, binds it and uploads data.
func (buf *FloatBuffer) Create(ctx Context, usage Enum, data []float32) {
	buf.ctx = ctx
	buf.usage = usage
	buf.Value = ctx.CreateBuffer()
	buf.Bind()
	buf.Update(data)
}

func (buf *FloatBuffer) Delete() {
	if buf.Value != 0 {
		buf.ctx.DeleteBuffer(buf.Value)
	}
	buf.Value = 0
}

func (buf FloatBuffer) Bind() { buf.ctx.BindBuffer(ARRAY_BUFFER, buf.Value) }

// Len returns the number of floats last uploaded.
func (buf FloatBuffer) Len() int { return buf.count }

// Draw issues a single draw of every vertex in buf, where each vertex is
// size floats.
func (buf FloatBuffer) Draw(mode Enum, size int) { buf.ctx.DrawArrays(mode, 0, buf.count/size) }

// Update uploads data to the bound buffer, reusing storage when data fits.
func (buf *FloatBuffer) Update(data []float32) {
	buf.count = len(data)
	subok := len(buf.bin) > 0 && len(data)*4 <= len(buf.bin)
	if !subok {
		buf.bin = make([]byte, len(data)*4)
	}
	for i, x := range data {
		u := math.Float32bits(x)
		buf.bin[4*i+0] = byte(u >> 0)
		buf.bin[4*i+1] = byte(u >> 8)
		buf.bin[4*i+2] = byte(u >> 16)
		buf.bin[4*i+3] = byte(u >> 24)
	}
	if subok {
		buf.ctx.BufferSubData(ARRAY_BUFFER, 0, buf.bin[:len(data)*4])
	} else {
		buf.ctx.BufferData(ARRAY_BUFFER, buf.bin, buf.usage)
	}
}

// VertexArray records attribute state. Core profile contexts draw nothing
// without one bound.
type VertexArray struct {
	ctx   Context
	Value uint32
}

func (va *VertexArray) Create(ctx Context) {
	va.ctx = ctx
	va.Value = ctx.CreateVertexArray()
	va.Bind()
}

func (va VertexArray) Bind() { va.ctx.BindVertexArray(va.Value) }

func (va *VertexArray) Delete() {
	if va.Value != 0 {
		va.ctx.DeleteVertexArray(va.Value)
	}
	va.Value = 0
}
