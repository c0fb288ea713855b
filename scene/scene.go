// Package scene holds the state of a running triangle program and the
// loop that draws it.
package scene

import (
	"dasa.cc/triangle/glw"
	"golang.org/x/image/math/f32"
)

// Surface is the window being drawn to.
type Surface interface {
	SwapBuffers()
	PollEvents()
	Escaped() bool
	ShouldClose() bool
}

// Drawer draws one frame.
type Drawer interface {
	Draw()
}

// ShouldExit reports whether the loop running on s is done.
func ShouldExit(s Surface) bool { return s.Escaped() || s.ShouldClose() }

// Run draws frames until ShouldExit, checked once after every frame, and
// returns the number of frames drawn. At least one frame is always drawn.
func Run(s Surface, d Drawer) (frames int) {
	for {
		d.Draw()
		s.SwapBuffers()
		s.PollEvents()
		frames++
		if ShouldExit(s) {
			return frames
		}
	}
}

var (
	// RedTriangle is drawn by the shader program.
	RedTriangle = []f32.Vec3{
		glw.Vec3(-1, -1, 0),
		glw.Vec3(+1, -1, 0),
		glw.Vec3(+0, .5, 0),
	}

	// Tutorial01 is drawn without a program on attribute 0.
	Tutorial01 = []f32.Vec3{
		glw.Vec3(-1, -1, 0),
		glw.Vec3(+1, -1, 0),
		glw.Vec3(+0, +1, 0),
	}

	// DarkBlue is the clear color behind RedTriangle.
	DarkBlue = glw.Vec4(0, 0, 0.4, 0)
)

// Triangle is the state of the shader variant. The program, buffer and
// vertex array are owned by Triangle from NewTriangle until Delete.
type Triangle struct {
	ctx   glw.Context
	prg   glw.Program
	vao   glw.VertexArray
	verts glw.FloatBuffer
	pos   glw.A3fv
}

// NewTriangle takes ownership of prg and uploads verts for drawing through
// the attribute named attrib. If the attribute cannot be bound nothing is
// created and prg is left to the caller; the error wraps
// glw.ErrAttribBinding.
func NewTriangle(ctx glw.Context, prg glw.Program, attrib string, clear f32.Vec4, verts []f32.Vec3) (*Triangle, error) {
	a, err := prg.Attrib(attrib)
	if err != nil {
		return nil, err
	}
	ctx.ClearColor(clear[0], clear[1], clear[2], clear[3])

	tri := &Triangle{ctx: ctx, prg: prg, pos: glw.A3fv(a)}
	tri.vao.Create(ctx)
	tri.verts.Create(ctx, glw.STATIC_DRAW, glw.Vec3s(verts...))
	return tri, nil
}

func (tri *Triangle) Draw() {
	tri.ctx.Clear(glw.COLOR_BUFFER_BIT)
	tri.prg.Use()
	tri.vao.Bind()
	tri.verts.Bind()
	tri.pos.Pointer()
	tri.verts.Draw(glw.TRIANGLES, 3)
	tri.pos.Disable()
}

// Delete releases the buffer, vertex array and program.
func (tri *Triangle) Delete() {
	tri.verts.Delete()
	tri.vao.Delete()
	tri.prg.Delete()
}

// Bare is the state of the variant without a shader program. Vertices feed
// attribute 0 and the screen is never cleared.
type Bare struct {
	vao   glw.VertexArray
	verts glw.FloatBuffer
	pos   glw.A3fv
}

func NewBare(ctx glw.Context, verts []f32.Vec3) *Bare {
	b := &Bare{pos: glw.A3fv(glw.AttribAt(ctx, 0))}
	b.vao.Create(ctx)
	b.verts.Create(ctx, glw.STATIC_DRAW, glw.Vec3s(verts...))
	return b
}

func (b *Bare) Draw() {
	b.vao.Bind()
	b.verts.Bind()
	b.pos.Pointer()
	b.verts.Draw(glw.TRIANGLES, 3)
	b.pos.Disable()
}

func (b *Bare) Delete() {
	b.verts.Delete()
	b.vao.Delete()
}
