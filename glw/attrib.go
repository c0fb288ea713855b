package glw

// Attrib is a vertex attribute location bound to the context it was
// queried from.
type Attrib struct {
	ctx   Context
	Value uint32
}

// AttribAt returns attribute index i for use without a linked program,
// as with a fixed location declared in the shader.
func AttribAt(ctx Context, i uint32) Attrib { return Attrib{ctx: ctx, Value: i} }

func (a Attrib) Enable()  { a.ctx.EnableVertexAttribArray(a.Value) }
func (a Attrib) Disable() { a.ctx.DisableVertexAttribArray(a.Value) }

// A3fv is an attribute of three floats per vertex read from the bound
// ARRAY_BUFFER.
type A3fv Attrib

func (a A3fv) Enable()  { Attrib(a).Enable() }
func (a A3fv) Disable() { Attrib(a).Disable() }

// Pointer enables a and describes tightly packed vec3 data at offset zero
// of the bound buffer.
func (a A3fv) Pointer() {
	a.Enable()
	a.ctx.VertexAttribPointer(a.Value, 3, FLOAT, false, 0, 0)
}
