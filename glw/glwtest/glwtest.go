// Package glwtest provides a glw.Context that records calls instead of
// talking to a driver.
//
// Its shader compiler is a stand-in: a stage compiles when it declares
// void main and its brackets balance. Linking matches every fragment input
// against a vertex output of the same type and name. Vertex inputs are the
// program's attributes, located in declaration order unless a
// layout(location = N) qualifier says otherwise.
package glwtest

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"dasa.cc/triangle/glw"
)

type decl struct {
	typ, name string
	loc       int
}

type shader struct {
	typ      glw.Enum
	src      string
	compiled bool
	log      string
	ins      []decl
	outs     []decl
}

type program struct {
	shaders []uint32
	linked  bool
	log     string
	attribs []decl
}

// Context is a recording glw.Context. The zero value is not ready for use;
// call New.
type Context struct {
	// Calls lists every call in order, formatted as Name(args).
	Calls []string

	next     uint32
	shaders  map[uint32]*shader
	programs map[uint32]*program
	buffers  map[uint32][]byte
	arrays   map[uint32]bool
	enabled  map[uint32]bool

	compiled []string

	boundBuffer uint32
	current     uint32
}

var _ glw.Context = (*Context)(nil)

func New() *Context {
	return &Context{
		shaders:  make(map[uint32]*shader),
		programs: make(map[uint32]*program),
		buffers:  make(map[uint32][]byte),
		arrays:   make(map[uint32]bool),
		enabled:  make(map[uint32]bool),
	}
}

func (c *Context) record(format string, args ...interface{}) {
	c.Calls = append(c.Calls, fmt.Sprintf(format, args...))
}

func (c *Context) name() uint32 { c.next++; return c.next }

// Count returns the number of recorded calls to the named method.
func (c *Context) Count(method string) int {
	n := 0
	for _, call := range c.Calls {
		if strings.HasPrefix(call, method+"(") {
			n++
		}
	}
	return n
}

// Filter returns recorded calls to any of the named methods, in order.
func (c *Context) Filter(methods ...string) []string {
	var out []string
	for _, call := range c.Calls {
		for _, m := range methods {
			if strings.HasPrefix(call, m+"(") {
				out = append(out, call)
				break
			}
		}
	}
	return out
}

// Reset forgets recorded calls but keeps object state.
func (c *Context) Reset() { c.Calls = nil }

// Compiled returns the source of every CompileShader call, in order.
func (c *Context) Compiled() []string { return c.compiled }

// Live returns names of objects created and not yet deleted, sorted and
// prefixed by kind.
func (c *Context) Live() []string {
	var out []string
	for k := range c.shaders {
		out = append(out, fmt.Sprintf("shader %d", k))
	}
	for k := range c.programs {
		out = append(out, fmt.Sprintf("program %d", k))
	}
	for k := range c.buffers {
		out = append(out, fmt.Sprintf("buffer %d", k))
	}
	for k := range c.arrays {
		out = append(out, fmt.Sprintf("array %d", k))
	}
	sort.Strings(out)
	return out
}

// Enabled reports whether vertex attribute array index is enabled.
func (c *Context) Enabled(index uint32) bool { return c.enabled[index] }

// Data returns the bytes stored in buffer.
func (c *Context) Data(buffer uint32) []byte { return c.buffers[buffer] }

// Current returns the program installed by UseProgram.
func (c *Context) Current() uint32 { return c.current }

func enumString(e glw.Enum) string {
	switch e {
	case glw.VERTEX_SHADER:
		return "VERTEX_SHADER"
	case glw.FRAGMENT_SHADER:
		return "FRAGMENT_SHADER"
	case glw.COMPILE_STATUS:
		return "COMPILE_STATUS"
	case glw.LINK_STATUS:
		return "LINK_STATUS"
	case glw.ARRAY_BUFFER:
		return "ARRAY_BUFFER"
	case glw.STATIC_DRAW:
		return "STATIC_DRAW"
	case glw.DYNAMIC_DRAW:
		return "DYNAMIC_DRAW"
	case glw.FLOAT:
		return "FLOAT"
	case glw.TRIANGLES:
		return "TRIANGLES"
	case glw.COLOR_BUFFER_BIT:
		return "COLOR_BUFFER_BIT"
	default:
		return fmt.Sprintf("0x%04X", uint32(e))
	}
}

func (c *Context) CreateShader(typ glw.Enum) uint32 {
	n := c.name()
	c.shaders[n] = &shader{typ: typ}
	c.record("CreateShader(%s) %d", enumString(typ), n)
	return n
}

func (c *Context) ShaderSource(shd uint32, src string) {
	c.record("ShaderSource(%d)", shd)
	if s, ok := c.shaders[shd]; ok {
		s.src = src
	}
}

func (c *Context) CompileShader(shd uint32) {
	c.record("CompileShader(%d)", shd)
	s, ok := c.shaders[shd]
	if !ok {
		return
	}
	c.compiled = append(c.compiled, s.src)
	s.compiled, s.log = false, ""
	switch {
	case !strings.Contains(s.src, "void main"):
		s.log = "0:1(1): error: no definition of main"
	case !balanced(s.src):
		s.log = "0:1(1): error: syntax error, unbalanced brackets"
	default:
		s.compiled = true
		s.ins, s.outs = declarations(s.typ, s.src)
	}
}

func (c *Context) GetShaderi(shd uint32, pname glw.Enum) int32 {
	c.record("GetShaderi(%d, %s)", shd, enumString(pname))
	s, ok := c.shaders[shd]
	if !ok || pname != glw.COMPILE_STATUS || !s.compiled {
		return int32(glw.FALSE)
	}
	return int32(glw.TRUE)
}

func (c *Context) GetShaderInfoLog(shd uint32) string {
	c.record("GetShaderInfoLog(%d)", shd)
	if s, ok := c.shaders[shd]; ok {
		return s.log
	}
	return ""
}

func (c *Context) DeleteShader(shd uint32) {
	c.record("DeleteShader(%d)", shd)
	delete(c.shaders, shd)
}

func (c *Context) CreateProgram() uint32 {
	n := c.name()
	c.programs[n] = &program{}
	c.record("CreateProgram() %d", n)
	return n
}

func (c *Context) AttachShader(prg, shd uint32) {
	c.record("AttachShader(%d, %d)", prg, shd)
	if p, ok := c.programs[prg]; ok {
		p.shaders = append(p.shaders, shd)
	}
}

func (c *Context) LinkProgram(prg uint32) {
	c.record("LinkProgram(%d)", prg)
	p, ok := c.programs[prg]
	if !ok {
		return
	}
	p.linked, p.log, p.attribs = false, "", nil

	var vert, frag *shader
	for _, n := range p.shaders {
		s, ok := c.shaders[n]
		if !ok || !s.compiled {
			p.log = fmt.Sprintf("error: shader %d is not compiled", n)
			return
		}
		switch s.typ {
		case glw.VERTEX_SHADER:
			vert = s
		case glw.FRAGMENT_SHADER:
			frag = s
		}
	}
	if vert == nil || frag == nil {
		p.log = "error: program needs a vertex and a fragment shader"
		return
	}
	for _, in := range frag.ins {
		if !hasDecl(vert.outs, in) {
			p.log = fmt.Sprintf("error: fragment shader input `%s' has no matching vertex shader output", in.name)
			return
		}
	}

	used := make(map[int]bool)
	for _, in := range vert.ins {
		if in.loc >= 0 {
			used[in.loc] = true
		}
	}
	next := 0
	for _, in := range vert.ins {
		if in.loc < 0 {
			for used[next] {
				next++
			}
			in.loc = next
			used[next] = true
		}
		p.attribs = append(p.attribs, in)
	}
	p.linked = true
}

func (c *Context) GetProgrami(prg uint32, pname glw.Enum) int32 {
	c.record("GetProgrami(%d, %s)", prg, enumString(pname))
	p, ok := c.programs[prg]
	if !ok || pname != glw.LINK_STATUS || !p.linked {
		return int32(glw.FALSE)
	}
	return int32(glw.TRUE)
}

func (c *Context) GetProgramInfoLog(prg uint32) string {
	c.record("GetProgramInfoLog(%d)", prg)
	if p, ok := c.programs[prg]; ok {
		return p.log
	}
	return ""
}

func (c *Context) UseProgram(prg uint32) {
	c.record("UseProgram(%d)", prg)
	c.current = prg
}

func (c *Context) DeleteProgram(prg uint32) {
	c.record("DeleteProgram(%d)", prg)
	delete(c.programs, prg)
	if c.current == prg {
		c.current = 0
	}
}

func (c *Context) GetAttribLocation(prg uint32, name string) int32 {
	c.record("GetAttribLocation(%d, %s)", prg, name)
	p, ok := c.programs[prg]
	if !ok || !p.linked {
		return -1
	}
	for _, a := range p.attribs {
		if a.name == name {
			return int32(a.loc)
		}
	}
	return -1
}

func (c *Context) CreateBuffer() uint32 {
	n := c.name()
	c.buffers[n] = nil
	c.record("CreateBuffer() %d", n)
	return n
}

func (c *Context) BindBuffer(target glw.Enum, buf uint32) {
	c.record("BindBuffer(%s, %d)", enumString(target), buf)
	c.boundBuffer = buf
}

func (c *Context) BufferData(target glw.Enum, src []byte, usage glw.Enum) {
	c.record("BufferData(%s, %d, %s)", enumString(target), len(src), enumString(usage))
	if _, ok := c.buffers[c.boundBuffer]; ok {
		c.buffers[c.boundBuffer] = append([]byte(nil), src...)
	}
}

func (c *Context) BufferSubData(target glw.Enum, offset int, src []byte) {
	c.record("BufferSubData(%s, %d, %d)", enumString(target), offset, len(src))
	if b, ok := c.buffers[c.boundBuffer]; ok && offset+len(src) <= len(b) {
		copy(b[offset:], src)
	}
}

func (c *Context) DeleteBuffer(buf uint32) {
	c.record("DeleteBuffer(%d)", buf)
	delete(c.buffers, buf)
	if c.boundBuffer == buf {
		c.boundBuffer = 0
	}
}

func (c *Context) CreateVertexArray() uint32 {
	n := c.name()
	c.arrays[n] = true
	c.record("CreateVertexArray() %d", n)
	return n
}

func (c *Context) BindVertexArray(va uint32) {
	c.record("BindVertexArray(%d)", va)
}

func (c *Context) DeleteVertexArray(va uint32) {
	c.record("DeleteVertexArray(%d)", va)
	delete(c.arrays, va)
}

func (c *Context) EnableVertexAttribArray(index uint32) {
	c.record("EnableVertexAttribArray(%d)", index)
	c.enabled[index] = true
}

func (c *Context) DisableVertexAttribArray(index uint32) {
	c.record("DisableVertexAttribArray(%d)", index)
	delete(c.enabled, index)
}

func (c *Context) VertexAttribPointer(index uint32, size int32, typ glw.Enum, normalized bool, stride, offset int) {
	c.record("VertexAttribPointer(%d, %d, %s, %t, %d, %d)", index, size, enumString(typ), normalized, stride, offset)
}

func (c *Context) DrawArrays(mode glw.Enum, first, count int) {
	c.record("DrawArrays(%s, %d, %d)", enumString(mode), first, count)
}

func (c *Context) ClearColor(r, g, b, a float32) {
	c.record("ClearColor(%g, %g, %g, %g)", r, g, b, a)
}

func (c *Context) Clear(mask glw.Enum) {
	c.record("Clear(%s)", enumString(mask))
}

func (c *Context) Viewport(x, y, width, height int) {
	c.record("Viewport(%d, %d, %d, %d)", x, y, width, height)
}

func hasDecl(ds []decl, d decl) bool {
	for _, x := range ds {
		if x.typ == d.typ && x.name == d.name {
			return true
		}
	}
	return false
}

func balanced(src string) bool {
	var stack []rune
	pairs := map[rune]rune{')': '(', ']': '[', '}': '{'}
	for _, r := range stripComments(src) {
		switch r {
		case '(', '[', '{':
			stack = append(stack, r)
		case ')', ']', '}':
			if len(stack) == 0 || stack[len(stack)-1] != pairs[r] {
				return false
			}
			stack = stack[:len(stack)-1]
		}
	}
	return len(stack) == 0
}

func stripComments(src string) string {
	var sb strings.Builder
	for _, line := range strings.Split(src, "\n") {
		if i := strings.Index(line, "//"); i >= 0 {
			line = line[:i]
		}
		sb.WriteString(line)
		sb.WriteByte('\n')
	}
	return sb.String()
}

// declarations returns the global inputs and outputs of a stage. Legacy
// attribute and varying qualifiers are read as in and out.
func declarations(typ glw.Enum, src string) (ins, outs []decl) {
	for _, line := range strings.Split(stripComments(src), "\n") {
		line = strings.TrimSpace(strings.TrimSuffix(strings.TrimSpace(line), ";"))
		loc := location(line)
		fields := strings.Fields(line)
	scan:
		for i := 0; i+2 < len(fields); i++ {
			d := decl{typ: fields[i+1], name: strings.SplitN(fields[i+2], "[", 2)[0], loc: loc}
			switch f := fields[i]; {
			case f == "in" || f == "attribute":
				ins = append(ins, d)
				break scan
			case f == "out":
				outs = append(outs, d)
				break scan
			case f == "varying" && typ == glw.VERTEX_SHADER:
				outs = append(outs, d)
				break scan
			case f == "varying":
				ins = append(ins, d)
				break scan
			}
		}
	}
	return ins, outs
}

func location(line string) int {
	i := strings.Index(line, "location")
	if i < 0 {
		return -1
	}
	rest := strings.TrimLeft(line[i+len("location"):], " =")
	j := 0
	for j < len(rest) && rest[j] >= '0' && rest[j] <= '9' {
		j++
	}
	n, err := strconv.Atoi(rest[:j])
	if err != nil {
		return -1
	}
	return n
}
