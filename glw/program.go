package glw

import (
	"fmt"
	"io/fs"
	"strings"
)

func compile(ctx Context, typ Enum, src string) (uint32, error) {
	shd := ctx.CreateShader(typ)
	ctx.ShaderSource(shd, src)
	ctx.CompileShader(shd)
	if ctx.GetShaderi(shd, COMPILE_STATUS) == int32(FALSE) {
		msg := strings.TrimRight(ctx.GetShaderInfoLog(shd), "\x00")
		ctx.DeleteShader(shd)
		stage := StageVertex
		if typ == FRAGMENT_SHADER {
			stage = StageFragment
		}
		return 0, &BuildError{Stage: stage, Log: msg}
	}
	return shd, nil
}

// VertSrc is vertex shader source code.
type VertSrc string

// Compile returns the compiled shader of src and error if any.
func (src VertSrc) Compile(ctx Context) (uint32, error) {
	return compile(ctx, VERTEX_SHADER, string(src))
}

// FragSrc is fragment shader source code.
type FragSrc string

// Compile returns the compiled shader of src and error if any.
func (src FragSrc) Compile(ctx Context) (uint32, error) {
	return compile(ctx, FRAGMENT_SHADER, string(src))
}

func readSource(fsys fs.FS, name string) (string, error) {
	b, err := fs.ReadFile(fsys, name)
	if err != nil {
		return "", &BuildError{Stage: StageSource, Name: name, Err: err}
	}
	InfoLog.Printf("loaded %s (%d bytes)", name, len(b))
	return string(b), nil
}

// VertFile is a file name in a file system containing vertex shader source code.
type VertFile string

// Source returns the contents of the named file in fsys.
func (name VertFile) Source(fsys fs.FS) (VertSrc, error) {
	s, err := readSource(fsys, string(name))
	return VertSrc(s), err
}

// FragFile is a file name in a file system containing fragment shader source code.
type FragFile string

// Source returns the contents of the named file in fsys.
func (name FragFile) Source(fsys fs.FS) (FragSrc, error) {
	s, err := readSource(fsys, string(name))
	return FragSrc(s), err
}

// State is the progress of a program build.
type State int

const (
	Unstarted State = iota
	SourcesLoaded
	VertexCompiled
	FragmentCompiled
	Linked
	Failed
)

func (s State) String() string {
	switch s {
	case Unstarted:
		return "Unstarted"
	case SourcesLoaded:
		return "SourcesLoaded"
	case VertexCompiled:
		return "VertexCompiled"
	case FragmentCompiled:
		return "FragmentCompiled"
	case Linked:
		return "Linked"
	case Failed:
		return "Failed"
	default:
		return fmt.Sprintf("State(%d)", int(s))
	}
}

// Program identifies a linked shader program. The zero value is not usable.
type Program struct {
	ctx   Context
	Value uint32
	state State
}

// State returns how far the last build got.
func (prg Program) State() State { return prg.state }

// Usable reports whether the program linked and may be installed for drawing.
func (prg Program) Usable() bool { return prg.state == Linked && prg.Value != 0 }

// Use installs program as part of current rendering state.
func (prg Program) Use() { prg.ctx.UseProgram(prg.Value) }

// Attrib returns attribute location by name in program. ErrAttribBinding is
// returned if name is not an active attribute.
func (prg Program) Attrib(name string) (Attrib, error) {
	loc := prg.ctx.GetAttribLocation(prg.Value, name)
	if loc < 0 {
		return Attrib{}, fmt.Errorf("%w: %s", ErrAttribBinding, name)
	}
	return Attrib{ctx: prg.ctx, Value: uint32(loc)}, nil
}

// Delete frees the memory and invalidates the name associated with the program.
func (prg *Program) Delete() {
	if prg.Value != 0 {
		prg.ctx.DeleteProgram(prg.Value)
	}
	prg.Value = 0
	prg.state = Unstarted
}

// BuildFiles is a helper that wraps Program.Build with the contents of vname
// and fname in fsys. A file that cannot be read fails the build before any
// GL object is created.
func (prg *Program) BuildFiles(ctx Context, fsys fs.FS, vname VertFile, fname FragFile) error {
	prg.Delete()
	prg.ctx = ctx
	InfoLog.Printf("loading shaders %s, %s", vname, fname)

	vsrc, err := vname.Source(fsys)
	if err != nil {
		return prg.fail(err)
	}
	fsrc, err := fname.Source(fsys)
	if err != nil {
		return prg.fail(err)
	}
	prg.state = SourcesLoaded
	return prg.build(vsrc, fsrc)
}

// Build compiles shaders and links program. The first failing stage ends the
// build; every object created up to that point is deleted and the returned
// error is a *BuildError. A program already held by prg is deleted first.
func (prg *Program) Build(ctx Context, vsrc VertSrc, fsrc FragSrc) error {
	prg.Delete()
	prg.ctx, prg.state = ctx, SourcesLoaded
	return prg.build(vsrc, fsrc)
}

func (prg *Program) build(vsrc VertSrc, fsrc FragSrc) error {
	ctx := prg.ctx

	vshd, err := vsrc.Compile(ctx)
	if err != nil {
		return prg.fail(err)
	}
	defer ctx.DeleteShader(vshd)
	prg.state = VertexCompiled

	fshd, err := fsrc.Compile(ctx)
	if err != nil {
		return prg.fail(err)
	}
	defer ctx.DeleteShader(fshd)
	prg.state = FragmentCompiled

	prg.Value = ctx.CreateProgram()
	ctx.AttachShader(prg.Value, vshd)
	ctx.AttachShader(prg.Value, fshd)
	ctx.LinkProgram(prg.Value)
	if ctx.GetProgrami(prg.Value, LINK_STATUS) == int32(FALSE) {
		msg := strings.TrimRight(ctx.GetProgramInfoLog(prg.Value), "\x00")
		ctx.DeleteProgram(prg.Value)
		prg.Value = 0
		return prg.fail(&BuildError{Stage: StageLink, Log: msg})
	}

	prg.state = Linked
	return nil
}

func (prg *Program) fail(err error) error {
	prg.state = Failed
	ErrorLog.Print(err)
	return err
}

// Install is a helper that wraps Program.Build and Program.Use.
func (prg *Program) Install(ctx Context, vsrc VertSrc, fsrc FragSrc) error {
	if err := prg.Build(ctx, vsrc, fsrc); err != nil {
		return err
	}
	prg.Use()
	return nil
}
