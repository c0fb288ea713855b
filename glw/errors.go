package glw

import (
	"errors"
	"fmt"
)

var (
	ErrSourceRead      = errors.New("glw: shader source read failed")
	ErrVertexCompile   = errors.New("glw: vertex shader compile failed")
	ErrFragmentCompile = errors.New("glw: fragment shader compile failed")
	ErrLink            = errors.New("glw: program link failed")
	ErrAttribBinding   = errors.New("glw: attribute binding failed")
)

// Stage identifies the step of a program build.
type Stage int

const (
	StageSource Stage = iota
	StageVertex
	StageFragment
	StageLink
)

func (s Stage) String() string {
	switch s {
	case StageSource:
		return "Source"
	case StageVertex:
		return "VertexShader"
	case StageFragment:
		return "FragmentShader"
	case StageLink:
		return "LinkProgram"
	default:
		return fmt.Sprintf("Stage(%d)", int(s))
	}
}

func (s Stage) sentinel() error {
	switch s {
	case StageSource:
		return ErrSourceRead
	case StageVertex:
		return ErrVertexCompile
	case StageFragment:
		return ErrFragmentCompile
	default:
		return ErrLink
	}
}

// BuildError reports where a program build stopped. It unwraps to the
// sentinel error of its Stage, and to the read error for StageSource.
type BuildError struct {
	Stage Stage

	// Name is the file name for StageSource, empty otherwise.
	Name string

	// Log is the driver's info log for compile and link failures.
	Log string

	// Err is the underlying read error for StageSource.
	Err error
}

func (e *BuildError) Error() string {
	switch {
	case e.Err != nil:
		return fmt.Sprintf("%s %s: %v", e.Stage, e.Name, e.Err)
	case e.Log != "":
		return fmt.Sprintf("%s\n%s", e.Stage.sentinel(), e.Log)
	default:
		return e.Stage.sentinel().Error()
	}
}

func (e *BuildError) Unwrap() []error {
	if e.Err != nil {
		return []error{e.Stage.sentinel(), e.Err}
	}
	return []error{e.Stage.sentinel()}
}
