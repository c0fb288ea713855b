package nui

import (
	"fmt"

	"dasa.cc/triangle/glw/glcore"
	"github.com/go-gl/glfw/v3.3/glfw"
)

// Window is a glfw window whose GL context is current on the calling thread.
type Window struct {
	*glfw.Window

	// Version is the GL version string reported by the driver.
	Version string
}

// Open initializes glfw, creates a window per cfg, makes its context
// current and loads GL. Errors wrap ErrWindowInit or ErrContextInit.
// On error glfw is already terminated.
func Open(cfg Config) (*Window, error) {
	if err := glfw.Init(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrWindowInit, err)
	}

	glfw.WindowHint(glfw.Samples, cfg.Samples)
	glfw.WindowHint(glfw.ContextVersionMajor, cfg.Major)
	glfw.WindowHint(glfw.ContextVersionMinor, cfg.Minor)
	if cfg.Core {
		glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCoreProfile)
		glfw.WindowHint(glfw.OpenGLForwardCompatible, glfw.True)
	}

	window, err := glfw.CreateWindow(cfg.Width, cfg.Height, cfg.Title, nil, nil)
	if err != nil {
		glfw.Terminate()
		return nil, fmt.Errorf("%w: %v", ErrWindowInit, err)
	}
	window.MakeContextCurrent()

	version, err := glcore.Init()
	if err != nil {
		window.Destroy()
		glfw.Terminate()
		return nil, fmt.Errorf("%w: %v", ErrContextInit, err)
	}

	window.SetInputMode(glfw.StickyKeysMode, glfw.True)
	return &Window{Window: window, Version: version}, nil
}

// Escaped reports whether escape is, or since the last poll was, pressed.
func (w *Window) Escaped() bool { return w.GetKey(glfw.KeyEscape) == glfw.Press }

// ShouldClose reports whether the user asked to close the window.
func (w *Window) ShouldClose() bool { return w.Window.ShouldClose() }

// PollEvents processes pending window events.
func (w *Window) PollEvents() { glfw.PollEvents() }

// Terminate destroys the window and releases glfw.
func (w *Window) Terminate() {
	w.Destroy()
	glfw.Terminate()
}
