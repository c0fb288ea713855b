// Command triangle draws a red triangle with a shader program built from
// shader.vertshader and shader.fragshader until escape is pressed or the
// window is closed.
package main

import (
	"errors"
	"flag"
	"log"
	"os"
	"runtime"

	"dasa.cc/triangle/cmd/internal/exitcode"
	"dasa.cc/triangle/config"
	"dasa.cc/triangle/glw"
	"dasa.cc/triangle/glw/glcore"
	"dasa.cc/triangle/nui"
	"dasa.cc/triangle/scene"
	"golang.org/x/image/math/f32"
)

var (
	logger = log.New(os.Stderr, "triangle: ", 0)
	info   = log.New(os.Stdout, "triangle: ", 0)
)

// window is the surface frames are drawn to.
type window interface {
	scene.Surface
	GetFramebufferSize() (width, height int)
	Terminate()
}

// open creates the window and makes its context current.
var open = func(cfg nui.Config) (window, glw.Context, error) {
	win, err := nui.Open(cfg)
	if err != nil {
		return nil, nil, err
	}
	info.Printf("GL %s", win.Version)
	return win, glcore.Context{}, nil
}

func init() {
	// GL calls must come from the thread that made the context current.
	runtime.LockOSThread()
}

func main() { os.Exit(run(os.Args[1:])) }

func run(args []string) int {
	cfg, err := config.Parse(config.Default(), "triangle", args)
	if errors.Is(err, flag.ErrHelp) {
		return exitcode.Normal
	}
	if err == nil {
		err = cfg.Validate()
	}
	if err != nil {
		logger.Print(err)
		return exitcode.Init
	}

	win, ctx, err := open(nui.FromConfig(cfg.Window))
	if err != nil {
		logger.Print(err)
		return exitcode.Init
	}
	defer win.Terminate()

	width, height := win.GetFramebufferSize()
	ctx.Viewport(0, 0, width, height)
	var prg glw.Program
	err = prg.BuildFiles(ctx, os.DirFS(cfg.Shaders.Dir),
		glw.VertFile(cfg.Shaders.Vertex), glw.FragFile(cfg.Shaders.Fragment))
	if err != nil {
		return exitcode.Build
	}

	tri, err := scene.NewTriangle(ctx, prg, cfg.Shaders.Attrib, f32.Vec4(cfg.Clear), scene.RedTriangle)
	if err != nil {
		logger.Print(err)
		prg.Delete()
		return exitcode.Build
	}
	defer tri.Delete()

	frames := scene.Run(win, tri)
	info.Printf("drew %d frames", frames)
	return exitcode.Normal
}
