// Command tutorial01 draws a white triangle without a shader program until
// escape is pressed or the window is closed.
//
// Drawing without a program relies on a compatibility profile context, so
// unlike triangle the core profile is off by default.
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
)

var logger = log.New(os.Stderr, "tutorial01: ", 0)

type window interface {
	scene.Surface
	GetFramebufferSize() (width, height int)
	Terminate()
}

var open = func(cfg nui.Config) (window, glw.Context, error) {
	win, err := nui.Open(cfg)
	if err != nil {
		return nil, nil, err
	}
	return win, glcore.Context{}, nil
}

func init() { runtime.LockOSThread() }

func main() { os.Exit(run(os.Args[1:])) }

func run(args []string) int {
	base := config.Default()
	base.Window.Title = "Tutorial 01"
	base.Window.Core = false
	cfg, err := config.Parse(base, "tutorial01", args)
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
	b := scene.NewBare(ctx, scene.Tutorial01)
	defer b.Delete()

	scene.Run(win, b)
	return exitcode.Normal
}
