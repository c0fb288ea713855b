// Package nui aims to be unremarkable in aiding windowing.
//
// It opens one glfw window with a current GL context. Every function and
// method must be called from the main goroutine locked to its OS thread.
package nui

import (
	"errors"

	"dasa.cc/triangle/config"
)

var (
	ErrWindowInit  = errors.New("nui: window init failed")
	ErrContextInit = errors.New("nui: context init failed")
)

// Config describes the window and the context requested for it.
type Config struct {
	Width, Height int
	Title         string

	// Samples is the multisample count; zero disables multisampling.
	Samples int

	// Major and Minor are the requested GL context version.
	Major, Minor int

	// Core requests a forward compatible core profile.
	Core bool
}

// FromConfig returns the window settings of w.
func FromConfig(w config.Window) Config {
	return Config{
		Width:   w.Width,
		Height:  w.Height,
		Title:   w.Title,
		Samples: w.Samples,
		Major:   w.Major,
		Minor:   w.Minor,
		Core:    w.Core,
	}
}
