// Package config loads settings for the triangle commands from an optional
// YAML file and command-line flags.
package config

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

type Window struct {
	Width   int    `yaml:"width"`
	Height  int    `yaml:"height"`
	Title   string `yaml:"title"`
	Samples int    `yaml:"samples"`
	Major   int    `yaml:"major"`
	Minor   int    `yaml:"minor"`
	Core    bool   `yaml:"core"`
}

type Shaders struct {
	// Dir is the directory Vertex and Fragment are read from.
	Dir      string `yaml:"dir"`
	Vertex   string `yaml:"vertex"`
	Fragment string `yaml:"fragment"`

	// Attrib is the vertex position attribute in Vertex.
	Attrib string `yaml:"attrib"`
}

type Config struct {
	Window  Window     `yaml:"window"`
	Shaders Shaders    `yaml:"shaders"`
	Clear   [4]float32 `yaml:"clear,flow"`
}

// Default returns the settings of the shader variant: a 1024x768 window
// with a 4x multisampled GL 3.3 core profile context.
func Default() Config {
	return Config{
		Window: Window{
			Width:   1024,
			Height:  768,
			Title:   "First Triangle",
			Samples: 4,
			Major:   3,
			Minor:   3,
			Core:    true,
		},
		Shaders: Shaders{
			Dir:      ".",
			Vertex:   "shader.vertshader",
			Fragment: "shader.fragshader",
			Attrib:   "vertexPosition_modelspace",
		},
		Clear: [4]float32{0, 0, 0.4, 0},
	}
}

// Load decodes the named YAML file over Default. Keys missing from the
// file keep their default.
func Load(name string) (Config, error) {
	cfg := Default()
	err := cfg.Load(name)
	return cfg, err
}

// Load decodes the named YAML file over cfg.
func (cfg *Config) Load(name string) error {
	b, err := os.ReadFile(name)
	if err != nil {
		return fmt.Errorf("read %s: %w", name, err)
	}
	if err := yaml.Unmarshal(b, cfg); err != nil {
		return fmt.Errorf("parse %s: %w", name, err)
	}
	return nil
}

// Parse returns base overridden first by the YAML file named with -config,
// if any, and then by the remaining flags in args. Errors from parsing
// args, including flag.ErrHelp, are returned as is.
func Parse(base Config, name string, args []string) (Config, error) {
	var file string
	scan := base
	pre := flag.NewFlagSet(name, flag.ContinueOnError)
	pre.SetOutput(io.Discard)
	pre.StringVar(&file, "config", "", "")
	scan.RegisterFlags(pre)
	if err := pre.Parse(args); err != nil && err != flag.ErrHelp {
		file = ""
	}

	cfg := base
	if file != "" {
		if err := cfg.Load(file); err != nil {
			return cfg, err
		}
	}

	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.String("config", "", "YAML `file` of settings, overridden by other flags.")
	cfg.RegisterFlags(fs)
	if err := fs.Parse(args); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// Validate reports every setting that cannot be used.
func (cfg Config) Validate() error {
	var errs []error
	if cfg.Window.Width <= 0 || cfg.Window.Height <= 0 {
		errs = append(errs, fmt.Errorf("window size %dx%d must be positive", cfg.Window.Width, cfg.Window.Height))
	}
	if cfg.Window.Samples < 0 {
		errs = append(errs, fmt.Errorf("window samples %d must not be negative", cfg.Window.Samples))
	}
	if cfg.Window.Major < 1 || cfg.Window.Minor < 0 {
		errs = append(errs, fmt.Errorf("context version %d.%d is not valid", cfg.Window.Major, cfg.Window.Minor))
	}
	if cfg.Window.Core && (cfg.Window.Major < 3 || cfg.Window.Major == 3 && cfg.Window.Minor < 2) {
		errs = append(errs, fmt.Errorf("core profile needs version 3.2 or later, have %d.%d", cfg.Window.Major, cfg.Window.Minor))
	}
	if cfg.Shaders.Vertex == "" || cfg.Shaders.Fragment == "" {
		errs = append(errs, errors.New("shader file names must not be empty"))
	}
	if cfg.Shaders.Attrib == "" {
		errs = append(errs, errors.New("shader attrib must not be empty"))
	}
	for i, c := range cfg.Clear {
		if c < 0 || c > 1 {
			errs = append(errs, fmt.Errorf("clear component %d = %g must be within [0, 1]", i, c))
		}
	}
	return errors.Join(errs...)
}

// RegisterFlags binds fields of cfg to flags in fs, using the current values
// as defaults. Call after Load so flags override the file.
func (cfg *Config) RegisterFlags(fs *flag.FlagSet) {
	fs.IntVar(&cfg.Window.Width, "width", cfg.Window.Width, "Window width in screen coordinates.")
	fs.IntVar(&cfg.Window.Height, "height", cfg.Window.Height, "Window height in screen coordinates.")
	fs.StringVar(&cfg.Window.Title, "title", cfg.Window.Title, "Window title.")
	fs.IntVar(&cfg.Window.Samples, "samples", cfg.Window.Samples, "Multisample count, 0 to disable.")
	fs.Var((*version)(&cfg.Window), "gl", "GL context version as major.minor.")
	fs.BoolVar(&cfg.Window.Core, "core", cfg.Window.Core, "Request a core profile context.")
	fs.StringVar(&cfg.Shaders.Dir, "shaders", cfg.Shaders.Dir, "Directory containing shader sources.")
	fs.StringVar(&cfg.Shaders.Vertex, "vert", cfg.Shaders.Vertex, "Vertex shader file name.")
	fs.StringVar(&cfg.Shaders.Fragment, "frag", cfg.Shaders.Fragment, "Fragment shader file name.")
	fs.StringVar(&cfg.Shaders.Attrib, "attrib", cfg.Shaders.Attrib, "Vertex position attribute name.")
}

// version is a flag.Value over Window.Major and Window.Minor.
type version Window

func (v *version) String() string {
	if v == nil {
		return ""
	}
	return fmt.Sprintf("%d.%d", v.Major, v.Minor)
}

func (v *version) Set(s string) error {
	major, minor, ok := strings.Cut(s, ".")
	if !ok {
		return fmt.Errorf("version %q is not major.minor", s)
	}
	a, err := strconv.Atoi(major)
	if err != nil {
		return fmt.Errorf("version %q: %w", s, err)
	}
	b, err := strconv.Atoi(minor)
	if err != nil {
		return fmt.Errorf("version %q: %w", s, err)
	}
	v.Major, v.Minor = a, b
	return nil
}
