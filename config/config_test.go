package config

import (
	"flag"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, data string) string {
	t.Helper()
	name := filepath.Join(t.TempDir(), "triangle.yaml")
	require.NoError(t, os.WriteFile(name, []byte(data), 0o644))
	return name
}

func TestDefault(t *testing.T) {
	cfg := Default()
	require.NoError(t, cfg.Validate())
	require.Equal(t, 1024, cfg.Window.Width)
	require.Equal(t, 768, cfg.Window.Height)
	require.Equal(t, 4, cfg.Window.Samples)
	require.Equal(t, 3, cfg.Window.Major)
	require.Equal(t, 3, cfg.Window.Minor)
	require.Equal(t, "shader.vertshader", cfg.Shaders.Vertex)
	require.Equal(t, "shader.fragshader", cfg.Shaders.Fragment)
	require.Equal(t, "vertexPosition_modelspace", cfg.Shaders.Attrib)
	require.Equal(t, [4]float32{0, 0, 0.4, 0}, cfg.Clear)
	require.True(t, cfg.Window.Core)
}

func TestLoad(t *testing.T) {
	name := writeFile(t, `
window:
  title: Red Triangle
  width: 640
shaders:
  dir: assets
clear: [0.1, 0.2, 0.3, 1]
`)
	cfg, err := Load(name)
	require.NoError(t, err)
	require.Equal(t, "Red Triangle", cfg.Window.Title)
	require.Equal(t, 640, cfg.Window.Width)
	require.Equal(t, 768, cfg.Window.Height, "missing keys keep defaults")
	require.Equal(t, "assets", cfg.Shaders.Dir)
	require.Equal(t, "shader.vertshader", cfg.Shaders.Vertex)
	require.Equal(t, [4]float32{0.1, 0.2, 0.3, 1}, cfg.Clear)
}

func TestLoadErrors(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	require.ErrorIs(t, err, os.ErrNotExist)

	_, err = Load(writeFile(t, "window: [1, 2"))
	require.Error(t, err)

	_, err = Load(writeFile(t, "window:\n  width: wide\n"))
	require.Error(t, err)
}

func TestValidate(t *testing.T) {
	cfg := Default()
	cfg.Window.Width = 0
	cfg.Window.Major, cfg.Window.Minor = 2, 1
	cfg.Shaders.Attrib = ""
	cfg.Clear[3] = 2

	err := cfg.Validate()
	require.Error(t, err)
	require.Contains(t, err.Error(), "window size 0x768")
	require.Contains(t, err.Error(), "core profile needs version 3.2")
	require.Contains(t, err.Error(), "attrib must not be empty")
	require.Contains(t, err.Error(), "clear component 3")

	cfg = Default()
	cfg.Window.Core = false
	cfg.Window.Major, cfg.Window.Minor = 2, 1
	require.NoError(t, cfg.Validate())
}

func TestRegisterFlags(t *testing.T) {
	cfg := Default()
	cfg.Window.Title = "from file"

	fs := flag.NewFlagSet("triangle", flag.ContinueOnError)
	cfg.RegisterFlags(fs)
	require.NoError(t, fs.Parse([]string{"-width", "800", "-gl", "4.1", "-core=false", "-shaders", "/tmp/shaders"}))

	require.Equal(t, 800, cfg.Window.Width)
	require.Equal(t, 4, cfg.Window.Major)
	require.Equal(t, 1, cfg.Window.Minor)
	require.False(t, cfg.Window.Core)
	require.Equal(t, "/tmp/shaders", cfg.Shaders.Dir)
	require.Equal(t, "from file", cfg.Window.Title, "unset flags keep loaded values")
	require.Equal(t, "4.1", fs.Lookup("gl").Value.String())

	fs = flag.NewFlagSet("triangle", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	cfg.RegisterFlags(fs)
	require.Error(t, fs.Parse([]string{"-gl", "four"}))
}

func TestParse(t *testing.T) {
	name := writeFile(t, "window:\n  title: from file\n  width: 640\n")
	base := Default()
	base.Window.Title = "Tutorial 01"

	cfg, err := Parse(base, "tutorial01", nil)
	require.NoError(t, err)
	require.Equal(t, base, cfg)

	cfg, err = Parse(base, "tutorial01", []string{"-width", "320", "-config", name})
	require.NoError(t, err)
	require.Equal(t, "from file", cfg.Window.Title)
	require.Equal(t, 320, cfg.Window.Width, "flags override the file")
	require.Equal(t, 768, cfg.Window.Height)

	_, err = Parse(base, "tutorial01", []string{"-config", filepath.Join(t.TempDir(), "missing.yaml")})
	require.ErrorIs(t, err, os.ErrNotExist)
}
