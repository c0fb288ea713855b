package glwtest

import (
	"testing"

	"dasa.cc/triangle/glw"
	"github.com/google/go-cmp/cmp"
)

func TestCompile(t *testing.T) {
	tests := []struct {
		name string
		src  string
		ok   bool
	}{
		{"empty", "", false},
		{"no main", "#version 330 core\nout vec3 color;\n", false},
		{"unbalanced", "void main() {\n\tcolor = vec3(1, 0, 0;\n}", false},
		{"commented brace", "void main() {\n\t// }\n}", true},
		{"valid", "void main() {\n\tcolor = vec3(1, 0, 0);\n}", true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := New()
			shd := c.CreateShader(glw.FRAGMENT_SHADER)
			c.ShaderSource(shd, tt.src)
			c.CompileShader(shd)
			ok := c.GetShaderi(shd, glw.COMPILE_STATUS) == int32(glw.TRUE)
			if ok != tt.ok {
				t.Fatalf("compiled = %v, want %v (log %q)", ok, tt.ok, c.GetShaderInfoLog(shd))
			}
			if !ok && c.GetShaderInfoLog(shd) == "" {
				t.Fatal("failed compile has empty info log")
			}
		})
	}
}

func TestDeclarations(t *testing.T) {
	src := `#version 330 core
layout(location = 1) in vec3 position;
in vec2 uv;
attribute vec4 legacy;
out vec2 fragUV; // passed on
varying vec3 normal;
uniform mat4 mvp;
`
	ins, outs := declarations(glw.VERTEX_SHADER, src)
	wantIns := []decl{
		{typ: "vec3", name: "position", loc: 1},
		{typ: "vec2", name: "uv", loc: -1},
		{typ: "vec4", name: "legacy", loc: -1},
	}
	wantOuts := []decl{
		{typ: "vec2", name: "fragUV", loc: -1},
		{typ: "vec3", name: "normal", loc: -1},
	}
	opt := cmp.AllowUnexported(decl{})
	if diff := cmp.Diff(wantIns, ins, opt); diff != "" {
		t.Fatalf("ins (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff(wantOuts, outs, opt); diff != "" {
		t.Fatalf("outs (-want +got):\n%s", diff)
	}
}

func TestLinkAssignsLocations(t *testing.T) {
	c := New()
	vs := c.CreateShader(glw.VERTEX_SHADER)
	c.ShaderSource(vs, "layout(location = 0) in vec3 a;\nin vec3 b;\nin vec3 d;\nout vec3 v;\nvoid main() {}")
	c.CompileShader(vs)
	fs := c.CreateShader(glw.FRAGMENT_SHADER)
	c.ShaderSource(fs, "in vec3 v;\nvoid main() {}")
	c.CompileShader(fs)

	prg := c.CreateProgram()
	c.AttachShader(prg, vs)
	c.AttachShader(prg, fs)
	c.LinkProgram(prg)
	if c.GetProgrami(prg, glw.LINK_STATUS) != int32(glw.TRUE) {
		t.Fatalf("link failed: %s", c.GetProgramInfoLog(prg))
	}

	for name, want := range map[string]int32{"a": 0, "b": 1, "d": 2, "v": -1} {
		if got := c.GetAttribLocation(prg, name); got != want {
			t.Errorf("GetAttribLocation(%q) = %v, want %v", name, got, want)
		}
	}
}

func TestLinkTypeMismatch(t *testing.T) {
	c := New()
	vs := c.CreateShader(glw.VERTEX_SHADER)
	c.ShaderSource(vs, "out vec4 v;\nvoid main() {}")
	c.CompileShader(vs)
	fs := c.CreateShader(glw.FRAGMENT_SHADER)
	c.ShaderSource(fs, "in vec3 v;\nvoid main() {}")
	c.CompileShader(fs)

	prg := c.CreateProgram()
	c.AttachShader(prg, vs)
	c.AttachShader(prg, fs)
	c.LinkProgram(prg)
	if c.GetProgrami(prg, glw.LINK_STATUS) != int32(glw.FALSE) {
		t.Fatal("link succeeded with mismatched varying types")
	}
	if c.GetAttribLocation(prg, "v") != -1 {
		t.Fatal("unlinked program reports attribute locations")
	}
}
