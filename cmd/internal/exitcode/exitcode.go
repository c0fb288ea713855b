// Package exitcode holds the process exit codes shared by the triangle
// commands.
package exitcode

const (
	// Build is returned when the shader program fails to build or its
	// vertex attribute cannot be bound, before any frame is drawn.
	Build = 0

	// Init is returned when settings are invalid or the window or GL
	// context cannot be created.
	Init = -1

	// Normal is returned once the render loop ends.
	Normal = 1
)
