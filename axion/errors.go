package axion

import (
	"errors"
	"fmt"
)

var (
	ErrNilSurface      = errors.New("axion: nil surface")
	ErrInvalidSize     = errors.New("axion: invalid surface size")
	ErrSurfaceMismatch = errors.New("axion: surface does not match back buffer")
)

// OutOfBoundsError is the panic value of a pixel write outside the back buffer.
type OutOfBoundsError struct {
	X, Y          int
	Width, Height int
}

func (e *OutOfBoundsError) Error() string {
	return fmt.Sprintf("axion: pixel (%d,%d) outside %dx%d back buffer", e.X, e.Y, e.Width, e.Height)
}

// VertexIndexError is the panic value of a vertex write outside a mesh.
type VertexIndexError struct {
	Mesh  string
	Index int
	Count int
}

func (e *VertexIndexError) Error() string {
	return fmt.Sprintf("axion: vertex %d out of range for mesh %q with %d vertices", e.Index, e.Mesh, e.Count)
}
