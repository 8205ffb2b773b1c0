package axion

import "axion/vecmath"

// Mesh is a named, fixed-length vertex list with an object transform.
//
// Position and Rotation (Euler angles in radians) are owned by whoever drives the
// scene; Device only reads them.
type Mesh struct {
	Name     string
	Vertices []vecmath.Vector3
	Position vecmath.Vector3
	Rotation vecmath.Vector3
}

// NewMesh allocates a mesh with vertexCount zeroed vertices. The count never changes.
func NewMesh(name string, vertexCount int) *Mesh {
	if vertexCount < 0 {
		vertexCount = 0
	}
	return &Mesh{
		Name:     name,
		Vertices: make([]vecmath.Vector3, vertexCount),
	}
}

func (m *Mesh) VertexCount() int { return len(m.Vertices) }

// SetVertex replaces vertex i in place. It panics with a *VertexIndexError if i is out
// of range.
func (m *Mesh) SetVertex(i int, v vecmath.Vector3) {
	if i < 0 || i >= len(m.Vertices) {
		panic(&VertexIndexError{Mesh: m.Name, Index: i, Count: len(m.Vertices)})
	}
	m.Vertices[i] = v
}

// Rotate advances the mesh rotation by delta.
func (m *Mesh) Rotate(delta vecmath.Vector3) {
	m.Rotation = m.Rotation.Add(delta)
}

// NewCube returns the eight corners of a cube spanning [-1,1] on every axis.
func NewCube(name string) *Mesh {
	m := NewMesh(name, 8)
	m.Vertices[0] = vecmath.V3(-1, 1, 1)
	m.Vertices[1] = vecmath.V3(1, 1, 1)
	m.Vertices[2] = vecmath.V3(-1, -1, 1)
	m.Vertices[3] = vecmath.V3(-1, -1, -1)
	m.Vertices[4] = vecmath.V3(-1, 1, -1)
	m.Vertices[5] = vecmath.V3(1, 1, -1)
	m.Vertices[6] = vecmath.V3(1, -1, 1)
	m.Vertices[7] = vecmath.V3(1, -1, -1)
	return m
}
