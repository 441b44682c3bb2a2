package tesseract4d

import (
	"fmt"
	"sync"

	"github.com/go-gl/mathgl/mgl64"
)

// MeshData is plain mesh geometry: quads over Vertices, edges and normals.
type MeshData struct {
	Vertices      []mgl64.Vec3
	Faces         []Face
	Edges         []Edge
	FaceNormals   []mgl64.Vec3
	VertexNormals []mgl64.Vec3 // average of adjacent face normals (smooth shading)
	Version       uint64       // bumped on every geometry replacement
}

// Mesh is a projection sink holding the geometry shown for one object.
// Readers take consistent copies with Snapshot while updates replace it.
type Mesh struct {
	Name string

	mu   sync.RWMutex
	data MeshData
}

func NewMesh(name string) *Mesh { return &Mesh{Name: name} }

// Clear drops all geometry.
func (m *Mesh) Clear() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.clear()
}

func (m *Mesh) clear() {
	v := m.data.Version
	m.data = MeshData{Version: v + 1}
}

// FromData replaces the geometry with verts and faces. A nil edges slice means the edges are
// derived from the faces. Normals are recomputed.
func (m *Mesh) FromData(verts []mgl64.Vec3, edges []Edge, faces []Face) error {
	for fi, f := range faces {
		for _, i := range f {
			if i < 0 || i >= len(verts) {
				return fmt.Errorf("mesh %s: face %d references vertex %d of %d", m.Name, fi, i, len(verts))
			}
		}
	}
	for ei, e := range edges {
		if e[0] < 0 || e[0] >= len(verts) || e[1] < 0 || e[1] >= len(verts) {
			return fmt.Errorf("mesh %s: edge %d out of range: %v", m.Name, ei, e)
		}
	}
	if edges == nil {
		edges = edgesOf(faces)
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	m.clear()
	m.data.Vertices = append([]mgl64.Vec3(nil), verts...)
	m.data.Faces = append([]Face(nil), faces...)
	m.data.Edges = append([]Edge(nil), edges...)
	m.data.FaceNormals, m.data.VertexNormals = normals(m.data.Vertices, m.data.Faces)
	return nil
}

// Update implements Sink.
func (m *Mesh) Update(pr *Projection) error {
	return m.FromData(pr.Points[:], nil, pr.Faces())
}

// Snapshot returns a copy of the current geometry.
func (m *Mesh) Snapshot() MeshData {
	m.mu.RLock()
	defer m.mu.RUnlock()
	d := m.data
	d.Vertices = append([]mgl64.Vec3(nil), d.Vertices...)
	d.Faces = append([]Face(nil), d.Faces...)
	d.Edges = append([]Edge(nil), d.Edges...)
	d.FaceNormals = append([]mgl64.Vec3(nil), d.FaceNormals...)
	d.VertexNormals = append([]mgl64.Vec3(nil), d.VertexNormals...)
	return d
}

// Version returns the geometry version without copying.
func (m *Mesh) Version() uint64 {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.data.Version
}

// faceNormal uses Newell's method so slightly non-planar quads still get a stable normal.
// Degenerate faces get the zero vector.
func faceNormal(verts []mgl64.Vec3, f Face) mgl64.Vec3 {
	var n mgl64.Vec3
	for i := 0; i < 4; i++ {
		n = n.Add(verts[f[i]].Cross(verts[f[(i+1)%4]]))
	}
	if n.Len() == 0 {
		return mgl64.Vec3{}
	}
	return n.Normalize()
}

func normals(verts []mgl64.Vec3, faces []Face) (face, vertex []mgl64.Vec3) {
	face = make([]mgl64.Vec3, len(faces))
	vertex = make([]mgl64.Vec3, len(verts))
	for fi, f := range faces {
		n := faceNormal(verts, f)
		face[fi] = n
		for _, i := range f {
			vertex[i] = vertex[i].Add(n)
		}
	}
	for i, n := range vertex {
		if n.Len() > 0 {
			vertex[i] = n.Normalize()
		}
	}
	return face, vertex
}
