package tesseract4d

import "fmt"

// Face is a planar quad given by four vertex indices in winding order.
type Face [4]int

// Edge is an undirected pair of vertex indices, smaller index first.
type Edge [2]int

// Vertices4D are the canonical tesseract vertices, enumerated x outer, then y, then z, then w.
// Index i has coordinate bits x,y,z,w = i>>3&1, i>>2&1, i>>1&1, i&1 (0 => -1, 1 => +1).
var Vertices4D = [VertexCount]Point4{
	{-1, -1, -1, -1}, {-1, -1, -1, 1}, {-1, -1, 1, -1}, {-1, -1, 1, 1},
	{-1, 1, -1, -1}, {-1, 1, -1, 1}, {-1, 1, 1, -1}, {-1, 1, 1, 1},
	{1, -1, -1, -1}, {1, -1, -1, 1}, {1, -1, 1, -1}, {1, -1, 1, 1},
	{1, 1, -1, -1}, {1, 1, -1, 1}, {1, 1, 1, -1}, {1, 1, 1, 1},
}

// Faces are the 24 square faces of the tesseract. Do not reorder: meshes index into this table.
var Faces = [FaceCount]Face{
	// x = -1 cell
	{0, 1, 3, 2}, {0, 1, 5, 4}, {0, 4, 6, 2}, {1, 5, 7, 3},
	{2, 3, 7, 6}, {4, 5, 7, 6},
	// x = +1 cell
	{8, 9, 11, 10}, {8, 9, 13, 12}, {8, 12, 14, 10}, {9, 13, 15, 11},
	{10, 11, 15, 14}, {12, 13, 15, 14},
	// connecting faces
	{0, 1, 9, 8}, {2, 3, 11, 10}, {4, 5, 13, 12}, {6, 7, 15, 14},
	{0, 2, 10, 8}, {1, 3, 11, 9}, {4, 6, 14, 12}, {5, 7, 15, 13},
	{0, 4, 12, 8}, {1, 5, 13, 9}, {2, 6, 14, 10}, {3, 7, 15, 11},
}

// Edges are the 32 unique edges of Faces, in first-seen order.
var Edges = edgesOf(Faces[:])

func init() {
	if err := checkTopology(Vertices4D[:], Faces[:]); err != nil {
		panic(err)
	}
	if len(Edges) != EdgeCount {
		panic(fmt.Sprintf("tesseract: derived %d edges, expected %d", len(Edges), EdgeCount))
	}
}

// edgesOf returns the unique undirected edges around the given faces.
func edgesOf(faces []Face) []Edge {
	seen := make(map[Edge]bool, len(faces)*4)
	out := make([]Edge, 0, len(faces)*2)
	for _, f := range faces {
		for i := 0; i < 4; i++ {
			a, b := f[i], f[(i+1)%4]
			if a > b {
				a, b = b, a
			}
			e := Edge{a, b}
			if !seen[e] {
				seen[e] = true
				out = append(out, e)
			}
		}
	}
	return out
}

// checkTopology verifies that faces index a tesseract correctly: every index in range, no
// repeats within a face, every vertex used, and consecutive corners joined by an edge of length 2.
func checkTopology(verts []Point4, faces []Face) error {
	if len(verts) != VertexCount {
		return fmt.Errorf("tesseract: %d vertices, expected %d", len(verts), VertexCount)
	}
	if len(faces) != FaceCount {
		return fmt.Errorf("tesseract: %d faces, expected %d", len(faces), FaceCount)
	}
	used := make([]bool, len(verts))
	for fi, f := range faces {
		for i, a := range f {
			if a < 0 || a >= len(verts) {
				return fmt.Errorf("tesseract: face %d index %d out of range: %d", fi, i, a)
			}
			for _, b := range f[i+1:] {
				if a == b {
					return fmt.Errorf("tesseract: face %d repeats vertex %d", fi, a)
				}
			}
			used[a] = true
		}
		for i := 0; i < 4; i++ {
			a, b := f[i], f[(i+1)%4]
			if b < 0 || b >= len(verts) {
				continue
			}
			if d := verts[a].Vec().Sub(verts[b].Vec()).Len(); d != 2 {
				return fmt.Errorf("tesseract: face %d corners %d,%d are not adjacent (distance %.6g)", fi, a, b, d)
			}
		}
	}
	for i, ok := range used {
		if !ok {
			return fmt.Errorf("tesseract: vertex %d not used by any face", i)
		}
	}
	return nil
}
