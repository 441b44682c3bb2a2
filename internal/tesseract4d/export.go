package tesseract4d

import (
	"bufio"
	"fmt"
	"io"
	"os"

	"github.com/hschendel/stl"
)

// WriteOBJ writes d as a Wavefront OBJ: one quad per face with per-vertex normals.
func WriteOBJ(w io.Writer, name string, d MeshData) error {
	bw := bufio.NewWriter(w)
	fmt.Fprintf(bw, "# tesseract projection, %d vertices, %d faces\n", len(d.Vertices), len(d.Faces))
	fmt.Fprintf(bw, "o %s\n", name)
	for _, v := range d.Vertices {
		fmt.Fprintf(bw, "v %.6f %.6f %.6f\n", v[0], v[1], v[2])
	}
	for _, n := range d.VertexNormals {
		fmt.Fprintf(bw, "vn %.6f %.6f %.6f\n", n[0], n[1], n[2])
	}
	withNormals := len(d.VertexNormals) == len(d.Vertices)
	bw.WriteString("s 1\n")
	for _, f := range d.Faces {
		bw.WriteString("f")
		for _, i := range f {
			if withNormals {
				fmt.Fprintf(bw, " %d//%d", i+1, i+1)
			} else {
				fmt.Fprintf(bw, " %d", i+1)
			}
		}
		bw.WriteString("\n")
	}
	return bw.Flush()
}

// SaveOBJ writes d to path in OBJ format.
func SaveOBJ(path, name string, d MeshData) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := WriteOBJ(f, name, d); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

// STLSolid triangulates every quad of d into two triangles sharing the face normal.
func STLSolid(name string, d MeshData) *stl.Solid {
	// binary headers starting with "solid" get mistaken for ASCII STL by some readers
	header := make([]byte, 80)
	copy(header, "tesseract4d "+name)
	s := &stl.Solid{
		Name:         name,
		BinaryHeader: header,
		Triangles:    make([]stl.Triangle, 0, 2*len(d.Faces)),
	}
	vec := func(i int) stl.Vec3 {
		v := d.Vertices[i]
		return stl.Vec3{float32(v[0]), float32(v[1]), float32(v[2])}
	}
	for fi, f := range d.Faces {
		var n stl.Vec3
		if fi < len(d.FaceNormals) {
			fn := d.FaceNormals[fi]
			n = stl.Vec3{float32(fn[0]), float32(fn[1]), float32(fn[2])}
		}
		s.Triangles = append(s.Triangles,
			stl.Triangle{Normal: n, Vertices: [3]stl.Vec3{vec(f[0]), vec(f[1]), vec(f[2])}},
			stl.Triangle{Normal: n, Vertices: [3]stl.Vec3{vec(f[0]), vec(f[2]), vec(f[3])}},
		)
	}
	return s
}

// SaveSTL writes d to path as binary STL.
func SaveSTL(path, name string, d MeshData) error {
	return STLSolid(name, d).WriteFile(path)
}
