package terra

// MeshData is the renderable triangle bundle: four parallel per-vertex
// arrays plus a triangle-list index buffer. Vertices, Normals and Colors
// always have equal length and every index is below that length.
type MeshData struct {
	Vertices [][3]float32
	Indices  []uint32
	Normals  [][3]float32
	Colors   [][4]float32
}

// FaceCount reports the number of emitted quad faces.
func (m *MeshData) FaceCount() int {
	return len(m.Indices) / 6
}

// faceSpec fixes the neighbor offset, flat normal and vertex layout of one
// cube face. Corner offsets reproduce the standard unit cube so faces of
// adjacent voxels tile without gaps or T-junctions.
type faceSpec struct {
	neighbor [3]int
	normal   [3]float32
	corners  [4][3]float32
}

// Emission order is fixed: top, bottom, left, right, front, back.
var faces = [6]faceSpec{
	{[3]int{0, 1, 0}, [3]float32{0, 1, 0}, [4][3]float32{{0, 1, 1}, {0, 1, 0}, {1, 1, 0}, {1, 1, 1}}},
	{[3]int{0, -1, 0}, [3]float32{0, -1, 0}, [4][3]float32{{1, 0, 1}, {0, 0, 1}, {0, 0, 0}, {1, 0, 0}}},
	{[3]int{-1, 0, 0}, [3]float32{-1, 0, 0}, [4][3]float32{{0, 0, 1}, {0, 1, 1}, {0, 1, 0}, {0, 0, 0}}},
	{[3]int{1, 0, 0}, [3]float32{1, 0, 0}, [4][3]float32{{1, 0, 1}, {1, 1, 1}, {1, 1, 0}, {1, 0, 0}}},
	{[3]int{0, 0, 1}, [3]float32{0, 0, 1}, [4][3]float32{{0, 0, 1}, {0, 1, 1}, {1, 1, 1}, {1, 0, 1}}},
	{[3]int{0, 0, -1}, [3]float32{0, 0, -1}, [4][3]float32{{0, 0, 0}, {0, 1, 0}, {1, 1, 0}, {1, 0, 0}}},
}

// GenerateMesh converts the world's solid voxels into a triangle mesh,
// keeping only faces visible from outside. A face is suppressed exactly
// when its neighbor exists, is solid, and is not water: water never
// occludes, and a missing neighbor counts as exposed exterior. Chunks are
// walked in ascending coordinate order and voxels by id, so the output is
// stable for a given world.
func GenerateMesh(w *WorldGrid) *MeshData {
	view := BuildWorldView(w)
	mesh := &MeshData{}
	for _, pos := range w.ChunkPositions() {
		c := w.Chunk(pos)
		for i := range c.Voxels {
			v := &c.Voxels[i]
			if !v.Solid {
				continue
			}
			x, y, z := VoxelCoords(v.ID, c.Size, c.Height)
			p := VoxelPos{
				X: pos.X*c.Size + x,
				Y: pos.Y*c.Height + y,
				Z: pos.Z*c.Size + z,
			}
			emitVisibleFaces(mesh, view, p, v.Material)
		}
	}
	return mesh
}

// emitVisibleFaces appends the visible faces of the solid voxel at world
// coordinate p. Each emitted face adds 4 vertices and 6 indices; suppressed
// faces reserve no index space.
func emitVisibleFaces(mesh *MeshData, view *WorldView, p VoxelPos, mat Material) {
	color := mat.Color()
	for _, f := range faces {
		n, ok := view.VoxelAt(VoxelPos{X: p.X + f.neighbor[0], Y: p.Y + f.neighbor[1], Z: p.Z + f.neighbor[2]})
		if ok && n.Solid && n.Material != Water {
			continue
		}
		base := uint32(len(mesh.Vertices))
		for _, c := range f.corners {
			mesh.Vertices = append(mesh.Vertices, [3]float32{
				float32(p.X) + c[0],
				float32(p.Y) + c[1],
				float32(p.Z) + c[2],
			})
			mesh.Normals = append(mesh.Normals, f.normal)
			mesh.Colors = append(mesh.Colors, color)
		}
		mesh.Indices = append(mesh.Indices, base, base+1, base+2, base+2, base+3, base)
	}
}
