package terra

// WorldView is a read-only projection of every voxel in a WorldGrid, keyed
// by world coordinate. It borrows the chunks' voxels rather than copying
// them, and must be rebuilt whenever the grid's chunks change.
type WorldView struct {
	voxels map[VoxelPos]*Voxel
}

// BuildWorldView visits every voxel of every chunk exactly once and maps
// its world coordinate to the owning chunk's voxel. The world coordinate is
// chunkPos*chunkDims + local; with non-overlapping chunk partitioning no
// two voxels can land on the same key.
func BuildWorldView(w *WorldGrid) *WorldView {
	view := &WorldView{voxels: make(map[VoxelPos]*Voxel)}
	for pos, c := range w.chunks {
		for i := range c.Voxels {
			v := &c.Voxels[i]
			x, y, z := VoxelCoords(v.ID, c.Size, c.Height)
			view.voxels[VoxelPos{
				X: pos.X*c.Size + x,
				Y: pos.Y*c.Height + y,
				Z: pos.Z*c.Size + z,
			}] = v
		}
	}
	return view
}

// VoxelAt returns the voxel at world coordinate p. The second return is
// false when the coordinate lies outside generated terrain.
func (v *WorldView) VoxelAt(p VoxelPos) (*Voxel, bool) {
	vox, ok := v.voxels[p]
	return vox, ok
}

// Len reports the number of voxels in the view.
func (v *WorldView) Len() int {
	return len(v.voxels)
}
