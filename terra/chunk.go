package terra

import "fmt"

// ChunkPos addresses a chunk on the integer chunk grid.
type ChunkPos struct {
	X, Y, Z int
}

// VoxelPos addresses a single voxel in world space.
type VoxelPos struct {
	X, Y, Z int
}

// Voxel is the smallest addressable unit of the world. ID is the voxel's
// linear index inside its chunk (see VoxelID) and Solid caches whether the
// material is anything other than Air.
type Voxel struct {
	ID       int32
	Solid    bool
	Material Material
}

// VoxelID returns the linear index of local (x,y,z) inside a chunk of the
// given width and height: x-major, then y, then z.
func VoxelID(x, y, z, size, height int) int32 {
	return int32(x*height*size + y*size + z)
}

// VoxelCoords is the exact inverse of VoxelID. It panics when id is out of
// range for the declared dimensions; that only happens on a dimension
// mismatch and must not silently address the wrong voxel.
func VoxelCoords(id int32, size, height int) (x, y, z int) {
	if id < 0 || int(id) >= size*height*size {
		panic(fmt.Sprintf("terra: voxel id %d out of range for %dx%dx%d chunk", id, size, height, size))
	}
	i := int(id)
	x = i / (height * size)
	y = (i / size) % height
	z = i % size
	return x, y, z
}

// Chunk is a dense, fully populated block of Size*Height*Size voxels.
// Voxels[i].ID == i always holds. A chunk is never mutated after it is
// inserted into a WorldGrid.
type Chunk struct {
	Size   int
	Height int
	Voxels []Voxel
}

// VoxelAt returns the voxel at local (x,y,z). The second return is false
// for coordinates outside the chunk; callers treat that the same as air.
func (c *Chunk) VoxelAt(x, y, z int) (*Voxel, bool) {
	if x < 0 || x >= c.Size || y < 0 || y >= c.Height || z < 0 || z >= c.Size {
		return nil, false
	}
	return &c.Voxels[VoxelID(x, y, z, c.Size, c.Height)], true
}

// SolidCount reports how many voxels of the chunk would render.
func (c *Chunk) SolidCount() int {
	n := 0
	for i := range c.Voxels {
		if c.Voxels[i].Solid {
			n++
		}
	}
	return n
}
