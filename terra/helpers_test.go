package terra_test

import "github.com/voxelsplace/terravox/terra"

// airChunk builds a fully populated all-air chunk of the given dimensions.
func airChunk(size, height int) *terra.Chunk {
	c := &terra.Chunk{Size: size, Height: height, Voxels: make([]terra.Voxel, size*height*size)}
	for i := range c.Voxels {
		c.Voxels[i] = terra.Voxel{ID: int32(i)}
	}
	return c
}

// setVoxel overwrites the voxel at local (x,y,z) with the given material.
func setVoxel(c *terra.Chunk, x, y, z int, m terra.Material) {
	id := terra.VoxelID(x, y, z, c.Size, c.Height)
	c.Voxels[id] = terra.Voxel{ID: id, Solid: m != terra.Air, Material: m}
}

// singleChunkWorld wraps a hand-built chunk in a one-chunk world at origin.
func singleChunkWorld(c *terra.Chunk) *terra.WorldGrid {
	cfg := terra.Config{
		ChunkSize:   c.Size,
		ChunkHeight: c.Height,
		HeightScale: float64(c.Height),
		SeaLevel:    0,
		SnowLine:    1 << 20,
		DirtDepth:   1,
	}
	w := terra.NewWorldGrid(1, cfg)
	w.InsertChunk(terra.ChunkPos{}, c)
	return w
}
