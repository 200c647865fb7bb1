package terra_test

import (
	"testing"

	"github.com/voxelsplace/terravox/terra"
)

func TestBuildWorldViewVisitsEveryVoxelOnce(t *testing.T) {
	cfg := smallConfig()
	w := terra.NewWorldGrid(3, cfg)
	w.GenerateTerrain(terra.ChunkPos{X: 2, Y: 2, Z: 1})

	view := terra.BuildWorldView(w)
	chunkVolume := cfg.ChunkSize * cfg.ChunkHeight * cfg.ChunkSize
	if want := 4 * chunkVolume; view.Len() != want {
		t.Fatalf("view has %d voxels, want %d", view.Len(), want)
	}
}

func TestWorldViewCoordinateTranslation(t *testing.T) {
	c := airChunk(4, 8)
	setVoxel(c, 1, 2, 3, terra.Dirt)

	w := singleChunkWorld(c)
	w.InsertChunk(terra.ChunkPos{X: 2, Y: 1, Z: -1}, c)

	view := terra.BuildWorldView(w)

	// Chunk at origin: world coordinate equals local coordinate.
	v, ok := view.VoxelAt(terra.VoxelPos{X: 1, Y: 2, Z: 3})
	if !ok || v.Material != terra.Dirt {
		t.Fatalf("voxel at (1,2,3) = %+v, %v", v, ok)
	}

	// Shifted chunk: world = chunkPos*dims + local.
	v, ok = view.VoxelAt(terra.VoxelPos{X: 2*4 + 1, Y: 1*8 + 2, Z: -1*4 + 3})
	if !ok || v.Material != terra.Dirt {
		t.Fatalf("voxel in shifted chunk = %+v, %v", v, ok)
	}

	if _, ok := view.VoxelAt(terra.VoxelPos{X: 100, Y: 0, Z: 0}); ok {
		t.Fatal("lookup outside generated terrain reported a voxel")
	}
}

func TestWorldViewBorrowsChunkVoxels(t *testing.T) {
	c := airChunk(2, 2)
	setVoxel(c, 0, 1, 0, terra.Stone)
	w := singleChunkWorld(c)

	view := terra.BuildWorldView(w)
	v, ok := view.VoxelAt(terra.VoxelPos{X: 0, Y: 1, Z: 0})
	if !ok {
		t.Fatal("voxel missing from view")
	}
	owned, _ := c.VoxelAt(0, 1, 0)
	if v != owned {
		t.Fatal("view copied the voxel instead of referencing the chunk's")
	}
}
