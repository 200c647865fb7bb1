package terra_test

import (
	"testing"

	"github.com/voxelsplace/terravox/terra"
)

func TestVoxelIDRoundTrip(t *testing.T) {
	dims := []struct{ size, height int }{
		{2, 2},
		{4, 3},
		{8, 16},
		{32, 64},
	}
	for _, d := range dims {
		for x := 0; x < d.size; x++ {
			for y := 0; y < d.height; y++ {
				for z := 0; z < d.size; z++ {
					id := terra.VoxelID(x, y, z, d.size, d.height)
					gx, gy, gz := terra.VoxelCoords(id, d.size, d.height)
					if gx != x || gy != y || gz != z {
						t.Fatalf("dims %dx%d: (%d,%d,%d) -> id %d -> (%d,%d,%d)",
							d.size, d.height, x, y, z, id, gx, gy, gz)
					}
				}
			}
		}
	}
}

func TestVoxelIDIsDense(t *testing.T) {
	// Every id in [0, size*height*size) must be hit exactly once.
	const size, height = 4, 6
	seen := make(map[int32]bool)
	for x := 0; x < size; x++ {
		for y := 0; y < height; y++ {
			for z := 0; z < size; z++ {
				id := terra.VoxelID(x, y, z, size, height)
				if seen[id] {
					t.Fatalf("id %d assigned twice", id)
				}
				seen[id] = true
			}
		}
	}
	if len(seen) != size*height*size {
		t.Fatalf("got %d distinct ids, want %d", len(seen), size*height*size)
	}
}

func TestVoxelCoordsPanicsOutOfRange(t *testing.T) {
	for _, id := range []int32{-1, 2 * 2 * 2, 100} {
		func() {
			defer func() {
				if recover() == nil {
					t.Errorf("VoxelCoords(%d, 2, 2) did not panic", id)
				}
			}()
			terra.VoxelCoords(id, 2, 2)
		}()
	}
}

func TestChunkVoxelAtBounds(t *testing.T) {
	c := airChunk(4, 8)
	setVoxel(c, 1, 2, 3, terra.Stone)

	v, ok := c.VoxelAt(1, 2, 3)
	if !ok || v.Material != terra.Stone || !v.Solid {
		t.Fatalf("VoxelAt(1,2,3) = %+v, %v", v, ok)
	}

	outside := [][3]int{
		{-1, 0, 0}, {4, 0, 0},
		{0, -1, 0}, {0, 8, 0},
		{0, 0, -1}, {0, 0, 4},
	}
	for _, p := range outside {
		if v, ok := c.VoxelAt(p[0], p[1], p[2]); ok || v != nil {
			t.Errorf("VoxelAt(%v) = %+v, %v, want nil, false", p, v, ok)
		}
	}
}

func TestChunkSolidCount(t *testing.T) {
	c := airChunk(2, 2)
	if n := c.SolidCount(); n != 0 {
		t.Fatalf("empty chunk SolidCount = %d", n)
	}
	setVoxel(c, 0, 0, 0, terra.Stone)
	setVoxel(c, 1, 1, 1, terra.Water)
	setVoxel(c, 0, 1, 0, terra.Air)
	if n := c.SolidCount(); n != 2 {
		t.Fatalf("SolidCount = %d, want 2", n)
	}
}
