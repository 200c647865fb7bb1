package terra

import "sort"

// WorldGrid owns every generated chunk of one world plus the seed that all
// terrain noise derives from. Absence of a chunk means "not generated",
// not "empty air".
type WorldGrid struct {
	Seed   uint64
	Config Config

	noise  *NoiseGenerator
	chunks map[ChunkPos]*Chunk
}

// NewWorldGrid creates an empty world. The seed is explicit so callers and
// tests can reproduce a world exactly.
func NewWorldGrid(seed uint64, cfg Config) *WorldGrid {
	return &WorldGrid{
		Seed:   seed,
		Config: cfg,
		noise:  NewNoiseGenerator(seed),
		chunks: make(map[ChunkPos]*Chunk),
	}
}

// Chunk returns the chunk at pos, or nil when that region was never generated.
func (w *WorldGrid) Chunk(pos ChunkPos) *Chunk {
	return w.chunks[pos]
}

// ChunkCount reports how many chunks have been generated.
func (w *WorldGrid) ChunkCount() int {
	return len(w.chunks)
}

// ChunkPositions returns all generated chunk coordinates in ascending
// (x, y, z) order, so iteration over the map stays reproducible.
func (w *WorldGrid) ChunkPositions() []ChunkPos {
	out := make([]ChunkPos, 0, len(w.chunks))
	for pos := range w.chunks {
		out = append(out, pos)
	}
	sort.Slice(out, func(i, j int) bool {
		a, b := out[i], out[j]
		if a.X != b.X {
			return a.X < b.X
		}
		if a.Y != b.Y {
			return a.Y < b.Y
		}
		return a.Z < b.Z
	})
	return out
}

// InsertChunk places c at pos, replacing any chunk already there.
func (w *WorldGrid) InsertChunk(pos ChunkPos, c *Chunk) {
	w.chunks[pos] = c
}

// HeightAt returns the terrain surface height for world column (x, z).
// Three noise octaves at world-unit dividers 16/32/64 with weights
// 0.5/0.25/0.25 are summed, remapped from [-1,1] to [0,1], scaled, and
// truncated. Depends only on the column and the world seed.
func (w *WorldGrid) HeightAt(wx, wz int) int {
	const freq = 0.3
	fx, fz := float64(wx), float64(wz)
	n := w.noise.Noise2D(fx/16*freq, fz/16*freq)*0.5 +
		w.noise.Noise2D(fx/32*freq, fz/32*freq)*0.25 +
		w.noise.Noise2D(fx/64*freq, fz/64*freq)*0.25
	// Simplex output is only approximately bounded; clamp before remapping
	// so the height always lands in [0, HeightScale].
	if n < -1 {
		n = -1
	} else if n > 1 {
		n = 1
	}
	return int((n + 1) / 2 * w.Config.HeightScale)
}

// MaterialFor classifies the voxel at world height wy in a column whose
// surface sits at h. The order of the checks is load-bearing: snow wins
// over grass on any surface at or above the snow line.
func (w *WorldGrid) MaterialFor(wy, h int) Material {
	cfg := w.Config
	switch {
	case wy >= cfg.SnowLine && wy <= h:
		return Snow
	case wy == h:
		return Grass
	case wy > h-cfg.DirtDepth && wy <= h:
		return Dirt
	case wy > 0 && wy <= h:
		return Stone
	case wy <= cfg.SeaLevel && wy > h:
		return Water
	default:
		return Air
	}
}

// Heightmap samples the surface height of every column of the chunk at pos.
// Index layout is x*ChunkSize + z.
func (w *WorldGrid) Heightmap(pos ChunkPos) []int {
	s := w.Config.ChunkSize
	hm := make([]int, s*s)
	for x := 0; x < s; x++ {
		for z := 0; z < s; z++ {
			hm[x*s+z] = w.HeightAt(pos.X*s+x, pos.Z*s+z)
		}
	}
	return hm
}

// GenerateChunk builds the fully populated chunk at pos. The chunk is not
// inserted into the grid.
func (w *WorldGrid) GenerateChunk(pos ChunkPos) *Chunk {
	s, h := w.Config.ChunkSize, w.Config.ChunkHeight
	hm := w.Heightmap(pos)
	c := &Chunk{Size: s, Height: h, Voxels: make([]Voxel, s*h*s)}
	for x := 0; x < s; x++ {
		for y := 0; y < h; y++ {
			for z := 0; z < s; z++ {
				id := VoxelID(x, y, z, s, h)
				mat := w.MaterialFor(pos.Y*h+y, hm[x*s+z])
				c.Voxels[id] = Voxel{ID: id, Solid: mat != Air, Material: mat}
			}
		}
	}
	return c
}

// GenerateTerrain generates one chunk for every coordinate in [0,size) on
// each axis and inserts it. Returns the total solid voxel count, which is
// informational only.
func (w *WorldGrid) GenerateTerrain(size ChunkPos) int {
	solid := 0
	for z := 0; z < size.Z; z++ {
		for x := 0; x < size.X; x++ {
			for y := 0; y < size.Y; y++ {
				pos := ChunkPos{X: x, Y: y, Z: z}
				c := w.GenerateChunk(pos)
				solid += c.SolidCount()
				w.InsertChunk(pos, c)
			}
		}
	}
	return solid
}
