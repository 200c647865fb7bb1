package terra

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"sort"
)

// DumpTerrainMap writes one "x,y,z,solid" line per voxel of the world.
// Lines are sorted by coordinate so the output is reproducible. This is a
// diagnostic format for eyeballing generation, not a stable interchange
// format; use TVOX snapshots for that.
func DumpTerrainMap(out io.Writer, w *WorldGrid) error {
	view := BuildWorldView(w)
	positions := make([]VoxelPos, 0, view.Len())
	for p := range view.voxels {
		positions = append(positions, p)
	}
	sort.Slice(positions, func(i, j int) bool {
		a, b := positions[i], positions[j]
		if a.X != b.X {
			return a.X < b.X
		}
		if a.Y != b.Y {
			return a.Y < b.Y
		}
		return a.Z < b.Z
	})

	bw := bufio.NewWriter(out)
	for _, p := range positions {
		v := view.voxels[p]
		if _, err := fmt.Fprintf(bw, "%d,%d,%d,%t\n", p.X, p.Y, p.Z, v.Solid); err != nil {
			return err
		}
	}
	return bw.Flush()
}

// DumpTerrainMapFile writes the terrain map to path.
func DumpTerrainMapFile(w *WorldGrid, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := DumpTerrainMap(f, w); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
