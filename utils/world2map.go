package utils

import "github.com/voxelsplace/terravox/terra"

// RunWorld2Map loads a TVOX snapshot and writes the per-voxel terrain map
// text dump (one "x,y,z,solid" line per voxel).
func RunWorld2Map(inPath, outPath string) error {
	w, err := terra.LoadWorldFile(inPath)
	if err != nil {
		return err
	}
	return terra.DumpTerrainMapFile(w, outPath)
}
