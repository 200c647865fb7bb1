package utils

import (
	"fmt"
	"math/rand"
	"strconv"

	"github.com/voxelsplace/terravox/terra"
)

// ParseSeed interprets a CLI seed argument. "random" draws a fresh 64-bit
// seed; anything else must be a decimal uint64.
func ParseSeed(arg string) (uint64, error) {
	if arg == "random" {
		return rand.Uint64(), nil
	}
	seed, err := strconv.ParseUint(arg, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid seed %q: %w", arg, err)
	}
	return seed, nil
}

// RunGenerateWorld generates an sx*sy*sz-chunk world from the given seed
// argument and writes it to outPath as a TVOX snapshot.
func RunGenerateWorld(seedArg string, sx, sy, sz int, outPath string) error {
	if sx <= 0 || sy <= 0 || sz <= 0 {
		return fmt.Errorf("world size must be positive on every axis (got %dx%dx%d)", sx, sy, sz)
	}
	seed, err := ParseSeed(seedArg)
	if err != nil {
		return err
	}

	w := terra.NewWorldGrid(seed, terra.DefaultConfig())
	solid := w.GenerateTerrain(terra.ChunkPos{X: sx, Y: sy, Z: sz})
	fmt.Printf("seed %d: %d chunks, %d solid voxels\n", seed, w.ChunkCount(), solid)

	return terra.SaveWorldFile(w, outPath)
}
