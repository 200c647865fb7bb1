package terra_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/voxelsplace/terravox/terra"
)

func TestDumpTerrainMapFormat(t *testing.T) {
	c := airChunk(2, 2)
	setVoxel(c, 0, 0, 0, terra.Stone)
	setVoxel(c, 1, 1, 1, terra.Water)
	w := singleChunkWorld(c)

	var buf bytes.Buffer
	if err := terra.DumpTerrainMap(&buf, w); err != nil {
		t.Fatalf("DumpTerrainMap: %v", err)
	}

	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	if len(lines) != 8 {
		t.Fatalf("got %d lines, want one per voxel (8)", len(lines))
	}

	// Sorted by coordinate, one "x,y,z,solid" line per voxel.
	want := []string{
		"0,0,0,true",
		"0,0,1,false",
		"0,1,0,false",
		"0,1,1,false",
		"1,0,0,false",
		"1,0,1,false",
		"1,1,0,false",
		"1,1,1,true",
	}
	for i, line := range lines {
		if line != want[i] {
			t.Fatalf("line %d = %q, want %q", i, line, want[i])
		}
	}
}

func TestDumpTerrainMapDeterministic(t *testing.T) {
	w := terra.NewWorldGrid(8, smallConfig())
	w.GenerateTerrain(terra.ChunkPos{X: 1, Y: 1, Z: 1})

	var a, b bytes.Buffer
	if err := terra.DumpTerrainMap(&a, w); err != nil {
		t.Fatalf("DumpTerrainMap: %v", err)
	}
	if err := terra.DumpTerrainMap(&b, w); err != nil {
		t.Fatalf("DumpTerrainMap: %v", err)
	}
	if !bytes.Equal(a.Bytes(), b.Bytes()) {
		t.Fatal("dump output differs between runs over the same world")
	}
}
