package api

import (
	"bytes"
	"fmt"

	"github.com/qmuntal/gltf"

	"github.com/voxelsplace/terravox/terra"
	"github.com/voxelsplace/terravox/utils"
)

// In-memory counterparts of the CLI operations, for embedding and wasm use:
// everything is bytes in, bytes out.

// GenerateWorld generates an sx*sy*sz-chunk world from seed and returns it
// as TVOX snapshot bytes.
func GenerateWorld(seed uint64, sx, sy, sz int) ([]byte, error) {
	if sx <= 0 || sy <= 0 || sz <= 0 {
		return nil, fmt.Errorf("world size must be positive on every axis (got %dx%dx%d)", sx, sy, sz)
	}
	w := terra.NewWorldGrid(seed, terra.DefaultConfig())
	w.GenerateTerrain(terra.ChunkPos{X: sx, Y: sy, Z: sz})
	return terra.SaveWorld(w)
}

// WorldToGLB meshes a TVOX snapshot and returns binary glTF bytes.
func WorldToGLB(snapshot []byte) ([]byte, error) {
	w, err := terra.LoadWorld(snapshot)
	if err != nil {
		return nil, err
	}
	mesh := terra.GenerateMesh(w)
	doc := utils.BuildGLBDocument(mesh)

	var out bytes.Buffer
	enc := gltf.NewEncoder(&out)
	enc.AsBinary = true
	if err := enc.Encode(doc); err != nil {
		return nil, err
	}
	return out.Bytes(), nil
}

// WorldToTerrainMap renders a TVOX snapshot as the per-voxel text dump.
func WorldToTerrainMap(snapshot []byte) ([]byte, error) {
	w, err := terra.LoadWorld(snapshot)
	if err != nil {
		return nil, err
	}
	var out bytes.Buffer
	if err := terra.DumpTerrainMap(&out, w); err != nil {
		return nil, err
	}
	return out.Bytes(), nil
}

// WorldFingerprint returns the content hash of a TVOX snapshot's chunks.
func WorldFingerprint(snapshot []byte) (uint64, error) {
	w, err := terra.LoadWorld(snapshot)
	if err != nil {
		return 0, err
	}
	return terra.Fingerprint(w), nil
}
