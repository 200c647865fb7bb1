package utils

import (
	"fmt"

	"github.com/voxelsplace/terravox/terra"
)

// RunWorldStats loads a TVOX snapshot and prints world and mesh figures.
func RunWorldStats(inPath string) error {
	w, err := terra.LoadWorldFile(inPath)
	if err != nil {
		return err
	}

	solid := 0
	for _, pos := range w.ChunkPositions() {
		solid += w.Chunk(pos).SolidCount()
	}
	mesh := terra.GenerateMesh(w)

	fmt.Printf("seed:        %d\n", w.Seed)
	fmt.Printf("chunks:      %d (%dx%d voxels each)\n", w.ChunkCount(), w.Config.ChunkSize, w.Config.ChunkHeight)
	fmt.Printf("solid:       %d voxels\n", solid)
	fmt.Printf("mesh:        %d faces, %d vertices, %d indices\n", mesh.FaceCount(), len(mesh.Vertices), len(mesh.Indices))
	fmt.Printf("fingerprint: %016x\n", terra.Fingerprint(w))
	return nil
}
