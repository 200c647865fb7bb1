package terra

// Config carries the terrain constants of a world. Values are plain numbers;
// the core reads no flags or environment variables.
type Config struct {
	ChunkSize   int     // voxels per horizontal chunk axis
	ChunkHeight int     // voxels per vertical chunk axis
	HeightScale float64 // world units the normalized noise value maps onto
	SeaLevel    int     // columns at or below this fill with water
	SnowLine    int     // surface voxels at or above this render as snow
	DirtDepth   int     // dirt layer thickness below the surface
}

// DefaultConfig returns the standard world constants. HeightScale is paired
// with ChunkHeight so a full-strength noise column tops out exactly at the
// chunk ceiling.
func DefaultConfig() Config {
	return Config{
		ChunkSize:   32,
		ChunkHeight: 64,
		HeightScale: 64,
		SeaLevel:    30,
		SnowLine:    40,
		DirtDepth:   10,
	}
}
