package terra

// Material classifies what a voxel is made of. Air means the cell is empty:
// it is never solid and never contributes geometry.
type Material uint8

const (
	Air Material = iota
	Stone
	Dirt
	Grass
	Snow
	Water

	materialCount = 6
)

// Flat RGBA per material, used as the vertex color of every face the voxel
// emits. Water is the only translucent material.
var materialColors = [materialCount][4]float32{
	Air:   {0, 0, 0, 0},
	Stone: {0.5, 0.5, 0.5, 1},
	Dirt:  {0.5, 0.25, 0, 1},
	Grass: {0, 0.5, 0, 1},
	Snow:  {1, 1, 1, 1},
	Water: {0, 0, 1, 0.5},
}

// Color returns the flat RGBA color for the material.
func (m Material) Color() [4]float32 {
	return materialColors[m]
}

func (m Material) String() string {
	switch m {
	case Air:
		return "air"
	case Stone:
		return "stone"
	case Dirt:
		return "dirt"
	case Grass:
		return "grass"
	case Snow:
		return "snow"
	case Water:
		return "water"
	}
	return "unknown"
}
