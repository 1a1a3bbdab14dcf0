package common

const (
	BaseWidth  = 1280
	BaseHeight = 720
	TargetFPS  = 60

	// TileSize is the edge length of one layout cell in world pixels.
	TileSize = 64
)
