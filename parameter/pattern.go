package parameter

import "time"

// Pattern memory
const (
	PatternBudget  = 15 * time.Second
	PatternLength  = 4
	PatternShowOn  = 600 * time.Millisecond
	PatternShowGap = 200 * time.Millisecond

	// 3x3 tile grid numbered 1-9 left to right, top to bottom
	PatternGridSize   = 3
	PatternTileWidth  = 8
	PatternTileHeight = 4
	PatternTileGap    = 1
)
