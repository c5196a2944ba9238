package renderer

import (
	"fmt"
	"time"
)

// RenderStats contains statistics about a finished render
type RenderStats struct {
	TotalPixels int           // Total number of pixels traced
	TotalTiles  int           // Number of tiles the image was split into
	NumWorkers  int           // Number of parallel workers
	MaxDepth    int           // Recursion budget for secondary rays
	Elapsed     time.Duration // Wall time of the render
}

// PixelsPerSecond returns the render throughput
func (s RenderStats) PixelsPerSecond() float64 {
	if s.Elapsed <= 0 {
		return 0
	}
	return float64(s.TotalPixels) / s.Elapsed.Seconds()
}

func (s RenderStats) String() string {
	return fmt.Sprintf("%d pixels in %d tiles, %d workers, depth %d, %v (%.0f px/s)",
		s.TotalPixels, s.TotalTiles, s.NumWorkers, s.MaxDepth, s.Elapsed.Round(time.Millisecond), s.PixelsPerSecond())
}
