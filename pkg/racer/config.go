package racer

import "github.com/golangdaddy/racer/pkg/road"

// Config holds the tuning constants of a session.
type Config struct {
	ScreenWidth   int
	ScreenHeight  int
	PlayerSpeed   float64 // pixels per tick per pressed direction
	SegmentWidth  int
	SegmentHeight int
	CurveSpeed    float64
	ScrollSpeed   float64
	Seed          int64 // 0 picks a time-based seed
}

// DefaultConfig returns the classic tuning.
func DefaultConfig() Config {
	return Config{
		ScreenWidth:   800,
		ScreenHeight:  600,
		PlayerSpeed:   5,
		SegmentWidth:  road.DefaultSegmentWidth,
		SegmentHeight: road.DefaultSegmentHeight,
		CurveSpeed:    road.DefaultCurveSpeed,
		ScrollSpeed:   road.DefaultScrollSpeed,
	}
}

// SegmentCount returns the size of the circular road array.
func (c Config) SegmentCount() int {
	return road.SegmentCount(c.ScreenHeight, c.SegmentHeight)
}

// SpawnPoint returns where the car starts.
func (c Config) SpawnPoint() (float64, float64) {
	return float64(c.ScreenWidth) / 2, float64(c.ScreenHeight) - 150
}
