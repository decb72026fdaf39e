package road

// Default road dimensions, in pixels.
const (
	DefaultSegmentWidth  = 160
	DefaultSegmentHeight = 10
	DefaultCurveSpeed    = 5.0 // max horizontal drift between consecutive segments
	DefaultScrollSpeed   = 2.0 // pixels per tick
)

// SegmentCount returns how many segments are needed to cover a screen of the
// given height with one spare for recycling.
func SegmentCount(screenHeight, segmentHeight int) int {
	if segmentHeight <= 0 {
		return 0
	}
	return screenHeight/segmentHeight + 1
}
