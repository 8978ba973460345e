package main

const (
	ViewportWidth  = 800.0
	ViewportHeight = 600.0

	// ScreenAnchor is the screen Y where world Y=0 lands at depth 0.
	ScreenAnchor = 300.0

	CameraOffsetMax = 100.0
)

// DepthOffset converts world-frame Y to screen-frame Y: screenY = worldY + offset.
// Every consumer that compares a world Y against a screen Y must go through this
// function — rendering and collision share it so they can never disagree.
func DepthOffset(depth, cameraOffset float64) float64 {
	return -depth + ScreenAnchor + cameraOffset
}

// Rect is an axis-aligned box. X, Y is the top-left corner.
type Rect struct {
	X, Y, W, H float64
}

// Overlaps reports AABB overlap using half-open intervals: edge-touching
// rectangles do not overlap.
func (r Rect) Overlaps(o Rect) bool {
	return r.X < o.X+o.W && r.X+r.W > o.X &&
		r.Y < o.Y+o.H && r.Y+r.H > o.Y
}
