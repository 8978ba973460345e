package main

const (
	SubWidth  = 84.0
	SubHeight = 48.0

	// CenterY anchors the hull's resting screen Y; the sonar scenario pins
	// the hull center to the screen anchor: 270 + 48/2 ≈ 300 - 6
	SubCenterY     = 270.0
	SubMaxVertical = 150.0

	SubMoveSpeed = 240.0 // px/s horizontal, world scroll px/s vertical

	SubRotStep  = 1.0  // degrees of lean added per tick while steering
	SubRotMax   = 15.0 // lean clamp, degrees
	SubRotDecay = 0.9  // target lean multiplier per tick when idle
	SubRotEase  = 0.1  // fraction of remaining gap applied per tick

	// Hitbox as fractions of the hull bounds, excluding fins and prop
	subHitOX = 0.15
	subHitOY = 0.25
	subHitFW = 0.70
	subHitFH = 0.50
)

// Submarine is the player craft. It lives in the screen frame and never
// scrolls; vertical motion is expressed as world scroll instead.
type Submarine struct {
	ScreenX, ScreenY float64
	Rotation         float64 // degrees, eased visual lean
	TargetRotation   float64
}

// NewSubmarine creates the craft at its resting position
func NewSubmarine() *Submarine {
	return &Submarine{
		ScreenX: ViewportWidth/2 - SubWidth/2,
		ScreenY: SubCenterY,
	}
}

// Reset returns the craft to its initial position and lean
func (s *Submarine) Reset() {
	s.ScreenX = ViewportWidth/2 - SubWidth/2
	s.ScreenY = SubCenterY
	s.Rotation = 0
	s.TargetRotation = 0
}

// Advance moves the craft one tick and returns the world scroll delta the
// caller must add to every live entity's world Y. Positive when ascending:
// the world slides down past the screen-fixed hull.
func (s *Submarine) Advance(keys KeySet, dt float64) float64 {
	speed := SubMoveSpeed * dt

	steering := false
	if keys.Left {
		s.ScreenX -= speed
		s.TargetRotation = Clamp(s.TargetRotation-SubRotStep, -SubRotMax, SubRotMax)
		steering = true
	}
	if keys.Right {
		s.ScreenX += speed
		s.TargetRotation = Clamp(s.TargetRotation+SubRotStep, -SubRotMax, SubRotMax)
		steering = true
	}
	if !steering {
		s.TargetRotation *= SubRotDecay
	}
	s.ScreenX = Clamp(s.ScreenX, 0, ViewportWidth-SubWidth)

	// Critically damped-looking lean, not physically exact
	s.Rotation += (s.TargetRotation - s.Rotation) * SubRotEase

	// Down is evaluated after up and wins when both are held,
	// matching the original key-order behavior
	var scroll float64
	if keys.Up {
		s.ScreenY -= speed / 2
		scroll = speed
	}
	if keys.Down {
		s.ScreenY += speed / 2
		scroll = -speed
	}
	s.ScreenY = Clamp(s.ScreenY, SubCenterY-SubMaxVertical, SubCenterY+SubMaxVertical)

	return scroll
}

// Hitbox returns the screen-frame collision rect of the hull
func (s *Submarine) Hitbox() Rect {
	return Rect{
		X: s.ScreenX + SubWidth*subHitOX,
		Y: s.ScreenY + SubHeight*subHitOY,
		W: SubWidth * subHitFW,
		H: SubHeight * subHitFH,
	}
}

// Center returns the screen-frame center of the hull
func (s *Submarine) Center() (float64, float64) {
	return s.ScreenX + SubWidth/2, s.ScreenY + SubHeight/2
}
