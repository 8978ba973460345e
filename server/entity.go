package main

import "math"

const (
	// Horizontal range outside which swimmers reverse direction
	BounceMargin = 150.0
	// Horizontal range outside which entities are culled
	CullMargin = 200.0
	// Vertical distance from current depth beyond which entities are culled
	CullRadius = 1200.0

	SwimWobbleFreq  = 2.0  // rad/s of elapsed run time
	SwimWobblePhase = 0.01 // rad per world X unit
	SwimWobbleAmp   = 28.0 // vertical px/s at wobble peak
)

// Kind tags every spawned world object
type Kind uint8

const (
	KindShark Kind = iota
	KindSquid
	KindAngler
	KindViper
	KindRock
	KindBubble
)

// String returns the compact wire tag for a kind
func (k Kind) String() string {
	switch k {
	case KindShark:
		return "shark"
	case KindSquid:
		return "squid"
	case KindAngler:
		return "angler"
	case KindViper:
		return "viper"
	case KindRock:
		return "rock"
	case KindBubble:
		return "bubble"
	}
	return "unknown"
}

// IsCreature reports whether the kind is a swimming predator
func (k Kind) IsCreature() bool {
	switch k {
	case KindShark, KindSquid, KindAngler, KindViper:
		return true
	}
	return false
}

// HitboxFrac shrinks a bounding box by fractions of width/height, trimming
// decorative extremities (tails, fins, tentacles) out of the collision shape.
type HitboxFrac struct {
	OX, OY float64 // offset as fraction of width/height
	FW, FH float64 // extent as fraction of width/height
}

// SpeciesDef holds the base stats for a kind before depth scaling
type SpeciesDef struct {
	Width  float64
	Height float64
	Speed  float64
	Health float64
	Damage float64 // hull damage on contact
	Hitbox HitboxFrac
	Glow   string // sonar glow color (hex), presentation hint
}

// fullBox is the fallback hitbox for kinds missing a species entry
var fullBox = HitboxFrac{OX: 0, OY: 0, FW: 1, FH: 1}

// Species is the closed lookup table keyed by kind
var Species = map[Kind]SpeciesDef{
	KindShark: {
		Width: 90, Height: 44, Speed: 80, Health: 40, Damage: 25,
		Hitbox: HitboxFrac{OX: 0.12, OY: 0.20, FW: 0.74, FH: 0.55},
		Glow:   "#6fd3ff",
	},
	KindSquid: {
		Width: 64, Height: 70, Speed: 55, Health: 30, Damage: 18,
		Hitbox: HitboxFrac{OX: 0.16, OY: 0.08, FW: 0.68, FH: 0.62},
		Glow:   "#c98fff",
	},
	KindAngler: {
		Width: 70, Height: 52, Speed: 45, Health: 50, Damage: 30,
		Hitbox: HitboxFrac{OX: 0.10, OY: 0.16, FW: 0.78, FH: 0.62},
		Glow:   "#9dff8f",
	},
	KindViper: {
		Width: 96, Height: 30, Speed: 95, Health: 25, Damage: 22,
		Hitbox: HitboxFrac{OX: 0.20, OY: 0.24, FW: 0.60, FH: 0.52},
		Glow:   "#ffd36f",
	},
	KindRock: {
		Width: 80, Height: 64, Speed: 0, Health: 0, Damage: 15,
		Hitbox: HitboxFrac{OX: 0.06, OY: 0.06, FW: 0.88, FH: 0.88},
		Glow:   "#a0a0a0",
	},
	KindBubble: {
		Width: 28, Height: 28, Speed: 30, Health: 0, Damage: 0,
		Hitbox: HitboxFrac{OX: 0.10, OY: 0.10, FW: 0.80, FH: 0.80},
		Glow:   "#ffffff",
	},
}

// GetSpecies returns the definition for a kind, degrading to a full
// bounding box for unknown kinds instead of failing.
func GetSpecies(k Kind) SpeciesDef {
	if def, ok := Species[k]; ok {
		return def
	}
	return SpeciesDef{Hitbox: fullBox}
}

// Entity is a spawned world object: creature, obstacle or collectible.
// Position is authored in the world frame; the world frame scrolls under
// the screen-fixed submarine as depth increases.
type Entity struct {
	ID        uint64
	Kind      Kind
	X, Y      float64 // world frame, top-left
	W, H      float64
	VX, VY    float64
	Health    float64
	Speed     float64
	Visible   bool    // sonar pulse active, presentation only
	SpawnedAt float64 // run-elapsed seconds at creation
}

// Update integrates one tick of entity motion. elapsed is run-elapsed
// wall-clock seconds, used by the swim wobble.
func (e *Entity) Update(dt, elapsed float64) {
	e.X += e.VX * dt
	e.Y += e.VY * dt

	// Swimmers wobble and turn around at the extended horizontal edges.
	// Rocks and bubbles don't swim: once past the edges they drift on and
	// get culled instead.
	if e.Kind.IsCreature() {
		e.Y += math.Sin(elapsed*SwimWobbleFreq+e.X*SwimWobblePhase) * SwimWobbleAmp * dt

		if e.X < -BounceMargin {
			e.X = -BounceMargin
			e.VX = -e.VX
		} else if e.X > ViewportWidth+BounceMargin {
			e.X = ViewportWidth + BounceMargin
			e.VX = -e.VX
		}
	}
}

// Hitbox returns the world-frame collision rect after the per-kind
// fractional shrink. Pure function of kind and current bounds.
func (e *Entity) Hitbox() Rect {
	hb := GetSpecies(e.Kind).Hitbox
	return Rect{
		X: e.X + e.W*hb.OX,
		Y: e.Y + e.H*hb.OY,
		W: e.W * hb.FW,
		H: e.H * hb.FH,
	}
}

// Offscreen reports whether the entity left the live region around the
// current depth and should be culled.
func (e *Entity) Offscreen(depth float64) bool {
	if e.X < -CullMargin || e.X > ViewportWidth+CullMargin {
		return true
	}
	return math.Abs(e.Y-depth) > CullRadius
}
