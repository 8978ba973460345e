package main

import "testing"

func TestDepthOffsetAtSurface(t *testing.T) {
	// depth=0, camera=0: world Y=0 lands on the screen anchor
	if got := DepthOffset(0, 0); got != 300 {
		t.Errorf("DepthOffset(0,0) = %f, want 300", got)
	}
}

func TestDepthOffsetComponents(t *testing.T) {
	if got := DepthOffset(1000, 0); got != -700 {
		t.Errorf("DepthOffset(1000,0) = %f, want -700", got)
	}
	if got := DepthOffset(1000, 50); got != -650 {
		t.Errorf("DepthOffset(1000,50) = %f, want -650", got)
	}
	if got := DepthOffset(0, -100); got != 200 {
		t.Errorf("DepthOffset(0,-100) = %f, want 200", got)
	}
}

func TestSurfaceEntityMeetsCraft(t *testing.T) {
	// Craft near screen Y 270, entity at world Y 0, depth 0: the entity's
	// screen Y is 300, inside the craft's vicinity
	sub := NewSubmarine()
	sub.ScreenY = 270

	entityScreenY := 0 + DepthOffset(0, 0)
	if entityScreenY != 300 {
		t.Fatalf("entity screen Y = %f, want 300", entityScreenY)
	}
	if entityScreenY < sub.ScreenY || entityScreenY > sub.ScreenY+SubHeight {
		t.Errorf("entity screen Y %f not within craft band [%f, %f]",
			entityScreenY, sub.ScreenY, sub.ScreenY+SubHeight)
	}
}

func TestRectOverlaps(t *testing.T) {
	a := Rect{X: 0, Y: 0, W: 10, H: 10}

	if !a.Overlaps(Rect{X: 5, Y: 5, W: 10, H: 10}) {
		t.Error("overlapping rects should overlap")
	}
	if a.Overlaps(Rect{X: 20, Y: 0, W: 10, H: 10}) {
		t.Error("separated rects should not overlap")
	}
	// Half-open intervals: touching edges do not overlap
	if a.Overlaps(Rect{X: 10, Y: 0, W: 10, H: 10}) {
		t.Error("edge-touching rects should not overlap")
	}
	if a.Overlaps(Rect{X: 0, Y: 10, W: 10, H: 10}) {
		t.Error("edge-touching rects should not overlap")
	}
	if !a.Overlaps(Rect{X: 9.999, Y: 9.999, W: 10, H: 10}) {
		t.Error("corner-overlapping rects should overlap")
	}
}

// Rendering and collision must translate world Y with the same formula.
func TestRenderCollisionFrameAgreement(t *testing.T) {
	depths := []float64{0, 5, 300, 2000, 10999}
	cameras := []float64{-100, -13.5, 0, 42, 100}

	e := &Entity{ID: 1, Kind: KindShark, X: 100, Y: 2100, W: 90, H: 44}
	for _, d := range depths {
		for _, cam := range cameras {
			offset := DepthOffset(d, cam)

			// Collision path: world hitbox shifted by offset
			collY := e.Hitbox().Y + offset
			// Rendering path: entity screen Y plus the hitbox fraction
			renderY := (e.Y + offset) + e.H*GetSpecies(e.Kind).Hitbox.OY

			if diff := collY - renderY; diff > 1e-9 || diff < -1e-9 {
				t.Fatalf("frames disagree at depth=%f cam=%f: collision %f render %f",
					d, cam, collY, renderY)
			}
		}
	}
}
