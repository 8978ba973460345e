package main

import (
	"math"
	"testing"
)

func TestNewParticlesInsideViewport(t *testing.T) {
	ps := newParticles()
	if len(ps) != ParticleCount {
		t.Fatalf("expected %d particles, got %d", ParticleCount, len(ps))
	}
	for i, p := range ps {
		if p.BaseX < 0 || p.BaseX >= ViewportWidth || p.Y < 0 || p.Y >= ViewportHeight {
			t.Fatalf("particle %d spawned outside the viewport: (%f, %f)", i, p.BaseX, p.Y)
		}
		if p.VY <= 0 {
			t.Fatalf("particle %d should drift upward, VY = %f", i, p.VY)
		}
	}
}

func TestParticlesWrapVertically(t *testing.T) {
	g, _, _ := newTestGame()
	g.particles[0].Y = 0.1
	g.particles[0].VY = 30
	g.advanceParticles(0.1) // drops below 0, wraps
	if y := g.particles[0].Y; y < 0 || y >= ViewportHeight {
		t.Errorf("particle Y = %f, want wrapped into [0, %f)", y, ViewportHeight)
	}
}

func TestParticleSwayBounded(t *testing.T) {
	p := &Particle{BaseX: 400, Phase: 1.2}
	for tick := uint64(0); tick < 500; tick++ {
		if x := particleX(p, tick); math.Abs(x-400) > ParticleSwayAmp {
			t.Fatalf("sway %f exceeds amplitude at tick %d", x-400, tick)
		}
	}
}
