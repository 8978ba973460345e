package main

import "math"

const (
	ParticleCount   = 40
	ParticleSwayAmp = 6.0
	ParticleSway    = 0.02 // rad per tick
)

// Particle is ambient drifting debris. Pure decoration: screen frame,
// never collidable.
type Particle struct {
	BaseX float64
	Y     float64
	VY    float64
	Phase float64
	Size  float64
}

func newParticles() []Particle {
	ps := make([]Particle, ParticleCount)
	for i := range ps {
		ps[i] = Particle{
			BaseX: randFloat() * ViewportWidth,
			Y:     randFloat() * ViewportHeight,
			VY:    10 + randFloat()*30,
			Phase: randFloat() * math.Pi * 2,
			Size:  1 + randFloat()*3,
		}
	}
	return ps
}

// advanceParticles drifts particles upward with a tick-based horizontal
// sway; Y wraps modulo the viewport height.
func (g *Game) advanceParticles(dt float64) {
	for i := range g.particles {
		p := &g.particles[i]
		p.Y -= p.VY * dt
		if p.Y < 0 {
			p.Y += ViewportHeight
		}
	}
}

// particleX resolves the swayed screen X for the current tick
func particleX(p *Particle, tick uint64) float64 {
	return p.BaseX + math.Sin(float64(tick)*ParticleSway+p.Phase)*ParticleSwayAmp
}
