package main

import "time"

const (
	SonarEnergyCost = 20.0
	SonarCooldown   = 6 * time.Second
	SonarWindow     = 3 * time.Second
	SonarWindowLong = 5 * time.Second // with the long-range upgrade
)

// fireSonar starts a pulse if energy allows and the cooldown has elapsed
func (g *Game) fireSonar(now time.Time) {
	if now.Before(g.sonarReadyAt) || g.energy < SonarEnergyCost {
		return
	}
	g.energy -= SonarEnergyCost

	window := SonarWindow
	if g.upgrades.LongSonar {
		window = SonarWindowLong
	}
	g.sonarUntil = now.Add(window)
	g.sonarReadyAt = now.Add(SonarCooldown)
	g.setHint("Sonar pulse active")
}

// sonarActive reports whether a pulse window is still open
func (g *Game) sonarActive(now time.Time) bool {
	return now.Before(g.sonarUntil)
}

// sonarRemaining returns cooldown seconds left, zero when ready
func (g *Game) sonarRemaining(now time.Time) float64 {
	rem := g.sonarReadyAt.Sub(now).Seconds()
	if rem < 0 {
		return 0
	}
	return rem
}
