package main

import "time"

// HintDuration is how long a hint message stays on the HUD
const HintDuration = 3 * time.Second

// setHint replaces the current hint and restarts its display window.
// Re-triggering simply overwrites the deadline.
func (g *Game) setHint(text string) {
	g.hintText = text
	g.hintUntil = g.now().Add(HintDuration)
	g.pushEvent(Envelope{T: MsgHint, Data: HintMsg{Text: text}})
}

// currentHint returns the hint text while its window is open
func (g *Game) currentHint(now time.Time) string {
	if now.Before(g.hintUntil) {
		return g.hintText
	}
	return ""
}
