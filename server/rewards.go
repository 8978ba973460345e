package main

// Upgrade identifies a permanent (per-run) hull improvement
type Upgrade int

const (
	UpgradeNone Upgrade = iota
	UpgradeHullPlating
	UpgradeOxygenRecycler
	UpgradeLongSonar
)

const (
	HullPlatingFactor    = 0.8 // damage multiplier with plating
	OxygenRecyclerFactor = 0.6 // oxygen decay multiplier with recycler
)

// RewardDef is a one-shot unlock keyed by a depth threshold
type RewardDef struct {
	ID      string
	Depth   float64
	Name    string
	Oxygen  float64
	Score   int
	Upgrade Upgrade
}

// DepthRewards fire once per run, in threshold order
var DepthRewards = []RewardDef{
	{ID: "twilight", Depth: 2000, Name: "Twilight Zone", Oxygen: 20, Score: 100, Upgrade: UpgradeHullPlating},
	{ID: "midnight", Depth: 4000, Name: "Midnight Zone", Oxygen: 20, Score: 150, Upgrade: UpgradeOxygenRecycler},
	{ID: "abyss", Depth: 6000, Name: "Abyssal Zone", Oxygen: 25, Score: 200, Upgrade: UpgradeLongSonar},
}

// Upgrades tracks which hull improvements this run has unlocked
type Upgrades struct {
	HullPlating    bool
	OxygenRecycler bool
	LongSonar      bool
}

func (u *Upgrades) apply(up Upgrade) {
	switch up {
	case UpgradeHullPlating:
		u.HullPlating = true
	case UpgradeOxygenRecycler:
		u.OxygenRecycler = true
	case UpgradeLongSonar:
		u.LongSonar = true
	}
}

// checkDepthRewards claims every threshold the current depth has crossed.
// Each reward fires at most once per run even if one tick overshoots
// several thresholds.
func (g *Game) checkDepthRewards() {
	for _, def := range DepthRewards {
		if g.depth < def.Depth || g.claimed[def.ID] {
			continue
		}
		g.claimed[def.ID] = true
		g.oxygen = Clamp(g.oxygen+def.Oxygen, 0, ResourceMax)
		g.score += def.Score
		g.upgrades.apply(def.Upgrade)

		g.pushEvent(Envelope{T: MsgReward, Data: RewardMsg{
			ID:     def.ID,
			Name:   def.Name,
			Oxygen: def.Oxygen,
			Score:  def.Score,
		}})
		g.setHint(def.Name + " reached")
	}
}
