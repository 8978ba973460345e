package main

const (
	// Creature waves trigger on accumulated descent, jittered per wave
	SpawnGapMin = 350.0
	SpawnGapMax = 650.0

	// Wave size grows with depth, capped
	SpawnCountMax   = 3
	SpawnCountDepth = 4000.0 // +1 creature per this much depth

	// Rocks and bubbles are independent low-probability per-tick events
	RockChance   = 0.004
	BubbleChance = 0.006
	MaxRocks     = 6
	MaxBubbles   = 8

	// Vertical placement below the visible region, in world units past depth
	spawnNearY = 350.0
	spawnFarY  = 850.0

	BubbleRiseMin = 20.0
	BubbleRiseMax = 45.0
)

var creatureKinds = [...]Kind{KindShark, KindSquid, KindAngler, KindViper}

// depthMultiplier scales creature size, speed and health with depth
func depthMultiplier(depth float64) float64 {
	return 1 + depth/MaxDepth
}

// newCreature builds a predator of the given kind placed below the
// visible region, swimming horizontally with a slight vertical drift.
func newCreature(id uint64, kind Kind, depth, elapsed float64) *Entity {
	def := GetSpecies(kind)
	mult := depthMultiplier(depth)

	e := &Entity{
		ID:        id,
		Kind:      kind,
		W:         def.Width * mult,
		H:         def.Height * mult,
		Speed:     def.Speed * mult,
		Health:    def.Health * mult,
		SpawnedAt: elapsed,
	}
	e.X = randFloat() * (ViewportWidth - e.W)
	e.Y = depth + spawnNearY + randFloat()*(spawnFarY-spawnNearY)
	e.VX = e.Speed
	if randFloat() < 0.5 {
		e.VX = -e.VX
	}
	e.VY = (randFloat() - 0.5) * 10
	return e
}

// newRock builds a static obstacle; it only moves with the world scroll
func newRock(id uint64, depth, elapsed float64) *Entity {
	def := GetSpecies(KindRock)
	scale := 0.7 + randFloat()*0.8
	e := &Entity{
		ID:        id,
		Kind:      KindRock,
		W:         def.Width * scale,
		H:         def.Height * scale,
		SpawnedAt: elapsed,
	}
	e.X = randFloat() * (ViewportWidth - e.W)
	e.Y = depth + spawnNearY + randFloat()*(spawnFarY-spawnNearY)
	return e
}

// newBubble builds an oxygen bubble rising toward the surface
func newBubble(id uint64, depth, elapsed float64) *Entity {
	def := GetSpecies(KindBubble)
	e := &Entity{
		ID:        id,
		Kind:      KindBubble,
		W:         def.Width,
		H:         def.Height,
		SpawnedAt: elapsed,
	}
	e.X = randFloat() * (ViewportWidth - e.W)
	e.Y = depth + spawnNearY + randFloat()*(spawnFarY-spawnNearY)
	e.VY = -(BubbleRiseMin + randFloat()*(BubbleRiseMax-BubbleRiseMin))
	return e
}

// nextSpawnGap returns a jittered descent threshold for the next wave
func nextSpawnGap() float64 {
	return SpawnGapMin + randFloat()*(SpawnGapMax-SpawnGapMin)
}

// spawnPass runs the per-tick procedural spawn rules
func (g *Game) spawnPass() {
	elapsed := g.elapsed()

	// Creature wave once enough descent has accumulated
	if g.depthSinceSpawn >= g.nextSpawnAt {
		count := 1 + int(g.depth/SpawnCountDepth)
		if count > SpawnCountMax {
			count = SpawnCountMax
		}
		for i := 0; i < count; i++ {
			kind := creatureKinds[int(randFloat()*float64(len(creatureKinds)))%len(creatureKinds)]
			g.addEntity(newCreature(g.allocID(), kind, g.depth, elapsed))
		}
		g.depthSinceSpawn = 0
		g.nextSpawnAt = nextSpawnGap()
	}

	if g.countKind(KindRock) < MaxRocks && randFloat() < RockChance {
		g.addEntity(newRock(g.allocID(), g.depth, elapsed))
	}
	if g.countKind(KindBubble) < MaxBubbles && randFloat() < BubbleChance {
		g.addEntity(newBubble(g.allocID(), g.depth, elapsed))
	}
}
