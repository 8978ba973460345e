package main

import (
	"log"
	"sort"
	"sync"
	"time"

	"github.com/vmihailenco/msgpack/v5"
)

const (
	TickRate       = 60 // simulation ticks per second
	BroadcastRate  = 30 // state snapshots per second
	TickDuration   = time.Second / TickRate
	BroadcastEvery = TickRate / BroadcastRate

	// MaxTickDelta bounds integration error from long pauses
	// (backgrounded tabs, stalled timers)
	MaxTickDelta = 0.016 // seconds

	MaxDepth     = 11000.0
	DepthPerTick = 5.0

	ResourceMax      = 100.0
	ResourceInterval = 500 * time.Millisecond
	OxygenDecay      = 0.4
	EnergyRegen      = 2.0

	CameraEase = 0.1 // fraction of remaining gap per tick

	BubbleOxygen = 15.0
	BubbleScore  = 25
	VictoryBonus = 2500
)

// Game over reasons, in terminal-check priority order
const (
	ReasonVictory = "max depth reached"
	ReasonOxygen  = "oxygen depleted"
	ReasonHull    = "hull destroyed"
)

// Menu identifiers; an open menu suspends stepping without ending the run
const (
	MenuMissions = "missions"
	MenuUpgrades = "upgrades"
)

// Broadcaster pushes messages to the rendering client
type Broadcaster interface {
	SendJSON(msg interface{})
	SendBinary(data []byte)
}

// Game owns the whole state of one run. All mutation happens inside a
// tick while the mutex is held; clients only ever see post-tick snapshots.
type Game struct {
	mu  sync.Mutex
	now func() time.Time // injected clock, all deadlines compare against it

	client  Broadcaster
	stop    chan struct{}
	running bool

	tick      uint64
	startedAt time.Time
	lastStep  time.Time

	sub       *Submarine
	entities  map[uint64]*Entity
	nextID    uint64
	particles []Particle

	depth  float64
	score  int
	oxygen float64
	energy float64
	health float64

	keys         KeySet
	prevKeys     KeySet
	cameraTarget float64
	camera       float64
	debug        bool
	menu         string

	over       bool
	overReason string

	sonarUntil   time.Time
	sonarReadyAt time.Time

	creatureCD *cooldownTable
	obstacleCD *cooldownTable

	depthSinceSpawn float64
	nextSpawnAt     float64

	claimed  map[string]bool
	upgrades Upgrades

	hintText  string
	hintUntil time.Time

	nextResourceAt time.Time

	events []Envelope
}

// NewGame creates a fresh run using the wall clock
func NewGame() *Game {
	g := &Game{
		now:  time.Now,
		stop: make(chan struct{}),
	}
	g.reset(g.now())
	return g
}

// reset reinitializes all owned state; used at construction and on restart
func (g *Game) reset(now time.Time) {
	g.tick = 0
	g.startedAt = now
	g.lastStep = now

	g.sub = NewSubmarine()
	g.entities = make(map[uint64]*Entity)
	g.nextID = 0
	g.particles = newParticles()

	g.depth = 0
	g.score = 0
	g.oxygen = ResourceMax
	g.energy = ResourceMax
	g.health = ResourceMax

	g.keys = KeySet{}
	g.prevKeys = KeySet{}
	g.cameraTarget = 0
	g.camera = 0
	g.debug = false
	g.menu = ""

	g.over = false
	g.overReason = ""

	g.sonarUntil = time.Time{}
	g.sonarReadyAt = now

	g.creatureCD = newCooldownTable()
	g.obstacleCD = newCooldownTable()

	g.depthSinceSpawn = 0
	g.nextSpawnAt = nextSpawnGap()

	g.claimed = make(map[string]bool)
	g.upgrades = Upgrades{}

	g.hintText = ""
	g.hintUntil = time.Time{}

	g.nextResourceAt = now.Add(ResourceInterval)
	g.events = nil
}

// Run starts the tick loop
func (g *Game) Run() {
	g.mu.Lock()
	g.running = true
	g.mu.Unlock()

	ticker := time.NewTicker(TickDuration)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			g.update()
		case <-g.stop:
			return
		}
	}
}

// Stop terminates the tick loop
func (g *Game) Stop() {
	g.mu.Lock()
	defer g.mu.Unlock()
	if g.running {
		g.running = false
		close(g.stop)
	}
}

// SetClient attaches (or detaches, with nil) the rendering client.
// An unattached run does not advance.
func (g *Game) SetClient(client Broadcaster) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.client = client
}

// DetachClient clears the client only if c is still the attached one.
// A stale socket closing after a resume must not suspend the run out
// from under the client that took over.
func (g *Game) DetachClient(c Broadcaster) {
	g.mu.Lock()
	defer g.mu.Unlock()
	if g.client == c {
		g.client = nil
	}
}

// HasClient reports whether a rendering client is attached
func (g *Game) HasClient() bool {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.client != nil
}

// HandleInput replaces the held key set and camera target for next ticks
func (g *Game) HandleInput(keys KeySet, cameraTarget float64) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.keys = keys
	g.cameraTarget = Clamp(cameraTarget, -CameraOffsetMax, CameraOffsetMax)
}

// Restart reinitializes the run
func (g *Game) Restart() {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.reset(g.now())
}

// update runs one tick: input edges, the simulation step when not
// suspended, then event and snapshot delivery.
func (g *Game) update() {
	g.mu.Lock()
	defer g.mu.Unlock()

	now := g.now()
	dt := now.Sub(g.lastStep).Seconds()
	if dt > MaxTickDelta {
		dt = MaxTickDelta
	}
	if dt < 0 {
		dt = 0
	}
	g.lastStep = now
	g.tick++

	g.handleToggles(now)

	if !g.over && g.menu == "" && g.client != nil {
		g.step(dt, now)
	}

	if g.client == nil {
		g.events = nil
		return
	}
	for _, ev := range g.events {
		g.client.SendJSON(ev)
	}
	g.events = nil

	if g.tick%BroadcastEvery == 0 {
		data, err := msgpack.Marshal(g.snapshot(now))
		if err != nil {
			log.Printf("snapshot marshal: %v", err)
			return
		}
		g.client.SendBinary(data)
	}
}

// handleToggles applies edge-triggered keys: menus, debug, sonar.
// Menu keys work while a menu is open; everything else waits.
func (g *Game) handleToggles(now time.Time) {
	k, p := g.keys, g.prevKeys
	g.prevKeys = g.keys

	if g.over {
		return
	}
	if k.MenuMissions && !p.MenuMissions {
		g.menu = MenuMissions
	}
	if k.MenuUpgrades && !p.MenuUpgrades {
		g.menu = MenuUpgrades
	}
	if k.MenuClose && !p.MenuClose {
		g.menu = ""
	}
	if g.menu != "" {
		return
	}
	if k.Debug && !p.Debug {
		g.debug = !g.debug
	}
	if k.Sonar && !p.Sonar {
		g.fireSonar(now)
	}
}

// step advances the simulation by dt seconds. Order matters and mirrors
// the per-tick contract: craft motion and world scroll, descent and
// rewards, particles, resource cadence, entity motion, cull, collisions,
// spawn, terminal check.
func (g *Game) step(dt float64, now time.Time) {
	// 1. Craft motion; the returned scroll shifts every entity's world Y
	scroll := g.sub.Advance(g.keys, dt)
	if scroll != 0 {
		for _, e := range g.entities {
			e.Y += scroll
		}
	}
	g.camera += (g.cameraTarget - g.camera) * CameraEase

	// 2. Descent and one-shot depth rewards
	if g.keys.Down && g.depth < MaxDepth {
		prev := g.depth
		g.depth = Clamp(g.depth+DepthPerTick, 0, MaxDepth)
		g.depthSinceSpawn += g.depth - prev
		g.checkDepthRewards()
	}

	// 3. Decorative particles
	g.advanceParticles(dt)

	// 4. Throttled resource cadence
	if !now.Before(g.nextResourceAt) {
		decay := OxygenDecay
		if g.upgrades.OxygenRecycler {
			decay *= OxygenRecyclerFactor
		}
		g.oxygen = Clamp(g.oxygen-decay, 0, ResourceMax)
		g.energy = Clamp(g.energy+EnergyRegen, 0, ResourceMax)
		g.nextResourceAt = now.Add(ResourceInterval)
	}

	// 5. Entity motion and sonar visibility
	elapsed := now.Sub(g.startedAt).Seconds()
	sonarOn := g.sonarActive(now)
	for _, e := range g.entities {
		e.Update(dt, elapsed)
		e.Visible = sonarOn
	}

	// 6. Cull pass: collect first, remove once
	var gone []uint64
	for id, e := range g.entities {
		if e.Offscreen(g.depth) {
			gone = append(gone, id)
		}
	}
	for _, id := range gone {
		delete(g.entities, id)
	}

	// 7. Collisions per category
	g.collisionPass(now)

	// 8. Procedural spawn
	g.spawnPass()

	// 9. Terminal conditions
	g.checkTerminal()
}

// collisionPass runs the engine against creatures, then obstacles, then
// collectibles, each with its own cooldown policy, and applies outcomes.
func (g *Game) collisionPass(now time.Time) {
	var creatures, rocks, bubbles []*Entity
	for _, e := range g.entities {
		switch {
		case e.Kind.IsCreature():
			creatures = append(creatures, e)
		case e.Kind == KindRock:
			rocks = append(rocks, e)
		case e.Kind == KindBubble:
			bubbles = append(bubbles, e)
		}
	}

	var removed []uint64

	for _, e := range DetectCollisions(g.sub, creatures, g.depth, g.camera, g.creatureCD, now) {
		dmg := GetSpecies(e.Kind).Damage
		if g.upgrades.HullPlating {
			dmg *= HullPlatingFactor
		}
		g.health = Clamp(g.health-dmg, 0, ResourceMax)
		removed = append(removed, e.ID)
		g.pushEvent(Envelope{T: MsgCollision, Data: CollisionMsg{
			EntityID: e.ID, Kind: e.Kind.String(), Damage: dmg,
		}})
	}

	// Rocks persist; the cooldown keeps a lingering overlap from draining
	// the hull every tick
	for _, e := range DetectCollisions(g.sub, rocks, g.depth, g.camera, g.obstacleCD, now) {
		dmg := GetSpecies(KindRock).Damage
		if g.upgrades.HullPlating {
			dmg *= HullPlatingFactor
		}
		g.health = Clamp(g.health-dmg, 0, ResourceMax)
		g.pushEvent(Envelope{T: MsgCollision, Data: CollisionMsg{
			EntityID: e.ID, Kind: e.Kind.String(), Damage: dmg,
		}})
	}

	for _, e := range DetectCollisions(g.sub, bubbles, g.depth, g.camera, nil, now) {
		g.oxygen = Clamp(g.oxygen+BubbleOxygen, 0, ResourceMax)
		g.score += BubbleScore
		removed = append(removed, e.ID)
		g.pushEvent(Envelope{T: MsgCollision, Data: CollisionMsg{
			EntityID: e.ID, Kind: e.Kind.String(), Oxygen: BubbleOxygen, Score: BubbleScore,
		}})
	}

	for _, id := range removed {
		delete(g.entities, id)
	}
}

// checkTerminal ends the run on the first satisfied condition.
// Victory outranks suffocation outranks hull loss.
func (g *Game) checkTerminal() {
	if g.over {
		return
	}
	switch {
	case g.depth >= MaxDepth:
		g.score += VictoryBonus
		g.endRun(ReasonVictory)
	case g.oxygen <= 0:
		g.endRun(ReasonOxygen)
	case g.health <= 0:
		g.endRun(ReasonHull)
	}
}

func (g *Game) endRun(reason string) {
	g.over = true
	g.overReason = reason
	log.Printf("run over: %s (score %d, depth %.0f)", reason, g.score, g.depth)
	g.pushEvent(Envelope{T: MsgGameOver, Data: GameOverMsg{
		Reason: reason,
		Score:  g.score,
		Depth:  g.depth,
	}})
}

// pushEvent queues a discrete event for delivery after the tick
func (g *Game) pushEvent(ev Envelope) {
	g.events = append(g.events, ev)
}

// allocID hands out the next unique entity id; ids are never reused
// within a run
func (g *Game) allocID() uint64 {
	g.nextID++
	return g.nextID
}

func (g *Game) addEntity(e *Entity) {
	g.entities[e.ID] = e
}

func (g *Game) countKind(k Kind) int {
	n := 0
	for _, e := range g.entities {
		if e.Kind == k {
			n++
		}
	}
	return n
}

// elapsed returns run-elapsed seconds on the injected clock
func (g *Game) elapsed() float64 {
	return g.now().Sub(g.startedAt).Seconds()
}

// snapshot assembles the read-only broadcast state. Entity positions are
// translated to the screen frame with the same DepthOffset the collision
// engine used this tick.
func (g *Game) snapshot(now time.Time) Snapshot {
	offset := DepthOffset(g.depth, g.camera)

	ents := make([]EntityState, 0, len(g.entities))
	for _, e := range g.entities {
		ents = append(ents, EntityState{
			ID:   e.ID,
			Kind: e.Kind.String(),
			X:    round1(e.X),
			Y:    round1(e.Y + offset),
			W:    round1(e.W),
			H:    round1(e.H),
			Vis:  e.Visible,
			Glow: GetSpecies(e.Kind).Glow,
		})
	}
	sort.Slice(ents, func(i, j int) bool { return ents[i].ID < ents[j].ID })

	parts := make([]ParticleState, len(g.particles))
	for i := range g.particles {
		p := &g.particles[i]
		parts[i] = ParticleState{
			X:    round1(particleX(p, g.tick)),
			Y:    round1(p.Y),
			Size: p.Size,
		}
	}

	return Snapshot{
		Tick:      g.tick,
		Depth:     round1(g.depth),
		Score:     g.score,
		Oxygen:    round1(g.oxygen),
		Energy:    round1(g.energy),
		Health:    round1(g.health),
		SonarCD:   round1(g.sonarRemaining(now)),
		SonarOn:   g.sonarActive(now),
		Camera:    round1(g.camera),
		Debug:     g.debug,
		Menu:      g.menu,
		Hint:      g.currentHint(now),
		Over:      g.over,
		Sub:       SubState{X: round1(g.sub.ScreenX), Y: round1(g.sub.ScreenY), R: round1(g.sub.Rotation)},
		Entities:  ents,
		Particles: parts,
	}
}
