package main

import "time"

// CooldownDuration suppresses repeat scored collisions per entity id
const CooldownDuration = 100 * time.Millisecond

// cooldownTable maps entity ids to the deadline until which they are
// exempt from re-triggering a collision. Expired entries purge lazily.
type cooldownTable struct {
	until map[uint64]time.Time
}

func newCooldownTable() *cooldownTable {
	return &cooldownTable{until: make(map[uint64]time.Time)}
}

// Active reports whether id is still inside its suppression window.
// An expired entry is dropped and re-arms the id.
func (t *cooldownTable) Active(id uint64, now time.Time) bool {
	deadline, ok := t.until[id]
	if !ok {
		return false
	}
	if now.Before(deadline) {
		return true
	}
	delete(t.until, id)
	return false
}

// Arm stamps id with a fresh suppression deadline
func (t *cooldownTable) Arm(id uint64, now time.Time) {
	t.until[id] = now.Add(CooldownDuration)
}

// Sweep drops all expired entries
func (t *cooldownTable) Sweep(now time.Time) {
	for id, deadline := range t.until {
		if !now.Before(deadline) {
			delete(t.until, id)
		}
	}
}

// DetectCollisions tests the submarine against a set of entities in the
// screen frame. Entity world hitboxes are translated with the same
// DepthOffset the renderer uses, so the two can never disagree.
//
// Entities inside their cooldown window are skipped; each hit is armed
// before being reported. A nil table disables gating — collectibles take
// that path because the caller removes them on first contact anyway.
func DetectCollisions(sub *Submarine, entities []*Entity, depth, cameraOffset float64, cd *cooldownTable, now time.Time) []*Entity {
	subBox := sub.Hitbox()
	offset := DepthOffset(depth, cameraOffset)

	var hits []*Entity
	for _, e := range entities {
		if cd != nil && cd.Active(e.ID, now) {
			continue
		}
		box := e.Hitbox()
		box.Y += offset
		if subBox.Overlaps(box) {
			if cd != nil {
				cd.Arm(e.ID, now)
			}
			hits = append(hits, e)
		}
	}
	return hits
}
