package main

import (
	"sync"
	"time"
)

const maxRuns = 200

// RunIdleTimeout is how long an unattached run lingers before the reaper
// stops it. Variable so tests can shorten it.
var RunIdleTimeout = 5 * time.Minute

// Run is one player's simulation plus bookkeeping for resume/reaping
type Run struct {
	ID       string
	Game     *Game
	lastSeen time.Time // guarded by the manager mutex
}

// RunManager creates, looks up and reaps runs
type RunManager struct {
	mu   sync.RWMutex
	runs map[string]*Run
}

// NewRunManager creates an empty RunManager
func NewRunManager() *RunManager {
	return &RunManager{runs: make(map[string]*Run)}
}

// CreateRun starts a new simulation. Returns nil if the limit is reached.
func (rm *RunManager) CreateRun() *Run {
	rm.mu.Lock()
	defer rm.mu.Unlock()

	if len(rm.runs) >= maxRuns {
		return nil
	}

	run := &Run{
		ID:       GenerateID(8),
		Game:     NewGame(),
		lastSeen: time.Now(),
	}
	rm.runs[run.ID] = run
	go run.Game.Run()
	return run
}

// GetRun returns a run by id
func (rm *RunManager) GetRun(id string) *Run {
	rm.mu.RLock()
	defer rm.mu.RUnlock()
	return rm.runs[id]
}

// Touch marks a run as recently used
func (rm *RunManager) Touch(id string) {
	rm.mu.Lock()
	defer rm.mu.Unlock()
	if run, ok := rm.runs[id]; ok {
		run.lastSeen = time.Now()
	}
}

// Detach drops c from a run if it is still the attached client; the
// simulation then suspends until the player resumes or the reaper
// collects it. A stale socket that was already replaced is a no-op.
func (rm *RunManager) Detach(id string, c Broadcaster) {
	rm.mu.Lock()
	run, ok := rm.runs[id]
	if ok {
		run.lastSeen = time.Now()
	}
	rm.mu.Unlock()
	if ok {
		run.Game.DetachClient(c)
	}
}

// Count returns the number of live runs
func (rm *RunManager) Count() int {
	rm.mu.RLock()
	defer rm.mu.RUnlock()
	return len(rm.runs)
}

// ReapIdle stops and removes runs that have been unattached too long
func (rm *RunManager) ReapIdle() {
	cutoff := time.Now().Add(-RunIdleTimeout)

	rm.mu.Lock()
	var doomed []*Run
	for id, run := range rm.runs {
		if !run.Game.HasClient() && run.lastSeen.Before(cutoff) {
			doomed = append(doomed, run)
			delete(rm.runs, id)
		}
	}
	rm.mu.Unlock()

	for _, run := range doomed {
		run.Game.Stop()
	}
}

// Janitor periodically reaps idle runs until stop is closed
func (rm *RunManager) Janitor(interval time.Duration, stop <-chan struct{}) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-ticker.C:
			rm.ReapIdle()
		case <-stop:
			return
		}
	}
}
