package main

import "encoding/json"

// Client -> Server message types
const (
	MsgHello   = "hello"   // open (or resume) a run
	MsgInput   = "input"   // held key set + camera target
	MsgRestart = "restart" // reinitialize the run after game over
)

// Server -> Client message types
const (
	MsgWelcome   = "welcome"
	MsgState     = "state" // binary msgpack Snapshot, not an envelope
	MsgCollision = "hit"
	MsgReward    = "reward"
	MsgHint      = "hint"
	MsgGameOver  = "gameover"
	MsgError     = "error"
)

// Logical key identifiers accepted in input messages. Wire tags are
// shortened from the client-side action names: fire-sonar -> sonar,
// debug-toggle -> debug, menu-missions/upgrades/close -> missions,
// upgrades, close.
const (
	KeyLeft         = "left"
	KeyRight        = "right"
	KeyUp           = "up"
	KeyDown         = "down"
	KeySonar        = "sonar"
	KeyDebug        = "debug"
	KeyMenuMissions = "missions"
	KeyMenuUpgrades = "upgrades"
	KeyMenuClose    = "close"
)

// Envelope wraps all outgoing JSON messages with a type field
type Envelope struct {
	T    string      `json:"t"`
	Data interface{} `json:"d,omitempty"`
}

// InEnvelope is used for incoming messages — json.RawMessage avoids double-unmarshal
type InEnvelope struct {
	T string          `json:"t"`
	D json.RawMessage `json:"d,omitempty"`
}

// HelloMsg opens a run; a token from a previous welcome resumes it
type HelloMsg struct {
	Token string `json:"tok,omitempty"`
}

// WelcomeMsg confirms the run and carries the resume token
type WelcomeMsg struct {
	RunID    string  `json:"rid"`
	Token    string  `json:"tok"`
	Viewport [2]int  `json:"vp"`
	MaxDepth float64 `json:"maxd"`
}

// InputMsg is the held key set plus the camera offset target
type InputMsg struct {
	Keys   []string `json:"k"`
	Camera float64  `json:"cam"`
}

// KeySet is the decoded per-tick input state owned by the simulation
type KeySet struct {
	Left, Right, Up, Down bool
	Sonar                 bool
	Debug                 bool
	MenuMissions          bool
	MenuUpgrades          bool
	MenuClose             bool
}

// DecodeKeys converts a key identifier list into a KeySet,
// silently ignoring unknown identifiers
func DecodeKeys(keys []string) KeySet {
	var ks KeySet
	for _, k := range keys {
		switch k {
		case KeyLeft:
			ks.Left = true
		case KeyRight:
			ks.Right = true
		case KeyUp:
			ks.Up = true
		case KeyDown:
			ks.Down = true
		case KeySonar:
			ks.Sonar = true
		case KeyDebug:
			ks.Debug = true
		case KeyMenuMissions:
			ks.MenuMissions = true
		case KeyMenuUpgrades:
			ks.MenuUpgrades = true
		case KeyMenuClose:
			ks.MenuClose = true
		}
	}
	return ks
}

// Binary input frame: [0x01, bitsLo, bitsHi, camera]
// bit 0..8 = left, right, up, down, sonar, debug, missions, upgrades, close;
// camera is a signed byte in [-100, 100]
const binaryInputFrame = 0x01

// DecodeBinaryInput unpacks the compact 4-byte input frame
func DecodeBinaryInput(msg []byte) (KeySet, float64, bool) {
	if len(msg) != 4 || msg[0] != binaryInputFrame {
		return KeySet{}, 0, false
	}
	bits := uint16(msg[1]) | uint16(msg[2])<<8
	ks := KeySet{
		Left:         bits&(1<<0) != 0,
		Right:        bits&(1<<1) != 0,
		Up:           bits&(1<<2) != 0,
		Down:         bits&(1<<3) != 0,
		Sonar:        bits&(1<<4) != 0,
		Debug:        bits&(1<<5) != 0,
		MenuMissions: bits&(1<<6) != 0,
		MenuUpgrades: bits&(1<<7) != 0,
		MenuClose:    bits&(1<<8) != 0,
	}
	cam := float64(int8(msg[3]))
	return ks, Clamp(cam, -CameraOffsetMax, CameraOffsetMax), true
}

// SubState is the craft portion of a snapshot (screen frame)
type SubState struct {
	X float64 `json:"x" msgpack:"x"`
	Y float64 `json:"y" msgpack:"y"`
	R float64 `json:"r" msgpack:"r"` // lean, degrees
}

// EntityState is one world object, already translated to the screen frame
// with the same DepthOffset the collision engine uses
type EntityState struct {
	ID   uint64  `json:"id" msgpack:"id"`
	Kind string  `json:"k" msgpack:"k"`
	X    float64 `json:"x" msgpack:"x"`
	Y    float64 `json:"y" msgpack:"y"`
	W    float64 `json:"w" msgpack:"w"`
	H    float64 `json:"h" msgpack:"h"`
	Vis  bool    `json:"v" msgpack:"v"`
	Glow string  `json:"g,omitempty" msgpack:"g,omitempty"`
}

// ParticleState is one decorative drift particle (screen frame)
type ParticleState struct {
	X    float64 `json:"x" msgpack:"x"`
	Y    float64 `json:"y" msgpack:"y"`
	Size float64 `json:"s" msgpack:"s"`
}

// Snapshot is the full read-only state broadcast, msgpack-encoded
type Snapshot struct {
	Tick      uint64          `json:"tick" msgpack:"tick"`
	Depth     float64         `json:"d" msgpack:"d"`
	Score     int             `json:"sc" msgpack:"sc"`
	Oxygen    float64         `json:"o2" msgpack:"o2"`
	Energy    float64         `json:"en" msgpack:"en"`
	Health    float64         `json:"hp" msgpack:"hp"`
	SonarCD   float64         `json:"scd" msgpack:"scd"` // seconds until ready
	SonarOn   bool            `json:"son" msgpack:"son"`
	Camera    float64         `json:"cam" msgpack:"cam"`
	Debug     bool            `json:"dbg" msgpack:"dbg"`
	Menu      string          `json:"menu,omitempty" msgpack:"menu,omitempty"`
	Hint      string          `json:"hint,omitempty" msgpack:"hint,omitempty"`
	Over      bool            `json:"over" msgpack:"over"`
	Sub       SubState        `json:"sub" msgpack:"sub"`
	Entities  []EntityState   `json:"e" msgpack:"e"`
	Particles []ParticleState `json:"pt" msgpack:"pt"`
}

// CollisionMsg reports one scored collision and its applied outcome
type CollisionMsg struct {
	EntityID uint64  `json:"id"`
	Kind     string  `json:"k"`
	Damage   float64 `json:"dmg,omitempty"`
	Oxygen   float64 `json:"o2,omitempty"`
	Score    int     `json:"sc,omitempty"`
}

// RewardMsg announces a one-shot depth reward
type RewardMsg struct {
	ID     string  `json:"id"`
	Name   string  `json:"name"`
	Oxygen float64 `json:"o2"`
	Score  int     `json:"sc"`
}

// HintMsg carries a transient HUD message
type HintMsg struct {
	Text string `json:"txt"`
}

// GameOverMsg ends the run with its reason and frozen score
type GameOverMsg struct {
	Reason string  `json:"reason"`
	Score  int     `json:"score"`
	Depth  float64 `json:"depth"`
}

// ErrorMsg sends an error to the client
type ErrorMsg struct {
	Msg string `json:"msg"`
}
