package components

import (
	"math/rand"
	"time"

	cfg "github.com/automoto/junglesiege/config"
	"github.com/yohamta/donburi"
)

// ComboState tracks the rolling kill streak.
type ComboState struct {
	Count    int
	LastKill time.Duration
	HasKill  bool
	Frames   int // ticks the streak caption stays on screen
}

// SessionData is the single owner of a game's scalar stats, clock and
// random source. Every system reaches it through the world instead of
// package globals.
type SessionData struct {
	Active bool
	Now    time.Duration
	Rand   *rand.Rand

	Width  float64
	Height float64

	Health int
	Ammo   int
	Score  int
	Round  int
	Kills  int

	Roster      []cfg.BossDef
	BossIndex   int
	BossTrigger int

	ShieldUntil time.Duration
	Combo       ComboState
}

// ShieldActive reports whether incoming damage is absorbed right now.
func (s *SessionData) ShieldActive() bool {
	return s.Now < s.ShieldUntil
}

// FieldBottom is the y coordinate of the top edge of the HUD bar.
func (s *SessionData) FieldBottom() float64 {
	return s.Height - cfg.HUD.BarHeight
}

// RosterExhausted reports whether every boss has been beaten.
func (s *SessionData) RosterExhausted() bool {
	return s.BossIndex >= len(s.Roster)
}

// Elapsed returns the simulated time since t.
func (s *SessionData) Elapsed(t time.Duration) time.Duration {
	return s.Now - t
}

var Session = donburi.NewComponentType[SessionData]()
