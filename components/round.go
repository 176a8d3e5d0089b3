package components

import (
	"time"

	cfg "github.com/automoto/junglesiege/config"
	"github.com/yohamta/donburi"
)

// SpawnEvent is one pending zombie spawn.
type SpawnEvent struct {
	At    time.Duration
	Speed float64
}

// RoundData holds the progression phase and the pending spawn schedule.
type RoundData struct {
	Phase      cfg.PhaseID
	PhaseSince time.Duration
	Queue      []SpawnEvent
}

var Round = donburi.NewComponentType[RoundData]()
