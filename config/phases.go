package config

// PhaseID is the round progression state of a session.
type PhaseID int

const (
	PhaseSpawning PhaseID = iota
	PhaseWaveClear
	PhaseBossAnnounced
	PhaseBossActive
	PhaseBossDefeated
	PhaseVictory
	PhaseDefeat
)

var phaseNames = [...]string{
	PhaseSpawning:      "spawning",
	PhaseWaveClear:     "wave_clear",
	PhaseBossAnnounced: "boss_announced",
	PhaseBossActive:    "boss_active",
	PhaseBossDefeated:  "boss_defeated",
	PhaseVictory:       "victory",
	PhaseDefeat:        "defeat",
}

func (p PhaseID) String() string {
	if p < 0 || int(p) >= len(phaseNames) {
		return "unknown"
	}
	return phaseNames[p]
}

// Terminal reports whether no further gameplay happens in this phase.
func (p PhaseID) Terminal() bool {
	return p == PhaseVictory || p == PhaseDefeat
}

// Frozen reports whether field entities stop moving in this phase.
func (p PhaseID) Frozen() bool {
	return p == PhaseBossAnnounced || p.Terminal()
}
