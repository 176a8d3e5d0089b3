package components

import (
	cfg "github.com/automoto/junglesiege/config"
	"github.com/yohamta/donburi"
)

// ResultsData is the final summary of a finished session.
type ResultsData struct {
	Outcome        cfg.PhaseID
	Title          string
	Score          int
	Round          int
	BossesDefeated int
	Best           int
	NewBest        bool
}

var Results = donburi.NewComponentType[ResultsData]()
