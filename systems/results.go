package systems

import (
	"github.com/automoto/junglesiege/components"
	cfg "github.com/automoto/junglesiege/config"
	"github.com/charmbracelet/log"
	"github.com/yohamta/donburi/ecs"
)

// FinalizeResults summarises a finished session, records the best score
// and attaches the summary to the session entry. Calling it again returns
// the stored summary without touching the store.
func FinalizeResults(e *ecs.ECS, store ScoreStore) components.ResultsData {
	entry := components.Session.MustFirst(e.World)
	if entry.HasComponent(components.Results) {
		return *components.Results.Get(entry)
	}

	s := components.Session.Get(entry)
	res := components.ResultsData{
		Outcome:        Phase(e),
		Score:          s.Score,
		Round:          s.Round,
		BossesDefeated: s.BossIndex,
	}
	res.Title = resultTitle(res.Outcome, s.RosterExhausted())
	res.Best, res.NewBest = RecordScore(store, s.Score)

	entry.AddComponent(components.Results)
	components.Results.SetValue(entry, res)

	log.Info("Session finished",
		"outcome", res.Outcome,
		"score", res.Score,
		"round", res.Round,
		"bosses", res.BossesDefeated,
		"kills", s.Kills,
		"best", res.Best,
	)
	return res
}

func resultTitle(outcome cfg.PhaseID, rosterDone bool) string {
	switch {
	case outcome == cfg.PhaseVictory && rosterDone:
		return cfg.GameOver.FinalTitle
	case outcome == cfg.PhaseVictory:
		return cfg.GameOver.VictoryTitle
	default:
		return cfg.GameOver.DefeatTitle
	}
}
