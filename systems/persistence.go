package systems

import (
	"encoding/json"
	"fmt"

	"github.com/charmbracelet/log"
	"github.com/quasilyte/gdata"
)

const bestScoreKey = "best_score"

// ScoreStore is the slice of gdata.Manager the game needs.
type ScoreStore interface {
	LoadItem(itemKey string) ([]byte, error)
	SaveItem(itemKey string, data []byte) error
}

// SavedScores is the JSON document stored under best_score
type SavedScores struct {
	BestScore int `json:"bestScore"`
}

// InitPersistence opens the platform save location. Callers keep running
// with a nil store when it fails.
func InitPersistence() (ScoreStore, error) {
	m, err := gdata.Open(gdata.Config{
		AppName: "junglesiege",
	})
	if err != nil {
		return nil, fmt.Errorf("open save data: %w", err)
	}
	return m, nil
}

// LoadBestScore returns the stored best score. A missing store, a missing
// item or unreadable data all count as 0.
func LoadBestScore(store ScoreStore) int {
	if store == nil {
		return 0
	}

	data, err := store.LoadItem(bestScoreKey)
	if err != nil {
		log.Warn("Could not load best score", "err", err)
		return 0
	}
	if data == nil {
		return 0
	}

	var saved SavedScores
	if err := json.Unmarshal(data, &saved); err != nil {
		log.Warn("Could not parse best score", "err", err)
		return 0
	}
	return saved.BestScore
}

// RecordScore writes score only when it beats the stored best and returns
// the best score after the update.
func RecordScore(store ScoreStore, score int) (best int, newBest bool) {
	best = LoadBestScore(store)
	if score <= best {
		return best, false
	}
	if store == nil {
		return score, true
	}

	data, err := json.Marshal(SavedScores{BestScore: score})
	if err != nil {
		log.Warn("Could not serialize best score", "err", err)
		return score, true
	}
	if err := store.SaveItem(bestScoreKey, data); err != nil {
		log.Warn("Could not save best score", "err", err)
	}
	log.Info("New best score", "score", score, "previous", best)
	return score, true
}
