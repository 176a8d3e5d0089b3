package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEmbeddedRoster(t *testing.T) {
	require.Len(t, Roster, 3)
	assert.Equal(t, "Colonel Kurtz", Roster[0].Name)
	assert.Equal(t, 10, Roster[0].Health)
	assert.Equal(t, 10, Roster[0].TriggerKills)
	assert.Equal(t, "Mallet Melissa", Roster[2].Name)
	assert.Equal(t, 2.4, Roster[2].Speed)
}

func TestParseRosterRejectsInvalidEntries(t *testing.T) {
	tests := []struct {
		name string
		yaml string
	}{
		{"empty", "bosses: []"},
		{"missing name", "bosses:\n  - {width: 10, height: 10, health: 1, speed: 1, trigger_kills: 1}"},
		{"zero health", "bosses:\n  - {name: a, width: 10, height: 10, health: 0, speed: 1, trigger_kills: 1}"},
		{"negative size", "bosses:\n  - {name: a, width: -1, height: 10, health: 1, speed: 1, trigger_kills: 1}"},
		{"no trigger", "bosses:\n  - {name: a, width: 10, height: 10, health: 1, speed: 1}"},
		{"not yaml", "bosses: [:"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseRoster([]byte(tt.yaml))
			assert.Error(t, err)
		})
	}
}

func TestIntroLineFallsBackToDefault(t *testing.T) {
	b := BossDef{Name: "x"}
	assert.Equal(t, Boss.DefaultLine, b.IntroLine())
	b.Line = "hello"
	assert.Equal(t, "hello", b.IntroLine())
}

func TestLoadRosterFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "roster.yaml")
	data := "bosses:\n  - {name: Solo, width: 100, height: 120, health: 5, speed: 1.2, trigger_kills: 3}\n"
	require.NoError(t, os.WriteFile(path, []byte(data), 0o644))

	roster, err := LoadRosterFile(path)
	require.NoError(t, err)
	require.Len(t, roster, 1)
	assert.Equal(t, "Solo", roster[0].Name)

	_, err = LoadRosterFile(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}

func TestPhaseString(t *testing.T) {
	assert.Equal(t, "boss_active", PhaseBossActive.String())
	assert.Equal(t, "unknown", PhaseID(99).String())
	assert.True(t, PhaseDefeat.Terminal())
	assert.True(t, PhaseBossAnnounced.Frozen())
	assert.False(t, PhaseSpawning.Frozen())
}
