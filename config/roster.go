package config

import (
	_ "embed"
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

//go:embed roster.yaml
var defaultRosterYAML []byte

// BossDef describes one boss in the roster. Sprite, projectile and backdrop
// are asset keys; the game renders placeholders when they are missing.
type BossDef struct {
	Name         string  `yaml:"name"`
	Sprite       string  `yaml:"sprite"`
	Width        float64 `yaml:"width"`
	Height       float64 `yaml:"height"`
	Health       int     `yaml:"health"`
	Speed        float64 `yaml:"speed"`
	Projectile   string  `yaml:"projectile"`
	Backdrop     string  `yaml:"backdrop"`
	TriggerKills int     `yaml:"trigger_kills"`
	Line         string  `yaml:"line"`
}

type rosterFile struct {
	Bosses []BossDef `yaml:"bosses"`
}

// Roster is the ordered boss list used by new sessions.
var Roster []BossDef

func init() {
	r, err := ParseRoster(defaultRosterYAML)
	if err != nil {
		panic("embedded boss roster: " + err.Error())
	}
	Roster = r
}

// LoadRosterFile reads and validates a roster from disk.
func LoadRosterFile(path string) ([]BossDef, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read boss roster: %w", err)
	}
	return ParseRoster(data)
}

// ParseRoster decodes a YAML roster and validates every entry.
func ParseRoster(data []byte) ([]BossDef, error) {
	var f rosterFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("failed to parse boss roster: %w", err)
	}
	if len(f.Bosses) == 0 {
		return nil, errors.New("boss roster is empty")
	}
	for i := range f.Bosses {
		if err := f.Bosses[i].Validate(); err != nil {
			return nil, fmt.Errorf("boss %d: %w", i, err)
		}
	}
	return f.Bosses, nil
}

// Validate checks that a boss can be spawned and fought.
func (b *BossDef) Validate() error {
	switch {
	case b.Name == "":
		return errors.New("name is required")
	case b.Width <= 0 || b.Height <= 0:
		return fmt.Errorf("%s: size must be positive, got %.0fx%.0f", b.Name, b.Width, b.Height)
	case b.Health <= 0:
		return fmt.Errorf("%s: health must be positive, got %d", b.Name, b.Health)
	case b.Speed <= 0:
		return fmt.Errorf("%s: speed must be positive, got %.2f", b.Name, b.Speed)
	case b.TriggerKills <= 0:
		return fmt.Errorf("%s: trigger_kills must be positive, got %d", b.Name, b.TriggerKills)
	}
	return nil
}

// IntroLine returns the taunt typed out when the boss is announced.
func (b *BossDef) IntroLine() string {
	if b.Line == "" {
		return Boss.DefaultLine
	}
	return b.Line
}
