package config

// SoundID represents a logical sound effect
type SoundID int

const (
	SoundNone SoundID = iota
	// Combat sounds
	SoundShot
	SoundEnemyShot
	SoundZombieHit
	SoundExplosion
	SoundHurt
	SoundShieldHit
	// Rewards
	SoundPickup
	SoundShieldUp
	SoundSupplyDrop
	// Boss sounds
	SoundBossIntro
	SoundBossHit
	SoundNapalm
	// Outcome sounds
	SoundGameOver
	SoundVictory
	// UI sounds
	SoundMenuNavigate
	SoundMenuSelect
)

// AudioConfig contains audio-related configuration values
type AudioConfig struct {
	SampleRate        int
	MusicVolume       float64
	SFXVolume         float64
	MusicFadeDuration int // frames for music fade out (60 = 1 second at 60fps)
}

// SoundConfig maps sound IDs to file paths
type SoundConfig struct {
	MenuMusic         string
	BattleMusic       string
	SFXPaths          map[SoundID]string
	VolumeMultipliers map[SoundID]float64
}

var Audio AudioConfig
var Sound SoundConfig

func init() {
	Audio = AudioConfig{
		SampleRate:        44100,
		MusicVolume:       0.6,
		SFXVolume:         1.0,
		MusicFadeDuration: 60,
	}

	Sound = SoundConfig{
		MenuMusic:   "audio/music/menu.ogg",
		BattleMusic: "audio/music/bgm.wav",
		SFXPaths: map[SoundID]string{
			SoundShot:         "audio/sfx/shot.mp3",
			SoundEnemyShot:    "audio/sfx/enemy_shot.wav",
			SoundZombieHit:    "audio/sfx/zombie_hit.wav",
			SoundExplosion:    "audio/sfx/explosion.mp3",
			SoundHurt:         "audio/sfx/hurt.wav",
			SoundShieldHit:    "audio/sfx/shield_hit.wav",
			SoundPickup:       "audio/sfx/fx_reload.wav",
			SoundShieldUp:     "audio/sfx/shield_up.wav",
			SoundSupplyDrop:   "audio/sfx/supply_drop.wav",
			SoundBossIntro:    "audio/sfx/boss_intro.wav",
			SoundBossHit:      "audio/sfx/boss_hit.wav",
			SoundNapalm:       "audio/sfx/napalm.wav",
			SoundGameOver:     "audio/sfx/gameover.mp3",
			SoundVictory:      "audio/sfx/victory.wav",
			SoundMenuNavigate: "audio/sfx/menu_navigate.wav",
			SoundMenuSelect:   "audio/sfx/menu_select.wav",
		},
		VolumeMultipliers: map[SoundID]float64{
			SoundShot:      0.5,
			SoundEnemyShot: 0.4,
			SoundExplosion: 1.3,
		},
	}
}
