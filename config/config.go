package config

import (
	"image/color"
	"time"
)

// Config holds general game configuration
type Config struct {
	Width    int
	Height   int
	TickRate int
}

// TankConfig contains player tank tuning
type TankConfig struct {
	Width         float64
	Height        float64
	Speed         float64 // pixels per tick while a move key is held
	PointerFollow float64 // fraction of the remaining distance covered per tick
	StartHealth   int
	MaxHealth     int
	StartAmmo     int
	AmmoCap       int
	Color         color.RGBA
	Sprite        string
}

// BulletConfig contains projectile tuning for the player and zombies
type BulletConfig struct {
	Width        float64
	Height       float64
	SpeedY       float64 // negative = upward
	SpawnOffsetX float64 // subtracted from the tank centre
	Color        color.RGBA
	Sprite       string

	EnemyWidth      float64
	EnemyHeight     float64
	EnemyCullMargin float64
	EnemyMinSpeed   float64
	EnemyDamage     int
	EnemyColor      color.RGBA
	EnemySprite     string
}

// ZombieTier describes one zombie variant
type ZombieTier struct {
	Name         string
	Sprite       string
	Health       int
	Score        int
	Width        float64
	Height       float64
	SpeedScale   float64
	FireRate     int // ticks
	BulletSpeed  float64
	BaseWeight   float64
	WeightGrowth float64 // added per round after the first
	Color        color.RGBA
}

// ZombieConfig contains movement and firing tuning shared by all tiers
type ZombieConfig struct {
	Tiers []ZombieTier

	ContactDamage    int
	DriftX           float64 // horizontal drift is uniform in [-DriftX, DriftX]
	WobbleAmpMin     float64
	WobbleAmpRange   float64
	WobbleSpeedMin   float64
	WobbleSpeedRange float64
	WallBounce       float64

	FireRateScale    float64
	SkipChance       float64
	AimedChance      float64
	SpreadX          float64
	SpreadYMin       float64
	SpreadYRange     float64
	SkipRefireJitter int
	FireRefireJitter int
}

// DropConfig contains kill reward tuning
type DropConfig struct {
	KillBonusAmmo   int
	AmmoChance      float64
	MedkitChance    float64
	Size            float64
	AmmoFallSpeed   float64
	MedkitFallSpeed float64
	AmmoAmount      int
	MedkitHeal      int
	AmmoColor       color.RGBA
	MedkitColor     color.RGBA
}

// ComboConfig contains kill streak tuning
type ComboConfig struct {
	Window time.Duration

	ShieldAt       int
	ShieldDuration time.Duration

	AmmoBayAt     int
	AmmoBaySize   float64
	AmmoBayTTL    time.Duration
	AmmoBayAmount int
	AmmoBayMargin float64
	AmmoBayColor  color.RGBA

	ParachuteAt         int
	ParachuteCount      int
	ParachuteSize       float64
	ParachuteSpeedMin   float64
	ParachuteSpeedRange float64
	ParachuteHeal       int
	ParachuteColor      color.RGBA
}

// RoundConfig contains wave sizing and cadence
type RoundConfig struct {
	MaxRounds int

	MinWave            int
	WavePerRound       float64
	WaveJitterPerRound float64

	BaseSpeed       float64
	SpeedPerRound   float64
	SpeedJitter     float64
	SpeedJitterBias float64

	BaseInterval     time.Duration
	IntervalPerRound time.Duration
	MinInterval      time.Duration
	IntervalJitter   time.Duration

	WaveClearDelay time.Duration
}

// BossConfig contains behaviour shared by every roster entry
type BossConfig struct {
	SpawnY          float64
	MinY            float64
	LaneReserve     float64 // fraction of the screen height kept free above the HUD for the tank lane
	PursuitDeadZone float64

	InitialCooldown       int
	InitialCooldownJitter int
	Cooldown              int
	CooldownJitter        int

	ProjectileSize   float64
	ProjectileSpeed  float64
	ProjectileDamage int
	ProjectileColor  color.RGBA
	Color            color.RGBA

	IntroPreDelay  time.Duration
	IntroCharDelay time.Duration
	IntroHold      time.Duration
	IntroTimeout   time.Duration
	DefaultLine    string
}

// NapalmConfig contains the air strike special attack tuning
type NapalmConfig struct {
	HitsToArm int
	HitWindow time.Duration

	BomberSpeed       float64
	BomberAltitude    float64
	BomberWidth       float64
	BomberHeight      float64
	BomberEntryMargin float64
	Drops             int
	DropSpacing       float64

	BombSize     float64
	BombStartVY  float64
	BombGravity  float64
	GroundOffset float64

	Radius          float64
	BossRadiusBonus float64
	BossDamage      int
	KillScore       int

	ExplosionSize      float64
	ExplosionFrames    int
	ExplosionFrameTime time.Duration
}

// HUDConfig contains bottom bar and overlay styling
type HUDConfig struct {
	BarHeight       float64
	BarColor        color.RGBA
	TextColor       color.RGBA
	HealthColor     color.RGBA
	HealthBackColor color.RGBA
	ShieldColor     color.RGBA
	BossBarColor    color.RGBA
	ComboColor      color.RGBA
	CaptionDuration time.Duration
	ComboFrames     int
	IntroBackdrop   color.RGBA
}

// ScreenShakeConfig contains screen shake effect configuration
type ScreenShakeConfig struct {
	ExplosionIntensity float64
	ExplosionDuration  int
	DamageIntensity    float64
	DamageDuration     int
	FlashDuration      int
}

// PauseConfig contains pause overlay styling
type PauseConfig struct {
	OverlayColor color.RGBA
	TextColor    color.RGBA
	Title        string
	Hint         string
}

// MenuConfig contains main menu configuration values
type MenuConfig struct {
	BackgroundColor   color.RGBA
	TitleColor        color.RGBA
	TextColorNormal   color.RGBA
	TextColorSelected color.RGBA
	Title             string
	TitleY            float64
	MenuStartY        float64
	MenuItemHeight    float64
	MenuItemGap       float64
	MenuOptions       []string
}

// GameOverConfig contains results screen styling
type GameOverConfig struct {
	BackgroundColor color.RGBA
	PanelColor      color.RGBA
	TitleColor      color.RGBA
	TextColor       color.RGBA
	ButtonIdle      color.RGBA
	ButtonHover     color.RGBA
	ButtonPressed   color.RGBA
	ButtonText      color.RGBA
	VictoryTitle    string
	FinalTitle      string
	DefeatTitle     string
}

// AutopilotConfig contains tuning for the built-in bot
type AutopilotConfig struct {
	FireCooldown  int
	AimTolerance  float64
	DodgeDistance float64
}

// DebugConfig contains debug/testing command-line options
type DebugConfig struct {
	SkipMenu   bool
	Demo       bool
	Verbose    bool
	Hitboxes   bool
	Seed       int64
	RosterPath string
	AssetsDir  string
}

// Global configuration instances
var C *Config
var Tank TankConfig
var Bullet BulletConfig
var Zombies ZombieConfig
var Drops DropConfig
var Combo ComboConfig
var Round RoundConfig
var Boss BossConfig
var Napalm NapalmConfig
var HUD HUDConfig
var ScreenShake ScreenShakeConfig
var Pause PauseConfig
var Menu MenuConfig
var GameOver GameOverConfig
var Autopilot AutopilotConfig
var Debug DebugConfig

// Tick is the simulated duration of one update.
var Tick time.Duration

// Shared RGBA color constants
var (
	White        = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	Yellow       = color.RGBA{R: 255, G: 255, B: 0, A: 255}
	BrightYellow = color.RGBA{R: 255, G: 255, B: 100, A: 255}
	Orange       = color.RGBA{R: 255, G: 140, B: 0, A: 255}
	Red          = color.RGBA{R: 255, G: 0, B: 0, A: 255}
	Green        = color.RGBA{R: 0, G: 255, B: 0, A: 255}
	OliveGreen   = color.RGBA{R: 85, G: 107, B: 47, A: 255}
	JungleGreen  = color.RGBA{R: 24, G: 48, B: 28, A: 255}
	LightGreen   = color.RGBA{R: 100, G: 255, B: 100, A: 255}
	Blue         = color.RGBA{R: 0, G: 100, B: 255, A: 255}
	Cyan         = color.RGBA{R: 80, G: 220, B: 255, A: 255}
	Purple       = color.RGBA{R: 128, G: 0, B: 255, A: 255}
	LightRed     = color.RGBA{R: 255, G: 60, B: 60, A: 255}
	Magenta      = color.RGBA{R: 255, G: 0, B: 255, A: 255}
	Grey         = color.RGBA{R: 110, G: 110, B: 110, A: 255}
	BlackOverlay = color.RGBA{R: 0, G: 0, B: 0, A: 180}
	LightBlue    = color.RGBA{R: 100, G: 180, B: 255, A: 255}
	DarkBlue     = color.RGBA{R: 60, G: 100, B: 160, A: 255}
)

func init() {
	C = &Config{
		Width:    1280,
		Height:   720,
		TickRate: 60,
	}
	Tick = time.Second / time.Duration(C.TickRate)

	Tank = TankConfig{
		Width:         64,
		Height:        64,
		Speed:         5,
		PointerFollow: 0.12,
		StartHealth:   100,
		MaxHealth:     100,
		StartAmmo:     50,
		AmmoCap:       150,
		Color:         OliveGreen,
		Sprite:        "tank.png",
	}

	Bullet = BulletConfig{
		Width:        27,
		Height:       27,
		SpeedY:       -7,
		SpawnOffsetX: 13,
		Color:        BrightYellow,
		Sprite:       "bullet.png",

		EnemyWidth:      24,
		EnemyHeight:     24,
		EnemyCullMargin: 40,
		EnemyMinSpeed:   3,
		EnemyDamage:     8,
		EnemyColor:      LightRed,
		EnemySprite:     "enemy_bullet.png",
	}

	Zombies = ZombieConfig{
		Tiers: []ZombieTier{
			{Name: "walker", Sprite: "zombie.png", Health: 1, Score: 5, Width: 48, Height: 72,
				SpeedScale: 1.0, FireRate: 120, BulletSpeed: 4, BaseWeight: 4, WeightGrowth: 0,
				Color: color.RGBA{R: 90, G: 160, B: 90, A: 255}},
			{Name: "runner", Sprite: "zombie2.png", Health: 2, Score: 15, Width: 52, Height: 76,
				SpeedScale: 1.05, FireRate: 90, BulletSpeed: 5, BaseWeight: 3, WeightGrowth: 0.5,
				Color: color.RGBA{R: 150, G: 170, B: 70, A: 255}},
			{Name: "brute", Sprite: "zombie3.png", Health: 3, Score: 20, Width: 56, Height: 80,
				SpeedScale: 1.1, FireRate: 70, BulletSpeed: 6, BaseWeight: 2, WeightGrowth: 1.0,
				Color: color.RGBA{R: 170, G: 110, B: 60, A: 255}},
			{Name: "hulk", Sprite: "zombie4.png", Health: 4, Score: 25, Width: 60, Height: 86,
				SpeedScale: 1.15, FireRate: 40, BulletSpeed: 7, BaseWeight: 1, WeightGrowth: 1.5,
				Color: color.RGBA{R: 150, G: 50, B: 60, A: 255}},
		},
		ContactDamage:    10,
		DriftX:           0.6,
		WobbleAmpMin:     1.4,
		WobbleAmpRange:   1.6,
		WobbleSpeedMin:   0.05,
		WobbleSpeedRange: 0.05,
		WallBounce:       0.8,

		FireRateScale:    3,
		SkipChance:       0.7,
		AimedChance:      0.2,
		SpreadX:          1.6,
		SpreadYMin:       0.9,
		SpreadYRange:     0.4,
		SkipRefireJitter: 60,
		FireRefireJitter: 80,
	}

	Drops = DropConfig{
		KillBonusAmmo:   2,
		AmmoChance:      0.25,
		MedkitChance:    0.10,
		Size:            27,
		AmmoFallSpeed:   3,
		MedkitFallSpeed: 2.5,
		AmmoAmount:      15,
		MedkitHeal:      25,
		AmmoColor:       Orange,
		MedkitColor:     White,
	}

	Combo = ComboConfig{
		Window: 900 * time.Millisecond,

		ShieldAt:       2,
		ShieldDuration: 3 * time.Second,

		AmmoBayAt:     3,
		AmmoBaySize:   65,
		AmmoBayTTL:    12 * time.Second,
		AmmoBayAmount: 30,
		AmmoBayMargin: 10,
		AmmoBayColor:  color.RGBA{R: 200, G: 150, B: 40, A: 255},

		ParachuteAt:         4,
		ParachuteCount:      2,
		ParachuteSize:       75,
		ParachuteSpeedMin:   2.8,
		ParachuteSpeedRange: 0.6,
		ParachuteHeal:       25,
		ParachuteColor:      LightBlue,
	}

	Round = RoundConfig{
		MaxRounds: 13,

		MinWave:            3,
		WavePerRound:       3,
		WaveJitterPerRound: 2,

		BaseSpeed:       0.8,
		SpeedPerRound:   0.12,
		SpeedJitter:     0.3,
		SpeedJitterBias: 0.4,

		BaseInterval:     800 * time.Millisecond,
		IntervalPerRound: 10 * time.Millisecond,
		MinInterval:      250 * time.Millisecond,
		IntervalJitter:   250 * time.Millisecond,

		WaveClearDelay: 600 * time.Millisecond,
	}

	Boss = BossConfig{
		SpawnY:          80,
		MinY:            10,
		LaneReserve:     0.3,
		PursuitDeadZone: 10,

		InitialCooldown:       90,
		InitialCooldownJitter: 60,
		Cooldown:              70,
		CooldownJitter:        40,

		ProjectileSize:   32,
		ProjectileSpeed:  6,
		ProjectileDamage: 16,
		ProjectileColor:  Magenta,
		Color:            Purple,

		IntroPreDelay:  600 * time.Millisecond,
		IntroCharDelay: 90 * time.Millisecond,
		IntroHold:      1800 * time.Millisecond,
		IntroTimeout:   7 * time.Second,
		DefaultLine:    "prepare yourself.",
	}

	Napalm = NapalmConfig{
		HitsToArm: 5,
		HitWindow: 1800 * time.Millisecond,

		BomberSpeed:       3.2,
		BomberAltitude:    90,
		BomberWidth:       120,
		BomberHeight:      60,
		BomberEntryMargin: 30,
		Drops:             3,
		DropSpacing:       180,

		BombSize:     28,
		BombStartVY:  1.2,
		BombGravity:  0.18,
		GroundOffset: 10,

		Radius:          110,
		BossRadiusBonus: 30,
		BossDamage:      12,
		KillScore:       10,

		ExplosionSize:      160,
		ExplosionFrames:    3,
		ExplosionFrameTime: 80 * time.Millisecond,
	}

	HUD = HUDConfig{
		BarHeight:       70,
		BarColor:        color.RGBA{R: 20, G: 28, B: 20, A: 235},
		TextColor:       White,
		HealthColor:     Green,
		HealthBackColor: color.RGBA{R: 60, G: 20, B: 20, A: 255},
		ShieldColor:     Cyan,
		BossBarColor:    Red,
		ComboColor:      Yellow,
		CaptionDuration: 1200 * time.Millisecond,
		ComboFrames:     25,
		IntroBackdrop:   color.RGBA{R: 0, G: 0, B: 0, A: 200},
	}

	ScreenShake = ScreenShakeConfig{
		ExplosionIntensity: 6,
		ExplosionDuration:  18,
		DamageIntensity:    3,
		DamageDuration:     10,
		FlashDuration:      8,
	}

	Pause = PauseConfig{
		OverlayColor: BlackOverlay,
		TextColor:    White,
		Title:        "PAUSED",
		Hint:         "Esc / P: Resume",
	}

	Menu = MenuConfig{
		BackgroundColor:   JungleGreen,
		TitleColor:        BrightYellow,
		TextColorNormal:   DarkBlue,
		TextColorSelected: LightBlue,
		Title:             "JUNGLE SIEGE",
		TitleY:            200,
		MenuStartY:        340,
		MenuItemHeight:    32,
		MenuItemGap:       16,
		MenuOptions:       []string{"Start", "Exit"},
	}

	GameOver = GameOverConfig{
		BackgroundColor: color.RGBA{R: 10, G: 10, B: 10, A: 255},
		PanelColor:      color.RGBA{R: 30, G: 40, B: 30, A: 240},
		TitleColor:      Red,
		TextColor:       White,
		ButtonIdle:      DarkBlue,
		ButtonHover:     LightBlue,
		ButtonPressed:   Blue,
		ButtonText:      White,
		VictoryTitle:    "VICTORY",
		FinalTitle:      "ULTIMATE VICTORY!",
		DefeatTitle:     "MISSION FAILED",
	}

	Autopilot = AutopilotConfig{
		FireCooldown:  9,
		AimTolerance:  12,
		DodgeDistance: 90,
	}
}
