package systems

import (
	"sync"

	"github.com/automoto/junglesiege/assets"
	"github.com/automoto/junglesiege/components"
	cfg "github.com/automoto/junglesiege/config"
	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2/audio"
	"github.com/yohamta/donburi/ecs"
)

// mixer owns the audio device and the music track. Scenes come and go, so
// it outlives any single ECS.
type mixer struct {
	once   sync.Once
	loader *assets.AudioLoader

	music    *audio.Player
	musicKey string

	fadeLeft  int
	fadeTotal int
}

var mix mixer

// open creates the audio context on first use. Only systems that really
// play sound call it; queueing effects needs no device.
func (m *mixer) open() {
	m.once.Do(func() {
		ctx := audio.NewContext(cfg.Audio.SampleRate)
		m.loader = assets.NewAudioLoader(ctx, assets.Source())
	})
}

func (m *mixer) stopMusic() {
	if m.music != nil {
		_ = m.music.Close()
	}
	m.music = nil
	m.musicKey = ""
	m.fadeLeft = 0
}

func (m *mixer) updateFade() {
	if m.fadeLeft <= 0 || m.music == nil {
		return
	}
	m.fadeLeft--
	if m.fadeLeft == 0 {
		m.stopMusic()
		return
	}
	m.music.SetVolume(cfg.Audio.MusicVolume * float64(m.fadeLeft) / float64(m.fadeTotal))
}

func (m *mixer) play(id cfg.SoundID) {
	path, ok := cfg.Sound.SFXPaths[id]
	if !ok || cfg.Audio.SFXVolume <= 0 {
		return
	}
	player, err := m.loader.LoadSFX(path)
	if err != nil {
		return
	}
	volume := cfg.Audio.SFXVolume
	if mult, ok := cfg.Sound.VolumeMultipliers[id]; ok {
		volume *= mult
	}
	player.SetVolume(volume)
	player.Play()
}

// PreloadAllSFX decodes every sound effect up front so the first shot does
// not stall.
func PreloadAllSFX() {
	mix.open()

	missing := 0
	for _, path := range cfg.Sound.SFXPaths {
		if err := mix.loader.PreloadSFX(path); err != nil {
			missing++
			log.Debug("Sound effect unavailable", "path", path, "err", err)
		}
	}
	if missing > 0 {
		log.Warn("Some sound effects are missing and will be silent", "missing", missing)
	}
}

// UpdateAudio plays the queued effects and advances a music fade.
func UpdateAudio(e *ecs.ECS) {
	mix.open()
	mix.updateFade()

	queue := GetOrCreateAudio(e)
	for _, id := range queue.PendingSFX {
		mix.play(id)
	}
	queue.PendingSFX = queue.PendingSFX[:0]
}

// PlayMusic loops the track at musicPath. Asking for the track that is
// already playing does nothing.
func PlayMusic(e *ecs.ECS, musicPath string) {
	mix.open()
	if mix.musicKey == musicPath {
		return
	}
	mix.stopMusic()

	player, err := mix.loader.LoadMusic(musicPath)
	if err != nil {
		log.Debug("Music unavailable", "path", musicPath, "err", err)
		return
	}
	player.SetVolume(cfg.Audio.MusicVolume)
	player.Play()
	mix.music = player
	mix.musicKey = musicPath
}

func FadeOutMusic(e *ecs.ECS) {
	if mix.music == nil {
		return
	}
	mix.fadeLeft = cfg.Audio.MusicFadeDuration
	mix.fadeTotal = cfg.Audio.MusicFadeDuration
}

func PauseMusic(e *ecs.ECS) {
	if mix.music != nil {
		mix.music.Pause()
	}
}

func ResumeMusic(e *ecs.ECS) {
	if mix.music != nil {
		mix.music.Play()
	}
}

// PlaySFX queues a sound effect for the next UpdateAudio. A missing file
// stays silent.
func PlaySFX(e *ecs.ECS, id cfg.SoundID) {
	queue := GetOrCreateAudio(e)
	queue.PendingSFX = append(queue.PendingSFX, id)
}

// GetOrCreateAudio returns the sound queue of this ECS.
func GetOrCreateAudio(e *ecs.ECS) *components.AudioData {
	entry, ok := components.Audio.First(e.World)
	if !ok {
		entry = e.World.Entry(e.World.Create(components.Audio))
		components.Audio.SetValue(entry, components.AudioData{
			PendingSFX: make([]cfg.SoundID, 0, 8),
		})
	}
	return components.Audio.Get(entry)
}

// DrainSFX drops queued effects unplayed. Stands in for UpdateAudio when
// there is no audio device.
func DrainSFX(e *ecs.ECS) {
	queue := GetOrCreateAudio(e)
	queue.PendingSFX = queue.PendingSFX[:0]
}
