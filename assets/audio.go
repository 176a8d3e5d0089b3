package assets

import (
	"bytes"
	"fmt"
	"io"
	"io/fs"
	"path/filepath"
	"strings"

	"github.com/hajimehoshi/ebiten/v2/audio"
	"github.com/hajimehoshi/ebiten/v2/audio/mp3"
	"github.com/hajimehoshi/ebiten/v2/audio/vorbis"
	"github.com/hajimehoshi/ebiten/v2/audio/wav"
)

// stream is what every ebiten decoder hands back.
type stream interface {
	io.ReadSeeker
	Length() int64
}

// AudioLoader handles loading and caching of audio assets
type AudioLoader struct {
	sfxCache map[string][]byte // Cache decoded audio bytes for SFX
	context  *audio.Context
	files    fs.FS
}

// NewAudioLoader creates a new audio loader reading from files. A nil files
// makes every load fail, which callers treat as silence.
func NewAudioLoader(ctx *audio.Context, files fs.FS) *AudioLoader {
	return &AudioLoader{
		sfxCache: make(map[string][]byte),
		context:  ctx,
		files:    files,
	}
}

func (l *AudioLoader) decode(path string) (stream, error) {
	if l.files == nil {
		return nil, fmt.Errorf("no audio source for %s", path)
	}
	data, err := fs.ReadFile(l.files, path)
	if err != nil {
		return nil, fmt.Errorf("failed to read audio file %s: %w", path, err)
	}

	rate := l.context.SampleRate()
	var s stream
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".ogg":
		s, err = vorbis.DecodeWithSampleRate(rate, bytes.NewReader(data))
	case ".wav":
		s, err = wav.DecodeWithSampleRate(rate, bytes.NewReader(data))
	case ".mp3":
		s, err = mp3.DecodeWithSampleRate(rate, bytes.NewReader(data))
	default:
		return nil, fmt.Errorf("unsupported audio format: %s", ext)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to decode %s: %w", path, err)
	}
	return s, nil
}

// PreloadSFX decodes a sound effect and caches it without creating a player.
func (l *AudioLoader) PreloadSFX(path string) error {
	if _, ok := l.sfxCache[path]; ok {
		return nil
	}
	s, err := l.decode(path)
	if err != nil {
		return err
	}
	decoded, err := io.ReadAll(s)
	if err != nil {
		return fmt.Errorf("failed to read decoded audio %s: %w", path, err)
	}
	l.sfxCache[path] = decoded
	return nil
}

// LoadSFX returns a new player each time from the decoded cache.
func (l *AudioLoader) LoadSFX(path string) (*audio.Player, error) {
	if err := l.PreloadSFX(path); err != nil {
		return nil, err
	}
	return l.context.NewPlayer(bytes.NewReader(l.sfxCache[path]))
}

// LoadMusic returns a looping streaming player.
func (l *AudioLoader) LoadMusic(path string) (*audio.Player, error) {
	s, err := l.decode(path)
	if err != nil {
		return nil, err
	}
	return l.context.NewPlayer(audio.NewInfiniteLoop(s, s.Length()))
}
