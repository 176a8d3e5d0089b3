package assets

import (
	"bytes"
	"fmt"
	"io/fs"
	"path"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
)

// ImageLoader decodes sprites on first use and caches them. Missing or
// broken files are remembered as nil so the renderer can fall back to
// placeholder shapes without retrying every frame.
type ImageLoader struct {
	files fs.FS
	cache map[string]*ebiten.Image
}

func NewImageLoader(files fs.FS) *ImageLoader {
	return &ImageLoader{
		files: files,
		cache: make(map[string]*ebiten.Image),
	}
}

// LoadImage reads images/<name> from the loader's file system.
func (l *ImageLoader) LoadImage(name string) (*ebiten.Image, error) {
	if l.files == nil {
		return nil, fmt.Errorf("no image source for %s", name)
	}
	p := path.Join("images", name)
	data, err := fs.ReadFile(l.files, p)
	if err != nil {
		return nil, fmt.Errorf("failed to read image %s: %w", p, err)
	}
	img, _, err := ebitenutil.NewImageFromReader(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("failed to decode image %s: %w", p, err)
	}
	return img, nil
}

// Image returns the cached sprite or nil if it cannot be loaded.
func (l *ImageLoader) Image(name string) *ebiten.Image {
	if name == "" {
		return nil
	}
	if img, ok := l.cache[name]; ok {
		return img
	}
	img, err := l.LoadImage(name)
	if err != nil {
		log.Debug("Sprite unavailable, using placeholder", "name", name, "err", err)
	}
	l.cache[name] = img
	return img
}

var (
	files       fs.FS
	imageLoader = NewImageLoader(nil)
)

// SetSource points the sprite and sound loaders at a directory tree laid out
// as images/ and audio/. Without a source every asset is a placeholder.
func SetSource(src fs.FS) {
	files = src
	imageLoader = NewImageLoader(src)
}

// Source returns the asset file system, or nil when none was configured.
func Source() fs.FS {
	return files
}

// GetImage returns a sprite by file name, or nil when it is not available.
func GetImage(name string) *ebiten.Image {
	return imageLoader.Image(name)
}
