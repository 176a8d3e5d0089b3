package assets

import (
	"embed"
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
)

//go:embed shaders/*.kage
var shaderFS embed.FS

var (
	// FlashShader whitens a sprite while it is taking damage
	FlashShader *ebiten.Shader
)

// LoadShaders compiles and caches all shaders
func LoadShaders() error {
	src, err := shaderFS.ReadFile("shaders/flash.kage")
	if err != nil {
		return fmt.Errorf("read flash shader: %w", err)
	}
	FlashShader, err = ebiten.NewShader(src)
	if err != nil {
		return fmt.Errorf("compile flash shader: %w", err)
	}
	return nil
}
