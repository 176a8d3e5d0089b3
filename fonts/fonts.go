package fonts

import (
	"fmt"
	"sync"

	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/goregular"
)

type FontName string

const (
	Body  FontName = "body"
	Bold  FontName = "bold"
	Title FontName = "title"
	Small FontName = "small"
)

func (f FontName) Get() font.Face {
	return getFont(f)
}

var (
	fonts    = map[FontName]font.Face{}
	loadOnce sync.Once
)

// LoadDefaults registers the bundled Go fonts at the sizes the HUD uses.
func LoadDefaults() {
	loadOnce.Do(func() {
		LoadFontWithSize(Body, goregular.TTF, 18)
		LoadFontWithSize(Bold, gobold.TTF, 22)
		LoadFontWithSize(Title, gobold.TTF, 48)
		LoadFontWithSize(Small, goregular.TTF, 14)
	})
}

func LoadFont(name FontName, ttf []byte) {
	LoadFontWithSize(name, ttf, 10)
}

func LoadFontWithSize(name FontName, ttf []byte, size float64) {
	fontData, err := truetype.Parse(ttf)
	if err != nil {
		panic(fmt.Sprintf("Font %s is not valid TrueType: %v", name, err))
	}
	fonts[name] = truetype.NewFace(fontData, &truetype.Options{Size: size})
}

func getFont(name FontName) font.Face {
	LoadDefaults()
	f, ok := fonts[name]
	if !ok {
		panic(fmt.Sprintf("Font %s not found", name))
	}
	return f
}
