package fonts

import (
	"fmt"

	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
)

func init() {
	if err := loadFonts(); err != nil {
		panic(fmt.Sprintf("Failed to load fonts: %v", err))
	}
}

// TitleFont is used for the large prompt title.
var TitleFont font.Face

// BodyFont is used for subtitles and overlay values.
var BodyFont font.Face

// SmallFont is used for labels and hints.
var SmallFont font.Face

func loadFonts() error {
	const dpi = 72

	bold, err := opentype.Parse(gobold.TTF)
	if err != nil {
		return fmt.Errorf("failed to parse title font: %v", err)
	}
	TitleFont, err = opentype.NewFace(bold, &opentype.FaceOptions{
		Size:    56,
		DPI:     dpi,
		Hinting: font.HintingVertical,
	})
	if err != nil {
		return fmt.Errorf("failed to create title font face: %v", err)
	}

	regular, err := truetype.Parse(goregular.TTF)
	if err != nil {
		return fmt.Errorf("failed to parse body font: %v", err)
	}

	BodyFont = truetype.NewFace(regular, &truetype.Options{
		Size:    24,
		DPI:     dpi,
		Hinting: font.HintingFull,
	})

	SmallFont = truetype.NewFace(regular, &truetype.Options{
		Size:    16,
		DPI:     dpi,
		Hinting: font.HintingFull,
	})

	return nil
}
