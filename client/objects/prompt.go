package objects

import (
	"image/color"

	"github.com/cbodonnell/reaction/client/fonts"
	"github.com/cbodonnell/reaction/pkg/reaction"
	"github.com/hajimehoshi/ebiten/v2"
)

// Background colors per token.
var backgrounds = map[reaction.ColorToken]color.RGBA{
	reaction.ColorSlate900:   {R: 0x0f, G: 0x17, B: 0x2a, A: 0xff},
	reaction.ColorSlate800:   {R: 0x1e, G: 0x29, B: 0x3b, A: 0xff},
	reaction.ColorRose600:    {R: 0xe1, G: 0x1d, B: 0x48, A: 0xff},
	reaction.ColorEmerald500: {R: 0x10, G: 0xb9, B: 0x81, A: 0xff},
	reaction.ColorOrange500:  {R: 0xf9, G: 0x73, B: 0x16, A: 0xff},
}

// Icon tint per background, matching the lighter shade of each background.
var iconColors = map[reaction.ColorToken]color.RGBA{
	reaction.ColorSlate900:   {R: 0xfa, G: 0xcc, B: 0x15, A: 0xff},
	reaction.ColorSlate800:   {R: 0x60, G: 0xa5, B: 0xfa, A: 0xff},
	reaction.ColorRose600:    {R: 0xfe, G: 0xcd, B: 0xd3, A: 0xff},
	reaction.ColorEmerald500: {R: 0xd1, G: 0xfa, B: 0xe5, A: 0xff},
	reaction.ColorOrange500:  {R: 0xfe, G: 0xd7, B: 0xaa, A: 0xff},
}

var subtitleColor = color.RGBA{R: 0xcc, G: 0xcc, B: 0xcc, A: 0xff}

// PromptObject draws the full screen prompt for the current game state.
type PromptObject struct {
	// prompt returns the prompt to draw on each frame.
	prompt func() reaction.Prompt
}

var _ GameObject = &PromptObject{}

func NewPromptObject(prompt func() reaction.Prompt) *PromptObject {
	return &PromptObject{
		prompt: prompt,
	}
}

func (o *PromptObject) Update() error {
	return nil
}

func (o *PromptObject) Draw(screen *ebiten.Image) {
	p := o.prompt()

	bg, ok := backgrounds[p.Background]
	if !ok {
		bg = backgrounds[reaction.ColorSlate900]
	}
	screen.Fill(bg)

	bounds := screen.Bounds()
	cx := float64(bounds.Dx()) / 2
	cy := float64(bounds.Dy()) / 2

	const iconSize = 96
	drawIcon(screen, p.Icon, float32(cx), float32(cy-110), iconSize, iconColors[p.Background])

	y := cy + 10
	y += drawCenteredText(screen, p.Title, fonts.TitleFont, cx, y, color.White)
	drawCenteredText(screen, p.Subtitle, fonts.BodyFont, cx, y+24, subtitleColor)

	if p.Hint != "" {
		drawCenteredText(screen, p.Hint, fonts.SmallFont, cx, y+72, color.White)
	}
}
