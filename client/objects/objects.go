package objects

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font"
)

// Lifecycle is implemented by scenes and by objects that hold resources.
type Lifecycle interface {
	Init() error
	Destroy() error
	Update() error
	Draw(screen *ebiten.Image)
}

// GameObject is the highest level interface for drawable types.
type GameObject interface {
	Update() error
	Draw(screen *ebiten.Image)
}

// drawCenteredText draws t horizontally centered on cx with its baseline at y.
// It returns the height of the drawn line.
func drawCenteredText(screen *ebiten.Image, t string, f font.Face, cx, y float64, clr color.Color) float64 {
	bounds, _ := font.BoundString(f, t)
	width := float64((bounds.Max.X - bounds.Min.X).Ceil())
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(cx-width/2-float64(bounds.Min.X.Floor()), y)
	op.ColorScale.ScaleWithColor(clr)
	text.DrawWithOptions(screen, t, f, op)
	return float64((bounds.Max.Y - bounds.Min.Y).Ceil())
}
