package objects

import (
	"image"
	"image/color"

	"github.com/cbodonnell/reaction/pkg/reaction"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

var (
	whiteImage    = ebiten.NewImage(3, 3)
	whiteSubImage = whiteImage.SubImage(image.Rect(1, 1, 2, 2)).(*ebiten.Image)
)

func init() {
	whiteImage.Fill(color.White)
}

// drawIcon draws the icon centered on (cx, cy) inside a square of the given size.
func drawIcon(screen *ebiten.Image, icon reaction.IconToken, cx, cy, size float32, clr color.Color) {
	switch icon {
	case reaction.IconZap:
		drawZap(screen, cx, cy, size, clr)
	case reaction.IconTimer:
		drawTimer(screen, cx, cy, size, clr)
	case reaction.IconAlert:
		drawAlert(screen, cx, cy, size, clr)
	}
}

func drawZap(screen *ebiten.Image, cx, cy, size float32, clr color.Color) {
	s := size / 2
	var path vector.Path
	path.MoveTo(cx+0.15*s, cy-s)
	path.LineTo(cx-0.65*s, cy+0.15*s)
	path.LineTo(cx-0.05*s, cy+0.15*s)
	path.LineTo(cx-0.15*s, cy+s)
	path.LineTo(cx+0.65*s, cy-0.15*s)
	path.LineTo(cx+0.05*s, cy-0.15*s)
	path.Close()

	vs, is := path.AppendVerticesAndIndicesForFilling(nil, nil)
	r, g, b, a := clr.RGBA()
	for i := range vs {
		vs[i].SrcX = 1
		vs[i].SrcY = 1
		vs[i].ColorR = float32(r) / 0xffff
		vs[i].ColorG = float32(g) / 0xffff
		vs[i].ColorB = float32(b) / 0xffff
		vs[i].ColorA = float32(a) / 0xffff
	}
	screen.DrawTriangles(vs, is, whiteSubImage, &ebiten.DrawTrianglesOptions{
		FillRule:  ebiten.EvenOdd,
		AntiAlias: true,
	})
}

func drawTimer(screen *ebiten.Image, cx, cy, size float32, clr color.Color) {
	r := size * 0.4
	stroke := size * 0.07
	cy += size * 0.06
	vector.StrokeCircle(screen, cx, cy, r, stroke, clr, true)
	// hand
	vector.StrokeLine(screen, cx, cy, cx, cy-r*0.6, stroke, clr, true)
	vector.StrokeLine(screen, cx, cy, cx+r*0.45, cy, stroke, clr, true)
	// crown
	vector.DrawFilledRect(screen, cx-r*0.3, cy-r-stroke*2.5, r*0.6, stroke, clr, true)
}

func drawAlert(screen *ebiten.Image, cx, cy, size float32, clr color.Color) {
	r := size * 0.45
	stroke := size * 0.07
	vector.StrokeCircle(screen, cx, cy, r, stroke, clr, true)
	vector.DrawFilledRect(screen, cx-stroke/2, cy-r*0.5, stroke, r*0.6, clr, true)
	vector.DrawFilledCircle(screen, cx, cy+r*0.45, stroke*0.65, clr, true)
}
