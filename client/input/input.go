package input

import (
	"time"

	"github.com/cbodonnell/reaction/pkg/pointer"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// Pointer reports at most one logical press per frame for mouse and touch input.
type Pointer struct {
	filter   *pointer.Filter
	touchIDs []ebiten.TouchID
	presses  []pointer.Press
}

func NewPointer(compatWindow time.Duration) *Pointer {
	return &Pointer{
		filter: pointer.NewFilter(compatWindow),
	}
}

// JustPressed returns the position of the press made during the current frame, if any.
// It must be called once per Update.
func (p *Pointer) JustPressed(now time.Time) (x, y int, ok bool) {
	p.presses = p.presses[:0]

	p.touchIDs = inpututil.AppendJustPressedTouchIDs(p.touchIDs[:0])
	for _, id := range p.touchIDs {
		tx, ty := ebiten.TouchPosition(id)
		p.presses = append(p.presses, pointer.Press{Source: pointer.SourceTouch, X: tx, Y: ty})
	}

	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		mx, my := ebiten.CursorPosition()
		p.presses = append(p.presses, pointer.Press{Source: pointer.SourceMouse, X: mx, Y: my})
	}

	press, ok := p.filter.Next(now, p.presses)
	if !ok {
		return 0, 0, false
	}
	return press.X, press.Y, true
}
