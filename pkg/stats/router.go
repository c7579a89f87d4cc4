package stats

import (
	"image"

	"github.com/cbodonnell/reaction/pkg/log"
)

// Player receives presses that are not meant for the overlay.
type Player interface {
	Input()
}

// PressRouter decides whether a press resets the statistics or drives the
// game. A press on the reset area never reaches the Player.
type PressRouter struct {
	view   *View
	player Player
	// resetArea is where the reset control was last laid out.
	resetArea image.Rectangle
}

func NewPressRouter(view *View, player Player) *PressRouter {
	return &PressRouter{
		view:   view,
		player: player,
	}
}

// SetResetArea records where the reset control is drawn. An empty rectangle
// means no control is shown.
func (r *PressRouter) SetResetArea(area image.Rectangle) {
	r.resetArea = area
}

// ResetArea returns the active reset target. There is none while the history
// is empty, whatever was last laid out.
func (r *PressRouter) ResetArea() (image.Rectangle, bool) {
	if r.resetArea.Empty() {
		return image.Rectangle{}, false
	}
	if _, ok := r.view.Summary(); !ok {
		return image.Rectangle{}, false
	}
	return r.resetArea, true
}

// Press routes a single logical press. It returns true when the press reset
// the statistics.
func (r *PressRouter) Press(x, y int) bool {
	if area, ok := r.ResetArea(); ok && image.Pt(x, y).In(area) {
		log.Debug("Reset pressed at (%d, %d)", x, y)
		r.view.Reset()
		return true
	}
	r.player.Input()
	return false
}
