// Package pointer turns raw mouse and touch presses into logical presses.
//
// Browsers and some touch screens emit a compatibility mouse press shortly
// after a touch press. Filter drops those so that one physical tap yields one
// logical press regardless of the device.
package pointer

import (
	"time"
)

// DefaultCompatWindow is how long mouse presses are ignored after a touch press.
const DefaultCompatWindow = 500 * time.Millisecond

type Source int

const (
	SourceMouse Source = iota
	SourceTouch
)

func (s Source) String() string {
	switch s {
	case SourceMouse:
		return "mouse"
	case SourceTouch:
		return "touch"
	}
	return "unknown"
}

// Press is a raw press observed during one frame.
type Press struct {
	Source Source
	X      int
	Y      int
}

type Filter struct {
	compatWindow time.Duration
	lastTouch    time.Time
	touched      bool
}

func NewFilter(compatWindow time.Duration) *Filter {
	if compatWindow < 0 {
		compatWindow = 0
	}
	return &Filter{compatWindow: compatWindow}
}

// Next picks at most one logical press from the raw presses of a frame.
// Touch presses take priority over mouse presses.
func (f *Filter) Next(now time.Time, presses []Press) (Press, bool) {
	var mouse *Press
	for i := range presses {
		p := presses[i]
		switch p.Source {
		case SourceTouch:
			f.lastTouch = now
			f.touched = true
			return p, true
		case SourceMouse:
			if mouse == nil {
				mouse = &presses[i]
			}
		}
	}
	if mouse == nil {
		return Press{}, false
	}
	if f.touched && now.Sub(f.lastTouch) < f.compatWindow {
		return Press{}, false
	}
	return *mouse, true
}
