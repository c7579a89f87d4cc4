package pointer

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestFilter_Next(t *testing.T) {
	start := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)

	type step struct {
		at      time.Duration
		presses []Press
		want    Press
		wantOK  bool
	}
	tests := []struct {
		name  string
		steps []step
	}{
		{
			name:  "no presses",
			steps: []step{{at: 0, presses: nil, wantOK: false}},
		},
		{
			name: "mouse only",
			steps: []step{
				{at: 0, presses: []Press{{Source: SourceMouse, X: 1, Y: 2}}, want: Press{Source: SourceMouse, X: 1, Y: 2}, wantOK: true},
				{at: 10 * time.Millisecond, presses: []Press{{Source: SourceMouse, X: 3, Y: 4}}, want: Press{Source: SourceMouse, X: 3, Y: 4}, wantOK: true},
			},
		},
		{
			name: "touch and mouse in the same frame",
			steps: []step{
				{at: 0, presses: []Press{{Source: SourceMouse, X: 1}, {Source: SourceTouch, X: 2}}, want: Press{Source: SourceTouch, X: 2}, wantOK: true},
			},
		},
		{
			name: "ghost mouse press after touch",
			steps: []step{
				{at: 0, presses: []Press{{Source: SourceTouch, X: 5}}, want: Press{Source: SourceTouch, X: 5}, wantOK: true},
				{at: 300 * time.Millisecond, presses: []Press{{Source: SourceMouse, X: 5}}, wantOK: false},
				{at: 600 * time.Millisecond, presses: []Press{{Source: SourceMouse, X: 6}}, want: Press{Source: SourceMouse, X: 6}, wantOK: true},
			},
		},
		{
			name: "consecutive touches are all accepted",
			steps: []step{
				{at: 0, presses: []Press{{Source: SourceTouch}}, want: Press{Source: SourceTouch}, wantOK: true},
				{at: 100 * time.Millisecond, presses: []Press{{Source: SourceTouch}}, want: Press{Source: SourceTouch}, wantOK: true},
			},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := NewFilter(DefaultCompatWindow)
			for i, s := range tt.steps {
				got, ok := f.Next(start.Add(s.at), s.presses)
				assert.Equal(t, s.wantOK, ok, "step %d", i)
				assert.Equal(t, s.want, got, "step %d", i)
			}
		})
	}
}
