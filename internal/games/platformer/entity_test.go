package platformer

import (
	"math"
	"testing"

	"github.com/vovakirdan/platformer/internal/core"
)

func TestDecayXVelocity(t *testing.T) {
	tests := []struct {
		name string
		xv   float64
		want float64
	}{
		{"resting", 0, 0},
		{"positive", 3, 2.5},
		{"negative", -3, -2.5},
		{"positive snaps", 0.3, 0},
		{"negative snaps", -0.3, 0},
		{"exact step", 0.5, 0},
		{"one step left", 1, 0.5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := NewEntity(0, 0, 10, 10, core.ColorDefault)
			e.XV = tt.xv
			e.DecayXVelocity(0.5)
			if e.XV != tt.want {
				t.Errorf("DecayXVelocity(%v) = %v, want %v", tt.xv, e.XV, tt.want)
			}
		})
	}
}

func TestDecayConvergesWithoutSignFlip(t *testing.T) {
	for _, start := range []float64{7.3, -7.3, 1, -0.1, 250} {
		e := NewEntity(0, 0, 10, 10, core.ColorDefault)
		e.XV = start
		limit := int(math.Ceil(math.Abs(start) / 0.5))

		calls := 0
		for e.XV != 0 && calls <= limit {
			e.DecayXVelocity(0.5)
			calls++
			if e.XV*start < 0 {
				t.Fatalf("start %v: velocity changed sign to %v", start, e.XV)
			}
		}
		if e.XV != 0 {
			t.Errorf("start %v: velocity %v after %d calls, want 0", start, e.XV, calls)
		}
		if calls > limit {
			t.Errorf("start %v: took %d calls, want at most %d", start, calls, limit)
		}
	}
}

func TestEntityDraw(t *testing.T) {
	e := NewEntity(10, 20, 30, 40, core.ColorRed)
	dl := core.NewDrawList(0, 0)

	e.Draw(dl)
	e.Draw(nil)

	if dl.Len() != 1 {
		t.Fatalf("Expected 1 draw command, got %d", dl.Len())
	}
	want := core.DrawCmd{X: 10, Y: 20, W: 30, H: 40, Color: core.ColorRed}
	if got := dl.Commands()[0]; got != want {
		t.Errorf("Draw recorded %+v, want %+v", got, want)
	}
}
