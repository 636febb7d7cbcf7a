package platformer

import (
	"testing"

	"github.com/vovakirdan/platformer/internal/core"
)

var testView = Viewport{Width: 1280, Height: 720}

func newTestPlayer(x, y float64) *Player {
	return NewPlayer(DefaultRules(), x, y, 30, 30, core.ColorRed)
}

func TestCheckCollision(t *testing.T) {
	tests := []struct {
		name      string
		yv        float64
		platformX float64
		platformY float64
		wantYV    float64
	}{
		{"lands this frame", 5, 500, 62, 0},
		{"top five below bottom", 10, 500, 65, 0},
		{"falls short", 1, 500, 62, 1},
		{"already below top", 5, 500, 55, 5},
		{"misses to the right", 5, 531, 62, 5},
		{"touches right edge", 5, 530, 62, 0},
		{"touches left edge", 5, 400, 62, 0},
		{"misses to the left", 5, 399, 62, 5},
		{"moving up", -5, 500, 62, -5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// Player spans x 500..530, bottom edge at 60.
			p := newTestPlayer(500, 30)
			p.YV = tt.yv
			p.AddPlatform(tt.platformX, tt.platformY, 100, 10, core.ColorDefault)

			p.checkCollision()

			if p.YV != tt.wantYV {
				t.Errorf("YV = %v, want %v", p.YV, tt.wantYV)
			}
			if p.Y != 30 {
				t.Errorf("collision moved the player to y=%v", p.Y)
			}
			if p.Collided() != (tt.wantYV == 0) {
				t.Errorf("Collided() = %v with YV %v", p.Collided(), p.YV)
			}
		})
	}
}

func TestCollidedWhenRestingInAir(t *testing.T) {
	p := newTestPlayer(500, 30)
	p.checkCollision()
	if !p.Collided() {
		t.Error("Expected Collided() with zero YV and no platforms")
	}
}

func TestUpdateYVelocity(t *testing.T) {
	tests := []struct {
		name   string
		y      float64
		yv     float64
		wantYV float64
	}{
		{"airborne", 100, 5, 5.5},
		{"reaches floor exactly", 685, 5, 5.5},
		{"would pass floor", 690, 5, 0},
		{"resting on floor", 690, 0, 0.5},
		{"below floor", 700, 0, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := newTestPlayer(500, tt.y)
			p.YV = tt.yv
			p.updateYVelocity(testView)
			if p.YV != tt.wantYV {
				t.Errorf("YV = %v, want %v", p.YV, tt.wantYV)
			}
		})
	}
}

func TestJump(t *testing.T) {
	tests := []struct {
		name     string
		yv       float64
		collided bool
		wantYV   float64
	}{
		{"resting", 0, false, -15},
		{"falling", 3, false, 3},
		{"falling after collision", 3, true, -12},
		{"rising", -4, false, -4},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := newTestPlayer(500, 30)
			p.YV = tt.yv
			p.isCollided = tt.collided
			p.Jump()
			if p.YV != tt.wantYV {
				t.Errorf("YV = %v, want %v", p.YV, tt.wantYV)
			}
		})
	}
}

func TestDescendAlwaysApplies(t *testing.T) {
	p := newTestPlayer(500, 30)
	p.YV = -10
	p.Descend()
	p.Descend()
	if p.YV != -8 {
		t.Errorf("YV = %v, want -8", p.YV)
	}
}

func TestBorderTransfersVelocityToPlatforms(t *testing.T) {
	tests := []struct {
		name     string
		x        float64
		xv       float64
		left     bool
		right    bool
		wantPlXV float64
	}{
		{"left band", 200, 3, true, false, -3},
		{"deep in left band", 0, -2, true, false, 2},
		{"right band", 1050, 4, false, true, -4},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := newTestPlayer(tt.x, 30)
			p.XV = tt.xv
			p.SetLeft(tt.left)
			p.SetRight(tt.right)
			a := p.AddPlatform(0, 100, 50, 10, core.ColorDefault)
			b := p.AddPlatform(900, 200, 50, 10, core.ColorDefault)

			p.updateXVelocity(testView)

			if p.XV != 0 {
				t.Errorf("player XV = %v, want 0", p.XV)
			}
			if a.XV != tt.wantPlXV || b.XV != tt.wantPlXV {
				t.Errorf("platform XV = %v, %v, want %v", a.XV, b.XV, tt.wantPlXV)
			}
		})
	}
}

func TestBorderIgnoredWithoutMatchingKey(t *testing.T) {
	// In the left band but pressing right: the player walks out normally.
	p := newTestPlayer(100, 30)
	p.SetRight(true)
	pl := p.AddPlatform(0, 100, 50, 10, core.ColorDefault)

	p.updateXVelocity(testView)

	if p.XV != 0.5 {
		t.Errorf("player XV = %v, want 0.5", p.XV)
	}
	if pl.XV != 0 {
		t.Errorf("platform XV = %v, want 0", pl.XV)
	}
}

func TestInputGoesToPlatformsWhileScrolling(t *testing.T) {
	p := newTestPlayer(500, 30)
	p.SetRight(true)
	pl := p.AddPlatform(0, 100, 50, 10, core.ColorDefault)
	pl.XV = 2

	p.updateXVelocity(testView)

	if pl.XV != 1 {
		t.Errorf("platform XV = %v, want 1", pl.XV)
	}
	if p.XV != 0 {
		t.Errorf("player XV = %v, want 0", p.XV)
	}
}

func TestRightWinsWhenBothHeld(t *testing.T) {
	p := newTestPlayer(500, 30)
	p.SetLeft(true)
	p.SetRight(true)

	p.updateXVelocity(testView)

	if p.XV != 0.5 {
		t.Errorf("XV = %v, want 0.5", p.XV)
	}
}

func TestPlatformsMoveBeforeCollisionCheck(t *testing.T) {
	// The platform starts beside the player and slides under it this frame.
	// The collision only registers because platforms update first.
	p := newTestPlayer(500, 30)
	p.YV = 5
	pl := p.AddPlatform(540, 62, 100, 10, core.ColorDefault)
	pl.XV = -20

	p.Update(testView, nil)

	if pl.X != 520 {
		t.Fatalf("platform x = %v, want 520", pl.X)
	}
	if p.Y != 30 {
		t.Errorf("player y = %v, want 30 (stopped on the platform)", p.Y)
	}
}

func TestFallAndLand(t *testing.T) {
	p := newTestPlayer(500, 30)
	p.AddPlatform(500, 400, 200, 10, core.ColorDefault)

	prevY := p.Y
	for frame := 0; frame < 300; frame++ {
		p.Update(testView, nil)
		if p.Y < prevY {
			t.Fatalf("frame %d: player rose from %v to %v without input", frame, prevY, p.Y)
		}
		if bottom := p.Y + p.Height(); bottom > 400 {
			t.Fatalf("frame %d: player bottom %v passed the platform top", frame, bottom)
		}
		prevY = p.Y
	}

	// Resting: every frame the clamp cancels the gravity added the frame before.
	restY := p.Y
	for frame := 0; frame < 50; frame++ {
		p.Update(testView, nil)
		if p.Y != restY {
			t.Fatalf("rest frame %d: y moved from %v to %v", frame, restY, p.Y)
		}
		if !p.Collided() {
			t.Fatalf("rest frame %d: expected the collision clamp to fire", frame)
		}
	}

	if bottom := restY + p.Height(); bottom < 398 {
		t.Errorf("player bottom %v, expected to rest just above 400", bottom)
	}
	if p.X != 500 {
		t.Errorf("player x drifted to %v", p.X)
	}
}

func TestSettlesOnFloor(t *testing.T) {
	p := newTestPlayer(500, 600)

	for i := 0; i < 200; i++ {
		p.Update(testView, nil)
	}

	if bottom := p.Y + p.Height(); bottom > 721 || bottom < 715 {
		t.Errorf("player bottom %v, expected near the floor", bottom)
	}
	if !p.Collided() {
		t.Error("Expected Collided() on the floor")
	}

	p.Jump()
	if p.YV != -15 {
		t.Errorf("Jump on floor: YV = %v, want -15", p.YV)
	}
}

func TestUpdateDrawOrder(t *testing.T) {
	p := newTestPlayer(500, 30)
	p.AddPlatform(100, 100, 50, 10, core.ColorGreen)
	p.AddPlatform(200, 200, 50, 10, core.ColorBlue)
	dl := core.NewDrawList(0, 0)

	p.Update(testView, dl)

	cmds := dl.Commands()
	if len(cmds) != 3 {
		t.Fatalf("Expected 3 draw commands, got %d", len(cmds))
	}
	want := []core.Color{core.ColorGreen, core.ColorBlue, core.ColorRed}
	for i, c := range want {
		if cmds[i].Color != c {
			t.Errorf("command %d color = %v, want %v", i, cmds[i].Color, c)
		}
	}
	if cmds[2].X != p.X || cmds[2].Y != p.Y {
		t.Errorf("player drawn at (%v,%v), want (%v,%v)", cmds[2].X, cmds[2].Y, p.X, p.Y)
	}
}

func TestDrawWorldDoesNotSimulate(t *testing.T) {
	p := newTestPlayer(500, 30)
	p.YV = 4
	p.AddPlatform(100, 100, 50, 10, core.ColorDefault)
	dl := core.NewDrawList(0, 0)

	p.DrawWorld(dl)

	if dl.Len() != 2 {
		t.Errorf("Expected 2 draw commands, got %d", dl.Len())
	}
	if p.Y != 30 || p.YV != 4 {
		t.Errorf("DrawWorld changed state: y=%v yv=%v", p.Y, p.YV)
	}
}
