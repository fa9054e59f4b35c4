package scene

import "testing"

func newDefaultBounce() *Bounce {
	cfg := DefaultConfig()
	return NewBounce(cfg.StepX, cfg.StepY, cfg.BoundX, cfg.BoundY)
}

func TestBounceStartsAtOrigin(t *testing.T) {
	b := newDefaultBounce()

	if x, y := b.Position(); x != 0 || y != 0 {
		t.Errorf("initial position = (%v, %v), want (0, 0)", x, y)
	}
	if vx, vy := b.Velocity(); vx != 0.02 || vy != 0.02 {
		t.Errorf("initial velocity = (%v, %v), want (0.02, 0.02)", vx, vy)
	}
}

func TestBounceReachesXBoundOnStep425(t *testing.T) {
	b := newDefaultBounce()

	for i := 1; i <= 424; i++ {
		b.Step()
		if x, _ := b.Position(); x >= 8.5 {
			t.Fatalf("x reached %v after %d steps, want first at 425", x, i)
		}
	}

	flippedX, _ := b.Step()
	x, _ := b.Position()
	vx, _ := b.Velocity()
	if x < 8.5 {
		t.Errorf("after 425 steps x = %v, want >= 8.5", x)
	}
	if !flippedX {
		t.Error("step 425 should report an X reflection")
	}
	if vx != -0.02 {
		t.Errorf("velocity after reflection = %v, want -0.02", vx)
	}
}

func TestBounceReachesYBoundOnStep175(t *testing.T) {
	b := newDefaultBounce()

	for i := 1; i <= 175; i++ {
		_, flippedY := b.Step()
		if flippedY != (i == 175) {
			t.Fatalf("step %d: flippedY = %v", i, flippedY)
		}
	}
	if _, y := b.Position(); y != 3.5 {
		t.Errorf("y after 175 steps = %v, want 3.5", y)
	}
	if _, vy := b.Velocity(); vy != -0.02 {
		t.Errorf("vy after reflection = %v, want -0.02", vy)
	}
}

func TestBounceStaysInBounds(t *testing.T) {
	b := newDefaultBounce()
	bx, by := b.Bounds()

	// Several full periods on both axes.
	for i := 0; i < 10000; i++ {
		b.Step()
		x, y := b.Position()
		if x < -bx || x > bx {
			t.Fatalf("step %d: x = %v outside [-%v, %v]", i, x, bx, bx)
		}
		if y < -by || y > by {
			t.Fatalf("step %d: y = %v outside [-%v, %v]", i, y, by, by)
		}
	}
}

func TestBounceFlipsOnlyTheCrossingAxis(t *testing.T) {
	b := newDefaultBounce()

	for i := 0; i < 5000; i++ {
		vx0, vy0 := b.Velocity()
		fx, fy := b.Step()
		x, y := b.Position()
		vx, vy := b.Velocity()

		atX := x >= 8.5 || x <= -8.5
		atY := y >= 3.5 || y <= -3.5

		if fx != atX || (vx == vx0) == atX {
			t.Fatalf("step %d: x=%v reflected=%v velocity %v -> %v", i, x, fx, vx0, vx)
		}
		if fy != atY || (vy == vy0) == atY {
			t.Fatalf("step %d: y=%v reflected=%v velocity %v -> %v", i, y, fy, vy0, vy)
		}
	}
}

func TestBounceReturnsToNegativeBound(t *testing.T) {
	b := newDefaultBounce()

	// 425 steps out, 850 steps across to -8.5.
	for i := 0; i < 425+850; i++ {
		b.Step()
	}
	if x, _ := b.Position(); x != -8.5 {
		t.Errorf("x = %v, want -8.5", x)
	}
	if vx, _ := b.Velocity(); vx != 0.02 {
		t.Errorf("vx = %v, want 0.02 after reflecting off -8.5", vx)
	}
}
