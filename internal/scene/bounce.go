package scene

// Bounce is a 2D point reflecting inside the box [-BoundX, BoundX] × [-BoundY, BoundY].
//
// Each axis moves a fixed step per call to Step, not a time-scaled one, so
// the apparent speed follows the frame rate. The position is tracked as a
// signed count of steps and is always an exact multiple of the step; with a
// 0.02 step and a 8.5 bound the edge is reached on step 425.
type Bounce struct {
	x, y bounceAxis
}

type bounceAxis struct {
	step  float64
	bound float64
	ticks int64 // position / step
	dir   int64 // +1 or -1
}

// NewBounce returns a bounce at the origin moving towards +X and +Y.
func NewBounce(stepX, stepY, boundX, boundY float64) *Bounce {
	return &Bounce{
		x: bounceAxis{step: stepX, bound: boundX, dir: 1},
		y: bounceAxis{step: stepY, bound: boundY, dir: 1},
	}
}

// Step advances both axes by one step and reflects any axis that reached
// its bound. Returns which axes reflected.
func (b *Bounce) Step() (flippedX, flippedY bool) {
	return b.x.step1(), b.y.step1()
}

func (a *bounceAxis) step1() bool {
	a.ticks += a.dir
	p := a.position()
	if p >= a.bound || p <= -a.bound {
		a.dir = -a.dir
		return true
	}
	return false
}

func (a bounceAxis) position() float64 {
	return float64(a.ticks) * a.step
}

func (a bounceAxis) velocity() float64 {
	return float64(a.dir) * a.step
}

// Position returns the current offset.
func (b *Bounce) Position() (x, y float64) {
	return b.x.position(), b.y.position()
}

// Velocity returns the signed per-step displacement of each axis.
func (b *Bounce) Velocity() (vx, vy float64) {
	return b.x.velocity(), b.y.velocity()
}

// Bounds returns the half extents of the box.
func (b *Bounce) Bounds() (x, y float64) {
	return b.x.bound, b.y.bound
}
