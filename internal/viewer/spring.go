package viewer

import "github.com/charmbracelet/harmonica"

// springFPS is the fixed step rate the camera springs integrate at.
const springFPS = 60

// axisSpring eases one camera axis toward a target value. A frequency
// of zero disables easing and the axis snaps.
type axisSpring struct {
	spring  harmonica.Spring
	pos     float64
	vel     float64
	target  float64
	instant bool
}

// newAxisSpring creates a spring starting at rest on pos. Damping 1.0
// is critically damped, the axis settles without overshoot.
func newAxisSpring(frequency, pos float64) axisSpring {
	if frequency <= 0 {
		return axisSpring{pos: pos, target: pos, instant: true}
	}
	return axisSpring{
		spring: harmonica.NewSpring(harmonica.FPS(springFPS), frequency, 1.0),
		pos:    pos,
		target: pos,
	}
}

// step advances toward the target and returns the position delta.
func (a *axisSpring) step() float32 {
	before := a.pos
	if a.instant {
		a.pos = a.target
		a.vel = 0
		return float32(a.pos - before)
	}
	a.pos, a.vel = a.spring.Update(a.pos, a.vel, a.target)
	return float32(a.pos - before)
}
