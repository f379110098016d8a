package entity

// CameraPan moves the camera vertically from Start to Target over its timer.
// An inactive pan leaves the camera where it is.
type CameraPan struct {
	Start  float64
	Target float64
	Timer  Timer
	Active bool
}

// NewCameraPan creates a running pan
func NewCameraPan(start, target, duration float64) CameraPan {
	return CameraPan{
		Start:  start,
		Target: target,
		Timer:  NewTimer(duration, TimerOnce),
		Active: true,
	}
}

// Advance ticks the pan and returns the camera Y for this frame.
// ok is false when the pan is not running and the camera should not move.
func (p *CameraPan) Advance(dt float64) (y float64, ok bool) {
	if !p.Active {
		return 0, false
	}
	p.Timer.Tick(dt)
	y = Lerp(p.Start, p.Target, p.Timer.Fraction())
	if p.Timer.Finished() {
		p.Active = false
	}
	return y, true
}

// Lerp linearly interpolates between a and b
func Lerp(a, b, t float64) float64 {
	return a + (b-a)*t
}
