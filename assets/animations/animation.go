package animations

// Animation steps through frame indices First..Last, one frame every
// 1/FPS seconds.
type Animation struct {
	First            int
	Last             int
	FPS              float64
	frameCounter     float64 // seconds until the next frame
	frame            int
	Looped           bool
	FreezeOnComplete bool // If true, stay on last frame instead of looping
}

// Update advances the animation by dt seconds. Several frames may pass in
// one call when dt is long.
func (a *Animation) Update(dt float64) {
	if a.FPS <= 0 || dt <= 0 {
		return
	}
	a.frameCounter -= dt
	for a.frameCounter < 0 {
		a.frameCounter += 1 / a.FPS
		a.frame++
		if a.frame > a.Last {
			a.Looped = true
			if a.FreezeOnComplete {
				// Stay on last frame
				a.frame = a.Last
				a.frameCounter = 0
				return
			}
			// loop back to the beginning
			a.frame = a.First
		}
	}
}

func (a *Animation) Frame() int {
	return a.frame
}

// Progress is the position of the current frame within the clip, in [0, 1).
func (a *Animation) Progress() float64 {
	n := a.Last - a.First + 1
	if n <= 0 {
		return 0
	}
	return float64(a.frame-a.First) / float64(n)
}

func (a *Animation) Restart() {
	a.frame = a.First
	a.frameCounter = a.period()
	a.Looped = false
}

func (a *Animation) period() float64 {
	if a.FPS <= 0 {
		return 0
	}
	return 1 / a.FPS
}

func NewAnimation(first, last int, fps float64) *Animation {
	a := &Animation{
		First: first,
		Last:  last,
		FPS:   fps,
		frame: first,
	}
	a.frameCounter = a.period()
	return a
}
