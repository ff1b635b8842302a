package animations

// Animation advances through Frames frames at a per-tick fractional speed.
// A looping animation wraps to frame 0; a non-looping one holds its last frame.
type Animation struct {
	Frames int
	Loop   bool
	Looped bool // set once the animation has wrapped or reached its last frame

	timer float64
	frame int
}

func NewAnimation(frames int, loop bool) *Animation {
	return &Animation{
		Frames: frames,
		Loop:   loop,
	}
}

// Update adds speed to the accumulator and moves one frame once it reaches 1.
func (a *Animation) Update(speed float64) {
	if a.Frames <= 0 {
		return
	}
	a.timer += speed
	if a.timer < 1 {
		return
	}
	a.timer = 0
	if a.frame < a.Frames-1 {
		a.frame++
		if !a.Loop && a.frame == a.Frames-1 {
			a.Looped = true
		}
		return
	}
	a.Looped = true
	if a.Loop {
		a.frame = 0
	}
}

// Finished reports a non-looping animation holding its last frame.
func (a *Animation) Finished() bool {
	return !a.Loop && a.frame >= a.Frames-1 && a.timer == 0
}

func (a *Animation) Frame() int {
	return a.frame
}

func (a *Animation) Restart() {
	a.frame = 0
	a.timer = 0
	a.Looped = false
}

// SetFrames swaps the frame count in place. A frame index left out of range
// falls back to 0 rather than faulting.
func (a *Animation) SetFrames(frames int) {
	a.Frames = frames
	if a.frame >= frames || a.frame < 0 {
		a.frame = 0
	}
}
