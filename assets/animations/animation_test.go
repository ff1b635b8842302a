package animations

import "testing"

func tick(a *Animation, speed float64, n int) {
	for i := 0; i < n; i++ {
		a.Update(speed)
	}
}

func TestAnimationAdvance(t *testing.T) {
	tests := []struct {
		name      string
		frames    int
		loop      bool
		speed     float64
		ticks     int
		wantFrame int
		finished  bool
	}{
		{"holds below one", 4, true, 0.25, 3, 0, false},
		{"one frame per full accumulator", 4, true, 0.5, 2, 1, false},
		{"loop wraps to zero", 3, true, 1, 3, 0, false},
		{"non-loop clamps at last", 3, false, 1, 10, 2, true},
		{"zero speed freezes", 5, true, 0, 50, 0, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a := NewAnimation(tt.frames, tt.loop)
			tick(a, tt.speed, tt.ticks)
			if a.Frame() != tt.wantFrame {
				t.Errorf("Frame() = %d, want %d", a.Frame(), tt.wantFrame)
			}
			if a.Finished() != tt.finished {
				t.Errorf("Finished() = %v, want %v", a.Finished(), tt.finished)
			}
		})
	}
}

func TestAnimationFinishedNeedsZeroTimer(t *testing.T) {
	a := NewAnimation(2, false)
	a.Update(1)
	if !a.Finished() {
		t.Fatal("expected finished right after reaching last frame")
	}
	a.Update(0.5)
	if a.Finished() {
		t.Error("finished should wait for the accumulator to reset")
	}
	a.Update(0.5)
	if !a.Finished() {
		t.Error("expected finished once the accumulator resets on the last frame")
	}
}

func TestAnimationRestart(t *testing.T) {
	a := NewAnimation(4, false)
	tick(a, 1, 5)
	a.Restart()
	if a.Frame() != 0 || a.Finished() || a.Looped {
		t.Errorf("restart left frame=%d finished=%v looped=%v", a.Frame(), a.Finished(), a.Looped)
	}
}

func TestAnimationSetFramesClamps(t *testing.T) {
	a := NewAnimation(12, true)
	tick(a, 1, 9)
	if a.Frame() != 9 {
		t.Fatalf("setup frame = %d", a.Frame())
	}
	a.SetFrames(6)
	if a.Frame() != 0 {
		t.Errorf("stale index should clamp to 0, got %d", a.Frame())
	}
	a.SetFrames(12)
	tick(a, 1, 3)
	a.SetFrames(6)
	if a.Frame() != 3 {
		t.Errorf("in-range index should be kept, got %d", a.Frame())
	}
}
