package engine

import (
	"math"
	"testing"
)

func tick(x, y, vx, vy float64) Tick {
	return Tick{Pos: Vec2{X: x, Y: y}, Vel: Vec2{X: vx, Y: vy}}
}

func TestAdviseSweepBeforeHogLine(t *testing.T) {
	if got := AdviseSweep(tick(0, NearHogY-1, 0, 3.0)); got != SweepNone {
		t.Errorf("Expected no sweeping before the hog line, got %q", got)
	}
}

func TestAdviseSweepStoppedStone(t *testing.T) {
	if got := AdviseSweep(tick(0, 20, 0, 0)); got != SweepNone {
		t.Errorf("Expected no sweeping for a resting stone, got %q", got)
	}
}

func TestAdviseSweepHighSpeed(t *testing.T) {
	t.Run("drifting wide", func(t *testing.T) {
		if got := AdviseSweep(tick(1.3, 10, 0, 3.0)); got != SweepHard {
			t.Errorf("Expected hard sweep off the broom, got %q", got)
		}
		if got := AdviseSweep(tick(-1.3, 10, 0, 3.0)); got != SweepHard {
			t.Errorf("Expected hard sweep off the broom on the left, got %q", got)
		}
	})
	t.Run("on line", func(t *testing.T) {
		if got := AdviseSweep(tick(1.2, 10, 0, 3.0)); got != SweepLight {
			t.Errorf("Expected light stabilizing sweep, got %q", got)
		}
		if got := AdviseSweep(tick(0, 10, 0, 3.0)); got != SweepLight {
			t.Errorf("Expected light stabilizing sweep, got %q", got)
		}
	})
}

// Draw-weight advice keys off the projected resting position.
func TestAdviseSweepDrawWeight(t *testing.T) {
	speedToStopAt := func(fromY, atY float64) float64 {
		return math.Sqrt((atY - fromY) * 2 * iceFriction * gravity)
	}

	t.Run("short of the rings", func(t *testing.T) {
		v := speedToStopAt(20, TeeY-HouseRadius-1)
		if got := AdviseSweep(tick(0, 20, 0, v)); got != SweepHard {
			t.Errorf("Expected hard sweep to drag it into the rings, got %q", got)
		}
	})

	t.Run("front of the house", func(t *testing.T) {
		v := speedToStopAt(20, TeeY-1.0)
		if got := AdviseSweep(tick(0, 20, 0, v)); got != SweepLight {
			t.Errorf("Expected light sweep toward the four-foot, got %q", got)
		}
	})

	t.Run("dying on the button", func(t *testing.T) {
		v := speedToStopAt(20, TeeY)
		if got := AdviseSweep(tick(0, 20, 0, v)); got != SweepNone {
			t.Errorf("Expected no sweep on a shot dying at the tee, got %q", got)
		}
	})

	t.Run("running through the house", func(t *testing.T) {
		v := speedToStopAt(20, BackY+2)
		if v >= highSpeedThreshold {
			t.Skip("projection speed crosses into hit territory")
		}
		if got := AdviseSweep(tick(0, 20, 0, v)); got != SweepNone {
			t.Errorf("Expected no sweep on a stone running through, got %q", got)
		}
	})
}

func TestAdviseSweepStateless(t *testing.T) {
	sample := tick(0.4, 22, 0.02, 1.4)
	first := AdviseSweep(sample)
	for i := 0; i < 10; i++ {
		if got := AdviseSweep(sample); got != first {
			t.Fatal("Advisory changed across identical ticks")
		}
	}
}

func TestProjectStopDirection(t *testing.T) {
	stop := projectStop(Vec2{X: 0, Y: 10}, Vec2{X: 0.1, Y: 2.0})
	if stop.Y <= 10 {
		t.Error("Projection must extend along the direction of travel")
	}
	if stop.X <= 0 {
		t.Error("Projection must carry the lateral component")
	}

	resting := projectStop(Vec2{X: 1, Y: 2}, Vec2{})
	if resting != (Vec2{X: 1, Y: 2}) {
		t.Errorf("Resting stone should project to itself, got %+v", resting)
	}
}
