package engine

import "math"

// Sweep model constants. The projection uses the same kinetic friction the
// simulator decelerates stones with.
const (
	iceFriction = 0.0168
	gravity     = 9.81

	// Above this speed the stone is a hit; line matters, not distance.
	highSpeedThreshold = 2.5

	// Lateral drift past this is off the broom and needs hard sweeping.
	sweepDriftLimit = 1.2
)

// AdviseSweep recommends sweep effort for one trajectory sample of the
// engine's own moving stone. It is stateless and re-evaluated every tick;
// nothing latches. Stones short of the near hog line are left alone.
func AdviseSweep(t Tick) SweepAdvisory {
	if t.Pos.Y < NearHogY {
		return SweepNone
	}
	speed := t.Vel.Len()
	if speed <= 0 {
		return SweepNone
	}

	if speed >= highSpeedThreshold {
		if math.Abs(t.Pos.X) > sweepDriftLimit {
			return SweepHard
		}
		return SweepLight
	}

	stop := projectStop(t.Pos, t.Vel)
	switch {
	case stop.Y < TeeY-HouseRadius:
		// Coming up short of the rings entirely.
		return SweepHard
	case stop.Y < TeeY-FourFootRadius:
		return SweepLight
	default:
		return SweepNone
	}
}

// projectStop extrapolates the resting position under constant kinetic
// friction: remaining distance v^2 / (2*mu*g) along the current heading.
func projectStop(pos, vel Vec2) Vec2 {
	speed := vel.Len()
	if speed <= 0 {
		return pos
	}
	dist := speed * speed / (2 * iceFriction * gravity)
	return pos.Add(vel.Scale(dist / speed))
}
