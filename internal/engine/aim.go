package engine

import "math"

// Aim and delivery tuning.
const (
	// AimLimitDeg bounds the slider the simulator exposes.
	AimLimitDeg = 5.0

	// Full-weight release speed, m/s. Release speed scales linearly with
	// the 0-100 weight.
	maxReleaseSpeed = 5.0

	// Empirical curl scale: lateral drift = curlScale * spin / speed.
	curlScale = 0.85

	minCurlSpeed = 0.5
)

// releaseSpeed maps a delivery weight to the speed at the release point.
func releaseSpeed(weight float64) float64 {
	return weight / 100 * maxReleaseSpeed
}

// SolveAim converts a plan's target into a release bearing in degrees.
// Light shots get a signed offset against the stone's expected curl so
// the released line compensates for the drift into the target; heavy
// shots run too fast to curl meaningfully and are aimed straight. The
// result is clamped to the slider range.
func SolveAim(plan ShotPlan) float64 {
	dx := plan.Target.X
	dy := plan.Target.Y
	if dy <= 0 {
		dy = 1
	}
	aim := math.Atan2(dx, dy) * 180 / math.Pi

	if plan.Weight < weightControlMin {
		speed := math.Max(releaseSpeed(plan.Weight), minCurlSpeed)
		drift := curlScale * plan.SpinMag / speed
		dist := math.Hypot(dx, dy)
		offset := math.Atan(drift/dist) * 180 / math.Pi
		aim -= float64(plan.SpinDir) * offset
	}

	return clamp(aim, -AimLimitDeg, AimLimitDeg)
}
