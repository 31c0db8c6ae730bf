package engine

import "math"

// Rink geometry in ice-plane meters. The engine's own end is at y=0 and
// stones travel toward positive y; x=0 is the centerline. These must match
// the constants the trajectory simulator is built with.
const (
	StoneRadius = 0.145

	NearHogY = 6.40
	FarHogY  = 28.35
	TeeY     = 34.75
	BackY    = TeeY + 1.83

	ButtonRadius    = 0.15
	FourFootRadius  = 0.61
	EightFootRadius = 1.22
	HouseRadius     = 1.83 // twelve-foot circle

	// Half-width of the lane a guard has to sit in to count as a center
	// guard for free-guard-zone purposes.
	CenterLaneHalfWidth = 0.50
)

// Tee is the house center on the scoring end.
var Tee = Vec2{X: 0, Y: TeeY}

// Vec2 is a point or vector in the ice plane.
type Vec2 struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// Add returns v+w.
func (v Vec2) Add(w Vec2) Vec2 { return Vec2{v.X + w.X, v.Y + w.Y} }

// Sub returns v-w.
func (v Vec2) Sub(w Vec2) Vec2 { return Vec2{v.X - w.X, v.Y - w.Y} }

// Scale returns v scaled by k.
func (v Vec2) Scale(k float64) Vec2 { return Vec2{v.X * k, v.Y * k} }

// Len returns the Euclidean length of v.
func (v Vec2) Len() float64 { return math.Hypot(v.X, v.Y) }

// Dist returns the distance between two points.
func Dist(a, b Vec2) float64 { return math.Hypot(a.X-b.X, a.Y-b.Y) }

// TeeDist returns the distance from p to the house center.
func TeeDist(p Vec2) float64 { return Dist(p, Tee) }

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func sign(v float64) float64 {
	if v < 0 {
		return -1
	}
	return 1
}
