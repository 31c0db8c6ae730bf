package engine

// Collateral windows: a struck stone travels up-ice (toward +y), so a
// friendly stone within this wedge behind the target is at risk.
const (
	dangerDepth  = 12 * StoneRadius
	dangerRadius = 4 * StoneRadius
)

// hasFriendlyBehind reports whether one of the engine's own stones lies in
// the path a stone knocked off target would travel.
func hasFriendlyBehind(target Vec2, b *BoardState) bool {
	for _, s := range b.Own {
		dy := s.Pos.Y - target.Y
		if dy <= 0 || dy > dangerDepth {
			continue
		}
		dx := s.Pos.X - target.X
		if dx > -dangerRadius && dx < dangerRadius {
			return true
		}
	}
	return false
}

// findSafeTarget returns the nearest-to-tee opponent house stone that can
// be struck without endangering a friendly stone behind it, or nil when
// every candidate is unsafe.
func findSafeTarget(b *BoardState) *Stone {
	for i := range b.OppInHouse {
		if !hasFriendlyBehind(b.OppInHouse[i].Pos, b) {
			return &b.OppInHouse[i]
		}
	}
	return nil
}

// findSafeOppGuard returns the first opponent guard safe to strike, or nil.
func findSafeOppGuard(b *BoardState) *Stone {
	for i := range b.OppGuards {
		if !hasFriendlyBehind(b.OppGuards[i].Pos, b) {
			return &b.OppGuards[i]
		}
	}
	return nil
}
