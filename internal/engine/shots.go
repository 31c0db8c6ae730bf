package engine

// Weight bands on the 0-100 delivery scale, one per shot family. A
// constructor always draws its weight inside its band; the imperfection
// model may push the executed weight outside it.
const (
	weightGuardMin = 25
	weightGuardMax = 35

	weightDrawMin = 40
	weightDrawMax = 52

	weightTapMin = 55
	weightTapMax = 62

	weightControlMin = 62
	weightControlMax = 72

	weightTakeoutMin = 80
	weightTakeoutMax = 90

	weightPeelMin = 90
	weightPeelMax = 100

	weightBlankMin = 85
	weightBlankMax = 95
)

// Placement offsets, meters.
const (
	centerGuardOffset = 2.0 // past the far hog line
	cornerGuardOffset = 1.5
	cornerGuardX      = 1.2

	drawBehindDepth = 2.5 // how far past its guard a come-around rests
	guardAheadDist  = 3.0 // how far down-ice of a stone its guard sits
	freezeGap       = 2 * StoneRadius
	rollOffset      = 0.30 // lateral bite for hit-and-roll

	blankThroughX = 0.60
	blankThroughY = BackY + 2.0
)

// Shot labels, also used as stable identifiers by the store and scanner.
const (
	LabelCenterGuard     = "center guard"
	LabelCornerGuard     = "corner guard"
	LabelDrawBehindGuard = "draw behind guard"
	LabelDrawToHouse     = "draw to house"
	LabelDrawToButton    = "draw to button"
	LabelGuardOwnStone   = "guard own stone"
	LabelTakeout         = "takeout"
	LabelPeel            = "peel"
	LabelBlank           = "blank"
	LabelHitAndRoll      = "hit and roll"
	LabelFreeze          = "freeze"
	LabelTap             = "tap"
)

// Constructor builds a concrete shot plan from a board assessment. Every
// constructor degrades to a documented fallback when its target is
// missing; none ever returns a zero plan.
type Constructor func(b *BoardState, r *Rand) ShotPlan

func makeCenterGuard(b *BoardState, r *Rand) ShotPlan {
	return ShotPlan{
		Target:  Vec2{X: r.Between(-0.3, 0.3), Y: FarHogY + centerGuardOffset},
		Weight:  r.Between(weightGuardMin, weightGuardMax),
		SpinDir: r.Sign(),
		SpinMag: 2.5,
		Label:   LabelCenterGuard,
	}
}

func makeCornerGuard(b *BoardState, r *Rand) ShotPlan {
	x := cornerGuardX * float64(r.Sign())
	return ShotPlan{
		Target: Vec2{X: x, Y: FarHogY + cornerGuardOffset},
		Weight: r.Between(weightGuardMin, weightGuardMax),
		// Rotation that curls the stone in toward the lane it guards.
		SpinDir: -int(sign(x)),
		SpinMag: 3.0,
		Label:   LabelCornerGuard,
	}
}

// makeDrawBehindGuard comes around a randomly chosen own guard into the
// house. Falls back to a plain draw when no own guard exists.
func makeDrawBehindGuard(b *BoardState, r *Rand) ShotPlan {
	if len(b.OwnGuards) == 0 {
		return makeDrawToHouse(b, r)
	}
	g := b.OwnGuards[int(r.Float64()*float64(len(b.OwnGuards)))%len(b.OwnGuards)]
	y := clamp(g.Pos.Y+drawBehindDepth, TeeY-HouseRadius+StoneRadius, TeeY)
	spin := -int(sign(g.Pos.X))
	if g.Pos.X == 0 {
		spin = r.Sign()
	}
	return ShotPlan{
		Target:  Vec2{X: g.Pos.X, Y: y},
		Weight:  r.Between(weightDrawMin, weightDrawMax),
		SpinDir: spin,
		SpinMag: r.Between(3.0, 4.0),
		Label:   LabelDrawBehindGuard,
	}
}

func makeDrawToHouse(b *BoardState, r *Rand) ShotPlan {
	return ShotPlan{
		Target:  Vec2{X: r.Between(-0.6, 0.6), Y: TeeY - r.Between(0.2, 0.8)},
		Weight:  r.Between(weightDrawMin, weightDrawMax),
		SpinDir: r.Sign(),
		SpinMag: 3.0,
		Label:   LabelDrawToHouse,
	}
}

func makeDrawToButton(b *BoardState, r *Rand) ShotPlan {
	return ShotPlan{
		Target:  Tee,
		Weight:  r.Between(weightDrawMin+4, weightDrawMax),
		SpinDir: r.Sign(),
		SpinMag: 3.0,
		Label:   LabelDrawToButton,
	}
}

// makeGuardOwnStone places a guard a few meters down-ice of the engine's
// best house stone. Falls back to a center guard when the house is bare.
func makeGuardOwnStone(b *BoardState, r *Rand) ShotPlan {
	best := b.BestOwnHouseStone()
	if best == nil {
		return makeCenterGuard(b, r)
	}
	return ShotPlan{
		Target:  Vec2{X: best.Pos.X, Y: best.Pos.Y - guardAheadDist},
		Weight:  r.Between(weightGuardMin, weightGuardMax),
		SpinDir: r.Sign(),
		SpinMag: 2.5,
		Label:   LabelGuardOwnStone,
	}
}

// makeTakeout strikes the nearest safe opponent house stone. With no safe
// house target it tries a safe opponent guard, then freezes behind its own
// guards, then draws. Note the guard strike is only reachable while an
// opponent stone occupies the house; clearing a guard with nothing behind
// it is deliberately skipped (see DESIGN.md).
func makeTakeout(b *BoardState, r *Rand) ShotPlan {
	if len(b.OppInHouse) == 0 {
		return makeDrawToHouse(b, r)
	}
	target := findSafeTarget(b)
	if target == nil {
		target = findSafeOppGuard(b)
	}
	if target == nil {
		if len(b.OwnGuards) > 0 {
			return makeFreeze(b, r)
		}
		return makeDrawToHouse(b, r)
	}
	return ShotPlan{
		Target:  target.Pos,
		Weight:  r.Between(weightTakeoutMin, weightTakeoutMax),
		SpinDir: r.Sign(),
		SpinMag: 2.0,
		Label:   LabelTakeout,
	}
}

// makePeel clears an opponent center guard at top weight, but only a safe
// one. Draws when there is nothing safe to peel.
func makePeel(b *BoardState, r *Rand) ShotPlan {
	for _, g := range b.OppCenterGuards() {
		if hasFriendlyBehind(g.Pos, b) {
			continue
		}
		return ShotPlan{
			Target:  g.Pos,
			Weight:  r.Between(weightPeelMin, weightPeelMax),
			SpinDir: r.Sign(),
			SpinMag: 2.0,
			Label:   LabelPeel,
		}
	}
	return makeDrawToHouse(b, r)
}

// makeBlank throws heavy through an empty house to keep the hammer. With
// an opponent stone in the house it has to clear it first.
func makeBlank(b *BoardState, r *Rand) ShotPlan {
	if len(b.OppInHouse) > 0 {
		return makeTakeout(b, r)
	}
	return ShotPlan{
		Target:  Vec2{X: blankThroughX * float64(r.Sign()), Y: blankThroughY},
		Weight:  r.Between(weightBlankMin, weightBlankMax),
		SpinDir: r.Sign(),
		SpinMag: 2.0,
		Label:   LabelBlank,
	}
}

// makeHitAndRoll strikes a safe opponent stone slightly off-center so the
// shooter rolls toward the middle of the house after contact.
func makeHitAndRoll(b *BoardState, r *Rand) ShotPlan {
	target := findSafeTarget(b)
	if target == nil {
		return makeDrawToHouse(b, r)
	}
	off := -sign(target.Pos.X) * rollOffset
	if target.Pos.X == 0 {
		off = rollOffset * float64(r.Sign())
	}
	return ShotPlan{
		Target:  Vec2{X: target.Pos.X + off, Y: target.Pos.Y},
		Weight:  r.Between(weightControlMin, weightControlMax),
		SpinDir: r.Sign(),
		SpinMag: 2.2,
		Label:   LabelHitAndRoll,
	}
}

// makeFreeze draws to rest against the face of the nearest opponent house
// stone, denying a clean takeout. Draws to the button when the house holds
// no opponent stone.
func makeFreeze(b *BoardState, r *Rand) ShotPlan {
	if len(b.OppInHouse) == 0 {
		return makeDrawToButton(b, r)
	}
	o := b.OppInHouse[0]
	return ShotPlan{
		Target:  Vec2{X: o.Pos.X, Y: o.Pos.Y - freezeGap},
		Weight:  r.Between(weightDrawMin, weightDrawMax),
		SpinDir: r.Sign(),
		SpinMag: r.Between(3.0, 4.0),
		Label:   LabelFreeze,
	}
}

// makeTap nudges a safe opponent stone straight back at gentle weight.
func makeTap(b *BoardState, r *Rand) ShotPlan {
	target := findSafeTarget(b)
	if target == nil {
		return makeDrawToHouse(b, r)
	}
	return ShotPlan{
		Target:  target.Pos,
		Weight:  r.Between(weightTapMin, weightTapMax),
		SpinDir: r.Sign(),
		SpinMag: 2.2,
		Label:   LabelTap,
	}
}
