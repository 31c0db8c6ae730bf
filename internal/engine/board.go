package engine

import "sort"

// Game-phase and pressure thresholds. Empirically tuned; kept as named
// constants rather than re-derived (see DESIGN.md).
const (
	earlyPhaseFraction = 0.40
	midPhaseFraction   = 0.70

	// Trailing by more than this with few ends left flips the policy to
	// all-out shots.
	desperateDeficit  = 3
	desperateEndsLeft = 2

	// "Trailing badly" cutoff for the guard-own-stone branches.
	aggressiveDeficit = 2

	// Free guard zone: center guards are protected until this many stones
	// have been thrown in the end.
	fgzStoneCount = 5
)

// BoardState is the derived, per-turn assessment of a snapshot. It is
// rebuilt from scratch every turn and never persisted.
type BoardState struct {
	Team Team

	Active []Stone
	Own    []Stone
	Opp    []Stone

	// InHouse holds every stone inside the twelve-foot circle, ordered
	// ascending by distance to the tee.
	InHouse    []Stone
	OppInHouse []Stone

	ShotStone *Stone
	ShotTeam  Team

	// Scoring counts: a team's stones preceding the first opposing stone
	// in InHouse order. Zero for both when the house is empty.
	OwnScoring int
	OppScoring int

	OwnGuards    []Stone
	OppGuards    []Stone
	CenterGuards []Stone

	CenterBlocked bool
	FGZActive     bool

	// BotStoneNum is 1-indexed: the number of the stone the engine is
	// about to throw.
	BotStoneNum int

	ScoreDiff int // own minus opponent
	Hammer    bool

	EarlyGame bool
	MidGame   bool
	LateGame  bool
	Desperate bool

	End       int
	TotalEnds int
}

// EvaluateBoard derives a BoardState from a raw snapshot. Pure; empty or
// degenerate snapshots yield empty collections and a nil shot stone.
func EvaluateBoard(snap Snapshot) BoardState {
	b := BoardState{
		Team:        snap.Team,
		BotStoneNum: snap.ThrownOwn + 1,
		ScoreDiff:   snap.ScoreOwn - snap.ScoreOpp,
		Hammer:      snap.Hammer,
		FGZActive:   snap.ThrownOwn+snap.ThrownOpp < fgzStoneCount,
		End:         snap.End,
		TotalEnds:   snap.TotalEnds,
	}

	for _, s := range snap.Stones {
		if !s.Active {
			continue
		}
		b.Active = append(b.Active, s)
		if s.Team == snap.Team {
			b.Own = append(b.Own, s)
		} else {
			b.Opp = append(b.Opp, s)
		}
		if inHouse(s.Pos) {
			b.InHouse = append(b.InHouse, s)
		}
		if isGuard(s.Pos) {
			if s.Team == snap.Team {
				b.OwnGuards = append(b.OwnGuards, s)
			} else {
				b.OppGuards = append(b.OppGuards, s)
			}
			if isCenterLane(s.Pos) {
				b.CenterGuards = append(b.CenterGuards, s)
			}
		}
	}

	sort.SliceStable(b.InHouse, func(i, j int) bool {
		return TeeDist(b.InHouse[i].Pos) < TeeDist(b.InHouse[j].Pos)
	})
	for _, s := range b.InHouse {
		if s.Team != snap.Team {
			b.OppInHouse = append(b.OppInHouse, s)
		}
	}

	if len(b.InHouse) > 0 {
		b.ShotStone = &b.InHouse[0]
		b.ShotTeam = b.InHouse[0].Team
		for _, s := range b.InHouse {
			if s.Team != b.ShotTeam {
				break
			}
			if s.Team == snap.Team {
				b.OwnScoring++
			} else {
				b.OppScoring++
			}
		}
	}

	b.CenterBlocked = len(b.CenterGuards) > 0

	if snap.TotalEnds > 0 {
		frac := float64(snap.End) / float64(snap.TotalEnds)
		b.EarlyGame = frac <= earlyPhaseFraction
		b.LateGame = frac > midPhaseFraction
		b.MidGame = !b.EarlyGame && !b.LateGame

		endsLeft := snap.TotalEnds - snap.End
		b.Desperate = b.ScoreDiff < -desperateDeficit && endsLeft <= desperateEndsLeft
	}

	return b
}

// OwnCenterGuards returns the engine's own stones among the center guards.
func (b *BoardState) OwnCenterGuards() []Stone {
	var out []Stone
	for _, s := range b.CenterGuards {
		if s.Team == b.Team {
			out = append(out, s)
		}
	}
	return out
}

// OppCenterGuards returns the opponent's stones among the center guards.
func (b *BoardState) OppCenterGuards() []Stone {
	var out []Stone
	for _, s := range b.CenterGuards {
		if s.Team != b.Team {
			out = append(out, s)
		}
	}
	return out
}

// BestOwnHouseStone returns the engine's stone closest to the tee, or nil
// if none of its stones are in the house.
func (b *BoardState) BestOwnHouseStone() *Stone {
	for i := range b.InHouse {
		if b.InHouse[i].Team == b.Team {
			return &b.InHouse[i]
		}
	}
	return nil
}

func inHouse(p Vec2) bool {
	return TeeDist(p) <= HouseRadius
}

// isGuard reports whether a stone sits in the guard zone: past the far hog
// line, short of the tee line, outside the twelve-foot circle.
func isGuard(p Vec2) bool {
	return p.Y > FarHogY && p.Y < TeeY && TeeDist(p) > HouseRadius
}

func isCenterLane(p Vec2) bool {
	return p.X >= -CenterLaneHalfWidth && p.X <= CenterLaneHalfWidth
}
