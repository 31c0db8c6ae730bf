package engine

// Probability of freezing onto an opponent shot stone behind our own
// guard in the middle stones of a defensive end.
const freezeChance = 0.40

// Lead comfortable enough to blank an end and carry the hammer forward.
const blankLeadMargin = 3

// Rule is one branch of the shot policy: the first rule whose predicate
// holds decides the shot. Expressing the policy as ordered tables keeps
// every branch independently testable and the whole tree enumerable.
type Rule struct {
	Name string
	When func(*BoardState) bool
	Do   Constructor
}

// SelectShot runs the policy for the board's hammer state. The final rule
// of each table always matches, so a plan is always produced.
func SelectShot(b *BoardState, r *Rand) ShotPlan {
	rules := withoutHammerRules
	if b.Hammer {
		rules = withHammerRules
	}
	for _, rule := range rules {
		if rule.When(b) {
			return rule.Do(b, r)
		}
	}
	// Unreachable: both tables end in a catch-all.
	return makeDrawToHouse(b, r)
}

// PolicyRules exposes the active rule table, mainly so tests and debug
// tooling can enumerate the policy.
func PolicyRules(hammer bool) []Rule {
	if hammer {
		return withHammerRules
	}
	return withoutHammerRules
}

func stones(lo, hi int) func(*BoardState) bool {
	return func(b *BoardState) bool { return b.BotStoneNum >= lo && b.BotStoneNum <= hi }
}

func always(*BoardState) bool { return true }

func and(ps ...func(*BoardState) bool) func(*BoardState) bool {
	return func(b *BoardState) bool {
		for _, p := range ps {
			if !p(b) {
				return false
			}
		}
		return true
	}
}

// lateAndTrailing marks the situations where a gentle tap is no longer
// enough and guards get peeled instead.
func lateAndTrailing(b *BoardState) bool { return b.LateGame && b.ScoreDiff < 0 }

// ---- defensive policy (no hammer) ----

var withoutHammerRules = []Rule{
	{
		Name: "lead: come around a doubled center",
		When: and(stones(1, 2), func(b *BoardState) bool { return len(b.CenterGuards) >= 2 }),
		Do:   makeDrawBehindGuard,
	},
	{
		Name: "lead: center guard",
		When: stones(1, 2),
		Do:   makeCenterGuard,
	},
	{
		Name: "second: replace cleared center guard",
		When: and(stones(3, 4), func(b *BoardState) bool {
			return !b.FGZActive && len(b.OwnCenterGuards()) == 0
		}),
		Do: makeCenterGuard,
	},
	{
		Name: "second: opponent sitting shot",
		When: and(stones(3, 4), func(b *BoardState) bool {
			return b.ShotTeam != TeamNone && b.ShotTeam != b.Team
		}),
		Do: func(b *BoardState, r *Rand) ShotPlan {
			if len(b.OwnGuards) > 0 && r.Bool(freezeChance) {
				return makeFreeze(b, r)
			}
			return makeDrawBehindGuard(b, r)
		},
	},
	{
		Name: "second: draw",
		When: stones(3, 4),
		Do:   makeDrawToHouse,
	},
	{
		Name: "third: opponent lying two or more",
		When: and(stones(5, 6), func(b *BoardState) bool { return b.OppScoring >= 2 }),
		Do:   makeTakeout,
	},
	{
		Name: "third: opponent lying one",
		When: and(stones(5, 6), func(b *BoardState) bool { return b.OppScoring == 1 }),
		Do: func(b *BoardState, r *Rand) ShotPlan {
			if b.EarlyGame && b.ScoreDiff >= 0 {
				return makeTap(b, r)
			}
			if lateAndTrailing(b) {
				return makeTakeout(b, r)
			}
			return makeHitAndRoll(b, r)
		},
	},
	{
		Name: "third: protect the count while chasing",
		When: and(stones(5, 6), func(b *BoardState) bool {
			return b.OwnScoring >= 1 && b.ScoreDiff <= -aggressiveDeficit
		}),
		Do: makeGuardOwnStone,
	},
	{
		Name: "third: draw",
		When: stones(5, 6),
		Do:   makeDrawToHouse,
	},
	{
		Name: "skip: opponent lying two or more",
		When: and(stones(7, 8), func(b *BoardState) bool { return b.OppScoring >= 2 }),
		Do:   makeTakeout,
	},
	{
		Name: "skip: opponent lying one",
		When: and(stones(7, 8), func(b *BoardState) bool { return b.OppScoring == 1 }),
		Do: func(b *BoardState, r *Rand) ShotPlan {
			if b.Desperate {
				return makeTakeout(b, r)
			}
			return makeHitAndRoll(b, r)
		},
	},
	{
		Name: "skip: guard a multi-count",
		When: and(stones(7, 8), func(b *BoardState) bool { return b.OwnScoring >= 2 }),
		Do:   makeGuardOwnStone,
	},
	{
		Name: "skip: freeze to protect the single",
		When: and(stones(7, 8), func(b *BoardState) bool {
			return b.OwnScoring == 1 && len(b.OppInHouse) > 0
		}),
		Do: makeFreeze,
	},
	{
		Name: "default: draw",
		When: always,
		Do:   makeDrawToHouse,
	},
}

// ---- offensive policy (hammer) ----

// oppCenterClearable holds once the free guard zone has lapsed and the
// opponent still has a center guard up.
func oppCenterClearable(b *BoardState) bool {
	return !b.FGZActive && len(b.OppCenterGuards()) > 0
}

// clearOppCenter picks how hard to deal with an opponent center guard:
// gentle bump-and-roll by default, full peel when late and trailing.
func clearOppCenter(b *BoardState, r *Rand) ShotPlan {
	if lateAndTrailing(b) {
		return makePeel(b, r)
	}
	return makeHitAndRoll(b, r)
}

var withHammerRules = []Rule{
	{
		Name: "lead: deal with opponent center guard",
		When: and(stones(1, 2), oppCenterClearable),
		Do:   clearOppCenter,
	},
	{
		Name: "lead: open draw",
		When: and(stones(1, 2), func(b *BoardState) bool { return b.EarlyGame && b.ScoreDiff >= 0 }),
		Do:   makeDrawToHouse,
	},
	{
		Name: "lead: corner guard",
		When: stones(1, 2),
		Do:   makeCornerGuard,
	},
	{
		Name: "second: deal with opponent center guard",
		When: and(stones(3, 4), oppCenterClearable),
		Do:   clearOppCenter,
	},
	{
		Name: "second: opponent lying two or more",
		When: and(stones(3, 4), func(b *BoardState) bool { return b.OppScoring >= 2 }),
		Do:   makeTakeout,
	},
	{
		Name: "second: opponent lying one",
		When: and(stones(3, 4), func(b *BoardState) bool {
			return b.OppScoring == 1 && !lateAndTrailing(b)
		}),
		Do: makeHitAndRoll,
	},
	{
		Name: "second: draw",
		When: stones(3, 4),
		Do:   makeDrawToHouse,
	},
	{
		Name: "third: opponent lying two or more",
		When: and(stones(5, 6), func(b *BoardState) bool { return b.OppScoring >= 2 }),
		Do:   makeTakeout,
	},
	{
		Name: "third: opponent lying one",
		When: and(stones(5, 6), func(b *BoardState) bool { return b.OppScoring == 1 }),
		Do:   makeHitAndRoll,
	},
	{
		Name: "third: draw",
		When: stones(5, 6),
		Do:   makeDrawToHouse,
	},
	{
		Name: "skip: blank to keep the hammer",
		When: and(stones(7, 8), func(b *BoardState) bool {
			return b.ScoreDiff >= blankLeadMargin
		}),
		Do: makeBlank,
	},
	{
		Name: "skip: opponent counting",
		When: and(stones(7, 8), func(b *BoardState) bool { return b.OppScoring >= 1 }),
		Do: func(b *BoardState, r *Rand) ShotPlan {
			if b.OppScoring == 1 {
				// Trade single for single rather than open the house up.
				return makeHitAndRoll(b, r)
			}
			return makeTakeout(b, r)
		},
	},
	{
		Name: "skip: draw to the button",
		When: stones(7, 8),
		Do:   makeDrawToButton,
	},
	{
		Name: "default: draw",
		When: always,
		Do:   makeDrawToHouse,
	},
}
