package engine

// DifficultyProfile calibrates the human-error model for one tier.
type DifficultyProfile struct {
	ID            string  `json:"id"`
	AimStdDeg     float64 `json:"aim_std_deg"`
	WeightStd     float64 `json:"weight_std"`
	PerfectChance float64 `json:"perfect_chance"`
}

// Difficulty tier identifiers.
const (
	DifficultyEasy   = "easy"
	DifficultyMedium = "medium"
	DifficultyHard   = "hard"

	DefaultDifficulty = DifficultyMedium
)

// Noise applied to the spin handle on a missed attempt. Spin error does
// not vary by tier.
const spinStd = 0.5

// A perfect attempt still carries this fraction of the tier's normal
// error on aim and weight.
const perfectNoiseScale = 0.15

// Spin magnitude legal range on the delivery handle.
const (
	SpinMagMin = 2.0
	SpinMagMax = 5.0
)

var difficultyProfiles = map[string]DifficultyProfile{
	DifficultyEasy:   {ID: DifficultyEasy, AimStdDeg: 1.50, WeightStd: 8.0, PerfectChance: 0.10},
	DifficultyMedium: {ID: DifficultyMedium, AimStdDeg: 0.80, WeightStd: 5.0, PerfectChance: 0.25},
	DifficultyHard:   {ID: DifficultyHard, AimStdDeg: 0.35, WeightStd: 2.5, PerfectChance: 0.50},
}

// Difficulties returns the fixed tier catalog in easy-to-hard order.
func Difficulties() []DifficultyProfile {
	return []DifficultyProfile{
		difficultyProfiles[DifficultyEasy],
		difficultyProfiles[DifficultyMedium],
		difficultyProfiles[DifficultyHard],
	}
}

// DifficultyByID looks up a tier profile.
func DifficultyByID(id string) (DifficultyProfile, bool) {
	p, ok := difficultyProfiles[id]
	return p, ok
}

// applyImperfection perturbs the solved aim and the plan's weight and spin
// with difficulty-scaled Gaussian error. A perfect attempt keeps the spin
// handle clean and only lightly jitters aim and weight; a normal attempt
// noises all three. Outputs are clamped to their legal ranges either way.
func applyImperfection(profile DifficultyProfile, r *Rand, aimDeg float64, plan ShotPlan) (Executed, bool) {
	perfect := r.Bool(profile.PerfectChance)

	aim := aimDeg
	weight := plan.Weight
	spin := plan.SpinMag

	if perfect {
		aim += r.NormScaled(profile.AimStdDeg * perfectNoiseScale)
		weight += r.NormScaled(profile.WeightStd * perfectNoiseScale)
	} else {
		aim += r.NormScaled(profile.AimStdDeg)
		weight += r.NormScaled(profile.WeightStd)
		spin += r.NormScaled(spinStd)
	}

	return Executed{
		AimDeg:  clamp(aim, -AimLimitDeg, AimLimitDeg),
		Weight:  clamp(weight, 0, 100),
		SpinMag: clamp(spin, SpinMagMin, SpinMagMax),
	}, perfect
}
