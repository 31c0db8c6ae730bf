package engine

// Team identifies one of the two sides.
type Team string

const (
	TeamNone   Team = ""
	TeamRed    Team = "red"
	TeamYellow Team = "yellow"
)

// Opponent returns the other side.
func (t Team) Opponent() Team {
	switch t {
	case TeamRed:
		return TeamYellow
	case TeamYellow:
		return TeamRed
	default:
		return TeamNone
	}
}

// Stone is the simulator's view of one rock. The engine only reads it.
type Stone struct {
	Pos    Vec2 `json:"pos"`
	Vel    Vec2 `json:"vel"`
	Team   Team `json:"team"`
	Active bool `json:"active"`
	Moving bool `json:"moving"`
}

// Snapshot is the read-only view of the match the simulator hands the
// engine at the top of a turn.
type Snapshot struct {
	Stones    []Stone `json:"stones"`
	Team      Team    `json:"team"` // side the engine plays
	ThrownOwn int     `json:"thrown_own"`
	ThrownOpp int     `json:"thrown_opp"`
	Hammer    bool    `json:"hammer"`
	ScoreOwn  int     `json:"score_own"`
	ScoreOpp  int     `json:"score_opp"`
	End       int     `json:"end"`
	TotalEnds int     `json:"total_ends"`
}

// ShotPlan is the ideal shot a constructor produced, before human-error
// noise. Weight is on a 0-100 scale, SpinDir is +1 or -1, SpinMag 2-5.
type ShotPlan struct {
	Target  Vec2    `json:"target"`
	Weight  float64 `json:"weight"`
	SpinDir int     `json:"spin_dir"`
	SpinMag float64 `json:"spin_mag"`
	Label   string  `json:"label"`
}

// Executed holds the final throw parameters after the imperfection model.
type Executed struct {
	AimDeg  float64 `json:"aim_deg"`
	Weight  float64 `json:"weight"`
	SpinMag float64 `json:"spin_mag"`
}

// Decision is the full output of one turn: the ideal plan, the solved aim
// and the noised parameters handed to the simulator.
type Decision struct {
	Plan       ShotPlan `json:"plan"`
	AimDeg     float64  `json:"aim_deg"` // ideal, pre-noise
	Executed   Executed `json:"executed"`
	SpinDir    int      `json:"spin_dir"`
	Perfect    bool     `json:"perfect"`
	Difficulty string   `json:"difficulty"`
}

// Tick is one trajectory sample of the engine's own moving stone.
type Tick struct {
	Pos Vec2 `json:"pos"`
	Vel Vec2 `json:"vel"`
}

// SweepAdvisory is the per-tick sweep recommendation.
type SweepAdvisory string

const (
	SweepNone  SweepAdvisory = "none"
	SweepLight SweepAdvisory = "light"
	SweepHard  SweepAdvisory = "hard"
)
