package store

import "time"

// DB records decisions so a match can be audited and any single shot
// replayed from its seed.
type DB interface {
	Close() error
	Migrate() error
	SaveDecision(d *Decision) error
	GetDecision(id string) (*Decision, error)
	ListDecisions(q DecisionsQuery) (*DecisionsPage, error)
}

// Decision is one persisted turn.
type Decision struct {
	ID          string    `json:"id" db:"id"`
	MatchID     string    `json:"match_id" db:"match_id"`
	End         int       `json:"end" db:"end_num"`
	StoneNum    int       `json:"stone_num" db:"stone_num"`
	Hammer      bool      `json:"hammer" db:"hammer"`
	Difficulty  string    `json:"difficulty" db:"difficulty"`
	Seed        uint64    `json:"seed" db:"seed"`
	Label       string    `json:"label" db:"label"`
	TargetX     float64   `json:"target_x" db:"target_x"`
	TargetY     float64   `json:"target_y" db:"target_y"`
	PlanWeight  float64   `json:"plan_weight" db:"plan_weight"`
	SpinDir     int       `json:"spin_dir" db:"spin_dir"`
	PlanSpinMag float64   `json:"plan_spin_mag" db:"plan_spin_mag"`
	AimDeg      float64   `json:"aim_deg" db:"aim_deg"`
	ExecAimDeg  float64   `json:"exec_aim_deg" db:"exec_aim_deg"`
	ExecWeight  float64   `json:"exec_weight" db:"exec_weight"`
	ExecSpinMag float64   `json:"exec_spin_mag" db:"exec_spin_mag"`
	Perfect     bool      `json:"perfect" db:"perfect"`
	CreatedAt   time.Time `json:"created_at" db:"created_at"`
}

// DecisionsQuery filters and pages the decision log.
type DecisionsQuery struct {
	MatchID string `json:"match_id,omitempty"`
	Page    int    `json:"page"`
	PerPage int    `json:"perPage"`
}

// DecisionsPage is a paginated slice of the log.
type DecisionsPage struct {
	Decisions  []Decision `json:"decisions"`
	TotalCount int        `json:"totalCount"`
	Page       int        `json:"page"`
	PerPage    int        `json:"perPage"`
	TotalPages int        `json:"totalPages"`
}
