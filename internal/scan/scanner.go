package scan

import (
	"context"
	"math"
	"runtime"
	"sort"
	"sync"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/rinksim/skipbot/internal/engine"
)

// TargetOp compares an executed-aim metric against the request target.
type TargetOp string

const (
	OpEqual        TargetOp = "eq"
	OpGreater      TargetOp = "gt"
	OpGreaterEqual TargetOp = "ge"
	OpLess         TargetOp = "lt"
	OpLessEqual    TargetOp = "le"
	OpBetween      TargetOp = "between"
	OpOutside      TargetOp = "outside"
)

// Request sweeps one board snapshot across a seed range, replaying the
// full decision chain per seed. It is how the noise model's calibration
// (label mix, perfect-shot rate, weight spread) gets verified in bulk.
type Request struct {
	Snapshot   engine.Snapshot `json:"snapshot"`
	Difficulty string          `json:"difficulty"`
	SeedStart  uint64          `json:"seed_start"`
	SeedEnd    uint64          `json:"seed_end"` // exclusive
	TargetOp   TargetOp        `json:"target_op,omitempty"`
	TargetVal  float64         `json:"target_val,omitempty"`
	TargetVal2 float64         `json:"target_val2,omitempty"` // between/outside
	Tolerance  float64         `json:"tolerance,omitempty"`
	Limit      int             `json:"limit,omitempty"`
	TimeoutMs  int             `json:"timeout_ms,omitempty"`
}

// Hit is one seed whose executed aim matched the target condition.
type Hit struct {
	Seed   uint64  `json:"seed"`
	AimDeg float64 `json:"aim_deg"`
	Label  string  `json:"label"`
}

// Summary aggregates a whole scan.
type Summary struct {
	TotalEvaluated uint64            `json:"total_evaluated"`
	LabelCounts    map[string]uint64 `json:"label_counts"`
	PerfectCount   uint64            `json:"perfect_count"`
	PerfectRate    float64           `json:"perfect_rate"`
	MinWeight      float64           `json:"min_weight"`
	MaxWeight      float64           `json:"max_weight"`
	MeanWeight     float64           `json:"mean_weight"`
	TimedOut       bool              `json:"timed_out,omitempty"`
}

// Result is the complete scan output.
type Result struct {
	Hits    []Hit   `json:"hits"`
	Summary Summary `json:"summary"`
	Echo    Request `json:"echo"`
}

const defaultHitLimit = 1000

// Scanner replays decisions across seed ranges with a worker pool.
type Scanner struct {
	workers int
}

// NewScanner sizes the pool to the available CPUs.
func NewScanner() *Scanner {
	return &Scanner{workers: runtime.GOMAXPROCS(0)}
}

type evaluator struct {
	op        TargetOp
	val1      float64
	val2      float64
	tolerance float64
}

func (ev evaluator) matches(metric float64) bool {
	switch ev.op {
	case OpEqual:
		return math.Abs(metric-ev.val1) <= ev.tolerance
	case OpGreater:
		return metric > ev.val1+ev.tolerance
	case OpGreaterEqual:
		return metric >= ev.val1-ev.tolerance
	case OpLess:
		return metric < ev.val1-ev.tolerance
	case OpLessEqual:
		return metric <= ev.val1+ev.tolerance
	case OpBetween:
		return metric >= ev.val1-ev.tolerance && metric <= ev.val2+ev.tolerance
	case OpOutside:
		return metric < ev.val1-ev.tolerance || metric > ev.val2+ev.tolerance
	default:
		return false
	}
}

type partial struct {
	evaluated uint64
	perfect   uint64
	labels    map[string]uint64
	minW      float64
	maxW      float64
	sumW      float64
	hits      []Hit
}

// Scan runs the request. A context deadline or the request timeout stops
// the sweep early and marks the summary timed out; partial results are
// still returned.
func (s *Scanner) Scan(ctx context.Context, req Request) (*Result, error) {
	if req.SeedEnd <= req.SeedStart {
		return nil, ErrInvalidRange
	}
	if _, ok := engine.DifficultyByID(req.Difficulty); !ok && req.Difficulty != "" {
		return nil, ErrUnknownDifficulty
	}
	difficulty := req.Difficulty
	if difficulty == "" {
		difficulty = engine.DefaultDifficulty
	}

	if req.TimeoutMs > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, time.Duration(req.TimeoutMs)*time.Millisecond)
		defer cancel()
	}

	limit := req.Limit
	if limit <= 0 {
		limit = defaultHitLimit
	}
	ev := evaluator{op: req.TargetOp, val1: req.TargetVal, val2: req.TargetVal2, tolerance: req.Tolerance}
	wantHits := req.TargetOp != ""

	total := req.SeedEnd - req.SeedStart
	workers := s.workers
	if uint64(workers) > total {
		workers = int(total)
	}
	chunk := total / uint64(workers)

	var mu sync.Mutex
	merged := partial{labels: make(map[string]uint64), minW: math.Inf(1), maxW: math.Inf(-1)}
	timedOut := false

	g, ctx := errgroup.WithContext(ctx)
	for w := 0; w < workers; w++ {
		lo := req.SeedStart + uint64(w)*chunk
		hi := lo + chunk
		if w == workers-1 {
			hi = req.SeedEnd
		}
		g.Go(func() error {
			local := partial{labels: make(map[string]uint64), minW: math.Inf(1), maxW: math.Inf(-1)}
			for seed := lo; seed < hi; seed++ {
				select {
				case <-ctx.Done():
					mu.Lock()
					timedOut = true
					mu.Unlock()
					seedRangeMerge(&mu, &merged, &local)
					return nil
				default:
				}
				d := engine.Replay(req.Snapshot, difficulty, seed)
				local.evaluated++
				local.labels[d.Plan.Label]++
				if d.Perfect {
					local.perfect++
				}
				wt := d.Executed.Weight
				local.sumW += wt
				if wt < local.minW {
					local.minW = wt
				}
				if wt > local.maxW {
					local.maxW = wt
				}
				if wantHits && ev.matches(d.Executed.AimDeg) {
					local.hits = append(local.hits, Hit{Seed: seed, AimDeg: d.Executed.AimDeg, Label: d.Plan.Label})
				}
			}
			seedRangeMerge(&mu, &merged, &local)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	sort.Slice(merged.hits, func(i, j int) bool { return merged.hits[i].Seed < merged.hits[j].Seed })
	if len(merged.hits) > limit {
		merged.hits = merged.hits[:limit]
	}

	summary := Summary{
		TotalEvaluated: merged.evaluated,
		LabelCounts:    merged.labels,
		PerfectCount:   merged.perfect,
		TimedOut:       timedOut,
	}
	if merged.evaluated > 0 {
		summary.PerfectRate = float64(merged.perfect) / float64(merged.evaluated)
		summary.MinWeight = merged.minW
		summary.MaxWeight = merged.maxW
		summary.MeanWeight = merged.sumW / float64(merged.evaluated)
	}

	hits := merged.hits
	if hits == nil {
		hits = []Hit{}
	}
	return &Result{Hits: hits, Summary: summary, Echo: req}, nil
}

func seedRangeMerge(mu *sync.Mutex, dst, src *partial) {
	mu.Lock()
	defer mu.Unlock()
	dst.evaluated += src.evaluated
	dst.perfect += src.perfect
	dst.sumW += src.sumW
	if src.minW < dst.minW {
		dst.minW = src.minW
	}
	if src.maxW > dst.maxW {
		dst.maxW = src.maxW
	}
	for label, n := range src.labels {
		dst.labels[label] += n
	}
	dst.hits = append(dst.hits, src.hits...)
}
