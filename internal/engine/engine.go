package engine

import (
	"errors"
	"sync"
	"sync/atomic"
)

// ErrBusy is returned when a turn is requested while a previous decision
// is still in flight on the same engine.
var ErrBusy = errors.New("engine: decision already in flight")

// Engine owns the mutable state of one playing side: its difficulty tier,
// its random source and the in-flight turn guard. Separate matches get
// separate engines; nothing here is process-global.
type Engine struct {
	mu       sync.Mutex
	rng      *Rand
	profile  DifficultyProfile
	thinking atomic.Bool
}

// New builds an engine around the given random source at the default
// difficulty.
func New(rng *Rand) *Engine {
	return &Engine{
		rng:     rng,
		profile: difficultyProfiles[DefaultDifficulty],
	}
}

// SetDifficulty switches the error model for subsequent turns. An unknown
// id keeps the current tier and reports false.
func (e *Engine) SetDifficulty(id string) bool {
	p, ok := difficultyProfiles[id]
	if !ok {
		return false
	}
	e.mu.Lock()
	e.profile = p
	e.mu.Unlock()
	return true
}

// Difficulty returns the active tier profile.
func (e *Engine) Difficulty() DifficultyProfile {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.profile
}

// Decide runs one full turn: board assessment, shot selection, aim
// solving and the human-error pass. It returns ErrBusy if invoked while a
// previous turn on this engine has not finished.
func (e *Engine) Decide(snap Snapshot) (Decision, error) {
	if !e.thinking.CompareAndSwap(false, true) {
		return Decision{}, ErrBusy
	}
	defer e.thinking.Store(false)

	e.mu.Lock()
	profile := e.profile
	rng := e.rng
	e.mu.Unlock()

	return decide(snap, profile, rng), nil
}

// DecideSeeded runs one turn from a fresh seeded source at the engine's
// current difficulty, under the same in-flight guard as Decide. The same
// seed and snapshot always reproduce the same decision.
func (e *Engine) DecideSeeded(snap Snapshot, seed uint64) (Decision, error) {
	if !e.thinking.CompareAndSwap(false, true) {
		return Decision{}, ErrBusy
	}
	defer e.thinking.Store(false)

	e.mu.Lock()
	profile := e.profile
	e.mu.Unlock()

	return decide(snap, profile, NewSeeded(seed)), nil
}

// Advise returns the sweep recommendation for one trajectory tick. The
// advisor is stateless, so it runs outside the in-flight guard.
func (e *Engine) Advise(t Tick) SweepAdvisory {
	return AdviseSweep(t)
}

// Thinking reports whether a turn is currently being evaluated.
func (e *Engine) Thinking() bool {
	return e.thinking.Load()
}

// Replay reproduces the decision a fresh engine at the given tier and
// seed would make for the snapshot. Unknown tiers fall back to the
// default, matching SetDifficulty's no-op contract.
func Replay(snap Snapshot, difficulty string, seed uint64) Decision {
	profile, ok := difficultyProfiles[difficulty]
	if !ok {
		profile = difficultyProfiles[DefaultDifficulty]
	}
	return decide(snap, profile, NewSeeded(seed))
}

func decide(snap Snapshot, profile DifficultyProfile, rng *Rand) Decision {
	board := EvaluateBoard(snap)
	plan := SelectShot(&board, rng)
	aim := SolveAim(plan)
	executed, perfect := applyImperfection(profile, rng, aim, plan)
	return Decision{
		Plan:       plan,
		AimDeg:     aim,
		Executed:   executed,
		SpinDir:    plan.SpinDir,
		Perfect:    perfect,
		Difficulty: profile.ID,
	}
}
