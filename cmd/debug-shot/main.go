package main

import (
	"flag"
	"fmt"

	"github.com/rinksim/skipbot/internal/engine"
)

// Evaluates one canned snapshot through the full decision chain and
// prints every stage, for eyeballing policy changes.
func main() {
	seed := flag.Uint64("seed", 42, "random seed")
	difficulty := flag.String("difficulty", engine.DefaultDifficulty, "difficulty tier")
	hammer := flag.Bool("hammer", true, "engine holds the hammer")
	stone := flag.Int("stone", 8, "own stone number about to be thrown (1-8)")
	flag.Parse()

	snap := engine.Snapshot{
		Team:      engine.TeamRed,
		ThrownOwn: *stone - 1,
		ThrownOpp: *stone,
		Hammer:    *hammer,
		ScoreOwn:  4,
		ScoreOpp:  5,
		End:       7,
		TotalEnds: 8,
		Stones: []engine.Stone{
			{Pos: engine.Vec2{X: 0.10, Y: engine.TeeY - 0.30}, Team: engine.TeamYellow, Active: true},
			{Pos: engine.Vec2{X: -0.60, Y: engine.TeeY + 0.40}, Team: engine.TeamYellow, Active: true},
			{Pos: engine.Vec2{X: 1.10, Y: engine.TeeY + 0.90}, Team: engine.TeamRed, Active: true},
			{Pos: engine.Vec2{X: 0.05, Y: engine.FarHogY + 1.80}, Team: engine.TeamRed, Active: true},
		},
	}

	board := engine.EvaluateBoard(snap)
	fmt.Printf("board: shotTeam=%s ownScoring=%d oppScoring=%d guards(own=%d opp=%d center=%d) fgz=%v desperate=%v\n",
		board.ShotTeam, board.OwnScoring, board.OppScoring,
		len(board.OwnGuards), len(board.OppGuards), len(board.CenterGuards),
		board.FGZActive, board.Desperate)

	d := engine.Replay(snap, *difficulty, *seed)
	fmt.Printf("shot:  %s  target=(%.2f, %.2f)  weight=%.1f  spin=%+d/%.1f\n",
		d.Plan.Label, d.Plan.Target.X, d.Plan.Target.Y, d.Plan.Weight, d.SpinDir, d.Plan.SpinMag)
	fmt.Printf("aim:   ideal=%.3f°\n", d.AimDeg)
	fmt.Printf("throw: aim=%.3f° weight=%.1f spin=%.2f perfect=%v (%s)\n",
		d.Executed.AimDeg, d.Executed.Weight, d.Executed.SpinMag, d.Perfect, d.Difficulty)

	for _, tick := range []engine.Tick{
		{Pos: engine.Vec2{X: 0.2, Y: 10}, Vel: engine.Vec2{X: 0, Y: 3.1}},
		{Pos: engine.Vec2{X: 0.3, Y: 24}, Vel: engine.Vec2{X: 0, Y: 1.6}},
		{Pos: engine.Vec2{X: 0.3, Y: 30}, Vel: engine.Vec2{X: 0, Y: 0.9}},
	} {
		fmt.Printf("sweep: y=%.1f v=%.2f -> %s\n", tick.Pos.Y, tick.Vel.Len(), engine.AdviseSweep(tick))
	}
}
