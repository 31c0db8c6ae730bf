package engine

import "testing"

func TestHasFriendlyBehind(t *testing.T) {
	target := Vec2{X: 0, Y: TeeY}

	t.Run("friendly directly behind", func(t *testing.T) {
		b := EvaluateBoard(baseSnapshot(stoneAt(TeamRed, 0, target.Y+1)))
		if !hasFriendlyBehind(target, &b) {
			t.Error("Expected danger with a friendly stone one meter behind the target")
		}
	})

	t.Run("friendly in front", func(t *testing.T) {
		b := EvaluateBoard(baseSnapshot(stoneAt(TeamRed, 0, target.Y-1)))
		if hasFriendlyBehind(target, &b) {
			t.Error("Expected no danger from a stone down-ice of the target")
		}
	})

	t.Run("friendly beyond depth window", func(t *testing.T) {
		b := EvaluateBoard(baseSnapshot(stoneAt(TeamRed, 0, target.Y+dangerDepth+0.1)))
		if hasFriendlyBehind(target, &b) {
			t.Error("Expected no danger beyond the depth window")
		}
	})

	t.Run("friendly outside lateral window", func(t *testing.T) {
		b := EvaluateBoard(baseSnapshot(stoneAt(TeamRed, dangerRadius+0.05, target.Y+1)))
		if hasFriendlyBehind(target, &b) {
			t.Error("Expected no danger outside the lateral window")
		}
	})

	t.Run("opponent behind is irrelevant", func(t *testing.T) {
		b := EvaluateBoard(baseSnapshot(stoneAt(TeamYellow, 0, target.Y+1)))
		if hasFriendlyBehind(target, &b) {
			t.Error("Opponent stones behind the target are not collateral")
		}
	})
}

func TestFindSafeTarget(t *testing.T) {
	t.Run("every candidate covered", func(t *testing.T) {
		b := EvaluateBoard(baseSnapshot(
			stoneAt(TeamYellow, 0.0, TeeY-0.3),
			stoneAt(TeamRed, 0.0, TeeY-0.3+1),
			stoneAt(TeamYellow, 1.0, TeeY+0.4),
			stoneAt(TeamRed, 1.0, TeeY+0.4+1),
		))
		if got := findSafeTarget(&b); got != nil {
			t.Errorf("Expected no safe target, got stone at (%.2f, %.2f)", got.Pos.X, got.Pos.Y)
		}
	})

	t.Run("nearest safe candidate wins", func(t *testing.T) {
		b := EvaluateBoard(baseSnapshot(
			stoneAt(TeamYellow, 0.0, TeeY-0.3), // shot stone, covered
			stoneAt(TeamRed, 0.0, TeeY-0.3+1),
			stoneAt(TeamYellow, 1.0, TeeY+0.4), // second, open
			stoneAt(TeamYellow, -1.5, TeeY+0.8),
		))
		got := findSafeTarget(&b)
		if got == nil {
			t.Fatal("Expected a safe target")
		}
		if got.Pos.X != 1.0 {
			t.Errorf("Expected the nearest uncovered stone at x=1.0, got x=%.2f", got.Pos.X)
		}
	})

	t.Run("empty house", func(t *testing.T) {
		b := EvaluateBoard(baseSnapshot())
		if findSafeTarget(&b) != nil {
			t.Error("Expected nil with an empty house")
		}
	})
}
