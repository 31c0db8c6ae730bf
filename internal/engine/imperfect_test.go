package engine

import (
	"math"
	"testing"
)

func TestDifficultyCatalog(t *testing.T) {
	tiers := Difficulties()
	if len(tiers) != 3 {
		t.Fatalf("Expected 3 tiers, got %d", len(tiers))
	}
	ids := []string{DifficultyEasy, DifficultyMedium, DifficultyHard}
	for i, id := range ids {
		if tiers[i].ID != id {
			t.Errorf("tier %d: expected %q, got %q", i, id, tiers[i].ID)
		}
	}
	// Harder tiers are tighter and more often perfect.
	for i := 1; i < len(tiers); i++ {
		if tiers[i].AimStdDeg >= tiers[i-1].AimStdDeg {
			t.Errorf("%s aim error should be below %s", tiers[i].ID, tiers[i-1].ID)
		}
		if tiers[i].PerfectChance <= tiers[i-1].PerfectChance {
			t.Errorf("%s perfect chance should be above %s", tiers[i].ID, tiers[i-1].ID)
		}
	}

	if _, ok := DifficultyByID("ludicrous"); ok {
		t.Error("Unknown tier id resolved")
	}
}

func TestPerfectRateConverges(t *testing.T) {
	for _, tier := range Difficulties() {
		t.Run(tier.ID, func(t *testing.T) {
			r := NewSeeded(31337)
			plan := ShotPlan{Weight: 45, SpinDir: 1, SpinMag: 3}
			const n = 20000
			perfects := 0
			for i := 0; i < n; i++ {
				if _, perfect := applyImperfection(tier, r, 0, plan); perfect {
					perfects++
				}
			}
			rate := float64(perfects) / n
			// ~5 sigma of a Bernoulli at n=20000.
			tol := 5 * math.Sqrt(tier.PerfectChance*(1-tier.PerfectChance)/n)
			if math.Abs(rate-tier.PerfectChance) > tol {
				t.Errorf("perfect rate %.4f, configured %.2f (tolerance %.4f)", rate, tier.PerfectChance, tol)
			}
		})
	}
}

func TestImperfectionClamping(t *testing.T) {
	r := NewSeeded(77)
	tier, _ := DifficultyByID(DifficultyEasy)
	plan := ShotPlan{Weight: 99, SpinDir: -1, SpinMag: 4.9}
	for i := 0; i < 5000; i++ {
		exec, _ := applyImperfection(tier, r, 4.9, plan)
		if exec.AimDeg < -AimLimitDeg || exec.AimDeg > AimLimitDeg {
			t.Fatalf("aim %.4f escaped the slider range", exec.AimDeg)
		}
		if exec.Weight < 0 || exec.Weight > 100 {
			t.Fatalf("weight %.4f escaped [0,100]", exec.Weight)
		}
		if exec.SpinMag < SpinMagMin || exec.SpinMag > SpinMagMax {
			t.Fatalf("spin %.4f escaped [%.1f,%.1f]", exec.SpinMag, SpinMagMin, SpinMagMax)
		}
	}
}

func TestPerfectBranchKeepsSpinClean(t *testing.T) {
	// Force the perfect branch with a scripted uniform source: first draw
	// below any tier's perfect chance, the rest feeding Box-Muller.
	src := &scriptedSource{vals: []float64{0.01, 0.5, 0.25, 0.6, 0.9}}
	r := NewRand(src)
	tier, _ := DifficultyByID(DifficultyEasy)
	plan := ShotPlan{Weight: 50, SpinDir: 1, SpinMag: 3.3}

	exec, perfect := applyImperfection(tier, r, 1.0, plan)
	if !perfect {
		t.Fatal("Expected the perfect branch")
	}
	if exec.SpinMag != plan.SpinMag {
		t.Errorf("Perfect attempt must not touch spin, got %.2f", exec.SpinMag)
	}
	if exec.AimDeg == 1.0 {
		t.Error("Perfect attempt still carries reduced aim noise")
	}
}

func TestMissedBranchNoisesSpin(t *testing.T) {
	tier, _ := DifficultyByID(DifficultyEasy)
	plan := ShotPlan{Weight: 50, SpinDir: 1, SpinMag: 3.0}
	r := NewSeeded(5150)
	changed := false
	for i := 0; i < 200 && !changed; i++ {
		exec, perfect := applyImperfection(tier, r, 0, plan)
		if !perfect && exec.SpinMag != plan.SpinMag {
			changed = true
		}
	}
	if !changed {
		t.Error("Missed attempts never perturbed the spin handle")
	}
}
