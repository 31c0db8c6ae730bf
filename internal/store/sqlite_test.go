package store

import (
	"fmt"
	"path/filepath"
	"strings"
	"testing"
)

func openTestDB(t *testing.T) *SQLiteDB {
	t.Helper()
	db, err := NewSQLiteDB(filepath.Join(t.TempDir(), "skipbot-test.db"))
	if err != nil {
		t.Fatalf("Failed to open database: %v", err)
	}
	t.Cleanup(func() { db.Close() })
	if err := db.Migrate(); err != nil {
		t.Fatalf("Migration failed: %v", err)
	}
	return db
}

func sampleDecision(id, matchID string, stone int) *Decision {
	return &Decision{
		ID:          id,
		MatchID:     matchID,
		End:         3,
		StoneNum:    stone,
		Hammer:      true,
		Difficulty:  "medium",
		Seed:        18446744073709551615, // max uint64 must survive the round trip
		Label:       "draw to house",
		TargetX:     0.31,
		TargetY:     34.8,
		PlanWeight:  47.5,
		SpinDir:     -1,
		PlanSpinMag: 3.2,
		AimDeg:      0.52,
		ExecAimDeg:  0.61,
		ExecWeight:  49.1,
		ExecSpinMag: 3.18,
		Perfect:     false,
	}
}

func TestMigrateIdempotent(t *testing.T) {
	db := openTestDB(t)
	for i := 0; i < 3; i++ {
		if err := db.Migrate(); err != nil {
			t.Fatalf("Re-migration %d failed: %v", i, err)
		}
	}
}

func TestSaveAndGetDecision(t *testing.T) {
	db := openTestDB(t)

	d := sampleDecision("", "match-1", 5)
	if err := db.SaveDecision(d); err != nil {
		t.Fatalf("SaveDecision failed: %v", err)
	}
	if d.ID == "" {
		t.Fatal("SaveDecision did not assign an id")
	}

	got, err := db.GetDecision(d.ID)
	if err != nil {
		t.Fatalf("GetDecision failed: %v", err)
	}
	if got.MatchID != d.MatchID || got.End != d.End || got.StoneNum != d.StoneNum {
		t.Errorf("Match fields do not round-trip: %+v", got)
	}
	if !got.Hammer || got.Perfect {
		t.Errorf("Boolean fields do not round-trip: hammer=%v perfect=%v", got.Hammer, got.Perfect)
	}
	if got.Seed != d.Seed {
		t.Errorf("Seed does not round-trip: got %d, want %d", got.Seed, d.Seed)
	}
	if got.Label != d.Label || got.Difficulty != d.Difficulty {
		t.Errorf("String fields do not round-trip: %+v", got)
	}
	if got.TargetX != d.TargetX || got.ExecWeight != d.ExecWeight || got.SpinDir != d.SpinDir {
		t.Errorf("Numeric fields do not round-trip: %+v", got)
	}
	if got.CreatedAt.IsZero() {
		t.Error("CreatedAt was not populated")
	}
}

func TestGetDecisionMissing(t *testing.T) {
	db := openTestDB(t)
	_, err := db.GetDecision("no-such-id")
	if err == nil {
		t.Fatal("Expected an error for a missing decision")
	}
	if !strings.Contains(err.Error(), "not found") {
		t.Errorf("Unexpected error: %v", err)
	}
}

func TestListDecisionsPagination(t *testing.T) {
	db := openTestDB(t)

	// Fixed ids keep the created_at tie-break deterministic.
	for i := 1; i <= 12; i++ {
		d := sampleDecision(fmt.Sprintf("id-%02d", i), "match-1", i%8+1)
		if err := db.SaveDecision(d); err != nil {
			t.Fatalf("SaveDecision %d failed: %v", i, err)
		}
	}
	other := sampleDecision("id-other", "match-2", 1)
	if err := db.SaveDecision(other); err != nil {
		t.Fatalf("SaveDecision failed: %v", err)
	}

	t.Run("first page", func(t *testing.T) {
		page, err := db.ListDecisions(DecisionsQuery{MatchID: "match-1", Page: 1, PerPage: 5})
		if err != nil {
			t.Fatalf("ListDecisions failed: %v", err)
		}
		if page.TotalCount != 12 {
			t.Errorf("Expected 12 decisions, got %d", page.TotalCount)
		}
		if page.TotalPages != 3 {
			t.Errorf("Expected 3 pages, got %d", page.TotalPages)
		}
		if len(page.Decisions) != 5 {
			t.Fatalf("Expected 5 rows, got %d", len(page.Decisions))
		}
		if page.Decisions[0].ID != "id-01" {
			t.Errorf("Expected id-01 first, got %s", page.Decisions[0].ID)
		}
	})

	t.Run("last page", func(t *testing.T) {
		page, err := db.ListDecisions(DecisionsQuery{MatchID: "match-1", Page: 3, PerPage: 5})
		if err != nil {
			t.Fatalf("ListDecisions failed: %v", err)
		}
		if len(page.Decisions) != 2 {
			t.Fatalf("Expected 2 rows on the last page, got %d", len(page.Decisions))
		}
		if page.Decisions[1].ID != "id-12" {
			t.Errorf("Expected id-12 last, got %s", page.Decisions[1].ID)
		}
	})

	t.Run("match filter", func(t *testing.T) {
		page, err := db.ListDecisions(DecisionsQuery{MatchID: "match-2", Page: 1, PerPage: 50})
		if err != nil {
			t.Fatalf("ListDecisions failed: %v", err)
		}
		if page.TotalCount != 1 || page.Decisions[0].ID != "id-other" {
			t.Errorf("Match filter leaked rows: %+v", page)
		}
	})

	t.Run("defaults", func(t *testing.T) {
		page, err := db.ListDecisions(DecisionsQuery{})
		if err != nil {
			t.Fatalf("ListDecisions failed: %v", err)
		}
		if page.Page != 1 || page.PerPage != 50 {
			t.Errorf("Expected defaulted paging, got page=%d perPage=%d", page.Page, page.PerPage)
		}
		if page.TotalCount != 13 {
			t.Errorf("Expected 13 decisions across matches, got %d", page.TotalCount)
		}
	})

	t.Run("page past the end", func(t *testing.T) {
		page, err := db.ListDecisions(DecisionsQuery{MatchID: "match-1", Page: 9, PerPage: 5})
		if err != nil {
			t.Fatalf("ListDecisions failed: %v", err)
		}
		if len(page.Decisions) != 0 {
			t.Errorf("Expected an empty page, got %d rows", len(page.Decisions))
		}
	})
}
