package store

import (
	"database/sql"
	"fmt"

	"github.com/google/uuid"
	_ "modernc.org/sqlite" // pure-Go SQLite driver
)

// SQLiteDB implements DB on modernc.org/sqlite.
type SQLiteDB struct {
	db *sql.DB
}

// NewSQLiteDB opens (or creates) the database at path in WAL mode.
func NewSQLiteDB(path string) (*SQLiteDB, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}
	if _, err := db.Exec("PRAGMA journal_mode=WAL"); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to enable WAL mode: %w", err)
	}
	return &SQLiteDB{db: db}, nil
}

// Close closes the database connection.
func (s *SQLiteDB) Close() error {
	return s.db.Close()
}

// Migrate creates the schema. Idempotent.
func (s *SQLiteDB) Migrate() error {
	migrations := []string{
		`CREATE TABLE IF NOT EXISTS decisions (
			id TEXT PRIMARY KEY,
			match_id TEXT NOT NULL,
			end_num INTEGER NOT NULL,
			stone_num INTEGER NOT NULL,
			hammer INTEGER NOT NULL,
			difficulty TEXT NOT NULL,
			seed INTEGER NOT NULL,
			label TEXT NOT NULL,
			target_x REAL NOT NULL,
			target_y REAL NOT NULL,
			plan_weight REAL NOT NULL,
			spin_dir INTEGER NOT NULL,
			plan_spin_mag REAL NOT NULL,
			aim_deg REAL NOT NULL,
			exec_aim_deg REAL NOT NULL,
			exec_weight REAL NOT NULL,
			exec_spin_mag REAL NOT NULL,
			perfect INTEGER NOT NULL DEFAULT 0,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		)`,
		`CREATE INDEX IF NOT EXISTS idx_decisions_match ON decisions(match_id, created_at)`,
		`CREATE INDEX IF NOT EXISTS idx_decisions_label ON decisions(match_id, label)`,
	}
	for _, m := range migrations {
		if _, err := s.db.Exec(m); err != nil {
			return fmt.Errorf("migration failed: %w", err)
		}
	}
	return nil
}

// SaveDecision inserts one decision, assigning an id when missing.
func (s *SQLiteDB) SaveDecision(d *Decision) error {
	if d.ID == "" {
		d.ID = uuid.New().String()
	}
	query := `INSERT INTO decisions (
		id, match_id, end_num, stone_num, hammer, difficulty, seed, label,
		target_x, target_y, plan_weight, spin_dir, plan_spin_mag,
		aim_deg, exec_aim_deg, exec_weight, exec_spin_mag, perfect
	) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`

	_, err := s.db.Exec(query,
		d.ID, d.MatchID, d.End, d.StoneNum, boolToInt(d.Hammer), d.Difficulty,
		int64(d.Seed), d.Label,
		d.TargetX, d.TargetY, d.PlanWeight, d.SpinDir, d.PlanSpinMag,
		d.AimDeg, d.ExecAimDeg, d.ExecWeight, d.ExecSpinMag, boolToInt(d.Perfect),
	)
	if err != nil {
		return fmt.Errorf("failed to save decision: %w", err)
	}
	return nil
}

// GetDecision fetches one decision by id.
func (s *SQLiteDB) GetDecision(id string) (*Decision, error) {
	row := s.db.QueryRow(selectColumns+` FROM decisions WHERE id = ?`, id)
	d, err := scanDecision(row)
	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("decision not found: %s", id)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get decision: %w", err)
	}
	return d, nil
}

// ListDecisions pages through the log, optionally filtered by match.
func (s *SQLiteDB) ListDecisions(q DecisionsQuery) (*DecisionsPage, error) {
	if q.Page < 1 {
		q.Page = 1
	}
	if q.PerPage < 1 || q.PerPage > 500 {
		q.PerPage = 50
	}

	where := ""
	args := []any{}
	if q.MatchID != "" {
		where = " WHERE match_id = ?"
		args = append(args, q.MatchID)
	}

	var total int
	if err := s.db.QueryRow(`SELECT COUNT(*) FROM decisions`+where, args...).Scan(&total); err != nil {
		return nil, fmt.Errorf("failed to count decisions: %w", err)
	}

	offset := (q.Page - 1) * q.PerPage
	rows, err := s.db.Query(
		selectColumns+` FROM decisions`+where+` ORDER BY created_at, id LIMIT ? OFFSET ?`,
		append(args, q.PerPage, offset)...,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list decisions: %w", err)
	}
	defer rows.Close()

	decisions := []Decision{}
	for rows.Next() {
		d, err := scanDecision(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan decision: %w", err)
		}
		decisions = append(decisions, *d)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed reading decisions: %w", err)
	}

	totalPages := (total + q.PerPage - 1) / q.PerPage
	return &DecisionsPage{
		Decisions:  decisions,
		TotalCount: total,
		Page:       q.Page,
		PerPage:    q.PerPage,
		TotalPages: totalPages,
	}, nil
}

const selectColumns = `SELECT id, match_id, end_num, stone_num, hammer, difficulty, seed, label,
	target_x, target_y, plan_weight, spin_dir, plan_spin_mag,
	aim_deg, exec_aim_deg, exec_weight, exec_spin_mag, perfect, created_at`

type rowScanner interface {
	Scan(dest ...any) error
}

func scanDecision(row rowScanner) (*Decision, error) {
	var d Decision
	var hammer, perfect int
	var seed int64
	if err := row.Scan(
		&d.ID, &d.MatchID, &d.End, &d.StoneNum, &hammer, &d.Difficulty, &seed, &d.Label,
		&d.TargetX, &d.TargetY, &d.PlanWeight, &d.SpinDir, &d.PlanSpinMag,
		&d.AimDeg, &d.ExecAimDeg, &d.ExecWeight, &d.ExecSpinMag, &perfect, &d.CreatedAt,
	); err != nil {
		return nil, err
	}
	d.Hammer = hammer != 0
	d.Perfect = perfect != 0
	d.Seed = uint64(seed)
	return &d, nil
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
