package api

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/rinksim/skipbot/internal/engine"
	"github.com/rinksim/skipbot/internal/scan"
	"github.com/rinksim/skipbot/internal/store"
)

// DecideRequest asks for one turn. When Seed is set the decision is
// replayed deterministically from it; otherwise the server picks a seed
// so the recorded decision stays reproducible.
type DecideRequest struct {
	Snapshot engine.Snapshot `json:"snapshot"`
	MatchID  string          `json:"match_id,omitempty"`
	Seed     *uint64         `json:"seed,omitempty"`
}

// DecideResponse carries the decision plus the replay coordinates.
type DecideResponse struct {
	Decision engine.Decision `json:"decision"`
	MatchID  string          `json:"match_id,omitempty"`
	Seed     uint64          `json:"seed"`
}

func (s *Server) handleDecide(w http.ResponseWriter, r *http.Request) {
	var req DecideRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.writeError(w, http.StatusBadRequest, ErrTypeValidation, "invalid JSON body", nil)
		return
	}
	if req.Snapshot.Team == engine.TeamNone {
		s.writeError(w, http.StatusBadRequest, ErrTypeValidation, "snapshot.team is required", nil)
		return
	}

	seed := uint64(time.Now().UnixNano())
	if req.Seed != nil {
		seed = *req.Seed
	}
	decision, err := s.eng.DecideSeeded(req.Snapshot, seed)
	if err != nil {
		s.writeError(w, http.StatusConflict, ErrTypeConflict, "a decision is already in flight", nil)
		return
	}

	if s.db != nil && req.MatchID != "" {
		row := decisionRow(req, seed, decision)
		if err := s.db.SaveDecision(row); err != nil {
			s.logger.Printf("save decision: %v", err)
		}
	}

	s.writeJSON(w, http.StatusOK, DecideResponse{Decision: decision, MatchID: req.MatchID, Seed: seed})
}

func decisionRow(req DecideRequest, seed uint64, d engine.Decision) *store.Decision {
	return &store.Decision{
		ID:          uuid.New().String(),
		MatchID:     req.MatchID,
		End:         req.Snapshot.End,
		StoneNum:    req.Snapshot.ThrownOwn + 1,
		Hammer:      req.Snapshot.Hammer,
		Difficulty:  d.Difficulty,
		Seed:        seed,
		Label:       d.Plan.Label,
		TargetX:     d.Plan.Target.X,
		TargetY:     d.Plan.Target.Y,
		PlanWeight:  d.Plan.Weight,
		SpinDir:     d.SpinDir,
		PlanSpinMag: d.Plan.SpinMag,
		AimDeg:      d.AimDeg,
		ExecAimDeg:  d.Executed.AimDeg,
		ExecWeight:  d.Executed.Weight,
		ExecSpinMag: d.Executed.SpinMag,
		Perfect:     d.Perfect,
	}
}

// SweepRequest is one trajectory tick of the engine's own stone.
type SweepRequest struct {
	Tick engine.Tick `json:"tick"`
}

// SweepResponse is the advisory for that tick.
type SweepResponse struct {
	Advisory engine.SweepAdvisory `json:"advisory"`
}

func (s *Server) handleSweep(w http.ResponseWriter, r *http.Request) {
	var req SweepRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.writeError(w, http.StatusBadRequest, ErrTypeValidation, "invalid JSON body", nil)
		return
	}
	s.writeJSON(w, http.StatusOK, SweepResponse{Advisory: engine.AdviseSweep(req.Tick)})
}

func (s *Server) handleScan(w http.ResponseWriter, r *http.Request) {
	var req scan.Request
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.writeError(w, http.StatusBadRequest, ErrTypeValidation, "invalid JSON body", nil)
		return
	}

	result, err := s.scanner.Scan(r.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, scan.ErrInvalidRange):
			s.writeError(w, http.StatusBadRequest, ErrTypeValidation, "seed_end must be greater than seed_start", nil)
		case errors.Is(err, scan.ErrUnknownDifficulty):
			s.writeError(w, http.StatusBadRequest, ErrTypeValidation, "unknown difficulty", map[string]any{
				"difficulty": req.Difficulty,
			})
		default:
			s.logger.Printf("scan: %v", err)
			s.writeError(w, http.StatusInternalServerError, ErrTypeInternal, "scan failed", nil)
		}
		return
	}
	s.writeJSON(w, http.StatusOK, result)
}

func (s *Server) handleListDifficulties(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, http.StatusOK, map[string]any{
		"difficulties": engine.Difficulties(),
		"active":       s.eng.Difficulty().ID,
	})
}

// SetDifficultyRequest selects the error-model tier for later turns.
type SetDifficultyRequest struct {
	Difficulty string `json:"difficulty"`
}

func (s *Server) handleSetDifficulty(w http.ResponseWriter, r *http.Request) {
	var req SetDifficultyRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.writeError(w, http.StatusBadRequest, ErrTypeValidation, "invalid JSON body", nil)
		return
	}
	if !s.eng.SetDifficulty(req.Difficulty) {
		s.writeError(w, http.StatusBadRequest, ErrTypeValidation, "unknown difficulty", map[string]any{
			"difficulty": req.Difficulty,
		})
		return
	}
	s.writeJSON(w, http.StatusOK, map[string]any{"active": req.Difficulty})
}

func (s *Server) handleMatchDecisions(w http.ResponseWriter, r *http.Request) {
	if s.db == nil {
		s.writeError(w, http.StatusNotFound, ErrTypeNotFound, "decision history is not enabled", nil)
		return
	}
	matchID := chi.URLParam(r, "matchID")
	page, _ := strconv.Atoi(r.URL.Query().Get("page"))
	perPage, _ := strconv.Atoi(r.URL.Query().Get("per_page"))

	result, err := s.db.ListDecisions(store.DecisionsQuery{MatchID: matchID, Page: page, PerPage: perPage})
	if err != nil {
		s.logger.Printf("list decisions: %v", err)
		s.writeError(w, http.StatusInternalServerError, ErrTypeInternal, "failed to list decisions", nil)
		return
	}
	s.writeJSON(w, http.StatusOK, result)
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, http.StatusOK, map[string]any{
		"status":     "ok",
		"difficulty": s.eng.Difficulty().ID,
		"store":      s.db != nil,
	})
}
