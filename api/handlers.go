package api

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/tradekit/roadmap/metrics"
	"github.com/tradekit/roadmap/pkg/id"
	"github.com/tradekit/roadmap/projection"
)

// simulateRequest mirrors the frontend contract. Omitted fields fall back to
// the configured defaults before validation, so a bare `{}` body runs the
// stock 200 -> 2000 projection.
type simulateRequest struct {
	CurrentBalance  float64 `json:"current_balance"`
	TargetBalance   float64 `json:"target_balance"`
	RiskPercent     float64 `json:"risk_per_trade_percent"`
	RiskRewardRatio float64 `json:"risk_reward_ratio"`
}

type simulateResponse struct {
	RunID   string             `json:"run_id"`
	Trades  []projection.Trade `json:"trades"`
	Summary projection.Summary `json:"summary"`
}

type errorResponse struct {
	Error      string                 `json:"error"`
	Violations []projection.Violation `json:"violations,omitempty"`
}

func (s *Server) handleRoot(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != "/" {
		http.NotFound(w, r)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"message": "The Recovery Roadmap API"})
}

func (s *Server) handleHealthz(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
	w.Write([]byte("ok\n"))
}

func (s *Server) handleSimulate(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		w.Header().Set("Allow", http.MethodPost)
		writeJSON(w, http.StatusMethodNotAllowed, errorResponse{Error: "method not allowed"})
		return
	}

	defaults := s.cfg.Projection
	req := simulateRequest{
		CurrentBalance:  defaults.CurrentBalance,
		TargetBalance:   defaults.TargetBalance,
		RiskPercent:     defaults.RiskPercent,
		RiskRewardRatio: defaults.RiskRewardRatio,
	}

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "malformed request body: " + err.Error()})
		return
	}

	cfg := projection.Config{
		CurrentBalance:  req.CurrentBalance,
		TargetBalance:   req.TargetBalance,
		RiskPerTradePct: req.RiskPercent,
		RiskRewardRatio: req.RiskRewardRatio,
	}

	if err := projection.Validate(cfg); err != nil {
		metrics.SimulationsTotal.WithLabelValues("invalid").Inc()

		var verr *projection.ValidationError
		if errors.As(err, &verr) {
			writeJSON(w, http.StatusUnprocessableEntity, errorResponse{
				Error:      "validation failed",
				Violations: verr.Violations,
			})
			return
		}
		writeJSON(w, http.StatusUnprocessableEntity, errorResponse{Error: err.Error()})
		return
	}

	runID := id.New()

	trades, truncated := projection.ProjectN(cfg, s.cfg.Limits.MaxTrades)
	if truncated {
		metrics.SimulationsTotal.WithLabelValues("truncated").Inc()
		s.log.Warn().
			Str("run_id", runID).
			Int("max_trades", s.cfg.Limits.MaxTrades).
			Msg("projection truncated by trade cap")
		writeJSON(w, http.StatusUnprocessableEntity, errorResponse{
			Error: "projection exceeds the configured trade limit; adjust risk or target",
		})
		return
	}

	sum := projection.Summarize(trades, cfg)

	metrics.SimulationsTotal.WithLabelValues("ok").Inc()
	metrics.TradesPerRun.Observe(float64(sum.TotalTrades))

	s.log.Info().
		Str("run_id", runID).
		Int("total_trades", sum.TotalTrades).
		Float64("final_balance", sum.FinalBalance).
		Msg("simulation complete")

	writeJSON(w, http.StatusOK, simulateResponse{
		RunID:   runID,
		Trades:  trades,
		Summary: sum,
	})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
