package api

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tradekit/roadmap/config"
	"github.com/tradekit/roadmap/projection"
)

func testServer(t *testing.T) *Server {
	t.Helper()
	return NewServer(config.Default(), zerolog.Nop())
}

func TestRoot(t *testing.T) {
	t.Parallel()

	srv := testServer(t)
	rec := httptest.NewRecorder()
	srv.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))

	var body map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "The Recovery Roadmap API", body["message"])
}

func TestHealthz(t *testing.T) {
	t.Parallel()

	srv := testServer(t)
	rec := httptest.NewRecorder()
	srv.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/healthz", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "ok\n", rec.Body.String())
}

func TestSimulate(t *testing.T) {
	t.Parallel()

	srv := testServer(t)
	body := `{"current_balance": 200, "target_balance": 2000, "risk_per_trade_percent": 2, "risk_reward_ratio": 3}`

	rec := httptest.NewRecorder()
	srv.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/api/simulate", strings.NewReader(body)))

	require.Equal(t, http.StatusOK, rec.Code)

	var resp struct {
		RunID   string             `json:"run_id"`
		Trades  []projection.Trade `json:"trades"`
		Summary projection.Summary `json:"summary"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))

	assert.NotEmpty(t, resp.RunID)
	require.NotEmpty(t, resp.Trades)

	first := resp.Trades[0]
	assert.Equal(t, 1, first.Number)
	assert.InDelta(t, 200.0, first.Balance, 1e-9)
	assert.InDelta(t, 4.0, first.RiskAmount, 1e-9)
	assert.InDelta(t, 12.0, first.ProfitAmount, 1e-9)

	assert.Equal(t, len(resp.Trades), resp.Summary.TotalTrades)
	assert.GreaterOrEqual(t, resp.Summary.FinalBalance, 2000.0)
	assert.InDelta(t, 200.0, resp.Summary.StartingBalance, 1e-9)
}

func TestSimulate_DefaultsApplied(t *testing.T) {
	t.Parallel()

	srv := testServer(t)
	rec := httptest.NewRecorder()
	srv.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/api/simulate", strings.NewReader(`{}`)))

	require.Equal(t, http.StatusOK, rec.Code)

	var resp struct {
		Summary projection.Summary `json:"summary"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))

	// Config defaults: 200 -> 2000 at 2% risk, 1:3.
	assert.InDelta(t, 200.0, resp.Summary.StartingBalance, 1e-9)
	assert.InDelta(t, 2000.0, resp.Summary.TargetBalance, 1e-9)
	assert.Equal(t, 40, resp.Summary.TotalTrades)
}

func TestSimulate_ValidationFailure(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		body string
	}{
		{"target_below_balance", `{"current_balance": 2000, "target_balance": 200}`},
		{"risk_out_of_range", `{"risk_per_trade_percent": 150}`},
		{"non_positive_ratio", `{"risk_reward_ratio": -2}`},
		{"zero_balance", `{"current_balance": 0}`},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			srv := testServer(t)
			rec := httptest.NewRecorder()
			srv.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/api/simulate", strings.NewReader(tt.body)))

			require.Equal(t, http.StatusUnprocessableEntity, rec.Code)

			var resp struct {
				Error      string `json:"error"`
				Violations []struct {
					Field string `json:"field"`
					Code  string `json:"code"`
				} `json:"violations"`
			}
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
			assert.Equal(t, "validation failed", resp.Error)
			assert.NotEmpty(t, resp.Violations)
		})
	}
}

func TestSimulate_MalformedBody(t *testing.T) {
	t.Parallel()

	srv := testServer(t)
	rec := httptest.NewRecorder()
	srv.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/api/simulate", strings.NewReader(`{"current_balance": `)))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestSimulate_MethodNotAllowed(t *testing.T) {
	t.Parallel()

	srv := testServer(t)
	rec := httptest.NewRecorder()
	srv.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/simulate", nil))

	assert.Equal(t, http.StatusMethodNotAllowed, rec.Code)
	assert.Equal(t, http.MethodPost, rec.Header().Get("Allow"))
}

func TestSimulate_TradeCap(t *testing.T) {
	t.Parallel()

	cfg := config.Default()
	cfg.Limits.MaxTrades = 5
	srv := NewServer(cfg, zerolog.Nop())

	rec := httptest.NewRecorder()
	srv.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/api/simulate", strings.NewReader(`{}`)))

	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	assert.Contains(t, rec.Body.String(), "trade limit")
}

func TestCORSPreflight(t *testing.T) {
	t.Parallel()

	srv := testServer(t)
	req := httptest.NewRequest(http.MethodOptions, "/api/simulate", nil)
	req.Header.Set("Origin", "http://localhost:3000")
	req.Header.Set("Access-Control-Request-Method", http.MethodPost)

	rec := httptest.NewRecorder()
	srv.Handler().ServeHTTP(rec, req)

	assert.Equal(t, "http://localhost:3000", rec.Header().Get("Access-Control-Allow-Origin"))
	assert.Equal(t, "true", rec.Header().Get("Access-Control-Allow-Credentials"))
}

func TestCORSDisallowedOrigin(t *testing.T) {
	t.Parallel()

	srv := testServer(t)
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Origin", "http://evil.example.com")

	rec := httptest.NewRecorder()
	srv.Handler().ServeHTTP(rec, req)

	assert.Empty(t, rec.Header().Get("Access-Control-Allow-Origin"))
}
