// Package projection computes a trade-by-trade roadmap of account growth
// under a fixed-risk, fixed-reward strategy with perfect execution: every
// simulated trade wins, and both risk and profit compound against the
// running balance.
package projection

// Config is the immutable input for one projection run.
type Config struct {
	CurrentBalance  float64 // starting account balance
	TargetBalance   float64 // balance the roadmap compounds toward
	RiskPerTradePct float64 // percent of the pre-trade balance risked, (0,100]
	RiskRewardRatio float64 // profit multiple of the risk amount, e.g. 3 for 1:3
}

// GrowthFactor is the per-trade balance multiplier implied by the config.
// It exceeds 1 for any valid config, which is what guarantees termination.
func (c Config) GrowthFactor() float64 {
	return 1 + c.RiskPerTradePct/100*c.RiskRewardRatio
}

// Trade is one simulated winning trade. Balance is the account balance
// *before* the trade; the post-trade balance is Balance + ProfitAmount.
type Trade struct {
	Number       int     `json:"trade_number"`
	Balance      float64 `json:"account_balance"`
	RiskAmount   float64 `json:"risk_amount"`
	ProfitAmount float64 `json:"profit_amount"`
}

// Summary aggregates a projection run.
type Summary struct {
	TotalTrades     int     `json:"total_trades"`
	MaxRiskTaken    float64 `json:"max_risk_taken"`
	FinalBalance    float64 `json:"final_balance"`
	StartingBalance float64 `json:"starting_balance"`
	TargetBalance   float64 `json:"target_balance"`
}

// Project simulates winning trades until the balance reaches the target and
// returns them in order. It is a pure function: callers own the returned
// slice and identical configs produce identical output.
//
// Project assumes cfg has passed Validate. If TargetBalance <= CurrentBalance
// the loop condition is false from the start and the result is empty; that is
// a documented edge case, not an error. Non-positive risk or reward values
// would never terminate, which is exactly why Validate rejects them at the
// boundary.
func Project(cfg Config) []Trade {
	var trades []Trade

	balance := cfg.CurrentBalance
	for n := 1; balance < cfg.TargetBalance; n++ {
		risk := balance * (cfg.RiskPerTradePct / 100)
		profit := risk * cfg.RiskRewardRatio

		trades = append(trades, Trade{
			Number:       n,
			Balance:      balance,
			RiskAmount:   risk,
			ProfitAmount: profit,
		})

		balance += profit
	}

	return trades
}

// ProjectN is Project with an iteration ceiling. It returns the trades
// produced and whether the run was truncated by the cap before reaching the
// target. Servers use it to bound pathological inputs; for any config that
// passes Validate the cap is never the limiting factor at sane values.
func ProjectN(cfg Config, maxTrades int) ([]Trade, bool) {
	var trades []Trade

	balance := cfg.CurrentBalance
	for n := 1; balance < cfg.TargetBalance; n++ {
		if maxTrades > 0 && n > maxTrades {
			return trades, true
		}

		risk := balance * (cfg.RiskPerTradePct / 100)
		profit := risk * cfg.RiskRewardRatio

		trades = append(trades, Trade{
			Number:       n,
			Balance:      balance,
			RiskAmount:   risk,
			ProfitAmount: profit,
		})

		balance += profit
	}

	return trades, false
}

// Summarize derives the run summary from a trade sequence. With no trades
// the final balance is simply the starting balance.
func Summarize(trades []Trade, cfg Config) Summary {
	s := Summary{
		StartingBalance: cfg.CurrentBalance,
		TargetBalance:   cfg.TargetBalance,
		FinalBalance:    cfg.CurrentBalance,
	}

	if len(trades) == 0 {
		return s
	}

	s.TotalTrades = len(trades)
	for _, t := range trades {
		if t.RiskAmount > s.MaxRiskTaken {
			s.MaxRiskTaken = t.RiskAmount
		}
	}

	last := trades[len(trades)-1]
	s.FinalBalance = last.Balance + last.ProfitAmount

	return s
}
