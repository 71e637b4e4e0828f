package projection

import (
	"fmt"
	"strings"
)

// Violation is one rejected field in a config.
type Violation struct {
	Field string `json:"field"`
	Code  string `json:"code"`
	Msg   string `json:"msg"`
}

// ValidationError collects every violation found in a config so callers can
// report them all at once instead of one per round trip.
type ValidationError struct {
	Violations []Violation
}

func (e *ValidationError) Error() string {
	msgs := make([]string, len(e.Violations))
	for i, v := range e.Violations {
		msgs[i] = v.Msg
	}
	return "invalid projection config: " + strings.Join(msgs, "; ")
}

func (e *ValidationError) add(field, code, msg string) {
	e.Violations = append(e.Violations, Violation{Field: field, Code: code, Msg: msg})
}

// Validate checks a config against the accepted input domain. Every external
// surface (CLI, API) must call it before Project: the engine itself never
// validates, and non-positive risk or reward values would make the
// compounding loop spin forever.
//
// Returns nil or a *ValidationError listing every violation.
func Validate(cfg Config) error {
	e := &ValidationError{}

	if cfg.CurrentBalance <= 0 {
		e.add("current_balance", "NOT_POSITIVE", "current balance must be greater than 0")
	}
	if cfg.TargetBalance <= 0 {
		e.add("target_balance", "NOT_POSITIVE", "target balance must be greater than 0")
	} else if cfg.CurrentBalance > 0 && cfg.TargetBalance <= cfg.CurrentBalance {
		e.add("target_balance", "TARGET_NOT_ABOVE_BALANCE",
			fmt.Sprintf("target balance %.2f must be greater than current balance %.2f",
				cfg.TargetBalance, cfg.CurrentBalance))
	}
	if cfg.RiskPerTradePct <= 0 || cfg.RiskPerTradePct > 100 {
		e.add("risk_per_trade_percent", "RISK_OUT_OF_RANGE",
			fmt.Sprintf("risk percentage %.2f must be between 0 and 100", cfg.RiskPerTradePct))
	}
	if cfg.RiskRewardRatio <= 0 {
		e.add("risk_reward_ratio", "RATIO_NOT_POSITIVE",
			fmt.Sprintf("risk-to-reward ratio %.2f must be greater than 0", cfg.RiskRewardRatio))
	}

	if len(e.Violations) > 0 {
		return e
	}
	return nil
}
