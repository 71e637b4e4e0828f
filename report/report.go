// Package report renders projection results for humans: the trade table,
// the summary block, and the reality-check disclaimer.
package report

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
	"github.com/tradekit/roadmap/projection"
)

const rule = "======================================================================"
const thinRule = "----------------------------------------------------------------------"

var (
	headerColor  = color.New(color.FgCyan, color.Bold)
	warningColor = color.New(color.FgYellow, color.Bold)
)

// FormatCurrency renders an amount as dollars with thousands separators,
// e.g. 1234567.8 -> "$1,234,567.80".
func FormatCurrency(amount float64) string {
	s := fmt.Sprintf("%.2f", amount)

	neg := strings.HasPrefix(s, "-")
	if neg {
		s = s[1:]
	}

	intPart, frac, _ := strings.Cut(s, ".")
	var b strings.Builder
	for i, d := range intPart {
		if i > 0 && (len(intPart)-i)%3 == 0 {
			b.WriteByte(',')
		}
		b.WriteRune(d)
	}

	out := "$" + b.String() + "." + frac
	if neg {
		out = "-" + out
	}
	return out
}

// Write renders the full projection report: configuration, trade table,
// summary, and the reality-check footer.
func Write(w io.Writer, cfg projection.Config, trades []projection.Trade, sum projection.Summary) {
	fmt.Fprintln(w)
	fmt.Fprintln(w, rule)
	headerColor.Fprintln(w, "THE RECOVERY ROADMAP - Perfect Execution Simulation")
	fmt.Fprintln(w, rule)

	fmt.Fprintln(w)
	fmt.Fprintln(w, "Configuration:")
	fmt.Fprintf(w, "  Starting Balance: %s\n", FormatCurrency(cfg.CurrentBalance))
	fmt.Fprintf(w, "  Target Balance: %s\n", FormatCurrency(cfg.TargetBalance))
	fmt.Fprintf(w, "  Risk per Trade: %g%%\n", cfg.RiskPerTradePct)
	fmt.Fprintf(w, "  Risk-to-Reward Ratio: 1:%g\n", cfg.RiskRewardRatio)

	fmt.Fprintln(w)
	fmt.Fprintln(w, thinRule)
	fmt.Fprintln(w, "TRADE SIMULATION RESULTS")
	fmt.Fprintln(w, thinRule)

	if len(trades) == 0 {
		fmt.Fprintln(w, "No trades needed - target already reached!")
	} else {
		writeTable(w, trades)
	}

	fmt.Fprintln(w)
	fmt.Fprintln(w, rule)
	headerColor.Fprintln(w, "SUMMARY")
	fmt.Fprintln(w, rule)
	fmt.Fprintf(w, "Total Trades Needed: %d\n", sum.TotalTrades)
	fmt.Fprintf(w, "Max Risk Taken: %s\n", FormatCurrency(sum.MaxRiskTaken))
	fmt.Fprintf(w, "Final Balance: %s\n", FormatCurrency(sum.FinalBalance))

	fmt.Fprintln(w)
	warningColor.Fprintln(w, "REALITY CHECK:")
	fmt.Fprintln(w, "This simulation assumes zero losses (perfect execution).")
	// Illustrative only: roughly double the trades at a 50% win rate.
	fmt.Fprintf(w, "With a 50%% win rate, you would need approximately %d trades.\n",
		sum.TotalTrades*2)
	fmt.Fprintln(w, rule)
	fmt.Fprintln(w)
}

// writeTable renders trades as a bordered grid.
func writeTable(w io.Writer, trades []projection.Trade) {
	headers := []string{"Trade #", "Account Balance", "Risk Amount ($)", "Profit Amount ($)"}

	rows := make([][]string, len(trades))
	for i, t := range trades {
		rows[i] = []string{
			fmt.Sprintf("%d", t.Number),
			FormatCurrency(t.Balance),
			FormatCurrency(t.RiskAmount),
			FormatCurrency(t.ProfitAmount),
		}
	}

	widths := make([]int, len(headers))
	for i, h := range headers {
		widths[i] = len(h)
	}
	for _, row := range rows {
		for i, cell := range row {
			if len(cell) > widths[i] {
				widths[i] = len(cell)
			}
		}
	}

	border := gridBorder(widths)
	fmt.Fprintln(w, border)
	fmt.Fprintln(w, gridRow(headers, widths))
	fmt.Fprintln(w, border)
	for _, row := range rows {
		fmt.Fprintln(w, gridRow(row, widths))
	}
	fmt.Fprintln(w, border)
}

func gridBorder(widths []int) string {
	var b strings.Builder
	b.WriteByte('+')
	for _, width := range widths {
		b.WriteString(strings.Repeat("-", width+2))
		b.WriteByte('+')
	}
	return b.String()
}

func gridRow(cells []string, widths []int) string {
	var b strings.Builder
	b.WriteByte('|')
	for i, cell := range cells {
		fmt.Fprintf(&b, " %-*s |", widths[i], cell)
	}
	return b.String()
}
