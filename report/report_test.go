package report

import (
	"bytes"
	"strings"
	"testing"

	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tradekit/roadmap/projection"
)

func init() {
	// Keep assertions free of ANSI escapes.
	color.NoColor = true
}

func TestFormatCurrency(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		amount float64
		want   string
	}{
		{"small", 4.0, "$4.00"},
		{"hundreds", 212.5, "$212.50"},
		{"thousands", 2000.0, "$2,000.00"},
		{"millions", 1234567.891, "$1,234,567.89"},
		{"exact_boundary", 100000.0, "$100,000.00"},
		{"negative", -1500.25, "-$1,500.25"},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, FormatCurrency(tt.amount))
		})
	}
}

func TestWrite(t *testing.T) {
	t.Parallel()

	cfg := projection.Config{
		CurrentBalance:  200,
		TargetBalance:   2000,
		RiskPerTradePct: 2,
		RiskRewardRatio: 3,
	}
	trades := projection.Project(cfg)
	sum := projection.Summarize(trades, cfg)

	var buf bytes.Buffer
	Write(&buf, cfg, trades, sum)
	out := buf.String()

	assert.Contains(t, out, "THE RECOVERY ROADMAP")
	assert.Contains(t, out, "Starting Balance: $200.00")
	assert.Contains(t, out, "Target Balance: $2,000.00")
	assert.Contains(t, out, "Risk per Trade: 2%")
	assert.Contains(t, out, "Risk-to-Reward Ratio: 1:3")
	assert.Contains(t, out, "| Trade # ")
	assert.Contains(t, out, "$4.00")
	assert.Contains(t, out, "$12.00")
	assert.Contains(t, out, "Total Trades Needed:")
	assert.Contains(t, out, "REALITY CHECK:")
	assert.Contains(t, out, "approximately 80 trades")

	// One table row per trade plus header row.
	assert.Equal(t, len(trades)+1, strings.Count(out, "\n| "))
}

func TestWrite_NoTrades(t *testing.T) {
	t.Parallel()

	cfg := projection.Config{
		CurrentBalance:  2000,
		TargetBalance:   2000,
		RiskPerTradePct: 2,
		RiskRewardRatio: 3,
	}
	trades := projection.Project(cfg)
	sum := projection.Summarize(trades, cfg)

	var buf bytes.Buffer
	Write(&buf, cfg, trades, sum)
	out := buf.String()

	assert.Contains(t, out, "No trades needed - target already reached!")
	assert.Contains(t, out, "Total Trades Needed: 0")
	assert.Contains(t, out, "Final Balance: $2,000.00")
}

func TestWriteCSV(t *testing.T) {
	t.Parallel()

	trades := []projection.Trade{
		{Number: 1, Balance: 200, RiskAmount: 4, ProfitAmount: 12},
		{Number: 2, Balance: 212, RiskAmount: 4.24, ProfitAmount: 12.72},
	}

	var buf bytes.Buffer
	require.NoError(t, WriteCSV(&buf, trades))

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 3)
	assert.Equal(t, "trade_number,account_balance,risk_amount,profit_amount", lines[0])
	assert.Equal(t, "1,200.00,4.00,12.00", lines[1])
	assert.Equal(t, "2,212.00,4.24,12.72", lines[2])
}
