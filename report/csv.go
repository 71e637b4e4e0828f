package report

import (
	"encoding/csv"
	"io"
	"strconv"

	"github.com/tradekit/roadmap/projection"
)

// WriteCSV writes the trade rows as CSV with a header row. This is an output
// format for spreadsheets, not a journal: nothing is read back.
func WriteCSV(w io.Writer, trades []projection.Trade) error {
	cw := csv.NewWriter(w)

	if err := cw.Write([]string{"trade_number", "account_balance", "risk_amount", "profit_amount"}); err != nil {
		return err
	}

	for _, t := range trades {
		rec := []string{
			strconv.Itoa(t.Number),
			strconv.FormatFloat(t.Balance, 'f', 2, 64),
			strconv.FormatFloat(t.RiskAmount, 'f', 2, 64),
			strconv.FormatFloat(t.ProfitAmount, 'f', 2, 64),
		}
		if err := cw.Write(rec); err != nil {
			return err
		}
	}

	cw.Flush()
	return cw.Error()
}
