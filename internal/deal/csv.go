package deal

import (
	"encoding/csv"
	"io"
	"os"
	"strconv"

	"deal-analyzer/internal/model"
)

// WriteBreakdownCSV writes one row per line item.
func WriteBreakdownCSV(out io.Writer, res model.DealResult) error {
	w := csv.NewWriter(out)

	header := []string{
		"buy_strategy",
		"sell_strategy",
		"key",
		"label",
		"kind",
		"value",
		"display",
	}
	if err := w.Write(header); err != nil {
		return err
	}

	for _, li := range res.Items {
		row := []string{
			string(res.Buy),
			string(res.Sell),
			li.Key,
			li.Label,
			string(li.Kind),
			fmtFloat(li.Value),
			li.Display(),
		}
		if err := w.Write(row); err != nil {
			return err
		}
	}

	w.Flush()
	return w.Error()
}

// WriteBreakdownCSVFile creates path and writes the breakdown to it.
func WriteBreakdownCSVFile(path string, res model.DealResult) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	return WriteBreakdownCSV(f, res)
}

// WriteScheduleCSV writes a loan's month-by-month balance projection.
func WriteScheduleCSV(out io.Writer, ln *model.LoanState) error {
	w := csv.NewWriter(out)
	if err := w.Write([]string{"month", "payment", "balance"}); err != nil {
		return err
	}
	if ln != nil {
		for i, bal := range ln.Trajectory {
			row := []string{
				strconv.Itoa(i + 1),
				fmtFloat(ln.MonthlyPayment),
				fmtFloat(bal),
			}
			if err := w.Write(row); err != nil {
				return err
			}
		}
	}
	w.Flush()
	return w.Error()
}

func fmtFloat(x float64) string {
	return strconv.FormatFloat(x, 'f', 2, 64)
}
