package budget

import (
	"fmt"
	"io"
	"strings"

	"github.com/etnz/budget/date"
	"github.com/xuri/excelize/v2"
)

// CSVMimeType is the media type of ToCSV output.
const CSVMimeType = "text/csv"

// exportHeaders is the fixed column order of every export.
var exportHeaders = []string{"Date", "Type", "Payment", "Category", "Amount", "Note"}

// ExportFilename returns the download name of a month export, e.g. "budget_export_2024-01.csv".
func ExportFilename(month date.Month, ext string) string {
	return fmt.Sprintf("budget_export_%s.%s", month, ext)
}

// ToCSV projects txs, in the given order, as CSV text with one header row.
//
// Category and Note are always quoted, any other field never is. Rows are
// separated by "\n" with no trailing newline.
func ToCSV(txs []Transaction) string {
	var b strings.Builder
	b.WriteString(strings.Join(exportHeaders, ","))
	for _, t := range txs {
		b.WriteString("\n")
		b.WriteString(strings.Join([]string{
			t.Date.String(),
			string(t.Type),
			string(t.PaymentMethod),
			quote(t.CategoryName),
			t.Amount.Decimal().String(),
			quote(t.Note),
		}, ","))
	}
	return b.String()
}

// quote wraps s in double quotes, doubling the quotes it contains.
func quote(s string) string {
	return `"` + strings.ReplaceAll(s, `"`, `""`) + `"`
}

const xlsxSheet = "Transactions"

// WriteXLSX writes txs as a single sheet spreadsheet with the same columns as ToCSV.
func WriteXLSX(w io.Writer, txs []Transaction) (err error) {
	f := excelize.NewFile()
	defer func() {
		if cerr := f.Close(); err == nil {
			err = cerr
		}
	}()

	if err := f.SetSheetName("Sheet1", xlsxSheet); err != nil {
		return fmt.Errorf("could not name sheet: %w", err)
	}

	set := func(col, row int, v any) {
		if err != nil {
			return
		}
		var cell string
		cell, err = excelize.CoordinatesToCellName(col, row)
		if err != nil {
			return
		}
		err = f.SetCellValue(xlsxSheet, cell, v)
	}

	for i, h := range exportHeaders {
		set(i+1, 1, h)
	}
	for i, t := range txs {
		row := i + 2
		set(1, row, t.Date.String())
		set(2, row, string(t.Type))
		set(3, row, string(t.PaymentMethod))
		set(4, row, t.CategoryName)
		set(5, row, t.Amount.Float())
		set(6, row, t.Note)
	}
	if err != nil {
		return fmt.Errorf("could not fill sheet: %w", err)
	}

	if err := f.SetColWidth(xlsxSheet, "D", "D", 18); err != nil {
		return err
	}
	if err := f.SetColWidth(xlsxSheet, "F", "F", 30); err != nil {
		return err
	}

	if err := f.Write(w); err != nil {
		return fmt.Errorf("could not write spreadsheet: %w", err)
	}
	return nil
}
