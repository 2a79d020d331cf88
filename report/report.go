// Package report exports the ledger items to files: the plain tab separated
// text report, and spreadsheet or PDF variants of the same table.
package report

import (
	"bufio"
	"bytes"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/etnz/moneytracker"
	"github.com/etnz/moneytracker/date"
	"github.com/jung-kurt/gofpdf"
	"github.com/shopspring/decimal"
	"github.com/xuri/excelize/v2"
)

// DefaultName is the base file name used when none is given.
const DefaultName = "saved_items"

// Format is an export file format.
type Format int

const (
	Text Format = iota
	XLSX
	PDF
)

// Formats lists all formats.
var Formats = []Format{Text, XLSX, PDF}

// String returns the format name, as used on the command line.
func (f Format) String() string {
	switch f {
	case Text:
		return "text"
	case XLSX:
		return "xlsx"
	case PDF:
		return "pdf"
	default:
		return fmt.Sprintf("Format(%d)", int(f))
	}
}

// Ext returns the file extension, dot included.
func (f Format) Ext() string {
	switch f {
	case XLSX:
		return ".xlsx"
	case PDF:
		return ".pdf"
	default:
		return ".txt"
	}
}

// ParseFormat parses a format name.
func ParseFormat(s string) (Format, error) {
	for _, f := range Formats {
		if strings.EqualFold(s, f.String()) {
			return f, nil
		}
	}
	return Text, fmt.Errorf("%w: unknown export format %q (want text, xlsx or pdf)", moneytracker.ErrInvalidInput, s)
}

var header = []string{"ID", "Title", "Amount", "Date", "Type"}

// row returns the cells of an item as they appear in every format.
func row(item moneytracker.Item, currency string) []string {
	return []string{
		fmt.Sprint(item.ID),
		item.Title,
		moneytracker.FormatAmount(item.Amount, currency),
		date.Short(item.Date),
		item.Type.String(),
	}
}

// Write writes items in format to w. Amounts are formatted in currency.
func Write(w io.Writer, format Format, items []moneytracker.Item, currency string) error {
	switch format {
	case Text:
		return writeText(w, items, currency)
	case XLSX:
		return writeXLSX(w, items, currency)
	case PDF:
		return writePDF(w, items, currency)
	default:
		return fmt.Errorf("unsupported format %v", format)
	}
}

// WriteFile writes items to a file named after name with the format
// extension appended. A blank name uses DefaultName. It returns the path
// written.
func WriteFile(name string, format Format, items []moneytracker.Item, currency string) (string, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		name = DefaultName
	}
	path := name + format.Ext()

	// render in memory first so that a failure does not leave a truncated file.
	var buf bytes.Buffer
	if err := Write(&buf, format, items, currency); err != nil {
		return path, err
	}
	if err := os.WriteFile(path, buf.Bytes(), 0644); err != nil {
		return path, fmt.Errorf("error writing to file %q: %w", path, err)
	}
	return path, nil
}

func writeText(w io.Writer, items []moneytracker.Item, currency string) error {
	bw := bufio.NewWriter(w)
	fmt.Fprintln(bw, strings.Join(header, "\t"))
	fmt.Fprintln(bw, strings.Repeat("-", 48))
	for _, item := range items {
		fmt.Fprintln(bw, strings.Join(row(item, currency), "\t"))
	}
	return bw.Flush()
}

func writeXLSX(w io.Writer, items []moneytracker.Item, currency string) error {
	f := excelize.NewFile()
	defer f.Close()

	const sheet = "items"
	f.SetSheetName("Sheet1", sheet)
	for i, h := range header {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		_ = f.SetCellValue(sheet, cell, h)
	}
	amountStyle, err := f.NewStyle(&excelize.Style{NumFmt: 4}) // #,##0.00
	if err != nil {
		return err
	}
	for i, item := range items {
		r := i + 2
		_ = f.SetCellValue(sheet, fmt.Sprintf("A%d", r), item.ID)
		_ = f.SetCellValue(sheet, fmt.Sprintf("B%d", r), item.Title)
		_ = f.SetCellValue(sheet, fmt.Sprintf("C%d", r), item.Amount.InexactFloat64())
		_ = f.SetCellValue(sheet, fmt.Sprintf("D%d", r), date.Short(item.Date))
		_ = f.SetCellValue(sheet, fmt.Sprintf("E%d", r), item.Type.String())
		_ = f.SetCellStyle(sheet, fmt.Sprintf("C%d", r), fmt.Sprintf("C%d", r), amountStyle)
	}

	// totals below the table
	r := len(items) + 3
	_ = f.SetCellValue(sheet, fmt.Sprintf("B%d", r), "Currency")
	_ = f.SetCellValue(sheet, fmt.Sprintf("C%d", r), currency)
	_ = f.SetCellValue(sheet, fmt.Sprintf("B%d", r+1), "Total Balance")
	_ = f.SetCellValue(sheet, fmt.Sprintf("C%d", r+1), balance(items).InexactFloat64())
	_ = f.SetCellStyle(sheet, fmt.Sprintf("C%d", r+1), fmt.Sprintf("C%d", r+1), amountStyle)

	return f.Write(w)
}

func writePDF(w io.Writer, items []moneytracker.Item, currency string) error {
	pdf := gofpdf.New("P", "mm", "A4", "")
	tr := pdf.UnicodeTranslatorFromDescriptor("") // cp1252, for currency symbols and accents
	pdf.SetFont("Arial", "", 12)
	pdf.AddPage()

	pdf.Cell(0, 8, "Money Tracker")
	pdf.Ln(10)
	pdf.SetFont("Arial", "", 10)
	pdf.Cell(0, 6, tr(totalLine(items, currency)))
	pdf.Ln(8)

	widths := []float64{15, 70, 40, 30, 25}
	aligns := []string{"R", "L", "R", "C", "C"}
	pdf.SetFont("Arial", "B", 10)
	for i, h := range header {
		pdf.CellFormat(widths[i], 6, h, "1", 0, "C", false, 0, "")
	}
	pdf.Ln(-1)
	pdf.SetFont("Arial", "", 10)
	for _, item := range items {
		for i, cell := range row(item, currency) {
			pdf.CellFormat(widths[i], 6, tr(cell), "1", 0, aligns[i], false, 0, "")
		}
		pdf.Ln(-1)
	}
	return pdf.Output(w)
}

// totalLine is the signed balance of items, as printed above the PDF table.
func totalLine(items []moneytracker.Item, currency string) string {
	return "Total Balance: " + moneytracker.FormatBalance(balance(items), currency)
}

// balance sums the signed contributions of items.
func balance(items []moneytracker.Item) decimal.Decimal {
	total := decimal.Zero
	for _, item := range items {
		total = total.Add(item.Signed())
	}
	return total
}
