package report

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/etnz/moneytracker"
	"github.com/xuri/excelize/v2"
)

func fixture() []moneytracker.Item {
	on := time.Date(2025, time.March, 4, 10, 0, 0, 0, time.Local)
	return []moneytracker.Item{
		{ID: 1, Title: "Salary", Amount: moneytracker.MustParseAmount("5000"), Date: on, Type: moneytracker.Income},
		{ID: 2, Title: "Rent", Amount: moneytracker.MustParseAmount("1000.5"), Date: on.AddDate(0, 0, 1), Type: moneytracker.Expense},
	}
}

func TestWrite_Text(t *testing.T) {
	var buf bytes.Buffer
	if err := Write(&buf, Text, fixture(), "USD"); err != nil {
		t.Fatalf("Write() returned an unexpected error: %v", err)
	}
	want := "ID\tTitle\tAmount\tDate\tType\n" +
		"------------------------------------------------\n" +
		"1\tSalary\t$5,000.00\t2025-03-04\tIncome\n" +
		"2\tRent\t$1,000.50\t2025-03-05\tExpense\n"
	if got := buf.String(); got != want {
		t.Errorf("Write(Text) =\n%q\nwant\n%q", got, want)
	}
}

func TestWrite_TextEmpty(t *testing.T) {
	var buf bytes.Buffer
	if err := Write(&buf, Text, nil, "USD"); err != nil {
		t.Fatal(err)
	}
	if lines := strings.Count(buf.String(), "\n"); lines != 2 {
		t.Errorf("empty report has %d lines, want header and rule only", lines)
	}
}

func TestWrite_XLSX(t *testing.T) {
	var buf bytes.Buffer
	if err := Write(&buf, XLSX, fixture(), "USD"); err != nil {
		t.Fatalf("Write() returned an unexpected error: %v", err)
	}
	f, err := excelize.OpenReader(&buf)
	if err != nil {
		t.Fatalf("OpenReader() returned an unexpected error: %v", err)
	}
	defer f.Close()

	for cell, want := range map[string]string{
		"A1": "ID",
		"E1": "Type",
		"B2": "Salary",
		"D3": "2025-03-05",
		"E3": "Expense",
		"C5": "USD",
	} {
		got, err := f.GetCellValue("items", cell)
		if err != nil {
			t.Fatalf("GetCellValue(%s) returned an unexpected error: %v", cell, err)
		}
		if got != want {
			t.Errorf("cell %s = %q, want %q", cell, got, want)
		}
	}
}

func TestWrite_PDF(t *testing.T) {
	var buf bytes.Buffer
	if err := Write(&buf, PDF, fixture(), "EUR"); err != nil {
		t.Fatalf("Write() returned an unexpected error: %v", err)
	}
	if !bytes.HasPrefix(buf.Bytes(), []byte("%PDF")) {
		t.Errorf("Write(PDF) does not start with a PDF header")
	}
}

func TestTotalLine(t *testing.T) {
	if got, want := totalLine(fixture(), "USD"), "Total Balance: $3,999.50"; got != want {
		t.Errorf("totalLine() = %q, want %q", got, want)
	}
	items := fixture()[1:]
	if got, want := totalLine(items, "USD"), "Total Balance: -$1,000.50"; got != want {
		t.Errorf("totalLine(expenses only) = %q, want %q", got, want)
	}
	if got, want := totalLine(nil, "USD"), "Total Balance: $0.00"; got != want {
		t.Errorf("totalLine(nil) = %q, want %q", got, want)
	}
}

func TestWriteFile(t *testing.T) {
	dir := t.TempDir()
	tests := []struct {
		name   string
		format Format
		want   string
	}{
		{name: filepath.Join(dir, "march"), format: Text, want: filepath.Join(dir, "march.txt")},
		{name: filepath.Join(dir, "march"), format: XLSX, want: filepath.Join(dir, "march.xlsx")},
		{name: filepath.Join(dir, "march"), format: PDF, want: filepath.Join(dir, "march.pdf")},
	}
	for _, tc := range tests {
		got, err := WriteFile(tc.name, tc.format, fixture(), "SEK")
		if err != nil {
			t.Fatalf("WriteFile(%q, %v) returned an unexpected error: %v", tc.name, tc.format, err)
		}
		if got != tc.want {
			t.Errorf("WriteFile(%q, %v) = %q, want %q", tc.name, tc.format, got, tc.want)
		}
		if _, err := os.Stat(got); err != nil {
			t.Errorf("file %q was not written: %v", got, err)
		}
	}
}

func TestWriteFile_DefaultName(t *testing.T) {
	t.Chdir(t.TempDir())
	got, err := WriteFile("  ", Text, fixture(), "SEK")
	if err != nil {
		t.Fatal(err)
	}
	if got != "saved_items.txt" {
		t.Errorf("WriteFile(blank) = %q, want %q", got, "saved_items.txt")
	}
}

func TestWriteFile_Failure(t *testing.T) {
	name := filepath.Join(t.TempDir(), "missing", "dir", "out")
	if _, err := WriteFile(name, Text, fixture(), "SEK"); err == nil {
		t.Error("WriteFile() into a missing directory succeeded")
	}
}

func TestParseFormat(t *testing.T) {
	for _, f := range Formats {
		got, err := ParseFormat(strings.ToUpper(f.String()))
		if err != nil || got != f {
			t.Errorf("ParseFormat(%q) = %v, %v, want %v", f.String(), got, err, f)
		}
	}
	if _, err := ParseFormat("csv"); !errors.Is(err, moneytracker.ErrInvalidInput) {
		t.Errorf("ParseFormat(csv) error = %v, want ErrInvalidInput", err)
	}
}
