package export

import (
	"encoding/csv"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"baseconv-tool/internal/model"
	"baseconv-tool/internal/radix"
)

func sampleConversions(t *testing.T) []model.Conversion {
	t.Helper()

	first, err := model.Convert("0xFF", radix.Decimal, true, 10)
	if err != nil {
		t.Fatalf("Convert() error: %v", err)
	}
	first.Timestamp = time.Date(2026, 8, 24, 14, 30, 5, 0, time.UTC)

	second, err := model.Convert("1010.101", radix.Binary, false, 4)
	if err != nil {
		t.Fatalf("Convert() error: %v", err)
	}
	second.Timestamp = time.Date(2026, 8, 24, 14, 31, 0, 0, time.UTC)

	return []model.Conversion{first, second}
}

func readRows(t *testing.T, path string) [][]string {
	t.Helper()
	f, err := os.Open(path)
	if err != nil {
		t.Fatalf("open csv: %v", err)
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.Comma = ';'
	rows, err := r.ReadAll()
	if err != nil {
		t.Fatalf("read csv: %v", err)
	}
	return rows
}

func TestWriteCSV(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "conversions.csv")

	if err := WriteCSV(path, sampleConversions(t)); err != nil {
		t.Fatalf("WriteCSV() error: %v", err)
	}

	rows := readRows(t, path)
	if len(rows) != 3 {
		t.Fatalf("got %d rows, want header + 2", len(rows))
	}

	if rows[0][0] != "date" || rows[0][2] != "input" {
		t.Errorf("unexpected header: %v", rows[0])
	}

	first := rows[1]
	if first[0] != "24.08.2026" {
		t.Errorf("date = %q, want 24.08.2026", first[0])
	}
	if first[2] != "0xFF" {
		t.Errorf("input = %q, want 0xFF", first[2])
	}
	if first[3] != "Hexadecimal" {
		t.Errorf("from_base = %q, want Hexadecimal", first[3])
	}
	if first[4] != "1" {
		t.Errorf("detected = %q, want 1", first[4])
	}
	if first[8] != "255" {
		t.Errorf("decimal = %q, want 255", first[8])
	}

	second := rows[2]
	if second[4] != "0" {
		t.Errorf("detected = %q, want 0", second[4])
	}
	if second[5] != "4" {
		t.Errorf("frac_digits = %q, want 4", second[5])
	}
	if second[8] != "10.625" {
		t.Errorf("decimal = %q, want 10.625", second[8])
	}
}

func TestWriteCSVAppends(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "conversions.csv")

	conversions := sampleConversions(t)
	if err := WriteCSV(path, conversions[:1]); err != nil {
		t.Fatalf("first WriteCSV() error: %v", err)
	}
	if err := WriteCSV(path, conversions[1:]); err != nil {
		t.Fatalf("second WriteCSV() error: %v", err)
	}

	rows := readRows(t, path)
	if len(rows) != 3 {
		t.Fatalf("got %d rows, want header + 2 (no duplicate header)", len(rows))
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if strings.Count(string(data), "date;time") != 1 {
		t.Error("header should be written only once")
	}
}

func TestWriteCSVErrorRow(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "conversions.csv")

	failed := model.Conversion{
		Timestamp: time.Date(2026, 8, 24, 14, 32, 0, 0, time.UTC),
		Input:     "10G",
		FromBase:  radix.Hexadecimal,
		Error:     `invalid digit 'G' for base 16`,
	}
	if err := WriteCSV(path, []model.Conversion{failed}); err != nil {
		t.Fatalf("WriteCSV() error: %v", err)
	}

	rows := readRows(t, path)
	if got := rows[1][10]; got != `invalid digit 'G' for base 16` {
		t.Errorf("error column = %q", got)
	}
	if rows[1][6] != "" {
		t.Errorf("binary column should be empty for failed conversions, got %q", rows[1][6])
	}
}
