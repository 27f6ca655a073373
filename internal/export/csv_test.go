package export

import (
	"bytes"
	"strings"
	"testing"
	"time"
)

func TestCSV_BOMAndQuoting(t *testing.T) {
	data, err := CSV(
		[]string{"الاسم", "Phone"},
		[][]string{
			{"Omar", "0100"},
			{`has "quotes"`, "a,b"},
		},
	)
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.HasPrefix(data, []byte{0xEF, 0xBB, 0xBF}) {
		t.Fatal("missing UTF-8 BOM")
	}

	body := string(data[3:])
	lines := strings.Split(strings.TrimSpace(body), "\n")
	if len(lines) != 3 {
		t.Fatalf("got %d lines, want 3", len(lines))
	}
	if lines[0] != "الاسم,Phone" {
		t.Fatalf("header = %q", lines[0])
	}
	if !strings.Contains(lines[2], `"has ""quotes"""`) {
		t.Fatalf("quotes not escaped: %q", lines[2])
	}
	if !strings.Contains(lines[2], `"a,b"`) {
		t.Fatalf("comma field not quoted: %q", lines[2])
	}
}

func TestCSVFilename(t *testing.T) {
	now := time.Date(2025, time.April, 9, 15, 30, 0, 0, time.UTC)
	if got := CSVFilename("courses_report", now); got != "courses_report_2025-04-09.csv" {
		t.Fatalf("filename = %q", got)
	}
	// path separators must not survive into a download filename
	if got := CSVFilename("a/b", now); strings.ContainsAny(got, `/\`) {
		t.Fatalf("unsanitized filename %q", got)
	}
}

func TestWorkbook_SheetShape(t *testing.T) {
	f, err := Workbook([]SheetSpec{
		{Title: "Volunteers", Header: []string{"Name", "Points"}, Rows: [][]string{{"Omar", "15"}}},
		{Title: "Guests", Header: []string{"Name"}, Rows: nil},
	})
	if err != nil {
		t.Fatal(err)
	}
	defer func() { _ = f.Close() }()

	if got := f.GetSheetList(); len(got) != 2 || got[0] != "Volunteers" || got[1] != "Guests" {
		t.Fatalf("sheets = %v", got)
	}
	v, err := f.GetCellValue("Volunteers", "B2")
	if err != nil {
		t.Fatal(err)
	}
	if v != "15" {
		t.Fatalf("B2 = %q, want 15", v)
	}
}
